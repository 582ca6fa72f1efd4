package ports

import (
	"context"

	"patient-manager-api/internal/domain/patient"
)

type PatientService interface {
	Create(ctx context.Context, draft patient.Draft) error
	GetByID(ctx context.Context, id patient.ID) (*patient.Patient, error)
	GetByEmail(ctx context.Context, email string) (*patient.Patient, error)
	GetByDNI(ctx context.Context, dni string) (*patient.Patient, error)
	GetByName(ctx context.Context, fragment string) (patient.Patients, error)
	List(ctx context.Context, page, size int) (*patient.Page, error)
	Update(ctx context.Context, id patient.ID, draft patient.Draft) (*patient.Patient, error)
	Delete(ctx context.Context, id patient.ID) error
}
