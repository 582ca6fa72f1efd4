package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/text/unicode/norm"

	"patient-manager-api/internal/application/ports"
	domain "patient-manager-api/internal/domain/patient"
)

type PatientService struct {
	patients  domain.Repository
	validator *patientValidator
	logger    *zap.Logger
	mCounter  *prometheus.CounterVec
}

func NewPatientService(
	patients domain.Repository,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.PatientService {
	return &PatientService{
		patients:  patients,
		validator: &patientValidator{patients: patients},
		logger:    logger,
		mCounter:  mCounter,
	}
}

func (ps *PatientService) Create(ctx context.Context, draft domain.Draft) error {
	ps.logger.Info("creating patient", zap.String("email", draft.Email))

	errs, err := ps.validator.forCreate(ctx, draft)
	if err != nil {
		return err
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Messages: errs}
	}

	if _, err = ps.patients.Save(ctx, domain.Patient{
		Name:      draft.Name,
		Email:     draft.Email,
		Address:   draft.Address,
		Phone:     draft.Phone,
		DNI:       draft.DNI,
		BirthDate: draft.BirthDate,
	}); err != nil {
		// The validator's pre-check and the insert are not atomic; a
		// losing racer surfaces the same message the pre-check would
		// have produced.
		switch {
		case errors.Is(err, domain.ErrEmailConflict):
			return domain.NewValidation(MsgEmailExists)
		case errors.Is(err, domain.ErrDNIConflict):
			return domain.NewValidation(MsgDNIExists)
		}
		return err
	}

	ps.mCounter.WithLabelValues("patient_created_total").Inc()

	return nil
}

func (ps *PatientService) GetByID(ctx context.Context, id domain.ID) (*domain.Patient, error) {
	p, err := ps.patients.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound(fmt.Sprintf("Patient not found with ID: %s", id))
	}

	return p, nil
}

func (ps *PatientService) GetByEmail(ctx context.Context, email string) (*domain.Patient, error) {
	p, err := ps.patients.FetchByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound(fmt.Sprintf("Patient not found with email: %s", email))
	}

	return p, nil
}

func (ps *PatientService) GetByDNI(ctx context.Context, dni string) (*domain.Patient, error) {
	p, err := ps.patients.FetchByDNI(ctx, dni)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound(fmt.Sprintf("Patient not found with DNI: %s", dni))
	}

	return p, nil
}

func (ps *PatientService) GetByName(ctx context.Context, fragment string) (domain.Patients, error) {
	return ps.patients.SearchByName(ctx, norm.NFC.String(fragment))
}

func (ps *PatientService) List(ctx context.Context, page, size int) (*domain.Page, error) {
	return ps.patients.FetchAll(ctx, page, size)
}

// Update merges the provided fields of the draft into the loaded record
// and saves the result. Empty strings and a nil birth date leave the
// stored value untouched; there is no way to clear an optional field.
func (ps *PatientService) Update(ctx context.Context, id domain.ID, draft domain.Draft) (*domain.Patient, error) {
	ps.logger.Info("updating patient", zap.String("id", id.String()))

	p, err := ps.patients.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.NewNotFound(fmt.Sprintf("Patient not found with ID: %s", id))
	}

	errs, err := ps.validator.forUpdate(ctx, id, draft)
	if err != nil {
		return nil, err
	}
	if len(errs) > 0 {
		return nil, &domain.ValidationError{Messages: errs}
	}

	if draft.Name != "" {
		p.Name = draft.Name
	}
	if draft.Email != "" {
		p.Email = draft.Email
	}
	if draft.Address != "" {
		p.Address = draft.Address
	}
	if draft.DNI != "" {
		p.DNI = draft.DNI
	}
	if draft.Phone != "" {
		p.Phone = draft.Phone
	}
	if draft.BirthDate != nil {
		p.BirthDate = draft.BirthDate
	}

	saved, err := ps.patients.Save(ctx, *p)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailConflict):
			return nil, domain.NewValidation(MsgEmailInUse)
		case errors.Is(err, domain.ErrDNIConflict):
			return nil, domain.NewValidation(MsgDNIInUse)
		}
		return nil, err
	}

	ps.mCounter.WithLabelValues("patient_updated_total").Inc()

	return saved, nil
}

func (ps *PatientService) Delete(ctx context.Context, id domain.ID) error {
	ps.logger.Info("deleting patient", zap.String("id", id.String()))

	p, err := ps.patients.FetchByID(ctx, id)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.NewNotFound(fmt.Sprintf("Patient not found with ID: %s", id))
	}

	if err = ps.patients.Delete(ctx, p.ID); err != nil {
		return err
	}

	ps.mCounter.WithLabelValues("patient_deleted_total").Inc()

	return nil
}
