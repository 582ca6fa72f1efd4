package patient

import (
	"time"

	"github.com/google/uuid"
)

type (
	// Patient mirrors the patients table. Address, phone and birth_date
	// are nullable columns.
	Patient struct {
		ID        uuid.UUID
		Name      string
		Email     string
		Address   *string
		Phone     *string
		DNI       string
		BirthDate *time.Time

		RegistrationDate time.Time
		LastUpdateDate   time.Time
	}
	Patients []*Patient
)
