package patient

import (
	"time"

	"github.com/google/uuid"
)

type (
	ID = uuid.UUID

	// Patient is the persistent record. ID and both timestamps are
	// assigned by the store; the service never writes them.
	Patient struct {
		ID        ID
		Name      string
		Email     string
		Address   string
		Phone     string
		DNI       string
		BirthDate *time.Time

		RegistrationDate time.Time
		LastUpdateDate   time.Time
	}
	Patients []*Patient

	// Draft carries the user-settable fields of a create or update
	// request. Empty strings and a nil BirthDate mean "not provided".
	Draft struct {
		Name      string
		Email     string
		Address   string
		Phone     string
		DNI       string
		BirthDate *time.Time
	}
)

// Page is a bounded window over the patient set.
type Page struct {
	Page          int
	Size          int
	TotalElements int64
	Content       Patients
}
