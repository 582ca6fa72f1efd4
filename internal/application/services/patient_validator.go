package services

import (
	"context"
	"regexp"

	"patient-manager-api/internal/domain/patient"
)

// Validation messages are part of the API contract; the transport
// returns them verbatim inside the 400 envelope.
const (
	MsgNameRequired    = "Name cannot be null or empty"
	MsgEmailRequired   = "Email cannot be null or empty"
	MsgEmailExists     = "Email already exists"
	MsgEmailInvalid    = "Invalid email format"
	MsgAddressRequired = "Address cannot be null or empty"
	MsgDNIRequired     = "DNI cannot be null or empty"
	MsgDNIExists       = "DNI already exists"
	MsgEmailInUse      = "Email is in use by another patient"
	MsgDNIInUse        = "DNI is in use by another patient"
)

var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// patientValidator accumulates error messages for the write path. The
// exists/used-by-other pre-checks are advisory; the store's unique
// constraints remain the authoritative guard.
type patientValidator struct {
	patients patient.Repository
}

// forCreate checks the draft field by field, appending one message per
// failed check. Later checks of a field are skipped once an earlier one
// failed, but failures never stop the remaining fields from being
// checked.
func (v *patientValidator) forCreate(ctx context.Context, d patient.Draft) ([]string, error) {
	var errs []string

	if d.Name == "" {
		errs = append(errs, MsgNameRequired)
	}

	if d.Email == "" {
		errs = append(errs, MsgEmailRequired)
	} else if taken, err := v.patients.ExistsByEmail(ctx, d.Email); err != nil {
		return nil, err
	} else if taken {
		errs = append(errs, MsgEmailExists)
	} else if !emailRe.MatchString(d.Email) {
		errs = append(errs, MsgEmailInvalid)
	}

	if d.Address == "" {
		errs = append(errs, MsgAddressRequired)
	}

	if d.DNI == "" {
		errs = append(errs, MsgDNIRequired)
	} else if taken, err := v.patients.ExistsByDNI(ctx, d.DNI); err != nil {
		return nil, err
	} else if taken {
		errs = append(errs, MsgDNIExists)
	}

	return errs, nil
}

// forUpdate validates only the fields the draft provides. Absent or
// empty fields are skipped entirely (partial update), and uniqueness is
// checked against every row except the one being updated.
func (v *patientValidator) forUpdate(ctx context.Context, id patient.ID, d patient.Draft) ([]string, error) {
	var errs []string

	if d.Email != "" {
		used, err := v.patients.EmailUsedByOther(ctx, d.Email, id)
		if err != nil {
			return nil, err
		}
		if used {
			errs = append(errs, MsgEmailInUse)
		} else if !emailRe.MatchString(d.Email) {
			errs = append(errs, MsgEmailInvalid)
		}
	}

	if d.DNI != "" {
		used, err := v.patients.DNIUsedByOther(ctx, d.DNI, id)
		if err != nil {
			return nil, err
		}
		if used {
			errs = append(errs, MsgDNIInUse)
		}
	}

	return errs, nil
}
