package patient

import (
	"errors"
	"time"

	domain "patient-manager-api/internal/domain/patient"
)

// Dates cross the wire in two layouts: requests carry ISO dates,
// responses render dd-MM-yyyy.
const (
	BirthDateRequestLayout  = "2006-01-02"
	BirthDateResponseLayout = "02-01-2006"
)

func ToResponse(pDomain domain.Patient) Response {
	var p = Response{
		ID:      pDomain.ID,
		Name:    pDomain.Name,
		Email:   pDomain.Email,
		Address: pDomain.Address,
		Phone:   pDomain.Phone,
		DNI:     pDomain.DNI,
	}
	if pDomain.BirthDate != nil {
		p.BirthDate = pDomain.BirthDate.Format(BirthDateResponseLayout)
	}

	return p
}

func ToResponses(psDomain domain.Patients) Responses {
	ps := make(Responses, len(psDomain))
	for idx, p := range psDomain {
		ps[idx] = ToResponse(*p)
	}

	return ps
}

func ToPageResponse(page domain.Page) PageResponse {
	return PageResponse{
		Content:       ToResponses(page.Content),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
	}
}

func ToDraft(pRequest Request) (domain.Draft, error) {
	var d = domain.Draft{
		Name:    pRequest.Name,
		Email:   pRequest.Email,
		Address: pRequest.Address,
		Phone:   pRequest.Phone,
		DNI:     pRequest.DNI,
	}
	if pRequest.BirthDate != "" {
		bd, err := time.Parse(BirthDateRequestLayout, pRequest.BirthDate)
		if err != nil {
			return domain.Draft{}, errors.New("invalid birthDate format, want YYYY-MM-DD")
		}
		d.BirthDate = &bd
	}

	return d, nil
}
