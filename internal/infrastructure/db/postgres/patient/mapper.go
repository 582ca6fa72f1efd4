package patient

import (
	domain "patient-manager-api/internal/domain/patient"
)

func fromDBModel(model *Patient) *domain.Patient {
	var p = &domain.Patient{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		DNI:       model.DNI,
		BirthDate: model.BirthDate,

		RegistrationDate: model.RegistrationDate,
		LastUpdateDate:   model.LastUpdateDate,
	}
	if model.Address != nil {
		p.Address = *model.Address
	}
	if model.Phone != nil {
		p.Phone = *model.Phone
	}

	return p
}

func fromDBModels(models *Patients) domain.Patients {
	ps := make(domain.Patients, len(*models))
	for idx, p := range *models {
		ps[idx] = fromDBModel(p)
	}

	return ps
}

// nullable maps the domain's empty-string convention onto a NULL column.
func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
