package patient

import (
	"github.com/google/uuid"
)

type (
	Response struct {
		ID        uuid.UUID `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Address   string    `json:"address"`
		Phone     string    `json:"phone"`
		DNI       string    `json:"dni"`
		BirthDate string    `json:"birthDate,omitempty"`
	}
	Responses []Response

	PageResponse struct {
		Content       Responses `json:"content"`
		Page          int       `json:"page"`
		Size          int       `json:"size"`
		TotalElements int64     `json:"totalElements"`
	}
)
