package patient

type Request struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	DNI       string `json:"dni"`
	BirthDate string `json:"birthDate"`
}
