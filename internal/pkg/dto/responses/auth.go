package responses

type Login struct {
	Token    string  `json:"token"`
	UserID   string  `json:"userId"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	ClinicID *string `json:"clinicId"`
	Plan     *string `json:"plan"`
}

type SignUp struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}
