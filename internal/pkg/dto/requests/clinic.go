package requests

type CreateClinic struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}
