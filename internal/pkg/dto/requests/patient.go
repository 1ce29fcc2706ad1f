package requests

type UpsertPatient struct {
	ID          string `json:"id" validate:"omitempty,uuid"`
	Name        string `json:"name" validate:"required,min=3,max=255"`
	Email       string `json:"email" validate:"required,email"`
	PhoneNumber string `json:"phoneNumber" validate:"required,phone_number"`
	Sex         string `json:"sex" validate:"required,oneof=male female"`
}

type FindPatients struct {
	Name string `json:"name" validate:"omitempty,max=255"`
}
