package models

type Patient struct {
	ID          string `json:"id" db:"id"`
	ClinicID    string `json:"clinicId" db:"clinic_id"`
	Name        string `json:"name" db:"name"`
	Email       string `json:"email" db:"email"`
	PhoneNumber string `json:"phoneNumber" db:"phone_number"`
	Sex         string `json:"sex" db:"sex"`
	TimeModel
}
