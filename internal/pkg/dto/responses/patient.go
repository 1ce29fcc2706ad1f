package responses

import "time"

type Patient struct {
	ID          string    `json:"id"`
	ClinicID    string    `json:"clinicId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phoneNumber"`
	Sex         string    `json:"sex"`
	CreatedAt   time.Time `json:"createdAt"`
}
