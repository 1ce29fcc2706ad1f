package requests

import "time"

// UpsertAppointment takes the date and time as the clinic sees them.
type UpsertAppointment struct {
	ID                      string `json:"id" validate:"omitempty,uuid"`
	PatientID               string `json:"patientId" validate:"required,uuid"`
	DoctorID                string `json:"doctorId" validate:"required,uuid"`
	Date                    string `json:"date" validate:"required,calendar_date"`
	Time                    string `json:"time" validate:"required,time_of_day"`
	AppointmentPriceInCents int64  `json:"appointmentPriceInCents" validate:"gt=0"`
}

// AppointmentEvent is published to the broker after an appointment changes.
type AppointmentEvent struct {
	Event                   string    `json:"event"`
	AppointmentID           string    `json:"appointmentId"`
	ClinicID                string    `json:"clinicId"`
	DoctorID                string    `json:"doctorId"`
	PatientID               string    `json:"patientId"`
	Date                    time.Time `json:"date"`
	AppointmentPriceInCents int64     `json:"appointmentPriceInCents"`
	OccurredAt              time.Time `json:"occurredAt"`
}
