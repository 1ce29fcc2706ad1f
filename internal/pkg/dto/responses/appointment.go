package responses

import "time"

type Appointment struct {
	ID                      string             `json:"id"`
	ClinicID                string             `json:"clinicId"`
	Date                    time.Time          `json:"date"`
	LocalDate               string             `json:"localDate"`
	LocalTime               string             `json:"localTime"`
	AppointmentPriceInCents int64              `json:"appointmentPriceInCents"`
	Patient                 AppointmentPatient `json:"patient"`
	Doctor                  AppointmentDoctor  `json:"doctor"`
}

type AppointmentPatient struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email,omitempty"`
	PhoneNumber string `json:"phoneNumber,omitempty"`
	Sex         string `json:"sex,omitempty"`
}

type AppointmentDoctor struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}
