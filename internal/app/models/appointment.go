package models

import "time"

// Appointment.Date is an absolute instant kept in UTC.
type Appointment struct {
	ID                      string    `json:"id" db:"id"`
	ClinicID                string    `json:"clinicId" db:"clinic_id"`
	PatientID               string    `json:"patientId" db:"patient_id"`
	DoctorID                string    `json:"doctorId" db:"doctor_id"`
	Date                    time.Time `json:"date" db:"date"`
	AppointmentPriceInCents int64     `json:"appointmentPriceInCents" db:"appointment_price_in_cents"`
	TimeModel
}

// AppointmentDetail joins an appointment with its patient and doctor.
type AppointmentDetail struct {
	Appointment
	Patient Patient `json:"patient"`
	Doctor  Doctor  `json:"doctor"`
}
