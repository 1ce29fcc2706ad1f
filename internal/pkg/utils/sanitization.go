package utils

import (
	"agenda-service/internal/pkg/dto/requests"
	"strings"
)

func collapseWhiteSpace(input string) string {
	return strings.Join(strings.Fields(input), " ")
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeSignUpRequest(input *requests.SignUp) {
	input.Name = collapseWhiteSpace(input.Name)
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeLoginRequest(input *requests.Login) {
	input.Email = sanitizeEmail(input.Email)
}

func SanitizeCreateClinicRequest(input *requests.CreateClinic) {
	input.Name = collapseWhiteSpace(input.Name)
}

func SanitizeUpsertDoctorRequest(input *requests.UpsertDoctor) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = collapseWhiteSpace(input.Name)
	input.Specialty = collapseWhiteSpace(input.Specialty)
	input.Sex = strings.ToLower(strings.TrimSpace(input.Sex))
	input.AvailableFromTime = strings.TrimSpace(input.AvailableFromTime)
	input.AvailableToTime = strings.TrimSpace(input.AvailableToTime)
}

func SanitizeUpsertPatientRequest(input *requests.UpsertPatient) {
	input.ID = strings.TrimSpace(input.ID)
	input.Name = collapseWhiteSpace(input.Name)
	input.Email = sanitizeEmail(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.Sex = strings.ToLower(strings.TrimSpace(input.Sex))
}

func SanitizeUpsertAppointmentRequest(input *requests.UpsertAppointment) {
	input.ID = strings.TrimSpace(input.ID)
	input.PatientID = strings.TrimSpace(input.PatientID)
	input.DoctorID = strings.TrimSpace(input.DoctorID)
	input.Date = strings.TrimSpace(input.Date)
	input.Time = strings.TrimSpace(input.Time)
}
