package utils

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/responses"
	"time"
)

// BuildAppointmentResponse shows the stored UTC instant together with the
// clinic's local date and time.
func BuildAppointmentResponse(detail models.AppointmentDetail, location *time.Location) responses.Appointment {
	local := detail.Date.In(location)
	return responses.Appointment{
		ID:                      detail.ID,
		ClinicID:                detail.ClinicID,
		Date:                    detail.Date.UTC(),
		LocalDate:               local.Format(constvars.DateLayout),
		LocalTime:               local.Format(constvars.ShortTimeLayout),
		AppointmentPriceInCents: detail.AppointmentPriceInCents,
		Patient: responses.AppointmentPatient{
			ID:          detail.Patient.ID,
			Name:        detail.Patient.Name,
			Email:       detail.Patient.Email,
			PhoneNumber: detail.Patient.PhoneNumber,
			Sex:         detail.Patient.Sex,
		},
		Doctor: responses.AppointmentDoctor{
			ID:        detail.Doctor.ID,
			Name:      detail.Doctor.Name,
			Specialty: detail.Doctor.Specialty,
		},
	}
}

func BuildAppointmentResponses(details []models.AppointmentDetail, location *time.Location) []responses.Appointment {
	result := make([]responses.Appointment, 0, len(details))
	for _, detail := range details {
		result = append(result, BuildAppointmentResponse(detail, location))
	}
	return result
}

func BuildPatientResponse(patient *models.Patient) responses.Patient {
	return responses.Patient{
		ID:          patient.ID,
		ClinicID:    patient.ClinicID,
		Name:        patient.Name,
		Email:       patient.Email,
		PhoneNumber: patient.PhoneNumber,
		Sex:         patient.Sex,
		CreatedAt:   patient.CreatedAt,
	}
}
