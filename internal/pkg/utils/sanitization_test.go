package utils

import (
	"agenda-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeSignUpRequest(t *testing.T) {
	t.Run("Email Sanitization", func(t *testing.T) {
		request := &requests.SignUp{
			Name:  "  Ana   Souza ",
			Email: "  ANA@CLINIC.COM  ",
		}

		SanitizeSignUpRequest(request)

		assert.Equal(t, "ana@clinic.com", request.Email, "email should be lowercase and trimmed")
		assert.Equal(t, "Ana Souza", request.Name, "name should have collapsed white space")
	})
}

func TestSanitizeUpsertDoctorRequest(t *testing.T) {
	request := &requests.UpsertDoctor{
		Name:              " Dr.  House ",
		Specialty:         " Diagnostic   medicine",
		Sex:               " MALE ",
		AvailableFromTime: " 08:00",
		AvailableToTime:   "18:00 ",
	}

	SanitizeUpsertDoctorRequest(request)

	assert.Equal(t, "Dr. House", request.Name)
	assert.Equal(t, "Diagnostic medicine", request.Specialty)
	assert.Equal(t, "male", request.Sex, "sex should be normalized to lowercase")
	assert.Equal(t, "08:00", request.AvailableFromTime)
	assert.Equal(t, "18:00", request.AvailableToTime)
}

func TestSanitizeUpsertAppointmentRequest(t *testing.T) {
	request := &requests.UpsertAppointment{
		PatientID: " 7d8c3c1a-0a7b-4d0e-9c4b-1f1f3b2a9e10 ",
		Date:      " 2024-03-06 ",
		Time:      " 09:30 ",
	}

	SanitizeUpsertAppointmentRequest(request)

	assert.Equal(t, "7d8c3c1a-0a7b-4d0e-9c4b-1f1f3b2a9e10", request.PatientID)
	assert.Equal(t, "2024-03-06", request.Date)
	assert.Equal(t, "09:30", request.Time)
}
