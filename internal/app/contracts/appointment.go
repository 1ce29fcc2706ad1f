package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type AppointmentRepository interface {
	FindAll(ctx context.Context, clinicID string) ([]models.AppointmentDetail, error)
	FindByID(ctx context.Context, clinicID, appointmentID string) (*models.Appointment, error)
	FindByPatientID(ctx context.Context, clinicID, patientID string) ([]models.AppointmentDetail, error)
	FindBetween(ctx context.Context, clinicID string, from, to time.Time) ([]models.AppointmentDetail, error)
	// FindBookedTimes returns the instants already taken for a doctor in [from, to).
	FindBookedTimes(ctx context.Context, doctorID string, from, to time.Time) ([]time.Time, error)
	Upsert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error)
	Delete(ctx context.Context, clinicID, appointmentID string) (bool, error)
}

type AppointmentUsecase interface {
	FindAll(ctx context.Context, session *models.Session) ([]responses.Appointment, error)
	Upsert(ctx context.Context, session *models.Session, request *requests.UpsertAppointment) (*responses.Appointment, error)
	Delete(ctx context.Context, session *models.Session, appointmentID string) error
}
