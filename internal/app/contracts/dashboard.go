package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
	"time"
)

type DashboardRepository interface {
	FindTotals(ctx context.Context, clinicID string, from, to time.Time) (*models.DashboardTotals, error)
	FindTopDoctors(ctx context.Context, clinicID string, from, to time.Time, limit int) ([]models.DoctorAppointmentCount, error)
	FindTopSpecialties(ctx context.Context, clinicID string, from, to time.Time) ([]models.SpecialtyAppointmentCount, error)
	FindDailyAppointments(ctx context.Context, clinicID string, from, to time.Time, location *time.Location) ([]models.DailyAppointmentCount, error)
}

type DashboardUsecase interface {
	Find(ctx context.Context, session *models.Session, request *requests.DashboardPeriod) (*responses.Dashboard, error)
}
