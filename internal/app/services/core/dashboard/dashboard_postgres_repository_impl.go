package dashboard

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/queries"
	"agenda-service/internal/pkg/utils"
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type dashboardPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	dashboardPostgresRepositoryInstance contracts.DashboardRepository
	onceDashboardPostgresRepository     sync.Once
)

func NewDashboardPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.DashboardRepository {
	onceDashboardPostgresRepository.Do(func() {
		instance := &dashboardPostgresRepository{
			DB:  db,
			Log: logger,
		}
		dashboardPostgresRepositoryInstance = instance
	})
	return dashboardPostgresRepositoryInstance
}

func (r *dashboardPostgresRepository) FindTotals(ctx context.Context, clinicID string, from, to time.Time) (*models.DashboardTotals, error) {
	var totals models.DashboardTotals
	err := r.DB.QueryRow(ctx, queries.FindDashboardTotalsQuery, clinicID, from.UTC(), to.UTC()).Scan(
		&totals.TotalRevenue,
		&totals.TotalAppointments,
		&totals.TotalPatients,
		&totals.TotalDoctors,
	)
	if err != nil {
		r.Log.Error("dashboardPostgresRepository.FindTotals error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &totals, nil
}

func (r *dashboardPostgresRepository) FindTopDoctors(ctx context.Context, clinicID string, from, to time.Time, limit int) ([]models.DoctorAppointmentCount, error) {
	rows, err := r.DB.Query(ctx, queries.FindDashboardTopDoctorsQuery, clinicID, from.UTC(), to.UTC(), limit)
	if err != nil {
		r.Log.Error("dashboardPostgresRepository.FindTopDoctors error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	doctors := make([]models.DoctorAppointmentCount, 0)
	for rows.Next() {
		var doctor models.DoctorAppointmentCount
		err := rows.Scan(&doctor.ID, &doctor.Name, &doctor.Specialty, &doctor.AvatarImageURL, &doctor.TotalAppointments)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		doctors = append(doctors, doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return doctors, nil
}

func (r *dashboardPostgresRepository) FindTopSpecialties(ctx context.Context, clinicID string, from, to time.Time) ([]models.SpecialtyAppointmentCount, error) {
	rows, err := r.DB.Query(ctx, queries.FindDashboardTopSpecialtiesQuery, clinicID, from.UTC(), to.UTC())
	if err != nil {
		r.Log.Error("dashboardPostgresRepository.FindTopSpecialties error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	specialties := make([]models.SpecialtyAppointmentCount, 0)
	for rows.Next() {
		var specialty models.SpecialtyAppointmentCount
		if err := rows.Scan(&specialty.Specialty, &specialty.TotalAppointments); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		specialties = append(specialties, specialty)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return specialties, nil
}

func (r *dashboardPostgresRepository) FindDailyAppointments(ctx context.Context, clinicID string, from, to time.Time, location *time.Location) ([]models.DailyAppointmentCount, error) {
	rows, err := r.DB.Query(ctx, queries.FindDashboardDailyAppointmentsQuery, clinicID, from.UTC(), to.UTC(), location.String())
	if err != nil {
		r.Log.Error("dashboardPostgresRepository.FindDailyAppointments error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	points := make([]models.DailyAppointmentCount, 0)
	for rows.Next() {
		var point models.DailyAppointmentCount
		if err := rows.Scan(&point.Date, &point.Appointments, &point.Revenue); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		points = append(points, point)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return points, nil
}
