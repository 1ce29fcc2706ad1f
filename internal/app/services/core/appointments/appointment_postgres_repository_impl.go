package appointments

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/queries"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type appointmentPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	appointmentPostgresRepositoryInstance contracts.AppointmentRepository
	onceAppointmentPostgresRepository     sync.Once
)

func NewAppointmentPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.AppointmentRepository {
	onceAppointmentPostgresRepository.Do(func() {
		instance := &appointmentPostgresRepository{
			DB:  db,
			Log: logger,
		}
		appointmentPostgresRepositoryInstance = instance
	})
	return appointmentPostgresRepositoryInstance
}

func (r *appointmentPostgresRepository) FindAll(ctx context.Context, clinicID string) ([]models.AppointmentDetail, error) {
	return r.findDetails(ctx, "appointmentPostgresRepository.FindAll", queries.FindAppointmentsByClinicQuery, clinicID)
}

func (r *appointmentPostgresRepository) FindByPatientID(ctx context.Context, clinicID, patientID string) ([]models.AppointmentDetail, error) {
	return r.findDetails(ctx, "appointmentPostgresRepository.FindByPatientID", queries.FindAppointmentsByPatientQuery, clinicID, patientID)
}

func (r *appointmentPostgresRepository) FindBetween(ctx context.Context, clinicID string, from, to time.Time) ([]models.AppointmentDetail, error) {
	return r.findDetails(ctx, "appointmentPostgresRepository.FindBetween", queries.FindAppointmentsBetweenQuery, clinicID, from.UTC(), to.UTC())
}

func (r *appointmentPostgresRepository) findDetails(ctx context.Context, caller, query string, args ...interface{}) ([]models.AppointmentDetail, error) {
	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		r.Log.Error(caller+" error querying appointments",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	details := make([]models.AppointmentDetail, 0)
	for rows.Next() {
		var detail models.AppointmentDetail
		err := rows.Scan(
			&detail.ID,
			&detail.ClinicID,
			&detail.PatientID,
			&detail.DoctorID,
			&detail.Date,
			&detail.AppointmentPriceInCents,
			&detail.CreatedAt,
			&detail.UpdatedAt,
			&detail.Patient.ID,
			&detail.Patient.Name,
			&detail.Patient.Email,
			&detail.Patient.PhoneNumber,
			&detail.Patient.Sex,
			&detail.Doctor.ID,
			&detail.Doctor.Name,
			&detail.Doctor.Specialty,
			&detail.Doctor.AvatarImageURL,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		detail.Date = detail.Date.UTC()
		details = append(details, detail)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return details, nil
}

func (r *appointmentPostgresRepository) FindByID(ctx context.Context, clinicID, appointmentID string) (*models.Appointment, error) {
	appointment, err := scanAppointment(r.DB.QueryRow(ctx, queries.FindAppointmentByIDQuery, clinicID, appointmentID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return appointment, nil
}

func (r *appointmentPostgresRepository) FindBookedTimes(ctx context.Context, doctorID string, from, to time.Time) ([]time.Time, error) {
	rows, err := r.DB.Query(ctx, queries.FindBookedTimesQuery, doctorID, from.UTC(), to.UTC())
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.FindBookedTimes error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	booked := make([]time.Time, 0)
	for rows.Next() {
		var date time.Time
		if err := rows.Scan(&date); err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		booked = append(booked, date.UTC())
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return booked, nil
}

func (r *appointmentPostgresRepository) Upsert(ctx context.Context, appointment *models.Appointment) (*models.Appointment, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Info("appointmentPostgresRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		zap.Time(constvars.LoggingTimestampKey, appointment.Date),
	)

	appointment.SetUpdatedAt()
	saved, err := scanAppointment(r.DB.QueryRow(ctx, queries.UpsertAppointmentQuery,
		appointment.ID,
		appointment.ClinicID,
		appointment.PatientID,
		appointment.DoctorID,
		appointment.Date.UTC(),
		appointment.AppointmentPriceInCents,
		appointment.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		r.Log.Warn("appointmentPostgresRepository.Upsert appointment belongs to another clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAppointmentIDKey, appointment.ID),
		)
		return nil, nil
	} else if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == constvars.PostgresUniqueViolationCode {
			r.Log.Warn("appointmentPostgresRepository.Upsert slot already booked",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingDoctorIDKey, appointment.DoctorID),
				zap.Time(constvars.LoggingTimestampKey, appointment.Date),
			)
			return nil, exceptions.ErrSlotAlreadyBooked(err)
		}
		r.Log.Error("appointmentPostgresRepository.Upsert error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("appointmentPostgresRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, saved.ID),
	)
	return saved, nil
}

func (r *appointmentPostgresRepository) Delete(ctx context.Context, clinicID, appointmentID string) (bool, error) {
	tag, err := r.DB.Exec(ctx, queries.DeleteAppointmentQuery, clinicID, appointmentID)
	if err != nil {
		r.Log.Error("appointmentPostgresRepository.Delete error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingAppointmentIDKey, appointmentID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanAppointment(row pgx.Row) (*models.Appointment, error) {
	var appointment models.Appointment
	err := row.Scan(
		&appointment.ID,
		&appointment.ClinicID,
		&appointment.PatientID,
		&appointment.DoctorID,
		&appointment.Date,
		&appointment.AppointmentPriceInCents,
		&appointment.CreatedAt,
		&appointment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	appointment.Date = appointment.Date.UTC()
	return &appointment, nil
}
