package doctors

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
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type doctorPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	doctorPostgresRepositoryInstance contracts.DoctorRepository
	onceDoctorPostgresRepository     sync.Once
)

func NewDoctorPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.DoctorRepository {
	onceDoctorPostgresRepository.Do(func() {
		instance := &doctorPostgresRepository{
			DB:  db,
			Log: logger,
		}
		doctorPostgresRepositoryInstance = instance
	})
	return doctorPostgresRepositoryInstance
}

func (r *doctorPostgresRepository) FindAll(ctx context.Context, clinicID, name string) ([]models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	rows, err := r.DB.Query(ctx, queries.FindDoctorsByClinicQuery, clinicID, name)
	if err != nil {
		r.Log.Error("doctorPostgresRepository.FindAll error querying doctors",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	doctors := make([]models.Doctor, 0)
	for rows.Next() {
		doctor, err := scanDoctor(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		doctors = append(doctors, *doctor)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return doctors, nil
}

func (r *doctorPostgresRepository) FindByID(ctx context.Context, clinicID, doctorID string) (*models.Doctor, error) {
	doctor, err := scanDoctor(r.DB.QueryRow(ctx, queries.FindDoctorByIDQuery, clinicID, doctorID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("doctorPostgresRepository.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return doctor, nil
}

func (r *doctorPostgresRepository) Upsert(ctx context.Context, doctor *models.Doctor) (*models.Doctor, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Info("doctorPostgresRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
	)

	doctor.SetUpdatedAt()
	saved, err := scanDoctor(r.DB.QueryRow(ctx, queries.UpsertDoctorQuery,
		doctor.ID,
		doctor.ClinicID,
		doctor.Name,
		doctor.Specialty,
		doctor.Sex,
		doctor.AvatarImageURL,
		doctor.AppointmentPriceInCents,
		doctor.AvailableFromWeekDay,
		doctor.AvailableToWeekDay,
		doctor.AvailableFromTime,
		doctor.AvailableToTime,
		doctor.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		r.Log.Warn("doctorPostgresRepository.Upsert doctor belongs to another clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingDoctorIDKey, doctor.ID),
		)
		return nil, nil
	} else if err != nil {
		r.Log.Error("doctorPostgresRepository.Upsert error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("doctorPostgresRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, saved.ID),
	)
	return saved, nil
}

func (r *doctorPostgresRepository) UpdateAvatar(ctx context.Context, clinicID, doctorID, avatarImageURL string) (*models.Doctor, error) {
	doctor, err := scanDoctor(r.DB.QueryRow(ctx, queries.UpdateDoctorAvatarQuery, clinicID, doctorID, avatarImageURL, time.Now().UTC()))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("doctorPostgresRepository.UpdateAvatar error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBUpdateData(err)
	}
	return doctor, nil
}

func (r *doctorPostgresRepository) Delete(ctx context.Context, clinicID, doctorID string) (bool, error) {
	tag, err := r.DB.Exec(ctx, queries.DeleteDoctorQuery, clinicID, doctorID)
	if err != nil {
		r.Log.Error("doctorPostgresRepository.Delete error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *doctorPostgresRepository) FindAvailabilities(ctx context.Context, doctorID string) ([]models.DoctorAvailability, error) {
	rows, err := r.DB.Query(ctx, queries.FindDoctorAvailabilitiesQuery, doctorID)
	if err != nil {
		r.Log.Error("doctorPostgresRepository.FindAvailabilities error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, doctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	availabilities := make([]models.DoctorAvailability, 0)
	for rows.Next() {
		availability, err := scanDoctorAvailability(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		availabilities = append(availabilities, *availability)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return availabilities, nil
}

func (r *doctorPostgresRepository) UpsertAvailability(ctx context.Context, availability *models.DoctorAvailability) (*models.DoctorAvailability, error) {
	availability.SetUpdatedAt()
	saved, err := scanDoctorAvailability(r.DB.QueryRow(ctx, queries.UpsertDoctorAvailabilityQuery,
		availability.ID,
		availability.DoctorID,
		availability.FromWeekDay,
		availability.ToWeekDay,
		availability.FromTime,
		availability.ToTime,
		availability.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("doctorPostgresRepository.UpsertAvailability error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingDoctorIDKey, availability.DoctorID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}
	return saved, nil
}

func scanDoctor(row pgx.Row) (*models.Doctor, error) {
	var doctor models.Doctor
	err := row.Scan(
		&doctor.ID,
		&doctor.ClinicID,
		&doctor.Name,
		&doctor.Specialty,
		&doctor.Sex,
		&doctor.AvatarImageURL,
		&doctor.AppointmentPriceInCents,
		&doctor.AvailableFromWeekDay,
		&doctor.AvailableToWeekDay,
		&doctor.AvailableFromTime,
		&doctor.AvailableToTime,
		&doctor.CreatedAt,
		&doctor.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func scanDoctorAvailability(row pgx.Row) (*models.DoctorAvailability, error) {
	var availability models.DoctorAvailability
	err := row.Scan(
		&availability.ID,
		&availability.DoctorID,
		&availability.FromWeekDay,
		&availability.ToWeekDay,
		&availability.FromTime,
		&availability.ToTime,
		&availability.CreatedAt,
		&availability.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &availability, nil
}
