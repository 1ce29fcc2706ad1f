package patients

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

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type patientPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		instance := &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
		patientPostgresRepositoryInstance = instance
	})
	return patientPostgresRepositoryInstance
}

func (r *patientPostgresRepository) FindAll(ctx context.Context, clinicID, name string) ([]models.Patient, error) {
	rows, err := r.DB.Query(ctx, queries.FindPatientsByClinicQuery, clinicID, name)
	if err != nil {
		r.Log.Error("patientPostgresRepository.FindAll error querying patients",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		patients = append(patients, *patient)
	}

	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}

	return patients, nil
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, clinicID, patientID string) (*models.Patient, error) {
	patient, err := scanPatient(r.DB.QueryRow(ctx, queries.FindPatientByIDQuery, clinicID, patientID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("patientPostgresRepository.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return patient, nil
}

func (r *patientPostgresRepository) Upsert(ctx context.Context, patient *models.Patient) (*models.Patient, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Info("patientPostgresRepository.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, patient.ID),
	)

	patient.SetUpdatedAt()
	saved, err := scanPatient(r.DB.QueryRow(ctx, queries.UpsertPatientQuery,
		patient.ID,
		patient.ClinicID,
		patient.Name,
		patient.Email,
		patient.PhoneNumber,
		patient.Sex,
		patient.UpdatedAt,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		r.Log.Warn("patientPostgresRepository.Upsert patient belongs to another clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingPatientIDKey, patient.ID),
		)
		return nil, nil
	} else if err != nil {
		r.Log.Error("patientPostgresRepository.Upsert error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("patientPostgresRepository.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingPatientIDKey, saved.ID),
	)
	return saved, nil
}

func (r *patientPostgresRepository) Delete(ctx context.Context, clinicID, patientID string) (bool, error) {
	tag, err := r.DB.Exec(ctx, queries.DeletePatientQuery, clinicID, patientID)
	if err != nil {
		r.Log.Error("patientPostgresRepository.Delete error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
		return false, exceptions.ErrPostgresDBDeleteData(err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanPatient(row pgx.Row) (*models.Patient, error) {
	var patient models.Patient
	err := row.Scan(
		&patient.ID,
		&patient.ClinicID,
		&patient.Name,
		&patient.Email,
		&patient.PhoneNumber,
		&patient.Sex,
		&patient.CreatedAt,
		&patient.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
