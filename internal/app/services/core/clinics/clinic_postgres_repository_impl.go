package clinics

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

type clinicPostgresRepository struct {
	DB  *pgxpool.Pool
	Log *zap.Logger
}

var (
	clinicPostgresRepositoryInstance contracts.ClinicRepository
	onceClinicPostgresRepository     sync.Once
)

func NewClinicPostgresRepository(db *pgxpool.Pool, logger *zap.Logger) contracts.ClinicRepository {
	onceClinicPostgresRepository.Do(func() {
		instance := &clinicPostgresRepository{
			DB:  db,
			Log: logger,
		}
		clinicPostgresRepositoryInstance = instance
	})
	return clinicPostgresRepositoryInstance
}

func (r *clinicPostgresRepository) CreateWithOwner(ctx context.Context, clinic *models.Clinic, userID string) (*models.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	r.Log.Info("clinicPostgresRepository.CreateWithOwner called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	tx, err := r.DB.Begin(ctx)
	if err != nil {
		r.Log.Error("clinicPostgresRepository.CreateWithOwner error beginning transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBBeginTx(err)
	}
	defer tx.Rollback(ctx)

	clinic.SetCreatedAtUpdatedAt()
	created, err := scanClinic(tx.QueryRow(ctx, queries.CreateClinicQuery, clinic.ID, clinic.Name, clinic.CreatedAt))
	if err != nil {
		r.Log.Error("clinicPostgresRepository.CreateWithOwner error inserting clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	_, err = tx.Exec(ctx, queries.CreateUserClinicQuery, userID, created.ID, clinic.CreatedAt)
	if err != nil {
		r.Log.Error("clinicPostgresRepository.CreateWithOwner error linking user to clinic",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBInsertData(err)
	}

	err = tx.Commit(ctx)
	if err != nil {
		r.Log.Error("clinicPostgresRepository.CreateWithOwner error committing transaction",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBCommitTx(err)
	}

	r.Log.Info("clinicPostgresRepository.CreateWithOwner succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, created.ID),
	)
	return created, nil
}

func (r *clinicPostgresRepository) FindByUserID(ctx context.Context, userID string) (*models.Clinic, error) {
	clinic, err := scanClinic(r.DB.QueryRow(ctx, queries.FindClinicByUserIDQuery, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("clinicPostgresRepository.FindByUserID error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return clinic, nil
}

func (r *clinicPostgresRepository) FindByID(ctx context.Context, clinicID string) (*models.Clinic, error) {
	clinic, err := scanClinic(r.DB.QueryRow(ctx, queries.FindClinicByIDQuery, clinicID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		r.Log.Error("clinicPostgresRepository.FindByID error",
			zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return clinic, nil
}

func scanClinic(row pgx.Row) (*models.Clinic, error) {
	var clinic models.Clinic
	err := row.Scan(&clinic.ID, &clinic.Name, &clinic.CreatedAt, &clinic.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &clinic, nil
}
