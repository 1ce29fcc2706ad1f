package clinics

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type clinicUsecase struct {
	ClinicRepository contracts.ClinicRepository
	SessionService   contracts.SessionService
	Log              *zap.Logger
}

func NewClinicUsecase(clinicRepository contracts.ClinicRepository, sessionService contracts.SessionService, logger *zap.Logger) contracts.ClinicUsecase {
	return &clinicUsecase{
		ClinicRepository: clinicRepository,
		SessionService:   sessionService,
		Log:              logger,
	}
}

// Create registers the user's clinic and stores its id in the session.
func (uc *clinicUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateClinic) (*responses.Clinic, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("clinicUsecase.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)

	if session.HasClinic() {
		return nil, exceptions.ErrClinicAlreadyRegistered(nil)
	}

	existing, err := uc.ClinicRepository.FindByUserID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrClinicAlreadyRegistered(nil)
	}

	clinic, err := uc.ClinicRepository.CreateWithOwner(ctx, &models.Clinic{
		ID:   uuid.NewString(),
		Name: request.Name,
	}, session.UserID)
	if err != nil {
		uc.Log.Error("clinicUsecase.Create error calling ClinicRepository.CreateWithOwner",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	session.ClinicID = &clinic.ID
	err = uc.SessionService.Update(ctx, session)
	if err != nil {
		uc.Log.Error("clinicUsecase.Create error calling SessionService.Update",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("clinicUsecase.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingClinicIDKey, clinic.ID),
	)
	return toClinicResponse(clinic), nil
}

func (uc *clinicUsecase) FindMine(ctx context.Context, session *models.Session) (*responses.Clinic, error) {
	if !session.HasClinic() {
		return nil, exceptions.ErrClinicRequired(nil)
	}

	clinic, err := uc.ClinicRepository.FindByID(ctx, session.Clinic())
	if err != nil {
		return nil, err
	}
	if clinic == nil {
		return nil, exceptions.ErrClinicNotFound(nil)
	}
	return toClinicResponse(clinic), nil
}

func toClinicResponse(clinic *models.Clinic) *responses.Clinic {
	return &responses.Clinic{
		ID:        clinic.ID,
		Name:      clinic.Name,
		CreatedAt: clinic.CreatedAt,
	}
}
