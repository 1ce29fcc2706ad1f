package auth

import (
	"agenda-service/internal/app/config"
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type authUsecase struct {
	UserRepository   contracts.UserRepository
	ClinicRepository contracts.ClinicRepository
	SessionService   contracts.SessionService
	LoginLimiter     contracts.AttemptLimiter
	InternalConfig   *config.InternalConfig
	Log              *zap.Logger
}

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	clinicRepository contracts.ClinicRepository,
	sessionService contracts.SessionService,
	loginLimiter contracts.AttemptLimiter,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AuthUsecase {
	return &authUsecase{
		UserRepository:   userRepository,
		ClinicRepository: clinicRepository,
		SessionService:   sessionService,
		LoginLimiter:     loginLimiter,
		InternalConfig:   internalConfig,
		Log:              logger,
	}
}

func (uc *authUsecase) SignUp(ctx context.Context, request *requests.SignUp) (*responses.SignUp, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.SignUp called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error calling UserRepository.FindByEmail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrEmailAlreadyExist(nil)
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		ID:       uuid.NewString(),
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
	}
	if uc.InternalConfig.App.DefaultPlan != "" {
		plan := uc.InternalConfig.App.DefaultPlan
		user.Plan = &plan
	}

	createdUser, err := uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		uc.Log.Error("authUsecase.SignUp error calling UserRepository.CreateUser",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("authUsecase.SignUp succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, createdUser.ID),
	)
	return &responses.SignUp{
		UserID: createdUser.ID,
		Name:   createdUser.Name,
		Email:  createdUser.Email,
	}, nil
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Login, error) {
	requestID := utils.RequestIDFromContext(ctx)
	uc.Log.Info("authUsecase.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	allowed, err := uc.LoginLimiter.Allow(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if !allowed {
		uc.Log.Warn("authUsecase.Login too many attempts",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		return nil, exceptions.ErrTooManyRequests(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidEmailOrPassword(nil)
	}

	clinic, err := uc.ClinicRepository.FindByUserID(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	session := &models.Session{
		SessionID: uuid.NewString(),
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Plan:      user.Plan,
	}
	if clinic != nil {
		session.ClinicID = &clinic.ID
	}

	ttl := time.Duration(uc.InternalConfig.App.SessionExpTimeInHour) * time.Hour
	err = uc.SessionService.Create(ctx, session, ttl)
	if err != nil {
		return nil, err
	}

	token, err := utils.GenerateSessionJWT(session.SessionID, uc.InternalConfig.JWT.Secret, ttl)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("authUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return &responses.Login{
		Token:    token,
		UserID:   user.ID,
		Name:     user.Name,
		Email:    user.Email,
		ClinicID: session.ClinicID,
		Plan:     session.Plan,
	}, nil
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	uc.Log.Info("authUsecase.Logout called",
		zap.String(constvars.LoggingRequestIDKey, utils.RequestIDFromContext(ctx)),
		zap.String(constvars.LoggingSessionIDKey, session.SessionID),
	)
	return uc.SessionService.Delete(ctx, session.SessionID)
}
