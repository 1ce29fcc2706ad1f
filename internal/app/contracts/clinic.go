package contracts

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/dto/responses"
	"context"
)

type ClinicRepository interface {
	// CreateWithOwner inserts the clinic and links the user in one transaction.
	CreateWithOwner(ctx context.Context, clinic *models.Clinic, userID string) (*models.Clinic, error)
	FindByUserID(ctx context.Context, userID string) (*models.Clinic, error)
	FindByID(ctx context.Context, clinicID string) (*models.Clinic, error)
}

type ClinicUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateClinic) (*responses.Clinic, error)
	FindMine(ctx context.Context, session *models.Session) (*responses.Clinic, error)
}
