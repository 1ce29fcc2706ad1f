package contracts

import (
	"agenda-service/internal/app/models"
	"context"
	"time"
)

type SessionService interface {
	Create(ctx context.Context, session *models.Session, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (*models.Session, error)
	// Update rewrites the session keeping its remaining lifetime.
	Update(ctx context.Context, session *models.Session) error
	Delete(ctx context.Context, sessionID string) error
}
