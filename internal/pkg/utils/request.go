package utils

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"context"

	"github.com/google/uuid"
)

func ValidateUrlParamID(id string) error {
	_, err := uuid.Parse(id)
	return err
}

func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	return requestID
}

func SessionFromContext(ctx context.Context) (*models.Session, bool) {
	session, ok := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session, ok && session != nil
}
