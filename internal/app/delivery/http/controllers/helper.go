package controllers

import (
	"agenda-service/internal/app/models"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"
)

// requestScope pulls the request id and the authenticated session out of the
// request context, writing the error response itself when either is missing.
func requestScope(log *zap.Logger, w http.ResponseWriter, r *http.Request, caller string) (string, *models.Session, bool) {
	requestID := utils.RequestIDFromContext(r.Context())
	if requestID == "" {
		log.Error(caller + " requestID not found in context")
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := utils.SessionFromContext(r.Context())
	if !ok {
		log.Error(caller+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}

	log.Info(caller+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
	)
	return requestID, session, true
}

func buildUsecaseErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(log, w, err)
}
