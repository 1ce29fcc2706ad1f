package controllers

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.FindAll")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.FindAll(ctx, session)
	if err != nil {
		ctrl.Log.Error("AppointmentController.FindAll error calling AppointmentUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, response)
}

func (ctrl *AppointmentController) Upsert(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.Upsert")
	if !ok {
		return
	}

	request := new(requests.UpsertAppointment)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpsertAppointmentRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.AppointmentUsecase.Upsert(ctx, session, request)
	if err != nil {
		ctrl.Log.Error("AppointmentController.Upsert error calling AppointmentUsecase.Upsert",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AppointmentController.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertAppointmentSuccessMessage, response)
}

func (ctrl *AppointmentController) Delete(w http.ResponseWriter, r *http.Request) {
	_, session, ok := requestScope(ctrl.Log, w, r, "AppointmentController.Delete")
	if !ok {
		return
	}

	appointmentID := chi.URLParam(r, constvars.URLParamAppointmentID)
	if err := utils.ValidateUrlParamID(appointmentID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamAppointmentID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	err := ctrl.AppointmentUsecase.Delete(ctx, session, appointmentID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}
