package controllers

import (
	"agenda-service/internal/app/contracts"
	"agenda-service/internal/pkg/constvars"
	"agenda-service/internal/pkg/dto/requests"
	"agenda-service/internal/pkg/exceptions"
	"agenda-service/internal/pkg/utils"
	"context"
	"net/http"
	"path/filepath"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.FindAll")
	if !ok {
		return
	}

	request := &requests.FindDoctors{Name: r.URL.Query().Get(constvars.URLQueryParamName)}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindAll(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, response)
}

func (ctrl *DoctorController) Upsert(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.Upsert")
	if !ok {
		return
	}

	request := new(requests.UpsertDoctor)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	utils.SanitizeUpsertDoctorRequest(request)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.Upsert(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.Upsert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertDoctorSuccessMessage, response)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	_, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.Delete")
	if !ok {
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if err := utils.ValidateUrlParamID(doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	err := ctrl.DoctorUsecase.Delete(ctx, session, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteDoctorSuccessMessage, nil)
}

func (ctrl *DoctorController) FindAvailabilities(w http.ResponseWriter, r *http.Request) {
	_, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.FindAvailabilities")
	if !ok {
		return
	}

	doctorID := chi.URLParam(r, constvars.URLParamDoctorID)
	if err := utils.ValidateUrlParamID(doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.URLParamDoctorID))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindAvailabilities(ctx, session, doctorID)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorAvailabilitiesSuccessMessage, response)
}

func (ctrl *DoctorController) UpsertAvailability(w http.ResponseWriter, r *http.Request) {
	_, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.UpsertAvailability")
	if !ok {
		return
	}

	request := new(requests.UpsertDoctorAvailability)
	err := json.NewDecoder(r.Body).Decode(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	request.DoctorID = chi.URLParam(r, constvars.URLParamDoctorID)

	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UpsertAvailability(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpsertDoctorAvailabilitySuccessMessage, response)
}

// UploadAvatar takes a multipart form with the image under the "avatar" field.
func (ctrl *DoctorController) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.UploadAvatar")
	if !ok {
		return
	}

	maxUploadSize := int64(constvars.AVATAR_MAX_UPLOAD_SIZE_IN_MB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	err := r.ParseMultipartForm(maxUploadSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	file, header, err := r.FormFile(constvars.FormFileAvatar)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}
	defer file.Close()

	request := &requests.UploadDoctorAvatar{
		DoctorID:      chi.URLParam(r, constvars.URLParamDoctorID),
		FileName:      header.Filename,
		ContentType:   header.Header.Get(constvars.HeaderContentType),
		FileSize:      header.Size,
		FileExtension: filepath.Ext(header.Filename),
		File:          file,
	}
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.UploadAvatar(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.UploadAvatar succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDoctorIDKey, response.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UploadDoctorAvatarSuccessMessage, response)
}

func (ctrl *DoctorController) FindAvailableTimes(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := requestScope(ctrl.Log, w, r, "DoctorController.FindAvailableTimes")
	if !ok {
		return
	}

	request := &requests.FindAvailableTimes{
		DoctorID: chi.URLParam(r, constvars.URLParamDoctorID),
		Date:     r.URL.Query().Get(constvars.URLQueryParamDate),
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DoctorUsecase.FindAvailableTimes(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.FindAvailableTimes succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingDateKey, request.Date),
		zap.Int(constvars.LoggingSlotCountKey, len(response)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAvailableTimesSuccessMessage, response)
}
