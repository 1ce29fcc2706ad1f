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

	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	DashboardUsecase contracts.DashboardUsecase
}

func NewDashboardController(logger *zap.Logger, dashboardUsecase contracts.DashboardUsecase) *DashboardController {
	return &DashboardController{
		Log:              logger,
		DashboardUsecase: dashboardUsecase,
	}
}

func (ctrl *DashboardController) Find(w http.ResponseWriter, r *http.Request) {
	_, session, ok := requestScope(ctrl.Log, w, r, "DashboardController.Find")
	if !ok {
		return
	}

	request := &requests.DashboardPeriod{
		From: r.URL.Query().Get(constvars.URLQueryParamFrom),
		To:   r.URL.Query().Get(constvars.URLQueryParamTo),
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), constvars.DEFAULT_REQUEST_TIMEOUT_IN_SECONDS*time.Second)
	defer cancel()

	response, err := ctrl.DashboardUsecase.Find(ctx, session, request)
	if err != nil {
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDashboardSuccessMessage, response)
}
