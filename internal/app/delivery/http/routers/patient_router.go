package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, patientController *controllers.PatientController) {
	router.Use(middlewares.Authenticate, middlewares.RequireClinic)

	router.Get("/", patientController.FindAll)
	router.Post("/", patientController.Upsert)

	patientPath := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)
	router.Delete(patientPath, patientController.Delete)
	router.Get(patientPath+"/history", patientController.FindHistory)
}
