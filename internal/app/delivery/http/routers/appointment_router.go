package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, appointmentController *controllers.AppointmentController) {
	router.Use(middlewares.Authenticate, middlewares.RequireClinic)

	router.Get("/", appointmentController.FindAll)
	router.Post("/", appointmentController.Upsert)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamAppointmentID), appointmentController.Delete)
}
