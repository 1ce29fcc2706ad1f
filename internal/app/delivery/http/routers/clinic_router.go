package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachClinicRoutes(router chi.Router, middlewares *middlewares.Middlewares, clinicController *controllers.ClinicController) {
	router.Use(middlewares.Authenticate)
	router.Post("/", clinicController.Create)
	router.With(middlewares.RequireClinic).Get("/me", clinicController.FindMine)
}
