package routers

import (
	"agenda-service/internal/app/delivery/http/controllers"
	"agenda-service/internal/app/delivery/http/middlewares"
	"agenda-service/internal/pkg/constvars"
	"fmt"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *controllers.DoctorController) {
	router.Use(middlewares.Authenticate, middlewares.RequireClinic, middlewares.RequirePlan)

	router.Get("/", doctorController.FindAll)
	router.Post("/", doctorController.Upsert)

	doctorPath := fmt.Sprintf("/{%s}", constvars.URLParamDoctorID)
	router.Route(doctorPath, func(r chi.Router) {
		r.Delete("/", doctorController.Delete)
		r.Get("/availabilities", doctorController.FindAvailabilities)
		r.Post("/availabilities", doctorController.UpsertAvailability)
		r.Put("/avatar", doctorController.UploadAvatar)
		r.Get("/available-times", doctorController.FindAvailableTimes)
	})
}
