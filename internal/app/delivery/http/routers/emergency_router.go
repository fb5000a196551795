package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachEmergencyRoutes(router chi.Router, emergencyController *controllers.EmergencyController) {
	router.Post("/", emergencyController.TriggerSOS)
}
