package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *controllers.SessionController) {
	router.Get("/state", sessionController.GetState)
	router.Post("/navigate", sessionController.Navigate)
	router.Post("/logout", sessionController.Logout)
}
