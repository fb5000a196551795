package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachProfileRoutes(router chi.Router, profileController *controllers.ProfileController) {
	router.Post("/draft", profileController.BeginEdit)
	router.Patch("/draft", profileController.UpdateDraft)
	router.Post("/draft/commit", profileController.Commit)
	router.Delete("/draft", profileController.Cancel)
}
