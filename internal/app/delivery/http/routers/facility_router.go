package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachFacilityRoutes(router chi.Router, facilityController *controllers.FacilityController) {
	router.Get("/", facilityController.FindAll)
	router.Put("/filter", facilityController.Filter)
	router.Post("/map", facilityController.RenderMap)
}
