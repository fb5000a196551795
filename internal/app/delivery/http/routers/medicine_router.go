package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachMedicineRoutes(router chi.Router, medicineController *controllers.MedicineController) {
	router.Get("/", medicineController.Search)
}
