package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachCollectionRoutes(router chi.Router, collectionController *controllers.CollectionController) {
	router.Get("/", collectionController.FindAll)
	router.Post("/{collection}/refresh", collectionController.Refresh)
}
