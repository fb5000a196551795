package routers

import (
	"healthease-client/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachReportRoutes(router chi.Router, reportController *controllers.ReportController) {
	router.Post("/upload", reportController.Upload)
	router.Get("/upload/progress", reportController.UploadProgress)
	router.Get("/{reportID}", reportController.FindByID)
}
