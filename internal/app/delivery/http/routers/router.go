package routers

import (
	"fmt"
	"strings"
	"time"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/delivery/http/controllers"
	"healthease-client/internal/app/delivery/http/middlewares"
	"healthease-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

type Controllers struct {
	Session     *controllers.SessionController
	Collection  *controllers.CollectionController
	Report      *controllers.ReportController
	Appointment *controllers.AppointmentController
	Facility    *controllers.FacilityController
	Profile     *controllers.ProfileController
	Emergency   *controllers.EmergencyController
	Medicine    *controllers.MedicineController
}

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	controllers *Controllers,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   strings.Split(internalConfig.Control.AllowedOrigins, ","),
		AllowedMethods:   []string{constvars.MethodGet, constvars.MethodPost, constvars.MethodPut, constvars.MethodPatch, constvars.MethodDelete, constvars.MethodOptions},
		AllowedHeaders:   []string{constvars.HeaderAccept, constvars.HeaderContentType, constvars.HeaderXRequestID, constvars.HeaderXAPIKey},
		ExposedHeaders:   []string{constvars.HeaderXRequestID},
		AllowCredentials: false,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(httprate.LimitByIP(internalConfig.Control.MaxRequests, time.Second))

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.Control.EndpointPrefix)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Use(middlewares.ControlAPIKey)

		attachSessionRoutes(r, controllers.Session)

		r.Route("/collections", func(r chi.Router) {
			attachCollectionRoutes(r, controllers.Collection)
		})

		r.Route("/reports", func(r chi.Router) {
			attachReportRoutes(r, controllers.Report)
		})

		r.Route("/appointments", func(r chi.Router) {
			attachAppointmentRoutes(r, controllers.Appointment)
		})

		r.Route("/facilities", func(r chi.Router) {
			attachFacilityRoutes(r, controllers.Facility)
		})

		r.Route("/profile", func(r chi.Router) {
			attachProfileRoutes(r, controllers.Profile)
		})

		r.Route("/sos", func(r chi.Router) {
			attachEmergencyRoutes(r, controllers.Emergency)
		})

		r.Route("/medicines", func(r chi.Router) {
			attachMedicineRoutes(r, controllers.Medicine)
		})
	})
}
