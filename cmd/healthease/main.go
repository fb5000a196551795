package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"healthease-client/internal/app/config"
	"healthease-client/internal/app/contracts"
	"healthease-client/internal/app/delivery/http/controllers"
	"healthease-client/internal/app/delivery/http/middlewares"
	"healthease-client/internal/app/delivery/http/routers"
	"healthease-client/internal/app/drivers/database"
	"healthease-client/internal/app/drivers/logger"
	"healthease-client/internal/app/drivers/messaging"
	"healthease-client/internal/app/drivers/storage"
	"healthease-client/internal/app/models"
	"healthease-client/internal/app/services/core/appointments"
	"healthease-client/internal/app/services/core/bootstrapper"
	"healthease-client/internal/app/services/core/doctors"
	"healthease-client/internal/app/services/core/emergency"
	"healthease-client/internal/app/services/core/facilities"
	"healthease-client/internal/app/services/core/health"
	"healthease-client/internal/app/services/core/loader"
	"healthease-client/internal/app/services/core/medicines"
	"healthease-client/internal/app/services/core/orchestrator"
	"healthease-client/internal/app/services/core/profile"
	"healthease-client/internal/app/services/core/reports"
	"healthease-client/internal/app/services/core/uploads"
	"healthease-client/internal/app/services/core/views"
	"healthease-client/internal/app/services/shared/activity"
	"healthease-client/internal/app/services/shared/gateway"
	"healthease-client/internal/app/services/shared/location"
	"healthease-client/internal/app/services/shared/mapview"
	"healthease-client/internal/app/services/shared/redis"
	"healthease-client/internal/app/services/shared/sessionstore"
	fileStorage "healthease-client/internal/app/services/shared/storage"
	"healthease-client/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// application is the wired client: everything a shell drives plus the
// startup hooks.
type application struct {
	Orchestrator contracts.Orchestrator
	Bootstrapper contracts.SessionBootstrapper
	Health       contracts.HealthService
	Map          *mapview.MapService
	Activity     contracts.ActivityPublisher
}

func main() {
	rootCmd := &cobra.Command{
		Use:   "healthease",
		Short: "HealthEase client orchestration layer",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(serveCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Resolve the session once, load everything and print the client state",
		RunE: func(cmd *cobra.Command, args []string) error {
			href, _ := cmd.Flags().GetString("location")
			return runOnce(cmd.Context(), href)
		},
	}
	cmd.Flags().String("location", "", "address the client was opened with, including any #session_id= fragment")
	return cmd
}

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Resolve the session and expose the local control API for a UI shell",
		RunE: func(cmd *cobra.Command, args []string) error {
			href, _ := cmd.Flags().GetString("location")
			return runServer(href)
		},
	}
	cmd.Flags().String("location", "", "address the client was opened with, including any #session_id= fragment")
	return cmd
}

func runOnce(ctx context.Context, href string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	bootstrap := newBootstrap(driverConfig, internalConfig)
	defer bootstrap.Shutdown(context.Background())

	app, err := bootstrapingTheApp(bootstrap, href)
	if err != nil {
		return err
	}

	if err := app.Bootstrapper.Run(ctx); err != nil {
		bootstrap.Logger.Warn("Session bootstrap finished with errors", zap.Error(err))
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(app.Orchestrator.State(ctx))
}

func runServer(href string) error {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()
	bootstrap := newBootstrap(driverConfig, internalConfig)

	app, err := bootstrapingTheApp(bootstrap, href)
	if err != nil {
		return err
	}
	log := bootstrap.Logger

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), time.Duration(internalConfig.API.RequestTimeoutInSeconds)*time.Second)
	if _, err := app.Health.Check(startupCtx); err != nil {
		log.Warn("Remote API health probe failed, continuing", zap.Error(err))
	}
	app.Map.InitProvider(startupCtx, internalConfig.Map.ProviderApiKey)
	if err := app.Bootstrapper.Run(startupCtx); err != nil {
		log.Warn("Session bootstrap finished with errors", zap.Error(err))
	}
	cancelStartup()

	server := &http.Server{
		Addr:    internalConfig.Control.Port,
		Handler: bootstrap.Router,
	}

	go func() {
		log.Info("Control API listening", zap.String(constvars.LoggingURLKey, internalConfig.Control.Port))
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", zap.Error(err))
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down drivers: %w", err)
	}

	fmt.Println("Server exiting")
	return nil
}

// newBootstrap connects only the drivers the configuration asks for.
func newBootstrap(driverConfig *config.DriverConfig, internalConfig *config.InternalConfig) *config.Bootstrap {
	bootstrap := &config.Bootstrap{
		Router:         chi.NewRouter(),
		Logger:         logger.NewZapLogger(driverConfig, internalConfig),
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	if internalConfig.Session.StoreDriver == constvars.SessionStoreDriverRedis {
		bootstrap.Redis = database.NewRedisClient(driverConfig)
	}
	if internalConfig.Activity.Driver == constvars.ActivityDriverRabbitMQ {
		bootstrap.RabbitMQ = messaging.NewRabbitMQ(driverConfig)
	}
	if driverConfig.Minio.Host != "" {
		bootstrap.Minio = storage.NewMinio(driverConfig, internalConfig)
	}
	return bootstrap
}

func bootstrapingTheApp(bootstrap *config.Bootstrap, href string) (*application, error) {
	log := bootstrap.Logger
	internalConfig := bootstrap.InternalConfig

	// Session store
	var keyValueStore contracts.KeyValueStore
	if bootstrap.Redis != nil {
		keyValueStore = redis.NewRedisRepository(bootstrap.Redis, log)
	} else {
		keyValueStore = sessionstore.NewFileStore(internalConfig.Session.FilePath)
	}
	sessions := sessionstore.NewSessionStore(keyValueStore, log)

	// Activity
	activityPublisher := activity.NewLogPublisher(log)
	if bootstrap.RabbitMQ != nil {
		publisher, err := activity.NewRabbitMQPublisher(bootstrap.RabbitMQ, internalConfig.Activity.Queue, log)
		if err != nil {
			return nil, err
		}
		activityPublisher = publisher
	}

	// Remote API
	apiGateway := gateway.NewAPIGateway(internalConfig, sessions, log)

	// Location
	locationService := location.NewLocationService(
		location.NewGeolocator(internalConfig),
		models.Coordinates{Lat: internalConfig.Location.FallbackLatitude, Lng: internalConfig.Location.FallbackLongitude},
		log,
	)

	// Views
	viewController := views.NewViewController(log)
	viewController.Subscribe(func(from, to models.ViewState) {
		log.Info("View changed",
			zap.String(constvars.LoggingViewFromKey, string(from)),
			zap.String(constvars.LoggingViewToKey, string(to)),
		)
	})

	// Resources
	profileService := profile.NewProfileService(apiGateway, log)
	reportService := reports.NewReportService(apiGateway, log)
	doctorService := doctors.NewDoctorService(apiGateway, log)
	appointmentService := appointments.NewAppointmentService(apiGateway, log)
	facilitySync := facilities.NewFacilitySync(apiGateway, locationService, internalConfig.Location.DefaultFacilityType, log)
	dataLoader := loader.NewDataLoader(profileService, reportService, doctorService, appointmentService, facilitySync, locationService, log)

	// Map
	mapService := mapview.NewMapService(mapview.NewGate(), mapview.NewLogRenderer(log), log)

	app := &application{
		Orchestrator: orchestrator.NewOrchestrator(orchestrator.Services{
			Gateway:      apiGateway,
			Sessions:     sessions,
			Views:        viewController,
			Loader:       dataLoader,
			Location:     locationService,
			Facilities:   facilitySync,
			Map:          mapService,
			Uploads:      uploads.NewUploadPipeline(apiGateway, log),
			Files:        fileStorage.NewFileResolver(bootstrap.Minio, internalConfig.Upload.DefaultBucket, log),
			Reports:      reportService,
			Appointments: appointmentService,
			Emergency:    emergency.NewEmergencyService(apiGateway, log),
			Medicines:    medicines.NewMedicineService(apiGateway, log),
			Editor:       profile.NewEditor(profileService, log),
			Activity:     activityPublisher,
		}, log),
		Bootstrapper: bootstrapper.NewSessionBootstrapper(apiGateway, sessions, viewController, dataLoader, bootstrapper.NewLocation(href), activityPublisher, log),
		Health:       health.NewHealthService(apiGateway, log),
		Map:          mapService,
		Activity:     activityPublisher,
	}

	bootstrap.OnShutdown = func(ctx context.Context) {
		if err := app.Activity.Close(); err != nil {
			log.Error("Failed to close activity publisher", zap.Error(err))
		}
	}

	// Control API
	routers.SetupRoutes(bootstrap.Router, internalConfig, middlewares.NewMiddlewares(log, internalConfig), &routers.Controllers{
		Session:     controllers.NewSessionController(log, app.Orchestrator),
		Collection:  controllers.NewCollectionController(log, app.Orchestrator),
		Report:      controllers.NewReportController(log, app.Orchestrator),
		Appointment: controllers.NewAppointmentController(log, app.Orchestrator),
		Facility:    controllers.NewFacilityController(log, app.Orchestrator),
		Profile:     controllers.NewProfileController(log, app.Orchestrator),
		Emergency:   controllers.NewEmergencyController(log, app.Orchestrator),
		Medicine:    controllers.NewMedicineController(log, app.Orchestrator),
	})

	return app, nil
}
