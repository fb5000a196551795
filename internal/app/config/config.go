package config

import (
	"healthease-client/internal/pkg/constvars"
	"healthease-client/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		Redis: Redis{
			Host:     utils.GetEnvString("REDIS_HOST", "localhost"),
			Port:     utils.GetEnvString("REDIS_PORT", "6379"),
			Password: utils.GetEnvString("REDIS_PASSWORD", ""),
			DB:       utils.GetEnvInt("REDIS_DB", 0),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "info"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "healthease.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "healthease_error.log"),
		},
		RabbitMQ: RabbitMQ{
			Port:     utils.GetEnvString("RABBITMQ_PORT", "5672"),
			Host:     utils.GetEnvString("RABBITMQ_HOST", "localhost"),
			Username: utils.GetEnvString("RABBITMQ_USERNAME", "guest"),
			Password: utils.GetEnvString("RABBITMQ_PASSWORD", "guest"),
		},
		Minio: Minio{
			Port:     utils.GetEnvString("MINIO_PORT", "9000"),
			Host:     utils.GetEnvString("MINIO_HOST", "localhost"),
			Username: utils.GetEnvString("MINIO_USERNAME", ""),
			Password: utils.GetEnvString("MINIO_PASSWORD", ""),
			UseSSL:   utils.GetEnvBool("MINIO_USE_SSL", false),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:             utils.GetEnvString("APP_ENV", constvars.AppEnvDevelopment),
			Version:         utils.GetEnvString("APP_VERSION", "v1"),
			ShutdownTimeout: utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
		},
		API: API{
			BaseUrl:                 utils.GetEnvString("API_BASE_URL", "http://localhost:8001"),
			RequestTimeoutInSeconds: utils.GetEnvInt("API_REQUEST_TIMEOUT_IN_SECONDS", 30),
			MaxRequestsPerSecond:    utils.GetEnvFloat("API_MAX_REQUESTS_PER_SECOND", 10),
			MaxBurst:                utils.GetEnvInt("API_MAX_BURST", 10),
		},
		Map: Map{
			ProviderApiKey: utils.GetEnvString("MAP_PROVIDER_API_KEY", ""),
		},
		Location: Location{
			Driver:              utils.GetEnvString("GEOLOCATOR_DRIVER", constvars.GeolocatorDriverIP),
			DeviceLatitude:      utils.GetEnvFloat("DEVICE_LAT", 0),
			DeviceLongitude:     utils.GetEnvFloat("DEVICE_LNG", 0),
			LookupUrl:           utils.GetEnvString("GEOLOCATION_LOOKUP_URL", "http://ip-api.com/json"),
			TimeoutInSeconds:    utils.GetEnvInt("GEOLOCATION_TIMEOUT_IN_SECONDS", 10),
			FallbackLatitude:    constvars.FallbackLatitude,
			FallbackLongitude:   constvars.FallbackLongitude,
			DefaultFacilityType: utils.GetEnvString("DEFAULT_FACILITY_TYPE", constvars.FacilityCategoryAll),
		},
		Session: Session{
			StoreDriver: utils.GetEnvString("SESSION_STORE_DRIVER", constvars.SessionStoreDriverFile),
			FilePath:    utils.GetEnvString("SESSION_STORE_FILE_PATH", ".healthease/session.json"),
		},
		Upload: Upload{
			DefaultBucket: utils.GetEnvString("UPLOAD_DEFAULT_BUCKET", "medical-reports"),
		},
		Activity: Activity{
			Driver: utils.GetEnvString("ACTIVITY_DRIVER", constvars.ActivityDriverNone),
			Queue:  utils.GetEnvString("ACTIVITY_QUEUE", "healthease.activity"),
		},
		Control: Control{
			Port:           utils.GetEnvString("CONTROL_PORT", ":4300"),
			EndpointPrefix: utils.GetEnvString("CONTROL_ENDPOINT_PREFIX", "v1"),
			AllowedOrigins: utils.GetEnvString("CONTROL_ALLOWED_ORIGINS", "http://localhost:3000"),
			MaxRequests:    utils.GetEnvInt("CONTROL_MAX_REQUESTS", 20),
			APIKey:         utils.GetEnvString("CONTROL_API_KEY", ""),
		},
	}
}
