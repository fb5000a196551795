package config

type InternalConfig struct {
	App      App      `mapstructure:"app"`
	API      API      `mapstructure:"api"`
	Map      Map      `mapstructure:"map"`
	Location Location `mapstructure:"location"`
	Session  Session  `mapstructure:"session"`
	Upload   Upload   `mapstructure:"upload"`
	Activity Activity `mapstructure:"activity"`
	Control  Control  `mapstructure:"control"`
}

type App struct {
	Env             string `mapstructure:"env"`
	Version         string `mapstructure:"version"`
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"`
}

// API describes the remote health backend every resource call goes through.
type API struct {
	BaseUrl                 string  `mapstructure:"base_url"`
	RequestTimeoutInSeconds int     `mapstructure:"request_timeout_in_seconds"`
	MaxRequestsPerSecond    float64 `mapstructure:"max_requests_per_second"`
	MaxBurst                int     `mapstructure:"max_burst"`
}

type Map struct {
	ProviderApiKey string `mapstructure:"provider_api_key"`
}

type Location struct {
	Driver              string  `mapstructure:"driver"`
	DeviceLatitude      float64 `mapstructure:"device_latitude"`
	DeviceLongitude     float64 `mapstructure:"device_longitude"`
	LookupUrl           string  `mapstructure:"lookup_url"`
	TimeoutInSeconds    int     `mapstructure:"timeout_in_seconds"`
	FallbackLatitude    float64 `mapstructure:"fallback_latitude"`
	FallbackLongitude   float64 `mapstructure:"fallback_longitude"`
	DefaultFacilityType string  `mapstructure:"default_facility_type"`
}

type Session struct {
	StoreDriver string `mapstructure:"store_driver"`
	FilePath    string `mapstructure:"file_path"`
}

type Upload struct {
	DefaultBucket string `mapstructure:"default_bucket"`
}

type Activity struct {
	Driver string `mapstructure:"driver"`
	Queue  string `mapstructure:"queue"`
}

// Control configures the local API a UI shell uses to drive the client.
type Control struct {
	Port           string `mapstructure:"port"`
	EndpointPrefix string `mapstructure:"endpoint_prefix"`
	AllowedOrigins string `mapstructure:"allowed_origins"`
	MaxRequests    int    `mapstructure:"max_requests"`
	APIKey         string `mapstructure:"api_key"`
}
