package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, sales API
//   endpoint/credentials, security settings)
// - default: Values common across all environments (timeouts, page sizes,
//   breaker tuning)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	SalesAPI  SalesAPIConfig
	Catalog   CatalogConfig
	CORS      CORSConfig
	Log       LogConfig
	JWT       JWTConfig
	RateLimit RateLimitConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

// SalesAPIConfig points the register at the remote sales authority.
// The token is a per-terminal service credential attached to every
// outbound call.
type SalesAPIConfig struct {
	BaseURL             string        `envconfig:"SALES_API_BASE_URL" required:"true"`
	Token               string        `envconfig:"SALES_API_TOKEN" required:"true"`
	Timeout             time.Duration `envconfig:"SALES_API_TIMEOUT" default:"10s"`
	BreakerName         string        `envconfig:"SALES_API_BREAKER_NAME" default:"sales-authority"`
	BreakerTimeout      time.Duration `envconfig:"SALES_API_BREAKER_TIMEOUT" default:"30s"`
	BreakerMinRequests  uint32        `envconfig:"SALES_API_BREAKER_MIN_REQUESTS" default:"5"`
	BreakerFailureRatio float64       `envconfig:"SALES_API_BREAKER_FAILURE_RATIO" default:"0.6"`
}

type CatalogConfig struct {
	PageSize        int `envconfig:"CATALOG_PAGE_SIZE" default:"50"`
	MinSearchLength int `envconfig:"CATALOG_MIN_SEARCH_LENGTH" default:"2"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"Asia/Tokyo"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"32400"` // 9*60*60
}

type JWTConfig struct {
	Secret string `envconfig:"JWT_SECRET" required:"true"`
}

type RateLimitConfig struct {
	RequestsPerMinute int `envconfig:"RATE_LIMIT_REQUESTS_PER_MINUTE" default:"300"`
	Burst             int `envconfig:"RATE_LIMIT_BURST" default:"50"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889", // Test port
		},
		SalesAPI: SalesAPIConfig{
			BaseURL:             "http://localhost:18080",
			Token:               "test-terminal-token",
			Timeout:             2 * time.Second,
			BreakerName:         "sales-authority-test",
			BreakerTimeout:      time.Second,
			BreakerMinRequests:  5,
			BreakerFailureRatio: 0.6,
		},
		Catalog: CatalogConfig{
			PageSize:        50,
			MinSearchLength: 2,
		},
		Log: LogConfig{
			Level:          "error", // Error level only for tests
			TimeZone:       "Asia/Tokyo",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 32400,
		},
		JWT: JWTConfig{
			Secret: "test-secret",
		},
		RateLimit: RateLimitConfig{
			RequestsPerMinute: 6000,
			Burst:             1000,
		},
	}
}
