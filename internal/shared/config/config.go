package config

import (
	"fmt"
	"time"

	"planets-proxy/internal/shared/utils"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	SWAPI     SWAPIConfig
	Frontend  FrontendConfig
	Logging   LoggingConfig
	RateLimit RateLimitConfig
	Metrics   MetricsConfig
}

type ServerConfig struct {
	Port            string        `validate:"required,numeric"`
	Environment     string        `validate:"required,oneof=development staging production test"`
	ReadTimeout     time.Duration `validate:"gt=0"`
	WriteTimeout    time.Duration `validate:"gt=0"`
	IdleTimeout     time.Duration `validate:"gt=0"`
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// SWAPIConfig points at the remote planet API
type SWAPIConfig struct {
	BaseURL            string        `validate:"required,url"`
	Timeout            time.Duration `validate:"gte=0"`
	InsecureSkipVerify bool
}

type FrontendConfig struct {
	URL       string `validate:"required,url"`
	CORSDebug bool
}

type LoggingConfig struct {
	Level      string `validate:"oneof=debug info warn error"`
	JSONFormat bool
}

type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond float64 `validate:"required_if=Enabled true,gte=0"`
	BurstSize         int     `validate:"required_if=Enabled true,gte=0"`
	TrustProxy        bool
}

type MetricsConfig struct {
	Enabled bool
	Path    string `validate:"required,startswith=/"`
}

var GlobalConfig *Config

func Init() error {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found, using system environment variables")
	}

	config, err := Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	GlobalConfig = config
	return nil
}

// Load reads the configuration from the environment and validates it
func Load() (*Config, error) {
	config := &Config{
		Server:    loadServerConfig(),
		SWAPI:     loadSWAPIConfig(),
		Frontend:  loadFrontendConfig(),
		Logging:   loadLoggingConfig(),
		RateLimit: loadRateLimitConfig(),
		Metrics:   loadMetricsConfig(),
	}

	if err := config.validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:            utils.GetEnv("SERVER_PORT", "8080"),
		Environment:     utils.GetEnv("ENVIRONMENT", "development"),
		ReadTimeout:     utils.GetEnvSeconds("SERVER_READ_TIMEOUT_SECONDS", 15),
		WriteTimeout:    utils.GetEnvSeconds("SERVER_WRITE_TIMEOUT_SECONDS", 15),
		IdleTimeout:     utils.GetEnvSeconds("SERVER_IDLE_TIMEOUT_SECONDS", 60),
		ShutdownTimeout: utils.GetEnvSeconds("SERVER_SHUTDOWN_TIMEOUT_SECONDS", 10),
	}
}

func loadSWAPIConfig() SWAPIConfig {
	return SWAPIConfig{
		BaseURL:            utils.GetEnv("SWAPI_BASE_URL", "http://swapi.dev/api"),
		Timeout:            utils.GetEnvSeconds("SWAPI_TIMEOUT_SECONDS", 30),
		InsecureSkipVerify: utils.GetEnvBool("SWAPI_INSECURE_SKIP_VERIFY", true),
	}
}

func loadFrontendConfig() FrontendConfig {
	return FrontendConfig{
		URL:       utils.GetEnv("FRONTEND_URL", "http://localhost:3000"),
		CORSDebug: utils.GetEnvBool("CORS_DEBUG", false),
	}
}

func loadLoggingConfig() LoggingConfig {
	environment := utils.GetEnv("ENVIRONMENT", "development")

	return LoggingConfig{
		Level:      utils.GetEnv("LOG_LEVEL", "debug"),
		JSONFormat: environment == "production",
	}
}

func loadRateLimitConfig() RateLimitConfig {
	return RateLimitConfig{
		Enabled:           utils.GetEnvBool("RATE_LIMIT_ENABLED", true),
		RequestsPerSecond: utils.GetEnvFloat("RATE_LIMIT_REQUESTS_PER_SECOND", 10),
		BurstSize:         utils.GetEnvInt("RATE_LIMIT_BURST_SIZE", 20),
		TrustProxy:        utils.GetEnvBool("RATE_LIMIT_TRUST_PROXY", false),
	}
}

func loadMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Enabled: utils.GetEnvBool("METRICS_ENABLED", true),
		Path:    utils.GetEnv("METRICS_PATH", "/metrics"),
	}
}

func (c *Config) validate() error {
	return validator.New().Struct(c)
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}
