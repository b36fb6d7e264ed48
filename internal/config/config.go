package config

import (
	"time"

	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

var log = logging.MustGetLogger("config")

type Config struct {
	App          AppConfig
	Log          LogConfig
	Database     DatabaseConfig
	CORS         CORSConfig
	RateLimit    RateLimitConfig
	PrintService PrintServiceConfig
	Breaker      BreakerConfig
	Redis        RedisConfig
	Receipt      ReceiptConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type LogConfig struct {
	Level string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	Timezone string
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

type PrintServiceConfig struct {
	URL     string
	Timeout time.Duration
}

type BreakerConfig struct {
	MaxRequests      uint32
	Interval         time.Duration
	Timeout          time.Duration
	FailureThreshold uint32
}

type RedisConfig struct {
	Addr       string
	Password   string
	DB         int
	PreviewTTL time.Duration
}

type ReceiptConfig struct {
	Currency string
	Timezone string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Warningf(".env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "fiscal-console")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("LOG_LEVEL", "INFO")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_NAME", "fiscal_console")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_SSL_MODE", "disable")
	viper.SetDefault("DB_TIMEZONE", "Europe/Sofia")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("PRINT_SERVICE_URL", "http://localhost:8000/api")
	viper.SetDefault("PRINT_SERVICE_TIMEOUT_SECONDS", 10)
	viper.SetDefault("BREAKER_MAX_REQUESTS", 1)
	viper.SetDefault("BREAKER_INTERVAL_SECONDS", 60)
	viper.SetDefault("BREAKER_TIMEOUT_SECONDS", 30)
	viper.SetDefault("BREAKER_FAILURE_THRESHOLD", 5)
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_DB", 0)
	viper.SetDefault("PREVIEW_CACHE_TTL_SECONDS", 300)
	viper.SetDefault("RECEIPT_CURRENCY", "лв")
	viper.SetDefault("RECEIPT_TIMEZONE", "Europe/Sofia")

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			SSLMode:  viper.GetString("DB_SSL_MODE"),
			Timezone: viper.GetString("DB_TIMEZONE"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		PrintService: PrintServiceConfig{
			URL:     viper.GetString("PRINT_SERVICE_URL"),
			Timeout: time.Duration(viper.GetInt("PRINT_SERVICE_TIMEOUT_SECONDS")) * time.Second,
		},
		Breaker: BreakerConfig{
			MaxRequests:      viper.GetUint32("BREAKER_MAX_REQUESTS"),
			Interval:         time.Duration(viper.GetInt("BREAKER_INTERVAL_SECONDS")) * time.Second,
			Timeout:          time.Duration(viper.GetInt("BREAKER_TIMEOUT_SECONDS")) * time.Second,
			FailureThreshold: viper.GetUint32("BREAKER_FAILURE_THRESHOLD"),
		},
		Redis: RedisConfig{
			Addr:       viper.GetString("REDIS_ADDR"),
			Password:   viper.GetString("REDIS_PASSWORD"),
			DB:         viper.GetInt("REDIS_DB"),
			PreviewTTL: time.Duration(viper.GetInt("PREVIEW_CACHE_TTL_SECONDS")) * time.Second,
		},
		Receipt: ReceiptConfig{
			Currency: viper.GetString("RECEIPT_CURRENCY"),
			Timezone: viper.GetString("RECEIPT_TIMEZONE"),
		},
	}
}

func (c *DatabaseConfig) DSN() string {
	return "host=" + c.Host +
		" user=" + c.User +
		" password=" + c.Password +
		" dbname=" + c.Name +
		" port=" + c.Port +
		" sslmode=" + c.SSLMode +
		" TimeZone=" + c.Timezone
}

// Location resolves the receipt time zone, falling back to UTC.
func (c *ReceiptConfig) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Warningf("unknown receipt timezone %q, using UTC: %v", c.Timezone, err)
		return time.UTC
	}
	return loc
}
