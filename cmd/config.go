package cmd

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultRateLimitRequests         = 100
	defaultRateLimitWindow           = 15 * time.Minute
	defaultNotificationRetention     = 90 * 24 * time.Hour
	defaultNotificationPurgeSchedule = "0 3 * * *"
)

var ErrJWTSecretIsRequired = errors.New("JWT_SECRET is required")

type Config struct {
	AppEnv   string
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	JWTSecret      string
	AllowedOrigins []string

	RedisAddr         string
	RateLimitRequests int
	RateLimitWindow   time.Duration

	NotificationChannel       string
	NotificationRetention     time.Duration
	NotificationPurgeSchedule string
}

// LoadConfig reads .env when present, then the environment. Values already set in
// the environment win over the file.
func LoadConfig() (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	rateLimitRequests, err := intVariable("RATE_LIMIT_REQUESTS", defaultRateLimitRequests)
	if err != nil {
		return Config{}, err
	}
	rateLimitWindow, err := durationVariable("RATE_LIMIT_WINDOW", defaultRateLimitWindow)
	if err != nil {
		return Config{}, err
	}
	retention, err := durationVariable("NOTIFICATION_RETENTION", defaultNotificationRetention)
	if err != nil {
		return Config{}, err
	}

	config := Config{
		AppEnv:                    variable("APP_ENV", "development"),
		HTTPPort:                  variable("HTTP_PORT", "8080"),
		DBHost:                    variable("DB_HOST", "localhost"),
		DBPort:                    variable("DB_PORT", "5432"),
		DBUser:                    variable("DB_USER", "postgres"),
		DBPassword:                os.Getenv("DB_PASSWORD"),
		DBName:                    variable("DB_NAME", "marketplace"),
		DBSslMode:                 variable("DB_SSLMODE", "disable"),
		JWTSecret:                 os.Getenv("JWT_SECRET"),
		AllowedOrigins:            listVariable("ALLOWED_ORIGINS"),
		RedisAddr:                 os.Getenv("REDIS_ADDR"),
		RateLimitRequests:         rateLimitRequests,
		RateLimitWindow:           rateLimitWindow,
		NotificationChannel:       variable("NOTIFICATION_CHANNEL", "notifications"),
		NotificationRetention:     retention,
		NotificationPurgeSchedule: variable("NOTIFICATION_PURGE_SCHEDULE", defaultNotificationPurgeSchedule),
	}
	return config, nil
}

// Validate reports settings the service cannot start without.
func (c Config) Validate() error {
	var errList []error
	if c.JWTSecret == "" {
		errList = append(errList, ErrJWTSecretIsRequired)
	}
	if c.RateLimitRequests < 1 {
		errList = append(errList, fmt.Errorf("RATE_LIMIT_REQUESTS must be positive, got %d", c.RateLimitRequests))
	}
	if c.RateLimitWindow <= 0 {
		errList = append(errList, fmt.Errorf("RATE_LIMIT_WINDOW must be positive, got %s", c.RateLimitWindow))
	}
	if c.NotificationRetention < 0 {
		errList = append(errList, fmt.Errorf("NOTIFICATION_RETENTION must not be negative, got %s", c.NotificationRetention))
	}
	return errors.Join(errList...)
}

// DSN is the PostgreSQL connection string for GORM and the LISTEN connection.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func variable(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func intVariable(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func durationVariable(key string, fallback time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func listVariable(key string) []string {
	var list []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
