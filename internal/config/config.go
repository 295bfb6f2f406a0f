package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"gic-cinema/internal/logger"
)

type Config struct {
	Log      LogConfig
	Database DatabaseConfig
	Booking  BookingConfig
	Ticket   TicketConfig
}

type LogConfig struct {
	Level        logger.LogLevel
	Dir          string
	ColorEnabled bool
}

type DatabaseConfig struct {
	DSN          string
	MaxOpenConns int
}

type BookingConfig struct {
	IDMaxAttempts int
}

type TicketConfig struct {
	QREnabled bool
	SecretKey string
}

// LoadEnvFile reads a .env file into the process environment. A missing file
// is not an error for callers that only want defaults.
func LoadEnvFile(filenames ...string) error {
	return godotenv.Load(filenames...)
}

func Load() *Config {
	level, ok := logger.ParseLevel(getEnv("LOG_LEVEL", "WARN"))
	if !ok {
		level = logger.WARN
	}

	return &Config{
		Log: LogConfig{
			Level:        level,
			Dir:          getEnv("LOG_DIR", ""),
			ColorEnabled: getEnvBool("COLOR_ENABLED", true),
		},
		Database: DatabaseConfig{
			DSN:          getEnv("DB_DSN", "file::memory:?cache=shared"),
			MaxOpenConns: getEnvInt("DB_MAX_OPEN_CONNS", 4),
		},
		Booking: BookingConfig{
			IDMaxAttempts: getEnvInt("BOOKING_ID_MAX_ATTEMPTS", 100),
		},
		Ticket: TicketConfig{
			QREnabled: getEnvBool("TICKET_QR_ENABLED", false),
			SecretKey: getEnv("QR_SECRET_KEY", "gic-cinemas"),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
