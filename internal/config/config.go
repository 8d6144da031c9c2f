package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	JWT        JWTConfig
	App        AppConfig
	Attendance AttendanceConfig
	Storage    StorageConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

// AttendanceConfig holds the calendar and lateness rules for the reporting
// engine. The hari_libur type codes are configurable because historical rows
// used them inconsistently.
type AttendanceConfig struct {
	TimezoneOffsetHours int
	HolidayTypeCode     int
	RamadanTypeCode     int
	ThresholdNormal     string
	ThresholdRamadan    string
}

// Location returns the fixed civil timezone used for every threshold
// comparison. Never falls back to the server's local timezone.
func (a AttendanceConfig) Location() *time.Location {
	return time.FixedZone("WIB", a.TimezoneOffsetHours*3600)
}

type StorageConfig struct {
	Type     string
	BasePath string
	BaseURL  string
}

func Load() (*Config, error) {
	// .env is optional; deployments may set the environment directly.
	_ = godotenv.Load()

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "presensi-pemda"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// Attendance / calendar configuration
	tzOffset, err := strconv.Atoi(getEnv("APP_TIMEZONE_OFFSET_HOURS", "7"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_TIMEZONE_OFFSET_HOURS: %w", err)
	}
	holidayCode, err := strconv.Atoi(getEnv("HOLIDAY_TYPE_CODE", "2"))
	if err != nil {
		return nil, fmt.Errorf("invalid HOLIDAY_TYPE_CODE: %w", err)
	}
	ramadanCode, err := strconv.Atoi(getEnv("RAMADAN_TYPE_CODE", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid RAMADAN_TYPE_CODE: %w", err)
	}

	config.Attendance = AttendanceConfig{
		TimezoneOffsetHours: tzOffset,
		HolidayTypeCode:     holidayCode,
		RamadanTypeCode:     ramadanCode,
		ThresholdNormal:     getEnv("LATENESS_THRESHOLD_NORMAL", "07:31:00"),
		ThresholdRamadan:    getEnv("LATENESS_THRESHOLD_RAMADAN", "08:01:00"),
	}

	if _, err := time.Parse("15:04:05", config.Attendance.ThresholdNormal); err != nil {
		return nil, fmt.Errorf("invalid LATENESS_THRESHOLD_NORMAL: %w", err)
	}
	if _, err := time.Parse("15:04:05", config.Attendance.ThresholdRamadan); err != nil {
		return nil, fmt.Errorf("invalid LATENESS_THRESHOLD_RAMADAN: %w", err)
	}

	// Storage configuration (injected root, no global path state)
	config.Storage = StorageConfig{
		Type:     getEnv("STORAGE_TYPE", "local"),
		BasePath: getEnv("STORAGE_BASE_PATH", "./files"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "http://localhost:8080/files"),
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Attendance.HolidayTypeCode == c.Attendance.RamadanTypeCode {
		return fmt.Errorf("HOLIDAY_TYPE_CODE and RAMADAN_TYPE_CODE must differ")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
