package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	DriverPostgres  = "postgres"
	DriverFirestore = "firestore"
)

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Database DatabaseConfig `toml:"database"`
	Firebase FirebaseConfig `toml:"firebase"`
	JWT      JWTConfig      `toml:"jwt"`
	App      AppConfig      `toml:"app"`
	Storage  StorageConfig  `toml:"storage"`
	Snapshot SnapshotConfig `toml:"snapshot"`
}

// StoreConfig selects the backing store for attendance, employees and accounts.
type StoreConfig struct {
	Driver string `toml:"driver"`
}

type DatabaseConfig struct {
	Host     string `toml:"host"`
	Port     int    `toml:"port"`
	User     string `toml:"user"`
	Password string `toml:"password"`
	Name     string `toml:"name"`
	SSLMode  string `toml:"ssl_mode"`
}

type FirebaseConfig struct {
	ProjectID       string `toml:"project_id"`
	CredentialsFile string `toml:"credentials_file"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret           string `toml:"secret"`
	AccessExpiration string `toml:"access_expiration"`
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int      `toml:"port"`
	Env         string   `toml:"env"`
	LogLevel    string   `toml:"log_level"`
	CORSOrigins []string `toml:"cors_origins"`
	// Timezone is the IANA zone attendance devices record in, e.g. Asia/Kolkata.
	Timezone string `toml:"timezone"`
}

type StorageConfig struct {
	BasePath string `toml:"base_path"`
	BaseURL  string `toml:"base_url"`
}

// SnapshotConfig controls the daily attendance report snapshot.
type SnapshotConfig struct {
	Enabled bool `toml:"enabled"`
	Hour    int  `toml:"hour"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// LoadFile loads the environment and then overlays the TOML file at path.
// Keys missing from the file keep their environment value.
func LoadFile(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	config, err := fromEnv()
	if err != nil {
		return nil, err
	}

	if _, err := toml.DecodeFile(path, config); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

func fromEnv() (*Config, error) {
	config := &Config{}

	config.Store = StoreConfig{
		Driver: strings.ToLower(getEnv("STORE_DRIVER", DriverPostgres)),
	}

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
		Name:     getEnv("DB_NAME", "hris_admin"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	config.Firebase = FirebaseConfig{
		ProjectID:       getEnv("FIREBASE_PROJECT_ID", ""),
		CredentialsFile: getEnv("GOOGLE_APPLICATION_CREDENTIALS", ""),
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
		CORSOrigins: getEnvSlice("CORS_ORIGINS"),
		Timezone:    getEnv("APP_TIMEZONE", "Local"),
	}

	config.JWT = JWTConfig{
		Secret:           getEnv("JWT_SECRET_KEY", ""),
		AccessExpiration: getEnv("JWT_ACCESS_EXPIRATION_TIME", "8h"),
	}

	config.Storage = StorageConfig{
		BasePath: getEnv("STORAGE_PATH", "./storage"),
		BaseURL:  getEnv("STORAGE_BASE_URL", "/files"),
	}

	snapshotHour, err := strconv.Atoi(getEnv("SNAPSHOT_HOUR", "1"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_HOUR: %w", err)
	}
	snapshotEnabled, err := strconv.ParseBool(getEnv("SNAPSHOT_ENABLED", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid SNAPSHOT_ENABLED: %w", err)
	}
	config.Snapshot = SnapshotConfig{
		Enabled: snapshotEnabled,
		Hour:    snapshotHour,
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case DriverPostgres:
		if c.Database.Password == "" {
			return fmt.Errorf("DB_PASSWORD is required")
		}
	case DriverFirestore:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: %s, %s", DriverPostgres, DriverFirestore)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if _, err := time.ParseDuration(c.JWT.AccessExpiration); err != nil {
		return fmt.Errorf("invalid JWT_ACCESS_EXPIRATION_TIME: %w", err)
	}
	if c.Snapshot.Hour < 0 || c.Snapshot.Hour > 23 {
		return fmt.Errorf("SNAPSHOT_HOUR must be between 0 and 23")
	}
	if _, err := time.LoadLocation(c.App.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %w", err)
	}
	return nil
}

// Location returns the configured attendance timezone, or time.Local when it
// cannot be loaded.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.App.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// AccessTTL returns the parsed access token lifetime.
func (c *Config) AccessTTL() time.Duration {
	d, err := time.ParseDuration(c.JWT.AccessExpiration)
	if err != nil {
		return 8 * time.Hour
	}
	return d
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

func getEnvSlice(env string) []string {
	value := getEnv(env, "")
	if value == "" {
		return []string{}
	}
	var result []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			result = append(result, part)
		}
	}
	return result
}
