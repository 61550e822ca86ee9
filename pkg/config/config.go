package config

import (
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const defaultAccessSecret = "your-access-secret-change-in-production"

// Config holds application configuration
type Config struct {
	Server    ServerConfig    `envconfig:"SERVER"`
	Database  DatabaseConfig  `envconfig:"DB"`
	Redis     RedisConfig     `envconfig:"REDIS"`
	JWT       JWTConfig       `envconfig:"JWT"`
	Storage   StorageConfig   `envconfig:"STORAGE"`
	Mail      MailConfig      `envconfig:"SMTP"`
	Bulk      BulkConfig      `envconfig:"BULK"`
	Scheduler SchedulerConfig `envconfig:"SCHEDULER"`
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host          string `envconfig:"HOST" default:"localhost"`
	Port          string `envconfig:"PORT" default:"5432"`
	User          string `envconfig:"USER" default:"postgres"`
	Password      string `envconfig:"PASSWORD" default:"postgres"`
	Name          string `envconfig:"NAME" default:"event_planner"`
	SSLMode       string `envconfig:"SSLMODE" default:"disable"`
	MaxConns      int    `envconfig:"MAX_CONNS" default:"25"`
	MinConns      int    `envconfig:"MIN_CONNS" default:"5"`
	AutoMigrate   bool   `envconfig:"AUTO_MIGRATE" default:"false"`
	MigrationsDir string `envconfig:"MIGRATIONS_DIR" default:"migrations"`
}

// RedisConfig holds Redis configuration. An empty Host selects the in-memory store.
type RedisConfig struct {
	Host     string `envconfig:"HOST"`
	Port     string `envconfig:"PORT" default:"6379"`
	Password string `envconfig:"PASSWORD"`
	DB       int    `envconfig:"DB" default:"0"`
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	AccessSecret string        `envconfig:"ACCESS_SECRET" default:"your-access-secret-change-in-production"`
	AccessExpiry time.Duration `envconfig:"ACCESS_EXPIRY" default:"15m"`
	Issuer       string        `envconfig:"ISSUER" default:"event-planner"`
}

// StorageConfig holds object storage configuration. An empty Endpoint disables exports.
type StorageConfig struct {
	Endpoint        string        `envconfig:"ENDPOINT"`
	AccessKeyID     string        `envconfig:"ACCESS_KEY"`
	SecretAccessKey string        `envconfig:"SECRET_KEY"`
	BucketName      string        `envconfig:"BUCKET" default:"event-planner"`
	UseSSL          bool          `envconfig:"USE_SSL" default:"false"`
	PublicURL       string        `envconfig:"PUBLIC_URL"`
	URLExpiry       time.Duration `envconfig:"URL_EXPIRY" default:"1h"`
}

// MailConfig holds SMTP configuration. An empty Host logs messages instead of sending.
type MailConfig struct {
	Host     string `envconfig:"HOST"`
	Port     int    `envconfig:"PORT" default:"587"`
	User     string `envconfig:"USER"`
	Password string `envconfig:"PASSWORD"`
	From     string `envconfig:"FROM" default:"no-reply@event-planner.local"`
	FromName string `envconfig:"FROM_NAME" default:"Event Planner"`
	UseTLS   bool   `envconfig:"USE_TLS" default:"false"`
	RSVPURL  string `envconfig:"RSVP_URL" default:"http://localhost:3000/rsvp"`
}

// BulkConfig holds bulk action settings
type BulkConfig struct {
	SnapshotTTL    time.Duration `envconfig:"SNAPSHOT_TTL" default:"15m"`
	MaxSelection   int           `envconfig:"MAX_SELECTION" default:"500"`
	MailMaxElapsed time.Duration `envconfig:"MAIL_MAX_ELAPSED" default:"30s"`
}

// SchedulerConfig holds background job settings
type SchedulerConfig struct {
	Enabled        bool          `envconfig:"ENABLED" default:"true"`
	RSVPDigestSpec string        `envconfig:"RSVP_DIGEST_SPEC" default:"0 8 * * *"`
	Lookahead      time.Duration `envconfig:"LOOKAHEAD" default:"168h"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, fmt.Errorf("failed to process environment: %w", err)
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.JWT.AccessSecret == "" {
		return fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if c.IsProduction() && c.JWT.AccessSecret == defaultAccessSecret {
		return fmt.Errorf("JWT_ACCESS_SECRET must be changed in production")
	}
	if c.Bulk.MaxSelection <= 0 {
		return fmt.Errorf("BULK_MAX_SELECTION must be positive")
	}
	if c.Bulk.SnapshotTTL <= 0 {
		return fmt.Errorf("BULK_SNAPSHOT_TTL must be positive")
	}
	if c.Storage.Endpoint != "" && (c.Storage.AccessKeyID == "" || c.Storage.SecretAccessKey == "") {
		return fmt.Errorf("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required when STORAGE_ENDPOINT is set")
	}
	return nil
}

// IsProduction reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

// GetRedisAddr returns the Redis address
func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%s", c.Redis.Host, c.Redis.Port)
}
