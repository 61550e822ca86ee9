package config

import (
	"testing"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Environment: "development"},
		JWT:    JWTConfig{AccessSecret: "secret"},
		Bulk:   BulkConfig{SnapshotTTL: 15 * time.Minute, MaxSelection: 500},
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_MissingSecret(t *testing.T) {
	cfg := validConfig()
	cfg.JWT.AccessSecret = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_ACCESS_SECRET")
}

func TestValidate_DefaultSecretInProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Environment = "production"
	cfg.JWT.AccessSecret = defaultAccessSecret

	assert.Error(t, cfg.Validate())
}

func TestValidate_BulkLimits(t *testing.T) {
	cfg := validConfig()
	cfg.Bulk.MaxSelection = 0
	assert.Error(t, cfg.Validate())

	cfg = validConfig()
	cfg.Bulk.SnapshotTTL = 0
	assert.Error(t, cfg.Validate())
}

func TestValidate_StorageCredentials(t *testing.T) {
	cfg := validConfig()
	cfg.Storage.Endpoint = "localhost:9000"

	assert.Error(t, cfg.Validate())

	cfg.Storage.AccessKeyID = "key"
	cfg.Storage.SecretAccessKey = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestProcess_ReadsPrefixedAndDefaultValues(t *testing.T) {
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("BULK_MAX_SELECTION", "42")
	t.Setenv("SERVER_ALLOWED_ORIGINS", "http://a.test,http://b.test")

	var cfg Config
	require.NoError(t, envconfig.Process("", &cfg))

	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, 42, cfg.Bulk.MaxSelection)
	assert.Equal(t, 15*time.Minute, cfg.Bulk.SnapshotTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.Server.AllowedOrigins)
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "localhost", Port: "5432", User: "u", Password: "p", Name: "events", SSLMode: "disable",
	}}

	assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=events sslmode=disable", cfg.GetDatabaseDSN())
}
