package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.Token.Secret = "secret"
	cfg.Store.Driver = StoreDriverMemory
	applyDefaults(cfg)

	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{MongoDB: &MongoDBConfig{URI: "mongodb://db"}}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.Token.Algorithm)
	assert.Equal(t, StoreDriverMongo, cfg.Store.Driver)
	assert.Equal(t, defaultMongoDatabase, cfg.MongoDB.Database)
	assert.Equal(t, 10*time.Second, cfg.MongoDB.Timeout)
	assert.NotNil(t, cfg.Auth)
}

func TestApplyLegacyEnv(t *testing.T) {
	env := map[string]string{
		legacyEnvMongoURI:  "mongodb://legacy:27017",
		legacyEnvAlgorithm: "HS512",
		legacyEnvSecret:    "legacy-secret",
	}

	cfg := &Config{}
	applyLegacyEnv(cfg, func(key string) string { return env[key] })

	require.NotNil(t, cfg.MongoDB)
	assert.Equal(t, "mongodb://legacy:27017", cfg.MongoDB.URI)
	assert.Equal(t, "HS512", cfg.Token.Algorithm)
	assert.Equal(t, "legacy-secret", cfg.Token.Secret)
}

func TestValidate(t *testing.T) {
	t.Run("valid memory store", func(t *testing.T) {
		assert.NoError(t, validConfig().Validate())
	})

	t.Run("missing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.Token.Secret = "  "
		assert.ErrorContains(t, cfg.Validate(), "token secret")
	})

	t.Run("asymmetric algorithm rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Token.Algorithm = "RS256"
		assert.ErrorContains(t, cfg.Validate(), "unsupported token algorithm")
	})

	t.Run("unknown algorithm rejected", func(t *testing.T) {
		cfg := validConfig()
		cfg.Token.Algorithm = "none"
		assert.Error(t, cfg.Validate())
	})

	t.Run("mongo without uri", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = StoreDriverMongo
		assert.ErrorContains(t, cfg.Validate(), "mongodb uri")
	})

	t.Run("postgres without dsn", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = StoreDriverPostgres
		assert.ErrorContains(t, cfg.Validate(), "postgres dsn")
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := validConfig()
		cfg.Store.Driver = "cassandra"
		assert.ErrorContains(t, cfg.Validate(), "unknown store driver")
	})
}

func TestLoadWithEnv_FileAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	content := []byte(`
http:
  port: 8080
token:
  algorithm: HS256
  secret: from-file
auth:
  bcryptCost: 10
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), content, 0o600))

	t.Chdir(dir)
	t.Setenv("TOKEN_SECRET", "from-env")
	t.Setenv("AUTH_BCRYPTCOST", "4")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from-env", cfg.Token.Secret)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.BcryptCost)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("does-not-exist")
	assert.ErrorContains(t, err, "not found in any search path")
}
