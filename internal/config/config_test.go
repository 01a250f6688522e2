package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var loadedEnvVars = []string{
	"PORT", "API_KEY", "LOG_LEVEL", "LOG_FORMAT", "LOG_DIR",
	"SERVICE_NAME", "VERSION", "ENVIRONMENT",
	"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME",
	"STORAGE", "DATA_DIR", "ITEMS_PATH", "RECIPES_PATH", "JOBS_PATH",
	"REQUIREMENT_CACHE_SIZE", "REQUIREMENT_CACHE_TTL", "TRUSTED_PROXIES",
}

// loadWith runs Load against a clean environment plus env
func loadWith(t *testing.T, env map[string]string) (*Config, error) {
	t.Helper()
	unsetEnv(t, loadedEnvVars...)
	for key, value := range env {
		t.Setenv(key, value)
	}
	return Load()
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{"API_KEY": "test-key"})

	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "configs", cfg.DataDir)
	assert.Equal(t, ConfigPathItems, cfg.ItemsPath)
	assert.Equal(t, ConfigPathRecipes, cfg.RecipesPath)
	assert.Equal(t, ConfigPathJobs, cfg.JobsPath)
	assert.Equal(t, 1000, cfg.CacheSize)
	assert.Equal(t, 5*time.Minute, cfg.CacheTTL)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_Storage(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		cfg, err := loadWith(t, map[string]string{"API_KEY": "k", "STORAGE": "memory"})

		require.NoError(t, err)
		assert.Equal(t, StorageMemory, cfg.Storage)
	})

	t.Run("unknown backend", func(t *testing.T) {
		cfg, err := loadWith(t, map[string]string{"API_KEY": "k", "STORAGE": "mongo"})

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), `invalid STORAGE value "mongo"`)
	})
}

func TestLoad_RequirementCache(t *testing.T) {
	tests := []struct {
		name     string
		size     string
		ttl      string
		wantSize int
		wantTTL  time.Duration
	}{
		{name: "explicit", size: "50", ttl: "30s", wantSize: 50, wantTTL: 30 * time.Second},
		{name: "unparseable falls back", size: "many", ttl: "later", wantSize: 1000, wantTTL: 5 * time.Minute},
		{name: "ttl needs a unit", size: "10", ttl: "300", wantSize: 10, wantTTL: 5 * time.Minute},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := loadWith(t, map[string]string{
				"API_KEY":                "k",
				"REQUIREMENT_CACHE_SIZE": tt.size,
				"REQUIREMENT_CACHE_TTL":  tt.ttl,
			})

			require.NoError(t, err)
			assert.Equal(t, tt.wantSize, cfg.CacheSize)
			assert.Equal(t, tt.wantTTL, cfg.CacheTTL)
		})
	}
}

func TestLoad_ReferenceDataPaths(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"API_KEY":      "k",
		"DATA_DIR":     "/srv/dofus",
		"ITEMS_PATH":   "items-2.70.json",
		"RECIPES_PATH": "recipes-2.70.json",
		"JOBS_PATH":    "jobs-2.70.json",
	})

	require.NoError(t, err)
	assert.Equal(t, "/srv/dofus", cfg.DataDir)
	assert.Equal(t, "items-2.70.json", cfg.ItemsPath)
	assert.Equal(t, "recipes-2.70.json", cfg.RecipesPath)
	assert.Equal(t, "jobs-2.70.json", cfg.JobsPath)
}

func TestLoad_Server(t *testing.T) {
	t.Run("API key is mandatory", func(t *testing.T) {
		cfg, err := loadWith(t, nil)

		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.Contains(t, err.Error(), "API_KEY")
	})

	t.Run("port", func(t *testing.T) {
		cfg, err := loadWith(t, map[string]string{"API_KEY": "k", "PORT": "3000"})
		require.NoError(t, err)
		assert.Equal(t, 3000, cfg.Port)

		_, err = loadWith(t, map[string]string{"API_KEY": "k", "PORT": "8080.5"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid PORT")
	})

	t.Run("trusted proxies drop blanks", func(t *testing.T) {
		cfg, err := loadWith(t, map[string]string{"API_KEY": "k", "TRUSTED_PROXIES": "10.0.0.1, ,10.0.0.2,"})

		require.NoError(t, err)
		assert.Equal(t, []string{"10.0.0.1", "10.0.0.2"}, cfg.TrustedProxies)
	})
}

func TestGetDBConnString(t *testing.T) {
	cfg, err := loadWith(t, map[string]string{
		"API_KEY":     "k",
		"DB_USER":     "planner",
		"DB_PASSWORD": "p@ss",
		"DB_HOST":     "db",
		"DB_PORT":     "5433",
		"DB_NAME":     "dofusplanner",
	})
	require.NoError(t, err)

	assert.Equal(t, "postgres://planner:p@ss@db:5433/dofusplanner?sslmode=disable", cfg.GetDBConnString())
}
