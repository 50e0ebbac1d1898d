package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENVIRONMENT", "")
	t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "absent.env"))

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":8000", cfg.HTTP.Address)
	require.Equal(t, 5, cfg.Recommend.TopK)
	require.Equal(t, CatalogEmbedded, cfg.Catalog.Source)
	require.True(t, cfg.IsDevelopment())
	require.Equal(t, "v1", cfg.App.APIVersion)
	require.Contains(t, cfg.HTTP.Retry.Exclude, "/api/v1/recommendations")
	require.Contains(t, cfg.HTTP.Retry.Exclude, "/api/v1/recommendations/occasion")
}

func TestLoadFileEnvFileAndOverrides(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
app:
  environment: production
http:
  address: ":9090"
  readTimeout: 2s
recommend:
  topK: 3
catalog:
  source: file
  path: /etc/outfits/catalog.yaml
`), 0o600))
	envPath := filepath.Join(dir, "test.env")
	require.NoError(t, os.WriteFile(envPath, []byte("RECOMMEND_TRENDING_LIMIT=7\nSTATS_VALKEY_PREFIX=from-dotenv\n"), 0o600))

	t.Cleanup(func() { os.Unsetenv("RECOMMEND_TRENDING_LIMIT") })
	t.Setenv("CONFIG_PATH", cfgPath)
	t.Setenv("ENV_FILE", envPath)
	t.Setenv("RECOMMEND_TOP_K", "8")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("STATS_VALKEY_PREFIX", "from-env")
	t.Setenv("HTTP_RETRY_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, ":9090", cfg.HTTP.Address)
	require.Equal(t, 2*time.Second, cfg.HTTP.ReadTimeout)
	require.Equal(t, 8, cfg.Recommend.TopK)
	require.Equal(t, 7, cfg.Recommend.TrendingLimit)
	require.Equal(t, "from-env", cfg.Stats.Valkey.Prefix)
	require.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.CORS.AllowedOrigins)
	require.False(t, cfg.HTTP.Retry.Enabled)
	require.False(t, cfg.IsDevelopment())
	require.Equal(t, "/etc/outfits/catalog.yaml", cfg.Catalog.Path)
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"empty address":           func(c *Config) { c.HTTP.Address = "" },
		"zero topK":               func(c *Config) { c.Recommend.TopK = 0 },
		"unknown environment":     func(c *Config) { c.App.Environment = "qa" },
		"unknown catalog":         func(c *Config) { c.Catalog.Source = "s3" },
		"file without path":       func(c *Config) { c.Catalog.Source = CatalogFile },
		"object without endpoint": func(c *Config) { c.Catalog.Source = CatalogObject },
		"valkey without addr":     func(c *Config) { c.Stats.Valkey.Enabled = true },
		"bad rate limit":          func(c *Config) { c.HTTP.RateLimit.Burst = 0 },
		"bad retry":               func(c *Config) { c.HTTP.Retry.MaxAttempts = 0 },
		"min above max conns":     func(c *Config) { c.History.Postgres.MinConns = 10 },
		"blank cors origin":       func(c *Config) { c.HTTP.CORS.AllowedOrigins = []string{""} },
	}
	for name, mutate := range cases {
		cfg := defaultConfig()
		mutate(cfg)
		require.Error(t, cfg.Validate(), name)
	}
	require.NoError(t, defaultConfig().Validate())
}
