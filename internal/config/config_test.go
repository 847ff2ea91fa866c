package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("RISE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://rise-data-api-3ecdb0861d7f.herokuapp.com", cfg.API.BaseURL)
	assert.Equal(t, 8192, cfg.API.ChunkSize)
	assert.Equal(t, 5*time.Minute, cfg.API.RequestTimeout)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.Equal(t, "data", cfg.Paths.DataDir)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
api:
  base_url: http://localhost:9090
  chunk_size: 4096
logging:
  level: debug
  format: text
paths:
  data_dir: testdata
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0644))
	t.Setenv("RISE_CONFIG_FILE", configPath)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9090", cfg.API.BaseURL)
	assert.Equal(t, 4096, cfg.API.ChunkSize)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
	assert.Equal(t, "testdata", cfg.Paths.DataDir)
}

func TestLoadEnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api:\n  base_url: http://localhost:9090\n"), 0644))
	t.Setenv("RISE_CONFIG_FILE", configPath)
	t.Setenv("RISE_API_BASE_URL", "http://localhost:7070")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:7070", cfg.API.BaseURL)
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("api: [not a mapping"), 0644))
	t.Setenv("RISE_CONFIG_FILE", configPath)

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:   "valid config",
			mutate: func(c *Config) {},
		},
		{
			name:    "invalid base URL",
			mutate:  func(c *Config) { c.API.BaseURL = "not a url" },
			wantErr: true,
		},
		{
			name:    "zero chunk size",
			mutate:  func(c *Config) { c.API.ChunkSize = 0 },
			wantErr: true,
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Logging.Level = "verbose" },
			wantErr: true,
		},
		{
			name:    "port out of range",
			mutate:  func(c *Config) { c.Server.Port = 70000 },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("RISE_CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
			cfg, err := Load()
			require.NoError(t, err)

			tt.mutate(cfg)
			err = cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewPaths(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	paths, err := NewPaths(PathsConfig{
		DataDir:    "data",
		ExportsDir: "data/exports",
		PlotsDir:   "/tmp/plots",
		LogsDir:    "logs",
	})
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(wd, "data"), paths.DataDir)
	assert.Equal(t, filepath.Join(wd, "data", "exports"), paths.ExportsDir)
	assert.Equal(t, "/tmp/plots", paths.PlotsDir)
	assert.Equal(t, filepath.Join(wd, "logs"), paths.LogsDir)
}

func TestEnsureDirectories(t *testing.T) {
	dir := t.TempDir()
	paths := &Paths{
		DataDir:    filepath.Join(dir, "data"),
		ExportsDir: filepath.Join(dir, "data", "exports"),
		PlotsDir:   filepath.Join(dir, "data", "plots"),
		LogsDir:    filepath.Join(dir, "logs"),
	}

	require.NoError(t, paths.EnsureDirectories())

	for _, d := range []string{paths.DataDir, paths.ExportsDir, paths.PlotsDir, paths.LogsDir} {
		info, err := os.Stat(d)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	}
}
