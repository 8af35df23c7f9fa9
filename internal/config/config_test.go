package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), settings)
}

func TestLoadReadsFileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(`version = 1

[api]
base_url = "http://localhost:9000/api/v2/"
timeout = "3s"
concurrency = 2

[page]
limit = 50

[log]
level = "Info"
`), 0o600))
	t.Setenv("PDX_PAGE_LIMIT", "10")

	settings, err := Load(viper.New(), path)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:9000/api/v2", settings.API.BaseURL)
	assert.Equal(t, 3*time.Second, settings.API.Timeout)
	assert.Equal(t, 2, settings.API.Concurrency)
	assert.Equal(t, 10, settings.Page.Limit)
	assert.Equal(t, DefaultSpritesBaseURL, settings.Sprites.BaseURL)
	assert.Equal(t, "info", settings.Log.Level)
}

func TestLoadDefaultLocationUnderHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dir := filepath.Join(home, ".config", "pdx")
	require.NoError(t, os.MkdirAll(dir, 0o700))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[page]\nlimit = 7\n"), 0o600))

	settings, err := Load(viper.New(), "")
	require.NoError(t, err)
	assert.Equal(t, 7, settings.Page.Limit)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{name: "zero limit", env: map[string]string{"PDX_PAGE_LIMIT": "0"}, want: KeyPageLimit},
		{name: "zero concurrency", env: map[string]string{"PDX_API_CONCURRENCY": "0"}, want: KeyAPIConcurrency},
		{name: "empty base url", env: map[string]string{"PDX_API_BASE_URL": " "}, want: KeyAPIBaseURL},
		{name: "bad log level", env: map[string]string{"PDX_LOG_LEVEL": "chatty"}, want: KeyLogLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("HOME", t.TempDir())
			for key, value := range tc.env {
				t.Setenv(key, value)
			}

			_, err := Load(viper.New(), "")
			require.ErrorIs(t, err, ErrInvalidSettings)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestLoadMalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\n"), 0o600))

	_, err := Load(viper.New(), path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read config file")
}

func TestZapLevel(t *testing.T) {
	level, err := LogSettings{Level: "debug"}.ZapLevel()
	require.NoError(t, err)
	assert.Equal(t, zapcore.DebugLevel, level)
}
