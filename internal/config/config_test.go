package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, DriverJSON, cfg.Storage.Driver)
	assert.Equal(t, "albums.json", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "console", cfg.Log.Format)
	assert.False(t, cfg.IsSQL())
}

func TestLoad_Env(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PHOTOS_STORAGE_DRIVER", "SQLite3")
	t.Setenv("PHOTOS_DB_DSN", "file:photos.db")
	t.Setenv("PHOTOS_LOG_FORMAT", "json")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "file:photos.db", cfg.DB.DSN)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.IsSQL())
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PHOTOS_STORAGE_PATH", "env.json")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("storage-path", "", "")
	fs.String("log-level", "", "")
	require.NoError(t, fs.Parse([]string{"--storage-path", "flag.json"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.Storage.Path)
	assert.Equal(t, "info", cfg.Log.Level, "unset flags fall back to defaults")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"unknown driver", map[string]string{"PHOTOS_STORAGE_DRIVER": "redis"}},
		{"sql without dsn", map[string]string{"PHOTOS_STORAGE_DRIVER": "postgres"}},
		{"unknown log format", map[string]string{"PHOTOS_LOG_FORMAT": "xml"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(nil)
			assert.Error(t, err)
		})
	}
}
