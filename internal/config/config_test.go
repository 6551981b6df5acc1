package config

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, SeedBuiltin, cfg.SeedSource)
	assert.Equal(t, IDSequence, cfg.IDStrategy)
	assert.False(t, cfg.AllowOrganizerJoins)
	assert.Equal(t, 50, cfg.NotificationBuffer)
	assert.True(t, cfg.EnableMetrics)
	assert.Equal(t, "localhost", cfg.DB.Host)
	assert.Equal(t, "5432", cfg.DB.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("SEED_SOURCE", SeedPostgres)
	t.Setenv("DB_HOST", "postgres")
	t.Setenv("DB_NAME", "directory")
	t.Setenv("ID_STRATEGY", IDUUID)
	t.Setenv("ALLOW_ORGANIZER_JOINS", "true")
	t.Setenv("NOTIFICATION_BUFFER", "5")
	t.Setenv("ENABLE_METRICS", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, SeedPostgres, cfg.SeedSource)
	assert.Equal(t, "postgres", cfg.DB.Host)
	assert.Equal(t, "directory", cfg.DB.DBName)
	assert.Equal(t, IDUUID, cfg.IDStrategy)
	assert.True(t, cfg.AllowOrganizerJoins)
	assert.Equal(t, 5, cfg.NotificationBuffer)
	assert.False(t, cfg.EnableMetrics)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{
			name: "file source without path",
			env:  map[string]string{"SEED_SOURCE": SeedFile},
			want: "SEED_FILE is required",
		},
		{
			name: "unknown seed source",
			env:  map[string]string{"SEED_SOURCE": "s3"},
			want: `unknown SEED_SOURCE "s3"`,
		},
		{
			name: "unknown id strategy",
			env:  map[string]string{"ID_STRATEGY": "snowflake"},
			want: `unknown ID_STRATEGY "snowflake"`,
		},
		{
			name: "empty notification buffer",
			env:  map[string]string{"NOTIFICATION_BUFFER": "0"},
			want: "NOTIFICATION_BUFFER must be positive",
		},
		{
			name: "malformed number",
			env:  map[string]string{"NOTIFICATION_BUFFER": "lots"},
			want: "parse env",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadFileSource(t *testing.T) {
	t.Setenv("SEED_SOURCE", SeedFile)
	t.Setenv("SEED_FILE", "seed.json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "seed.json", cfg.SeedFile)
}

func TestNewLogger(t *testing.T) {
	t.Run("production writes json", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{Environment: "production", LogLevel: "info"}
		cfg.NewLogger(&buf).Info("seed loaded", "users", 6)

		var line map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
		assert.Equal(t, "seed loaded", line["msg"])
		assert.Equal(t, float64(6), line["users"])
	})

	t.Run("development writes text", func(t *testing.T) {
		var buf bytes.Buffer
		cfg := &Config{Environment: "development", LogLevel: "info"}
		cfg.NewLogger(&buf).Info("seed loaded")
		assert.True(t, strings.Contains(buf.String(), `msg="seed loaded"`))
	})

	levels := []struct {
		level string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"verbose", slog.LevelInfo},
	}
	for _, tt := range levels {
		t.Run("level "+tt.level, func(t *testing.T) {
			logger := (&Config{LogLevel: tt.level}).NewLogger(&bytes.Buffer{})
			assert.True(t, logger.Enabled(context.Background(), tt.want))
			assert.False(t, logger.Enabled(context.Background(), tt.want-1))
		})
	}
}
