//go:build unit

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "stadium")
}

func TestLoadConfig(t *testing.T) {
	t.Run("基本成功ケース: defaults apply", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "Asia/Tokyo", cfg.Schedule.TimeZone)
		assert.Equal(t, "01:00", cfg.Schedule.RollerRunAt)
		assert.Equal(t, 23*time.Hour, cfg.Schedule.RollerLockTTL)
		assert.Equal(t, "notifications:mail", cfg.Mail.QueueKey)
		assert.Equal(t, 3, cfg.Mail.MaxAttempts)
		assert.Equal(t, 20, cfg.Server.RateLimitBurst)
	})

	t.Run("env file fills unset values only", func(t *testing.T) {
		setRequired(t)
		file := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(file, []byte("PORT=9999\nREDIS_ADDR=cache:6379\n"), 0o600))
		t.Setenv("ENV_FILE", file)
		// godotenv.Load sets the process env; undo it for later cases
		t.Cleanup(func() { _ = os.Unsetenv("REDIS_ADDR") })

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, "cache:6379", cfg.Redis.Addr)
	})

	t.Run("required value missing", func(t *testing.T) {
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		// Setenv first so the original value is restored afterwards
		t.Setenv("PORT", "")
		require.NoError(t, os.Unsetenv("PORT"))
		t.Setenv("DB_USER", "app")
		t.Setenv("DB_PASSWORD", "secret")
		t.Setenv("DB_NAME", "stadium")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("empty origin list is rejected", func(t *testing.T) {
		setRequired(t)
		t.Setenv("ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))
		t.Setenv("CORS_ALLOW_ORIGINS", "")

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "CORS_ALLOW_ORIGINS")
	})
}

func TestValidate(t *testing.T) {
	t.Run("test config is valid", func(t *testing.T) {
		assert.NoError(t, NewTestConfig().Validate())
	})

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{name: "no origins", mutate: func(c *Config) { c.CORS.AllowOrigins = nil }},
		{name: "unknown timezone", mutate: func(c *Config) { c.Schedule.TimeZone = "Mars/Olympus" }},
		{name: "malformed run time", mutate: func(c *Config) { c.Schedule.RollerRunAt = "25:99" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestScheduleConfig(t *testing.T) {
	tests := []struct {
		name    string
		cfg     ScheduleConfig
		offset  time.Duration
		wantErr bool
	}{
		{name: "default run time", cfg: ScheduleConfig{TimeZone: "Asia/Tokyo", RollerRunAt: "01:00"}, offset: time.Hour},
		{name: "minutes", cfg: ScheduleConfig{TimeZone: "UTC", RollerRunAt: "23:45"}, offset: 23*time.Hour + 45*time.Minute},
		{name: "malformed run time", cfg: ScheduleConfig{TimeZone: "UTC", RollerRunAt: "1am"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.cfg.RunAtOffset()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.offset, got)
		})
	}

	_, err := ScheduleConfig{TimeZone: "Mars/Olympus"}.Location()
	assert.Error(t, err)
}

func TestBuildDSN(t *testing.T) {
	cfg := DBConfig{User: "u", Password: "p", Host: "db", Port: "5432", DBName: "stadium", SSLMode: "disable", TimeZone: "UTC"}
	assert.Equal(t, "postgres://u:p@db:5432/stadium?sslmode=disable&timezone=UTC", cfg.BuildDSN())
}
