package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)
	t.Setenv("VETCARDS_DB", "")
	t.Setenv("VETCARDS_LOG_FILE", "")
	t.Setenv("VETCARDS_LOG_LEVEL", "")
	t.Setenv("VETCARDS_ENV", "")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dataHome, "vetcards", "vetcards.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dataHome, "vetcards", "vetcards.log"), cfg.LogFile)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, EnvProduction, cfg.Environment)
	assert.False(t, cfg.IsDevelopment())
	assert.DirExists(t, filepath.Join(dataHome, "vetcards"))
}

func TestLoadOverridePriority(t *testing.T) {
	t.Setenv("VETCARDS_DB", filepath.Join(t.TempDir(), "env.db"))
	override := filepath.Join(t.TempDir(), "sub", "flag.db")

	cfg, err := Load(override)
	require.NoError(t, err)
	assert.Equal(t, override, cfg.DBPath)
	assert.DirExists(t, filepath.Dir(override))
}

func TestLoadFromEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("VETCARDS_DB", filepath.Join(dir, "env.db"))
	t.Setenv("VETCARDS_LOG_FILE", filepath.Join(dir, "custom.log"))
	t.Setenv("VETCARDS_LOG_LEVEL", "DEBUG")
	t.Setenv("VETCARDS_ENV", "development")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "env.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(dir, "custom.log"), cfg.LogFile)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.IsDevelopment())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{"valid", Config{DBPath: "a.db", LogFile: "a.log", LogLevel: "warn", Environment: EnvProduction}, ""},
		{"missing db", Config{LogFile: "a.log", LogLevel: "info", Environment: EnvProduction}, "dbpath is required"},
		{"bad level", Config{DBPath: "a.db", LogFile: "a.log", LogLevel: "loud", Environment: EnvProduction}, "loglevel must be one of: debug info warn error"},
		{"bad env", Config{DBPath: "a.db", LogFile: "a.log", LogLevel: "info", Environment: "staging"}, "environment must be one of"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
