package rvec

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hupe1980/rvec/serialize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(`
log_level: debug
log_format: json
compression: zstd
warning_sample_every: 50
warning_sample_interval: 5s
`))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "zstd", cfg.Compression)
	assert.Equal(t, 50, cfg.WarningSampleEvery)
	assert.Equal(t, 5*time.Second, cfg.WarningSampleInterval)

	s := New(WithConfig(cfg))
	assert.Equal(t, serialize.CompressionZSTD, s.Compression())
	assert.True(t, s.Logger().Enabled(t.Context(), slog.LevelDebug))
}

func TestParseConfigKeepsDefaults(t *testing.T) {
	cfg, err := ParseConfig([]byte("compression: lz4\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1, cfg.WarningSampleEvery)
}

func TestParseConfigInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"level", "log_level: loud\n", "log_level"},
		{"format", "log_format: xml\n", "log_format"},
		{"compression", "compression: gzip\n", "compression"},
		{"sampling", "warning_sample_every: 0\n", "warning_sample_every"},
		{"interval", "warning_sample_interval: -1s\n", "warning_sample_interval"},
		{"syntax", "log_level: [\n", "yaml unmarshal"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rvec.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log_format: text\n"), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.LogFormat)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
