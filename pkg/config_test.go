package pkg

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	p := writeFile(t, "siq.yaml", []byte("color: never\nlog_level: debug\nformat: json\nmax_array_index: 64\n"))
	cfg, err = LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, &Config{Color: "never", LogLevel: "debug", Format: "json", MaxArrayIndex: 64}, cfg)

	p = writeFile(t, "partial.yaml", []byte("format: json\n"))
	cfg, err = LoadConfig(p)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Color)
	assert.Equal(t, "json", cfg.Format)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "bad.yaml", []byte("color: [\n")))
	assert.Error(t, err)

	_, err = LoadConfig(writeFile(t, "color.yaml", []byte("color: sometimes\n")))
	assert.ErrorContains(t, err, "unknown color mode")

	_, err = LoadConfig(writeFile(t, "level.yaml", []byte("log_level: loud\n")))
	assert.ErrorContains(t, err, "unknown log level")
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewLogger(&buf, slog.LevelInfo)
	log.Debug("hidden")
	log.Info("shown", "k", 1)
	assert.Equal(t, "level=INFO msg=shown k=1\n", buf.String())
}

func TestUseColor(t *testing.T) {
	var buf bytes.Buffer
	on, err := UseColor("always", &buf)
	require.NoError(t, err)
	assert.True(t, on)

	on, err = UseColor("auto", &buf)
	require.NoError(t, err)
	assert.False(t, on)

	on, err = UseColor("NEVER", os.Stdout)
	require.NoError(t, err)
	assert.False(t, on)

	_, err = UseColor("rainbow", &buf)
	assert.Error(t, err)
}
