package pkg

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/mattn/go-isatty"
)

// Config is the optional YAML settings file. Command line flags win over
// anything set here.
type Config struct {
	Color         string `yaml:"color"`           // auto, always, never
	LogLevel      string `yaml:"log_level"`       // debug, info, warn, error
	Format        string `yaml:"format"`          // decode 的默认输出格式
	MaxArrayIndex int    `yaml:"max_array_index"` // 数组下标上限
}

func DefaultConfig() *Config {
	return &Config{
		Color:    "auto",
		LogLevel: "warn",
		Format:   string(exportFormats.YAML),
	}
}

// LoadConfig reads path over the defaults. An empty path returns the
// defaults unchanged.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if len(path) == 0 {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if _, err := parseColorMode(cfg.Color); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("unknown log level %q", s)
	}
	return l, nil
}

// NewLogger returns a text logger without timestamps.
func NewLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}

type colorMode string

func parseColorMode(s string) (colorMode, error) {
	switch m := colorMode(strings.ToLower(s)); m {
	case "auto", "always", "never":
		return m, nil
	}
	return "", fmt.Errorf("unknown color mode %q", s)
}

// UseColor decides whether output to w gets colors. In auto mode only a
// terminal does.
func UseColor(mode string, w io.Writer) (bool, error) {
	m, err := parseColorMode(mode)
	if err != nil {
		return false, err
	}
	switch m {
	case "always":
		return true, nil
	case "never":
		return false, nil
	}
	f, ok := w.(*os.File)
	if !ok {
		return false, nil
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()), nil
}
