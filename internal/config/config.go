// Package config loads the site-stock CLI configuration from YAML.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/saad12354/site-stock-app/pkg/export"
)

// ErrInvalid is returned when a loaded value cannot be used.
var ErrInvalid = errors.New("config: invalid value")

// Config is the CLI configuration.
type Config struct {
	Share     Share     `yaml:"share"`
	Print     Print     `yaml:"print"`
	Clipboard Clipboard `yaml:"clipboard"`
	Log       Log       `yaml:"log"`
	Editor    Editor    `yaml:"editor"`
}

// Share configures the share link.
type Share struct {
	Scheme string `yaml:"scheme"`
	Host   string `yaml:"host"`
}

// Print configures the print page.
type Print struct {
	Title string `yaml:"title"`
}

// Clipboard toggles clipboard access.
type Clipboard struct {
	Enabled bool `yaml:"enabled"`
}

// Log configures the CLI logger.
type Log struct {
	Level string `yaml:"level"`
}

// Editor configures the interactive prompts.
type Editor struct {
	PageSize int `yaml:"page_size"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Share: Share{
			Scheme: export.DefaultShareScheme,
			Host:   export.DefaultShareHost,
		},
		Print:     Print{Title: export.DefaultPrintTitle},
		Clipboard: Clipboard{Enabled: true},
		Log:       Log{Level: "info"},
		Editor:    Editor{PageSize: 10},
	}
}

// Load reads path and layers it over Default. An empty path or a missing
// file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if strings.TrimSpace(path) == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes YAML data over base.
func Parse(data []byte, base Config) (Config, error) {
	cfg := base
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse: %w", err)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	if cfg.Editor.PageSize < 0 {
		return Config{}, fmt.Errorf("%w: editor.page_size %d", ErrInvalid, cfg.Editor.PageSize)
	}
	return cfg, nil
}

// Level resolves log.level.
func (c Config) Level() (slog.Level, error) {
	var level slog.Level
	raw := strings.TrimSpace(c.Log.Level)
	if raw == "" {
		return slog.LevelInfo, nil
	}
	if err := level.UnmarshalText([]byte(raw)); err != nil {
		return slog.LevelInfo, fmt.Errorf("%w: log.level %q", ErrInvalid, raw)
	}
	return level, nil
}

// ExportOptions maps the share, print and clipboard settings onto exporter
// options. clip is used when the clipboard is enabled.
func (c Config) ExportOptions(clip export.Clipboard) []export.Option {
	options := []export.Option{
		export.WithShareHost(c.Share.Scheme, c.Share.Host),
		export.WithPrintTitle(c.Print.Title),
	}
	if !c.Clipboard.Enabled {
		clip = nil
	}
	return append(options, export.WithClipboard(clip))
}
