package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/showroom/internal/carousel"
)

// Platform selects the carousel input modality.
type Platform string

const (
	// PlatformWeb drives carousels with arrows and indicators.
	PlatformWeb Platform = "web"
	// PlatformNative drives carousels with a paging scroll view.
	PlatformNative Platform = "native"
)

// ParsePlatform normalizes s. ok is false for unknown values.
func ParsePlatform(s string) (Platform, bool) {
	switch Platform(strings.ToLower(strings.TrimSpace(s))) {
	case PlatformWeb:
		return PlatformWeb, true
	case PlatformNative:
		return PlatformNative, true
	default:
		return "", false
	}
}

// Modality returns the carousel modality for the platform.
func (p Platform) Modality() carousel.Modality {
	if p == PlatformNative {
		return carousel.ModalityScroll
	}
	return carousel.ModalityTransform
}

// Toggle returns the other platform.
func (p Platform) Toggle() Platform {
	if p == PlatformNative {
		return PlatformWeb
	}
	return PlatformNative
}

// Carousel holds the [carousel] table.
type Carousel struct {
	ShowArrows          bool
	ShowIndicators      bool
	AutoAdvance         bool
	AutoAdvanceInterval time.Duration
}

// Options converts the table into carousel options for a card of the given width.
func (c Carousel) Options(width float64) carousel.Options {
	opts := carousel.DefaultOptions()
	opts.Width = width
	opts.ShowArrows = c.ShowArrows
	opts.ShowIndicators = c.ShowIndicators
	opts.AutoAdvance = c.AutoAdvance
	opts.AutoAdvanceInterval = c.AutoAdvanceInterval
	return opts.Normalize()
}

// Config is the showroom configuration.
type Config struct {
	Platform    Platform
	CatalogPath string
	LogFile     string
	LogLevel    string
	Carousel    Carousel
}

const (
	defaultConfigPath = "~/.config/showroom/config.toml"
	defaultLogFile    = "~/.local/state/showroom/showroom.log"
	defaultLogLevel   = "info"
	defaultIntervalMS = 3000
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Platform: PlatformWeb,
		LogFile:  mustExpand(defaultLogFile),
		LogLevel: defaultLogLevel,
		Carousel: Carousel{
			ShowArrows:          true,
			ShowIndicators:      true,
			AutoAdvance:         true,
			AutoAdvanceInterval: defaultIntervalMS * time.Millisecond,
		},
	}
}

// Load locates and parses the showroom config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Platform string  `toml:"platform"`
		Catalog  string  `toml:"catalog"`
		LogFile  *string `toml:"log_file"`
		LogLevel string  `toml:"log_level"`
		Carousel struct {
			ShowArrows            *bool `toml:"show_arrows"`
			ShowIndicators        *bool `toml:"show_indicators"`
			AutoAdvance           *bool `toml:"auto_advance"`
			AutoAdvanceIntervalMS int64 `toml:"auto_advance_interval_ms"`
		} `toml:"carousel"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	if p, ok := ParsePlatform(raw.Platform); ok {
		cfg.Platform = p
	}

	if catalog := strings.TrimSpace(raw.Catalog); catalog != "" {
		cfg.CatalogPath = mustExpand(catalog)
	}

	// An explicit empty log_file disables logging.
	if raw.LogFile != nil {
		cfg.LogFile = strings.TrimSpace(*raw.LogFile)
		if cfg.LogFile != "" {
			cfg.LogFile = mustExpand(cfg.LogFile)
		}
	}

	if level := strings.TrimSpace(raw.LogLevel); level != "" {
		cfg.LogLevel = strings.ToLower(level)
	}

	c := raw.Carousel
	if c.ShowArrows != nil {
		cfg.Carousel.ShowArrows = *c.ShowArrows
	}
	if c.ShowIndicators != nil {
		cfg.Carousel.ShowIndicators = *c.ShowIndicators
	}
	if c.AutoAdvance != nil {
		cfg.Carousel.AutoAdvance = *c.AutoAdvance
	}
	if c.AutoAdvanceIntervalMS > 0 {
		cfg.Carousel.AutoAdvanceInterval = time.Duration(c.AutoAdvanceIntervalMS) * time.Millisecond
	}

	return cfg, nil
}

// ExpandPath resolves a tilde or relative path to an absolute one.
func ExpandPath(path string) (string, error) {
	return expandPath(path)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
