// Package prefs handles showroom user preferences persistence.
// Preferences are stored in ~/.config/showroom/prefs.toml.
package prefs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/showroom/internal/config"
)

// Prefs holds user preferences remembered between runs.
type Prefs struct {
	Theme string `toml:"theme"`
	// Platform is the last platform chosen in the UI. Empty means the
	// configured platform applies.
	Platform config.Platform `toml:"platform,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/showroom/prefs.toml"
	defaultTheme     = "Slate"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: defaultTheme}
}

// PlatformOr returns the remembered platform, or fallback when none is stored.
func (p Prefs) PlatformOr(fallback config.Platform) config.Platform {
	if p.Platform == "" {
		return fallback
	}
	return p.Platform
}

// Load reads preferences from path. Missing, unreadable or malformed files
// yield defaults; unknown platforms are dropped.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	data, err := os.ReadFile(resolved)
	if err != nil {
		return Default(), nil
	}

	var raw struct {
		Theme    string `toml:"theme"`
		Platform string `toml:"platform"`
	}
	if err := toml.Unmarshal(data, &raw); err != nil {
		return Default(), nil
	}

	p := Default()
	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		p.Theme = theme
	}
	if platform, ok := config.ParsePlatform(raw.Platform); ok {
		p.Platform = platform
	}
	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	data, err := toml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, data, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}
	return nil
}

// Update loads the stored preferences, applies mutate and saves the result.
// Fields mutate does not touch keep their stored values.
func Update(path string, mutate func(*Prefs)) error {
	p, _ := Load(path)
	mutate(&p)
	return Save(path, p)
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		path = defaultPrefsPath
	}
	return config.ExpandPath(path)
}
