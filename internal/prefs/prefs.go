// Package prefs handles parcel's display preferences.
// Preferences are stored in ~/.config/parcel/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// Text sizes offered by the settings screen.
const (
	TextSmall  = "S"
	TextMedium = "M"
	TextLarge  = "L"
)

// Theme names offered by the settings screen.
const (
	ThemeLight  = "Claro"
	ThemeDark   = "Oscuro"
	ThemeSystem = "System"
)

// TextSizes lists text sizes in display order.
var TextSizes = []string{TextSmall, TextMedium, TextLarge}

// Themes lists theme names in display order.
var Themes = []string{ThemeLight, ThemeDark, ThemeSystem}

// Prefs holds user display preferences.
type Prefs struct {
	Theme    string `toml:"theme"`
	TextSize string `toml:"text_size"`
	Contrast bool   `toml:"contrast"`
}

const defaultPrefsPath = "~/.config/parcel/prefs.toml"

// Default returns the preferences used when nothing is stored.
func Default() Prefs {
	return Prefs{Theme: ThemeSystem, TextSize: TextMedium}
}

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Normalize replaces unknown values with defaults.
func (p Prefs) Normalize() Prefs {
	def := Default()
	p.Theme = strings.TrimSpace(p.Theme)
	if !slices.Contains(Themes, p.Theme) {
		p.Theme = def.Theme
	}
	p.TextSize = strings.ToUpper(strings.TrimSpace(p.TextSize))
	if !slices.Contains(TextSizes, p.TextSize) {
		p.TextSize = def.TextSize
	}
	return p
}

// Load reads preferences from the given path. Any failure yields defaults.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Default(), nil
	}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return Default(), nil // Graceful degradation
	}

	var p Prefs
	if err := toml.Unmarshal(bytes, &p); err != nil {
		return Default(), nil // Graceful degradation
	}

	return p.Normalize(), nil
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

	bytes, err := toml.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
	}
	return expandPath(path)
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
