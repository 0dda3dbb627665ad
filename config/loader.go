package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

//go:embed defaults/settings.yaml
var defaultSettingsYAML []byte

// Settings is the user-editable subset of the configuration.
// Only the gravity step and the tile size are exposed from the physics.
type Settings struct {
	Window   WindowSettings  `yaml:"window"`
	Physics  PhysicsSettings `yaml:"physics"`
	Debug    DebugSettings   `yaml:"debug"`
	LogLevel string          `yaml:"log_level"`
	Level    string          `yaml:"level"` // optional .tmx path, empty = built-in map
}

type WindowSettings struct {
	Scale float64 `yaml:"scale"`
	TPS   int     `yaml:"tps"`
}

type PhysicsSettings struct {
	GravityStep float64 `yaml:"gravity_step"`
	TileSize    float64 `yaml:"tile_size"`
}

type DebugSettings struct {
	DrawColliders bool   `yaml:"draw_colliders"`
	SpriteDir     string `yaml:"sprite_dir"`
}

// DefaultSettings returns the settings matching the package defaults.
func DefaultSettings() Settings {
	return Settings{
		Window:   WindowSettings{Scale: 0.75, TPS: 60},
		Physics:  PhysicsSettings{GravityStep: 10, TileSize: 50},
		Debug:    DebugSettings{SpriteDir: "sprites"},
		LogLevel: "info",
	}
}

// Load reads the settings file.
// Search order: customPath -> ~/.blockdude/settings.yaml -> ./configs/settings.yaml -> embedded default
func Load(customPath string) (Settings, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to read settings %s: %w", customPath, err)
		}
		s, err := Parse(data)
		if err != nil {
			return Settings{}, fmt.Errorf("failed to parse settings %s: %w", customPath, err)
		}
		return s, nil
	}

	for _, path := range []string{userSettingsPath(), filepath.Join("configs", "settings.yaml")} {
		if path == "" {
			continue
		}
		if data, err := os.ReadFile(path); err == nil {
			if s, err := Parse(data); err == nil {
				return s, nil
			}
		}
	}

	s, err := Parse(defaultSettingsYAML)
	if err != nil {
		return DefaultSettings(), nil // Fallback to hardcoded if embed fails
	}
	return s, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Settings{}, err
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects values the simulation cannot run with.
func (s Settings) Validate() error {
	var errs []error
	if s.Physics.GravityStep <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity_step must be positive, got %v", s.Physics.GravityStep))
	}
	if s.Physics.TileSize <= 0 {
		errs = append(errs, fmt.Errorf("physics.tile_size must be positive, got %v", s.Physics.TileSize))
	}
	if s.Window.TPS <= 0 {
		errs = append(errs, fmt.Errorf("window.tps must be positive, got %d", s.Window.TPS))
	}
	if s.Window.Scale <= 0 {
		errs = append(errs, fmt.Errorf("window.scale must be positive, got %v", s.Window.Scale))
	}
	return errors.Join(errs...)
}

// Apply copies the settings into the package-level configuration.
func (s Settings) Apply() {
	C.Scale = s.Window.Scale
	C.TPS = s.Window.TPS
	Physics.GravityStep = s.Physics.GravityStep
	Physics.TileSize = s.Physics.TileSize
	Debug.DrawColliders = s.Debug.DrawColliders
	if s.Debug.SpriteDir != "" {
		Debug.SpriteDir = s.Debug.SpriteDir
	}
}

// userSettingsPath returns the per-user settings file, or empty if home is unavailable.
func userSettingsPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockdude", "settings.yaml")
}
