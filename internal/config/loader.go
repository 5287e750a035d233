package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

// localConfigPath is checked relative to the working directory.
const localConfigPath = "configs/t2048.yaml"

// Load loads the configuration.
// Search order: customPath -> ~/.t2048/config.yaml -> ./configs/t2048.yaml -> embedded default
//
// A custom path that cannot be read or parsed is an error; the other
// locations are optional and skipped when missing or malformed.
// Every file is decoded on top of the defaults, so it only needs the keys
// it changes.
func Load(customPath string) (Config, error) {
	if customPath != "" {
		cfg, err := loadFile(ExpandHome(customPath))
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(); userCfgPath != "" {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := loadFile(localConfigPath); err == nil {
		return cfg, nil
	}

	return embedded(), nil
}

// loadFile reads and validates one YAML file layered over the embedded default.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	cfg := embedded()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// embedded decodes the embedded default YAML.
func embedded() Config {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to the user config file, or empty if home is unavailable.
func userConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".t2048", "config.yaml")
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}

// Validate checks the configuration for values the game cannot run with.
func (c Config) Validate() error {
	if c.Game.TickRate <= 0 {
		return fmt.Errorf("%w: game.tick_rate must be positive, got %d", ErrInvalid, c.Game.TickRate)
	}
	if w := c.Game.WinTile; w != 0 && (w < 4 || w&(w-1) != 0) {
		return fmt.Errorf("%w: game.win_tile must be a power of two >= 4, got %d", ErrInvalid, w)
	}

	bindings := map[string][]string{
		"up":      c.Keys.Up,
		"down":    c.Keys.Down,
		"left":    c.Keys.Left,
		"right":   c.Keys.Right,
		"restart": c.Keys.Restart,
		"quit":    c.Keys.Quit,
	}
	for name, keys := range bindings {
		if len(keys) == 0 {
			return fmt.Errorf("%w: keys.%s needs at least one key", ErrInvalid, name)
		}
	}

	for value, name := range c.Theme.Tiles {
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: theme.tiles.%d: %w", ErrInvalid, value, err)
		}
	}
	for field, name := range map[string]string{"beyond": c.Theme.Beyond, "border": c.Theme.Border} {
		if name == "" {
			continue
		}
		if _, err := core.ParseColor(name); err != nil {
			return fmt.Errorf("%w: theme.%s: %w", ErrInvalid, field, err)
		}
	}

	if c.Log.Level != "" {
		if _, err := log.ParseLevel(c.Log.Level); err != nil {
			return fmt.Errorf("%w: log.level: %w", ErrInvalid, err)
		}
	}

	return nil
}

// Marshal renders the configuration as YAML.
func (c Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	return data, nil
}
