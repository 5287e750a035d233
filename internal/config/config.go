// Package config provides YAML-based configuration loading for the 2048
// game: simulation speed, key bindings, tile colors, logging and screenshots.
package config

// Config is the complete application configuration.
type Config struct {
	Game        GameConfig       `yaml:"game"`
	Keys        KeysConfig       `yaml:"keys"`
	Theme       ThemeConfig      `yaml:"theme"`
	Log         LogConfig        `yaml:"log"`
	Screenshots ScreenshotConfig `yaml:"screenshots"`
}

// GameConfig defines session parameters.
type GameConfig struct {
	TickRate int   `yaml:"tick_rate"` // Simulation ticks per second
	Seed     int64 `yaml:"seed"`      // 0 = random based on time
	WinTile  int   `yaml:"win_tile"`  // Tile that triggers the win banner, 0 disables it
}

// KeysConfig lists the key names bound to each action.
// Names follow Bubble Tea's KeyMsg.String(), e.g. "up", "w", "ctrl+c".
type KeysConfig struct {
	Up         []string `yaml:"up"`
	Down       []string `yaml:"down"`
	Left       []string `yaml:"left"`
	Right      []string `yaml:"right"`
	Pause      []string `yaml:"pause"`
	Restart    []string `yaml:"restart"`
	Quit       []string `yaml:"quit"`
	Screenshot []string `yaml:"screenshot"`
}

// ThemeConfig maps tile values to palette color names.
type ThemeConfig struct {
	Tiles  map[int]string `yaml:"tiles"`
	Beyond string         `yaml:"beyond"` // Color for values missing from Tiles
	Border string         `yaml:"border"`
}

// LogConfig defines where and how verbosely the game logs.
// An empty File sends logs to stderr.
type LogConfig struct {
	Level      string `yaml:"level"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// ScreenshotConfig defines where text screenshots are written.
type ScreenshotConfig struct {
	Dir string `yaml:"dir"`
}
