package config

import (
	_ "embed"
)

//go:embed defaults/t2048.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the hard-coded default configuration.
// It mirrors defaults/t2048.yaml and is used when the embedded file
// cannot be parsed.
func Default() Config {
	return Config{
		Game: GameConfig{
			TickRate: 60,
			Seed:     0,
			WinTile:  2048,
		},
		Keys: KeysConfig{
			Up:         []string{"up", "w", "k"},
			Down:       []string{"down", "s", "j"},
			Left:       []string{"left", "a", "h"},
			Right:      []string{"right", "d", "l"},
			Pause:      []string{"p", "esc"},
			Restart:    []string{"r"},
			Quit:       []string{"q", "ctrl+c"},
			Screenshot: []string{"ctrl+s"},
		},
		Theme: ThemeConfig{
			Tiles: map[int]string{
				2:    "white",
				4:    "bright_white",
				8:    "yellow",
				16:   "orange",
				32:   "bright_red",
				64:   "red",
				128:  "bright_yellow",
				256:  "bright_yellow",
				512:  "bright_green",
				1024: "green",
				2048: "bright_cyan",
			},
			Beyond: "bright_magenta",
			Border: "gray",
		},
		Log: LogConfig{
			Level:      "info",
			File:       "~/.t2048/t2048.log",
			MaxSizeMB:  5,
			MaxBackups: 3,
			MaxAgeDays: 14,
		},
		Screenshots: ScreenshotConfig{
			Dir: "~/.t2048/screenshots",
		},
	}
}
