package t2048

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
)

// Theme assigns a color to each tile value.
type Theme struct {
	Tiles  map[int]core.Color
	Beyond core.Color // values without their own entry
	Border core.Color
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() Theme {
	return Theme{
		Tiles: map[int]core.Color{
			2:    core.ColorWhite,
			4:    core.ColorBrightWhite,
			8:    core.ColorYellow,
			16:   core.ColorOrange,
			32:   core.ColorBrightRed,
			64:   core.ColorRed,
			128:  core.ColorBrightYellow,
			256:  core.ColorBrightYellow,
			512:  core.ColorBrightGreen,
			1024: core.ColorGreen,
			2048: core.ColorBrightCyan,
		},
		Beyond: core.ColorBrightMagenta,
		Border: core.ColorGray,
	}
}

// ThemeFromConfig resolves the color names of a theme section.
func ThemeFromConfig(tc config.ThemeConfig) (Theme, error) {
	theme := Theme{Tiles: make(map[int]core.Color, len(tc.Tiles))}

	for value, name := range tc.Tiles {
		c, err := core.ParseColor(name)
		if err != nil {
			return DefaultTheme(), fmt.Errorf("theme tile %d: %w", value, err)
		}
		theme.Tiles[value] = c
	}

	var err error
	if theme.Beyond, err = parseOptionalColor(tc.Beyond, core.ColorBrightMagenta); err != nil {
		return DefaultTheme(), fmt.Errorf("theme beyond: %w", err)
	}
	if theme.Border, err = parseOptionalColor(tc.Border, core.ColorGray); err != nil {
		return DefaultTheme(), fmt.Errorf("theme border: %w", err)
	}

	return theme, nil
}

func parseOptionalColor(name string, fallback core.Color) (core.Color, error) {
	if name == "" {
		return fallback, nil
	}
	return core.ParseColor(name)
}

// TileColor returns the color for a tile value.
func (t Theme) TileColor(value int) core.Color {
	if c, ok := t.Tiles[value]; ok {
		return c
	}
	return t.Beyond
}
