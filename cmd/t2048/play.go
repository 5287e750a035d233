package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game",
	Long: `Start a game of 2048.

Default controls (rebind them in the keys section of the config):
  Arrows/WASD/HJKL - Slide tiles
  P/Esc            - Pause
  R                - Restart (after game over)
  Ctrl+S           - Save a text screenshot
  Q/Ctrl+C         - Quit

Examples:
  t2048 play
  t2048 play --seed 42
  t2048 play --config ./my-2048.yaml --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, closer, err := newLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	if !registry.Exists(t2048.GameID) {
		fmt.Fprintf(os.Stderr, "Error: game %q is not registered\n", t2048.GameID)
		os.Exit(1)
	}

	game, err := registry.Create(t2048.GameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}
	configureGame(game, cfg)

	runtime := runtimeConfig(cfg)
	// Get terminal size
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		runtime.ScreenW = w
		runtime.ScreenH = h
	}

	opts := tui.Options{
		Keys:          tui.NewKeyMap(cfg.Keys),
		Logger:        logger,
		ScreenshotDir: cfg.Screenshots.Dir,
	}

	if err := tui.Run(game, runtime, opts); err != nil {
		logger.Error("game crashed", "error", err)
		closer.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

// configurable is implemented by games that take the loaded configuration.
type configurable interface {
	SetConfig(cfg config.Config)
}

// configureGame hands the validated configuration to the game.
func configureGame(game registry.Game, cfg config.Config) {
	if c, ok := game.(configurable); ok {
		c.SetConfig(cfg)
	}
}

// runtimeConfig builds the runtime settings from the configuration,
// starting from the 80x24 defaults.
func runtimeConfig(cfg config.Config) core.RuntimeConfig {
	runtime := core.DefaultConfig()
	runtime.TickRate = cfg.Game.TickRate
	runtime.Seed = cfg.Game.Seed
	return runtime
}
