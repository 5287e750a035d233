package t2048

import (
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/registry"
)

// GameID is the registry identifier of the 2048 game.
const GameID = "2048"

// Game is the play session around one Engine: input handling, pause,
// game over detection and rendering. The engine itself stays unaware
// of any of these.
type Game struct {
	engine *Engine
	cfg    config.Config
	theme  Theme
	tick   uint64
	moves  int

	// Screen dimensions
	screenW int
	screenH int

	// Game state flags
	gameOver    bool
	reachedGoal bool // win tile seen at least once; play continues
	paused      bool
	tooSmall    bool
	lastMoved   bool
}

// NewGame creates a new 2048 game session with the default configuration.
// Call Reset before use.
func NewGame() *Game {
	return &Game{cfg: config.Default()}
}

// SetConfig replaces the configuration applied by the next Reset.
func (g *Game) SetConfig(cfg config.Config) {
	g.cfg = cfg
}

func init() {
	registry.Register(GameID, func() registry.Game {
		return NewGame()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return "2048"
}

// Reset initializes/restarts the game with a fresh engine.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.ResetWith(cfg, g.cfg, NewRandomSource(cfg.Seed))
}

// ResetWith restarts the game using an explicit configuration and random
// source. Tests use it for reproducible runs.
func (g *Game) ResetWith(cfg core.RuntimeConfig, gameCfg config.Config, rng RandomSource) {
	theme, err := ThemeFromConfig(gameCfg.Theme)
	if err != nil {
		theme = DefaultTheme()
	}

	g.cfg = gameCfg
	g.theme = theme
	g.engine = New(rng)
	g.tick = 0
	g.moves = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.gameOver = false
	g.reachedGoal = false
	g.paused = false
	g.lastMoved = false

	g.checkScreenSize()
}

// Engine exposes the underlying grid engine for read access.
func (g *Game) Engine() *Engine {
	return g.engine
}

// Resize adapts the session to new screen dimensions without restarting.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// checkScreenSize checks if the screen is large enough.
func (g *Game) checkScreenSize() {
	// Minimum size: board (29 wide, 13 tall) + HUD (3 lines) + banner line
	minW := boardWidth + 2
	minH := boardHeight + hudHeight + 2 // +1 gap above the board
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// Step advances the game by one tick.
// At most one shift is applied per tick; when several directions arrive
// in the same frame the first in Directions order wins.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	g.lastMoved = false

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}

	if g.paused || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	for _, dir := range Directions {
		if in.Has(actionFor(dir)) {
			g.processMove(dir)
			break
		}
	}

	return core.StepResult{State: g.State(), Moved: g.lastMoved}
}

func actionFor(dir Direction) core.Action {
	switch dir {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	default:
		return core.ActionRight
	}
}

// processMove handles a move in the given direction.
func (g *Game) processMove(dir Direction) {
	moved, err := g.engine.Shift(dir)
	if err != nil || !moved {
		// err can only mean a full board, which CanMove catches below
		g.gameOver = !CanMove(g.engine.Grid())
		return
	}

	g.moves++
	g.lastMoved = true

	if win := g.cfg.Game.WinTile; win > 0 && MaxTile(g.engine.Grid()) >= win {
		g.reachedGoal = true
	}

	if !CanMove(g.engine.Grid()) {
		g.gameOver = true
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.engine.Score(),
		GameOver: g.gameOver,
		Paused:   g.paused || g.tooSmall,
	}
}
