package t2048

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Moves       int
	Score       int
	Grid        Grid
	MaxTile     int
	ReachedGoal bool
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	grid := g.engine.Grid()
	return Snapshot{
		Tick:        g.tick,
		Moves:       g.moves,
		Score:       g.engine.Score(),
		Grid:        grid,
		MaxTile:     MaxTile(grid),
		ReachedGoal: g.reachedGoal,
		State:       state,
	}
}
