package t2048

import (
	"errors"
	"math/rand"
	"time"
)

// ErrNoEmptyCell is returned when a tile must spawn on a full grid.
var ErrNoEmptyCell = errors.New("no empty cell to spawn a tile")

// RandomSource supplies uniform integers in [0, n). *rand.Rand satisfies it.
type RandomSource interface {
	Intn(n int) int
}

// NewRandomSource returns a math/rand source. A zero seed uses the clock.
func NewRandomSource(seed int64) RandomSource {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// spawnValues are the possible new tile values, picked with equal odds.
var spawnValues = [...]int{2, 4}

// Engine owns the grid and the cumulative score of one game.
//
// The zero value is not usable; construct with New, Load or LoadGrid.
// An Engine is not safe for concurrent use.
type Engine struct {
	grid  Grid
	score int
	rng   RandomSource
}

// New starts a fresh game: an empty grid with two spawned tiles and score 0.
// A nil rng falls back to a clock-seeded source.
func New(rng RandomSource) *Engine {
	e := &Engine{rng: orDefault(rng)}
	// An empty grid always has room for the opening tiles.
	_, _ = e.spawn()
	_, _ = e.spawn()
	return e
}

// Load restores an engine from a caller-supplied grid and score.
// The grid is trusted as is: values are not checked for the power-of-two
// invariant and no tile is spawned.
func Load(grid Grid, score int, rng RandomSource) *Engine {
	return &Engine{grid: grid, score: score, rng: orDefault(rng)}
}

// LoadGrid is Load with a zero score.
func LoadGrid(grid Grid, rng RandomSource) *Engine {
	return Load(grid, 0, rng)
}

func orDefault(rng RandomSource) RandomSource {
	if rng == nil {
		return NewRandomSource(0)
	}
	return rng
}

// Grid returns a copy of the board.
func (e *Engine) Grid() Grid {
	return e.grid
}

// Score returns the cumulative score.
func (e *Engine) Score() int {
	return e.score
}

// Cell returns the value at column x, row y.
func (e *Engine) Cell(x, y int) int {
	return e.grid[y][x]
}

// Clone returns an independent copy of the board and score.
// The random source is shared with the original.
func (e *Engine) Clone() *Engine {
	c := *e
	return &c
}

// Shift slides every tile toward dir, merging equal neighbours and adding
// each merged value to the score. When the board changed, exactly one new
// tile is spawned. A shift that changes nothing is a legal no-op and
// returns moved == false.
//
// The returned error is ErrNoEmptyCell if the board changed but left no
// room for the new tile; the merge result and score are kept in that case.
func (e *Engine) Shift(dir Direction) (moved bool, err error) {
	before := e.grid

	next, gained, _ := Slide(e.grid, dir)
	e.grid = next
	e.score += gained

	if e.grid == before {
		return false, nil
	}

	if _, err := e.spawn(); err != nil {
		return true, err
	}
	return true, nil
}

// spawn places a 2 or a 4 on a uniformly chosen empty cell.
func (e *Engine) spawn() (Cell, error) {
	empty := EmptyCells(e.grid)
	if len(empty) == 0 {
		return Cell{}, ErrNoEmptyCell
	}

	cell := empty[e.rng.Intn(len(empty))]
	e.grid[cell.Y][cell.X] = spawnValues[e.rng.Intn(len(spawnValues))]
	return cell, nil
}
