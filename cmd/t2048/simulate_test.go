package main

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-2048/internal/games/t2048"
)

var discard = log.New(io.Discard)

// stuckGrid has no empty cell and no equal neighbours.
var stuckGrid = t2048.Grid{
	{2, 4, 2, 4},
	{4, 2, 4, 2},
	{2, 4, 2, 4},
	{4, 2, 4, 2},
}

func TestLookupStrategy(t *testing.T) {
	for _, name := range []string{"cycle", "random", "greedy", "GREEDY"} {
		s, err := lookupStrategy(name)
		require.NoError(t, err, name)
		assert.NotNil(t, s, name)
	}

	_, err := lookupStrategy("minimax")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cycle, greedy, random")
}

func TestLegalMoves(t *testing.T) {
	g := t2048.Grid{{2, 0, 0, 0}}
	assert.Equal(t, []t2048.Direction{t2048.DirDown, t2048.DirRight}, legalMoves(g))
	assert.Empty(t, legalMoves(stuckGrid))
}

func TestGreedyPrefersMerges(t *testing.T) {
	// Only a horizontal shift merges the pair in the top row
	e := t2048.LoadGrid(t2048.Grid{
		{2, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{4, 0, 0, 0},
	}, t2048.NewRandomSource(1))

	dir, ok := greedyStrategy(e, 0, nil)
	require.True(t, ok)
	assert.Contains(t, []t2048.Direction{t2048.DirLeft, t2048.DirRight}, dir)
}

func TestCycleRotatesDirections(t *testing.T) {
	e := t2048.LoadGrid(t2048.Grid{
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 0},
	}, t2048.NewRandomSource(1))

	for move, want := range t2048.Directions {
		dir, ok := cycleStrategy(e, move, nil)
		require.True(t, ok)
		assert.Equal(t, want, dir)
	}
}

func TestStrategiesGiveUpWhenStuck(t *testing.T) {
	e := t2048.LoadGrid(stuckGrid, t2048.NewRandomSource(1))
	for name, s := range strategies {
		_, ok := s(e, 0, t2048.NewRandomSource(1))
		assert.False(t, ok, name)
	}
}

func TestSimulateStopsAtMoveLimit(t *testing.T) {
	e := t2048.New(t2048.NewRandomSource(3))
	res, err := simulate(e, cycleStrategy, 5, t2048.NewRandomSource(3), discard)
	require.NoError(t, err)

	assert.Equal(t, 5, res.Moves)
	assert.False(t, res.Over)
	assert.Equal(t, e.Score(), res.Score)
	assert.Equal(t, t2048.MaxTile(res.Grid), res.MaxTile)
}

func TestSimulateStuckBoard(t *testing.T) {
	e := t2048.Load(stuckGrid, 100, t2048.NewRandomSource(1))
	res, err := simulate(e, greedyStrategy, 10, nil, discard)
	require.NoError(t, err)

	assert.True(t, res.Over)
	assert.Zero(t, res.Moves)
	assert.Equal(t, 100, res.Score)
	assert.Equal(t, stuckGrid, res.Grid)
}

func TestSimulateIsReproducible(t *testing.T) {
	run := func() simResult {
		e := t2048.New(t2048.NewRandomSource(42))
		res, err := simulate(e, randomStrategy, 300, t2048.NewRandomSource(42), discard)
		require.NoError(t, err)
		return res
	}

	assert.Equal(t, run(), run())
}

func TestSimulatePlaysToTheEnd(t *testing.T) {
	e := t2048.New(t2048.NewRandomSource(9))
	res, err := simulate(e, greedyStrategy, 100000, nil, discard)
	require.NoError(t, err)

	assert.True(t, res.Over)
	assert.False(t, t2048.CanMove(res.Grid))
	assert.GreaterOrEqual(t, res.MaxTile, 64)
}

func TestPrintResult(t *testing.T) {
	var buf bytes.Buffer
	printResult(&buf, "greedy", simResult{
		Grid:    t2048.Grid{{2048, 0, 0, 0}},
		Score:   20000,
		Moves:   900,
		MaxTile: 2048,
		Over:    true,
	})

	out := buf.String()
	assert.Contains(t, out, "2048")
	assert.Contains(t, out, "Score:    20000")
	assert.Contains(t, out, "Moves:    900")
	assert.Contains(t, out, "GAME OVER")
	assert.Equal(t, t2048.Size*2+1, strings.Count(renderGrid(t2048.Grid{}), "\n")+1)
}

func TestStrategySeedDiffersFromGameSeed(t *testing.T) {
	for _, seed := range []int64{1, 42, 0x5eed, -7} {
		s := strategySeed(seed)
		assert.NotEqual(t, seed, s, "seed %d", seed)
		assert.NotZero(t, s, "seed %d must not fall back to the clock", seed)
		assert.Equal(t, s, strategySeed(seed), "seed %d must be stable", seed)
	}
	assert.Zero(t, strategySeed(0))

	// The two sources must not replay the same picks
	game := t2048.NewRandomSource(42)
	strat := t2048.NewRandomSource(strategySeed(42))
	same := 0
	for range 64 {
		if game.Intn(1<<20) == strat.Intn(1<<20) {
			same++
		}
	}
	assert.Less(t, same, 64)
}
