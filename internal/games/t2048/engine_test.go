package t2048

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// seqSource replays a fixed list of picks, each reduced modulo n.
type seqSource struct {
	t     *testing.T
	picks []int
	next  int
}

func (s *seqSource) Intn(n int) int {
	if s.next >= len(s.picks) {
		s.t.Fatalf("random source exhausted after %d picks", len(s.picks))
	}
	v := s.picks[s.next] % n
	s.next++
	return v
}

// noRandom fails the test if the engine asks for a random value.
type noRandom struct{ t *testing.T }

func (n noRandom) Intn(int) int {
	n.t.Fatal("unexpected random draw")
	return 0
}

func isPowerOfTwo(v int) bool {
	return v >= 2 && v&(v-1) == 0
}

func TestNewSpawnsTwoTiles(t *testing.T) {
	for seed := int64(1); seed <= 50; seed++ {
		e := New(NewRandomSource(seed))
		g := e.Grid()

		if TileCount(g) != 2 {
			t.Fatalf("seed %d: %d tiles after New, want 2\n%v", seed, TileCount(g), g)
		}
		for y := range Size {
			for x := range Size {
				if v := g[y][x]; v != 0 && v != 2 && v != 4 {
					t.Fatalf("seed %d: spawned value %d at (%d,%d)", seed, v, x, y)
				}
			}
		}
		if e.Score() != 0 {
			t.Fatalf("seed %d: score %d after New, want 0", seed, e.Score())
		}
	}
}

func TestNewUsesInjectedSource(t *testing.T) {
	// cell 0 of 16, value index 0; then cell 0 of 15, value index 1
	src := &seqSource{t: t, picks: []int{0, 0, 0, 1}}
	e := New(src)

	want := Grid{{2, 4, 0, 0}}
	if diff := cmp.Diff(want, e.Grid()); diff != "" {
		t.Errorf("New grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSpawnUsesRandomCell(t *testing.T) {
	// cell 5 of 16 is (1,1); then cell 14 of the 15 left is (3,3)
	src := &seqSource{t: t, picks: []int{5, 0, 14, 1}}
	e := LoadGrid(Grid{}, src)

	first, err := e.spawn()
	if err != nil {
		t.Fatalf("spawn on empty grid: %v", err)
	}
	if first != (Cell{X: 1, Y: 1}) {
		t.Errorf("first spawn at %+v, want {X:1 Y:1}", first)
	}

	second, err := e.spawn()
	if err != nil {
		t.Fatalf("second spawn: %v", err)
	}
	if second != (Cell{X: 3, Y: 3}) {
		t.Errorf("second spawn at %+v, want {X:3 Y:3}", second)
	}

	want := Grid{
		{0, 0, 0, 0},
		{0, 2, 0, 0},
		{0, 0, 0, 0},
		{0, 0, 0, 4},
	}
	if diff := cmp.Diff(want, e.Grid()); diff != "" {
		t.Errorf("grid mismatch (-want +got):\n%s", diff)
	}
}

func TestSpawnDistribution(t *testing.T) {
	// Three holes at (3,0), (0,2) and (2,3)
	base := Grid{
		{2, 4, 8, 0},
		{16, 32, 64, 128},
		{0, 512, 1024, 2048},
		{2, 4, 0, 8},
	}
	holes := []Cell{{X: 3, Y: 0}, {X: 0, Y: 2}, {X: 2, Y: 3}}

	const runs = 3000
	rng := NewRandomSource(2048)
	cells := make(map[Cell]int)
	values := make(map[int]int)

	for range runs {
		e := LoadGrid(base, rng)
		cell, err := e.spawn()
		if err != nil {
			t.Fatalf("spawn: %v", err)
		}
		cells[cell]++
		values[e.Cell(cell.X, cell.Y)]++
	}

	for _, h := range holes {
		// Expect about runs/3 = 1000 each
		if n := cells[h]; n < 800 || n > 1200 {
			t.Errorf("hole %+v chosen %d times out of %d", h, n, runs)
		}
	}
	if len(cells) != len(holes) {
		t.Errorf("spawned into %d distinct cells, want %d: %v", len(cells), len(holes), cells)
	}
	for _, v := range []int{2, 4} {
		if n := values[v]; n < 1300 || n > 1700 {
			t.Errorf("value %d spawned %d times out of %d", v, n, runs)
		}
	}
}

func TestSameSeedSameOpening(t *testing.T) {
	a := New(NewRandomSource(12345))
	b := New(NewRandomSource(12345))
	if a.Grid() != b.Grid() {
		t.Errorf("same seed should produce same opening:\n%v\nvs\n%v", a.Grid(), b.Grid())
	}
}

func TestLoadIsTrusted(t *testing.T) {
	odd := Grid{{3, 0, 0, 0}, {0, 6, 0, 0}}

	e := Load(odd, 40, noRandom{t})
	if e.Grid() != odd {
		t.Errorf("Load changed the grid: %v", e.Grid())
	}
	if e.Score() != 40 {
		t.Errorf("Load score = %d, want 40", e.Score())
	}

	e = LoadGrid(exampleGrid, noRandom{t})
	if e.Score() != 0 {
		t.Errorf("LoadGrid score = %d, want 0", e.Score())
	}
	if e.Cell(3, 2) != 2 || e.Cell(2, 3) != 4 {
		t.Errorf("Cell lookup wrong: (3,2)=%d (2,3)=%d", e.Cell(3, 2), e.Cell(2, 3))
	}
}

func TestShiftMergesScoresAndSpawns(t *testing.T) {
	src := &seqSource{t: t, picks: []int{0, 0}}
	e := LoadGrid(exampleGrid, src)

	moved, err := e.Shift(DirLeft)
	if err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if !moved {
		t.Fatal("Shift left should move")
	}

	want := Grid{
		{4, 2, 2, 0}, // new tile in the first empty cell
		{4, 2, 0, 0},
		{2, 4, 2, 0},
		{8, 2, 0, 0},
	}
	if diff := cmp.Diff(want, e.Grid()); diff != "" {
		t.Errorf("grid after shift (-want +got):\n%s", diff)
	}
	if e.Score() != 16 {
		t.Errorf("score = %d, want 16", e.Score())
	}
}

func TestShiftNoOp(t *testing.T) {
	g := Grid{
		{4, 2, 0, 0},
		{8, 0, 0, 0},
	}
	e := Load(g, 12, noRandom{t})

	moved, err := e.Shift(DirLeft)
	if err != nil || moved {
		t.Fatalf("Shift into the wall = (%v, %v), want (false, nil)", moved, err)
	}
	if e.Grid() != g || e.Score() != 12 {
		t.Errorf("no-op shift changed state: %v score %d", e.Grid(), e.Score())
	}
}

func TestSpawnOnFullGrid(t *testing.T) {
	full := Grid{
		{2, 4, 2, 4},
		{4, 2, 4, 2},
		{2, 4, 2, 4},
		{4, 2, 4, 2},
	}
	e := LoadGrid(full, noRandom{t})

	if _, err := e.spawn(); !errors.Is(err, ErrNoEmptyCell) {
		t.Fatalf("spawn on full grid error = %v, want ErrNoEmptyCell", err)
	}
	if e.Grid() != full {
		t.Error("failed spawn must leave the grid untouched")
	}

	for _, dir := range Directions {
		if moved, err := e.Shift(dir); moved || err != nil {
			t.Errorf("Shift %s on a locked board = (%v, %v), want (false, nil)", dir, moved, err)
		}
	}
}

func TestShiftInvariants(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		rng := NewRandomSource(seed)
		e := New(rng)

		for step := 0; step < 400 && CanMove(e.Grid()); step++ {
			before := e.Grid()
			scoreBefore := e.Score()
			dir := Directions[step%len(Directions)]

			moved, err := e.Shift(dir)
			if err != nil {
				t.Fatalf("seed %d step %d: %v", seed, step, err)
			}

			after := e.Grid()
			if e.Score() < scoreBefore {
				t.Fatalf("seed %d step %d: score went down %d -> %d", seed, step, scoreBefore, e.Score())
			}

			if !moved {
				if after != before {
					t.Fatalf("seed %d step %d: no-op shift changed the grid", seed, step)
				}
				continue
			}

			if TileCount(after) > TileCount(before)+1 {
				t.Fatalf("seed %d step %d: tile count %d -> %d", seed, step, TileCount(before), TileCount(after))
			}

			// Merges conserve mass, so the only new mass is the spawned tile.
			slid, _, _ := Slide(before, dir)
			spawned := TileSum(after) - TileSum(slid)
			if spawned != 2 && spawned != 4 {
				t.Fatalf("seed %d step %d: mass grew by %d, want 2 or 4", seed, step, spawned)
			}
			if TileCount(after) != TileCount(slid)+1 {
				t.Fatalf("seed %d step %d: expected exactly one spawned tile", seed, step)
			}

			for y := range Size {
				for x := range Size {
					if v := after[y][x]; v != 0 && !isPowerOfTwo(v) {
						t.Fatalf("seed %d step %d: cell (%d,%d) holds %d", seed, step, x, y, v)
					}
				}
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	e := LoadGrid(exampleGrid, &seqSource{t: t, picks: []int{0, 0}})
	c := e.Clone()

	if _, err := c.Shift(DirUp); err != nil {
		t.Fatalf("Shift error: %v", err)
	}
	if e.Grid() != exampleGrid || e.Score() != 0 {
		t.Error("shifting a clone must not touch the original")
	}
	if c.Score() == 0 {
		t.Error("clone should have scored")
	}
}
