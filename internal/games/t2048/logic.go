package t2048

import (
	"errors"
	"fmt"
	"strings"
)

// Direction represents a move direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// ErrUnknownDirection is returned by ParseDirection.
var ErrUnknownDirection = errors.New("unknown direction")

// Directions lists every direction in input priority order.
var Directions = [...]Direction{DirUp, DirDown, DirLeft, DirRight}

// String returns the lower-case direction name.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection converts a name such as "left" or "L" into a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up", "u":
		return DirUp, nil
	case "down", "d":
		return DirDown, nil
	case "left", "l":
		return DirLeft, nil
	case "right", "r":
		return DirRight, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Size is the board dimension.
const Size = 4

// Row is one line of the board, ordered toward its low index.
type Row [Size]int

// Grid is the 4x4 board, indexed grid[y][x]. Zero marks an empty cell.
type Grid [Size]Row

// compress closes the gaps in a row, keeping tiles in their relative order.
func compress(row Row) Row {
	var out Row
	n := 0
	for _, v := range row {
		if v != 0 {
			out[n] = v
			n++
		}
	}
	return out
}

// mergeRow slides and merges a row toward index 0.
// After every merge the row is compressed again and rescanned from the
// start, so a freshly merged tile can pair with its new neighbour.
// Returns the resulting row and the sum of all merged tile values.
func mergeRow(row Row) (Row, int) {
	out := row
	score := 0

	for {
		out = compress(out)
		merged := false
		for i := 0; i < Size-1; i++ {
			if out[i] != 0 && out[i] == out[i+1] {
				out[i] *= 2
				out[i+1] = 0
				score += out[i]
				merged = true
				break
			}
		}
		if !merged {
			return out, score
		}
	}
}

// reverse returns the row in reverse order.
func reverse(row Row) Row {
	var out Row
	for i := range Size {
		out[i] = row[Size-1-i]
	}
	return out
}

// transpose returns the matrix transpose.
func transpose(g Grid) Grid {
	var out Grid
	for i := range Size {
		for j := range Size {
			out[j][i] = g[i][j]
		}
	}
	return out
}

// orientation describes how a direction maps onto the leftward row merge.
type orientation struct {
	transpose bool // work on columns instead of rows
	reverse   bool // merge toward the high index
}

var orientations = map[Direction]orientation{
	DirLeft:  {},
	DirRight: {reverse: true},
	DirUp:    {transpose: true},
	DirDown:  {transpose: true, reverse: true},
}

// Slide performs a move in the given direction without spawning.
// Returns the new grid, score gained, and whether the grid changed.
func Slide(g Grid, dir Direction) (Grid, int, bool) {
	o, ok := orientations[dir]
	if !ok {
		return g, 0, false
	}

	work := g
	if o.transpose {
		work = transpose(work)
	}

	total := 0
	for y := range Size {
		row := work[y]
		if o.reverse {
			row = reverse(row)
		}
		row, gained := mergeRow(row)
		if o.reverse {
			row = reverse(row)
		}
		work[y] = row
		total += gained
	}

	if o.transpose {
		work = transpose(work)
	}

	return work, total, work != g
}

// Cell is a board coordinate.
type Cell struct {
	X, Y int
}

// EmptyCells returns coordinates of all empty cells in row-major order.
func EmptyCells(g Grid) []Cell {
	var cells []Cell
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				cells = append(cells, Cell{X: x, Y: y})
			}
		}
	}
	return cells
}

// HasEmptyCell returns true if there's at least one empty cell.
func HasEmptyCell(g Grid) bool {
	for y := range Size {
		for x := range Size {
			if g[y][x] == 0 {
				return true
			}
		}
	}
	return false
}

// HasPossibleMerge returns true if any adjacent tiles can merge.
func HasPossibleMerge(g Grid) bool {
	for y := range Size {
		for x := range Size {
			val := g[y][x]
			if val == 0 {
				continue
			}
			if x < Size-1 && g[y][x+1] == val {
				return true
			}
			if y < Size-1 && g[y+1][x] == val {
				return true
			}
		}
	}
	return false
}

// CanMove returns true if any move is possible.
func CanMove(g Grid) bool {
	return HasEmptyCell(g) || HasPossibleMerge(g)
}

// MaxTile returns the maximum tile value on the board.
func MaxTile(g Grid) int {
	maxVal := 0
	for y := range Size {
		for x := range Size {
			maxVal = max(maxVal, g[y][x])
		}
	}
	return maxVal
}

// TileCount returns the number of occupied cells.
func TileCount(g Grid) int {
	n := 0
	for y := range Size {
		for x := range Size {
			if g[y][x] != 0 {
				n++
			}
		}
	}
	return n
}

// TileSum returns the total of all tile values.
func TileSum(g Grid) int {
	sum := 0
	for y := range Size {
		for x := range Size {
			sum += g[y][x]
		}
	}
	return sum
}

// String renders the grid as rows of right-aligned numbers, '.' for empty.
func (g Grid) String() string {
	var sb strings.Builder
	for y, row := range g {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x, v := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			if v == 0 {
				fmt.Fprintf(&sb, "%5s", ".")
			} else {
				fmt.Fprintf(&sb, "%5d", v)
			}
		}
	}
	return sb.String()
}
