package game

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidGrid is returned (wrapped) when a tile grid cannot be built.
var ErrInvalidGrid = errors.New("invalid tile grid")

// CellKind identifies what occupies a grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota // Open floor
	CellWall                  // Solid wall
	cellKindCount             // sentinel
)

func (k CellKind) String() string {
	switch k {
	case CellEmpty:
		return "empty"
	case CellWall:
		return "wall"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

var (
	colorWall  = RGB(0x80, 0x80, 0x80)
	colorEmpty = RGB(0x15, 0x15, 0x15)
)

// CellColor returns the render colour for a cell kind.
func CellColor(k CellKind) Color {
	if k == CellWall {
		return colorWall
	}
	return colorEmpty
}

// defaultCells is the 8x8 sample map, row-major.
var defaultCells = []int{
	1, 1, 1, 1, 1, 1, 1, 1,
	1, 0, 1, 0, 0, 0, 0, 1,
	1, 0, 1, 0, 0, 0, 0, 1,
	1, 0, 1, 0, 0, 0, 0, 1,
	1, 0, 1, 0, 0, 0, 0, 1,
	1, 0, 0, 0, 0, 1, 0, 1,
	1, 0, 0, 0, 0, 0, 0, 1,
	1, 1, 1, 1, 1, 1, 1, 1,
}

// TileGrid is a square grid of cells. It is immutable once built.
type TileGrid struct {
	size  int
	cells []CellKind
}

// NewTileGrid builds a size x size grid from row-major values, 1 for a
// wall and 0 for empty floor.
func NewTileGrid(size int, cells []int) (*TileGrid, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: size %d", ErrInvalidGrid, size)
	}
	if len(cells) != size*size {
		return nil, fmt.Errorf("%w: got %d cells, want %d", ErrInvalidGrid, len(cells), size*size)
	}
	g := &TileGrid{size: size, cells: make([]CellKind, len(cells))}
	for i, v := range cells {
		if v < 0 || v >= int(cellKindCount) {
			return nil, fmt.Errorf("%w: cell (%d,%d) has kind %d", ErrInvalidGrid, i%size, i/size, v)
		}
		g.cells[i] = CellKind(v)
	}
	return g, nil
}

// DefaultGrid returns the 8x8 sample map.
func DefaultGrid() *TileGrid {
	g, err := NewTileGrid(8, defaultCells)
	if err != nil {
		panic(err)
	}
	return g
}

// ParseTileGrid reads a grid from text, one row per line. '#' or '1' is a
// wall, '.' or '0' is empty; spaces and blank lines are ignored.
//
//	########
//	#.#....#
func ParseTileGrid(text string) (*TileGrid, error) {
	var rows [][]int
	for n, line := range strings.Split(text, "\n") {
		var row []int
		for _, r := range line {
			switch r {
			case '#', '1':
				row = append(row, int(CellWall))
			case '.', '0':
				row = append(row, int(CellEmpty))
			case ' ', '\t', '\r':
			default:
				return nil, fmt.Errorf("%w: line %d: unexpected %q", ErrInvalidGrid, n+1, r)
			}
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	size := len(rows)
	cells := make([]int, 0, size*size)
	for i, row := range rows {
		if len(row) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, i, len(row), size)
		}
		cells = append(cells, row...)
	}
	return NewTileGrid(size, cells)
}

// Size returns the number of cells along each side.
func (g *TileGrid) Size() int { return g.size }

// At returns the kind of cell (col,row). ok is false outside the grid.
func (g *TileGrid) At(col, row int) (kind CellKind, ok bool) {
	if col < 0 || row < 0 || col >= g.size || row >= g.size {
		return CellEmpty, false
	}
	return g.cells[row*g.size+col], true
}

// IsWall reports whether (col,row) is a wall. Out of bounds is not.
func (g *TileGrid) IsWall(col, row int) bool {
	k, ok := g.At(col, row)
	return ok && k == CellWall
}

// Count returns how many cells have the given kind.
func (g *TileGrid) Count(kind CellKind) int {
	n := 0
	for _, k := range g.cells {
		if k == kind {
			n++
		}
	}
	return n
}

// String renders the grid in the ParseTileGrid format.
func (g *TileGrid) String() string {
	var sb strings.Builder
	for row := 0; row < g.size; row++ {
		for col := 0; col < g.size; col++ {
			if g.IsWall(col, row) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
