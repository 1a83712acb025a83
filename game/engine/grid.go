package engine

import (
	"errors"
	"fmt"
	"strings"
)

var ErrOutOfBounds = errors.New("cell out of bounds")

// Locator maps a screen point to a grid position. ok is false for points outside the grid.
type Locator interface {
	Locate(p Point) (col, row int, ok bool)
}

// Grid owns the cells of one board. Cells are stored row-major as cells[row][col].
type Grid struct {
	rows    int
	cols    int
	cells   [][]Cell
	locator Locator
}

// NewGrid creates an empty grid of the given dimensions
func NewGrid(cols, rows int) *Grid {
	cells := make([][]Cell, rows)
	for row := range cells {
		cells[row] = make([]Cell, cols)
		for col := range cells[row] {
			cells[row][col] = Cell{Col: col, Row: row, State: Idle}
		}
	}
	return &Grid{rows: rows, cols: cols, cells: cells}
}

// SetLocator injects the geometry used by CellAtPoint
func (g *Grid) SetLocator(l Locator) {
	g.locator = l
}

// Rows returns the number of rows
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether (col, row) lies inside the grid
func (g *Grid) InBounds(col, row int) bool {
	return col >= 0 && col < g.cols && row >= 0 && row < g.rows
}

// CellAt returns the cell at (col, row)
func (g *Grid) CellAt(col, row int) (*Cell, error) {
	if !g.InBounds(col, row) {
		return nil, fmt.Errorf("%w: (%d,%d) not within %dx%d", ErrOutOfBounds, col, row, g.cols, g.rows)
	}
	return &g.cells[row][col], nil
}

// CellAtPoint returns the cell under p, or nil if p is outside the grid
// or no locator has been injected.
func (g *Grid) CellAtPoint(p Point) *Cell {
	if g.locator == nil {
		return nil
	}
	col, row, ok := g.locator.Locate(p)
	if !ok || !g.InBounds(col, row) {
		return nil
	}
	return &g.cells[row][col]
}

// IsAdjacent reports whether a and b are 8-neighbors. A cell is not adjacent to itself.
func IsAdjacent(a, b Position) bool {
	return chebyshev(a, b) == 1
}

// IsAdjacent reports whether the two cells are 8-neighbors
func (g *Grid) IsAdjacent(a, b *Cell) bool {
	return IsAdjacent(Position{a.Col, a.Row}, Position{b.Col, b.Row})
}

// SetState sets the selection state of the cell at pos
func (g *Grid) SetState(pos Position, state SelectionState) {
	if g.InBounds(pos.Col, pos.Row) {
		g.cells[pos.Row][pos.Col].State = state
	}
}

// ResetVisualState sets every cell back to Idle without touching letters
func (g *Grid) ResetVisualState() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col].State = Idle
		}
	}
}

// Assign replaces every letter in row-major order: index i maps to (i%cols, i/cols)
func (g *Grid) Assign(letters []string) error {
	if len(letters) != g.rows*g.cols {
		return fmt.Errorf("expected %d letters for a %dx%d grid, got %d", g.rows*g.cols, g.cols, g.rows, len(letters))
	}
	for i, letter := range letters {
		g.cells[i/g.cols][i%g.cols].Letter = letter
	}
	return nil
}

// Letters returns the assigned letters in row-major order
func (g *Grid) Letters() []string {
	letters := make([]string, 0, g.rows*g.cols)
	for _, row := range g.cells {
		for _, cell := range row {
			letters = append(letters, cell.Letter)
		}
	}
	return letters
}

// Snapshot returns a deep copy of the cells
func (g *Grid) Snapshot() [][]Cell {
	out := make([][]Cell, g.rows)
	for row := range g.cells {
		out[row] = append([]Cell(nil), g.cells[row]...)
	}
	return out
}

// String renders one line per row as "[L:state] " entries
func (g *Grid) String() string {
	var b strings.Builder
	for _, row := range g.cells {
		for _, cell := range row {
			fmt.Fprintf(&b, "[%s:%s] ", DisplayLetter(cell.Letter), cell.State)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// DisplayLetter renders the QU tile the way it is printed on the die
func DisplayLetter(letter string) string {
	if letter == QuFace {
		return "Qu"
	}
	return letter
}

// chebyshev returns the Chebyshev distance between two positions
func chebyshev(a, b Position) int {
	return max(abs(a.Col-b.Col), abs(a.Row-b.Row))
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
