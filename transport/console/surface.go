package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/wricardo/boggle/game/engine"
)

// Surface implements service.Surface by buffering updates and printing the
// whole screen on Flush.
type Surface struct {
	w      io.Writer
	grid   *engine.Grid
	states map[engine.Position]engine.SelectionState
	lower  string
	upper  string
	lines  []string
}

// NewSurface creates a surface that reads letters from grid and writes to w
func NewSurface(w io.Writer, grid *engine.Grid) *Surface {
	return &Surface{
		w:      w,
		grid:   grid,
		states: make(map[engine.Position]engine.SelectionState),
	}
}

func (s *Surface) SetCellVisual(col, row int, state engine.SelectionState) {
	s.states[engine.Position{Col: col, Row: row}] = state
}

func (s *Surface) SetLowerText(text string) { s.lower = text }

func (s *Surface) SetUpperText(text string) { s.upper = text }

func (s *Surface) SetTextAreaLines(lines []string) {
	s.lines = append(s.lines[:0], lines...)
}

// Flush writes the current screen
func (s *Surface) Flush() error {
	bw := bufio.NewWriter(s.w)
	s.render(bw)
	return bw.Flush()
}

// String returns the screen Flush would write
func (s *Surface) String() string {
	var b strings.Builder
	s.render(&b)
	return b.String()
}

func (s *Surface) render(w io.Writer) {
	if s.upper != "" {
		fmt.Fprintf(w, "> %s\n", s.upper)
	}

	fmt.Fprint(w, "   ")
	for col := 0; col < s.grid.Cols(); col++ {
		fmt.Fprintf(w, " %-3d", col)
	}
	fmt.Fprintln(w)

	for row := 0; row < s.grid.Rows(); row++ {
		fmt.Fprintf(w, "%2d ", row)
		for col := 0; col < s.grid.Cols(); col++ {
			cell, err := s.grid.CellAt(col, row)
			if err != nil {
				continue
			}
			fmt.Fprint(w, tile(engine.DisplayLetter(cell.Letter), s.states[engine.Position{Col: col, Row: row}]))
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Word: %s\n", s.lower)
	if len(s.lines) > 0 {
		fmt.Fprintf(w, "Found: %s\n", strings.Join(s.lines, " "))
	}
}

// tile pads a letter to four columns and marks its selection state:
// (A) is the last letter of the path, [A] an earlier one.
func tile(letter string, state engine.SelectionState) string {
	switch state {
	case engine.Active:
		letter = "(" + letter + ")"
	case engine.Committed:
		letter = "[" + letter + "]"
	default:
		letter = " " + letter
	}
	return fmt.Sprintf("%-4s", letter)
}
