package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wricardo/boggle/game/engine"
)

func TestLayout_LocateCells(t *testing.T) {
	l := NewLayout(4, 4)

	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			gotCol, gotRow, ok := l.Locate(l.CellCenter(col, row))
			require.True(t, ok)
			assert.Equal(t, col, gotCol)
			assert.Equal(t, row, gotRow)
		}
	}

	// top-left corner is inclusive, far edge exclusive
	col, row, ok := l.Locate(engine.Point{X: DefaultInset, Y: DefaultInset})
	assert.True(t, ok)
	assert.Equal(t, 0, col)
	assert.Equal(t, 0, row)

	_, _, ok = l.Locate(engine.Point{X: DefaultInset + 4*DefaultCellSize, Y: DefaultInset})
	assert.False(t, ok)
	_, _, ok = l.Locate(engine.Point{X: 0, Y: 0})
	assert.False(t, ok)
}

func TestLayout_Classify(t *testing.T) {
	l := NewLayout(4, 4)

	tests := []struct {
		name  string
		point engine.Point
		want  engine.ClickEvent
	}{
		{"exit", l.Exit.Center(), engine.ClickEvent{Kind: engine.EventExit}},
		{"reset", l.Reset.Center(), engine.ClickEvent{Kind: engine.EventReset}},
		{"scroll up", l.ScrollUp.Center(), engine.ClickEvent{Kind: engine.EventScrollUp}},
		{"scroll down", l.ScrollDown.Center(), engine.ClickEvent{Kind: engine.EventScrollDown}},
		{"cell", l.CellCenter(2, 3), engine.CellEvent(2, 3)},
		{"outside", engine.Point{X: 1, Y: 1}, engine.ClickEvent{Kind: engine.EventOutside}},
		{"far away", engine.Point{X: 5000, Y: -20}, engine.ClickEvent{Kind: engine.EventOutside}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, l.Classify(tt.point))
		})
	}
}

func TestLayout_ButtonsDoNotOverlapGrid(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {4, 4}, {5, 3}, {10, 10}} {
		l := NewLayout(size[0], size[1])
		grid := l.GridRect()
		for _, r := range []Rect{l.Exit, l.Reset, l.ScrollUp, l.ScrollDown} {
			assert.False(t, grid.Contains(r.Center()), "button %+v overlaps grid for %v", r, size)
		}
	}
}

func TestLayout_AsGridLocator(t *testing.T) {
	l := NewLayout(2, 2)
	g := engine.NewGrid(2, 2)
	require.NoError(t, g.Assign([]string{"A", "B", "C", "D"}))
	g.SetLocator(l)

	cell := g.CellAtPoint(l.CellCenter(1, 1))
	require.NotNil(t, cell)
	assert.Equal(t, "D", cell.Letter)
	assert.Nil(t, g.CellAtPoint(l.Exit.Center()))
}
