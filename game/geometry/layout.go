// Package geometry maps screen coordinates onto the board.
//
// Layout is the one implementation of grid geometry shared by every
// frontend: it knows the grid bounds, converts a point to a (col, row),
// and hit-tests the exit, reset and scroll buttons. It is injected into
// the engine grid as its Locator and into the game service as its
// click classifier.
package geometry

import (
	"math"

	"github.com/wricardo/boggle/game/engine"
)

const (
	DefaultCellSize = 50.0
	DefaultInset    = 50.0
	buttonWidth     = 80.0
	buttonHeight    = 30.0
	buttonGap       = 20.0
	textAreaGap     = 30.0
	textAreaWidth   = 120.0
)

// Rect is an axis-aligned rectangle. Min edges are inclusive, max edges exclusive.
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

// Contains reports whether p lies inside r
func (r Rect) Contains(p engine.Point) bool {
	return p.X >= r.MinX && p.X < r.MaxX && p.Y >= r.MinY && p.Y < r.MaxY
}

// Center returns the midpoint of r
func (r Rect) Center() engine.Point {
	return engine.Point{X: (r.MinX + r.MaxX) / 2, Y: (r.MinY + r.MaxY) / 2}
}

// Layout describes where the grid and the buttons sit on screen
type Layout struct {
	Cols     int
	Rows     int
	XInset   float64
	YInset   float64
	CellSize float64

	Exit       Rect
	Reset      Rect
	ScrollUp   Rect
	ScrollDown Rect
}

// NewLayout returns the default layout for a cols x rows grid: the grid is inset
// from the top-left corner, exit and reset sit below it, and the scroll buttons
// sit to the right beside the found-word panel.
func NewLayout(cols, rows int) *Layout {
	l := &Layout{
		Cols:     cols,
		Rows:     rows,
		XInset:   DefaultInset,
		YInset:   DefaultInset,
		CellSize: DefaultCellSize,
	}

	bottom := l.YInset + float64(rows)*l.CellSize + buttonGap
	l.Exit = Rect{l.XInset, bottom, l.XInset + buttonWidth, bottom + buttonHeight}
	l.Reset = Rect{l.Exit.MaxX + buttonGap, bottom, l.Exit.MaxX + buttonGap + buttonWidth, bottom + buttonHeight}

	panelX := l.XInset + float64(cols)*l.CellSize + textAreaGap
	l.ScrollUp = Rect{panelX, l.YInset, panelX + textAreaWidth, l.YInset + buttonHeight}
	panelBottom := l.YInset + float64(rows)*l.CellSize
	l.ScrollDown = Rect{panelX, panelBottom - buttonHeight, panelX + textAreaWidth, panelBottom}
	return l
}

// GridRect returns the bounds of the letter grid
func (l *Layout) GridRect() Rect {
	return Rect{
		MinX: l.XInset,
		MinY: l.YInset,
		MaxX: l.XInset + float64(l.Cols)*l.CellSize,
		MaxY: l.YInset + float64(l.Rows)*l.CellSize,
	}
}

// InGrid reports whether p falls on a grid cell
func (l *Layout) InGrid(p engine.Point) bool {
	return l.GridRect().Contains(p)
}

// InExit reports whether p falls on the exit button
func (l *Layout) InExit(p engine.Point) bool { return l.Exit.Contains(p) }

// InReset reports whether p falls on the reset button
func (l *Layout) InReset(p engine.Point) bool { return l.Reset.Contains(p) }

// Locate converts p into grid coordinates. It implements engine.Locator.
func (l *Layout) Locate(p engine.Point) (col, row int, ok bool) {
	if !l.InGrid(p) {
		return 0, 0, false
	}
	col = int(math.Floor((p.X - l.XInset) / l.CellSize))
	row = int(math.Floor((p.Y - l.YInset) / l.CellSize))
	// guard against float rounding on the far edge
	col = min(col, l.Cols-1)
	row = min(row, l.Rows-1)
	return col, row, true
}

// Classify turns a raw click into an event
func (l *Layout) Classify(p engine.Point) engine.ClickEvent {
	switch {
	case l.InExit(p):
		return engine.ClickEvent{Kind: engine.EventExit}
	case l.InReset(p):
		return engine.ClickEvent{Kind: engine.EventReset}
	case l.ScrollUp.Contains(p):
		return engine.ClickEvent{Kind: engine.EventScrollUp}
	case l.ScrollDown.Contains(p):
		return engine.ClickEvent{Kind: engine.EventScrollDown}
	}
	if col, row, ok := l.Locate(p); ok {
		return engine.CellEvent(col, row)
	}
	return engine.ClickEvent{Kind: engine.EventOutside}
}

// CellCenter returns the screen point at the middle of (col, row)
func (l *Layout) CellCenter(col, row int) engine.Point {
	return engine.Point{
		X: l.XInset + (float64(col)+0.5)*l.CellSize,
		Y: l.YInset + (float64(row)+0.5)*l.CellSize,
	}
}
