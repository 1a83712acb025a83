package service

import (
	"context"

	"github.com/wricardo/boggle/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Click processing
	DoOneClick(ctx context.Context, point engine.Point) (*ClickResult, error)
	HandleEvent(ctx context.Context, ev engine.ClickEvent) (*ClickResult, error)
	Run(ctx context.Context, input InputSource) error

	// Game State
	GetGameState(ctx context.Context) *engine.GameState
	Refresh()
}

// InputSource delivers raw clicks one at a time. NextClick blocks until a click
// is available; io.EOF means no more input will arrive.
type InputSource interface {
	NextClick(ctx context.Context) (engine.Point, error)
}

// Classifier maps a raw click to an event
type Classifier interface {
	Classify(p engine.Point) engine.ClickEvent
}

// Surface is the presentation side of the game: cell colors, the word in
// progress (lower text), the status line (upper text) and the found-word panel.
type Surface interface {
	SetCellVisual(col, row int, state engine.SelectionState)
	SetLowerText(s string)
	SetUpperText(s string)
	SetTextAreaLines(lines []string)
}

// Flusher is implemented by surfaces that buffer updates and draw them in one go.
// Refresh calls Flush after every full update.
type Flusher interface {
	Flush() error
}

// NopSurface discards all presentation updates
type NopSurface struct{}

func (NopSurface) SetCellVisual(int, int, engine.SelectionState) {}
func (NopSurface) SetLowerText(string)                          {}
func (NopSurface) SetUpperText(string)                          {}
func (NopSurface) SetTextAreaLines([]string)                    {}
