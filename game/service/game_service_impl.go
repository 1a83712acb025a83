package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/wricardo/boggle/game/engine"
)

// gameServiceImpl implements the GameService interface. It is the single owner
// of one engine and processes each event to completion before the next.
type gameServiceImpl struct {
	engine     engine.Engine
	classifier Classifier
	surface    Surface
	log        zerolog.Logger
}

// NewGameService creates a new game service instance. A classifier that also
// implements engine.Locator is injected into the grid for point lookups.
func NewGameService(eng engine.Engine, classifier Classifier, surface Surface, logger zerolog.Logger) GameService {
	if surface == nil {
		surface = NopSurface{}
	}
	if loc, ok := classifier.(engine.Locator); ok {
		eng.Grid().SetLocator(loc)
	}
	s := &gameServiceImpl{
		engine:     eng,
		classifier: classifier,
		surface:    surface,
		log:        logger.With().Str("game", eng.ID()).Logger(),
	}
	s.Refresh()
	return s
}

// DoOneClick classifies a raw click and applies it.
// The returned result's Continue is false once the player asked to exit.
func (s *gameServiceImpl) DoOneClick(ctx context.Context, point engine.Point) (*ClickResult, error) {
	if s.classifier == nil {
		return nil, fmt.Errorf("no click classifier configured")
	}
	ev := s.classifier.Classify(point)
	if ev.Kind == engine.EventCell {
		if cell := s.engine.Grid().CellAtPoint(point); cell != nil {
			s.log.Debug().Float64("x", point.X).Float64("y", point.Y).Str("letter", cell.Letter).Msg("click on cell")
		}
	}
	return s.HandleEvent(ctx, ev)
}

// HandleEvent applies an already classified event
func (s *gameServiceImpl) HandleEvent(ctx context.Context, ev engine.ClickEvent) (*ClickResult, error) {
	res, err := s.engine.Handle(ev)
	if err != nil {
		s.log.Error().Err(err).Str("event", ev.Kind.String()).Int("col", ev.Col).Int("row", ev.Row).Msg("event rejected")
		return nil, fmt.Errorf("handle %s event: %w", ev.Kind, err)
	}

	logEvt := s.log.Debug()
	if res.Accepted {
		logEvt = s.log.Info()
	}
	logEvt.Str("event", ev.Kind.String()).
		Str("action", string(res.Action)).
		Str("word", res.Word).
		Int("path_len", len(s.engine.Path())).
		Msg("event handled")

	if res.Continue {
		s.Refresh()
	}

	return &ClickResult{
		Continue:  res.Continue,
		Event:     ev.Kind.String(),
		Result:    res,
		GameState: s.engine.Snapshot(),
		Events:    s.eventsFor(ev, res),
	}, nil
}

// Run pulls clicks from input until the player exits, input is exhausted,
// or ctx is cancelled. Exit and end of input return nil.
func (s *gameServiceImpl) Run(ctx context.Context, input InputSource) error {
	s.log.Info().Msg("game started")
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		point, err := input.NextClick(ctx)
		if errors.Is(err, io.EOF) {
			s.log.Info().Msg("input closed")
			return nil
		}
		if err != nil {
			return fmt.Errorf("read click: %w", err)
		}

		result, err := s.DoOneClick(ctx, point)
		if err != nil {
			return err
		}
		if !result.Continue {
			s.log.Info().Int("found", s.engine.Ledger().Size()).Msg("game stopped")
			return nil
		}
	}
}

// GetGameState returns a snapshot of the current game
func (s *gameServiceImpl) GetGameState(ctx context.Context) *engine.GameState {
	return s.engine.Snapshot()
}

// Refresh pushes the full game state to the surface
func (s *gameServiceImpl) Refresh() {
	grid := s.engine.Grid()
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			cell, err := grid.CellAt(col, row)
			if err != nil {
				continue
			}
			s.surface.SetCellVisual(col, row, cell.State)
		}
	}
	s.surface.SetLowerText(s.engine.Word())
	s.surface.SetUpperText(s.engine.Message())
	s.surface.SetTextAreaLines(s.engine.Ledger().VisibleWindow())

	if f, ok := s.surface.(Flusher); ok {
		if err := f.Flush(); err != nil {
			s.log.Warn().Err(err).Msg("surface flush failed")
		}
	}
}

// eventsFor describes what a single transition did
func (s *gameServiceImpl) eventsFor(ev engine.ClickEvent, res engine.Result) []GameEvent {
	now := time.Now()
	msg := s.engine.Message()

	switch res.Action {
	case engine.ActionStart, engine.ActionExtend:
		pos := engine.Position{Col: ev.Col, Row: ev.Row}
		return []GameEvent{{Type: string(res.Action), Message: s.engine.Word(), Timestamp: now, Position: &pos}}

	case engine.ActionCommit:
		eventType := "not_a_word"
		if res.Accepted {
			eventType = "word_found"
		} else if res.Valid {
			eventType = "already_found"
		}
		return []GameEvent{{Type: eventType, Message: msg, Word: res.Word, Timestamp: now}}

	case engine.ActionNone:
		return nil

	default:
		return []GameEvent{{Type: string(res.Action), Message: msg, Timestamp: now}}
	}
}
