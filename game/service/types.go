package service

import (
	"time"

	"github.com/wricardo/boggle/game/engine"
)

// ClickResult contains the result of processing one click
type ClickResult struct {
	Continue  bool              `json:"continue"`
	Event     string            `json:"event"`
	Result    engine.Result     `json:"result"`
	GameState *engine.GameState `json:"game_state"`
	Events    []GameEvent       `json:"events,omitempty"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "start", "extend", "word_found", "already_found", "not_a_word", "abort", "reset", "exit"
	Message   string           `json:"message"`
	Word      string           `json:"word,omitempty"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}
