package engine

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/uuid"
)

// Lexicon answers membership queries for uppercase words
type Lexicon interface {
	Contains(word string) bool
}

// Engine provides the main interface for game operations
type Engine interface {
	// Event handling
	Handle(ev ClickEvent) (Result, error)
	Reset() error

	// Selection state
	Phase() Phase
	Path() []Position
	Word() string
	Message() string

	// Board and found words
	Grid() *Grid
	Ledger() *Ledger
	Config() *DiceConfig
	ID() string
	Snapshot() *GameState
}

// GameEngine implements Engine. It owns the grid, the in-progress path and the ledger,
// and mutates them only through Handle and Reset.
type GameEngine struct {
	id      string
	config  *DiceConfig
	lexicon Lexicon
	rng     Rand
	grid    *Grid
	ledger  *Ledger
	path    []Position
	message string
	resets  int
}

// NewEngine creates a new game engine and shakes the first board.
// Optional fields left empty in config are filled with defaults.
func NewEngine(config *DiceConfig, lexicon Lexicon, rng Rand) (*GameEngine, error) {
	if config != nil {
		ApplyDefaults(config)
	}
	if err := ValidateDiceConfig(config); err != nil {
		return nil, err
	}
	if lexicon == nil {
		return nil, fmt.Errorf("engine: lexicon is required")
	}
	if rng == nil {
		return nil, fmt.Errorf("engine: random source is required")
	}

	e := &GameEngine{
		id:      uuid.NewString(),
		config:  config,
		lexicon: lexicon,
		rng:     rng,
		grid:    NewGrid(config.Cols, config.Rows),
		ledger:  NewLedger(config.MaxVisible),
		message: config.Messages.Welcome,
	}
	if err := e.shake(); err != nil {
		return nil, err
	}
	return e, nil
}

// Handle applies one classified click to the state machine.
// Only a cell event outside the grid returns an error (ErrOutOfBounds).
func (e *GameEngine) Handle(ev ClickEvent) (Result, error) {
	switch ev.Kind {
	case EventExit:
		return Result{Action: ActionExit, Continue: false}, nil

	case EventReset:
		if err := e.Reset(); err != nil {
			return Result{Action: ActionReset}, err
		}
		return Result{Action: ActionReset, Continue: true}, nil

	case EventScrollUp:
		e.ledger.ScrollUp()
		return Result{Action: ActionScrollUp, Continue: true}, nil

	case EventScrollDown:
		e.ledger.ScrollDown()
		return Result{Action: ActionScrollDown, Continue: true}, nil

	case EventCell:
		return e.handleCell(Position{Col: ev.Col, Row: ev.Row})

	default:
		return Result{Action: ActionNone, Continue: true}, nil
	}
}

func (e *GameEngine) handleCell(pos Position) (Result, error) {
	if _, err := e.grid.CellAt(pos.Col, pos.Row); err != nil {
		return Result{Action: ActionNone}, err
	}

	if len(e.path) == 0 {
		e.path = []Position{pos}
		e.grid.SetState(pos, Active)
		e.message = ""
		return Result{Action: ActionStart, Continue: true}, nil
	}

	last := e.path[len(e.path)-1]
	switch {
	case pos == last:
		return e.commit(), nil

	case IsAdjacent(last, pos) && !slices.Contains(e.path, pos):
		e.grid.SetState(last, Committed)
		e.grid.SetState(pos, Active)
		e.path = append(e.path, pos)
		return Result{Action: ActionExtend, Continue: true}, nil

	default:
		e.clearPath()
		e.message = e.config.Messages.Aborted
		return Result{Action: ActionAbort, Continue: true}, nil
	}
}

// commit checks the current word and records it if it is new and valid.
// The path and visuals are cleared either way.
func (e *GameEngine) commit() Result {
	word := e.Word()
	valid := e.lexicon.Contains(word)
	accepted := valid && e.ledger.Add(word)

	switch {
	case accepted:
		e.message = fmt.Sprintf(e.config.Messages.WordFound, word)
	case valid:
		e.message = fmt.Sprintf(e.config.Messages.AlreadyFound, word)
	default:
		e.message = fmt.Sprintf(e.config.Messages.NotAWord, word)
	}

	e.clearPath()
	return Result{Action: ActionCommit, Continue: true, Word: word, Valid: valid, Accepted: accepted}
}

// Reset clears the path and the ledger and shakes a fresh board
func (e *GameEngine) Reset() error {
	e.clearPath()
	e.ledger.Clear()
	e.message = ""
	e.resets++
	return e.shake()
}

func (e *GameEngine) shake() error {
	letters, err := Shake(e.config.Dice, e.rng)
	if err != nil {
		return err
	}
	if err := e.grid.Assign(letters); err != nil {
		return err
	}
	e.grid.ResetVisualState()
	return nil
}

func (e *GameEngine) clearPath() {
	e.path = nil
	e.grid.ResetVisualState()
}

// Phase returns Empty when no path is being built
func (e *GameEngine) Phase() Phase {
	if len(e.path) == 0 {
		return Empty
	}
	return Building
}

// Path returns a copy of the in-progress path
func (e *GameEngine) Path() []Position {
	return slices.Clone(e.path)
}

// Word joins the letters along the path, uppercased
func (e *GameEngine) Word() string {
	var b strings.Builder
	for _, pos := range e.path {
		b.WriteString(e.grid.cells[pos.Row][pos.Col].Letter)
	}
	return strings.ToUpper(b.String())
}

// Message returns the current status line
func (e *GameEngine) Message() string { return e.message }

// Grid returns the board
func (e *GameEngine) Grid() *Grid { return e.grid }

// Ledger returns the found-word ledger
func (e *GameEngine) Ledger() *Ledger { return e.ledger }

// Config returns the dice configuration
func (e *GameEngine) Config() *DiceConfig { return e.config }

// ID returns the unique identifier of this game instance
func (e *GameEngine) ID() string { return e.id }

// Snapshot returns a copy of the full game state
func (e *GameEngine) Snapshot() *GameState {
	path := e.Path()
	if path == nil {
		path = []Position{}
	}
	return &GameState{
		ID:          e.id,
		ConfigName:  e.config.Name,
		Rows:        e.grid.Rows(),
		Cols:        e.grid.Cols(),
		Grid:        e.grid.Snapshot(),
		Phase:       e.Phase(),
		Path:        path,
		Word:        e.Word(),
		FoundWords:  e.ledger.Words(),
		Visible:     e.ledger.VisibleWindow(),
		ScrollOff:   e.ledger.ScrollOffset(),
		MaxVisible:  e.ledger.MaxVisible(),
		Message:     e.message,
		TotalResets: e.resets,
	}
}
