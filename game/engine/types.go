package engine

// SelectionState is the presentation state of a single grid cell
type SelectionState string

const (
	Idle      SelectionState = "idle"
	Active    SelectionState = "active"
	Committed SelectionState = "committed"

	// Validation constants
	FacesPerDie       = 6
	MinGridSize       = 1
	MaxGridSize       = 10
	DefaultRows       = 4
	DefaultCols       = 4
	DefaultMaxVisible = 15
	QuFace            = "QU"
)

// Phase is the state of the selection state machine
type Phase string

const (
	Empty    Phase = "empty"
	Building Phase = "building"
)

// Die is an ordered set of faces
type Die []string

// Cell represents a single grid cell
type Cell struct {
	Col    int            `json:"col"`
	Row    int            `json:"row"`
	Letter string         `json:"letter"`
	State  SelectionState `json:"state"`
}

// Position identifies a cell by column and row
type Position struct {
	Col int `json:"col"`
	Row int `json:"row"`
}

// Point is a screen coordinate handed in by the input collaborator
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// EventKind classifies an incoming click
type EventKind int

const (
	EventOutside EventKind = iota
	EventExit
	EventReset
	EventCell
	EventScrollUp
	EventScrollDown
)

func (k EventKind) String() string {
	switch k {
	case EventExit:
		return "exit"
	case EventReset:
		return "reset"
	case EventCell:
		return "cell"
	case EventScrollUp:
		return "scroll_up"
	case EventScrollDown:
		return "scroll_down"
	default:
		return "outside"
	}
}

// ClickEvent is a classified click. Col and Row are only meaningful for EventCell.
type ClickEvent struct {
	Kind EventKind
	Col  int
	Row  int
}

// CellEvent builds an EventCell for the given coordinates
func CellEvent(col, row int) ClickEvent {
	return ClickEvent{Kind: EventCell, Col: col, Row: row}
}

// Action names the transition taken by the state machine for one event
type Action string

const (
	ActionNone       Action = "none"
	ActionExit       Action = "exit"
	ActionReset      Action = "reset"
	ActionStart      Action = "start"
	ActionExtend     Action = "extend"
	ActionCommit     Action = "commit"
	ActionAbort      Action = "abort"
	ActionScrollUp   Action = "scroll_up"
	ActionScrollDown Action = "scroll_down"
)

// Result describes the outcome of one handled event
type Result struct {
	Action   Action `json:"action"`
	Continue bool   `json:"continue"`
	Word     string `json:"word,omitempty"`     // set on commit
	Valid    bool   `json:"valid,omitempty"`    // word is in the lexicon
	Accepted bool   `json:"accepted,omitempty"` // word was newly added to the ledger
}

// DiceConfig represents a dice set and board layout loaded from JSON
type DiceConfig struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Rows        int    `json:"rows"`
	Cols        int    `json:"cols"`
	MaxVisible  int    `json:"max_visible"`
	Dice        []Die  `json:"dice"`
	Messages    struct {
		Welcome      string `json:"welcome"`
		WordFound    string `json:"word_found"`
		AlreadyFound string `json:"already_found"`
		NotAWord     string `json:"not_a_word"`
		Aborted      string `json:"aborted"`
	} `json:"messages"`
}

// GameState is a serializable snapshot of one game instance
type GameState struct {
	ID          string     `json:"id"`
	ConfigName  string     `json:"config_name"`
	Rows        int        `json:"rows"`
	Cols        int        `json:"cols"`
	Grid        [][]Cell   `json:"grid"`
	Phase       Phase      `json:"phase"`
	Path        []Position `json:"path"`
	Word        string     `json:"word"`
	FoundWords  []string   `json:"found_words"`
	Visible     []string   `json:"visible_words"`
	ScrollOff   int        `json:"scroll_offset"`
	MaxVisible  int        `json:"max_visible"`
	Message     string     `json:"message"`
	TotalResets int        `json:"total_resets"`
}
