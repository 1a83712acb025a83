package engine

import (
	"errors"
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// wordSet is a minimal Lexicon for tests
type wordSet map[string]bool

func (w wordSet) Contains(word string) bool { return w[strings.ToUpper(word)] }

func newTestRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// createTestEngine builds a 4x4 engine whose board is fixed to
//
//	C A X X
//	T X X X
//	X X X X
//	X X X QU
func createTestEngine(t *testing.T, words ...string) *GameEngine {
	t.Helper()
	lex := wordSet{}
	for _, w := range words {
		lex[w] = true
	}
	e, err := NewEngine(DefaultDiceConfig(), lex, newTestRand(1))
	require.NoError(t, err)

	letters := make([]string, 16)
	for i := range letters {
		letters[i] = "X"
	}
	letters[0], letters[1], letters[4], letters[15] = "C", "A", "T", "QU"
	require.NoError(t, e.grid.Assign(letters))
	return e
}

func click(t *testing.T, e *GameEngine, col, row int) Result {
	t.Helper()
	res, err := e.Handle(CellEvent(col, row))
	require.NoError(t, err)
	return res
}

func assertAllIdle(t *testing.T, g *Grid) {
	t.Helper()
	for _, row := range g.cells {
		for _, cell := range row {
			assert.Equal(t, Idle, cell.State, "cell (%d,%d)", cell.Col, cell.Row)
		}
	}
}

func TestNewEngine(t *testing.T) {
	e, err := NewEngine(DefaultDiceConfig(), wordSet{}, newTestRand(7))
	require.NoError(t, err)

	assert.Equal(t, Empty, e.Phase())
	assert.Empty(t, e.Path())
	assert.Equal(t, 0, e.Ledger().Size())
	assert.NotEmpty(t, e.ID())
	assert.Equal(t, DefaultDiceConfig().Messages.Welcome, e.Message())
	for _, letter := range e.Grid().Letters() {
		assert.NotEmpty(t, letter)
	}
	assertAllIdle(t, e.Grid())
}

func TestNewEngine_InvalidArguments(t *testing.T) {
	config := DefaultDiceConfig()
	config.Name = ""
	_, err := NewEngine(config, wordSet{}, newTestRand(1))
	assert.Error(t, err)

	_, err = NewEngine(DefaultDiceConfig(), nil, newTestRand(1))
	assert.Error(t, err)

	_, err = NewEngine(DefaultDiceConfig(), wordSet{}, nil)
	assert.Error(t, err)
}

func TestEngine_CommitValidWord(t *testing.T) {
	e := createTestEngine(t, "CAT")

	assert.Equal(t, ActionStart, click(t, e, 0, 0).Action)
	assert.Equal(t, Building, e.Phase())
	assert.Equal(t, "C", e.Word())

	assert.Equal(t, ActionExtend, click(t, e, 1, 0).Action)
	assert.Equal(t, ActionExtend, click(t, e, 0, 1).Action)
	assert.Equal(t, "CAT", e.Word())

	res := click(t, e, 0, 1)
	assert.Equal(t, ActionCommit, res.Action)
	assert.Equal(t, "CAT", res.Word)
	assert.True(t, res.Valid)
	assert.True(t, res.Accepted)
	assert.True(t, res.Continue)

	assert.Equal(t, []string{"CAT"}, e.Ledger().Words())
	assert.Equal(t, Empty, e.Phase())
	assert.Empty(t, e.Path())
	assert.Equal(t, "Found CAT!", e.Message())
	assertAllIdle(t, e.Grid())
}

func TestEngine_SingleLetterCommit(t *testing.T) {
	e := createTestEngine(t, "CAT")

	click(t, e, 0, 0)
	res := click(t, e, 0, 0)
	assert.Equal(t, ActionCommit, res.Action)
	assert.Equal(t, "C", res.Word)
	assert.False(t, res.Valid)
	assert.False(t, res.Accepted)
	assert.Equal(t, 0, e.Ledger().Size())
	assert.Empty(t, e.Path())
	assert.Equal(t, "C is not a word", e.Message())
}

func TestEngine_NonAdjacentAborts(t *testing.T) {
	e := createTestEngine(t, "CAT")

	click(t, e, 0, 0)
	res := click(t, e, 2, 2)
	assert.Equal(t, ActionAbort, res.Action)
	assert.True(t, res.Continue)
	assert.Empty(t, e.Path())
	assert.Equal(t, 0, e.Ledger().Size())
	assert.Equal(t, DefaultDiceConfig().Messages.Aborted, e.Message())
	assertAllIdle(t, e.Grid())
}

func TestEngine_RevisitAborts(t *testing.T) {
	e := createTestEngine(t)

	click(t, e, 0, 0)
	click(t, e, 1, 0)
	click(t, e, 1, 1)
	// (0,0) is adjacent to the last cell but already on the path
	res := click(t, e, 0, 0)
	assert.Equal(t, ActionAbort, res.Action)
	assert.Empty(t, e.Path())
	assertAllIdle(t, e.Grid())
}

func TestEngine_DiagonalExtends(t *testing.T) {
	e := createTestEngine(t)

	click(t, e, 0, 0)
	assert.Equal(t, ActionExtend, click(t, e, 1, 1).Action)
	assert.Equal(t, []Position{{0, 0}, {1, 1}}, e.Path())
}

func TestEngine_VisualStates(t *testing.T) {
	e := createTestEngine(t)

	click(t, e, 0, 0)
	cell, _ := e.Grid().CellAt(0, 0)
	assert.Equal(t, Active, cell.State)

	click(t, e, 1, 0)
	first, _ := e.Grid().CellAt(0, 0)
	second, _ := e.Grid().CellAt(1, 0)
	assert.Equal(t, Committed, first.State)
	assert.Equal(t, Active, second.State)
}

func TestEngine_CommitIdempotent(t *testing.T) {
	e := createTestEngine(t, "CAT")

	for i := 0; i < 2; i++ {
		click(t, e, 0, 0)
		click(t, e, 1, 0)
		click(t, e, 0, 1)
		res := click(t, e, 0, 1)
		assert.True(t, res.Valid)
		assert.Equal(t, i == 0, res.Accepted)
	}

	assert.Equal(t, []string{"CAT"}, e.Ledger().Words())
	assert.Equal(t, "Already found CAT", e.Message())
}

func TestEngine_QuTileJoinsBothLetters(t *testing.T) {
	e := createTestEngine(t, "QUX")

	click(t, e, 3, 3)
	click(t, e, 2, 2)
	assert.Equal(t, "QUX", e.Word())
	res := click(t, e, 2, 2)
	assert.True(t, res.Accepted)
}

func TestEngine_ResetMidPath(t *testing.T) {
	e := createTestEngine(t, "CAT")

	click(t, e, 0, 0)
	click(t, e, 1, 0)
	click(t, e, 0, 1)
	click(t, e, 0, 1)
	require.Equal(t, 1, e.Ledger().Size())

	click(t, e, 0, 0)
	click(t, e, 1, 0)
	before := strings.Join(e.Grid().Letters(), "")

	res, err := e.Handle(ClickEvent{Kind: EventReset})
	require.NoError(t, err)
	assert.Equal(t, ActionReset, res.Action)
	assert.True(t, res.Continue)

	assert.Empty(t, e.Path())
	assert.Equal(t, 0, e.Ledger().Size())
	assert.Equal(t, 0, e.Ledger().ScrollOffset())
	assert.Empty(t, e.Message())
	assert.NotEqual(t, before, strings.Join(e.Grid().Letters(), ""), "letters should be regenerated")
	assertAllIdle(t, e.Grid())
	assert.Equal(t, 1, e.Snapshot().TotalResets)
}

func TestEngine_ExitStops(t *testing.T) {
	e := createTestEngine(t)
	click(t, e, 0, 0)

	res, err := e.Handle(ClickEvent{Kind: EventExit})
	require.NoError(t, err)
	assert.Equal(t, ActionExit, res.Action)
	assert.False(t, res.Continue)
}

func TestEngine_OutsideIsNoOp(t *testing.T) {
	e := createTestEngine(t)
	click(t, e, 0, 0)
	click(t, e, 1, 0)

	res, err := e.Handle(ClickEvent{Kind: EventOutside})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, res.Action)
	assert.True(t, res.Continue)
	assert.Equal(t, []Position{{0, 0}, {1, 0}}, e.Path())
}

func TestEngine_OutOfBoundsCell(t *testing.T) {
	e := createTestEngine(t)
	click(t, e, 0, 0)

	_, err := e.Handle(CellEvent(4, 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	// state untouched
	assert.Equal(t, []Position{{0, 0}}, e.Path())
}

func TestEngine_ScrollEvents(t *testing.T) {
	e := createTestEngine(t)
	for i := 0; i < 20; i++ {
		e.ledger.Add(strings.Repeat("A", i+1))
	}
	require.Equal(t, 5, e.Ledger().ScrollOffset())

	res, err := e.Handle(ClickEvent{Kind: EventScrollUp})
	require.NoError(t, err)
	assert.Equal(t, ActionScrollUp, res.Action)
	assert.Equal(t, 4, e.Ledger().ScrollOffset())

	res, err = e.Handle(ClickEvent{Kind: EventScrollDown})
	require.NoError(t, err)
	assert.Equal(t, ActionScrollDown, res.Action)
	assert.Equal(t, 5, e.Ledger().ScrollOffset())
}

// Random click sequences never leave an invalid path behind
func TestEngine_PathInvariants(t *testing.T) {
	e := createTestEngine(t)
	rng := newTestRand(42)

	for i := 0; i < 5000; i++ {
		_, err := e.Handle(CellEvent(rng.IntN(4), rng.IntN(4)))
		require.NoError(t, err)

		path := e.Path()
		seen := map[Position]bool{}
		for j, pos := range path {
			assert.False(t, seen[pos], "position %v repeated", pos)
			seen[pos] = true
			if j > 0 {
				assert.True(t, IsAdjacent(path[j-1], pos), "%v -> %v not adjacent", path[j-1], pos)
			}
		}
		if len(path) == 0 {
			assertAllIdle(t, e.Grid())
		}
	}
}

func TestEngine_Snapshot(t *testing.T) {
	e := createTestEngine(t, "CAT")
	click(t, e, 0, 0)
	click(t, e, 1, 0)

	state := e.Snapshot()
	assert.Equal(t, e.ID(), state.ID)
	assert.Equal(t, "classic", state.ConfigName)
	assert.Equal(t, Building, state.Phase)
	assert.Equal(t, "CA", state.Word)
	assert.Equal(t, []Position{{0, 0}, {1, 0}}, state.Path)
	assert.Equal(t, 4, state.Rows)
	assert.Equal(t, 4, state.Cols)
	assert.Equal(t, "C", state.Grid[0][0].Letter)
	assert.Equal(t, Committed, state.Grid[0][0].State)

	// snapshot is a copy
	state.Grid[0][0].Letter = "Z"
	cell, _ := e.Grid().CellAt(0, 0)
	assert.Equal(t, "C", cell.Letter)
}

func TestNewEngine_BareConfigUsesDefaultMessages(t *testing.T) {
	config := &DiceConfig{Name: "bare", Rows: 4, Cols: 4, Dice: ClassicDice()}
	e, err := NewEngine(config, wordSet{"C": true}, newTestRand(5))
	require.NoError(t, err)

	letters := make([]string, 16)
	for i := range letters {
		letters[i] = "C"
	}
	require.NoError(t, e.grid.Assign(letters))

	assert.Equal(t, DefaultMaxVisible, e.Ledger().MaxVisible())

	click(t, e, 0, 0)
	click(t, e, 0, 0)
	assert.Equal(t, "Found C!", e.Message())

	click(t, e, 1, 1)
	click(t, e, 1, 1)
	assert.Equal(t, "Already found C", e.Message())

	click(t, e, 2, 2)
	click(t, e, 2, 3)
	click(t, e, 2, 3)
	assert.Equal(t, "CC is not a word", e.Message())
	assert.NotContains(t, e.Message(), "%!")
}

func TestEngine_NonSquareBoard(t *testing.T) {
	config := DefaultDiceConfig()
	config.Name = "wide"
	config.Rows, config.Cols = 2, 3
	config.Dice = ClassicDice()[:6]

	e, err := NewEngine(config, wordSet{"CAT": true, "TAB": true}, newTestRand(9))
	require.NoError(t, err)
	assert.Equal(t, 2, e.Grid().Rows())
	assert.Equal(t, 3, e.Grid().Cols())

	// each die shows one of its own faces
	letters := e.Grid().Letters()
	require.Len(t, letters, 6)
	for _, letter := range letters {
		found := false
		for _, die := range config.Dice {
			if slices.Contains(die, letter) {
				found = true
				break
			}
		}
		assert.True(t, found, "letter %s not on any die", letter)
	}

	//	C A B
	//	X T X
	require.NoError(t, e.grid.Assign([]string{"C", "A", "B", "X", "T", "X"}))

	click(t, e, 0, 0)
	click(t, e, 1, 0)
	click(t, e, 1, 1)
	res := click(t, e, 1, 1)
	assert.True(t, res.Accepted)
	assert.Equal(t, "CAT", res.Word)

	click(t, e, 1, 1)
	click(t, e, 1, 0)
	click(t, e, 2, 0)
	res = click(t, e, 2, 0)
	assert.True(t, res.Accepted)
	assert.Equal(t, []string{"CAT", "TAB"}, e.Ledger().Words())

	// column 2 exists, row 2 does not
	_, err = e.Handle(CellEvent(2, 1))
	require.NoError(t, err)
	_, err = e.Handle(CellEvent(0, 2))
	assert.True(t, errors.Is(err, ErrOutOfBounds))
	_, err = e.Handle(CellEvent(3, 0))
	assert.True(t, errors.Is(err, ErrOutOfBounds))

	require.NoError(t, e.Reset())
	assert.Len(t, e.Grid().Letters(), 6)
	assertAllIdle(t, e.Grid())
}
