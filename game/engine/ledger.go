package engine

import "github.com/zyedidia/generic/mapset"

// Ledger is the insertion-ordered, deduplicated list of accepted words
// with a scrollable visible window.
type Ledger struct {
	words        []string
	seen         mapset.Set[string]
	scrollOffset int
	maxVisible   int
}

// NewLedger creates an empty ledger. maxVisible <= 0 selects DefaultMaxVisible.
func NewLedger(maxVisible int) *Ledger {
	if maxVisible <= 0 {
		maxVisible = DefaultMaxVisible
	}
	return &Ledger{
		seen:       mapset.New[string](),
		maxVisible: maxVisible,
	}
}

// Add inserts word if it is not already present and reports whether it was inserted.
// Once the list outgrows the window the offset advances so the newest word stays reachable.
func (l *Ledger) Add(word string) bool {
	if l.seen.Has(word) {
		return false
	}
	l.seen.Put(word)
	l.words = append(l.words, word)
	if len(l.words) > l.maxVisible {
		l.scrollOffset = min(l.scrollOffset+1, l.maxOffset())
	}
	return true
}

// Contains reports whether word has been recorded
func (l *Ledger) Contains(word string) bool {
	return l.seen.Has(word)
}

// VisibleWindow returns words[scrollOffset : scrollOffset+maxVisible], clipped to bounds
func (l *Ledger) VisibleWindow() []string {
	start := min(l.scrollOffset, len(l.words))
	end := min(start+l.maxVisible, len(l.words))
	return append([]string(nil), l.words[start:end]...)
}

// ScrollUp moves the window one entry towards the oldest word
func (l *Ledger) ScrollUp() {
	l.scrollOffset = max(0, l.scrollOffset-1)
}

// ScrollDown moves the window one entry towards the newest word
func (l *Ledger) ScrollDown() {
	l.scrollOffset = min(l.scrollOffset+1, l.maxOffset())
}

// Clear empties the ledger and resets the scroll offset
func (l *Ledger) Clear() {
	l.words = nil
	l.seen = mapset.New[string]()
	l.scrollOffset = 0
}

// Words returns all recorded words in insertion order
func (l *Ledger) Words() []string {
	return append([]string(nil), l.words...)
}

// Size returns the number of recorded words
func (l *Ledger) Size() int { return len(l.words) }

// ScrollOffset returns the index of the first visible word
func (l *Ledger) ScrollOffset() int { return l.scrollOffset }

// MaxVisible returns the window size
func (l *Ledger) MaxVisible() int { return l.maxVisible }

func (l *Ledger) maxOffset() int {
	return max(0, len(l.words)-l.maxVisible)
}
