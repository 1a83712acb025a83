// Package lexicon loads the dictionary of acceptable words.
//
// A lexicon file is UTF-8 text with one word per line. Words are trimmed and
// stored uppercase, blank lines are skipped, and lookups are case-insensitive.
// A Lexicon is immutable once loaded.
package lexicon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/zyedidia/generic/mapset"
)

// ErrLoad wraps every failure to read or parse a lexicon
var ErrLoad = errors.New("lexicon load failed")

// Lexicon is an immutable set of uppercase words
type Lexicon struct {
	words mapset.Set[string]
}

// New builds a lexicon from the given words
func New(words ...string) *Lexicon {
	l := &Lexicon{words: mapset.New[string]()}
	for _, w := range words {
		if w = normalize(w); w != "" {
			l.words.Put(w)
		}
	}
	return l
}

// Load reads a lexicon file from disk
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	defer f.Close()

	l, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Read loads one word per line from r
func Read(r io.Reader) (*Lexicon, error) {
	l := &Lexicon{words: mapset.New[string]()}
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if !utf8.ValidString(text) {
			return nil, fmt.Errorf("%w: line %d is not valid UTF-8", ErrLoad, line)
		}
		if w := normalize(text); w != "" {
			l.words.Put(w)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoad, err)
	}
	return l, nil
}

// Contains reports whether word is in the lexicon, ignoring case
func (l *Lexicon) Contains(word string) bool {
	return l.words.Has(normalize(word))
}

// Len returns the number of distinct words
func (l *Lexicon) Len() int {
	return l.words.Size()
}

// normalize trims and uppercases a word
func normalize(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
