package config

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/wricardo/boggle/game/engine"
)

// LetterCount is one row of a letter frequency table
type LetterCount struct {
	Letter string `json:"letter"`
	Faces  int    `json:"faces"`
	Dice   int    `json:"dice"`
}

// Stats are quick heuristics about a dice set
type Stats struct {
	Name       string        `json:"name"`
	Rows       int           `json:"rows"`
	Cols       int           `json:"cols"`
	Dice       int           `json:"dice"`
	Faces      int           `json:"faces"`
	Letters    []LetterCount `json:"letters"`
	Missing    []string      `json:"missing"`
	VowelShare float64       `json:"vowel_share"`
	// ExpectedVowels is the mean number of vowels showing on a shaken board
	ExpectedVowels float64 `json:"expected_vowels"`
	// DiceWithoutVowel lists 1-based dice that can never show a vowel
	DiceWithoutVowel []int `json:"dice_without_vowel"`
}

// Analyze computes letter statistics for config. Faces are counted as printed,
// so QU is its own entry.
func Analyze(config *engine.DiceConfig) Stats {
	stats := Stats{
		Name: config.Name,
		Rows: config.Rows,
		Cols: config.Cols,
		Dice: len(config.Dice),
	}

	faces := make(map[string]int)
	dice := make(map[string]int)
	vowelFaces := 0

	for i, die := range config.Dice {
		seen := make(map[string]bool)
		dieVowels := 0
		for _, face := range die {
			stats.Faces++
			faces[face]++
			if !seen[face] {
				seen[face] = true
				dice[face]++
			}
			if isVowel(face) {
				vowelFaces++
				dieVowels++
			}
		}
		if len(die) > 0 {
			stats.ExpectedVowels += float64(dieVowels) / float64(len(die))
		}
		if dieVowels == 0 {
			stats.DiceWithoutVowel = append(stats.DiceWithoutVowel, i+1)
		}
	}

	for letter, n := range faces {
		stats.Letters = append(stats.Letters, LetterCount{Letter: letter, Faces: n, Dice: dice[letter]})
	}
	sort.Slice(stats.Letters, func(i, j int) bool {
		if stats.Letters[i].Faces != stats.Letters[j].Faces {
			return stats.Letters[i].Faces > stats.Letters[j].Faces
		}
		return stats.Letters[i].Letter < stats.Letters[j].Letter
	})

	for c := 'A'; c <= 'Z'; c++ {
		letter := string(c)
		if c == 'Q' {
			// Q only ever appears as the QU tile
			letter = engine.QuFace
		}
		if faces[letter] == 0 {
			stats.Missing = append(stats.Missing, letter)
		}
	}

	if stats.Faces > 0 {
		stats.VowelShare = float64(vowelFaces) / float64(stats.Faces)
	}
	return stats
}

// WriteReport prints stats in a human readable form
func WriteReport(w io.Writer, stats Stats) {
	fmt.Fprintf(w, "Name: %s\n", stats.Name)
	fmt.Fprintf(w, "Grid: %d x %d (%d dice, %d faces)\n", stats.Cols, stats.Rows, stats.Dice, stats.Faces)
	fmt.Fprintf(w, "Vowel share: %.1f%%, expected vowels per board: %.2f\n", stats.VowelShare*100, stats.ExpectedVowels)

	var parts []string
	for _, lc := range stats.Letters {
		parts = append(parts, fmt.Sprintf("%s:%d", engine.DisplayLetter(lc.Letter), lc.Faces))
	}
	fmt.Fprintf(w, "Faces: %s\n", strings.Join(parts, " "))

	if len(stats.Missing) > 0 {
		fmt.Fprintf(w, "Never shown: %s\n", strings.Join(stats.Missing, " "))
	}
	if len(stats.DiceWithoutVowel) > 0 {
		fmt.Fprintf(w, "WARNING: %d dice have no vowel: %v\n", len(stats.DiceWithoutVowel), stats.DiceWithoutVowel)
	} else {
		fmt.Fprintln(w, "Every die can show a vowel")
	}
}

func isVowel(face string) bool {
	switch face {
	case "A", "E", "I", "O", "U":
		return true
	}
	return false
}
