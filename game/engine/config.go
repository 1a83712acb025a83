package engine

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ClassicDice returns the 16 standard Boggle dice
func ClassicDice() []Die {
	return []Die{
		{"A", "A", "C", "I", "O", "T"},
		{"T", "Y", "A", "B", "I", "L"},
		{"J", "M", "O", "QU", "A", "B"},
		{"A", "C", "D", "E", "M", "P"},
		{"A", "C", "E", "L", "S", "R"},
		{"A", "D", "E", "N", "V", "Z"},
		{"A", "H", "M", "O", "R", "S"},
		{"B", "F", "I", "O", "R", "X"},
		{"D", "E", "N", "O", "S", "W"},
		{"D", "K", "N", "O", "T", "U"},
		{"E", "E", "F", "H", "I", "Y"},
		{"E", "G", "I", "N", "T", "V"},
		{"E", "G", "K", "L", "U", "Y"},
		{"E", "H", "I", "N", "P", "S"},
		{"E", "L", "P", "S", "T", "U"},
		{"G", "I", "L", "R", "U", "W"},
	}
}

// DefaultDiceConfig returns the classic 4x4 configuration with default messages
func DefaultDiceConfig() *DiceConfig {
	config := &DiceConfig{
		Name:        "classic",
		Description: "Standard 4x4 Boggle with the 16 classic dice",
		Rows:        DefaultRows,
		Cols:        DefaultCols,
		MaxVisible:  DefaultMaxVisible,
		Dice:        ClassicDice(),
	}
	config.Messages.Welcome = "Click letters to build a word, click the last letter again to submit"
	config.Messages.WordFound = "Found %s!"
	config.Messages.AlreadyFound = "Already found %s"
	config.Messages.NotAWord = "%s is not a word"
	config.Messages.Aborted = "Letters must be adjacent and unused"
	return config
}

// ValidateDiceConfig validates a dice configuration for correctness and playability
func ValidateDiceConfig(config *DiceConfig) error {
	if config == nil {
		return fmt.Errorf("config validation: config is nil")
	}
	if config.Name == "" {
		return fmt.Errorf("config validation: name is required")
	}

	// Validate grid size
	if config.Rows < MinGridSize || config.Rows > MaxGridSize {
		return fmt.Errorf("config validation: rows must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Rows)
	}
	if config.Cols < MinGridSize || config.Cols > MaxGridSize {
		return fmt.Errorf("config validation: cols must be between %d and %d, got %d", MinGridSize, MaxGridSize, config.Cols)
	}
	if config.MaxVisible < 0 {
		return fmt.Errorf("config validation: max_visible must not be negative, got %d", config.MaxVisible)
	}

	// One die per cell
	if len(config.Dice) != config.Rows*config.Cols {
		return fmt.Errorf("config validation: need %d dice for a %dx%d grid, got %d",
			config.Rows*config.Cols, config.Cols, config.Rows, len(config.Dice))
	}
	for i, die := range config.Dice {
		if len(die) != FacesPerDie {
			return fmt.Errorf("config validation: die %d must have %d faces, got %d", i+1, FacesPerDie, len(die))
		}
		for j, face := range die {
			if !ValidFace(face) {
				return fmt.Errorf("config validation: invalid face %q on die %d, face %d", face, i+1, j+1)
			}
		}
	}

	// Validate format strings
	for key, msg := range map[string]string{
		"word_found":    config.Messages.WordFound,
		"already_found": config.Messages.AlreadyFound,
		"not_a_word":    config.Messages.NotAWord,
	} {
		if msg != "" && !singleWordVerb(msg) {
			return fmt.Errorf("config validation: messages.%s must contain exactly one %%s and no other verbs", key)
		}
	}

	return nil
}

// LoadDiceConfig loads a dice configuration from a JSON file
func LoadDiceConfig(filename string) (*DiceConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	var config DiceConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(filename), err)
	}
	ApplyDefaults(&config)

	if err := ValidateDiceConfig(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// ApplyDefaults fills optional fields (max_visible, messages) left out of a JSON file
func ApplyDefaults(c *DiceConfig) {
	if c.MaxVisible == 0 {
		c.MaxVisible = DefaultMaxVisible
	}
	def := DefaultDiceConfig().Messages
	if c.Messages.Welcome == "" {
		c.Messages.Welcome = def.Welcome
	}
	if c.Messages.WordFound == "" {
		c.Messages.WordFound = def.WordFound
	}
	if c.Messages.AlreadyFound == "" {
		c.Messages.AlreadyFound = def.AlreadyFound
	}
	if c.Messages.NotAWord == "" {
		c.Messages.NotAWord = def.NotAWord
	}
	if c.Messages.Aborted == "" {
		c.Messages.Aborted = def.Aborted
	}
}

// ValidFace reports whether face is a single uppercase letter or the QU tile
func ValidFace(face string) bool {
	if face == QuFace {
		return true
	}
	return len(face) == 1 && face[0] >= 'A' && face[0] <= 'Z'
}

// singleWordVerb reports whether msg holds exactly one formatting verb and it is %s.
// %% is a literal percent sign.
func singleWordVerb(msg string) bool {
	verbs := 0
	for i := 0; i < len(msg); i++ {
		if msg[i] != '%' {
			continue
		}
		if i+1 < len(msg) && msg[i+1] == '%' {
			i++
			continue
		}
		if i+1 >= len(msg) || msg[i+1] != 's' {
			return false
		}
		verbs++
		i++
	}
	return verbs == 1
}
