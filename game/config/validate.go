package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/wricardo/boggle/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string   `json:"file"`
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// InfoPrefix marks informational lines in a valid result
const InfoPrefix = "✓ "

// ValidateFile loads and validates a single configuration file, reporting every
// problem it finds rather than stopping at the first one.
func ValidateFile(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Failed to read file: %v", err))
		return result
	}

	var config engine.DiceConfig
	if err := json.Unmarshal(data, &config); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Sprintf("Invalid JSON: %v", err))
		return result
	}
	engine.ApplyDefaults(&config)

	problems := checkDice(&config)
	if len(problems) == 0 {
		// everything the per-die checks do not cover
		if err := engine.ValidateDiceConfig(&config); err != nil {
			problems = append(problems, strings.TrimPrefix(err.Error(), "config validation: "))
		}
	}
	if len(problems) > 0 {
		result.Valid = false
		result.Errors = append(result.Errors, problems...)
		return result
	}

	stats := Analyze(&config)
	result.Errors = append(result.Errors,
		InfoPrefix+"Name: "+config.Name,
		fmt.Sprintf("%sGrid: %dx%d", InfoPrefix, config.Cols, config.Rows),
		fmt.Sprintf("%sDice: %d", InfoPrefix, len(config.Dice)),
		fmt.Sprintf("%sDistinct letters: %d", InfoPrefix, len(stats.Letters)),
		fmt.Sprintf("%sVowel share: %.0f%%", InfoPrefix, stats.VowelShare*100),
	)
	return result
}

// ValidateDir validates every *.json file in dir, in name order
func ValidateDir(dir string) ([]ValidationResult, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("finding config files: %w", err)
	}
	sort.Strings(files)

	results := make([]ValidationResult, 0, len(files))
	for _, file := range files {
		results = append(results, ValidateFile(file))
	}
	return results, nil
}

// checkDice collects dice count and face problems
func checkDice(config *engine.DiceConfig) []string {
	var problems []string

	if config.Name == "" {
		problems = append(problems, "Missing name")
	}
	if want := config.Rows * config.Cols; want > 0 && len(config.Dice) != want {
		problems = append(problems, fmt.Sprintf("Need %d dice for a %dx%d grid, got %d", want, config.Cols, config.Rows, len(config.Dice)))
	}

	for i, die := range config.Dice {
		if len(die) != engine.FacesPerDie {
			problems = append(problems, fmt.Sprintf("Die %d has %d faces, want %d", i+1, len(die), engine.FacesPerDie))
		}
		for j, face := range die {
			if !engine.ValidFace(face) {
				problems = append(problems, fmt.Sprintf("Invalid face %q on die %d, face %d", face, i+1, j+1))
			}
		}
	}
	return problems
}
