// Package config provides dice configuration management for the game.
//
// The config package handles:
//   - Loading dice configurations from JSON files
//   - Configuration validation with full error reports
//   - Default configuration management
//   - Configuration discovery and listing
//   - Letter statistics for a dice set
//
// Configuration Format:
//
// Configurations are stored as JSON files in the configs directory:
//
//	{
//	  "name": "classic",
//	  "rows": 4,
//	  "cols": 4,
//	  "max_visible": 15,
//	  "dice": [["A", "A", "C", "I", "O", "T"], ...],
//	  "messages": {"word_found": "Found %s!"}
//	}
//
// A file needs exactly rows*cols dice of six faces each. Faces are single
// uppercase letters, except the "QU" tile. Missing messages and max_visible
// take the built-in defaults.
//
// Usage:
//
//	manager, err := config.NewManager("configs")
//	if err != nil {
//		return err
//	}
//	dice, err := manager.LoadConfig("big")
//
// When the directory holds no loadable file, GetDefault returns the built-in
// classic 4x4 dice.
package config
