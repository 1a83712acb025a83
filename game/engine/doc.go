// Package engine provides the core game logic for Boggle.
//
// The engine package implements:
//   - Dice definitions and the shake that assigns one face per die to the grid
//   - The letter grid with 8-neighbor adjacency and per-cell selection state
//   - The click-driven selection state machine that builds, commits and aborts words
//   - The deduplicated, scrollable ledger of found words
//   - Dice configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the main contract for game operations,
// implemented by GameEngine. Grid owns the cells, Ledger records accepted
// words, and DiceConfig defines the dice set and board dimensions loaded
// from JSON files.
//
// Usage:
//
//	rng := rand.New(rand.NewPCG(seed, seed))
//	gameEngine, err := engine.NewEngine(engine.DefaultDiceConfig(), lex, rng)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Click (0,0), extend to (1,0), then click (1,0) again to submit
//	gameEngine.Handle(engine.CellEvent(0, 0))
//	gameEngine.Handle(engine.CellEvent(1, 0))
//	result, err := gameEngine.Handle(engine.CellEvent(1, 0))
//
// Selection Rules:
//
// The first click on a cell starts a path. Clicking a cell adjacent to the
// last one that is not already on the path extends it. Clicking the last
// cell again submits the word. Any other cell click abandons the path.
// Reset clears the path and the ledger and shakes a new board; Exit asks
// the caller to stop.
package engine
