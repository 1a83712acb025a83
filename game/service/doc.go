// Package service drives one interactive Boggle game.
//
// The service package implements:
//   - Click classification and dispatch to the engine
//   - Pushing cell visuals, texts and the found-word panel to a Surface
//   - The blocking input loop (Run) that stops on exit or end of input
//   - Structured game events for logging and scripted frontends
//
// Core Interfaces:
//
// GameService is the main service interface. InputSource delivers raw clicks,
// Classifier turns them into events and Surface receives presentation updates.
//
// Architecture:
//
// The service sits between a frontend (the console transport, or any other
// InputSource/Surface pair) and the engine. It holds no game state of its own:
// after every handled event it re-reads the engine and refreshes the surface.
//
// Usage:
//
//	layout := geometry.NewLayout(cfg.Cols, cfg.Rows)
//	eng, err := engine.NewEngine(cfg, words, rand.New(rand.NewPCG(seed, seed)))
//	if err != nil {
//		return err
//	}
//	svc := service.NewGameService(eng, layout, surface, log.Logger)
//	err = svc.Run(ctx, input)
package service
