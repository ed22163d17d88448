// Package engine provides the rules engine for Potato Jump.
//
// The engine package implements:
//   - A fixed rectangular board of off-board, empty and occupied cells
//   - Legal jump enumeration in up, down, left, right order
//   - Atomic jump application (origin and middle emptied, destination filled)
//   - Terminal state detection and win/loss classification
//   - Layout configuration loading and validation
//
// Core Types:
//
// The Engine interface defines the query/command contract consumed by
// presentation layers, implemented by GameEngine. Board holds the cells and
// the jump rules. GameState is a read-only snapshot for rendering, and
// GameConfig describes a starting layout loaded from JSON or YAML.
//
// Usage:
//
//	gameEngine := engine.NewEngineWithDefaults()
//
//	// Highlight destinations for a selected potato
//	dests := gameEngine.LegalJumpsFrom(engine.Position{Row: 1, Col: 3})
//
//	// Commit a jump
//	if err := gameEngine.ApplyJump(engine.Position{Row: 1, Col: 3}, dests[0]); err != nil {
//		log.Print(err)
//	}
//
//	if gameEngine.CountLegalMovesRemaining() == 0 {
//		fmt.Println(engine.GameOverMessage(gameEngine.CountPieces()))
//	}
//
// Game Rules:
//
// A potato jumps exactly two cells up, down, left or right over an adjacent
// potato into an empty hole, and the jumped potato is removed. The game ends
// when no potato can jump. One potato left is a win; anything else is a loss.
//
// GameEngine is not safe for concurrent use.
package engine
