// Package service provides the business logic layer for Potato Jump.
//
// The service package implements:
//   - Serialized access to the single game session
//   - Jump processing with events and compact step traces
//   - Bulk jumps for agents submitting several jumps at once
//   - Move history pagination
//   - Layout listing
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. ConfigManager lists and loads board layouts.
//
// Architecture:
//
// The service layer sits between the adapters (terminal, MCP) and the game
// engine. Every call takes the service mutex before touching the session, so
// adapters may call it from several goroutines even though the engine itself
// is unsynchronized.
//
// Usage:
//
//	sess, _ := session.New(configMgr.GetDefault())
//	gameService := service.NewGameService(sess, configMgr)
//
//	// Ask where a potato may go
//	hint, err := gameService.LegalJumps(ctx, engine.Position{Row: 1, Col: 3})
//
//	// Jump it
//	result, err := gameService.Jump(ctx, hint.Position, hint.Destinations[0], false)
//
// Rejected Jumps:
//
// An illegal jump is not a Go error. The result carries Success=false, the
// rejection reason and an unchanged game state.
package service
