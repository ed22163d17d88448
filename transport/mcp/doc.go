// Package mcp provides a Model Context Protocol server for Potato Jump.
//
// The mcp package implements:
//   - MCP server for AI agent integration over stdio
//   - Tool definitions for every game operation
//   - Text formatting of boards, jumps and history for agents
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - game_state: Current board with potato count and status
//   - legal_jumps: Destinations for the potato at a cell
//   - movable_pieces: Every potato that can jump
//   - jump: Execute a single jump
//   - bulk_jump: Execute several jumps in sequence
//   - reset_game: Start over with a fresh board
//   - move_history: Jumps made so far, with pagination
//   - list_configs: Available board layouts
//   - describe_cell: Details about a specific cell
//   - game_instructions: Full rules and strategy hints
//
// Errors:
//
// Rejected jumps and bad arguments are returned as tool errors carrying the
// reason and the unchanged board. Handlers never return protocol errors.
//
// Usage:
//
//	server := mcp.NewServer(gameService)
//	if err := server.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
