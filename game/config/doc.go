// Package config provides layout management for Potato Jump.
//
// The config package handles:
//   - Loading named board layouts from JSON or YAML files
//   - Layout validation through the engine rules
//   - Default layout management
//   - Layout discovery and listing
//
// Layout Format:
//
// Layouts are stored as JSON (.json) or YAML (.yaml, .yml) files in the
// layouts directory; for a name present in several formats the JSON file is
// used. Each file defines a name, a description and a rectangular grid of characters:
//   - '-' a cell that is not part of the board
//   - '.' an empty hole
//   - 'o' a hole holding a potato
//
// Built-in Layout:
//
// The classic 7x7 cross is always available as "classic", even without a
// layouts directory. A classic.json on disk replaces it when valid.
//
// Usage:
//
//	manager, err := config.NewManager("layouts")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific layout
//	layout, err := manager.LoadConfig("european")
//
//	// List available layouts
//	layouts, err := manager.ListConfigs()
package config
