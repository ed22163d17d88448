package engine

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/multierr"
)

func createTestConfig() *GameConfig {
	return &GameConfig{
		Name:        "Engine Test Config",
		Description: "Configuration for engine tests",
		Layout: []string{
			"-o-",
			"oo.",
			"-o-",
		},
		Legend:  DefaultLegend(),
		Welcome: "Welcome to engine test!",
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()
	if err := ValidateGameConfig(config); err != nil {
		t.Fatalf("Default config should be valid: %v", err)
	}

	grid, err := ParseLayout(config.Layout)
	if err != nil {
		t.Fatalf("Failed to parse default layout: %v", err)
	}

	if len(grid) != 7 || len(grid[0]) != 7 {
		t.Fatalf("Expected 7x7 grid, got %dx%d", len(grid), len(grid[0]))
	}
	if got := CountPlayableCells(grid); got != 33 {
		t.Errorf("Expected 33 playable cells, got %d", got)
	}
	if got := CountCellState(grid, Occupied); got != 32 {
		t.Errorf("Expected 32 potatoes, got %d", got)
	}
	if grid[3][3] != Empty {
		t.Errorf("Expected centre cell empty, got %s", grid[3][3])
	}
	for _, corner := range []Position{{0, 0}, {0, 6}, {6, 0}, {6, 6}, {1, 1}, {5, 5}} {
		if grid[corner.Row][corner.Col] != OffBoard {
			t.Errorf("Expected %s off board, got %s", corner, grid[corner.Row][corner.Col])
		}
	}
}

func TestValidateGameConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *GameConfig)
		wantErr string
	}{
		{"valid", func(c *GameConfig) {}, ""},
		{"no legend", func(c *GameConfig) { c.Legend = nil }, ""},
		{"missing name", func(c *GameConfig) { c.Name = "" }, "name is required"},
		{"missing description", func(c *GameConfig) { c.Description = "" }, "description is required"},
		{"too few rows", func(c *GameConfig) { c.Layout = c.Layout[:2] }, "rows"},
		{"too few columns", func(c *GameConfig) { c.Layout = []string{"o.", "oo", "oo"} }, "columns"},
		{"ragged rows", func(c *GameConfig) { c.Layout[1] = "oo.o" }, "row 2 must have 3 characters"},
		{"bad character", func(c *GameConfig) { c.Layout[0] = "-x-" }, "invalid character 'x'"},
		{"no empty cell", func(c *GameConfig) { c.Layout[1] = "ooo" }, "at least one empty"},
		{"no potatoes", func(c *GameConfig) { c.Layout = []string{"-.-", "...", "-.-"} }, "at least one occupied"},
		{"wrong legend", func(c *GameConfig) { c.Legend["o"] = "potato" }, "legend['o']"},
		{"too many rows", func(c *GameConfig) {
			c.Layout = make([]string, MaxBoardSize+1)
			for i := range c.Layout {
				c.Layout[i] = "oo."
			}
		}, "rows"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			config := createTestConfig()
			test.mutate(config)

			err := ValidateGameConfig(config)
			if test.wantErr == "" {
				if err != nil {
					t.Fatalf("Expected valid config, got %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Expected error containing %q", test.wantErr)
			}
			if !strings.Contains(err.Error(), test.wantErr) {
				t.Errorf("Expected error containing %q, got %v", test.wantErr, err)
			}
		})
	}

	if err := ValidateGameConfig(nil); err == nil {
		t.Error("Expected error for nil config")
	}
}

func TestParseLayout(t *testing.T) {
	grid, err := ParseLayout([]string{"-.o"})
	if err != nil {
		t.Fatalf("Failed to parse layout: %v", err)
	}
	if grid[0][0] != OffBoard || grid[0][1] != Empty || grid[0][2] != Occupied {
		t.Errorf("Unexpected grid: %v", grid)
	}

	if _, err := ParseLayout([]string{"-?o"}); err == nil {
		t.Error("Expected error for unknown layout character")
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()

	valid := filepath.Join(dir, "valid.json")
	content := `{
		"name": "tiny",
		"description": "A tiny board",
		"layout": ["-o-", "oo.", "-o-"]
	}`
	if err := os.WriteFile(valid, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadGameConfig(valid)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if config.Name != "tiny" || len(config.Layout) != 3 {
		t.Errorf("Unexpected config: %+v", config)
	}

	invalid := filepath.Join(dir, "invalid.json")
	if err := os.WriteFile(invalid, []byte(`{"name": "broken", "layout": []}`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadGameConfig(invalid); err == nil {
		t.Error("Expected validation error")
	}

	garbage := filepath.Join(dir, "garbage.json")
	if err := os.WriteFile(garbage, []byte(`{not json`), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	if _, err := LoadGameConfig(garbage); err == nil {
		t.Error("Expected parse error")
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.json")); !os.IsNotExist(err) {
		t.Errorf("Expected not-exist error, got %v", err)
	}
}

func TestValidateGameConfig_ReportsEveryProblem(t *testing.T) {
	config := &GameConfig{
		Layout: []string{"oox", "ooo", "oo"},
	}

	err := ValidateGameConfig(config)
	if err == nil {
		t.Fatal("Expected validation errors")
	}

	errs := multierr.Errors(err)
	expected := []string{
		"name is required",
		"description is required",
		"invalid character 'x' at row 1, col 3",
		"row 3 must have 3 characters, got 2",
		"at least one empty",
	}
	if len(errs) != len(expected) {
		t.Fatalf("Expected %d errors, got %d: %v", len(expected), len(errs), errs)
	}
	for i, want := range expected {
		if !strings.Contains(errs[i].Error(), want) {
			t.Errorf("Error %d: expected %q, got %v", i, want, errs[i])
		}
	}
}

func TestLoadGameConfig_YAML(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "tiny.yaml")
	content := `name: tiny
description: A tiny board
layout:
  - "-o-"
  - "oo."
  - "-o-"
legend:
  "-": off_board
  ".": empty
  "o": occupied
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}

	config, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("Failed to load YAML config: %v", err)
	}
	if config.Name != "tiny" || len(config.Layout) != 3 || config.Layout[1] != "oo." {
		t.Errorf("Unexpected config: %+v", config)
	}
	if config.Legend["o"] != "occupied" {
		t.Errorf("Expected legend to be decoded, got %v", config.Legend)
	}
}

func TestUnmarshalGameConfig_Strict(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		data     string
	}{
		{"json", "layout.json", `{"name": "x", "grid_size": 3}`},
		{"yaml", "layout.yml", "name: x\ngrid_size: 3\n"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := UnmarshalGameConfig(test.filename, []byte(test.data), false); err != nil {
				t.Errorf("Expected lenient decode to succeed, got %v", err)
			}
			if _, err := UnmarshalGameConfig(test.filename, []byte(test.data), true); err == nil {
				t.Error("Expected strict decode to reject unknown field")
			}
		})
	}
}

func TestLayoutFileNames(t *testing.T) {
	tests := []struct {
		name    string
		layout  bool
		trimmed string
	}{
		{"classic.json", true, "classic"},
		{"classic.yaml", true, "classic"},
		{"classic.YML", true, "classic"},
		{"classic", false, "classic"},
		{"notes.txt", false, "notes.txt"},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := IsLayoutFile(test.name); got != test.layout {
				t.Errorf("IsLayoutFile(%q) = %v, want %v", test.name, got, test.layout)
			}
			if got := TrimLayoutExt(test.name); got != test.trimmed {
				t.Errorf("TrimLayoutExt(%q) = %q, want %q", test.name, got, test.trimmed)
			}
		})
	}
}
