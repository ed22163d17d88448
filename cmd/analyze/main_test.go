package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

func TestComputeStats_Classic(t *testing.T) {
	stats, err := computeStats(engine.DefaultConfig())
	if err != nil {
		t.Fatalf("computeStats failed: %v", err)
	}

	if stats.Rows != 7 || stats.Cols != 7 {
		t.Errorf("Expected 7x7 grid, got %dx%d", stats.Rows, stats.Cols)
	}
	if stats.Holes != 33 {
		t.Errorf("Expected 33 holes, got %d", stats.Holes)
	}
	if stats.Potatoes != 32 {
		t.Errorf("Expected 32 potatoes, got %d", stats.Potatoes)
	}
	if stats.MovablePieces != 4 {
		t.Errorf("Expected 4 movable potatoes, got %d", stats.MovablePieces)
	}

	centre := engine.Position{Row: 3, Col: 3}
	expected := []engine.Jump{
		{From: engine.Position{Row: 1, Col: 3}, To: centre},
		{From: engine.Position{Row: 3, Col: 1}, To: centre},
		{From: engine.Position{Row: 3, Col: 5}, To: centre},
		{From: engine.Position{Row: 5, Col: 3}, To: centre},
	}
	if len(stats.OpeningJumps) != len(expected) {
		t.Fatalf("Expected %d opening jumps, got %v", len(expected), stats.OpeningJumps)
	}
	for i, jump := range expected {
		if stats.OpeningJumps[i] != jump {
			t.Errorf("Opening jump %d: expected %s, got %s", i, jump, stats.OpeningJumps[i])
		}
	}

	if stats.ParityClasses != [3]int{10, 11, 11} {
		t.Errorf("Expected colour classes 10/11/11, got %v", stats.ParityClasses)
	}
	if !stats.Solvable {
		t.Error("Expected the classic layout to pass the parity check")
	}
}

func TestComputeStats_European(t *testing.T) {
	config := &engine.GameConfig{
		Name:        "european",
		Description: "French board",
		Layout: []string{
			"--ooo--",
			"-ooooo-",
			"ooooooo",
			"ooo.ooo",
			"ooooooo",
			"-ooooo-",
			"--ooo--",
		},
	}

	stats, err := computeStats(config)
	if err != nil {
		t.Fatalf("computeStats failed: %v", err)
	}

	if stats.Holes != 37 {
		t.Errorf("Expected 37 holes, got %d", stats.Holes)
	}
	if stats.ParityClasses != [3]int{12, 12, 12} {
		t.Errorf("Expected colour classes 12/12/12, got %v", stats.ParityClasses)
	}
	if stats.Solvable {
		t.Error("Expected the centre-empty French board to fail the parity check")
	}
}

func TestComputeStats_InvalidConfig(t *testing.T) {
	if _, err := computeStats(&engine.GameConfig{Name: "broken"}); err == nil {
		t.Error("Expected error for invalid config")
	}
}

func TestSingleSurvivorPossible(t *testing.T) {
	tests := []struct {
		name     string
		layout   []string
		expected bool
	}{
		{"one jump to a single potato", []string{"oo.", "---", "---"}, true},
		{"two potatoes on one diagonal", []string{"o...", "....", "....", "...o"}, false},
		{"single potato", []string{"o..", "---", "---"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid, err := engine.ParseLayout(tt.layout)
			if err != nil {
				t.Fatalf("ParseLayout failed: %v", err)
			}
			if got := singleSurvivorPossible(grid); got != tt.expected {
				t.Errorf("Expected %v, got %v", tt.expected, got)
			}
		})
	}
}

func TestAnalyzeLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tiny.json")
	content := `{"name": "tiny", "description": "A single row", "layout": ["---", "oo.", "---"]}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}

	var buf bytes.Buffer
	analyzeLayout(&buf, path)
	output := buf.String()

	for _, line := range []string{
		"Name: tiny",
		"Grid: 3x3",
		"Holes: 3",
		"Potatoes: 2",
		"Opening jumps: 1",
		"(1,0)->(1,2)",
		"✅ Colour parity allows finishing with 1 potato",
	} {
		if !strings.Contains(output, line) {
			t.Errorf("Expected output to contain %q, got:\n%s", line, output)
		}
	}
}

func TestAnalyzeLayout_MissingFile(t *testing.T) {
	var buf bytes.Buffer
	analyzeLayout(&buf, filepath.Join(t.TempDir(), "missing.json"))

	if !strings.Contains(buf.String(), "Error loading layout") {
		t.Errorf("Expected load error, got %q", buf.String())
	}
}
