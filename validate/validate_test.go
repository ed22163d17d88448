package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeLayout(t *testing.T, content string) string {
	t.Helper()

	tmpfile, err := os.CreateTemp(t.TempDir(), "test_layout_*.json")
	if err != nil {
		t.Fatalf("Failed to create temp file: %v", err)
	}
	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
	tmpfile.Close()
	return tmpfile.Name()
}

func hasError(result ValidationResult, substr string) bool {
	for _, e := range result.Errors {
		if strings.Contains(e, substr) {
			return true
		}
	}
	return false
}

func TestValidateConfig_ValidConfig(t *testing.T) {
	validConfig := `{
		"name": "Test Layout",
		"description": "Test layout",
		"layout": [
			"--o--",
			"--o--",
			"oo.oo",
			"--o--",
			"--o--"
		],
		"legend": {
			"-": "off_board",
			".": "empty",
			"o": "occupied"
		},
		"welcome": "Welcome!"
	}`

	path := writeLayout(t, validConfig)
	result := validateConfig(path)
	if !result.Valid {
		t.Errorf("Expected valid layout, but got errors: %v", result.Errors)
	}

	if result.File != filepath.Base(path) {
		t.Errorf("Expected file name %s, got %s", filepath.Base(path), result.File)
	}

	for _, info := range []string{"✓ Grid: 5x5", "✓ Holes: 9", "✓ Potatoes: 8", "✓ Opening moves: 4 movable potatoes"} {
		if !hasError(result, info) {
			t.Errorf("Expected info %q in %v", info, result.Errors)
		}
	}
}

func TestValidateConfig_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "plus.yaml")
	content := "name: plus\ndescription: Plus board\nlayout:\n  - \"-o-\"\n  - \"o.o\"\n  - \"-o-\"\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}

	result := validateConfig(path)
	if result.Valid {
		// The centre is the only empty cell and no potato has a neighbour to jump over
		t.Fatalf("Expected plus layout to have no opening move, got %v", result.Errors)
	}
	if !hasError(result, "No potato can jump from the starting position") {
		t.Errorf("Expected opening move error, got %v", result.Errors)
	}

	strict := filepath.Join(dir, "strict.yml")
	if err := os.WriteFile(strict, []byte(content+"cell_size: 3\n"), 0644); err != nil {
		t.Fatalf("Failed to write layout: %v", err)
	}
	result = validateConfig(strict)
	if result.Valid || !hasError(result, "cell_size") {
		t.Errorf("Expected unknown YAML field to be rejected, got %v", result.Errors)
	}
}

func TestLayoutFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.yaml", "a.json", "c.yml", "notes.txt"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("{}"), 0644); err != nil {
			t.Fatalf("Failed to write %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "sub.json"), 0755); err != nil {
		t.Fatalf("Failed to create dir: %v", err)
	}

	files, err := layoutFiles(dir)
	if err != nil {
		t.Fatalf("layoutFiles failed: %v", err)
	}

	expected := []string{"a.json", "b.yaml", "c.yml"}
	if len(files) != len(expected) {
		t.Fatalf("Expected %v, got %v", expected, files)
	}
	for i, name := range expected {
		if filepath.Base(files[i]) != name {
			t.Errorf("Expected %s at %d, got %s", name, i, files[i])
		}
	}

	if _, err := layoutFiles(filepath.Join(dir, "missing")); err == nil {
		t.Error("Expected error for missing directory")
	}
}

func TestValidateConfig_InvalidJSON(t *testing.T) {
	path := writeLayout(t, `{"name": "test", invalid json}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid result for malformed JSON")
	}
	if !hasError(result, "Invalid syntax") {
		t.Errorf("Expected 'Invalid syntax' error, got %v", result.Errors)
	}
}

func TestValidateConfig_UnknownField(t *testing.T) {
	path := writeLayout(t, `{
		"name": "Test",
		"description": "Test",
		"grid_size": 3,
		"layout": ["ooo", "o.o", "ooo"]
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected unknown field to be rejected")
	}
	if !hasError(result, "grid_size") {
		t.Errorf("Expected error naming the unknown field, got %v", result.Errors)
	}
}

func TestValidateConfig_MissingFile(t *testing.T) {
	result := validateConfig(filepath.Join(t.TempDir(), "nonexistent_file.json"))
	if result.Valid {
		t.Error("Expected invalid result for missing file")
	}
	if !hasError(result, "Failed to read file") {
		t.Errorf("Expected 'Failed to read file' error, got %v", result.Errors)
	}
}

func TestValidateConfig_EmptyLayout(t *testing.T) {
	path := writeLayout(t, `{"name": "Test", "description": "Test", "layout": []}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected invalid result for empty layout")
	}
	if !hasError(result, "Layout is empty") {
		t.Errorf("Expected 'Layout is empty' error, got %v", result.Errors)
	}
}

func TestValidateConfig_CollectsErrors(t *testing.T) {
	path := writeLayout(t, `{
		"layout": ["oox", "ooo", "oo"]
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Fatal("Expected invalid result")
	}

	expected := []string{
		"name is required",
		"description is required",
		"invalid character 'x' at row 1, col 3",
		"row 3 must have 3 characters, got 2",
		"at least one empty",
	}
	for _, e := range expected {
		if !hasError(result, e) {
			t.Errorf("Expected error %q in %v", e, result.Errors)
		}
	}
}

func TestValidateConfig_BoardSize(t *testing.T) {
	path := writeLayout(t, `{"name": "Tiny", "description": "Too small", "layout": ["o.", "oo"]}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected a 2x2 layout to be rejected")
	}
	if !hasError(result, "between 3 and 25 rows") {
		t.Errorf("Expected row size error, got %v", result.Errors)
	}
}

func TestValidateConfig_NoPotatoes(t *testing.T) {
	path := writeLayout(t, `{"name": "Empty", "description": "No potatoes", "layout": ["...", "...", "..."]}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected layout without potatoes to be rejected")
	}
	if !hasError(result, "at least one occupied") {
		t.Errorf("Expected missing potato error, got %v", result.Errors)
	}
}

func TestValidateConfig_BadLegend(t *testing.T) {
	path := writeLayout(t, `{
		"name": "Legend",
		"description": "Wrong legend",
		"layout": ["ooo", "o.o", "ooo"],
		"legend": {"-": "off_board", ".": "hole", "o": "occupied"}
	}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected wrong legend to be rejected")
	}
	if !hasError(result, "legend['.'] must be 'empty', got 'hole'") {
		t.Errorf("Expected legend error, got %v", result.Errors)
	}
}

func TestValidateConfig_NoOpeningMove(t *testing.T) {
	path := writeLayout(t, `{"name": "Stuck", "description": "Nothing to jump", "layout": ["o.o", "...", "o.o"]}`)

	result := validateConfig(path)
	if result.Valid {
		t.Error("Expected layout without opening moves to be rejected")
	}
	if !hasError(result, "No potato can jump from the starting position") {
		t.Errorf("Expected opening move error, got %v", result.Errors)
	}
}

func TestValidateCoverage_ValidLayout(t *testing.T) {
	layout := []string{
		"--ooo--",
		"--ooo--",
		"ooooooo",
		"ooo.ooo",
		"ooooooo",
		"--ooo--",
		"--ooo--",
	}

	result := validateCoverage(layout)
	if !result.Valid {
		t.Errorf("Expected every hole to be covered, got errors: %v", result.Errors)
	}
	if !hasError(result, "All 33 holes") {
		t.Errorf("Expected coverage summary for 33 holes, got %v", result.Errors)
	}
}

func TestValidateCoverage_StrandedHole(t *testing.T) {
	layout := []string{
		"o.o--",
		"-----",
		"----o",
	}

	result := validateCoverage(layout)
	if result.Valid {
		t.Error("Expected coverage failure for an isolated hole")
	}
	if !hasError(result, "1/4 holes") {
		t.Errorf("Expected '1/4 holes' in errors, got %v", result.Errors)
	}
	if !hasError(result, "Unreachable: hole at (2,4)") {
		t.Errorf("Expected isolated hole to be listed, got %v", result.Errors)
	}
}

func TestValidateCoverage_EmptyLayout(t *testing.T) {
	result := validateCoverage([]string{})
	if result.Valid {
		t.Error("Expected invalid result for empty layout")
	}
	if !hasError(result, "empty layout") {
		t.Errorf("Expected 'empty layout' error, got %v", result.Errors)
	}
}

func TestValidateConfig_BundledLayouts(t *testing.T) {
	files, err := layoutFiles(filepath.Join("..", "layouts"))
	if err != nil {
		t.Fatalf("Failed to list layouts: %v", err)
	}
	if len(files) == 0 {
		t.Skip("no bundled layouts found")
	}

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			result := validateConfig(file)
			if !result.Valid {
				t.Errorf("Expected bundled layout to be valid, got %v", result.Errors)
			}
		})
	}
}
