// Command validate checks the layout files (JSON or YAML) in the ../layouts
// directory, or the directory given as the first argument. It checks:
//   - File syntax, unknown fields and required fields
//   - Grid consistency, board size limits and allowed characters (-, ., o)
//   - Presence of at least one empty hole and one potato
//   - The legend, when present, matches the layout characters
//   - At least one jump is possible from the starting position
//   - Coverage: every hole lies on a line of three holes, so some jump can reach it
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"go.uber.org/multierr"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Errors contains informational messages; otherwise it
// accumulates the validation errors that were found.
type ValidationResult struct {
	File   string
	Valid  bool
	Errors []string
}

func (r *ValidationResult) fail(format string, args ...any) {
	r.Valid = false
	r.Errors = append(r.Errors, fmt.Sprintf(format, args...))
}

// validateConfig loads and validates a single layout file. Every problem
// engine.ValidateGameConfig finds is reported, not only the first one.
func validateConfig(filePath string) ValidationResult {
	result := ValidationResult{
		File:   filepath.Base(filePath),
		Valid:  true,
		Errors: []string{},
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		result.fail("Failed to read file: %v", err)
		return result
	}

	config, err := engine.UnmarshalGameConfig(filePath, data, true)
	if err != nil {
		result.fail("Invalid syntax: %v", err)
		return result
	}

	if len(config.Layout) == 0 {
		result.fail("Layout is empty")
		return result
	}

	for _, problem := range multierr.Errors(engine.ValidateGameConfig(config)) {
		result.fail("%s", strings.TrimPrefix(problem.Error(), "config validation: "))
	}
	if !result.Valid {
		return result
	}

	game, err := engine.NewEngine(config)
	if err != nil {
		result.fail("Engine rejected layout: %v", err)
		return result
	}

	openings := game.MovablePieces()
	if len(openings) == 0 {
		result.fail("No potato can jump from the starting position")
	}

	coverage := validateCoverage(config.Layout)
	if !coverage.Valid {
		result.Valid = false
	}
	result.Errors = append(result.Errors, coverage.Errors...)

	// Add informational data
	if result.Valid {
		state := game.GetState()
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Name: %s", config.Name))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Grid: %dx%d", state.Rows, state.Cols))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Holes: %d", engine.CountPlayableCells(state.Grid)))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Potatoes: %d", state.Pieces))
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Opening moves: %d movable potatoes", len(openings)))
	}

	return result
}

// validateCoverage ensures every hole can take part in at least one jump.
// A hole is covered when it is the origin, middle or destination of some
// line of three holes along a row or column; any other hole never changes.
func validateCoverage(layout []string) ValidationResult {
	result := ValidationResult{
		Valid:  true,
		Errors: []string{},
	}

	if len(layout) == 0 {
		result.fail("Cannot validate coverage: empty layout")
		return result
	}

	isHole := func(r, c int) bool {
		if r < 0 || r >= len(layout) || c < 0 || c >= len(layout[r]) {
			return false
		}
		return layout[r][c] == engine.EmptyChar || layout[r][c] == engine.OccupiedChar
	}

	covered := func(r, c int) bool {
		for _, dir := range engine.JumpDirections {
			dr, dc := dir.DRow/2, dir.DCol/2
			// The hole as the start, the middle, or the end of a line of three.
			for offset := -2; offset <= 0; offset++ {
				line := true
				for k := 0; k < 3; k++ {
					step := offset + k
					if !isHole(r+dr*step, c+dc*step) {
						line = false
						break
					}
				}
				if line {
					return true
				}
			}
		}
		return false
	}

	holes := 0
	stranded := []string{}
	for r, row := range layout {
		for c := range row {
			if !isHole(r, c) {
				continue
			}
			holes++
			if !covered(r, c) {
				stranded = append(stranded, fmt.Sprintf("(%d,%d)", r, c))
			}
		}
	}

	if len(stranded) > 0 {
		result.fail("Coverage failure: %d/%d holes can never be part of a jump", len(stranded), holes)
		for _, pos := range stranded {
			result.Errors = append(result.Errors, fmt.Sprintf("Unreachable: hole at %s", pos))
		}
	} else {
		result.Errors = append(result.Errors, fmt.Sprintf("✓ Coverage: All %d holes can be part of a jump", holes))
	}

	return result
}

// layoutFiles lists the layout files in dir, sorted by name
func layoutFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		if !entry.IsDir() && engine.IsLayoutFile(entry.Name()) {
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}

// main scans the layouts directory for layout files and validates each one,
// printing a concise report and exiting with non-zero status if any are invalid.
func main() {
	layoutDir := "../layouts"
	if len(os.Args) > 1 {
		layoutDir = os.Args[1]
	}

	files, err := layoutFiles(layoutDir)
	if err != nil {
		fmt.Printf("Error finding layout files: %v\n", err)
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Printf("No layout files found in %s\n", layoutDir)
		os.Exit(1)
	}

	allValid := true
	for _, file := range files {
		result := validateConfig(file)

		fmt.Printf("\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Println("✅ VALID")
			for _, info := range result.Errors {
				fmt.Println("  " + info)
			}
		} else {
			fmt.Println("❌ INVALID")
			allValid = false
			for _, err := range result.Errors {
				if !strings.HasPrefix(err, "✓") {
					fmt.Println("  ❌ " + err)
				}
			}
		}
	}

	fmt.Printf("\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Println("✅ All layouts are valid!")
	} else {
		fmt.Println("❌ Some layouts have errors")
		os.Exit(1)
	}
}
