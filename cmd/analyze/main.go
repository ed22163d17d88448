// Command analyze prints quick, human-readable statistics about the layout
// files in the project's layouts directory. It summarizes dimensions, counts
// of holes and potatoes, the opening jumps and a parity check that tells
// whether a single potato can ever be left on the board.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

// LayoutStats holds the figures printed for one layout.
type LayoutStats struct {
	Name          string
	Rows, Cols    int
	Holes         int
	Potatoes      int
	OpeningJumps  []engine.Jump
	MovablePieces int
	// ParityClasses counts potatoes per diagonal colour class, see parityClasses.
	ParityClasses [3]int
	Solvable      bool
}

func main() {
	layoutDir := "layouts"
	if len(os.Args) > 1 {
		layoutDir = os.Args[1]
	}

	entries, err := os.ReadDir(layoutDir)
	if err != nil {
		fmt.Printf("Error finding layouts: %v\n", err)
		os.Exit(1)
	}

	for _, entry := range entries {
		if entry.IsDir() || !engine.IsLayoutFile(entry.Name()) {
			continue
		}
		fmt.Printf("\n=== Analyzing %s ===\n", entry.Name())
		analyzeLayout(os.Stdout, filepath.Join(layoutDir, entry.Name()))
	}
}

func analyzeLayout(w io.Writer, path string) {
	config, err := engine.LoadGameConfig(path)
	if err != nil {
		fmt.Fprintf(w, "Error loading layout: %v\n", err)
		return
	}

	stats, err := computeStats(config)
	if err != nil {
		fmt.Fprintf(w, "Error building board: %v\n", err)
		return
	}

	printStats(w, stats)
}

func computeStats(config *engine.GameConfig) (*LayoutStats, error) {
	game, err := engine.NewEngine(config)
	if err != nil {
		return nil, err
	}

	state := game.GetState()
	stats := &LayoutStats{
		Name:          config.Name,
		Rows:          state.Rows,
		Cols:          state.Cols,
		Holes:         engine.CountPlayableCells(state.Grid),
		Potatoes:      state.Pieces,
		MovablePieces: state.MovablePieces,
	}

	for _, from := range game.MovablePieces() {
		for _, to := range game.LegalJumpsFrom(from) {
			stats.OpeningJumps = append(stats.OpeningJumps, engine.Jump{From: from, To: to})
		}
	}

	stats.ParityClasses = parityClasses(state.Grid)
	stats.Solvable = singleSurvivorPossible(state.Grid)

	return stats, nil
}

// parityClasses colours every cell by (row+col) mod 3 and counts the potatoes
// in each colour. A jump moves one potato out of each of two classes and one
// into the third, so the parity of every pairwise difference never changes.
func parityClasses(grid [][]engine.CellState) [3]int {
	var classes [3]int
	for r, row := range grid {
		for c, cell := range row {
			if cell == engine.Occupied {
				classes[(r+c)%3]++
			}
		}
	}
	return classes
}

// singleSurvivorPossible reports whether the diagonal colourings of the grid
// allow the game to end with one potato. Both colourings, (row+col) and
// (row-col) mod 3, must be able to reach a final count of one piece in a
// single class. It is a necessary condition only.
func singleSurvivorPossible(grid [][]engine.CellState) bool {
	colourings := []func(r, c int) int{
		func(r, c int) int { return (r + c) % 3 },
		func(r, c int) int { return ((r-c)%3 + 3) % 3 },
	}

	for _, colour := range colourings {
		var classes [3]int
		for r, row := range grid {
			for c, cell := range row {
				if cell == engine.Occupied {
					classes[colour(r, c)]++
				}
			}
		}

		// The final state has counts (1,0,0) in some order, where two of the
		// three classes share parity with each other and differ from the third.
		reachable := false
		for k := 0; k < 3; k++ {
			i, j := (k+1)%3, (k+2)%3
			if (classes[i]-classes[j])%2 == 0 && (classes[k]-classes[i])%2 != 0 {
				reachable = true
			}
		}
		if !reachable {
			return false
		}
	}

	return true
}

func printStats(w io.Writer, stats *LayoutStats) {
	fmt.Fprintf(w, "Name: %s\n", stats.Name)
	fmt.Fprintf(w, "Grid: %dx%d\n", stats.Rows, stats.Cols)
	fmt.Fprintf(w, "Holes: %d\n", stats.Holes)
	fmt.Fprintf(w, "Potatoes: %d\n", stats.Potatoes)
	fmt.Fprintf(w, "Movable potatoes: %d\n", stats.MovablePieces)
	fmt.Fprintf(w, "Opening jumps: %d\n", len(stats.OpeningJumps))

	for i, jump := range stats.OpeningJumps {
		if i < 5 { // Show first 5 opening jumps
			fmt.Fprintf(w, "   %s\n", jump)
		}
	}
	if len(stats.OpeningJumps) > 5 {
		fmt.Fprintf(w, "   ... and %d more\n", len(stats.OpeningJumps)-5)
	}

	fmt.Fprintf(w, "Colour classes: %d/%d/%d\n", stats.ParityClasses[0], stats.ParityClasses[1], stats.ParityClasses[2])

	if stats.Solvable {
		fmt.Fprintf(w, "✅ Colour parity allows finishing with 1 potato\n")
	} else {
		fmt.Fprintf(w, "⚠️  WARNING: colour parity rules out finishing with 1 potato\n")
	}
}
