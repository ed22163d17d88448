package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// CountCellState counts the cells of a specific state in the grid
func CountCellState(grid [][]CellState, state CellState) int {
	count := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell == state {
				count++
			}
		}
	}
	return count
}

// CountPlayableCells counts the cells that are part of the board
func CountPlayableCells(grid [][]CellState) int {
	return CountCellState(grid, Empty) + CountCellState(grid, Occupied)
}

// GameOverMessage builds the end-of-game text for the number of pieces left.
// Only a count of exactly one is singular.
func GameOverMessage(pieces int) string {
	if pieces == 1 {
		return "You have won! You have 1 potato left."
	}
	return fmt.Sprintf("Game Over! You have %d potatoes left.", pieces)
}

// RenderGrid draws the grid as text with row and column indices. Cells listed
// in marks are drawn with the given rune instead of their state.
func RenderGrid(grid [][]CellState, marks map[Position]rune) string {
	var sb strings.Builder

	cols := 0
	if len(grid) > 0 {
		cols = len(grid[0])
	}

	sb.WriteString("   ")
	for c := 0; c < cols; c++ {
		fmt.Fprintf(&sb, "%2d", c)
	}
	sb.WriteString("\n")

	for r, row := range grid {
		fmt.Fprintf(&sb, "%2d ", r)
		for c, cell := range row {
			ch, ok := marks[Position{Row: r, Col: c}]
			if !ok {
				ch = cellRune(cell)
			}
			sb.WriteString(" ")
			sb.WriteRune(ch)
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

func cellRune(cell CellState) rune {
	switch cell {
	case Empty:
		return EmptyChar
	case Occupied:
		return OccupiedChar
	}
	return ' '
}

// ParsePosition reads a position written as "row,col", with optional
// parentheses, as produced by Position.String
func ParsePosition(s string) (Position, error) {
	trimmed := strings.TrimSpace(s)
	trimmed = strings.TrimSuffix(strings.TrimPrefix(trimmed, "("), ")")

	parts := strings.Split(trimmed, ",")
	if len(parts) != 2 {
		return Position{}, fmt.Errorf("invalid position %q: expected row,col", s)
	}

	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid row in %q: %w", s, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return Position{}, fmt.Errorf("invalid column in %q: %w", s, err)
	}

	return Position{Row: row, Col: col}, nil
}

// ParseJump reads a jump written as "row,col row,col" or "(row,col)->(row,col)"
func ParseJump(s string) (Jump, error) {
	fields := strings.Fields(strings.ReplaceAll(s, "->", " "))
	if len(fields) != 2 {
		return Jump{}, fmt.Errorf("invalid jump %q: expected two positions", s)
	}

	from, err := ParsePosition(fields[0])
	if err != nil {
		return Jump{}, err
	}
	to, err := ParsePosition(fields[1])
	if err != nil {
		return Jump{}, err
	}

	return Jump{From: from, To: to}, nil
}
