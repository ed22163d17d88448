package engine

import "fmt"

// Board is a fixed-size rectangular grid of cells. Its cells can only be
// changed by applyJump.
type Board struct {
	cells [][]CellState
	rows  int
	cols  int
}

// NewBoard creates a board from a grid of cell states. The grid is copied.
func NewBoard(grid [][]CellState) (*Board, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return nil, fmt.Errorf("board must have at least one row and one column")
	}

	rows, cols := len(grid), len(grid[0])
	cells := make([][]CellState, rows)
	for r, row := range grid {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d cells, expected %d", r, len(row), cols)
		}
		for c, cell := range row {
			if !cell.Valid() {
				return nil, fmt.Errorf("invalid cell state %d at (%d,%d)", int(cell), r, c)
			}
		}
		cells[r] = append([]CellState(nil), row...)
	}

	return &Board{cells: cells, rows: rows, cols: cols}, nil
}

// Rows returns the number of rows
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns
func (b *Board) Cols() int {
	return b.cols
}

// InBounds reports whether pos lies within the grid. Off-board cells are in
// bounds.
func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.rows && pos.Col >= 0 && pos.Col < b.cols
}

// Cell returns the state at pos
func (b *Board) Cell(pos Position) (CellState, error) {
	if !b.InBounds(pos) {
		return OffBoard, &OutOfBoundsError{Pos: pos, Rows: b.rows, Cols: b.cols}
	}
	return b.cells[pos.Row][pos.Col], nil
}

// at returns the state at pos, treating out-of-bounds cells as off board
func (b *Board) at(pos Position) CellState {
	if !b.InBounds(pos) {
		return OffBoard
	}
	return b.cells[pos.Row][pos.Col]
}

// Grid returns a copy of the cells
func (b *Board) Grid() [][]CellState {
	grid := make([][]CellState, b.rows)
	for r := range b.cells {
		grid[r] = append([]CellState(nil), b.cells[r]...)
	}
	return grid
}

// Clone returns an independent copy of the board
func (b *Board) Clone() *Board {
	return &Board{cells: b.Grid(), rows: b.rows, cols: b.cols}
}

// Equal reports whether both boards have identical dimensions and cells
func (b *Board) Equal(other *Board) bool {
	if other == nil || b.rows != other.rows || b.cols != other.cols {
		return false
	}
	for r := range b.cells {
		for c := range b.cells[r] {
			if b.cells[r][c] != other.cells[r][c] {
				return false
			}
		}
	}
	return true
}
