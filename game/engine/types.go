package engine

import "fmt"

// CellState represents the contents of a single grid cell
type CellState int

const (
	OffBoard CellState = -1
	Empty    CellState = 0
	Occupied CellState = 1
)

const (
	// Validation constants
	MinBoardSize = 3
	MaxBoardSize = 25
	MaxBulkJumps = 50

	// Layout characters
	OffBoardChar = '-'
	EmptyChar    = '.'
	OccupiedChar = 'o'
)

// String returns the text form used in JSON and messages
func (c CellState) String() string {
	switch c {
	case OffBoard:
		return "off_board"
	case Empty:
		return "empty"
	case Occupied:
		return "occupied"
	}
	return fmt.Sprintf("cell_state(%d)", int(c))
}

// Valid reports whether c is one of the three known states
func (c CellState) Valid() bool {
	return c == OffBoard || c == Empty || c == Occupied
}

// Playable reports whether the cell is part of the board
func (c CellState) Playable() bool {
	return c == Empty || c == Occupied
}

// MarshalText implements encoding.TextMarshaler
func (c CellState) MarshalText() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("invalid cell state %d", int(c))
	}
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (c *CellState) UnmarshalText(text []byte) error {
	switch string(text) {
	case "off_board":
		*c = OffBoard
	case "empty":
		*c = Empty
	case "occupied":
		*c = Occupied
	default:
		return fmt.Errorf("unknown cell state %q", string(text))
	}
	return nil
}

// Status is the session-level game status derived from the board
type Status string

const (
	Playing Status = "playing"
	Won     Status = "won"
	Lost    Status = "lost"
)

// Ended reports whether no further jumps are possible
func (s Status) Ended() bool {
	return s == Won || s == Lost
}

// Position represents row,col coordinates
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Jump is a move from one cell over an adjacent piece into an empty cell
type Jump struct {
	From Position `json:"from"`
	To   Position `json:"to"`
}

func (j Jump) String() string {
	return fmt.Sprintf("%s->%s", j.From, j.To)
}

// Direction is a two-cell displacement along one axis
type Direction struct {
	Name string
	DRow int
	DCol int
}

// JumpDirections lists the four jump displacements in the order legal
// destinations are reported: up, down, left, right.
var JumpDirections = [4]Direction{
	{Name: "up", DRow: -2, DCol: 0},
	{Name: "down", DRow: 2, DCol: 0},
	{Name: "left", DRow: 0, DCol: -2},
	{Name: "right", DRow: 0, DCol: 2},
}

// GameState is a snapshot of the game handed to presentation layers.
// Mutating it has no effect on the engine.
type GameState struct {
	Grid          [][]CellState      `json:"grid"`
	Rows          int                `json:"rows"`
	Cols          int                `json:"cols"`
	Pieces        int                `json:"pieces"`
	MovablePieces int                `json:"movable_pieces"`
	Status        Status             `json:"status"`
	GameOver      bool               `json:"game_over"`
	Victory       bool               `json:"victory"`
	Message       string             `json:"message"`
	ConfigName    string             `json:"config_name"`
	MoveHistory   []MoveHistoryEntry `json:"move_history"`
	TotalMoves    int                `json:"total_moves"`
}

// MoveHistoryEntry represents a single applied jump
type MoveHistoryEntry struct {
	Jump        Jump     `json:"jump"`
	Middle      Position `json:"middle"`
	PiecesAfter int      `json:"pieces_after"`
	Timestamp   int64    `json:"timestamp"`
	MoveNumber  int      `json:"move_number"`
}
