package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Board queries
	InBounds(pos Position) bool
	Cell(pos Position) (CellState, error)
	LegalJumpsFrom(pos Position) []Position
	IsLegalJump(origin, dest Position) bool
	HasAnyLegalMove(pos Position) bool
	MovablePieces() []Position
	CountLegalMovesRemaining() int
	CountPieces() int

	// The only mutating board operation
	ApplyJump(origin, dest Position) error

	// Game state management
	Status() Status
	GetState() *GameState
	Reset() *GameState

	// Configuration
	GetConfig() *GameConfig

	// History
	GetMoveHistory() []MoveHistoryEntry
	GetLastMove() *MoveHistoryEntry
}

var _ Engine = (*GameEngine)(nil)

// GameEngine implements the Engine interface. It is not safe for concurrent
// use; callers sharing an engine must serialize access to it.
type GameEngine struct {
	board   *Board
	initial *Board
	config  *GameConfig
	history []MoveHistoryEntry
	message string
}

// NewEngine creates a new game engine with the provided configuration
func NewEngine(config *GameConfig) (*GameEngine, error) {
	board, err := NewBoardFromConfig(config)
	if err != nil {
		return nil, err
	}

	return newGameEngine(board, config), nil
}

func newGameEngine(board *Board, config *GameConfig) *GameEngine {
	return &GameEngine{
		board:   board,
		initial: board.Clone(),
		config:  config,
		history: []MoveHistoryEntry{},
		message: welcomeMessage(config),
	}
}

// NewEngineWithDefaults creates a new game engine on the classic board
func NewEngineWithDefaults() *GameEngine {
	engine, err := NewEngine(DefaultConfig())
	if err != nil {
		panic(fmt.Sprintf("default config is invalid: %v", err))
	}
	return engine
}

// NewEngineFromGrid creates an engine for an arbitrary grid of cell states
func NewEngineFromGrid(name string, grid [][]CellState) (*GameEngine, error) {
	board, err := NewBoard(grid)
	if err != nil {
		return nil, err
	}

	return newGameEngine(board, &GameConfig{Name: name, Description: "custom grid"}), nil
}

func welcomeMessage(config *GameConfig) string {
	if config != nil && config.Welcome != "" {
		return config.Welcome
	}
	return defaultWelcome
}

// InBounds reports whether pos is within the grid
func (e *GameEngine) InBounds(pos Position) bool {
	return e.board.InBounds(pos)
}

// Cell returns the state of the cell at pos
func (e *GameEngine) Cell(pos Position) (CellState, error) {
	return e.board.Cell(pos)
}

// LegalJumpsFrom returns the destinations the piece at pos can jump to
func (e *GameEngine) LegalJumpsFrom(pos Position) []Position {
	return e.board.LegalJumpsFrom(pos)
}

// IsLegalJump reports whether origin may jump to dest
func (e *GameEngine) IsLegalJump(origin, dest Position) bool {
	return e.board.IsLegalJump(origin, dest)
}

// HasAnyLegalMove reports whether the piece at pos may start a jump
func (e *GameEngine) HasAnyLegalMove(pos Position) bool {
	return e.board.HasAnyLegalMove(pos)
}

// MovablePieces returns every piece that may start a jump
func (e *GameEngine) MovablePieces() []Position {
	return e.board.MovablePieces()
}

// CountLegalMovesRemaining counts the pieces that can still jump
func (e *GameEngine) CountLegalMovesRemaining() int {
	return e.board.CountLegalMovesRemaining()
}

// CountPieces counts the potatoes on the board
func (e *GameEngine) CountPieces() int {
	return e.board.CountPieces()
}

// ApplyJump jumps the piece at origin to dest, removing the piece between
// them. An illegal jump returns *IllegalMoveError and leaves the board as it
// was.
func (e *GameEngine) ApplyJump(origin, dest Position) error {
	middle, err := e.board.applyJump(origin, dest)
	if err != nil {
		return err
	}

	pieces := e.board.CountPieces()
	e.history = append(e.history, MoveHistoryEntry{
		Jump:        Jump{From: origin, To: dest},
		Middle:      middle,
		PiecesAfter: pieces,
		Timestamp:   time.Now().Unix(),
		MoveNumber:  len(e.history) + 1,
	})

	if status := e.board.Status(); status.Ended() {
		e.message = GameOverMessage(pieces)
	} else {
		e.message = fmt.Sprintf("Jumped %s over %s to %s. %d potatoes left.", origin, middle, dest, pieces)
	}

	return nil
}

// Status returns whether the game is still being played, won or lost
func (e *GameEngine) Status() Status {
	return e.board.Status()
}

// IsGameOver returns whether no jumps remain
func (e *GameEngine) IsGameOver() bool {
	return e.Status().Ended()
}

// IsVictory returns whether the player has won
func (e *GameEngine) IsVictory() bool {
	return e.Status() == Won
}

// GetState returns a snapshot of the current game
func (e *GameEngine) GetState() *GameState {
	status := e.board.Status()
	message := e.message
	if status.Ended() {
		message = GameOverMessage(e.board.CountPieces())
	}

	return &GameState{
		Grid:          e.board.Grid(),
		Rows:          e.board.Rows(),
		Cols:          e.board.Cols(),
		Pieces:        e.board.CountPieces(),
		MovablePieces: e.board.CountLegalMovesRemaining(),
		Status:        status,
		GameOver:      status.Ended(),
		Victory:       status == Won,
		Message:       message,
		ConfigName:    e.config.Name,
		MoveHistory:   e.GetMoveHistory(),
		TotalMoves:    len(e.history),
	}
}

// Reset recreates the starting board and clears the history
func (e *GameEngine) Reset() *GameState {
	e.board = e.initial.Clone()
	e.history = []MoveHistoryEntry{}
	e.message = welcomeMessage(e.config)
	return e.GetState()
}

// GetConfig returns the current layout configuration
func (e *GameEngine) GetConfig() *GameConfig {
	return e.config
}

// GetMoveHistory returns a copy of the applied jumps
func (e *GameEngine) GetMoveHistory() []MoveHistoryEntry {
	return append([]MoveHistoryEntry{}, e.history...)
}

// GetLastMove returns the last jump made, or nil if no jumps
func (e *GameEngine) GetLastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	last := e.history[len(e.history)-1]
	return &last
}

// Board returns a copy of the current board
func (e *GameEngine) Board() *Board {
	return e.board.Clone()
}
