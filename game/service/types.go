package service

import (
	"time"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

// Event types reported by jump operations
const (
	EventJump     = "jump"
	EventGameWon  = "game_won"
	EventGameLost = "game_lost"
	EventReset    = "reset"
)

// Stop reason codes for bulk jumps
const (
	StopIllegalJump = "illegal_jump"
	StopGameOver    = "game_over"
	StopVictory     = "victory"
	StopStranded    = "stranded"
)

// SessionInfo provides information about the game session
type SessionInfo struct {
	ID             string             `json:"id"`
	GameID         string             `json:"game_id"`
	ConfigName     string             `json:"config_name"`
	CreatedAt      time.Time          `json:"created_at"`
	LastAccessedAt time.Time          `json:"last_accessed_at"`
	GamesPlayed    int                `json:"games_played"`
	GameState      *engine.GameState  `json:"game_state"`
	GameConfig     *engine.GameConfig `json:"game_config"`
}

// JumpResult contains the result of a single jump
type JumpResult struct {
	Success   bool                     `json:"success"`
	GameState *engine.GameState        `json:"game_state"`
	Message   string                   `json:"message"`
	Events    []GameEvent              `json:"events,omitempty"`
	Step      *engine.MoveHistoryEntry `json:"step,omitempty"`
	Reason    engine.Rejection         `json:"reason,omitempty"`
}

// BulkJumpResult contains the result of a sequence of jumps
type BulkJumpResult struct {
	// Summary
	JumpsExecuted  int               `json:"jumps_executed"`
	RequestedJumps int               `json:"requested_jumps"`
	Success        bool              `json:"success"`
	GameState      *engine.GameState `json:"game_state"`
	Events         []GameEvent       `json:"events"`
	StoppedReason  string            `json:"stopped_reason,omitempty"`
	StopReasonCode string            `json:"stop_reason_code,omitempty"` // illegal_jump|game_over|victory|stranded
	StoppedOnJump  int               `json:"stopped_on_jump,omitempty"`  // 1-based index of the jump that caused the stop
	Truncated      bool              `json:"truncated,omitempty"`
	Limit          int               `json:"limit,omitempty"`

	// Start/end snapshot
	StartPieces int `json:"start_pieces"`
	EndPieces   int `json:"end_pieces"`

	// Per-jump trace (only for this call)
	Steps []engine.MoveHistoryEntry `json:"steps,omitempty"`

	// Failure diagnostics
	Rejected *engine.Jump     `json:"rejected,omitempty"`
	Reason   engine.Rejection `json:"reason,omitempty"`

	// Final status aids
	GameOver      bool              `json:"game_over"`
	Victory       bool              `json:"victory"`
	Message       string            `json:"message,omitempty"`
	MovablePieces []engine.Position `json:"movable_pieces,omitempty"`
}

// HintResult describes a cell and the jumps available from it
type HintResult struct {
	Position     engine.Position   `json:"position"`
	InBounds     bool              `json:"in_bounds"`
	State        string            `json:"state,omitempty"`
	Movable      bool              `json:"movable"`
	Destinations []engine.Position `json:"destinations"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string           `json:"type"` // "jump", "game_won", "game_lost", "reset"
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
	Position  *engine.Position `json:"position,omitempty"`
}

// HistoryOptions configures move history retrieval
type HistoryOptions struct {
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Order string `json:"order"` // "asc" or "desc"
}

// HistoryResponse contains paginated move history
type HistoryResponse struct {
	Moves       []engine.MoveHistoryEntry `json:"moves"`
	TotalMoves  int                       `json:"total_moves"`
	Page        int                       `json:"page"`
	PageSize    int                       `json:"page_size"`
	TotalPages  int                       `json:"total_pages"`
	HasNext     bool                      `json:"has_next"`
	HasPrevious bool                      `json:"has_previous"`
}

// ConfigInfo provides information about a layout
type ConfigInfo struct {
	Filename      string `json:"filename,omitempty"`
	ConfigID      string `json:"config_id"` // The identifier to pass as --layout
	Name          string `json:"name"`      // Display name
	Description   string `json:"description"`
	Rows          int    `json:"rows"`
	Cols          int    `json:"cols"`
	PlayableCells int    `json:"playable_cells"`
	Pieces        int    `json:"pieces"`
	Builtin       bool   `json:"builtin"`
}
