package service

import (
	"context"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

// GameService defines all game-related operations
type GameService interface {
	// Session
	GetSession(ctx context.Context) (*SessionInfo, error)

	// Queries
	GetGameState(ctx context.Context) (*engine.GameState, error)
	LegalJumps(ctx context.Context, from engine.Position) (*HintResult, error)
	MovablePieces(ctx context.Context) ([]engine.Position, error)
	GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error)

	// Game Operations
	Jump(ctx context.Context, from, to engine.Position, reset bool) (*JumpResult, error)
	BulkJump(ctx context.Context, jumps []engine.Jump, reset bool) (*BulkJumpResult, error)
	Reset(ctx context.Context) (*engine.GameState, error)

	// Configuration
	ListConfigs(ctx context.Context) ([]*ConfigInfo, error)
}

// ConfigManager handles layout loading
type ConfigManager interface {
	LoadConfig(name string) (*engine.GameConfig, error)
	ListConfigs() ([]*ConfigInfo, error)
	GetDefault() *engine.GameConfig
	SaveConfig(name string, config *engine.GameConfig) error
}
