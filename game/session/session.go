package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
)

var ErrNoConfig = errors.New("session requires a layout")

// Session owns the one board being played together with its identity.
// Reset recreates the board and starts a new game under the same session.
type Session struct {
	ID             string
	GameID         string
	Engine         *engine.GameEngine
	Config         *engine.GameConfig
	CreatedAt      time.Time
	LastAccessedAt time.Time
	GamesPlayed    int
}

// New creates a session playing the given layout
func New(config *engine.GameConfig) (*Session, error) {
	if config == nil {
		return nil, ErrNoConfig
	}

	eng, err := engine.NewEngine(config)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	now := time.Now()
	return &Session{
		ID:             uuid.NewString(),
		GameID:         uuid.NewString(),
		Engine:         eng,
		Config:         config,
		CreatedAt:      now,
		LastAccessedAt: now,
		GamesPlayed:    1,
	}, nil
}

// Reset throws away the current board and starts a fresh game
func (s *Session) Reset() *engine.GameState {
	s.GameID = uuid.NewString()
	s.GamesPlayed++
	s.Touch()
	return s.Engine.Reset()
}

// Touch records an access
func (s *Session) Touch() {
	s.LastAccessedAt = time.Now()
}

// State returns the current snapshot
func (s *Session) State() *engine.GameState {
	return s.Engine.GetState()
}
