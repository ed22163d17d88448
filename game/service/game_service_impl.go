package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/session"
)

// ErrNoSession is returned when the service was built without a session
var ErrNoSession = errors.New("no game session")

// gameServiceImpl implements the GameService interface. The mutex serializes
// every use of the session, whose engine is not safe for concurrent use.
type gameServiceImpl struct {
	session *session.Session
	configs ConfigManager
	mu      sync.Mutex
}

// NewGameService creates a new game service around the session
func NewGameService(sess *session.Session, configs ConfigManager) GameService {
	return &gameServiceImpl{
		session: sess,
		configs: configs,
	}
}

// lock acquires the session, failing fast on a cancelled context
func (s *gameServiceImpl) lock(ctx context.Context) (*session.Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.session == nil {
		return nil, ErrNoSession
	}
	s.mu.Lock()
	s.session.Touch()
	return s.session, nil
}

// getConfigID returns the config_id for a given layout display name
func (s *gameServiceImpl) getConfigID(configName string) string {
	if s.configs != nil {
		if availableConfigs, err := s.configs.ListConfigs(); err == nil {
			for _, cfg := range availableConfigs {
				if cfg.Name == configName {
					return cfg.ConfigID
				}
			}
		}
	}
	return configName
}

// GetSession retrieves session information
func (s *gameServiceImpl) GetSession(ctx context.Context) (*SessionInfo, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return &SessionInfo{
		ID:             sess.ID,
		GameID:         sess.GameID,
		ConfigName:     s.getConfigID(sess.Config.Name),
		CreatedAt:      sess.CreatedAt,
		LastAccessedAt: sess.LastAccessedAt,
		GamesPlayed:    sess.GamesPlayed,
		GameState:      sess.State(),
		GameConfig:     sess.Config,
	}, nil
}

// GetGameState retrieves the current game state
func (s *gameServiceImpl) GetGameState(ctx context.Context) (*engine.GameState, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return sess.State(), nil
}

// LegalJumps describes the cell at from and where its potato may jump.
// Positions off the grid yield an empty result rather than an error.
func (s *gameServiceImpl) LegalJumps(ctx context.Context, from engine.Position) (*HintResult, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	result := &HintResult{
		Position:     from,
		Destinations: sess.Engine.LegalJumpsFrom(from),
	}
	if cell, err := sess.Engine.Cell(from); err == nil {
		result.InBounds = true
		result.State = cell.String()
	}
	result.Movable = len(result.Destinations) > 0

	return result, nil
}

// MovablePieces lists every potato that can jump, in row-major order
func (s *gameServiceImpl) MovablePieces(ctx context.Context) ([]engine.Position, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return sess.Engine.MovablePieces(), nil
}

// Jump executes a single jump. A rejected jump is reported through the
// result, not the error.
func (s *gameServiceImpl) Jump(ctx context.Context, from, to engine.Position, reset bool) (*JumpResult, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	events := []GameEvent{}
	if reset {
		sess.Reset()
		events = append(events, resetEvent())
	}

	if sess.Engine.IsGameOver() {
		state := sess.State()
		return &JumpResult{
			Success:   false,
			GameState: state,
			Message:   state.Message,
			Events:    events,
		}, nil
	}

	if err := sess.Engine.ApplyJump(from, to); err != nil {
		var illegal *engine.IllegalMoveError
		if !errors.As(err, &illegal) {
			return nil, fmt.Errorf("jump failed: %w", err)
		}
		return &JumpResult{
			Success:   false,
			GameState: sess.State(),
			Message:   err.Error(),
			Events:    events,
			Reason:    illegal.Reason,
		}, nil
	}

	state := sess.State()
	return &JumpResult{
		Success:   true,
		GameState: state,
		Message:   state.Message,
		Events:    append(events, jumpEvents(sess.Engine, state)...),
		Step:      sess.Engine.GetLastMove(),
	}, nil
}

// BulkJump executes jumps in order, stopping at the first rejected jump or
// when the game ends
func (s *gameServiceImpl) BulkJump(ctx context.Context, jumps []engine.Jump, reset bool) (*BulkJumpResult, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	result := &BulkJumpResult{
		RequestedJumps: len(jumps),
		Events:         make([]GameEvent, 0),
		Success:        true,
	}

	if reset {
		sess.Reset()
		result.Events = append(result.Events, resetEvent())
	}
	result.StartPieces = sess.Engine.CountPieces()

	// Limit jumps to prevent abuse
	if len(jumps) > engine.MaxBulkJumps {
		result.Truncated = true
		result.Limit = engine.MaxBulkJumps
		jumps = jumps[:engine.MaxBulkJumps]
	}

	for i, jump := range jumps {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if sess.Engine.IsGameOver() {
			result.StoppedReason = "game is already over"
			result.StopReasonCode = StopGameOver
			result.StoppedOnJump = i + 1
			break
		}

		if err := sess.Engine.ApplyJump(jump.From, jump.To); err != nil {
			var illegal *engine.IllegalMoveError
			if !errors.As(err, &illegal) {
				return nil, fmt.Errorf("jump %d failed: %w", i+1, err)
			}
			rejected := jump
			result.Success = false
			result.StoppedReason = fmt.Sprintf("jump %d rejected: %v", i+1, err)
			result.StopReasonCode = StopIllegalJump
			result.StoppedOnJump = i + 1
			result.Rejected = &rejected
			result.Reason = illegal.Reason
			break
		}

		result.JumpsExecuted++
		result.Steps = append(result.Steps, *sess.Engine.GetLastMove())
		result.Events = append(result.Events, jumpEvents(sess.Engine, sess.State())...)
	}

	endState := sess.State()
	result.GameState = endState
	result.EndPieces = endState.Pieces
	result.GameOver = endState.GameOver
	result.Victory = endState.Victory
	result.Message = endState.Message
	result.MovablePieces = sess.Engine.MovablePieces()

	if result.GameOver && result.StopReasonCode == "" {
		if result.Victory {
			result.StopReasonCode = StopVictory
		} else {
			result.StopReasonCode = StopStranded
		}
	}

	return result, nil
}

// Reset recreates the board and starts a new game
func (s *gameServiceImpl) Reset(ctx context.Context) (*engine.GameState, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	defer s.mu.Unlock()

	return sess.Reset(), nil
}

// GetMoveHistory returns paginated move history
func (s *gameServiceImpl) GetMoveHistory(ctx context.Context, opts HistoryOptions) (*HistoryResponse, error) {
	sess, err := s.lock(ctx)
	if err != nil {
		return nil, err
	}
	history := sess.Engine.GetMoveHistory()
	s.mu.Unlock()

	return paginate(history, opts), nil
}

func paginate(history []engine.MoveHistoryEntry, opts HistoryOptions) *HistoryResponse {
	total := len(history)

	// Apply defaults
	if opts.Page < 1 {
		opts.Page = 1
	}
	if opts.Limit <= 0 {
		opts.Limit = 20
	}
	if opts.Limit > 100 {
		opts.Limit = 100
	}
	if opts.Order != "asc" {
		opts.Order = "desc"
	}

	totalPages := (total + opts.Limit - 1) / opts.Limit
	if totalPages == 0 {
		totalPages = 1
	}

	start := (opts.Page - 1) * opts.Limit
	end := start + opts.Limit
	if end > total {
		end = total
	}

	moves := []engine.MoveHistoryEntry{}
	if start < total {
		if opts.Order == "desc" {
			// Most recent first
			for i := total - 1 - start; i >= total-end; i-- {
				moves = append(moves, history[i])
			}
		} else {
			moves = append(moves, history[start:end]...)
		}
	}

	return &HistoryResponse{
		Moves:       moves,
		TotalMoves:  total,
		Page:        opts.Page,
		PageSize:    opts.Limit,
		TotalPages:  totalPages,
		HasNext:     opts.Page < totalPages,
		HasPrevious: opts.Page > 1,
	}
}

// ListConfigs returns the available layouts
func (s *gameServiceImpl) ListConfigs(ctx context.Context) ([]*ConfigInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s.configs == nil {
		return []*ConfigInfo{}, nil
	}
	return s.configs.ListConfigs()
}

// jumpEvents generates the events for the jump just applied
func jumpEvents(eng *engine.GameEngine, state *engine.GameState) []GameEvent {
	events := []GameEvent{}
	now := time.Now()

	if last := eng.GetLastMove(); last != nil {
		to := last.Jump.To
		events = append(events, GameEvent{
			Type:      EventJump,
			Message:   fmt.Sprintf("Jumped %s over %s to %s", last.Jump.From, last.Middle, to),
			Timestamp: now,
			Position:  &to,
		})
	}

	switch state.Status {
	case engine.Won:
		events = append(events, GameEvent{Type: EventGameWon, Message: state.Message, Timestamp: now})
	case engine.Lost:
		events = append(events, GameEvent{Type: EventGameLost, Message: state.Message, Timestamp: now})
	}

	return events
}

func resetEvent() GameEvent {
	return GameEvent{
		Type:      EventReset,
		Message:   "Game reset to initial state",
		Timestamp: time.Now(),
	}
}
