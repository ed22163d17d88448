package mcp

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/service"
)

// Formatting helpers

func formatPositions(positions []engine.Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}

func formatGameState(state *engine.GameState) string {
	if state == nil {
		return "No game state available"
	}

	var result strings.Builder

	result.WriteString(fmt.Sprintf("Layout: %s | Potatoes: %d | Movable: %d | Jumps: %d\n\n",
		state.ConfigName, state.Pieces, state.MovablePieces, state.TotalMoves))

	result.WriteString(engine.RenderGrid(state.Grid, nil))

	if state.GameOver {
		if state.Victory {
			result.WriteString("\n🎉 VICTORY!")
		} else {
			result.WriteString("\n💀 GAME OVER")
		}
	}

	if state.Message != "" {
		result.WriteString(fmt.Sprintf("\nMessage: %s", state.Message))
	}

	return result.String()
}

func formatHint(hint *service.HintResult) string {
	if !hint.InBounds {
		return fmt.Sprintf("%s is outside the board. No jumps.", hint.Position)
	}
	if len(hint.Destinations) == 0 {
		return fmt.Sprintf("%s (%s) cannot jump.", hint.Position, hint.State)
	}
	return fmt.Sprintf("%s can jump to: %s", hint.Position, formatPositions(hint.Destinations))
}

func formatCellDescription(hint *service.HintResult) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Cell %s\n", hint.Position)
	switch hint.State {
	case engine.OffBoard.String():
		b.WriteString("Type: off board\nNot part of the board. Nothing can ever jump here.\n")
	case engine.Empty.String():
		b.WriteString("Type: empty hole\nA potato two cells away can jump here over a neighbouring potato.\n")
	case engine.Occupied.String():
		b.WriteString("Type: potato\n")
		if hint.Movable {
			fmt.Fprintf(&b, "Can jump to: %s\n", formatPositions(hint.Destinations))
		} else {
			b.WriteString("Cannot jump right now.\n")
		}
	}

	return b.String()
}

func formatJumpResult(result *service.JumpResult) string {
	response := ""
	if result.Success {
		response = "✓ Jump successful\n"
	} else {
		response = "✗ Jump rejected\n"
		if result.Reason != "" {
			response += fmt.Sprintf("Reason: %s\n", result.Reason)
		}
	}

	if result.Step != nil {
		s := result.Step
		response += fmt.Sprintf("Step %d: %s over %s, %d potatoes left\n",
			s.MoveNumber, s.Jump, s.Middle, s.PiecesAfter)
	}

	if len(result.Events) > 0 {
		response += "Events:\n"
		for _, event := range result.Events {
			response += fmt.Sprintf("- %s: %s\n", event.Type, event.Message)
		}
	}

	if !result.Success && result.Message != "" {
		response += fmt.Sprintf("Error: %s\n", result.Message)
	}

	response += "\n" + formatGameState(result.GameState)
	return response
}

func formatBulkJumpResult(result *service.BulkJumpResult) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Executed %d/%d jumps (potatoes %d → %d)\n",
		result.JumpsExecuted, result.RequestedJumps, result.StartPieces, result.EndPieces))
	if result.Truncated {
		b.WriteString(fmt.Sprintf("Truncated to the first %d jumps\n", result.Limit))
	}
	if result.StoppedReason != "" {
		b.WriteString(fmt.Sprintf("Stopped: %s\n", result.StoppedReason))
	}
	if result.StopReasonCode != "" {
		b.WriteString(fmt.Sprintf("Stop code: %s\n", result.StopReasonCode))
	}

	if len(result.Steps) > 0 {
		b.WriteString("\nSteps (this call):\n")
		for _, s := range result.Steps {
			b.WriteString(fmt.Sprintf("%d. %s over %s → %d left\n", s.MoveNumber, s.Jump, s.Middle, s.PiecesAfter))
		}
	}

	if len(result.Events) > 0 {
		b.WriteString("\nEvents:\n")
		for _, event := range result.Events {
			b.WriteString(fmt.Sprintf("- %s: %s\n", event.Type, event.Message))
		}
	}

	if len(result.MovablePieces) > 0 {
		b.WriteString("\nMovable potatoes: ")
		b.WriteString(formatPositions(result.MovablePieces))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(formatGameState(result.GameState))
	return b.String()
}

func formatHistory(history *service.HistoryResponse) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Jump History (page %d/%d, %d total):\n", history.Page, history.TotalPages, history.TotalMoves))
	if len(history.Moves) == 0 {
		b.WriteString("No jumps yet.\n")
	}
	for _, move := range history.Moves {
		b.WriteString(fmt.Sprintf("%d. %s over %s → %d left\n", move.MoveNumber, move.Jump, move.Middle, move.PiecesAfter))
	}

	return b.String()
}
