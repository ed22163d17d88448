package mcp

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cast"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/service"
)

const (
	serverName    = "Potato Jump"
	serverVersion = "1.0.0"
)

// Server exposes the game service as MCP tools
type Server struct {
	service   service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates a new MCP server playing through the given service
func NewServer(gameService service.GameService) *Server {
	s := &Server{service: gameService}
	s.initMCPServer()
	return s
}

// initMCPServer initializes the MCP server with all tools
func (s *Server) initMCPServer() {
	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Potato Jump - MCP Interface

GAME OBJECTIVE:
Jump potatoes over each other until only one potato is left.

AVAILABLE TOOLS:
- game_state: Get the current board
- legal_jumps: Where can the potato at a cell jump to
- movable_pieces: Every potato that can jump right now
- jump: Jump one potato - requires intent explanation
- bulk_jump: Several jumps at once - requires intent explanation
- reset_game: Start over with a fresh board
- move_history: View past jumps
- list_configs: List available board layouts
- describe_cell: Get detailed info about a specific cell
- game_instructions: Get the full rules

Coordinates are 0-based (row, col) with (0,0) in the top-left corner.

NOTE: The 'intent' parameter on jump/bulk_jump serves as rubber duck debugging - explain your reasoning!`),
	)

	s.registerTools()
}

func positionProperties(prefix, what string) map[string]interface{} {
	return map[string]interface{}{
		prefix + "row": map[string]interface{}{
			"type":        "integer",
			"description": fmt.Sprintf("Row of the %s (0-based)", what),
		},
		prefix + "col": map[string]interface{}{
			"type":        "integer",
			"description": fmt.Sprintf("Column of the %s (0-based)", what),
		},
	}
}

func mergeProperties(maps ...map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current board, potato count and game status",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "legal_jumps",
		Description: "List the empty holes the potato at a cell can jump into",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: positionProperties("", "potato"),
			Required:   []string{"row", "col"},
		},
	}, s.handleLegalJumps)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "movable_pieces",
		Description: "List every potato that has at least one legal jump",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleMovablePieces)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "jump",
		Description: "Jump a potato two cells over a neighbouring potato into an empty hole, removing the jumped potato",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: mergeProperties(
				positionProperties("from_", "potato to move"),
				positionProperties("to_", "empty destination hole"),
				map[string]interface{}{
					"intent": map[string]interface{}{
						"type":        "string",
						"description": "Brief explanation of the intent behind this jump (serves as a rubber duck to help explain your reasoning)",
					},
					"reset": map[string]interface{}{
						"type":        "boolean",
						"description": "Reset before jumping",
					},
				},
			),
			Required: []string{"from_row", "from_col", "to_row", "to_col"},
		},
	}, s.handleJump)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_jump",
		Description: fmt.Sprintf("Execute up to %d jumps in sequence, stopping at the first illegal jump or when the game ends", engine.MaxBulkJumps),
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"jumps": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "string",
					},
					"description": `Jumps written as "row,col row,col" (from then to), e.g. "1,3 3,3"`,
				},
				"intent": map[string]interface{}{
					"type":        "string",
					"description": "Brief explanation of the intent behind this sequence of jumps (serves as a rubber duck to help explain your reasoning)",
				},
				"reset": map[string]interface{}{
					"type":        "boolean",
					"description": "Reset before jumping",
				},
			},
			Required: []string{"jumps"},
		},
	}, s.handleBulkJump)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Reset the board to its starting layout",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the jumps made in the current game",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"page": map[string]interface{}{
					"type":        "integer",
					"description": "Page number",
				},
				"limit": map[string]interface{}{
					"type":        "integer",
					"description": "Items per page",
				},
				"order": map[string]interface{}{
					"type":        "string",
					"enum":        []string{"asc", "desc"},
					"description": "asc for oldest first, desc for newest first (default)",
				},
			},
		},
	}, s.handleMoveHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_configs",
		Description: "List available board layouts",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListConfigs)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get detailed information about a specific cell: whether it is part of the board, holds a potato, and where that potato can jump",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: positionProperties("", "cell"),
			Required:   []string{"row", "col"},
		},
	}, s.handleDescribeCell)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get comprehensive game instructions and rules",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves the tools over stdin and stdout until the client
// disconnects
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

// Argument helpers

// intArg reads an integer argument. JSON numbers arrive as float64; clients
// that quote their numbers are accepted too.
func intArg(args map[string]interface{}, key string) (int, error) {
	raw, ok := args[key]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument: %s", key)
	}
	if f, isFloat := raw.(float64); isFloat && f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be a whole number, got %v", key, f)
	}

	// Quoted numbers are read as plain decimal, so "010" is ten
	if s, isString := raw.(string); isString {
		v, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			return 0, fmt.Errorf("%s must be an integer, got %q", key, s)
		}
		return v, nil
	}
	v, err := cast.ToIntE(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer, got %v", key, raw)
	}
	return v, nil
}

func positionArg(args map[string]interface{}, prefix string) (engine.Position, error) {
	row, err := intArg(args, prefix+"row")
	if err != nil {
		return engine.Position{}, err
	}
	col, err := intArg(args, prefix+"col")
	if err != nil {
		return engine.Position{}, err
	}
	return engine.Position{Row: row, Col: col}, nil
}

// Tool handlers

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.service.GetGameState(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleLegalJumps(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	from, err := positionArg(request.GetArguments(), "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hint, err := s.service.LegalJumps(ctx, from)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHint(hint)), nil
}

func (s *Server) handleMovablePieces(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pieces, err := s.service.MovablePieces(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(pieces) == 0 {
		return mcp.NewToolResultText("No potato can jump. The game is over."), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Movable potatoes (%d): %s", len(pieces), formatPositions(pieces))), nil
}

func (s *Server) handleJump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	reset := cast.ToBool(args["reset"])

	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	from, err := positionArg(args, "from_")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	to, err := positionArg(args, "to_")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := s.service.Jump(ctx, from, to, reset)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !result.Success {
		return mcp.NewToolResultError(formatJumpResult(result)), nil
	}
	return mcp.NewToolResultText(formatJumpResult(result)), nil
}

func (s *Server) handleBulkJump(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	jumpsRaw, _ := args["jumps"].([]interface{})
	reset := cast.ToBool(args["reset"])

	intent, _ := args["intent"].(string)

	// Intent parameter serves as rubber duck debugging - we don't need to process it further
	_ = intent

	if len(jumpsRaw) == 0 {
		return mcp.NewToolResultError("jumps must be a non-empty array"), nil
	}

	jumps := make([]engine.Jump, 0, len(jumpsRaw))
	for i, raw := range jumpsRaw {
		text, ok := raw.(string)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("jump %d must be a string", i+1)), nil
		}
		jump, err := engine.ParseJump(text)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("jump %d: %v", i+1, err)), nil
		}
		jumps = append(jumps, jump)
	}

	result, err := s.service.BulkJump(ctx, jumps, reset)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if result.StopReasonCode == service.StopIllegalJump {
		return mcp.NewToolResultError(formatBulkJumpResult(result)), nil
	}
	return mcp.NewToolResultText(formatBulkJumpResult(result)), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.service.Reset(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText("Game reset to initial state\n\n" + formatGameState(state)), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()

	opts := service.HistoryOptions{
		Page:  cast.ToInt(args["page"]),
		Limit: cast.ToInt(args["limit"]),
		Order: cast.ToString(args["order"]),
	}

	history, err := s.service.GetMoveHistory(ctx, opts)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatHistory(history)), nil
}

func (s *Server) handleListConfigs(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	configs, err := s.service.ListConfigs(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	b.WriteString("Available Layouts:\n\n")
	for _, config := range configs {
		fmt.Fprintf(&b, "• %s (%s)\n  %s\n  Grid: %dx%d, Potatoes: %d, Holes: %d\n\n",
			config.ConfigID, config.Name, config.Description,
			config.Rows, config.Cols, config.Pieces, config.PlayableCells)
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	pos, err := positionArg(request.GetArguments(), "")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	hint, err := s.service.LegalJumps(ctx, pos)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if !hint.InBounds {
		state, err := s.service.GetGameState(ctx)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates %s are out of bounds. Grid is %dx%d (rows 0-%d, cols 0-%d)",
			pos, state.Rows, state.Cols, state.Rows-1, state.Cols-1)), nil
	}

	return mcp.NewToolResultText(formatCellDescription(hint)), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultText(instructions), nil
}

const instructions = `🥔 Potato Jump - Complete Instructions

GAME OBJECTIVE:
Remove potatoes by jumping them over each other until exactly one potato is left.

THE BOARD:
• o - a hole holding a potato
• . - an empty hole
• (blank) - not part of the board; nothing can ever move there
The classic board is a 7x7 cross with 33 holes. Every hole starts with a
potato except the centre one (3,3).

HOW TO JUMP:
• Pick a potato and an empty hole exactly two cells away in a straight line
  (up, down, left or right - never diagonal)
• The cell in between must hold a potato
• The jumping potato lands in the empty hole and the jumped potato is removed
• Every jump removes exactly one potato

END OF THE GAME:
The game ends as soon as no potato can jump.
• One potato left: "You have won! You have 1 potato left."
• More than one: "Game Over! You have N potatoes left."
Only reset_game starts a new board after the game has ended.

🤖 AI AGENTS - STRATEGY:
- Use movable_pieces before every decision; it lists exactly the potatoes you may pick
- Use legal_jumps on a potato to see its destinations instead of guessing
- Avoid stranding single potatoes in the arms of the cross; they can never be reached again
- Clear one arm at a time and bring play back towards the centre
- Use bulk_jump for planned sequences; it stops at the first illegal jump and leaves the board as of that point

COORDINATES:
Positions are 0-based (row, col). Row 0 is the top, column 0 is the left.`
