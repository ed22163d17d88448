package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/service"
)

const (
	prompt = "> "

	selectedMark    = '@'
	destinationMark = '*'
)

// Terminal plays the game line by line over a reader and a writer
type Terminal struct {
	service service.GameService
	scanner *bufio.Scanner
	out     io.Writer
	palette map[rune]*color.Color
}

// New creates a terminal adapter reading commands from in
func New(gameService service.GameService, in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		service: gameService,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// SetColor turns ANSI colours for the board and verdicts on or off
func (t *Terminal) SetColor(enabled bool) {
	if !enabled {
		t.palette = nil
		return
	}

	t.palette = map[rune]*color.Color{
		engine.OccupiedChar: color.New(color.FgYellow),
		engine.EmptyChar:    color.New(color.Faint),
		selectedMark:        color.New(color.FgGreen, color.Bold),
		destinationMark:     color.New(color.FgCyan, color.Bold),
	}
	for _, c := range t.palette {
		c.EnableColor()
	}
}

// paint colours the cells of a rendered grid
func (t *Terminal) paint(rendered string) string {
	if t.palette == nil {
		return rendered
	}

	var sb strings.Builder
	for _, ch := range rendered {
		if c, ok := t.palette[ch]; ok {
			sb.WriteString(c.Sprint(string(ch)))
			continue
		}
		sb.WriteRune(ch)
	}
	return sb.String()
}

// verdict colours the end-of-game message green for a win and red otherwise
func (t *Terminal) verdict(state *engine.GameState) string {
	if t.palette == nil || !state.GameOver {
		return state.Message
	}

	c := color.New(color.FgRed, color.Bold)
	if state.Victory {
		c = color.New(color.FgGreen, color.Bold)
	}
	c.EnableColor()
	return c.Sprint(state.Message)
}

// Run prints the board and processes commands until quit, end of input or a
// cancelled context
func (t *Terminal) Run(ctx context.Context) error {
	t.printWelcome()
	if err := t.show(ctx); err != nil {
		return err
	}

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(t.out, prompt)
		if !t.scanner.Scan() {
			fmt.Fprintln(t.out)
			return t.scanner.Err()
		}

		quit, err := t.Execute(ctx, t.scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			fmt.Fprintln(t.out, "Bye!")
			return nil
		}
	}
}

// Execute runs a single command line. It reports whether the player asked
// to quit.
func (t *Terminal) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}

	command, args := strings.ToLower(fields[0]), fields[1:]
	switch command {
	case "q", "quit", "exit":
		return true, nil
	case "help", "?":
		t.printHelp()
	case "show", "board", "s":
		return false, t.show(ctx)
	case "hint", "h":
		if len(args) != 1 {
			fmt.Fprintln(t.out, "Usage: hint row,col")
			return false, nil
		}
		return false, t.hint(ctx, args[0])
	case "jump", "j":
		return false, t.jump(ctx, strings.Join(args, " "))
	case "movable", "m":
		return false, t.movable(ctx)
	case "history":
		return false, t.history(ctx)
	case "reset", "r":
		if _, err := t.service.Reset(ctx); err != nil {
			return false, err
		}
		fmt.Fprintln(t.out, "New game.")
		return false, t.show(ctx)
	default:
		// A bare "row,col row,col" is a jump
		if _, err := engine.ParseJump(line); err == nil {
			return false, t.jump(ctx, line)
		}
		fmt.Fprintf(t.out, "Unknown command %q. Type help for the list of commands.\n", fields[0])
	}

	return false, nil
}

func (t *Terminal) show(ctx context.Context) error {
	state, err := t.service.GetGameState(ctx)
	if err != nil {
		return err
	}
	t.printState(state, nil)
	return nil
}

func (t *Terminal) hint(ctx context.Context, arg string) error {
	from, err := engine.ParsePosition(arg)
	if err != nil {
		fmt.Fprintln(t.out, err)
		return nil
	}

	hint, err := t.service.LegalJumps(ctx, from)
	if err != nil {
		return err
	}

	switch {
	case !hint.InBounds:
		fmt.Fprintf(t.out, "%s is outside the board.\n", from)
		return nil
	case hint.State != engine.Occupied.String():
		fmt.Fprintf(t.out, "There is no potato at %s.\n", from)
		return nil
	case !hint.Movable:
		fmt.Fprintf(t.out, "The potato at %s cannot jump.\n", from)
		return nil
	}

	state, err := t.service.GetGameState(ctx)
	if err != nil {
		return err
	}

	marks := map[engine.Position]rune{from: selectedMark}
	for _, dest := range hint.Destinations {
		marks[dest] = destinationMark
	}
	t.printState(state, marks)
	fmt.Fprintf(t.out, "The potato at %s can jump to: %s\n", from, joinPositions(hint.Destinations))
	return nil
}

func (t *Terminal) jump(ctx context.Context, arg string) error {
	jump, err := engine.ParseJump(arg)
	if err != nil {
		fmt.Fprintln(t.out, err)
		fmt.Fprintln(t.out, "Usage: jump row,col row,col")
		return nil
	}

	result, err := t.service.Jump(ctx, jump.From, jump.To, false)
	if err != nil {
		return err
	}

	if !result.Success {
		if result.GameState.GameOver {
			fmt.Fprintln(t.out, "The game is over. Type reset to play again.")
		} else {
			fmt.Fprintf(t.out, "Rejected: %s\n", result.Message)
		}
		return nil
	}

	t.printState(result.GameState, nil)
	if result.GameState.GameOver {
		fmt.Fprintln(t.out, "Type reset to play again or quit to exit.")
	}
	return nil
}

func (t *Terminal) movable(ctx context.Context) error {
	pieces, err := t.service.MovablePieces(ctx)
	if err != nil {
		return err
	}

	if len(pieces) == 0 {
		fmt.Fprintln(t.out, "No potato can jump.")
		return nil
	}
	fmt.Fprintf(t.out, "Movable potatoes: %s\n", joinPositions(pieces))
	return nil
}

func (t *Terminal) history(ctx context.Context) error {
	history, err := t.service.GetMoveHistory(ctx, service.HistoryOptions{Limit: 100, Order: "asc"})
	if err != nil {
		return err
	}

	if history.TotalMoves == 0 {
		fmt.Fprintln(t.out, "No jumps yet.")
		return nil
	}
	for _, move := range history.Moves {
		fmt.Fprintf(t.out, "%3d. %s over %s, %d left\n", move.MoveNumber, move.Jump, move.Middle, move.PiecesAfter)
	}
	return nil
}

func (t *Terminal) printState(state *engine.GameState, marks map[engine.Position]rune) {
	fmt.Fprintln(t.out)
	fmt.Fprint(t.out, t.paint(engine.RenderGrid(state.Grid, marks)))
	fmt.Fprintf(t.out, "\nPotatoes: %d  Movable: %d  Jumps: %d\n", state.Pieces, state.MovablePieces, state.TotalMoves)
	fmt.Fprintln(t.out, t.verdict(state))
}

func (t *Terminal) printWelcome() {
	bar := "------------------------------------------------------------"
	fmt.Fprintln(t.out, bar)
	fmt.Fprintln(t.out, "Welcome to Potato Jump!")
	fmt.Fprintln(t.out)
	fmt.Fprintln(t.out, "  Jump a potato over its neighbour into an empty hole.")
	fmt.Fprintln(t.out, "  The jumped potato is removed. Leave one potato to win.")
	fmt.Fprintln(t.out, `  Coordinates are "row,col", e.g. "jump 1,3 3,3".`)
	fmt.Fprintln(t.out, `  Type "help" for commands, "quit" to exit.`)
	fmt.Fprintln(t.out, bar)
}

func (t *Terminal) printHelp() {
	fmt.Fprintln(t.out, "Commands:")
	fmt.Fprintln(t.out, "  show                 draw the board")
	fmt.Fprintln(t.out, "  hint row,col         show where a potato can jump")
	fmt.Fprintln(t.out, "  jump row,col row,col jump a potato (the word jump is optional)")
	fmt.Fprintln(t.out, "  movable              list the potatoes that can jump")
	fmt.Fprintln(t.out, "  history              list the jumps made so far")
	fmt.Fprintln(t.out, "  reset                start over")
	fmt.Fprintln(t.out, "  quit                 exit")
}

func joinPositions(positions []engine.Position) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		parts[i] = p.String()
	}
	return strings.Join(parts, " ")
}
