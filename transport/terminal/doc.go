// Package terminal provides a line-oriented presentation of Potato Jump.
//
// The terminal adapter reads one command per line, asks the game service for
// hints and jumps, and redraws the full board after every accepted jump. When
// no potato can jump any more it prints the end-of-game message carried by
// the game state.
//
// Commands:
//   - show: draw the board
//   - hint row,col: mark the destinations of a potato
//   - jump row,col row,col (or just "row,col row,col"): jump a potato
//   - movable: list the potatoes that can jump
//   - history: list the jumps made so far
//   - reset: start a new game
//   - quit: exit
//
// Usage:
//
//	term := terminal.New(gameService, os.Stdin, os.Stdout)
//	term.SetColor(true)
//	if err := term.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package terminal
