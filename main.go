// Command potatojump plays the Potato Jump peg solitaire game.
//
// It supports four commands:
//  1. "play" (default) – interactive game in the terminal
//  2. "mcp" – serves the game as MCP tools over stdio for AI agents
//  3. "layouts" – lists the available board layouts
//  4. "schema" – prints the JSON schema of a layout file
//
// Flags select the layout directory, the layout to play and debug logging.
// Every flag can also be set from the environment or a .env file.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/invopop/jsonschema"
	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/wricardo/mcp-training/potatojump/game/config"
	"github.com/wricardo/mcp-training/potatojump/game/engine"
	"github.com/wricardo/mcp-training/potatojump/game/service"
	"github.com/wricardo/mcp-training/potatojump/game/session"
	"github.com/wricardo/mcp-training/potatojump/transport/mcp"
	"github.com/wricardo/mcp-training/potatojump/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Potato Jump"
)

const (
	defaultLayoutDir = "layouts"
	defaultLayout    = config.BuiltinName
)

// main loads the environment and runs the selected command.
func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		// Only log if it's not a "file not found" error
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newApp().Run(ctx, os.Args); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}

// newApp builds the command tree.
func newApp() *cli.Command {
	return &cli.Command{
		Name:    "potatojump",
		Usage:   "Jump potatoes until only one is left",
		Version: Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "layout-dir",
				Value:   defaultLayoutDir,
				Usage:   "Directory containing board layouts",
				Sources: cli.EnvVars("LAYOUT_DIR"),
			},
			&cli.StringFlag{
				Name:    "layout",
				Aliases: []string{"l"},
				Value:   defaultLayout,
				Usage:   "Layout to play",
				Sources: cli.EnvVars("POTATO_LAYOUT"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "Enable debug logging",
				Sources: cli.EnvVars("DEBUG"),
			},
			&cli.BoolFlag{
				Name:    "no-color",
				Usage:   "Draw the board without colours",
				Sources: cli.EnvVars("POTATO_NO_COLOR"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "Play in the terminal (default)",
				Action: runPlay,
			},
			{
				Name:   "mcp",
				Usage:  "Serve the game as MCP tools over stdio",
				Action: runMCP,
			},
			{
				Name:   "layouts",
				Usage:  "List the available board layouts",
				Action: runLayouts,
			},
			{
				Name:   "schema",
				Usage:  "Print the JSON schema of a layout file",
				Action: runSchema,
			},
		},
		Action: runPlay,
	}
}

// setupLogging configures the standard logger
func setupLogging(debug bool) {
	if debug {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	} else {
		log.SetFlags(log.LstdFlags)
	}
}

// newConfigManager opens the layout directory. A missing default directory
// falls back to the built-in layout; a missing directory the user asked for
// is an error.
func newConfigManager(cmd *cli.Command) (*config.Manager, error) {
	dir := cmd.String("layout-dir")
	if _, err := os.Stat(dir); os.IsNotExist(err) && !cmd.IsSet("layout-dir") {
		if cmd.Bool("debug") {
			log.Printf("Layout directory %s not found, using built-in layouts", dir)
		}
		dir = ""
	}

	configManager, err := config.NewManager(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to create config manager: %w", err)
	}
	return configManager, nil
}

// initializeServices wires the config manager, the session and the game service.
func initializeServices(cmd *cli.Command) (service.GameService, error) {
	configManager, err := newConfigManager(cmd)
	if err != nil {
		return nil, err
	}

	layout := cmd.String("layout")
	if err := configManager.SetDefault(layout); err != nil {
		return nil, fmt.Errorf("failed to load layout %s: %w", layout, err)
	}

	sess, err := session.New(configManager.GetDefault())
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	if cmd.Bool("debug") {
		log.Printf("Session %s playing layout %s (game %s)", sess.ID, layout, sess.GameID)
	}

	return service.NewGameService(sess, configManager), nil
}

// runPlay starts the interactive terminal game.
func runPlay(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	gameService, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	root := cmd.Root()
	var in io.Reader = os.Stdin
	if root.Reader != nil {
		in = root.Reader
	}

	out := writerOf(cmd)
	game := terminal.New(gameService, in, out)
	game.SetColor(useColor(cmd.Bool("no-color"), out))
	return game.Run(ctx)
}

// useColor reports whether the board should be drawn in colour: only when
// writing to a terminal and not turned off by flag.
func useColor(noColor bool, out io.Writer) bool {
	if noColor {
		return false
	}
	f, ok := out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runMCP serves the MCP tools over stdio. Stdout carries the protocol, so
// logs go to stderr only.
func runMCP(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))
	log.SetOutput(os.Stderr)

	log.Printf("Starting %s v%s (mode: mcp)", AppName, Version)

	gameService, err := initializeServices(cmd)
	if err != nil {
		return err
	}

	log.Println("MCP stdio server ready")
	if err := mcp.NewServer(gameService).ServeStdio(); err != nil {
		return fmt.Errorf("MCP stdio server error: %w", err)
	}
	return nil
}

// runLayouts prints one line per available layout.
func runLayouts(ctx context.Context, cmd *cli.Command) error {
	setupLogging(cmd.Bool("debug"))

	configManager, err := newConfigManager(cmd)
	if err != nil {
		return err
	}

	layouts, err := configManager.ListConfigs()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(writerOf(cmd), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE\tPOTATOES\tDESCRIPTION")
	for _, layout := range layouts {
		id := layout.ConfigID
		if layout.Builtin {
			id += " (built-in)"
		}
		fmt.Fprintf(w, "%s\t%s\t%dx%d\t%d\t%s\n", id, layout.Name, layout.Rows, layout.Cols, layout.Pieces, layout.Description)
	}
	return w.Flush()
}

// runSchema prints the JSON schema layout files are checked against.
func runSchema(ctx context.Context, cmd *cli.Command) error {
	reflector := &jsonschema.Reflector{ExpandedStruct: true}
	schema := reflector.Reflect(&engine.GameConfig{})
	schema.Title = AppName + " layout"
	schema.Description = fmt.Sprintf("Board layout: %c off board, %c empty hole, %c potato", engine.OffBoardChar, engine.EmptyChar, engine.OccupiedChar)

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}

	_, err = fmt.Fprintln(writerOf(cmd), string(data))
	return err
}

func writerOf(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}
