// mines is Minesweeper for the terminal.
//
// Usage:
//
//	mines list               - List available boards
//	mines play [board]       - Play a board (default: beginner)
//	mines layout [board]     - Print a mine layout without playing
//
// Global flags:
//
//	--fps <rate>          - Set input tick rate (default: 30)
//	--seed <value>        - Set RNG seed for reproducible boards
//	--config <path>       - Load board configuration from a YAML file
//	--difficulty <level>  - Pick a board by difficulty: easy, normal, hard
//	--rows/--cols/--mines - Play a custom board of that size
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write the play log to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/registry"

	// Import the game to register its boards
	_ "github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagRows       int
	flagCols       int
	flagMines      int
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mines",
	Short: "Minesweeper in your terminal",
	Long: `mines is a terminal Minesweeper with keyboard and mouse controls.

Available commands:
  list     - Show all available boards
  play     - Play a board
  layout   - Print a generated or parsed mine layout

Examples:
  mines list
  mines play expert
  mines play --difficulty normal
  mines play --rows 20 --cols 40 --mines 150
  mines layout beginner --seed 42 --safe 4,4`,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 30, "Input tick rate (ticks per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	pf.StringVar(&flagConfig, "config", "", "Path to custom board config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.IntVar(&flagRows, "rows", 0, "Rows of a custom board")
	pf.IntVar(&flagCols, "cols", 0, "Columns of a custom board")
	pf.IntVar(&flagMines, "mines", -1, "Mines on a custom board (-1 = keep the board's count)")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(layoutCmd)
}

// newLogger creates the command logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "mines",
		Level:           level,
	}), nil
}

// resolveBoard picks the game ID and board from the command arguments and the
// global flags. Any of --rows, --cols or --mines turns the choice into a
// custom board derived from it.
func resolveBoard(args []string) (string, config.Board, error) {
	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		return "", config.Board{}, err
	}

	gameID := config.BeginnerID
	if flagDifficulty != "" {
		gameID, err = config.GameIDForPreset(config.DifficultyPreset(flagDifficulty))
		if err != nil {
			return "", config.Board{}, err
		}
	}
	if len(args) > 0 {
		gameID = args[0]
	}
	if !registry.Exists(gameID) {
		return "", config.Board{}, fmt.Errorf("unknown board %q, run 'mines list' to see available boards", gameID)
	}

	board, ok := cfg.Lookup(gameID)
	if !ok {
		board = cfg.Board
	}

	if flagRows > 0 || flagCols > 0 || flagMines >= 0 {
		cfg.Board = board
		if err := config.ApplyOverrides(&cfg, flagRows, flagCols, flagMines); err != nil {
			return "", config.Board{}, err
		}
		return config.CustomID, cfg.Board, nil
	}
	return gameID, board, nil
}
