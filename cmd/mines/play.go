package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/core"
	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
	"github.com/vovakirdan/tui-mines/internal/platform/tui"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [board]",
	Short: "Play a board",
	Long: `Start playing the given board (beginner if none is given).

Controls:
  Arrows/HJKL/WASD - Move the cursor
  Space/Enter      - Uncover the cell
  F                - Flag, question, clear
  Mouse            - Left click uncovers, right click flags
  P/Esc            - Pause
  R                - New board (after game over)
  ?                - Show all keys
  Ctrl+S           - Save a screenshot
  Q/Ctrl+C         - Quit

The first cell you uncover never holds a mine.

Examples:
  mines play
  mines play intermediate
  mines play --difficulty hard
  mines play --rows 12 --cols 24 --mines 50
  mines play --config ./my-mines.yaml --seed 7 --log-file mines.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := play(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func play(args []string) error {
	gameID, board, err := resolveBoard(args)
	if err != nil {
		return err
	}

	// Set config for the game before creation
	minesweeper.SetConfigPath(flagConfig)
	if gameID == config.CustomID {
		minesweeper.SetCustomBoard(board)
	}

	// The TUI owns the terminal, so logs go to a file or nowhere
	var logOut io.Writer = io.Discard
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return fmt.Errorf("cannot open log file: %w", openErr)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut)
	if err != nil {
		return err
	}

	cfg := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed

	game, err := registry.Create(gameID)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	logger.Debug("board", "game", gameID, "board", board)

	if err := tui.Run(game, logger, cfg); err != nil {
		logger.Error("game exited", "error", err)
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
