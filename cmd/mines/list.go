package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/config"
	"github.com/vovakirdan/tui-mines/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available boards",
	Long:  `Shows every registered board with its size and mine count.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No boards available.")
		return
	}

	cfg, err := config.LoadMines(flagConfig)
	if err != nil {
		logger, logErr := newLogger(os.Stderr)
		if logErr == nil {
			logger.Warn("using default config", "error", err)
		}
		cfg = config.DefaultMinesConfig()
	}

	fmt.Println("Available boards:")
	fmt.Println()

	// Calculate column widths
	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Board")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		board := "-"
		if b, ok := cfg.Lookup(g.ID); ok {
			board = b.String()
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, board)
	}

	fmt.Println()
	fmt.Println("Run 'mines play <id>' to play a board.")
	if game, createErr := registry.Create(games[0].ID); createErr == nil {
		fmt.Println("Controls:", game.Controls())
	}
}
