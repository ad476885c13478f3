package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-mines/internal/games/minesweeper"
)

var (
	flagSafe   string
	flagFrom   string
	flagCounts bool
)

var layoutCmd = &cobra.Command{
	Use:   "layout [board]",
	Short: "Print a mine layout",
	Long: `Generates a mine layout the way play does on the first uncover and prints
it as rows of 1 (mine) and 0 (no mine). With --from, reads such a layout
from a file instead and prints it back normalized.

Examples:
  mines layout
  mines layout expert --seed 42 --safe 8,15
  mines layout --rows 5 --cols 5 --mines 3 --counts
  mines layout --from board.txt --counts`,
	Args: cobra.MaximumNArgs(1),
	Run:  runLayout,
}

func init() {
	layoutCmd.Flags().StringVar(&flagSafe, "safe", "", "Cell kept free of mines as ROW,COL (default: board center)")
	layoutCmd.Flags().StringVar(&flagFrom, "from", "", "Read a layout from this file instead of generating one")
	layoutCmd.Flags().BoolVar(&flagCounts, "counts", false, "Print adjacent mine counts, with * for mines")
}

func runLayout(cmd *cobra.Command, args []string) {
	if err := layout(cmd.OutOrStdout(), args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func layout(out io.Writer, args []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	var field *minesweeper.Field
	if flagFrom != "" {
		data, readErr := os.ReadFile(flagFrom)
		if readErr != nil {
			return fmt.Errorf("cannot read layout: %w", readErr)
		}
		field, err = minesweeper.ParseField(string(data))
		if err != nil {
			return err
		}
		logger.Debug("parsed layout", "path", flagFrom,
			"rows", field.Rows(), "cols", field.Cols(), "mines", field.NumMines())
	} else {
		field, err = generate(args)
		if err != nil {
			return err
		}
	}

	if flagCounts {
		fmt.Fprintln(out, countsString(field))
		return nil
	}
	fmt.Fprintln(out, field.String())
	return nil
}

// generate populates a field for the board chosen by args and the flags.
func generate(args []string) (*minesweeper.Field, error) {
	_, board, err := resolveBoard(args)
	if err != nil {
		return nil, err
	}
	field, err := minesweeper.NewEmptyField(board.Rows, board.Cols, board.Mines)
	if err != nil {
		return nil, err
	}

	row, col := board.Rows/2, board.Cols/2
	if flagSafe != "" {
		row, col, err = parseCell(flagSafe)
		if err != nil {
			return nil, err
		}
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if err := field.Populate(rand.New(rand.NewSource(seed)), row, col); err != nil {
		return nil, err
	}
	return field, nil
}

var errBadCell = errors.New("cell must be ROW,COL")

// parseCell parses "ROW,COL".
func parseCell(s string) (row, col int, err error) {
	rs, cs, ok := strings.Cut(s, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", errBadCell, s)
	}
	row, err = strconv.Atoi(strings.TrimSpace(rs))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadCell, s)
	}
	col, err = strconv.Atoi(strings.TrimSpace(cs))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadCell, s)
	}
	return row, col, nil
}

// countsString prints each cell as * for a mine or its adjacent mine count.
func countsString(f *minesweeper.Field) string {
	var sb strings.Builder
	for r := range f.Rows() {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range f.Cols() {
			if c > 0 {
				sb.WriteByte(' ')
			}
			if f.HasMine(r, c) {
				sb.WriteByte('*')
			} else {
				sb.WriteString(strconv.Itoa(f.NumAdjacentMines(r, c)))
			}
		}
	}
	return sb.String()
}
