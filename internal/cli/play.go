package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/thruflo/spellbee/internal/config"
	"github.com/thruflo/spellbee/internal/game"
	"github.com/thruflo/spellbee/internal/loop"
	"github.com/thruflo/spellbee/internal/puzzle"
	"github.com/thruflo/spellbee/internal/tui"
	"golang.org/x/term"
)

var (
	playDwell   time.Duration
	playSeed    uint64
	playNoClear bool
	playSorted  bool
	playNoColor bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a round",
	Long: `Starts a round. Type a word and press Enter to guess it.

Commands:
  exit()     quit immediately
  give_up()  quit and show every word you missed

Example:
  spellbee play
  spellbee play --words ./words.txt --sorted
  spellbee play --seed 42 --dwell 0s`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	registerPlayFlags(playCmd)
	rootCmd.AddCommand(playCmd)
}

func registerPlayFlags(cmd *cobra.Command) {
	cmd.Flags().DurationVar(&playDwell, "dwell", time.Duration(config.DefaultDwellMS)*time.Millisecond, "how long each guess result stays on screen")
	cmd.Flags().Uint64Var(&playSeed, "seed", 0, "random seed for a reproducible round")
	cmd.Flags().BoolVar(&playNoClear, "no-clear", false, "do not clear the screen between turns")
	cmd.Flags().BoolVar(&playSorted, "sorted", false, "show the outer letters in alphabetical order")
	cmd.Flags().BoolVar(&playNoColor, "no-color", false, "disable colored output")
}

// roundIO is the terminal a round is played on.
type roundIO struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("dwell") {
		if playDwell < 0 {
			return config.ValidationError{Field: "dwell", Message: "must not be negative"}
		}
		cfg.Display.DwellMS = int(playDwell / time.Millisecond)
	}
	if flags.Changed("no-clear") {
		cfg.Display.ClearScreen = !playNoClear
	}
	if flags.Changed("sorted") {
		cfg.Display.SortLetters = playSorted
	}
	if flags.Changed("no-color") {
		cfg.Display.Color = !playNoColor
	}

	rng := newRand(flags.Changed("seed"), playSeed)
	_, err = playRound(cmd.Context(), cfg, rng, roundIO{
		in:     cmd.InOrStdin(),
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	})
	return err
}

func newRand(seeded bool, seed uint64) *rand.Rand {
	if !seeded {
		seed = rand.Uint64()
	}
	return rand.New(rand.NewPCG(seed, seed))
}

// playRound loads the dictionary, sets up a round and runs it to completion.
// Unreadable dictionaries and dictionaries with no seven-letter word are
// reported before anything is drawn.
func playRound(ctx context.Context, cfg *config.Config, rng *rand.Rand, rio roundIO) (loop.Result, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	logger, closeLog, err := setupLogging(cfg, rio.errOut)
	if err != nil {
		return loop.Result{}, err
	}
	defer closeLog()

	dict, err := loadDictionary(cfg, logger)
	if err != nil {
		return loop.Result{}, err
	}

	st, err := game.NewRound(dict.Words(), rng)
	if err != nil {
		if errors.Is(err, puzzle.ErrNoQualifyingWords) {
			return loop.Result{}, fmt.Errorf("cannot start a round from %s: %w", cfg.Dictionary.Path, err)
		}
		return loop.Result{}, err
	}

	log := logger.WithFields(map[string]interface{}{
		"round":  uuid.NewString(),
		"anchor": string(st.Puzzle.Anchor),
	})
	log.Info("round started", "solutions", st.Total())

	terminal := tui.NewTerminal(rio.out)
	input, err := newLineReader(rio.in, terminal.IsTerminal())
	if err != nil {
		return loop.Result{}, err
	}
	defer input.Close()

	board := tui.BoardOptions{
		Width:  terminal.Width(),
		Sorted: cfg.Display.SortLetters,
		Color:  cfg.Display.Color && terminal.IsTerminal(),
		Theme:  tui.DefaultTheme(),
	}

	res, err := loop.New(loop.Options{
		State:       st,
		Display:     terminal,
		Input:       input,
		Board:       board,
		ClearScreen: cfg.Display.ClearScreen && terminal.IsTerminal(),
		Dwell:       cfg.Display.Dwell(),
		Logger:      log,
	}).Run(ctx)
	if err != nil {
		log.Error("round failed", "error", err)
		return res, err
	}

	log.Info("round ended", "reason", res.Reason.String(), "found", res.Found, "total", res.Total)
	return res, nil
}

// newLineReader uses readline when both ends are an interactive terminal and
// plain line scanning otherwise.
func newLineReader(in io.Reader, interactive bool) (tui.LineReader, error) {
	if f, ok := in.(*os.File); ok && interactive && term.IsTerminal(int(f.Fd())) {
		rl, err := tui.NewReadlineReader()
		if err != nil {
			return nil, err
		}
		return rl, nil
	}
	return tui.NewScanReader(in), nil
}
