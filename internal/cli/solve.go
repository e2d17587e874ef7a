package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thruflo/spellbee/internal/dictionary"
	"github.com/thruflo/spellbee/internal/puzzle"
)

var solveCmd = &cobra.Command{
	Use:   "solve LETTERS",
	Short: "List every word for a set of seven letters",
	Long: `Prints every dictionary word that can be spelled from the given seven
distinct letters and contains the first one. Pangrams, which use all seven
letters, are listed first and marked with *.

Example:
  spellbee solve caelpst
  spellbee solve c a e l p s t --words ./words.txt`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSolve,
}

func init() {
	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	p, err := puzzle.FromLetters(strings.Join(args, ""))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, closeLog, err := setupLogging(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	dict, err := loadDictionary(cfg, logger)
	if err != nil {
		return err
	}
	return writeSolutions(cmd.OutOrStdout(), dict, p)
}

type solution struct {
	word    string
	pangram bool
}

func writeSolutions(w io.Writer, dict *dictionary.Dictionary, p puzzle.Puzzle) error {
	idx := puzzle.NewIndex(dict.Words())

	var solutions []solution
	var pangrams int
	for _, word := range idx.Solutions(p.Pool(), p.Anchor) {
		pg := puzzle.IsPangram(word, p.Pool())
		if pg {
			pangrams++
		}
		solutions = append(solutions, solution{word: word, pangram: pg})
	}
	sort.SliceStable(solutions, func(i, j int) bool {
		return solutions[i].pangram && !solutions[j].pangram
	})

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, sol := range solutions {
		var mark string
		if sol.pangram {
			mark = "*"
		}
		fmt.Fprintf(tw, "%s\t%s\n", mark, sol.word)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s words (%s pangrams)\n",
		humanize.Comma(int64(len(solutions))), humanize.Comma(int64(pangrams)))
	return err
}
