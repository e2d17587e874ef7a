package cli

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/thruflo/spellbee/internal/dictionary"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show word list statistics",
	Long: `Loads the configured word list and reports how many words it holds and
how many of them can seed a round.`,
	Args: cobra.NoArgs,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
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
	return writeStats(cmd.OutOrStdout(), cfg.Dictionary.Path, dict)
}

func writeStats(w io.Writer, path string, dict *dictionary.Dictionary) error {
	st := dict.Stats()
	_, err := fmt.Fprintf(w, "dictionary: %s (%s)\nwords:      %s\nqualifying: %s\n",
		path,
		humanize.Bytes(uint64(st.Bytes)),
		humanize.Comma(int64(st.Words)),
		humanize.Comma(int64(st.Qualifying)))
	return err
}
