package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/thruflo/spellbee/internal/config"
	"github.com/thruflo/spellbee/internal/dictionary"
	"github.com/thruflo/spellbee/internal/logging"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	rootConfigDir string
	rootWords     string
	rootLogLevel  string
	rootLogFile   string
)

var rootCmd = &cobra.Command{
	Use:   "spellbee",
	Short: "A terminal word puzzle in the style of Spelling Bee",
	Long: `Spellbee picks a word with seven distinct letters from a dictionary and
asks you to find every word you can spell from those letters. Every word
must use the highlighted center letter.

Running spellbee with no subcommand starts a game.`,
	Args:          cobra.NoArgs,
	RunE:          runPlay,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("spellbee version {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&rootConfigDir, "config", ".", "directory containing .spellbee/config.yaml")
	rootCmd.PersistentFlags().StringVarP(&rootWords, "words", "w", "", "word list, one word per line (default: dictionary.path from config)")
	rootCmd.PersistentFlags().StringVar(&rootLogLevel, "log-level", "", "log level: debug, info, warn or error")
	rootCmd.PersistentFlags().StringVar(&rootLogFile, "log-file", "", "write JSON logs to this file instead of stderr")

	registerPlayFlags(rootCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// loadConfig loads the config for cmd and applies the persistent flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(rootConfigDir)
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("words") {
		cfg.Dictionary.Path = rootWords
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = rootLogLevel
	}
	if cmd.Flags().Changed("log-file") {
		cfg.Log.File = rootLogFile
	}
	if err := config.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging points the default logger at the configured destination.
// The returned function closes any log file.
func setupLogging(cfg *config.Config, stderr io.Writer) (*logging.Logger, func(), error) {
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}
	logger := logging.Default()
	logger.SetLevel(level)

	if cfg.Log.File == "" {
		logger.SetOutput(logging.ConsoleWriter(stderr))
		return logger, func() {}, nil
	}

	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { f.Close() }, nil
}

// loadDictionary loads the configured word list.
func loadDictionary(cfg *config.Config, logger *logging.Logger) (*dictionary.Dictionary, error) {
	dict, err := dictionary.Load(cfg.Dictionary.Path, cfg.Dictionary.MinLength)
	if err != nil {
		return nil, err
	}
	logger.Info("loaded dictionary", "path", cfg.Dictionary.Path, "words", dict.Len())
	return dict, nil
}
