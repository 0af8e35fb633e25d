package seclab

import (
	"fmt"
	"os"

	"github.com/redactyl/seclab/internal/config"
	"github.com/redactyl/seclab/internal/logger"
	"github.com/redactyl/seclab/internal/report"
	"github.com/spf13/cobra"
)

var (
	flagJSON       bool
	flagFormat     string
	flagNoColor    bool
	flagLogLevel   string
	flagConfigPath string

	version = "0.1.0"

	// cfg and log are populated by the root PersistentPreRunE.
	cfg config.FileConfig
	log = logger.Nop()
)

// rootCmd is the base Cobra command for the seclab CLI.
var rootCmd = &cobra.Command{
	Use:               "seclab",
	Short:             "Classical ciphers and password strength analysis",
	Long:              "seclab encrypts and decrypts text with Caesar, ROT13 and Vigenère ciphers, shows how they work step by step, and estimates password strength.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadSettings,
}

// Execute runs the seclab CLI. It should be called by the main package.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "emit JSON (same as --format json)")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "", "output format: table | text | json")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "disable colorized output")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug | info | warn | error")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "read configuration from this file instead of the local and global ones")
}

// loadSettings merges environment, file and flag settings and sets up logging.
func loadSettings(cmd *cobra.Command, _ []string) error {
	b := config.NewBuilder().WithEnv()
	if flagConfigPath != "" {
		b = b.WithFile(flagConfigPath)
	} else {
		b = b.WithLocal(".").WithGlobal()
	}
	merged, err := b.Build()
	if err != nil {
		return err
	}
	cfg = merged

	level := pickString(flagLogLevel, cfg.LogLevel)
	if level == "" {
		level = cfg.GetLogLevel()
	}
	log = logger.New(level, cmd.ErrOrStderr())
	log.Debug().Strs("sources", sourceNames(b.Sources())).Str("command", cmd.CommandPath()).Msg("configuration loaded")

	if f := outputFormat(); f != config.FormatTable && f != config.FormatText && f != config.FormatJSON {
		return fmt.Errorf("%w: %q", config.ErrInvalidFormat, f)
	}
	return nil
}

// outputFormat resolves --json, --format and the configured default.
func outputFormat() string {
	if flagJSON {
		return config.FormatJSON
	}
	if f := pickString(flagFormat, cfg.Format); f != "" {
		return f
	}
	return config.FormatTable
}

func printOptions() report.PrintOptions {
	return report.PrintOptions{NoColor: pickBool(flagNoColor, cfg.NoColor) || os.Getenv("NO_COLOR") != ""}
}

func sourceNames(src []config.Source) []string {
	out := make([]string, len(src))
	for i, s := range src {
		out[i] = string(s)
	}
	return out
}
