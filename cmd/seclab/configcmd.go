package seclab

import (
	"fmt"
	"os"
	"strings"

	"github.com/redactyl/seclab/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfgOutput   string
	cfgShift    int
	cfgKey      string
	cfgFormat   string
	cfgLogLevel string
	cfgNoColor  bool
	cfgForce    bool
)

func init() {
	cfgCmd := &cobra.Command{Use: "config", Short: "Configuration helpers"}
	rootCmd.AddCommand(cfgCmd)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Generate a .seclab.yml with default shift, key and output options",
		RunE:  runConfigInit,
	}
	cfgCmd.AddCommand(initCmd)

	initCmd.Flags().StringVar(&cfgOutput, "output", ".seclab.yml", "output file path")
	initCmd.Flags().IntVar(&cfgShift, "shift", 3, "default Caesar shift")
	initCmd.Flags().StringVar(&cfgKey, "key", "", "default Vigenère key")
	initCmd.Flags().StringVar(&cfgFormat, "format", config.FormatTable, "default output format: table | text | json")
	initCmd.Flags().StringVar(&cfgLogLevel, "log-level", "", "default log level")
	initCmd.Flags().BoolVar(&cfgNoColor, "no-color", false, "disable color output by default")
	initCmd.Flags().BoolVar(&cfgForce, "force", false, "overwrite an existing file")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	fc := config.FileConfig{
		Shift:    intPtr(cfgShift),
		Key:      optStrPtr(cfgKey),
		NoColor:  boolPtr(cfgNoColor),
		Format:   optStrPtr(cfgFormat),
		LogLevel: optStrPtr(cfgLogLevel),
	}
	if err := fc.Validate(); err != nil {
		return err
	}
	b, err := config.Marshal(fc)
	if err != nil {
		return err
	}
	if !cfgForce {
		if _, err := os.Stat(cfgOutput); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgOutput)
		}
	}
	if err := os.WriteFile(cfgOutput, b, 0644); err != nil {
		return err
	}
	log.Info().Str("path", cfgOutput).Msg("config written")
	fmt.Fprintln(cmd.OutOrStdout(), "Wrote", cfgOutput)
	return nil
}

func optStrPtr(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }
