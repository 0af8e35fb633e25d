package seclab

import (
	"fmt"
	"os"

	"github.com/redactyl/seclab/internal/config"
	"github.com/redactyl/seclab/internal/password"
	"github.com/redactyl/seclab/internal/report"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func init() {
	cmd := &cobra.Command{
		Use:   "analyze [password]",
		Short: "Estimate password strength",
		Long: `Estimate password strength from length and character variety, flag
common words, sequences and repeated characters, and show rough crack times.

When no password is given it is read from stdin; on a terminal the input is
not echoed. The password is never logged.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runAnalyze,
	}
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	pw, err := readPassword(cmd, args)
	if err != nil {
		return err
	}
	r := password.Analyze(pw)
	log.Debug().Int("length", r.Length).Float64("entropyBits", r.EntropyBits).Msg("analyze")

	w := cmd.OutOrStdout()
	if outputFormat() == config.FormatJSON {
		return report.WriteJSON(w, r, printOptions())
	}
	report.PrintPasswordReport(w, r, printOptions())
	return nil
}

func readPassword(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fmt.Fprint(cmd.ErrOrStderr(), "Password: ")
		b, err := term.ReadPassword(int(f.Fd()))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(b), nil
	}
	s, err := inputText(cmd, nil)
	if err != nil {
		return "", fmt.Errorf("read password from stdin: %w", err)
	}
	return s, nil
}
