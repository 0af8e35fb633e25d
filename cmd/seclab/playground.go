package seclab

import (
	"fmt"
	"strings"

	"github.com/redactyl/seclab/internal/tui"
	"github.com/spf13/cobra"
)

// runPlayground starts the TUI; tests replace it.
var runPlayground = tui.Run

var (
	flagPlayShift int
	flagPlayKey   string
	flagPlayTab   string
)

func init() {
	cmd := &cobra.Command{
		Use:   "playground",
		Short: "Interactive cipher and password playground",
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts, err := playgroundOptions(cmd)
			if err != nil {
				return err
			}
			log.Debug().Str("tab", opts.Tab.String()).Int("shift", opts.Shift).Msg("starting playground")
			return runPlayground(opts)
		},
	}
	cmd.Flags().IntVar(&flagPlayShift, "shift", 0, "initial Caesar shift")
	cmd.Flags().StringVar(&flagPlayKey, "key", "", "initial Vigenère key")
	cmd.Flags().StringVar(&flagPlayTab, "tab", "caesar", "initial tab: caesar | vigenere | password")
	rootCmd.AddCommand(cmd)
}

// playgroundOptions resolves flags over config. An explicit --shift, even 0,
// beats the configured shift.
func playgroundOptions(cmd *cobra.Command) (tui.Options, error) {
	tab, err := parseTab(flagPlayTab)
	if err != nil {
		return tui.Options{}, err
	}
	shift := cfg.GetShift()
	if cmd.Flags().Changed("shift") {
		shift = flagPlayShift
	}
	return tui.Options{
		Shift: shift,
		Key:   pickString(flagPlayKey, cfg.Key),
		Tab:   tab,
	}, nil
}

func parseTab(s string) (tui.Tab, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "caesar":
		return tui.TabCaesar, nil
	case "vigenere":
		return tui.TabVigenere, nil
	case "password":
		return tui.TabPassword, nil
	}
	return tui.TabCaesar, fmt.Errorf("unknown tab: %s", s)
}
