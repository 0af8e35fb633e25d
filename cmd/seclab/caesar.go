package seclab

import (
	"github.com/redactyl/seclab/internal/cipher"
	"github.com/spf13/cobra"
)

var (
	flagShift   string
	flagMapping bool
)

func init() {
	caesarCmd := &cobra.Command{
		Use:   "caesar",
		Short: "Caesar shift cipher",
	}
	for _, mode := range []string{modeEncrypt, modeDecrypt} {
		mode := mode
		caesarCmd.AddCommand(&cobra.Command{
			Use:   mode + " [text]",
			Short: mode + " text with a Caesar shift (reads stdin when text is omitted)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runCaesar(cmd, args, mode)
			},
		})
	}
	caesarCmd.PersistentFlags().StringVar(&flagShift, "shift", "", "shift amount; any integer, non-numeric input counts as 0")
	caesarCmd.PersistentFlags().BoolVar(&flagMapping, "mapping", false, "also print the A-Z substitution table")
	rootCmd.AddCommand(caesarCmd)
}

const (
	modeEncrypt = "encrypt"
	modeDecrypt = "decrypt"
)

func runCaesar(cmd *cobra.Command, args []string, mode string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	shift := cfg.GetShift()
	if cmd.Flags().Changed("shift") {
		shift = cipher.ParseShift(flagShift)
	}
	log.Debug().Str("mode", mode).Int("shift", shift).Int("bytes", len(text)).Msg("caesar")

	res := cipherResult{Cipher: "caesar", Mode: mode, Input: text, Shift: &shift}
	if mode == modeDecrypt {
		res.Output = cipher.CaesarDecrypt(text, shift)
	} else {
		res.Output = cipher.CaesarEncrypt(text, shift)
	}
	if flagMapping {
		m := cipher.CaesarMapping(shift)
		res.Mapping = &m
	}
	return writeCipherResult(cmd.OutOrStdout(), res)
}
