package seclab

import (
	"github.com/redactyl/seclab/internal/cipher"
	"github.com/spf13/cobra"
)

var (
	flagKey   string
	flagSteps bool
)

func init() {
	vigCmd := &cobra.Command{
		Use:   "vigenere",
		Short: "Vigenère polyalphabetic cipher",
	}
	for _, mode := range []string{modeEncrypt, modeDecrypt} {
		mode := mode
		vigCmd.AddCommand(&cobra.Command{
			Use:   mode + " [text]",
			Short: mode + " text with a Vigenère key (reads stdin when text is omitted)",
			RunE: func(cmd *cobra.Command, args []string) error {
				return runVigenere(cmd, args, mode)
			},
		})
	}
	vigCmd.PersistentFlags().StringVar(&flagKey, "key", "", "key; only its letters are used")
	vigCmd.PersistentFlags().BoolVar(&flagSteps, "steps", false, "also print the per-character encryption trace")
	rootCmd.AddCommand(vigCmd)
}

func runVigenere(cmd *cobra.Command, args []string, mode string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}
	key := pickString(flagKey, cfg.Key)
	if cipher.NormalizeKey(key) == "" {
		log.Warn().Msg("key has no letters; text is returned unchanged")
	}
	log.Debug().Str("mode", mode).Int("keyLetters", len(cipher.NormalizeKey(key))).Int("bytes", len(text)).Msg("vigenere")

	res := cipherResult{Cipher: "vigenere", Mode: mode, Input: text, Key: &key}
	if mode == modeDecrypt {
		res.Output = cipher.VigenereDecrypt(text, key)
	} else {
		res.Output = cipher.VigenereEncrypt(text, key)
	}
	if flagSteps {
		res.Steps = cipher.VigenereSteps(text, key)
		if mode == modeDecrypt {
			log.Info().Msg("step trace shows encryption of the input")
		}
	}
	return writeCipherResult(cmd.OutOrStdout(), res)
}
