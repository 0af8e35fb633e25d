package seclab

import (
	"github.com/redactyl/seclab/internal/cipher"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rot13 [text]",
		Short: "Apply ROT13; running it twice returns the input",
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := inputText(cmd, args)
			if err != nil {
				return err
			}
			return writeCipherResult(cmd.OutOrStdout(), cipherResult{
				Cipher: "rot13",
				Mode:   modeEncrypt,
				Input:  text,
				Output: cipher.ROT13(text),
			})
		},
	}
	rootCmd.AddCommand(cmd)
}
