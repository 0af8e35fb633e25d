package seclab

import (
	"fmt"

	"github.com/redactyl/seclab/internal/cipher"
	"github.com/redactyl/seclab/internal/config"
	"github.com/redactyl/seclab/internal/report"
	"github.com/spf13/cobra"
)

type cipherInfo struct {
	ID    string `json:"id"`
	Param string `json:"param,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "ciphers",
		Short: "List available ciphers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var list []cipherInfo
			for _, id := range cipher.IDs() {
				c, _ := cipher.Lookup(id)
				list = append(list, cipherInfo{ID: c.ID, Param: c.Param})
			}
			w := cmd.OutOrStdout()
			if outputFormat() == config.FormatJSON {
				return report.WriteJSON(w, list, printOptions())
			}
			for _, c := range list {
				if c.Param == "" {
					fmt.Fprintln(w, c.ID)
					continue
				}
				fmt.Fprintf(w, "%s (--%s)\n", c.ID, c.Param)
			}
			return nil
		},
	}
	rootCmd.AddCommand(cmd)
}
