package seclab

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

// pickString prefers a non-empty flag value over the merged config value.
func pickString(cli string, fallback *string) string {
	if cli != "" {
		return cli
	}
	if fallback != nil {
		return *fallback
	}
	return ""
}

// pickBool is true when the flag is set, otherwise the config value decides.
func pickBool(cli bool, fallback *bool) bool {
	if cli {
		return true
	}
	return fallback != nil && *fallback
}

// inputText joins positional args, or reads stdin when there are none.
// A single trailing line ending from stdin is dropped.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", err
	}
	return trimNewline(string(b)), nil
}

func trimNewline(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}
