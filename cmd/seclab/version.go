package seclab

import (
	"fmt"
	"runtime/debug"

	semver "github.com/blang/semver/v4"
	"github.com/redactyl/seclab/internal/config"
	"github.com/redactyl/seclab/internal/report"
	"github.com/spf13/cobra"
)

type versionInfo struct {
	Version  string `json:"version"`
	Revision string `json:"revision,omitempty"`
}

func init() {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the seclab version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := versionInfo{Version: normalizeVersion(version), Revision: vcsRevision()}
			w := cmd.OutOrStdout()
			if outputFormat() == config.FormatJSON {
				return report.WriteJSON(w, info, printOptions())
			}
			if info.Revision != "" {
				_, err := fmt.Fprintf(w, "seclab v%s (%s)\n", info.Version, info.Revision)
				return err
			}
			_, err := fmt.Fprintf(w, "seclab v%s\n", info.Version)
			return err
		},
	}
	rootCmd.AddCommand(cmd)
}

// normalizeVersion parses v tolerantly (leading "v", missing parts) and
// falls back to 0.0.0 when it is not a semantic version.
func normalizeVersion(v string) string {
	ver, err := semver.ParseTolerant(v)
	if err != nil {
		ver = semver.MustParse("0.0.0")
	}
	return ver.String()
}

func vcsRevision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" {
			if len(s.Value) > 12 {
				return s.Value[:12]
			}
			return s.Value
		}
	}
	return ""
}
