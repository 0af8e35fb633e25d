package seclab

import (
	"fmt"
	"io"

	"github.com/redactyl/seclab/internal/config"
	"github.com/redactyl/seclab/internal/report"
	"github.com/redactyl/seclab/internal/types"
)

// cipherResult is the JSON shape of a cipher command.
type cipherResult struct {
	Cipher  string               `json:"cipher"`
	Mode    string               `json:"mode"`
	Input   string               `json:"input"`
	Output  string               `json:"output"`
	Shift   *int                 `json:"shift,omitempty"`
	Key     *string              `json:"key,omitempty"`
	Mapping *types.CaesarMapping `json:"mapping,omitempty"`
	Steps   []types.VigenereStep `json:"steps,omitempty"`
}

// writeCipherResult prints res in the selected format. Tables are only
// drawn in table format.
func writeCipherResult(w io.Writer, res cipherResult) error {
	opts := printOptions()
	switch outputFormat() {
	case config.FormatJSON:
		return report.WriteJSON(w, res, opts)
	case config.FormatText:
		_, err := fmt.Fprintln(w, res.Output)
		return err
	}
	if _, err := fmt.Fprintln(w, res.Output); err != nil {
		return err
	}
	if res.Mapping != nil {
		fmt.Fprintln(w)
		if err := report.PrintCaesarMapping(w, *res.Mapping, opts); err != nil {
			return err
		}
	}
	if res.Steps != nil {
		fmt.Fprintln(w)
		if err := report.PrintVigenereSteps(w, res.Steps, opts); err != nil {
			return err
		}
	}
	return nil
}
