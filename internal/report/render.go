package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/redactyl/seclab/internal/types"
)

type PrintOptions struct {
	NoColor bool
}

var (
	strengthBadStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	strengthMedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true)
	strengthGoodStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	dimStyle          = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// PrintCaesarMapping renders the substitution alphabet as a two-row table.
func PrintCaesarMapping(w io.Writer, m types.CaesarMapping, _ PrintOptions) error {
	fmt.Fprintf(w, "Shift: %d\n", m.Shift)
	table := tablewriter.NewWriter(w)
	table.Header(cells("PLAIN", m.Plain)...)
	if err := table.Append(cells("CIPHER", m.Cipher)...); err != nil {
		return err
	}
	return table.Render()
}

// PrintVigenereSteps renders one row per input rune. Runes that did not
// consume a key letter show "-" in the key and shift columns.
func PrintVigenereSteps(w io.Writer, steps []types.VigenereStep, _ PrintOptions) error {
	if len(steps) == 0 {
		fmt.Fprintln(w, "No steps (empty text or key without letters)")
		return nil
	}
	table := tablewriter.NewWriter(w)
	table.Header("INDEX", "PLAIN", "KEY", "SHIFT", "CIPHER")
	for _, s := range steps {
		key, shift := "-", "-"
		if s.KeyChar != nil {
			key = *s.KeyChar
		}
		if s.Shift != nil {
			shift = strconv.Itoa(*s.Shift)
		}
		if err := table.Append(strconv.Itoa(s.Index), visible(s.PlainChar), key, shift, visible(s.CipherChar)); err != nil {
			return err
		}
	}
	return table.Render()
}

// PrintPasswordReport writes a human summary of a password analysis.
func PrintPasswordReport(w io.Writer, r types.PasswordReport, opts PrintOptions) {
	label := string(r.StrengthLabel)
	if !opts.NoColor {
		label = StrengthStyle(r.StrengthLabel).Render(label)
	}
	fmt.Fprintf(w, "Strength: %s\n", label)
	fmt.Fprintf(w, "Length:   %d\n", r.Length)
	fmt.Fprintf(w, "Entropy:  %.1f bits\n", r.EntropyBits)
	fmt.Fprintf(w, "Classes:  %s\n", classSummary(r))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Online attack (10 guesses/s):   %s\n", r.CrackTimes.OnlineDisplay)
	fmt.Fprintf(w, "Offline attack (1e9 guesses/s): %s\n", r.CrackTimes.OfflineDisplay)

	if len(r.Warnings) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Warnings:")
		for _, s := range r.Warnings {
			fmt.Fprintf(w, "  ! %s\n", s)
		}
	}
	if len(r.Suggestions) > 0 {
		fmt.Fprintln(w)
		fmt.Fprintln(w, "Suggestions:")
		for _, s := range r.Suggestions {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
}

// StrengthStyle returns the colour used for a strength label.
func StrengthStyle(s types.Strength) lipgloss.Style {
	switch s {
	case types.StrengthStrong, types.StrengthVeryStrong:
		return strengthGoodStyle
	case types.StrengthMedium:
		return strengthMedStyle
	case types.StrengthEmpty:
		return dimStyle
	default:
		return strengthBadStyle
	}
}

func classSummary(r types.PasswordReport) string {
	mark := func(ok bool, name string) string {
		if ok {
			return "[x] " + name
		}
		return "[ ] " + name
	}
	return strings.Join([]string{
		mark(r.HasLower, "lower"),
		mark(r.HasUpper, "upper"),
		mark(r.HasDigit, "digit"),
		mark(r.HasSymbol, "symbol"),
	}, "  ")
}

// visible makes whitespace readable inside a table cell.
func visible(s string) string {
	switch s {
	case " ":
		return "␠"
	case "\t":
		return "⇥"
	case "\n":
		return "↵"
	}
	return s
}

func cells(first string, rest []string) []any {
	out := make([]any, 0, len(rest)+1)
	out = append(out, first)
	for _, s := range rest {
		out = append(out, s)
	}
	return out
}
