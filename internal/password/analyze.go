package password

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/redactyl/seclab/internal/types"
)

// Approximate alphabet sizes per character class.
const (
	lowerSize  = 26
	upperSize  = 26
	digitSize  = 10
	symbolSize = 33 // rough count of printable ASCII symbols
)

// Warning and suggestion texts.
const (
	warnVeryShort = "Very short password (less than 8 characters)."
	sugVeryShort  = "Use at least 12 characters, preferably more."
	warnShort     = "Short password (less than 12 characters)."
	sugShort      = "Longer passwords are harder to crack. Aim for 12+ characters."
	warnVariety   = "Limited character variety."
	sugVariety    = "Mix lowercase, uppercase, digits, and symbols where possible."
	sugWord       = "Avoid common words and predictable patterns."
	sugSequence   = "Avoid simple sequences like 1234 or qwerty."
	warnRepeated  = "Contains repeated characters."
	sugRepeated   = "Avoid long runs of the same character."
)

type classes struct {
	lower, upper, digit, symbol bool
}

// scan assigns every rune to exactly one class, checked in the order
// lowercase, uppercase, digit, symbol.
func scan(pw string) classes {
	var c classes
	for _, r := range pw {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digit = true
		default:
			c.symbol = true
		}
	}
	return c
}

func (c classes) charsetSize() int {
	n := 0
	if c.lower {
		n += lowerSize
	}
	if c.upper {
		n += upperSize
	}
	if c.digit {
		n += digitSize
	}
	if c.symbol {
		n += symbolSize
	}
	return n
}

func (c classes) complete() bool {
	return c.lower && c.upper && c.digit && c.symbol
}

// entropy is length * log2(charset), or 0 when either factor is zero.
func entropy(length, charset int) float64 {
	if length == 0 || charset == 0 {
		return 0
	}
	return float64(length) * math.Log2(float64(charset))
}

// Label maps a length and entropy estimate onto a strength label. Bounds are
// exclusive upper: exactly 36 bits is Medium.
func Label(length int, bits float64) types.Strength {
	switch {
	case length == 0:
		return types.StrengthEmpty
	case bits < 28:
		return types.StrengthVeryWeak
	case bits < 36:
		return types.StrengthWeak
	case bits < 60:
		return types.StrengthMedium
	case bits < 128:
		return types.StrengthStrong
	default:
		return types.StrengthVeryStrong
	}
}

// Analyze produces a strength report for pw. Length counts Unicode code
// points.
func Analyze(pw string) types.PasswordReport {
	length := utf8.RuneCountInString(pw)
	cls := scan(pw)
	bits := entropy(length, cls.charsetSize())

	warnings := []string{}
	suggestions := newOrderedSet()

	switch {
	case length > 0 && length < 8:
		warnings = append(warnings, warnVeryShort)
		suggestions.add(sugVeryShort)
	case length >= 8 && length < 12:
		warnings = append(warnings, warnShort)
		suggestions.add(sugShort)
	}

	if !cls.complete() {
		warnings = append(warnings, warnVariety)
		suggestions.add(sugVariety)
	}

	lower := strings.ToLower(pw)
	if w, ok := firstCommonWord(lower); ok {
		warnings = append(warnings, fmt.Sprintf("Contains common word: %q.", w))
		suggestions.add(sugWord)
	}
	if s, ok := firstSequence(lower); ok {
		warnings = append(warnings, fmt.Sprintf("Contains common sequence: %q.", s))
		suggestions.add(sugSequence)
	}

	if hasRun(pw) {
		warnings = append(warnings, warnRepeated)
		suggestions.add(sugRepeated)
	}

	return types.PasswordReport{
		Length:        length,
		EntropyBits:   bits,
		StrengthLabel: Label(length, bits),
		HasLower:      cls.lower,
		HasUpper:      cls.upper,
		HasDigit:      cls.digit,
		HasSymbol:     cls.symbol,
		Warnings:      warnings,
		Suggestions:   suggestions.values(),
		CrackTimes:    crackTimes(bits),
	}
}
