package cipher

import (
	"strconv"
	"strings"
)

const alphabetLen = 26

// normalizeShift reduces any shift into [0,26).
func normalizeShift(shift int) int {
	return ((shift % alphabetLen) + alphabetLen) % alphabetLen
}

// shiftRune rotates r within its own case range. Runes outside A–Z and a–z
// are returned unchanged.
func shiftRune(r rune, shift int) rune {
	var base rune
	switch {
	case r >= 'A' && r <= 'Z':
		base = 'A'
	case r >= 'a' && r <= 'z':
		base = 'a'
	default:
		return r
	}
	pos := int(r - base)
	return base + rune((pos+normalizeShift(shift))%alphabetLen)
}

// mapLetters rewrites the ASCII letters of text with fn and copies every
// other byte. ASCII bytes never occur inside a multi-byte UTF-8 sequence, so
// non-ASCII code points (and invalid bytes) survive untouched.
func mapLetters(text string, fn func(byte) byte) string {
	out := []byte(text)
	for i, b := range out {
		if isLetter(rune(b)) {
			out[i] = fn(b)
		}
	}
	return string(out)
}

func isLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}

// ParseShift coerces user input into a shift amount. Leading whitespace and
// an optional sign are accepted, followed by base-10 digits; parsing stops at
// the first non-digit. Input without a leading integer coerces to 0.
func ParseShift(s string) int {
	s = strings.TrimLeft(s, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0
	}
	n, err := strconv.Atoi(s[:end])
	if err == nil {
		return n
	}
	// Out of int range: only the value mod 26 matters to the ciphers.
	rem := 0
	for _, c := range s[digits:end] {
		rem = (rem*10 + int(c-'0')) % alphabetLen
	}
	if s[0] == '-' {
		return -rem
	}
	return rem
}
