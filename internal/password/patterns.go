package password

import "strings"

// commonWords are weak words looked for anywhere in a password, in order.
var commonWords = []string{
	"password",
	"qwerty",
	"monash",
	"welcome",
	"football",
	"letmein",
	"admin",
	"user",
	"abc123",
	"dragon",
	"iloveyou",
}

// sequences are keyboard or counting runs looked for anywhere in a password.
var sequences = []string{"1234", "abcd", "qwerty", "1111", "0000"}

const minWordLen = 4

// firstCommonWord returns the first weak word contained in lower.
func firstCommonWord(lower string) (string, bool) {
	for _, w := range commonWords {
		if len(w) >= minWordLen && strings.Contains(lower, w) {
			return w, true
		}
	}
	return "", false
}

// firstSequence returns the first sequence contained in lower.
func firstSequence(lower string) (string, bool) {
	for _, s := range sequences {
		if strings.Contains(lower, s) {
			return s, true
		}
	}
	return "", false
}

// hasRun reports whether s holds three or more identical consecutive runes.
// Line terminators never count towards a run.
func hasRun(s string) bool {
	var prev rune
	n := 0
	for _, r := range s {
		switch {
		case isLineTerminator(r):
			n = 0
		case n > 0 && r == prev:
			n++
		default:
			n = 1
		}
		if n >= 3 {
			return true
		}
		prev = r
	}
	return false
}

func isLineTerminator(r rune) bool {
	return r == '\n' || r == '\r' || r == '\u2028' || r == '\u2029'
}
