package cipher

import "github.com/redactyl/seclab/internal/types"

// CaesarEncrypt shifts every ASCII letter of text by shift positions.
func CaesarEncrypt(text string, shift int) string {
	if text == "" {
		return ""
	}
	s := normalizeShift(shift)
	return mapLetters(text, func(b byte) byte { return byte(shiftRune(rune(b), s)) })
}

// CaesarDecrypt reverses CaesarEncrypt for the same shift.
func CaesarDecrypt(text string, shift int) string {
	return CaesarEncrypt(text, alphabetLen-normalizeShift(shift))
}

// ROT13 is the self-inverse Caesar shift of 13.
func ROT13(text string) string {
	return CaesarEncrypt(text, 13)
}

// CaesarMapping returns the A–Z substitution table for shift.
func CaesarMapping(shift int) types.CaesarMapping {
	m := types.CaesarMapping{
		Shift:  shift,
		Plain:  make([]string, 0, alphabetLen),
		Cipher: make([]string, 0, alphabetLen),
	}
	for r := 'A'; r <= 'Z'; r++ {
		m.Plain = append(m.Plain, string(r))
		m.Cipher = append(m.Cipher, string(shiftRune(r, shift)))
	}
	return m
}
