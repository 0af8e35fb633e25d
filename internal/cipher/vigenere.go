package cipher

import (
	"strings"
	"unicode/utf8"

	"github.com/redactyl/seclab/internal/types"
)

// NormalizeKey drops every rune that is not an ASCII letter and uppercases
// the rest.
func NormalizeKey(key string) string {
	var b strings.Builder
	b.Grow(len(key))
	for _, r := range key {
		if isLetter(r) {
			if r >= 'a' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// keystream walks a normalized key, yielding the next letter each time a
// letter of the text is processed.
type keystream struct {
	key string
	pos int
}

func (k *keystream) next() (byte, int) {
	c := k.key[k.pos%len(k.key)]
	k.pos++
	return c, int(c - 'A')
}

// vigenere applies the key to text with sign +1 (encrypt) or -1 (decrypt).
func vigenere(text, key string, sign int) string {
	if text == "" {
		return ""
	}
	norm := NormalizeKey(key)
	if norm == "" {
		return text
	}
	ks := keystream{key: norm}
	return mapLetters(text, func(b byte) byte {
		_, shift := ks.next()
		return byte(shiftRune(rune(b), sign*shift))
	})
}

// VigenereEncrypt enciphers text with the repeating key. A key with no ASCII
// letters leaves text unchanged. Non-letters pass through and do not advance
// the key.
func VigenereEncrypt(text, key string) string {
	return vigenere(text, key, 1)
}

// VigenereDecrypt reverses VigenereEncrypt for the same key.
func VigenereDecrypt(text, key string) string {
	return vigenere(text, key, -1)
}

// VigenereSteps replays VigenereEncrypt and records one step per rune of
// text, so the joined CipherChar values equal the ciphertext. It returns an
// empty slice for empty text or a key without letters.
func VigenereSteps(text, key string) []types.VigenereStep {
	norm := NormalizeKey(key)
	if text == "" || norm == "" {
		return []types.VigenereStep{}
	}
	ks := keystream{key: norm}
	steps := make([]types.VigenereStep, 0, utf8.RuneCountInString(text))
	for i, off := 0, 0; off < len(text); i++ {
		r, size := utf8.DecodeRuneInString(text[off:])
		// Invalid bytes are kept verbatim, as VigenereEncrypt does.
		raw := text[off : off+size]
		off += size
		step := types.VigenereStep{Index: i, PlainChar: raw, CipherChar: raw}
		if isLetter(r) {
			c, shift := ks.next()
			keyChar := string(c)
			step.KeyChar = &keyChar
			step.Shift = &shift
			step.CipherChar = string(shiftRune(r, shift))
		}
		steps = append(steps, step)
	}
	return steps
}
