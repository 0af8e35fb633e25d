package cipher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "", NormalizeKey(""))
	assert.Equal(t, "", NormalizeKey("123 !?"))
	assert.Equal(t, "LEMON", NormalizeKey("le-mon 42"))
	assert.Equal(t, "KEY", NormalizeKey("KéEY"))
}

func TestVigenere_ReferenceVector(t *testing.T) {
	assert.Equal(t, "LXFOPVEFRNHR", VigenereEncrypt("ATTACKATDAWN", "LEMON"))
	assert.Equal(t, "ATTACKATDAWN", VigenereDecrypt("LXFOPVEFRNHR", "LEMON"))
}

func TestVigenere_NonLettersDoNotAdvanceKey(t *testing.T) {
	// Same letters as the reference vector with punctuation interleaved.
	assert.Equal(t, "lxf-opv efr!nhr", VigenereEncrypt("att-ack atd!awn", "lemon"))
}

func TestVigenere_EmptyKeyIsNoOp(t *testing.T) {
	assert.Equal(t, "Attack at dawn", VigenereEncrypt("Attack at dawn", ""))
	assert.Equal(t, "Attack at dawn", VigenereEncrypt("Attack at dawn", "1234"))
	assert.Equal(t, "Attack at dawn", VigenereDecrypt("Attack at dawn", "--"))
	assert.Equal(t, "", VigenereEncrypt("", "KEY"))
}

func TestVigenere_RoundTrip(t *testing.T) {
	texts := []string{"ATTACKATDAWN", "Hello, World!", "über 42 ключ ok", ""}
	keys := []string{"LEMON", "k", "Key With Spaces", "", "9", "ZZZZ"}
	for _, text := range texts {
		for _, key := range keys {
			require.Equalf(t, text, VigenereDecrypt(VigenereEncrypt(text, key), key), "key %q", key)
		}
	}
}

func TestVigenereSteps(t *testing.T) {
	steps := VigenereSteps("Ab1", "KEY")
	require.Len(t, steps, 3)

	assert.Equal(t, 0, steps[0].Index)
	assert.Equal(t, "A", steps[0].PlainChar)
	require.NotNil(t, steps[0].KeyChar)
	assert.Equal(t, "K", *steps[0].KeyChar)
	require.NotNil(t, steps[0].Shift)
	assert.Equal(t, 10, *steps[0].Shift)
	assert.Equal(t, "K", steps[0].CipherChar)

	assert.Equal(t, 1, steps[1].Index)
	assert.Equal(t, "b", steps[1].PlainChar)
	require.NotNil(t, steps[1].KeyChar)
	assert.Equal(t, "E", *steps[1].KeyChar)
	assert.Equal(t, "f", steps[1].CipherChar)

	assert.Equal(t, 2, steps[2].Index)
	assert.Equal(t, "1", steps[2].PlainChar)
	assert.Nil(t, steps[2].KeyChar)
	assert.Nil(t, steps[2].Shift)
	assert.Equal(t, "1", steps[2].CipherChar)
}

func TestVigenereSteps_MatchesEncrypt(t *testing.T) {
	text, key := "Meet me, at 9 ☀ by the docks", "harbor"
	var got string
	for _, s := range VigenereSteps(text, key) {
		got += s.CipherChar
	}
	assert.Equal(t, VigenereEncrypt(text, key), got)
}

func TestVigenereSteps_InvalidUTF8KeptVerbatim(t *testing.T) {
	text := "a\xffb\xc3"
	steps := VigenereSteps(text, "B")
	require.Len(t, steps, 4)
	assert.Equal(t, "\xff", steps[1].PlainChar)
	assert.Equal(t, "\xff", steps[1].CipherChar)
	assert.Nil(t, steps[1].KeyChar)
	assert.Equal(t, "\xc3", steps[3].CipherChar)

	var plain, out string
	for _, s := range steps {
		plain += s.PlainChar
		out += s.CipherChar
	}
	assert.Equal(t, text, plain)
	assert.Equal(t, VigenereEncrypt(text, "B"), out)
	assert.Equal(t, "b\xffc\xc3", out)
}

func TestVigenereSteps_IndexCountsRunes(t *testing.T) {
	steps := VigenereSteps("é a", "B")
	require.Len(t, steps, 3)
	assert.Equal(t, "é", steps[0].PlainChar)
	assert.Equal(t, 2, steps[2].Index)
	assert.Equal(t, "b", steps[2].CipherChar)
}

func TestVigenereSteps_Empty(t *testing.T) {
	assert.Empty(t, VigenereSteps("", "KEY"))
	assert.Empty(t, VigenereSteps("abc", "!!"))
	assert.NotNil(t, VigenereSteps("abc", ""))
}
