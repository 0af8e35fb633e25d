package password

import (
	"math"
	"testing"

	"github.com/redactyl/seclab/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyze_Empty(t *testing.T) {
	r := Analyze("")
	assert.Equal(t, 0, r.Length)
	assert.Equal(t, 0.0, r.EntropyBits)
	assert.Equal(t, types.StrengthEmpty, r.StrengthLabel)
	assert.False(t, r.HasLower)
	assert.False(t, r.HasUpper)
	assert.False(t, r.HasDigit)
	assert.False(t, r.HasSymbol)
	assert.Equal(t, []string{warnVariety}, r.Warnings)
	assert.Equal(t, []string{sugVariety}, r.Suggestions)
	assert.Equal(t, types.CrackTimes{OnlineDisplay: "instant", OfflineDisplay: "instant"}, r.CrackTimes)
}

func TestAnalyze_CommonWord(t *testing.T) {
	r := Analyze("password")
	assert.Equal(t, 8, r.Length)
	assert.True(t, r.HasLower)
	assert.False(t, r.HasUpper || r.HasDigit || r.HasSymbol)
	assert.InDelta(t, 8*math.Log2(26), r.EntropyBits, 1e-9)
	assert.Equal(t, types.StrengthMedium, r.StrengthLabel)
	assert.Equal(t, []string{
		warnShort,
		warnVariety,
		`Contains common word: "password".`,
	}, r.Warnings)
	assert.Equal(t, []string{sugShort, sugVariety, sugWord}, r.Suggestions)
}

func TestAnalyze_RepeatedCharacters(t *testing.T) {
	r := Analyze("aaaaaaaa")
	assert.Contains(t, r.Warnings, warnRepeated)
	assert.Contains(t, r.Suggestions, sugRepeated)
}

func TestAnalyze_OnlyFirstWordAndSequence(t *testing.T) {
	// "qwerty" is both a weak word and a sequence; "admin" and "1234" come later.
	r := Analyze("QWERTYadmin1234")
	assert.Contains(t, r.Warnings, `Contains common word: "qwerty".`)
	assert.NotContains(t, r.Warnings, `Contains common word: "admin".`)
	assert.Contains(t, r.Warnings, `Contains common sequence: "1234".`)
	count := 0
	for _, w := range r.Warnings {
		if len(w) > 24 && w[:24] == "Contains common sequence" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestAnalyze_SequenceOrder(t *testing.T) {
	r := Analyze("qwerty99")
	assert.Equal(t, []string{
		warnShort,
		warnVariety,
		`Contains common word: "qwerty".`,
		`Contains common sequence: "qwerty".`,
	}, r.Warnings)
	assert.Equal(t, []string{sugShort, sugVariety, sugWord, sugSequence}, r.Suggestions)
}

func TestAnalyze_VeryShortExcludesShort(t *testing.T) {
	r := Analyze("Ab1!")
	assert.Equal(t, []string{warnVeryShort}, r.Warnings)
	assert.Equal(t, []string{sugVeryShort}, r.Suggestions)
	assert.True(t, r.HasLower && r.HasUpper && r.HasDigit && r.HasSymbol)
}

func TestAnalyze_StrongPasswordHasNoWarnings(t *testing.T) {
	r := Analyze("Tr0ub4dor&3xyzQ!")
	assert.Equal(t, 16, r.Length)
	assert.InDelta(t, 16*math.Log2(95), r.EntropyBits, 1e-9)
	assert.Equal(t, types.StrengthStrong, r.StrengthLabel)
	assert.Empty(t, r.Warnings)
	assert.Empty(t, r.Suggestions)
	assert.NotNil(t, r.Warnings)
	assert.NotNil(t, r.Suggestions)
}

func TestAnalyze_VeryStrong(t *testing.T) {
	r := Analyze("Correct-Horse-Battery-Staple-42")
	assert.Equal(t, types.StrengthVeryStrong, r.StrengthLabel)
	assert.Regexp(t, ` years$`, r.CrackTimes.OnlineDisplay)
	assert.Regexp(t, ` years$`, r.CrackTimes.OfflineDisplay)
}

func TestAnalyze_NonASCIICountsAsSymbol(t *testing.T) {
	r := Analyze("ключ")
	assert.Equal(t, 4, r.Length)
	assert.True(t, r.HasSymbol)
	assert.False(t, r.HasLower)
	assert.InDelta(t, 4*math.Log2(33), r.EntropyBits, 1e-9)
}

func TestAnalyze_CaseInsensitiveWord(t *testing.T) {
	r := Analyze("MyDRAGONrocks")
	assert.Contains(t, r.Warnings, `Contains common word: "dragon".`)
}

func TestAnalyze_CrackTimes(t *testing.T) {
	r := Analyze("abc")
	require.Greater(t, r.CrackTimes.OnlineSeconds, 0.0)
	assert.InDelta(t, 17576.0/2/10, r.CrackTimes.OnlineSeconds, 1e-6)
	assert.InDelta(t, 17576.0/2/1e9, r.CrackTimes.OfflineSeconds, 1e-12)
	assert.Equal(t, "15 minutes", r.CrackTimes.OnlineDisplay)
	assert.Equal(t, "0 seconds", r.CrackTimes.OfflineDisplay)
}

func TestLabel_Boundaries(t *testing.T) {
	cases := []struct {
		bits float64
		want types.Strength
	}{
		{0, types.StrengthVeryWeak},
		{27.99, types.StrengthVeryWeak},
		{28, types.StrengthWeak},
		{35.99, types.StrengthWeak},
		{36, types.StrengthMedium},
		{59.99, types.StrengthMedium},
		{60, types.StrengthStrong},
		{127.99, types.StrengthStrong},
		{128, types.StrengthVeryStrong},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, Label(1, tc.bits), "bits %v", tc.bits)
	}
	assert.Equal(t, types.StrengthEmpty, Label(0, 200))
}

func TestHasRun(t *testing.T) {
	assert.True(t, hasRun("aaa"))
	assert.True(t, hasRun("ab!!!!cd"))
	assert.True(t, hasRun("☕☕☕"))
	assert.False(t, hasRun("aabbaa"))
	assert.False(t, hasRun(""))
	assert.False(t, hasRun("\n\n\n"))
}

func TestOrderedSet(t *testing.T) {
	s := newOrderedSet()
	for _, v := range []string{"b", "a", "b", "c", "a"} {
		s.add(v)
	}
	assert.Equal(t, []string{"b", "a", "c"}, s.values())
}
