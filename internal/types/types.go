package types

import (
	"encoding/json"
	"math"
)

// Strength is the qualitative label attached to a password entropy estimate.
type Strength string

const (
	StrengthEmpty      Strength = "Empty"
	StrengthVeryWeak   Strength = "Very weak"
	StrengthWeak       Strength = "Weak"
	StrengthMedium     Strength = "Medium"
	StrengthStrong     Strength = "Strong"
	StrengthVeryStrong Strength = "Very strong"
)

// CaesarMapping is the full A–Z substitution table for a Caesar shift.
// Plain is always A..Z in order; Cipher[i] is Plain[i] shifted by Shift.
type CaesarMapping struct {
	Shift  int      `json:"shift"`
	Plain  []string `json:"plain"`
	Cipher []string `json:"cipher"`
}

// VigenereStep records how one input character was enciphered. KeyChar and
// Shift are nil exactly when PlainChar is not an ASCII letter.
type VigenereStep struct {
	Index      int     `json:"index"`
	PlainChar  string  `json:"plainChar"`
	KeyChar    *string `json:"keyChar"`
	Shift      *int    `json:"shift"`
	CipherChar string  `json:"cipherChar"`
}

// CrackTimes holds average-case crack estimates for the online (throttled)
// and offline (fast hash) attacker models.
type CrackTimes struct {
	OnlineSeconds  float64 `json:"onlineSeconds"`
	OfflineSeconds float64 `json:"offlineSeconds"`
	OnlineDisplay  string  `json:"onlineDisplay"`
	OfflineDisplay string  `json:"offlineDisplay"`
}

// MarshalJSON writes a non-finite estimate (very long passwords overflow to
// +Inf) as null, since JSON has no Infinity.
func (c CrackTimes) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		OnlineSeconds  *float64 `json:"onlineSeconds"`
		OfflineSeconds *float64 `json:"offlineSeconds"`
		OnlineDisplay  string   `json:"onlineDisplay"`
		OfflineDisplay string   `json:"offlineDisplay"`
	}{
		OnlineSeconds:  finite(c.OnlineSeconds),
		OfflineSeconds: finite(c.OfflineSeconds),
		OnlineDisplay:  c.OnlineDisplay,
		OfflineDisplay: c.OfflineDisplay,
	})
}

func finite(v float64) *float64 {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return nil
	}
	return &v
}

// PasswordReport is the result of a heuristic password strength analysis.
type PasswordReport struct {
	Length        int        `json:"length"`
	EntropyBits   float64    `json:"entropyBits"`
	StrengthLabel Strength   `json:"strengthLabel"`
	HasLower      bool       `json:"hasLower"`
	HasUpper      bool       `json:"hasUpper"`
	HasDigit      bool       `json:"hasDigit"`
	HasSymbol     bool       `json:"hasSymbol"`
	Warnings      []string   `json:"warnings"`
	Suggestions   []string   `json:"suggestions"`
	CrackTimes    CrackTimes `json:"crackTimes"`
}
