package core

import (
	"github.com/redactyl/seclab/internal/cipher"
	"github.com/redactyl/seclab/internal/password"
	"github.com/redactyl/seclab/internal/types"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type (
	CaesarMapping  = types.CaesarMapping
	VigenereStep   = types.VigenereStep
	PasswordReport = types.PasswordReport
	CrackTimes     = types.CrackTimes
	Strength       = types.Strength
)

// CaesarEncrypt shifts every ASCII letter by shift, preserving case.
func CaesarEncrypt(text string, shift int) string { return cipher.CaesarEncrypt(text, shift) }

// CaesarDecrypt reverses CaesarEncrypt.
func CaesarDecrypt(text string, shift int) string { return cipher.CaesarDecrypt(text, shift) }

// ROT13 is Caesar with shift 13.
func ROT13(text string) string { return cipher.ROT13(text) }

// ParseShift coerces raw form input to a shift; non-numeric input is 0.
func ParseShift(s string) int { return cipher.ParseShift(s) }

// GetCaesarMapping returns the A–Z substitution table for shift.
func GetCaesarMapping(shift int) CaesarMapping { return cipher.CaesarMapping(shift) }

// VigenereEncrypt enciphers text with key; a key without letters is a no-op.
func VigenereEncrypt(text, key string) string { return cipher.VigenereEncrypt(text, key) }

// VigenereDecrypt reverses VigenereEncrypt.
func VigenereDecrypt(text, key string) string { return cipher.VigenereDecrypt(text, key) }

// GetVigenereSteps traces VigenereEncrypt one rune at a time.
func GetVigenereSteps(text, key string) []VigenereStep { return cipher.VigenereSteps(text, key) }

// AnalyzePassword estimates the strength of pw.
func AnalyzePassword(pw string) PasswordReport { return password.Analyze(pw) }

// FormatDuration renders a crack-time estimate in seconds for humans.
func FormatDuration(seconds float64) string { return password.FormatDuration(seconds) }
