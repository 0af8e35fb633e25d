// Package cipher implements the classical substitution ciphers used by the
// playground: Caesar (and its ROT13 special case) and Vigenère. Every function
// is pure and total: malformed input degrades to a pass-through instead of an
// error. Only the ASCII ranges A–Z and a–z are transformed; all other runes
// are copied verbatim and case is always preserved.
package cipher
