// Package password estimates password strength with simple, order-of-magnitude
// heuristics: a character-class entropy estimate, a qualitative label, pattern
// warnings with suggestions, and average-case crack times for a throttled
// online attacker and a fast offline one. Analyze never fails; the empty
// password yields an "Empty" report.
package password
