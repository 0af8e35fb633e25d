package core_test

import (
	"fmt"

	"github.com/redactyl/seclab/pkg/core"
)

func ExampleCaesarEncrypt() {
	fmt.Println(core.CaesarEncrypt("Hello, World!", 3))
	fmt.Println(core.CaesarDecrypt("Khoor, Zruog!", 3))
	// Output:
	// Khoor, Zruog!
	// Hello, World!
}

func ExampleROT13() {
	fmt.Println(core.ROT13("Why did the chicken cross the road?"))
	// Output: Jul qvq gur puvpxra pebff gur ebnq?
}

func ExampleVigenereEncrypt() {
	fmt.Println(core.VigenereEncrypt("ATTACKATDAWN", "LEMON"))
	// Output: LXFOPVEFRNHR
}

// ExampleGetVigenereSteps prints the trace a UI would animate.
func ExampleGetVigenereSteps() {
	for _, s := range core.GetVigenereSteps("Ab1", "KEY") {
		if s.KeyChar == nil {
			fmt.Printf("%d %s -> %s (no key)\n", s.Index, s.PlainChar, s.CipherChar)
			continue
		}
		fmt.Printf("%d %s +%s(%d) -> %s\n", s.Index, s.PlainChar, *s.KeyChar, *s.Shift, s.CipherChar)
	}
	// Output:
	// 0 A +K(10) -> K
	// 1 b +E(4) -> f
	// 2 1 -> 1 (no key)
}

func ExampleAnalyzePassword() {
	r := core.AnalyzePassword("password")
	fmt.Println(r.Length, r.StrengthLabel)
	for _, w := range r.Warnings {
		fmt.Println(w)
	}
	// Output:
	// 8 Medium
	// Short password (less than 12 characters).
	// Limited character variety.
	// Contains common word: "password".
}
