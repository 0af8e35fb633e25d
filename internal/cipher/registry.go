package cipher

// Func transforms text using a cipher parameter given as raw user input
// (a shift amount or a key).
type Func func(text, param string) string

// Cipher is a named cipher exposed to the CLI and the playground.
type Cipher struct {
	ID      string
	Param   string // "shift", "key" or "" when the cipher takes none
	Encrypt Func
	Decrypt Func
}

var registry = []Cipher{
	{
		ID:      "caesar",
		Param:   "shift",
		Encrypt: func(text, p string) string { return CaesarEncrypt(text, ParseShift(p)) },
		Decrypt: func(text, p string) string { return CaesarDecrypt(text, ParseShift(p)) },
	},
	{
		ID:      "rot13",
		Encrypt: func(text, _ string) string { return ROT13(text) },
		Decrypt: func(text, _ string) string { return ROT13(text) },
	},
	{
		ID:      "vigenere",
		Param:   "key",
		Encrypt: VigenereEncrypt,
		Decrypt: VigenereDecrypt,
	},
}

// IDs returns the registered cipher IDs in display order.
func IDs() []string {
	ids := make([]string, len(registry))
	for i, c := range registry {
		ids[i] = c.ID
	}
	return ids
}

// Lookup returns the cipher registered under id.
func Lookup(id string) (Cipher, bool) {
	for _, c := range registry {
		if c.ID == id {
			return c, true
		}
	}
	return Cipher{}, false
}
