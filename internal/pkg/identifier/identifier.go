package identifier

import gonanoid "github.com/matoous/go-nanoid/v2"

// Alphabet is the symbol set used for entity identifiers: digits plus
// lowercase letters, excluding 'o' to avoid confusion with zero.
const Alphabet = "1234567890abcdefghijklmnpqrstuwvxyz"

// Length is the fixed length of every generated identifier.
const Length = 10

// New generates a new random identifier.
//
// Identifiers are used directly as primary keys without a uniqueness
// pre-check; with 35^10 possible values a collision is treated as
// astronomically unlikely.
func New() string {
	return gonanoid.MustGenerate(Alphabet, Length)
}
