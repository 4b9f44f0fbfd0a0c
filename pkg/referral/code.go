// Package referral generates the public codes handed to affiliates.
package referral

import (
	"github.com/jaevor/go-nanoid"
)

// Alphabet excludes look-alike characters (0/O, 1/I/L) so codes survive
// being read aloud or retyped from printed material.
const alphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"

const codeLength = 10

// NewGenerator returns a referral-code generator. Codes are random, not
// sequential, so affiliate accounts cannot be enumerated from a code.
func NewGenerator() (func() string, error) {
	return nanoid.CustomASCII(alphabet, codeLength)
}
