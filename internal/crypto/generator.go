package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
)

const (
	uppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	lowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	numberChars    = "0123456789"
	symbolChars    = "!@#$%^&*"

	// Alphabet is the pool every generated character is drawn from.
	Alphabet = lowercaseChars + uppercaseChars + numberChars + symbolChars

	MinLength     = 8
	MaxLength     = 32
	DefaultLength = 16
)

// Generator produces random passwords from Alphabet.
type Generator struct {
	reader io.Reader
}

// NewGenerator returns a Generator reading randomness from r.
// A nil reader means crypto/rand.
func NewGenerator(r io.Reader) *Generator {
	if r == nil {
		r = rand.Reader
	}
	return &Generator{reader: r}
}

// ClampLength limits n to [MinLength, MaxLength].
func ClampLength(n int) int {
	return min(max(n, MinLength), MaxLength)
}

// Generate returns a password of ClampLength(length) characters, each drawn
// uniformly and independently from Alphabet.
func (g *Generator) Generate(length int) (string, error) {
	result := make([]byte, ClampLength(length))
	for i := range result {
		ch, err := g.randChar(Alphabet)
		if err != nil {
			return "", fmt.Errorf("reading random index: %w", err)
		}
		result[i] = ch
	}
	return string(result), nil
}

// randChar picks a random character from charset.
func (g *Generator) randChar(charset string) (byte, error) {
	n, err := rand.Int(g.reader, big.NewInt(int64(len(charset))))
	if err != nil {
		return 0, err
	}
	return charset[n.Int64()], nil
}
