// Package generator produces random passwords from selectable character classes.
package generator

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"io"
	mrand "math/rand/v2"
	"strings"
)

// Character classes, concatenated into the pool in this order.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()-=_+[]{}|;:,.<>?"
)

// Length bounds expected from callers. Generate itself only requires length >= 1.
const (
	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 8
)

var (
	// ErrInvalidConfiguration is returned when no character class is selected.
	ErrInvalidConfiguration = errors.New("no character classes selected")
	// ErrInvalidLength is returned for a length below 1.
	ErrInvalidLength = errors.New("password length must be at least 1")
)

// Flags selects the character classes that make up the pool.
type Flags struct {
	Upper   bool `json:"upper"`
	Lower   bool `json:"lower"`
	Digits  bool `json:"digits"`
	Symbols bool `json:"symbols"`
}

// DefaultFlags matches the generate screen defaults: letters and digits, no symbols.
func DefaultFlags() Flags {
	return Flags{Upper: true, Lower: true, Digits: true}
}

// Pool returns the characters eligible for sampling under f.
func Pool(f Flags) string {
	var sb strings.Builder
	if f.Upper {
		sb.WriteString(Uppercase)
	}
	if f.Lower {
		sb.WriteString(Lowercase)
	}
	if f.Digits {
		sb.WriteString(Digits)
	}
	if f.Symbols {
		sb.WriteString(Symbols)
	}
	return sb.String()
}

// Generator draws characters from an entropy source.
type Generator struct {
	src io.Reader
}

// New returns a Generator reading randomness from src. A nil src means crypto/rand.
func New(src io.Reader) *Generator {
	if src == nil {
		src = rand.Reader
	}
	return &Generator{src: src}
}

// NewSeeded returns a reproducible Generator. Not for real passwords.
func NewSeeded(seed uint64) *Generator {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:], seed)
	return New(mrand.NewChaCha8(key))
}

var defaultGenerator = New(nil)

// Generate is a shortcut for the crypto/rand backed generator.
func Generate(length int, f Flags) (string, error) {
	return defaultGenerator.Generate(length, f)
}

// Generate returns exactly length characters, each picked independently and
// uniformly from Pool(f). A single call is not guaranteed to contain every
// selected class.
func (g *Generator) Generate(length int, f Flags) (string, error) {
	if length < 1 {
		return "", ErrInvalidLength
	}
	pool := Pool(f)
	if pool == "" {
		return "", ErrInvalidConfiguration
	}

	var sb strings.Builder
	sb.Grow(length)
	for sb.Len() < length {
		idx, err := g.index(len(pool))
		if err != nil {
			return "", err
		}
		sb.WriteByte(pool[idx])
	}
	return sb.String(), nil
}

// index returns a uniform int in [0, n) for n <= 256. Bytes at or above the
// largest multiple of n are rejected to avoid modulo bias.
func (g *Generator) index(n int) (int, error) {
	limit := 256 - 256%n
	var b [1]byte
	for {
		if _, err := io.ReadFull(g.src, b[:]); err != nil {
			return 0, err
		}
		if int(b[0]) < limit {
			return int(b[0]) % n, nil
		}
	}
}
