// Package rsvpcode generates the short codes guests use to find their
// registration again.
package rsvpcode

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"

	"github.com/gdg-garage/wedding-rsvp/internal/models"
)

const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// ExistsFunc reports whether a code is already assigned.
type ExistsFunc func(ctx context.Context, code string) (bool, error)

type Generator struct {
	Exists ExistsFunc
}

func NewGenerator(exists ExistsFunc) *Generator {
	return &Generator{Exists: exists}
}

// Generate returns a code of models.RSVPCode letters without repeats that is
// not yet assigned. A collision restarts from an empty code. Two concurrent
// calls may still return the same code; the unique index on the table is the
// final arbiter.
func (g *Generator) Generate(ctx context.Context) (string, error) {
	for {
		code, err := candidate()
		if err != nil {
			return "", err
		}

		if g.Exists == nil {
			return code, nil
		}

		taken, err := g.Exists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("checking rsvp code: %w", err)
		}
		if !taken {
			return code, nil
		}

		if err := ctx.Err(); err != nil {
			return "", err
		}
	}
}

func candidate() (string, error) {
	var b strings.Builder
	limit := big.NewInt(int64(len(Alphabet)))

	for b.Len() < models.RSVPCodeLength {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", fmt.Errorf("reading random source: %w", err)
		}
		c := Alphabet[n.Int64()]
		if strings.IndexByte(b.String(), c) >= 0 {
			continue
		}
		b.WriteByte(c)
	}

	return b.String(), nil
}

// Valid reports whether code has the shape of a generated code.
func Valid(code string) bool {
	if len(code) != models.RSVPCodeLength {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
		if strings.IndexByte(code[:i], code[i]) >= 0 {
			return false
		}
	}
	return true
}

// Normalize turns a human-typed code into its canonical form.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}
