package internal

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"
)

// Pool is an immutable, ordered list of candidate tokens (words or
// syllables). Tokens are lowercase and contain no whitespace.
type Pool struct {
	Name   string
	Tokens []string
}

// NewPool lowercases raw and splits it on any run of whitespace. Tokens keep
// their order in raw; duplicates are kept as separate positions.
func NewPool(name, raw string) (*Pool, error) {
	tokens := strings.Fields(strings.ToLower(raw))
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%s: %w", name, ErrEmptyPool)
	}
	return &Pool{Name: name, Tokens: tokens}, nil
}

// LoadPoolFile reads a whitespace-delimited list from disk.
func LoadPoolFile(name, path string) (*Pool, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s list: %w", name, err)
	}

	if !utf8.Valid(b) {
		return nil, fmt.Errorf("%s list %q must be valid UTF-8", name, path)
	}

	// Strip UTF-8 BOM if present
	if len(b) >= 3 && b[0] == 0xEF && b[1] == 0xBB && b[2] == 0xBF {
		b = b[3:]
	}

	return NewPool(name, string(b))
}

// Len returns the number of tokens in the pool.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.Tokens)
}

// At returns the token at position i.
func (p *Pool) At(i int) string {
	return p.Tokens[i]
}

// Pools holds the word and syllable pools side by side.
type Pools struct {
	Words     *Pool
	Syllables *Pool
}

// For selects the pool matching unit.
func (ps Pools) For(unit Unit) *Pool {
	if unit == Syllable {
		return ps.Syllables
	}
	return ps.Words
}
