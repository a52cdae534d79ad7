package internal

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/charmbracelet/log"
)

// Phrase is one accepted draw.
type Phrase struct {
	// Chunks in draw order.
	Chunks []string
	// Indices are the pool positions of Chunks. They are pairwise distinct.
	Indices []int
	// Attempts counts draws including the accepted one.
	Attempts int

	Separator string
	Suffix    string
}

// String joins the chunks and appends the suffix.
func (p Phrase) String() string {
	return Join(p.Chunks, p.Separator, p.Suffix)
}

// Join returns chunks joined by sep, followed by sep and suffix when suffix
// is non-empty.
func Join(chunks []string, sep, suffix string) string {
	var b strings.Builder
	b.WriteString(strings.Join(chunks, sep))
	if suffix != "" {
		b.WriteString(sep)
		b.WriteString(suffix)
	}
	return b.String()
}

// Generator builds passphrases from a pool.
type Generator struct {
	Source Source
	Logger *log.Logger

	// MaxAttempts bounds the rejection loop. Zero means no bound; a draw
	// below the floor is retried until one passes.
	MaxAttempts int
}

// NewGenerator returns a Generator using crypto/rand.
func NewGenerator(logger *log.Logger) *Generator {
	return &Generator{Source: CryptoSource{}, Logger: logger}
}

func (g *Generator) logger() *log.Logger {
	if g.Logger == nil {
		return log.New(io.Discard)
	}
	return g.Logger
}

// Generate draws a phrase and returns its final string form.
func (g *Generator) Generate(pool *Pool, cfg Config) (string, error) {
	p, err := g.Draw(pool, cfg)
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

// Draw samples cfg.ChunkCount distinct tokens from pool until their summed
// length exceeds cfg.MinLength. Separators and the suffix do not count
// toward the floor.
func (g *Generator) Draw(pool *Pool, cfg Config) (Phrase, error) {
	if pool.Len() == 0 {
		return Phrase{}, ErrEmptyPool
	}
	if cfg.ChunkCount <= 0 || cfg.ChunkCount > pool.Len() {
		return Phrase{}, &ConfigError{
			Pool:       pool.Name,
			ChunkCount: cfg.ChunkCount,
			PoolSize:   pool.Len(),
		}
	}
	src := g.Source
	if src == nil {
		src = CryptoSource{}
	}
	lg := g.logger()

	lg.Debug("drawing passphrase",
		"pool", pool.Name, "size", pool.Len(),
		"chunks", cfg.ChunkCount, "floor", cfg.MinLength)

	for attempt := 1; g.MaxAttempts == 0 || attempt <= g.MaxAttempts; attempt++ {
		idx, err := sample(src, pool.Len(), cfg.ChunkCount)
		if err != nil {
			return Phrase{}, err
		}

		chunks := make([]string, len(idx))
		total := 0
		for i, j := range idx {
			chunks[i] = pool.At(j)
			total += len(chunks[i])
		}

		// Short phrases fall to alphabetic crackers regardless of the
		// dictionary entropy.
		if total <= cfg.MinLength {
			lg.Info("passphrase too short, trying again...",
				"length", total, "floor", cfg.MinLength, "attempt", attempt)
			continue
		}

		return Phrase{
			Chunks:    chunks,
			Indices:   idx,
			Attempts:  attempt,
			Separator: cfg.Separator,
			Suffix:    cfg.Suffix,
		}, nil
	}
	return Phrase{}, fmt.Errorf("%w after %d attempts", ErrAttemptsExhausted, g.MaxAttempts)
}

// NominalBits is log2 of the number of ordered draws of k distinct tokens
// from a pool of n, i.e. the entropy of one unconstrained attempt. It is 0
// when k > n. The length floor removes a small fraction of draws.
func NominalBits(n, k int) float64 {
	if k <= 0 || k > n {
		return 0
	}
	bits := 0.0
	for i := 0; i < k; i++ {
		bits += math.Log2(float64(n - i))
	}
	return bits
}

// sample draws k distinct positions from [0, n) in draw order using a
// partial Fisher-Yates shuffle. Only displaced slots are stored, so memory
// is O(k) regardless of n.
func sample(src Source, n, k int) ([]int, error) {
	moved := make(map[int]int, k)
	at := func(i int) int {
		if v, ok := moved[i]; ok {
			return v
		}
		return i
	}

	out := make([]int, k)
	for i := 0; i < k; i++ {
		r, err := src.Intn(n - i)
		if err != nil {
			return nil, fmt.Errorf("draw chunk %d: %w", i, err)
		}
		j := i + r
		out[i] = at(j)
		moved[j] = at(i)
	}
	return out, nil
}
