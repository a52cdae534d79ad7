package internal

import (
	"fmt"
	"io"
	"strings"
)

// RunSelfTest draws runs phrases for every unit/tier combination. The pool
// must reach the tier's bit target, and each phrase must clear the length
// floor, use distinct pool positions that match its tokens, and join
// reproducibly. It prints one block per combination and returns the number
// of failed combinations. Nothing is copied to the clipboard.
func RunSelfTest(w io.Writer, g *Generator, pools Pools, runs int) int {
	failed := 0
	for _, unit := range []Unit{Word, Syllable} {
		for _, tier := range []Tier{Standard, Long} {
			flags := Flags{Long: tier == Long, Syllable: unit == Syllable, Suffix: DefaultSuffix}
			cfg := Resolve(flags)
			pool := pools.For(unit)

			bits := NominalBits(pool.Len(), cfg.ChunkCount)
			title := fmt.Sprintf("%s/%s (%d chunks, floor %d, pool %d, %.1f bits):",
				unit, tier, cfg.ChunkCount, cfg.MinLength, pool.Len(), bits)
			fmt.Fprintln(w, Style(title, Bold, Purple))

			var example string
			var problem error
			if Resolve(flags) != cfg {
				problem = fmt.Errorf("resolution is not repeatable")
			}
			if problem == nil && pool.Len() >= cfg.ChunkCount && bits < TargetBits(tier) {
				problem = fmt.Errorf("pool gives %.1f bits, want %.0f", bits, TargetBits(tier))
			}
			for i := 0; i < runs && problem == nil; i++ {
				p, err := g.Draw(pool, cfg)
				if err != nil {
					problem = err
					break
				}
				problem = checkPhrase(pool, cfg, p)
				if example == "" {
					example = p.String()
				}
			}

			if example != "" {
				fmt.Fprintf(w, "  Sample: %s\n", example)
			}
			if problem != nil {
				failed++
				fmt.Fprintf(w, "  %s %v\n", Style("Result: FAILED", Bold, Red), problem)
				continue
			}
			fmt.Fprintf(w, "  %s %s\n", Style("Result: PASSED", Bold, Green),
				Style(fmt.Sprintf("(%d draws)", runs), Gray))
		}
	}
	fmt.Fprintf(w, "%s %d\n", Style("Failed:", Bold), failed)
	return failed
}

func checkPhrase(pool *Pool, cfg Config, p Phrase) error {
	if len(p.Chunks) != cfg.ChunkCount || len(p.Indices) != cfg.ChunkCount {
		return fmt.Errorf("got %d chunks, want %d", len(p.Chunks), cfg.ChunkCount)
	}
	total := 0
	seen := make(map[int]bool, len(p.Indices))
	for i, idx := range p.Indices {
		if seen[idx] {
			return fmt.Errorf("pool position %d drawn twice", idx)
		}
		seen[idx] = true
		if pool.At(idx) != p.Chunks[i] {
			return fmt.Errorf("chunk %d is %q, pool has %q", i, p.Chunks[i], pool.At(idx))
		}
		total += len(p.Chunks[i])
	}
	if total <= cfg.MinLength {
		return fmt.Errorf("chunk length %d does not exceed floor %d", total, cfg.MinLength)
	}
	want := strings.Join(p.Chunks, cfg.Separator)
	if cfg.Suffix != "" {
		want += cfg.Separator + cfg.Suffix
	}
	if got := p.String(); got != want {
		return fmt.Errorf("joined %q, want %q", got, want)
	}
	return nil
}
