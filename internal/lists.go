package internal

import (
	_ "embed"
	"fmt"
)

// Embedded lists: plain text, tokens separated by arbitrary whitespace.
var (
	//go:embed lists/words.txt
	rawWords string

	//go:embed lists/syllables.txt
	rawSyllables string
)

// Pool names, used in errors and logs.
const (
	WordsPoolName     = "words"
	SyllablesPoolName = "syllables"
)

// DefaultPools builds both pools from the embedded lists. It only fails if
// an embedded list is empty, which is a build defect.
func DefaultPools() (Pools, error) {
	words, err := NewPool(WordsPoolName, rawWords)
	if err != nil {
		return Pools{}, fmt.Errorf("embedded list: %w", err)
	}
	syllables, err := NewPool(SyllablesPoolName, rawSyllables)
	if err != nil {
		return Pools{}, fmt.Errorf("embedded list: %w", err)
	}
	return Pools{Words: words, Syllables: syllables}, nil
}

// LoadPools returns the embedded pools, replacing either with the list at
// wordsFile or syllablesFile when non-empty.
func LoadPools(wordsFile, syllablesFile string) (Pools, error) {
	ps, err := DefaultPools()
	if err != nil {
		return Pools{}, err
	}
	if wordsFile != "" {
		if ps.Words, err = LoadPoolFile(WordsPoolName, wordsFile); err != nil {
			return Pools{}, err
		}
	}
	if syllablesFile != "" {
		if ps.Syllables, err = LoadPoolFile(SyllablesPoolName, syllablesFile); err != nil {
			return Pools{}, err
		}
	}
	return ps, nil
}
