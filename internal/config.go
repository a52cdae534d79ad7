package internal

// Unit selects which pool chunks are drawn from.
type Unit int

const (
	Word Unit = iota
	Syllable
)

func (u Unit) String() string {
	if u == Syllable {
		return "syllable"
	}
	return "word"
}

// Tier is the security level. Standard targets ~80 bits, Long ~128 bits.
type Tier int

const (
	Standard Tier = iota
	Long
)

func (t Tier) String() string {
	if t == Long {
		return "long"
	}
	return "standard"
}

// DefaultSuffix is used when --suffix is given without a value.
const DefaultSuffix = "Q1!"

// Flags is the raw command-line input consumed by Resolve.
type Flags struct {
	Long     bool
	Syllable bool
	Quiet    bool

	// Suffix is already defaulted by the flag layer: "" when absent,
	// DefaultSuffix when bare, the given value otherwise.
	Suffix string

	// Separator is honored only when SeparatorSet, so an explicit empty
	// separator is distinguishable from no override.
	Separator    string
	SeparatorSet bool
}

// Config is a fully resolved set of generation parameters.
type Config struct {
	Unit      Unit
	Tier      Tier
	Separator string
	Suffix    string
	Quiet     bool

	// ChunkCount is the number of tokens drawn per attempt.
	ChunkCount int
	// MinLength is the floor the summed token length must exceed.
	MinLength int
}

// ChunkCount returns how many tokens a passphrase of the given unit and
// tier contains. 5/8 words or 10/16 syllables.
func ChunkCount(unit Unit, tier Tier) int {
	switch {
	case unit == Syllable && tier == Long:
		return 16
	case unit == Syllable:
		return 10
	case tier == Long:
		return 8
	default:
		return 5
	}
}

// MinLength returns the length floor for tier: the shortest all-lowercase
// string that still holds ~80 (standard) or ~128 (long) bits against a pure
// alphabetic brute-force.
func MinLength(tier Tier) int {
	if tier == Long {
		return 27
	}
	return 17
}

// TargetBits is the entropy a tier's chunk count is calibrated for.
func TargetBits(tier Tier) float64 {
	if tier == Long {
		return 128
	}
	return 80
}

// DefaultSeparator is a space between words and nothing between syllables.
func DefaultSeparator(unit Unit) string {
	if unit == Syllable {
		return ""
	}
	return " "
}

// Resolve maps flags to a Config. It is pure and total.
func Resolve(f Flags) Config {
	tier := Standard
	if f.Long {
		tier = Long
	}
	unit := Word
	if f.Syllable {
		unit = Syllable
	}

	sep := DefaultSeparator(unit)
	if f.SeparatorSet {
		sep = f.Separator
	}

	return Config{
		Unit:       unit,
		Tier:       tier,
		Separator:  sep,
		Suffix:     f.Suffix,
		Quiet:      f.Quiet,
		ChunkCount: ChunkCount(unit, tier),
		MinLength:  MinLength(tier),
	}
}
