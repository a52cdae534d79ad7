package internal

import (
	crand "crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"io"
	"math/big"

	"golang.org/x/crypto/chacha20"
)

// Source returns uniform integers in [0, n). Implementations must be
// unbiased; the generator's entropy guarantee depends on it.
type Source interface {
	Intn(n int) (int, error)
}

// CryptoSource draws from crypto/rand, or from Reader when set.
type CryptoSource struct {
	Reader io.Reader
}

// Intn returns a uniform integer in [0, n).
func (s CryptoSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn: invalid bound %d", n)
	}
	r := s.Reader
	if r == nil {
		r = crand.Reader
	}
	v, err := crand.Int(r, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("read random: %w", err)
	}
	return int(v.Int64()), nil
}

// SeededSource is a deterministic ChaCha20 keystream keyed by SHA-256 of a
// seed string. Same seed, same sequence. Not for real secrets.
type SeededSource struct {
	c   *chacha20.Cipher
	buf [8]byte
}

// NewSeededSource derives a ChaCha20 key from seed. An empty or blank seed
// is allowed and yields a fixed stream.
func NewSeededSource(seed string) (*SeededSource, error) {
	key := sha256.Sum256([]byte(seed))
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		return nil, fmt.Errorf("seeded source: %w", err)
	}
	return &SeededSource{c: c}, nil
}

func (s *SeededSource) next() uint64 {
	clear(s.buf[:])
	s.c.XORKeyStream(s.buf[:], s.buf[:])
	return binary.BigEndian.Uint64(s.buf[:])
}

// Intn returns a uniform integer in [0, n), rejecting the biased tail of the
// uint64 range.
func (s *SeededSource) Intn(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("intn: invalid bound %d", n)
	}
	un := uint64(n)
	limit := ^uint64(0) - ^uint64(0)%un
	for {
		if v := s.next(); v < limit {
			return int(v % un), nil
		}
	}
}
