package crypto

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

// ErrEntropyUnavailable reports that the secure random source failed.
// Generation aborts when this happens; there is no fallback to a
// non-cryptographic source.
var ErrEntropyUnavailable = errors.New("secure random source unavailable")

// Source yields uniform random integers for character selection and
// shuffling. Implementations must return values uniformly distributed in
// [0, n), with no modulo bias.
type Source interface {
	// IntN returns a uniform random int in [0, n). n must be positive.
	IntN(n int) (int, error)
}

// CryptoSource is the production Source, backed by crypto/rand. The zero
// value is ready to use and safe for concurrent use.
type CryptoSource struct{}

// IntN returns a uniform random int in [0, n). crypto/rand.Int draws by
// rejection sampling, which keeps the distribution uniform for any n.
func (CryptoSource) IntN(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("rand: n must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
