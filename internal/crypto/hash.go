package crypto

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters for account credential hashing. These never apply to
// generated passwords, which are returned to the caller and never stored.
const (
	argonMemory      = 64 * 1024
	argonIterations  = 3
	argonParallelism = 2
	argonSaltLength  = 16
	argonKeyLength   = 32
)

var (
	ErrMalformedHash       = errors.New("malformed credential hash")
	ErrHashVersionMismatch = errors.New("unsupported argon2 version")
)

// phcHash holds the decoded pieces of a PHC-formatted Argon2id string.
type phcHash struct {
	memory      uint32
	iterations  uint32
	parallelism uint8
	salt        []byte
	key         []byte
}

// HashCredential derives an Argon2id hash of the account secret and encodes
// it in PHC string format:
//
//	$argon2id$v=19$m=65536,t=3,p=2$<base64 salt>$<base64 key>
func HashCredential(secret string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", fmt.Errorf("generating salt: %w", err)
	}

	key := argon2.IDKey([]byte(secret), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		argonMemory,
		argonIterations,
		argonParallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	)

	return encoded, nil
}

// VerifyCredential reports whether secret matches the PHC-encoded hash. The
// comparison is constant time. The stored hash's own parameters are used, so
// verification keeps working if the defaults above change.
func VerifyCredential(secret, encoded string) (bool, error) {
	stored, err := parsePHC(encoded)
	if err != nil {
		return false, err
	}

	candidate := argon2.IDKey([]byte(secret), stored.salt, stored.iterations, stored.memory, stored.parallelism, uint32(len(stored.key)))

	return subtle.ConstantTimeCompare(stored.key, candidate) == 1, nil
}

// parsePHC decodes a PHC-formatted Argon2id string.
func parsePHC(encoded string) (phcHash, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return phcHash{}, ErrMalformedHash
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return phcHash{}, ErrMalformedHash
	}
	if version != argon2.Version {
		return phcHash{}, ErrHashVersionMismatch
	}

	var h phcHash
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &h.memory, &h.iterations, &h.parallelism); err != nil {
		return phcHash{}, ErrMalformedHash
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return phcHash{}, ErrMalformedHash
	}
	h.salt = salt

	key, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return phcHash{}, ErrMalformedHash
	}
	h.key = key

	return h, nil
}
