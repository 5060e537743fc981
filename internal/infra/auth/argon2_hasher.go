// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"webmark/internal/domain/service"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"
)

// Default argon2id cost parameters. These are fixed process-wide; the encoded
// hash is self-describing, so they can be raised later without invalidating
// stored credentials.
const (
	defaultMemory  uint32 = 64 * 1024 // KiB
	defaultTime    uint32 = 1
	defaultThreads uint8  = 4
	defaultSaltLen uint32 = 16
	defaultKeyLen  uint32 = 32
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
type argon2Hasher struct {
	memory  uint32
	time    uint32
	threads uint8
	saltLen uint32
	keyLen  uint32
}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{
		memory:  defaultMemory,
		time:    defaultTime,
		threads: defaultThreads,
		saltLen: defaultSaltLen,
		keyLen:  defaultKeyLen,
	}
}

// NewArgon2HasherWithParams creates a hasher with custom cost parameters.
// Intended for tests, where the default memory cost is unnecessarily slow.
func NewArgon2HasherWithParams(memory, time uint32, threads uint8) service.PasswordHasher {
	return &argon2Hasher{
		memory:  memory,
		time:    time,
		threads: threads,
		saltLen: defaultSaltLen,
		keyLen:  defaultKeyLen,
	}
}

// Hash derives an argon2id digest of the password under a fresh random salt
// and returns it in the standard PHC encoded form:
//
//	$argon2id$v=19$m=65536,t=1,p=4$<base64 salt>$<base64 digest>
//
// The salt comes from crypto/rand on every call, so hashing the same password
// twice yields two different encoded strings.
func (h *argon2Hasher) Hash(password string) (string, error) {
	salt := make([]byte, h.saltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	digest := argon2.IDKey([]byte(password), salt, h.time, h.memory, h.threads, h.keyLen)

	encoded := fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version,
		h.memory, h.time, h.threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(digest),
	)

	return encoded, nil
}

// Check re-derives the digest using the parameters and salt decoded from the
// encoded hash and compares in constant time. It fails closed: an
// undecodable hash and a wrong password are both reported as a plain false,
// so the caller cannot tell them apart.
func (h *argon2Hasher) Check(password, encoded string) bool {
	memory, time, threads, salt, digest, err := decodeHash(encoded)
	if err != nil {
		return false
	}

	derived := argon2.IDKey([]byte(password), salt, time, memory, threads, uint32(len(digest)))

	return subtle.ConstantTimeCompare(derived, digest) == 1
}

// decodeHash parses a PHC-encoded argon2id string back into its parameters.
func decodeHash(encoded string) (memory, time uint32, threads uint8, salt, digest []byte, err error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != "argon2id" {
		return 0, 0, 0, nil, nil, errors.New("encoded hash is not argon2id")
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse hash version")
	}
	if version != argon2.Version {
		return 0, 0, 0, nil, nil, errors.Errorf("unsupported argon2 version: %d", version)
	}

	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to parse hash parameters")
	}
	// argon2.IDKey panics on cost parameters below its minimums; a hash
	// carrying them is undecodable as far as Check is concerned.
	if time < 1 || threads < 1 || memory < 8*uint32(threads) {
		return 0, 0, 0, nil, nil, errors.Errorf("hash parameters below argon2 minimums: m=%d,t=%d,p=%d", memory, time, threads)
	}

	salt, err = base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode salt")
	}

	digest, err = base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return 0, 0, 0, nil, nil, errors.Wrap(err, "failed to decode digest")
	}
	if len(digest) == 0 {
		return 0, 0, 0, nil, nil, errors.New("empty digest")
	}

	return memory, time, threads, salt, digest, nil
}
