package password

import (
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"golang.org/x/crypto/argon2"
)

const (
	argon2Prefix  = "argon2id"
	argon2SaltLen = 16
	argon2KeyLen  = 32

	// Upper bounds for parameters read from stored hashes.
	argon2MaxMemory = 1 << 20 // KiB
	argon2MaxTime   = 16
)

// Argon2id uses OWASP-recommended parameters by default.
type Argon2id struct {
	Time    uint32
	Memory  uint32
	Threads uint8
}

func NewArgon2id() *Argon2id {
	return &Argon2id{Time: 1, Memory: 64 * 1024, Threads: 4}
}

func (a *Argon2id) Prefix() string { return argon2Prefix }

func (a *Argon2id) Hash(plaintext string) (string, error) {
	salt := common.GenerateRandByteArray(argon2SaltLen)
	key := argon2.IDKey([]byte(plaintext), salt, a.Time, a.Memory, a.Threads, argon2KeyLen)

	return fmt.Sprintf("$%s$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2Prefix, argon2.Version, a.Memory, a.Time, a.Threads,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

func (a *Argon2id) Verify(plaintext, encoded string) bool {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[1] != argon2Prefix {
		return false
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil || version != argon2.Version {
		return false
	}

	var memory, time, threads uint32
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &threads); err != nil {
		return false
	}
	if memory == 0 || memory > argon2MaxMemory || time == 0 || time > argon2MaxTime || threads == 0 || threads > 255 {
		return false
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil || len(expected) == 0 || len(expected) > 1024 {
		return false
	}

	computed := argon2.IDKey([]byte(plaintext), salt, time, memory, uint8(threads), uint32(len(expected)))
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
