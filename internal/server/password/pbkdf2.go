package password

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

const (
	pbkdf2Prefix    = "pbkdf2-sha256"
	pbkdf2SaltLen   = 16
	pbkdf2KeyLen    = 32
	pbkdf2MaxRounds = 10_000_000

	// DefaultPBKDF2Rounds matches passlib's pbkdf2_sha256 default.
	DefaultPBKDF2Rounds = 29000
)

// ab64 is base64 with '.' in place of '+' and no padding.
var ab64 = base64.NewEncoding("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789./").WithPadding(base64.NoPadding)

// PBKDF2 is PBKDF2-HMAC-SHA256 with a per-hash random salt.
type PBKDF2 struct {
	Rounds int
}

func NewPBKDF2(rounds int) *PBKDF2 {
	if rounds <= 0 {
		rounds = DefaultPBKDF2Rounds
	}
	return &PBKDF2{Rounds: rounds}
}

func (p *PBKDF2) Prefix() string { return pbkdf2Prefix }

func (p *PBKDF2) Hash(plaintext string) (string, error) {
	salt := common.GenerateRandByteArray(pbkdf2SaltLen)
	key := pbkdf2.Key([]byte(plaintext), salt, p.Rounds, pbkdf2KeyLen, sha256.New)

	return fmt.Sprintf("$%s$%d$%s$%s", pbkdf2Prefix, p.Rounds, ab64.EncodeToString(salt), ab64.EncodeToString(key)), nil
}

func (p *PBKDF2) Verify(plaintext, encoded string) bool {
	// "", "pbkdf2-sha256", rounds, salt, checksum
	parts := strings.Split(encoded, "$")
	if len(parts) != 5 || parts[0] != "" || parts[1] != pbkdf2Prefix {
		return false
	}

	rounds, err := strconv.Atoi(parts[2])
	if err != nil || rounds <= 0 || rounds > pbkdf2MaxRounds {
		return false
	}

	salt, err := ab64.DecodeString(parts[3])
	if err != nil {
		return false
	}
	expected, err := ab64.DecodeString(parts[4])
	if err != nil || len(expected) == 0 {
		return false
	}

	computed := pbkdf2.Key([]byte(plaintext), salt, rounds, len(expected), sha256.New)
	return subtle.ConstantTimeCompare(computed, expected) == 1
}
