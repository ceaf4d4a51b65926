// Package password hashes and verifies account passwords.
//
// Hashes are self-describing strings with the salt and cost parameters
// embedded, so no separate salt storage is needed:
//
//	$pbkdf2-sha256$<rounds>$<salt>$<checksum>
//	$argon2id$v=19$m=<mem>,t=<iter>,p=<par>$<salt>$<key>
//
// The PBKDF2 form uses passlib's adapted base64 alphabet, so hashes created
// by passlib's pbkdf2_sha256 verify unchanged.
package password

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyPassword is returned when attempting to hash an empty password.
var ErrEmptyPassword = errors.New("password cannot be empty")

// Scheme is one hashing algorithm.
type Scheme interface {
	// Prefix is the identifier between the first two '$' of an encoded hash.
	Prefix() string
	Hash(plaintext string) (string, error)
	// Verify reports whether plaintext matches encoded. Malformed input
	// yields false, never a panic.
	Verify(plaintext, encoded string) bool
}

// Verifier hashes with one scheme and verifies hashes of any known scheme.
type Verifier struct {
	primary Scheme
	schemes map[string]Scheme
}

// NewVerifier returns a Verifier hashing with primary. Additional schemes
// are accepted for verification only.
func NewVerifier(primary Scheme, others ...Scheme) *Verifier {
	v := &Verifier{primary: primary, schemes: map[string]Scheme{primary.Prefix(): primary}}
	for _, s := range others {
		v.schemes[s.Prefix()] = s
	}
	return v
}

func (v *Verifier) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}
	return v.primary.Hash(plaintext)
}

func (v *Verifier) Verify(plaintext, encoded string) bool {
	s, ok := v.schemes[prefixOf(encoded)]
	if !ok {
		return false
	}
	return s.Verify(plaintext, encoded)
}

func prefixOf(encoded string) string {
	if !strings.HasPrefix(encoded, "$") {
		return ""
	}
	prefix, _, _ := strings.Cut(encoded[1:], "$")
	return prefix
}

// Scheme names accepted by ForScheme.
const (
	SchemePBKDF2SHA256 = pbkdf2Prefix
	SchemeArgon2id     = argon2Prefix
)

// ForScheme returns a Verifier hashing with the named scheme and accepting
// hashes of both schemes, so existing accounts keep working after the
// configured scheme changes.
func ForScheme(name string, pbkdf2Rounds int) (*Verifier, error) {
	pbkdf := NewPBKDF2(pbkdf2Rounds)
	argon := NewArgon2id()

	switch name {
	case SchemePBKDF2SHA256:
		return NewVerifier(pbkdf, argon), nil
	case SchemeArgon2id:
		return NewVerifier(argon, pbkdf), nil
	default:
		return nil, fmt.Errorf("unknown password scheme %q", name)
	}
}
