package common

import (
	"crypto/rand"
	"encoding/hex"
	"unicode/utf8"
)

// GenerateRandByteArray returns size bytes read from crypto/rand.
// It panics if the system random source fails, which on supported
// platforms does not happen.
func GenerateRandByteArray(size int) []byte {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		panic(err)
	}
	return b
}

// MakeRandHexString generates size random bytes and returns them hex encoded,
// so the resulting string is 2*size characters long.
func MakeRandHexString(size int) (string, error) {
	b := make([]byte, size)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// UserNameTooLong reports whether name exceeds MaxUserNameLength characters.
func UserNameTooLong(name string) bool {
	return utf8.RuneCountInString(name) > MaxUserNameLength
}
