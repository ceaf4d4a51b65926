// Package auth issues and verifies the bearer tokens handed to accounts.
package auth

import (
	"errors"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL is the lifetime of tokens issued without neverExpires.
const TokenTTL = common.TokenHorizonSeconds * time.Second

// Claims is the payload of an issued token.
type Claims struct {
	jwt.RegisteredClaims
	PublicID string `json:"public_id"`
}

// Verification is the outcome of checking a token. Valid and Expired are
// never both true.
type Verification struct {
	PublicID string
	Valid    bool
	Expired  bool
}

// Issuer signs tokens with a process-wide HMAC secret.
type Issuer struct {
	secret []byte
	now    func() time.Time
}

type Option func(*Issuer)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(i *Issuer) { i.now = now }
}

func NewIssuer(secret []byte, opts ...Option) *Issuer {
	i := &Issuer{secret: secret, now: time.Now}
	for _, o := range opts {
		o(i)
	}
	return i
}

// Issue returns a signed token bound to publicID. Every call yields a
// different token, even within the same second.
func (i *Issuer) Issue(publicID string, neverExpires bool) (string, error) {
	if publicID == "" {
		return "", common.ErrValidation
	}

	jti, err := common.MakeRandHexString(16)
	if err != nil {
		return "", err
	}

	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:       jti,
			IssuedAt: jwt.NewNumericDate(now),
		},
		PublicID: publicID,
	}
	if !neverExpires {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(TokenTTL))
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Verify checks signature and expiry. It fails closed: anything it cannot
// parse is reported as invalid.
func (i *Issuer) Verify(token string) Verification {
	claims := &Claims{}

	parsed, err := jwt.ParseWithClaims(token, claims,
		func(t *jwt.Token) (any, error) { return i.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	)

	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Verification{PublicID: claims.PublicID, Expired: true}
	case err != nil, parsed == nil, !parsed.Valid, claims.PublicID == "":
		return Verification{}
	}

	return Verification{PublicID: claims.PublicID, Valid: true}
}

// Err is the verdict as an error: nil, common.ErrTokenExpired or
// common.ErrInvalidToken.
func (v Verification) Err() error {
	switch {
	case v.Valid:
		return nil
	case v.Expired:
		return common.ErrTokenExpired
	default:
		return common.ErrInvalidToken
	}
}
