package services

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// PasswordHasher is satisfied by *password.Verifier.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, encoded string) bool
}

// TokenSigner is satisfied by *auth.Issuer.
type TokenSigner interface {
	Issue(publicID string, neverExpires bool) (string, error)
	Verify(token string) auth.Verification
}

// LoginResult is what a successful login reveals about the account.
// Token is empty when no token has been issued.
type LoginResult struct {
	UserName string
	PublicID string
	Token    string
}

// CurrentToken is the live token of an account.
type CurrentToken struct {
	Token        string
	NeverExpires bool
}

type Registerer interface {
	Register(ctx context.Context, userName, password string, neverExpires bool) (*models.Account, error)
}

type LoginVerifier interface {
	Login(ctx context.Context, userName, password string) (*LoginResult, error)
}

// Authenticator resolves a username/password pair to its account.
// Any failure is reported as common.ErrorUnauthorized.
type Authenticator interface {
	Authenticate(ctx context.Context, userName, password string) (*models.Account, error)
}

// TokenIssuer mints the first token of an account. A nil neverExpires
// falls back to the account's stored preference.
type TokenIssuer interface {
	IssueToken(ctx context.Context, account *models.Account, neverExpires *bool) (string, error)
}

type TokenRefresher interface {
	RefreshToken(ctx context.Context, account *models.Account, neverExpires *bool) (string, error)
}

type TokenRevoker interface {
	RevokeToken(ctx context.Context, account *models.Account) error
}

type CurrentTokenGetter interface {
	GetCurrentToken(ctx context.Context, account *models.Account) (*CurrentToken, error)
}

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (auth.Verification, error)
}

// Sessions is the ungated surface of SessionManager.
type Sessions interface {
	Registerer
	LoginVerifier
	TokenVerifier
}

// TokenGate is the credential-checked surface, satisfied by *Gate.
type TokenGate interface {
	IssueToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error)
	RefreshToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error)
	RevokeToken(ctx context.Context, creds Credentials, publicID string) error
	GetCurrentToken(ctx context.Context, creds Credentials, publicID string) (*CurrentToken, error)
}
