package services

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// Credentials is a username/password pair taken from a basic-auth header.
type Credentials struct {
	UserName string
	Password string
}

// Gate authenticates the caller before every token operation and checks
// that the addressed public id is the caller's own. Credential failures
// are reported as common.ErrorUnauthorized before any state error.
type Gate struct {
	auth    Authenticator
	issuer  TokenIssuer
	refresh TokenRefresher
	revoker TokenRevoker
	current CurrentTokenGetter
}

var _ TokenGate = (*Gate)(nil)

func NewGate(s *SessionManager) *Gate {
	return &Gate{auth: s, issuer: s, refresh: s, revoker: s, current: s}
}

func (g *Gate) authorize(ctx context.Context, creds Credentials, publicID string) (*models.Account, error) {
	acc, err := g.auth.Authenticate(ctx, creds.UserName, creds.Password)
	if err != nil {
		return nil, err
	}
	if publicID != acc.PublicID {
		return nil, common.ErrorUnauthorized
	}
	return acc, nil
}

func (g *Gate) IssueToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error) {
	acc, err := g.authorize(ctx, creds, publicID)
	if err != nil {
		return "", err
	}
	return g.issuer.IssueToken(ctx, acc, neverExpires)
}

func (g *Gate) RefreshToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error) {
	acc, err := g.authorize(ctx, creds, publicID)
	if err != nil {
		return "", err
	}
	return g.refresh.RefreshToken(ctx, acc, neverExpires)
}

func (g *Gate) RevokeToken(ctx context.Context, creds Credentials, publicID string) error {
	acc, err := g.authorize(ctx, creds, publicID)
	if err != nil {
		return err
	}
	return g.revoker.RevokeToken(ctx, acc)
}

func (g *Gate) GetCurrentToken(ctx context.Context, creds Credentials, publicID string) (*CurrentToken, error) {
	acc, err := g.authorize(ctx, creds, publicID)
	if err != nil {
		return nil, err
	}
	return g.current.GetCurrentToken(ctx, acc)
}
