package client

import (
	"context"
	"encoding/base64"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"google.golang.org/grpc/metadata"
)

// Credentials is the username/password pair sent with gated calls.
type Credentials struct {
	UserName string
	Password string
}

type LoginResult struct {
	UserName string
	PublicID string
	Token    string
}

type CurrentToken struct {
	Token        string
	NeverExpires bool
}

type Verification struct {
	PublicID string
	Valid    bool
	Expired  bool
}

// Client is the transport-agnostic contract the CLI depends on.
type Client interface {
	Register(ctx context.Context, userName, password string, neverExpires bool) (string, error)
	Login(ctx context.Context, userName, password string) (*LoginResult, error)
	GenerateToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error)
	RefreshToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error)
	DeleteToken(ctx context.Context, creds Credentials, publicID string) error
	CurrentToken(ctx context.Context, creds Credentials, publicID string) (*CurrentToken, error)
	VerifyToken(ctx context.Context, token string) (*Verification, error)
	Close() error
}

func basicAuth(creds Credentials) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(creds.UserName+":"+creds.Password))
}

func withCredentials(ctx context.Context, creds Credentials) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Set(common.AuthorizationHeaderName, basicAuth(creds))

	return metadata.NewOutgoingContext(ctx, md)
}
