package client

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
)

type GRPCClient struct {
	conn   *grpc.ClientConn
	client pb.TokenServiceClient
}

var _ Client = (*GRPCClient)(nil)

func NewTokenKeeperClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	opts = append([]grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}, opts...)

	conn, err := grpc.NewClient(endpointURL, opts...)
	if err != nil {
		return nil, err
	}
	return &GRPCClient{conn: conn, client: pb.NewTokenServiceClient(conn)}, nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) Register(ctx context.Context, userName, password string, neverExpires bool) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: userName, Password: password, NeverExpires: neverExpires})
	if err != nil {
		return "", mapError(err)
	}
	return resp.PublicId, nil
}

func (s *GRPCClient) Login(ctx context.Context, userName, password string) (*LoginResult, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: userName, Password: password})
	if err != nil {
		return nil, mapError(err)
	}
	return &LoginResult{UserName: resp.Username, PublicID: resp.PublicId, Token: resp.Token}, nil
}

func (s *GRPCClient) GenerateToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error) {
	resp, err := s.client.GenerateToken(withCredentials(ctx, creds), &pb.GenerateTokenRequest{PublicId: publicID, NeverExpires: neverExpires})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Token, nil
}

func (s *GRPCClient) RefreshToken(ctx context.Context, creds Credentials, publicID string, neverExpires *bool) (string, error) {
	resp, err := s.client.RefreshToken(withCredentials(ctx, creds), &pb.RefreshTokenRequest{PublicId: publicID, NeverExpires: neverExpires})
	if err != nil {
		return "", mapError(err)
	}
	return resp.Token, nil
}

func (s *GRPCClient) DeleteToken(ctx context.Context, creds Credentials, publicID string) error {
	_, err := s.client.DeleteToken(withCredentials(ctx, creds), &pb.DeleteTokenRequest{PublicId: publicID})
	return mapError(err)
}

func (s *GRPCClient) CurrentToken(ctx context.Context, creds Credentials, publicID string) (*CurrentToken, error) {
	resp, err := s.client.CurrentToken(withCredentials(ctx, creds), &pb.CurrentTokenRequest{PublicId: publicID})
	if err != nil {
		return nil, mapError(err)
	}
	return &CurrentToken{Token: resp.Token, NeverExpires: resp.NeverExpires}, nil
}

func (s *GRPCClient) VerifyToken(ctx context.Context, token string) (*Verification, error) {
	resp, err := s.client.VerifyToken(ctx, &pb.VerifyTokenRequest{Token: token})
	if err != nil {
		return nil, mapError(err)
	}
	return &Verification{PublicID: resp.PublicId, Valid: resp.Valid, Expired: resp.Expired}, nil
}

// sentinels the server reports by their message text.
var sentinels = []error{
	common.ErrValidation,
	common.ErrDuplicateUsername,
	common.ErrUnknownUser,
	common.ErrBadPassword,
	common.ErrorUnauthorized,
	common.ErrTokenAlreadyExists,
	common.ErrNoToken,
}

func mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)

	for _, s := range sentinels {
		if st.Message() == s.Error() {
			return s
		}
	}

	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return common.ErrorUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
