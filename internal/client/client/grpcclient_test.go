package client

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// fakeServer records what it receives and answers from preset fields.
type fakeServer struct {
	pb.UnimplementedTokenServiceServer
	lastAuth     string
	lastGenerate *pb.GenerateTokenRequest
	err          error
}

func (f *fakeServer) capture(ctx context.Context) {
	f.lastAuth = ""
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if v := md.Get(common.AuthorizationHeaderName); len(v) > 0 {
			f.lastAuth = v[0]
		}
	}
}

func (f *fakeServer) Register(ctx context.Context, in *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	f.capture(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.RegisterResponse{Message: "ok", PublicId: "pub-" + in.Username}, nil
}

func (f *fakeServer) Login(ctx context.Context, in *pb.LoginRequest) (*pb.LoginResponse, error) {
	f.capture(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.LoginResponse{Username: in.Username, PublicId: "pub-" + in.Username, Token: "tok"}, nil
}

func (f *fakeServer) GenerateToken(ctx context.Context, in *pb.GenerateTokenRequest) (*pb.TokenResponse, error) {
	f.capture(ctx)
	f.lastGenerate = in
	if f.err != nil {
		return nil, f.err
	}
	return &pb.TokenResponse{Token: "generated"}, nil
}

func (f *fakeServer) RefreshToken(ctx context.Context, in *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	f.capture(ctx)
	return &pb.TokenResponse{Token: "refreshed"}, f.err
}

func (f *fakeServer) DeleteToken(ctx context.Context, in *pb.DeleteTokenRequest) (*pb.DeleteTokenResponse, error) {
	f.capture(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.DeleteTokenResponse{Message: "Token deleted"}, nil
}

func (f *fakeServer) CurrentToken(ctx context.Context, in *pb.CurrentTokenRequest) (*pb.CurrentTokenResponse, error) {
	f.capture(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.CurrentTokenResponse{Token: "current", NeverExpires: true}, nil
}

func (f *fakeServer) VerifyToken(ctx context.Context, in *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {
	f.capture(ctx)
	if f.err != nil {
		return nil, f.err
	}
	return &pb.VerifyTokenResponse{PublicId: "pub", Valid: in.Token == "good"}, nil
}

func startFake(t *testing.T) (*GRPCClient, *fakeServer) {
	t.Helper()

	fake := &fakeServer{}
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	pb.RegisterTokenServiceServer(srv, fake)
	go func() { _ = srv.Serve(lis) }()

	c, err := NewTokenKeeperClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = c.Close()
		srv.Stop()
	})
	return c, fake
}

func TestGRPCClient_UngatedCallsSendNoCredentials(t *testing.T) {
	c, fake := startFake(t)
	ctx := context.Background()

	pub, err := c.Register(ctx, "alice", "pw1", false)
	require.NoError(t, err)
	assert.Equal(t, "pub-alice", pub)
	assert.Empty(t, fake.lastAuth)

	res, err := c.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, &LoginResult{UserName: "alice", PublicID: "pub-alice", Token: "tok"}, res)
	assert.Empty(t, fake.lastAuth)

	v, err := c.VerifyToken(ctx, "good")
	require.NoError(t, err)
	assert.Equal(t, &Verification{PublicID: "pub", Valid: true}, v)
}

func TestGRPCClient_GatedCallsSendBasicAuth(t *testing.T) {
	c, fake := startFake(t)
	ctx := context.Background()
	creds := Credentials{UserName: "alice", Password: "pw1"}
	want := "Basic YWxpY2U6cHcx"

	no := false
	tok, err := c.GenerateToken(ctx, creds, "pub-alice", &no)
	require.NoError(t, err)
	assert.Equal(t, "generated", tok)
	assert.Equal(t, want, fake.lastAuth)
	require.NotNil(t, fake.lastGenerate.NeverExpires)
	assert.False(t, *fake.lastGenerate.NeverExpires)

	_, err = c.GenerateToken(ctx, creds, "pub-alice", nil)
	require.NoError(t, err)
	assert.Nil(t, fake.lastGenerate.NeverExpires)

	tok, err = c.RefreshToken(ctx, creds, "pub-alice", nil)
	require.NoError(t, err)
	assert.Equal(t, "refreshed", tok)
	assert.Equal(t, want, fake.lastAuth)

	cur, err := c.CurrentToken(ctx, creds, "pub-alice")
	require.NoError(t, err)
	assert.Equal(t, &CurrentToken{Token: "current", NeverExpires: true}, cur)

	require.NoError(t, c.DeleteToken(ctx, creds, "pub-alice"))
	assert.Equal(t, want, fake.lastAuth)
}

func TestGRPCClient_ErrorsMapToSentinels(t *testing.T) {
	c, fake := startFake(t)
	ctx := context.Background()

	fake.err = status.Error(codes.FailedPrecondition, common.ErrTokenAlreadyExists.Error())
	_, err := c.GenerateToken(ctx, Credentials{}, "p", nil)
	assert.ErrorIs(t, err, common.ErrTokenAlreadyExists)

	fake.err = status.Error(codes.AlreadyExists, common.ErrDuplicateUsername.Error())
	_, err = c.Register(ctx, "alice", "pw1", false)
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)
}

func TestMapError(t *testing.T) {
	tests := []struct {
		name string
		in   error
		want error
	}{
		{"nil", nil, nil},
		{"sentinel by message", status.Error(codes.NotFound, common.ErrNoToken.Error()), common.ErrNoToken},
		{"bad password", status.Error(codes.Unauthenticated, common.ErrBadPassword.Error()), common.ErrBadPassword},
		{"generic unauthenticated", status.Error(codes.Unauthenticated, "nope"), common.ErrorUnauthorized},
		{"unavailable", status.Error(codes.Unavailable, "conn refused"), ErrUnavailable},
		{"deadline", status.Error(codes.DeadlineExceeded, "slow"), ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.in)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}

	internal := status.Error(codes.Internal, "boom")
	got := mapError(internal)
	assert.True(t, errors.Is(got, internal))
	assert.Contains(t, got.Error(), "rpc error")
}

func TestWithCredentials_ReplacesExisting(t *testing.T) {
	ctx := metadata.AppendToOutgoingContext(context.Background(), common.AuthorizationHeaderName, "Basic old", "x-other", "1")
	ctx = withCredentials(ctx, Credentials{UserName: "a", Password: "b"})

	md, ok := metadata.FromOutgoingContext(ctx)
	require.True(t, ok)
	assert.Equal(t, []string{basicAuth(Credentials{UserName: "a", Password: "b"})}, md.Get(common.AuthorizationHeaderName))
	assert.Equal(t, []string{"1"}, md.Get("x-other"))
}
