package grpc

import (
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type ctxKey string

const credentialsKey ctxKey = "credentials"

// gatedMethods require basic credentials in the authorization metadata.
var gatedMethods = map[string]bool{
	pb.TokenService_GenerateToken_FullMethodName: true,
	pb.TokenService_RefreshToken_FullMethodName:  true,
	pb.TokenService_DeleteToken_FullMethodName:   true,
	pb.TokenService_CurrentToken_FullMethodName:  true,
}

// ParseBasicAuth decodes "Basic base64(user:pass)".
func ParseBasicAuth(header string) (services.Credentials, bool) {
	const prefix = "Basic "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return services.Credentials{}, false
	}

	raw, err := base64.StdEncoding.DecodeString(header[len(prefix):])
	if err != nil {
		return services.Credentials{}, false
	}

	user, pass, ok := strings.Cut(string(raw), ":")
	if !ok {
		return services.Credentials{}, false
	}
	return services.Credentials{UserName: user, Password: pass}, true
}

func credentialsFromContext(ctx context.Context) services.Credentials {
	creds, _ := ctx.Value(credentialsKey).(services.Credentials)
	return creds
}

// credentialsInterceptor requires well-formed basic credentials on gated
// methods. Whether they are correct is decided by the gate.
func (s *GRPCServer) credentialsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if gatedMethods[info.FullMethod] {

		var header string
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			values := md.Get(common.AuthorizationHeaderName)
			if len(values) > 0 {
				header = values[0]
			}
		}
		if len(header) == 0 {
			return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
		}

		creds, ok := ParseBasicAuth(header)
		if !ok {
			return nil, status.Error(codes.Unauthenticated, common.ErrorUnauthorized.Error())
		}

		ctx = context.WithValue(ctx, credentialsKey, creds)
	}

	return handler(ctx, req)
}

func (s *GRPCServer) loggingInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)

	s.logger.Debug(ctx, "rpc",
		"method", info.FullMethod,
		"code", status.Code(err).String(),
		"duration", time.Since(start),
	)
	return resp, err
}
