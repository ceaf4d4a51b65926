package grpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	pb "github.com/dmitrijs2005/tokenkeeper/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var errorCodes = []struct {
	err  error
	code codes.Code
}{
	{common.ErrValidation, codes.InvalidArgument},
	{common.ErrDuplicateUsername, codes.AlreadyExists},
	{common.ErrUnknownUser, codes.NotFound},
	{common.ErrBadPassword, codes.Unauthenticated},
	{common.ErrorUnauthorized, codes.Unauthenticated},
	{common.ErrTokenAlreadyExists, codes.FailedPrecondition},
	{common.ErrNoToken, codes.NotFound},
}

// toStatus maps sentinel errors to codes. The message is the sentinel's
// text so clients can map it back.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return status.Error(e.code, e.err.Error())
		}
	}
	s.logger.Error(ctx, "rpc failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {
	if req.Username == "" || req.Password == "" || common.UserNameTooLong(req.Username) {
		return nil, status.Error(codes.InvalidArgument, common.ErrValidation.Error())
	}

	acc, err := s.sessions.Register(ctx, req.Username, req.Password, req.NeverExpires)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RegisterResponse{
		Message:  fmt.Sprintf("User named %s created successfully", acc.UserName),
		PublicId: acc.PublicID,
	}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {
	if req.Username == "" {
		return nil, status.Error(codes.InvalidArgument, common.ErrValidation.Error())
	}

	res, err := s.sessions.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{Username: res.UserName, PublicId: res.PublicID, Token: res.Token}, nil
}

func (s *GRPCServer) GenerateToken(ctx context.Context, req *pb.GenerateTokenRequest) (*pb.TokenResponse, error) {
	token, err := s.gate.IssueToken(ctx, credentialsFromContext(ctx), req.PublicId, req.NeverExpires)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.TokenResponse, error) {
	token, err := s.gate.RefreshToken(ctx, credentialsFromContext(ctx), req.PublicId, req.NeverExpires)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.TokenResponse{Token: token}, nil
}

func (s *GRPCServer) DeleteToken(ctx context.Context, req *pb.DeleteTokenRequest) (*pb.DeleteTokenResponse, error) {
	if err := s.gate.RevokeToken(ctx, credentialsFromContext(ctx), req.PublicId); err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.DeleteTokenResponse{Message: "Token deleted"}, nil
}

func (s *GRPCServer) CurrentToken(ctx context.Context, req *pb.CurrentTokenRequest) (*pb.CurrentTokenResponse, error) {
	cur, err := s.gate.GetCurrentToken(ctx, credentialsFromContext(ctx), req.PublicId)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CurrentTokenResponse{Token: cur.Token, NeverExpires: cur.NeverExpires}, nil
}

func (s *GRPCServer) VerifyToken(ctx context.Context, req *pb.VerifyTokenRequest) (*pb.VerifyTokenResponse, error) {
	if req.Token == "" {
		return nil, status.Error(codes.InvalidArgument, common.ErrValidation.Error())
	}

	v, err := s.sessions.VerifyToken(ctx, req.Token)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.VerifyTokenResponse{PublicId: v.PublicID, Valid: v.Valid, Expired: v.Expired}, nil
}
