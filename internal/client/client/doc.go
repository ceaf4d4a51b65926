// Package client talks to the TokenKeeper gRPC service on behalf of the CLI.
//
// GRPCClient wraps the generated pb.TokenServiceClient, attaches
// basic credentials to the calls that need them and maps status errors
// back to the sentinels in internal/common, so callers can use errors.Is
// exactly as the server does.
package client
