// Package common contains shared constants and sentinel errors used across
// TokenKeeper components.
package common

// AuthorizationHeaderName is the gRPC metadata key carrying basic
// credentials ("Basic base64(username:password)") for gated calls.
const AuthorizationHeaderName = "authorization"

// TokenHorizonSeconds is the lifetime of a token issued without the
// never-expires flag.
const TokenHorizonSeconds = 30

// MaxUserNameLength is the longest username, in characters, the accounts
// table accepts.
const MaxUserNameLength = 50
