// Package services holds the session state machine of TokenKeeper.
//
// An account moves between three states:
//
//	Unregistered --Register--> Registered(no token)
//	Registered(no token) --IssueToken--> Registered(token)
//	Registered(token) --RefreshToken--> Registered(new token)
//	Registered(token) --RevokeToken--> Registered(no token)
//
// SessionManager implements every operation; Gate puts credential checks in
// front of the token operations for use by the transports.
package services
