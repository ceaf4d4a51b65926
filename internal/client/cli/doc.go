// Package cli is the TokenKeeper command-line client.
//
// Each invocation runs one subcommand against the server's gRPC endpoint:
//
//	register [-never-expires] <username>
//	login <username>
//	generate [-never-expires[=bool]] <username>
//	refresh [-never-expires[=bool]] <username>
//	delete <username>
//	current <username>
//	verify <token>
//
// Passwords are read from the terminal without echo, or as one line from
// standard input when it is not a terminal. Token commands log in first to
// learn the account's public id, then call the gated operation with the
// same credentials.
package cli
