// Package models defines server-side data models persisted in the database.
package models

import "time"

// Account is the durable identity record.
type Account struct {
	// ID is assigned by the store and never reused.
	ID int64
	// PublicID is the external handle, generated once at registration.
	PublicID string
	UserName string
	// PasswordHash is an encoded hash produced by the password package.
	PasswordHash string
	// IsAdmin is reserved; nothing reads it yet.
	IsAdmin bool
	// Token is the live bearer token, empty when the account has no session.
	Token string
	// NeverExpires records whether Token carries an expiry claim. Before the
	// first issuance it holds the preference given at registration.
	NeverExpires bool
	CreatedAt    time.Time
}

// HasToken reports whether the account currently holds a live token.
func (a *Account) HasToken() bool {
	return a.Token != ""
}
