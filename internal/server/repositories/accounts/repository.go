// Package accounts declares the credential store contract and its SQL
// implementation.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
)

// Repository is the credential store. Every method is a single statement,
// so each call is atomic per account.
type Repository interface {
	// Create inserts a new account and fills in its ID. A taken username
	// yields common.ErrDuplicateUsername.
	Create(ctx context.Context, account *models.Account) (*models.Account, error)

	// FindByUsername and FindByPublicID return common.ErrorNotFound when no
	// account matches.
	FindByUsername(ctx context.Context, userName string) (*models.Account, error)
	FindByPublicID(ctx context.Context, publicID string) (*models.Account, error)

	// Save persists the mutable fields (token and never-expires flag).
	Save(ctx context.Context, account *models.Account) error

	// SetTokenIfAbsent stores token only when the account has none.
	// Otherwise it returns common.ErrTokenAlreadyExists and changes nothing.
	SetTokenIfAbsent(ctx context.Context, id int64, token string, neverExpires bool) error

	// ClearToken removes the account's token; clearing an absent token is not an error.
	ClearToken(ctx context.Context, id int64) error
}
