package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/jmoiron/sqlx"
)

// SQLRepository implements Repository over dbx.DBTX (*sql.DB or *sql.Tx).
// Queries are written with "?" placeholders and rebound for the dialect.
type SQLRepository struct {
	db       dbx.DBTX
	bindType int
}

// NewSQLRepository binds a repository to db. bindType is one of the sqlx
// bind constants: sqlx.DOLLAR for PostgreSQL, sqlx.QUESTION for SQLite.
func NewSQLRepository(db dbx.DBTX, bindType int) *SQLRepository {
	return &SQLRepository{db: db, bindType: bindType}
}

func (r *SQLRepository) q(query string) string {
	return sqlx.Rebind(r.bindType, query)
}

const selectAccount = `SELECT id, public_id, username, password_hash, is_admin, token, never_expires
		 FROM accounts`

func (r *SQLRepository) Create(ctx context.Context, account *models.Account) (*models.Account, error) {
	query :=
		`INSERT INTO accounts (public_id, username, password_hash, never_expires)
		 VALUES (?, ?, ?, ?)
		 RETURNING id`

	err := r.db.QueryRowContext(ctx, r.q(query),
		account.PublicID, account.UserName, account.PasswordHash, account.NeverExpires).Scan(&account.ID)

	if err != nil {
		if isUsernameConflict(err) {
			return nil, common.ErrDuplicateUsername
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return account, nil
}

func (r *SQLRepository) FindByUsername(ctx context.Context, userName string) (*models.Account, error) {
	return r.findOne(ctx, selectAccount+` WHERE username = ?`, userName)
}

func (r *SQLRepository) FindByPublicID(ctx context.Context, publicID string) (*models.Account, error) {
	return r.findOne(ctx, selectAccount+` WHERE public_id = ?`, publicID)
}

func (r *SQLRepository) findOne(ctx context.Context, query string, arg any) (*models.Account, error) {
	account := &models.Account{}
	var token sql.NullString

	err := r.db.QueryRowContext(ctx, r.q(query), arg).Scan(
		&account.ID, &account.PublicID, &account.UserName, &account.PasswordHash,
		&account.IsAdmin, &token, &account.NeverExpires)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Token = token.String
	return account, nil
}

func (r *SQLRepository) Save(ctx context.Context, account *models.Account) error {
	query :=
		`UPDATE accounts SET token = ?, never_expires = ?
		 WHERE id = ?`

	res, err := r.db.ExecContext(ctx, r.q(query), nullableToken(account.Token), account.NeverExpires, account.ID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(res, common.ErrorNotFound)
}

func (r *SQLRepository) SetTokenIfAbsent(ctx context.Context, id int64, token string, neverExpires bool) error {
	query :=
		`UPDATE accounts SET token = ?, never_expires = ?
		 WHERE id = ? AND token IS NULL`

	res, err := r.db.ExecContext(ctx, r.q(query), nullableToken(token), neverExpires, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return expectOneRow(res, common.ErrTokenAlreadyExists)
}

func (r *SQLRepository) ClearToken(ctx context.Context, id int64) error {
	query :=
		`UPDATE accounts SET token = NULL
		 WHERE id = ?`

	if _, err := r.db.ExecContext(ctx, r.q(query), id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func nullableToken(token string) sql.NullString {
	return sql.NullString{String: token, Valid: token != ""}
}

// expectOneRow maps "no row changed" to errNone.
func expectOneRow(res sql.Result, errNone error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return errNone
	}
	return nil
}
