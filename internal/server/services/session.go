package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/metrics"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/repomanager"
	"github.com/google/uuid"
)

// SessionManager implements the session operations on top of the
// credential store, the password hasher and the token signer.
type SessionManager struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      PasswordHasher
	signer      TokenSigner
	log         logging.Logger
	metrics     metrics.Recorder
	newPublicID func() string
}

var (
	_ Sessions      = (*SessionManager)(nil)
	_ Authenticator = (*SessionManager)(nil)
)

type Option func(*SessionManager)

func WithLogger(l logging.Logger) Option {
	return func(s *SessionManager) { s.log = l }
}

func WithMetrics(r metrics.Recorder) Option {
	return func(s *SessionManager) { s.metrics = r }
}

func NewSessionManager(db *sql.DB, m repomanager.RepositoryManager, hasher PasswordHasher, signer TokenSigner, opts ...Option) *SessionManager {
	s := &SessionManager{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		signer:      signer,
		log:         logging.Nop{},
		metrics:     metrics.Nop{},
		newPublicID: uuid.NewString,
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With("module", "sessions")
	return s
}

func (s *SessionManager) observe(op string, err error) {
	s.metrics.Observe(op, err)
}

// Register creates an account without a token. The username check and the
// insert share a transaction; the unique index still decides races.
func (s *SessionManager) Register(ctx context.Context, userName, password string, neverExpires bool) (acc *models.Account, err error) {
	defer func() { s.observe("register", err) }()

	if userName == "" || password == "" || common.UserNameTooLong(userName) {
		return nil, common.ErrValidation
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	account := &models.Account{
		PublicID:     s.newPublicID(),
		UserName:     userName,
		PasswordHash: hash,
		NeverExpires: neverExpires,
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Accounts(tx)

		_, err := repo.FindByUsername(ctx, userName)
		switch {
		case err == nil:
			return common.ErrDuplicateUsername
		case !errors.Is(err, common.ErrorNotFound):
			return err
		}

		acc, err = repo.Create(ctx, account)
		return err
	})
	if err != nil {
		if errors.Is(err, common.ErrDuplicateUsername) {
			return nil, err
		}
		return nil, fmt.Errorf("error creating account: %w", err)
	}

	s.log.Info(ctx, "account registered", "public_id", acc.PublicID)
	return acc, nil
}

// Login checks the password and reports the account's identity and current
// token. It never issues a token.
func (s *SessionManager) Login(ctx context.Context, userName, password string) (res *LoginResult, err error) {
	defer func() { s.observe("login", err) }()

	acc, err := s.repomanager.Accounts(s.db).FindByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownUser
		}
		return nil, fmt.Errorf("error searching account: %w", err)
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		s.log.Warn(ctx, "bad password", "public_id", acc.PublicID)
		return nil, common.ErrBadPassword
	}

	return &LoginResult{UserName: acc.UserName, PublicID: acc.PublicID, Token: acc.Token}, nil
}

func (s *SessionManager) Authenticate(ctx context.Context, userName, password string) (*models.Account, error) {
	if userName == "" || password == "" {
		return nil, common.ErrorUnauthorized
	}

	acc, err := s.repomanager.Accounts(s.db).FindByUsername(ctx, userName)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthorized
		}
		return nil, fmt.Errorf("error searching account: %w", err)
	}

	if !s.hasher.Verify(password, acc.PasswordHash) {
		return nil, common.ErrorUnauthorized
	}

	return acc, nil
}

func (s *SessionManager) neverExpires(account *models.Account, override *bool) bool {
	if override != nil {
		return *override
	}
	return account.NeverExpires
}

// IssueToken fails with common.ErrTokenAlreadyExists when the account holds
// a token, including one stored concurrently since account was loaded.
func (s *SessionManager) IssueToken(ctx context.Context, account *models.Account, neverExpires *bool) (token string, err error) {
	defer func() { s.observe("issue_token", err) }()

	if account.HasToken() {
		return "", common.ErrTokenAlreadyExists
	}

	ne := s.neverExpires(account, neverExpires)

	token, err = s.signer.Issue(account.PublicID, ne)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	if err = s.repomanager.Accounts(s.db).SetTokenIfAbsent(ctx, account.ID, token, ne); err != nil {
		if errors.Is(err, common.ErrTokenAlreadyExists) {
			return "", err
		}
		return "", fmt.Errorf("error storing token: %w", err)
	}

	account.Token = token
	account.NeverExpires = ne

	s.log.Info(ctx, "token issued", "public_id", account.PublicID, "never_expires", ne)
	return token, nil
}

// RefreshToken replaces whatever token the account holds, or stores a first one.
func (s *SessionManager) RefreshToken(ctx context.Context, account *models.Account, neverExpires *bool) (token string, err error) {
	defer func() { s.observe("refresh_token", err) }()

	ne := s.neverExpires(account, neverExpires)

	token, err = s.signer.Issue(account.PublicID, ne)
	if err != nil {
		return "", fmt.Errorf("error signing token: %w", err)
	}

	updated := *account
	updated.Token = token
	updated.NeverExpires = ne

	if err = s.repomanager.Accounts(s.db).Save(ctx, &updated); err != nil {
		return "", fmt.Errorf("error storing token: %w", err)
	}

	*account = updated

	s.log.Info(ctx, "token refreshed", "public_id", account.PublicID, "never_expires", ne)
	return token, nil
}

// RevokeToken is idempotent.
func (s *SessionManager) RevokeToken(ctx context.Context, account *models.Account) (err error) {
	defer func() { s.observe("revoke_token", err) }()

	if err = s.repomanager.Accounts(s.db).ClearToken(ctx, account.ID); err != nil {
		return fmt.Errorf("error clearing token: %w", err)
	}
	account.Token = ""

	s.log.Info(ctx, "token revoked", "public_id", account.PublicID)
	return nil
}

func (s *SessionManager) GetCurrentToken(ctx context.Context, account *models.Account) (cur *CurrentToken, err error) {
	defer func() { s.observe("current_token", err) }()

	if !account.HasToken() {
		return nil, common.ErrNoToken
	}
	return &CurrentToken{Token: account.Token, NeverExpires: account.NeverExpires}, nil
}

// VerifyToken checks the signature and expiry of token and that it is still
// the live token of its account. A revoked or replaced token is invalid.
// VerifyToken reports on token without failing for bad tokens; err is only
// set when the store cannot be read. Rejections are still counted by reason.
func (s *SessionManager) VerifyToken(ctx context.Context, token string) (v auth.Verification, err error) {
	defer func() {
		if err == nil {
			s.observe("verify_token", v.Err())
			return
		}
		s.observe("verify_token", err)
	}()

	v = s.signer.Verify(token)
	if !v.Valid {
		return v, nil
	}

	acc, err := s.repomanager.Accounts(s.db).FindByPublicID(ctx, v.PublicID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return auth.Verification{PublicID: v.PublicID}, nil
		}
		return auth.Verification{}, fmt.Errorf("error searching account: %w", err)
	}

	if acc.Token != token {
		return auth.Verification{PublicID: v.PublicID}, nil
	}

	return v, nil
}
