package services

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"sync"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/dbx"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/repositories/accounts"
)

var errBoom = errors.New("boom")

// plainHasher keeps tests fast; the real schemes are covered in package password.
type plainHasher struct{}

func (plainHasher) Hash(p string) (string, error) { return "plain$" + p, nil }
func (plainHasher) Verify(p, encoded string) bool {
	return strings.HasPrefix(encoded, "plain$") && encoded[len("plain$"):] == p
}

// fakeAccounts is an in-memory accounts.Repository.
type fakeAccounts struct {
	mu     sync.Mutex
	nextID int64
	byID   map[int64]models.Account

	findErr   error
	createErr error
	saveErr   error
	setErr    error
	clearErr  error
}

func newFakeAccounts() *fakeAccounts {
	return &fakeAccounts{byID: map[int64]models.Account{}}
}

func (f *fakeAccounts) Create(_ context.Context, a *models.Account) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return nil, f.createErr
	}
	for _, existing := range f.byID {
		if existing.UserName == a.UserName {
			return nil, common.ErrDuplicateUsername
		}
	}
	f.nextID++
	a.ID = f.nextID
	f.byID[a.ID] = *a
	return a, nil
}

func (f *fakeAccounts) find(match func(models.Account) bool) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, a := range f.byID {
		if match(a) {
			out := a
			return &out, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeAccounts) FindByUsername(_ context.Context, userName string) (*models.Account, error) {
	return f.find(func(a models.Account) bool { return a.UserName == userName })
}

func (f *fakeAccounts) FindByPublicID(_ context.Context, publicID string) (*models.Account, error) {
	return f.find(func(a models.Account) bool { return a.PublicID == publicID })
}

func (f *fakeAccounts) Save(_ context.Context, a *models.Account) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return f.saveErr
	}
	cur, ok := f.byID[a.ID]
	if !ok {
		return common.ErrorNotFound
	}
	cur.Token, cur.NeverExpires = a.Token, a.NeverExpires
	f.byID[a.ID] = cur
	return nil
}

func (f *fakeAccounts) SetTokenIfAbsent(_ context.Context, id int64, token string, neverExpires bool) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	cur, ok := f.byID[id]
	if !ok || cur.Token != "" {
		return common.ErrTokenAlreadyExists
	}
	cur.Token, cur.NeverExpires = token, neverExpires
	f.byID[id] = cur
	return nil
}

func (f *fakeAccounts) ClearToken(_ context.Context, id int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.clearErr != nil {
		return f.clearErr
	}
	if cur, ok := f.byID[id]; ok {
		cur.Token = ""
		f.byID[id] = cur
	}
	return nil
}

type fakeRepoManager struct {
	accounts *fakeAccounts
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Accounts(dbx.DBTX) accounts.Repository        { return m.accounts }

type recordingMetrics struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordingMetrics) Observe(op string, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	outcome := "ok"
	if err != nil {
		outcome = err.Error()
	}
	r.ops = append(r.ops, op+":"+outcome)
}
