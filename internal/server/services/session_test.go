package services

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/auth"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/models"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

// newTestManager returns a manager over an in-memory repository. The sqlmock
// db only serves the Begin/Commit of Register.
func newTestManager(t *testing.T) (*SessionManager, *fakeAccounts, sqlmock.Sqlmock, *testClock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	clock := &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	repo := newFakeAccounts()
	s := NewSessionManager(db, &fakeRepoManager{accounts: repo}, plainHasher{},
		auth.NewIssuer([]byte("k"), auth.WithClock(clock.Now)))

	return s, repo, mock, clock
}

func register(t *testing.T, s *SessionManager, mock sqlmock.Sqlmock, user, pass string, neverExpires bool) *models.Account {
	t.Helper()
	mock.ExpectBegin()
	mock.ExpectCommit()
	acc, err := s.Register(context.Background(), user, pass, neverExpires)
	require.NoError(t, err)
	return acc
}

func boolPtr(b bool) *bool { return &b }

func TestRegister_Success(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)

	acc := register(t, s, mock, "alice", "pw1", false)

	want := &models.Account{UserName: "alice", PasswordHash: "plain$pw1"}
	if diff := cmp.Diff(want, acc, cmpopts.IgnoreFields(models.Account{}, "ID", "PublicID")); diff != "" {
		t.Fatalf("account mismatch (-want +got):\n%s", diff)
	}
	assert.NotZero(t, acc.ID)
	assert.Len(t, acc.PublicID, 36)
	assert.False(t, acc.HasToken())
	assert.False(t, acc.IsAdmin)
	assert.Len(t, repo.byID, 1)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Duplicate(t *testing.T) {
	s, _, mock, _ := newTestManager(t)
	register(t, s, mock, "alice", "pw1", false)

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Register(context.Background(), "alice", "other", false)
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRegister_Validation(t *testing.T) {
	s, _, _, _ := newTestManager(t)

	_, err := s.Register(context.Background(), "", "pw", false)
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = s.Register(context.Background(), "bob", "", false)
	assert.ErrorIs(t, err, common.ErrValidation)
	_, err = s.Register(context.Background(), strings.Repeat("b", common.MaxUserNameLength+1), "pw", false)
	assert.ErrorIs(t, err, common.ErrValidation)
}

func TestRegister_StoreError(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	repo.createErr = errBoom

	mock.ExpectBegin()
	mock.ExpectRollback()
	_, err := s.Register(context.Background(), "alice", "pw1", false)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "error creating account")
}

func TestRegister_DistinctPublicIDs(t *testing.T) {
	s, _, mock, _ := newTestManager(t)

	const n = 10_000
	seen := make(map[string]struct{}, n)
	for i := 0; i < n; i++ {
		acc := register(t, s, mock, "user-"+strconv.Itoa(i), "pw", false)
		seen[acc.PublicID] = struct{}{}
	}
	assert.Len(t, seen, n)
}

func TestLogin(t *testing.T) {
	s, _, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	res, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, &LoginResult{UserName: "alice", PublicID: acc.PublicID}, res)

	_, err = s.Login(ctx, "bob", "pw1")
	assert.ErrorIs(t, err, common.ErrUnknownUser)

	_, err = s.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, common.ErrBadPassword)
}

func TestLogin_NeverMintsButShowsToken(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	res, err := s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Empty(t, res.Token)
	assert.Empty(t, repo.byID[acc.ID].Token)

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	res, err = s.Login(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, tok, res.Token)
}

func TestLogin_StoreError(t *testing.T) {
	s, repo, _, _ := newTestManager(t)
	repo.findErr = errBoom

	_, err := s.Login(context.Background(), "alice", "pw1")
	assert.ErrorIs(t, err, errBoom)
}

func TestAuthenticate(t *testing.T) {
	s, _, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	got, err := s.Authenticate(ctx, "alice", "pw1")
	require.NoError(t, err)
	assert.Equal(t, acc.PublicID, got.PublicID)

	for _, c := range []Credentials{{"", ""}, {"alice", ""}, {"bob", "pw1"}, {"alice", "nope"}} {
		_, err := s.Authenticate(ctx, c.UserName, c.Password)
		assert.ErrorIs(t, err, common.ErrorUnauthorized, c)
	}
}

func TestIssueToken_ThenAlreadyExists(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, tok)
	assert.Equal(t, tok, repo.byID[acc.ID].Token)

	_, err = s.IssueToken(ctx, acc, nil)
	assert.ErrorIs(t, err, common.ErrTokenAlreadyExists)

	// A stale copy without the token still loses against the stored one.
	stale := *acc
	stale.Token = ""
	_, err = s.IssueToken(ctx, &stale, nil)
	assert.ErrorIs(t, err, common.ErrTokenAlreadyExists)
	assert.Equal(t, tok, repo.byID[acc.ID].Token)
}

func TestIssueToken_NeverExpiresDefaultsToStoredPreference(t *testing.T) {
	s, repo, mock, clock := newTestManager(t)
	ctx := context.Background()

	forever := register(t, s, mock, "alice", "pw1", true)
	tok, err := s.IssueToken(ctx, forever, nil)
	require.NoError(t, err)
	assert.True(t, repo.byID[forever.ID].NeverExpires)

	short := register(t, s, mock, "bob", "pw2", true)
	tok2, err := s.IssueToken(ctx, short, boolPtr(false))
	require.NoError(t, err)
	assert.False(t, repo.byID[short.ID].NeverExpires)

	clock.t = clock.t.Add(time.Hour)
	v, err := s.VerifyToken(ctx, tok)
	require.NoError(t, err)
	assert.True(t, v.Valid)

	v, err = s.VerifyToken(ctx, tok2)
	require.NoError(t, err)
	assert.True(t, v.Expired)
}

func TestIssueToken_StoreError(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	repo.setErr = errBoom

	_, err := s.IssueToken(context.Background(), acc, nil)
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, acc.HasToken())
}

func TestRefreshToken(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	first, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	second, err := s.RefreshToken(ctx, acc, boolPtr(true))
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, second, repo.byID[acc.ID].Token)
	assert.True(t, repo.byID[acc.ID].NeverExpires)

	// The replaced token no longer verifies.
	v, err := s.VerifyToken(ctx, first)
	require.NoError(t, err)
	assert.False(t, v.Valid)
}

func TestRefreshToken_WithoutPriorToken(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)

	tok, err := s.RefreshToken(context.Background(), acc, nil)
	require.NoError(t, err)
	assert.Equal(t, tok, repo.byID[acc.ID].Token)
}

func TestRefreshToken_StoreErrorLeavesAccount(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	repo.saveErr = errBoom

	_, err := s.RefreshToken(context.Background(), acc, nil)
	assert.ErrorIs(t, err, errBoom)
	assert.False(t, acc.HasToken())
}

func TestRevokeThenCurrent(t *testing.T) {
	s, _, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	cur, err := s.GetCurrentToken(ctx, acc)
	require.NoError(t, err)
	assert.Equal(t, &CurrentToken{Token: tok, NeverExpires: false}, cur)

	require.NoError(t, s.RevokeToken(ctx, acc))
	_, err = s.GetCurrentToken(ctx, acc)
	assert.ErrorIs(t, err, common.ErrNoToken)

	require.NoError(t, s.RevokeToken(ctx, acc))

	// After revocation a fresh token can be issued again.
	_, err = s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)
}

func TestRevokeToken_StoreError(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	repo.clearErr = errBoom

	assert.ErrorIs(t, s.RevokeToken(context.Background(), acc), errBoom)
}

func TestVerifyToken(t *testing.T) {
	s, _, mock, clock := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	v, err := s.VerifyToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Verification{PublicID: acc.PublicID, Valid: true}, v)

	v, err = s.VerifyToken(ctx, "garbage")
	require.NoError(t, err)
	assert.Equal(t, auth.Verification{}, v)

	clock.t = clock.t.Add(31 * time.Second)
	v, err = s.VerifyToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Verification{PublicID: acc.PublicID, Expired: true}, v)
}

func TestVerifyToken_Revoked(t *testing.T) {
	s, _, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)
	require.NoError(t, s.RevokeToken(ctx, acc))

	v, err := s.VerifyToken(ctx, tok)
	require.NoError(t, err)
	assert.Equal(t, auth.Verification{PublicID: acc.PublicID}, v)
}

func TestVerifyToken_StoreError(t *testing.T) {
	s, repo, mock, _ := newTestManager(t)
	acc := register(t, s, mock, "alice", "pw1", false)
	ctx := context.Background()

	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	repo.findErr = errBoom
	_, err = s.VerifyToken(ctx, tok)
	assert.ErrorIs(t, err, errBoom)
}

func TestMetricsObserved(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &recordingMetrics{}
	s := NewSessionManager(db, &fakeRepoManager{accounts: newFakeAccounts()}, plainHasher{},
		auth.NewIssuer([]byte("k")), WithMetrics(rec))

	mock.ExpectBegin()
	mock.ExpectCommit()
	_, err = s.Register(context.Background(), "alice", "pw1", false)
	require.NoError(t, err)
	_, _ = s.Login(context.Background(), "ghost", "x")

	assert.Equal(t, []string{"register:ok", "login:" + common.ErrUnknownUser.Error()}, rec.ops)
}

func TestVerifyToken_RejectionsCountedByReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rec := &recordingMetrics{}
	clock := &testClock{t: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSessionManager(db, &fakeRepoManager{accounts: newFakeAccounts()}, plainHasher{},
		auth.NewIssuer([]byte("k"), auth.WithClock(clock.Now)), WithMetrics(rec))
	ctx := context.Background()

	acc := register(t, s, mock, "alice", "pw1", false)
	tok, err := s.IssueToken(ctx, acc, nil)
	require.NoError(t, err)

	rec.ops = nil
	_, err = s.VerifyToken(ctx, tok)
	require.NoError(t, err)
	_, err = s.VerifyToken(ctx, "garbage")
	require.NoError(t, err)
	clock.t = clock.t.Add(31 * time.Second)
	_, err = s.VerifyToken(ctx, tok)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"verify_token:ok",
		"verify_token:" + common.ErrInvalidToken.Error(),
		"verify_token:" + common.ErrTokenExpired.Error(),
	}, rec.ops)
}
