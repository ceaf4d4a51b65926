package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/client/client"
	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClient struct {
	registered   map[string]bool
	neverExpires *bool
	creds        client.Credentials
	publicID     string
	loginErr     error
	deleted      bool
	closed       bool
}

func (f *fakeClient) Register(_ context.Context, userName, password string, neverExpires bool) (string, error) {
	if f.registered == nil {
		f.registered = map[string]bool{}
	}
	if f.registered[userName] {
		return "", common.ErrDuplicateUsername
	}
	f.registered[userName] = neverExpires
	f.creds = client.Credentials{UserName: userName, Password: password}
	return "pub-" + userName, nil
}

func (f *fakeClient) Login(_ context.Context, userName, password string) (*client.LoginResult, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &client.LoginResult{UserName: userName, PublicID: "pub-" + userName}, nil
}

func (f *fakeClient) GenerateToken(_ context.Context, creds client.Credentials, publicID string, neverExpires *bool) (string, error) {
	f.creds, f.publicID, f.neverExpires = creds, publicID, neverExpires
	return "tok-generated", nil
}

func (f *fakeClient) RefreshToken(_ context.Context, creds client.Credentials, publicID string, neverExpires *bool) (string, error) {
	f.creds, f.publicID, f.neverExpires = creds, publicID, neverExpires
	return "tok-refreshed", nil
}

func (f *fakeClient) DeleteToken(_ context.Context, creds client.Credentials, publicID string) error {
	f.creds, f.publicID, f.deleted = creds, publicID, true
	return nil
}

func (f *fakeClient) CurrentToken(_ context.Context, creds client.Credentials, publicID string) (*client.CurrentToken, error) {
	f.creds, f.publicID = creds, publicID
	return &client.CurrentToken{Token: "tok-current", NeverExpires: true}, nil
}

func (f *fakeClient) VerifyToken(_ context.Context, token string) (*client.Verification, error) {
	if token == "bad" {
		return &client.Verification{}, nil
	}
	return &client.Verification{PublicID: "pub-alice", Valid: true}, nil
}

func (f *fakeClient) Close() error {
	f.closed = true
	return nil
}

func pipedStdin(t *testing.T) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = orig })
}

func newTestApp(t *testing.T, fc *fakeClient, stdin string) (*App, *bytes.Buffer) {
	t.Helper()
	pipedStdin(t)
	out := &bytes.Buffer{}
	return newApp(fc, time.Second, strings.NewReader(stdin), out), out
}

func TestApp_Register(t *testing.T) {
	fc := &fakeClient{}
	app, out := newTestApp(t, fc, "pw1\n")

	require.NoError(t, app.Run(context.Background(), []string{"register", "-never-expires", "alice"}))

	assert.Contains(t, out.String(), "User named alice created successfully")
	assert.Contains(t, out.String(), "public id: pub-alice")
	assert.True(t, fc.registered["alice"])
	assert.Equal(t, "pw1", fc.creds.Password)
}

func TestApp_TerminalPasswordReachesClient(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	fc := &fakeClient{}
	out := &bytes.Buffer{}
	app := newApp(fc, time.Second, strings.NewReader(""), out)

	require.NoError(t, app.Run(context.Background(), []string{"generate", "alice"}))
	assert.Equal(t, client.Credentials{UserName: "alice", Password: "s3cret"}, fc.creds)
}

func TestApp_RegisterDuplicate(t *testing.T) {
	fc := &fakeClient{registered: map[string]bool{"alice": false}}
	app, _ := newTestApp(t, fc, "pw1\n")

	err := app.Run(context.Background(), []string{"register", "alice"})
	assert.ErrorIs(t, err, common.ErrDuplicateUsername)
}

func TestApp_Login(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{}, "pw1")

	require.NoError(t, app.Run(context.Background(), []string{"login", "alice"}))
	assert.Contains(t, out.String(), "username: alice")
	assert.Contains(t, out.String(), "public id: pub-alice")
	assert.NotContains(t, out.String(), "token:")
}

func TestApp_GenerateAndRefresh(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		token string
		want  *bool
	}{
		{name: "generate without flag", args: []string{"generate", "alice"}, token: "tok-generated", want: nil},
		{name: "generate with flag", args: []string{"generate", "-never-expires", "alice"}, token: "tok-generated", want: boolPtr(true)},
		{name: "refresh explicit false", args: []string{"refresh", "-never-expires=false", "alice"}, token: "tok-refreshed", want: boolPtr(false)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{}
			app, out := newTestApp(t, fc, "pw1\n")

			require.NoError(t, app.Run(context.Background(), tt.args))
			assert.Contains(t, out.String(), "token: "+tt.token)
			assert.Equal(t, "pub-alice", fc.publicID)
			assert.Equal(t, client.Credentials{UserName: "alice", Password: "pw1"}, fc.creds)
			assert.Equal(t, tt.want, fc.neverExpires)
		})
	}
}

func TestApp_DeleteAndCurrent(t *testing.T) {
	fc := &fakeClient{}
	app, out := newTestApp(t, fc, "pw1\npw1\n")

	require.NoError(t, app.Run(context.Background(), []string{"delete", "alice"}))
	assert.True(t, fc.deleted)
	assert.Contains(t, out.String(), "Token deleted")

	require.NoError(t, app.Run(context.Background(), []string{"current", "alice"}))
	assert.Contains(t, out.String(), "token: tok-current")
	assert.Contains(t, out.String(), "never expires: true")
}

func TestApp_LoginFailureStopsGatedCall(t *testing.T) {
	fc := &fakeClient{loginErr: common.ErrBadPassword}
	app, _ := newTestApp(t, fc, "nope\n")

	err := app.Run(context.Background(), []string{"delete", "alice"})
	assert.ErrorIs(t, err, common.ErrBadPassword)
	assert.False(t, fc.deleted)
}

func TestApp_Verify(t *testing.T) {
	app, out := newTestApp(t, &fakeClient{}, "")

	require.NoError(t, app.Run(context.Background(), []string{"verify", "good"}))
	assert.Contains(t, out.String(), "valid: true")

	out.Reset()
	require.NoError(t, app.Run(context.Background(), []string{"verify", "bad"}))
	assert.Contains(t, out.String(), "valid: false")
}

func TestApp_Usage(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr bool
	}{
		{name: "no args", args: nil, wantErr: true},
		{name: "help", args: []string{"help"}, wantErr: false},
		{name: "unknown command", args: []string{"frobnicate"}, wantErr: true},
		{name: "missing username", args: []string{"login"}, wantErr: true},
		{name: "extra positional", args: []string{"verify", "a", "b"}, wantErr: true},
		{name: "bad flag value", args: []string{"generate", "-never-expires=maybe", "alice"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app, out := newTestApp(t, &fakeClient{}, "")
			err := app.Run(context.Background(), tt.args)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUsage)
			} else {
				assert.NoError(t, err)
				assert.Contains(t, out.String(), "Commands:")
			}
		})
	}
}

func TestApp_PasswordReadError(t *testing.T) {
	app, _ := newTestApp(t, &fakeClient{}, "")

	err := app.Run(context.Background(), []string{"login", "alice"})
	assert.Error(t, err)
	assert.False(t, errors.Is(err, ErrUsage))
}

func TestApp_Close(t *testing.T) {
	fc := &fakeClient{}
	app, _ := newTestApp(t, fc, "")
	require.NoError(t, app.Close())
	assert.True(t, fc.closed)
}

func boolPtr(b bool) *bool { return &b }
