package cli

import (
	"bufio"
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPassword_Terminal(t *testing.T) {
	origTerm, origRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = origTerm, origRead })

	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) { return []byte("secret"), nil }

	out := &bytes.Buffer{}
	pw, err := GetPassword(bufio.NewReader(strings.NewReader("")), out)
	require.NoError(t, err)
	assert.Equal(t, "secret", pw)
	assert.Equal(t, "Enter password: \n", out.String())

	readPassword = func(int) ([]byte, error) { return nil, errors.New("tty gone") }
	_, err = GetPassword(bufio.NewReader(strings.NewReader("")), out)
	assert.EqualError(t, err, "tty gone")
}

func TestGetPassword_Piped(t *testing.T) {
	pipedStdin(t)

	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{name: "newline terminated", in: "pw1\nnext\n", want: "pw1"},
		{name: "crlf", in: "pw1\r\n", want: "pw1"},
		{name: "no trailing newline", in: "pw1", want: "pw1"},
		{name: "empty input", in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pw, err := GetPassword(bufio.NewReader(strings.NewReader(tt.in)), &bytes.Buffer{})
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, pw)
		})
	}
}

func TestOptionalBool(t *testing.T) {
	var o optionalBool
	assert.Equal(t, "", o.String())
	assert.True(t, o.IsBoolFlag())

	require.NoError(t, o.Set("true"))
	assert.Equal(t, "true", o.String())
	assert.Error(t, o.Set("perhaps"))
}
