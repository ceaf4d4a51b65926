package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
)

const maxBodySize = 1 << 20

type RegisterRequest struct {
	UserName     string `json:"username"`
	Password     string `json:"password"`
	NeverExpires bool   `json:"neverExpires"`
}

func (r *RegisterRequest) Validate() error {
	if r.UserName == "" || r.Password == "" {
		return fmt.Errorf("%w: username and password are required", common.ErrValidation)
	}
	if common.UserNameTooLong(r.UserName) {
		return fmt.Errorf("%w: username is longer than %d characters", common.ErrValidation, common.MaxUserNameLength)
	}
	return nil
}

type LoginRequest struct {
	UserName string `json:"username"`
	Password string `json:"password"`
}

// Validate requires only the username. An empty password is checked like
// any other and fails as a wrong password.
func (r *LoginRequest) Validate() error {
	if r.UserName == "" {
		return fmt.Errorf("%w: username is required", common.ErrValidation)
	}
	return nil
}

// GenerateRequest may be sent with an empty body.
type GenerateRequest struct {
	NeverExpires *bool `json:"neverExpires"`
}

func (r *GenerateRequest) Validate() error { return nil }

type VerifyRequest struct {
	Token string `json:"token"`
}

func (r *VerifyRequest) Validate() error {
	if r.Token == "" {
		return fmt.Errorf("%w: token is required", common.ErrValidation)
	}
	return nil
}

type validator interface {
	Validate() error
}

// decode reads a JSON body into v and validates it. An empty body is
// accepted when allowEmpty is set and leaves v at its zero value.
func decode(w http.ResponseWriter, r *http.Request, v validator, allowEmpty bool) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))

	if err := dec.Decode(v); err != nil {
		if !(allowEmpty && errors.Is(err, io.EOF)) {
			return fmt.Errorf("%w: malformed body: %v", common.ErrValidation, err)
		}
	}

	return v.Validate()
}

// queryBool parses an optional boolean query parameter.
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a boolean", common.ErrValidation, name)
	}
	return &b, nil
}
