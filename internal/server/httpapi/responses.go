package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/tokenkeeper/internal/common"
	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginResponse struct {
	UserName string `json:"username"`
	PublicID string `json:"publicId"`
	Token    string `json:"token"`
}

type TokenResponse struct {
	Token string `json:"token"`
}

type CurrentTokenResponse struct {
	Token        string `json:"token"`
	NeverExpires bool   `json:"neverExpires"`
}

type VerifyResponse struct {
	PublicID string `json:"publicId"`
	Valid    bool   `json:"valid"`
	Expired  bool   `json:"expired"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

var errorStatuses = []struct {
	err     error
	status  int
	message string
}{
	{common.ErrValidation, http.StatusBadRequest, ""},
	{common.ErrDuplicateUsername, http.StatusBadRequest, "User already exists"},
	{common.ErrUnknownUser, http.StatusBadRequest, "User does not exist"},
	{common.ErrBadPassword, http.StatusUnauthorized, "Wrong password"},
	{common.ErrorUnauthorized, http.StatusUnauthorized, "Unauthorized"},
	{common.ErrTokenAlreadyExists, http.StatusBadRequest, "Token already exists"},
	{common.ErrNoToken, http.StatusBadRequest, "Token does not exist"},
}

// writeError translates err into a status and message. Unknown errors are
// logged and reported as 500 without detail.
func writeError(ctx context.Context, w http.ResponseWriter, log logging.Logger, err error) {
	for _, e := range errorStatuses {
		if !errors.Is(err, e.err) {
			continue
		}
		msg := e.message
		if msg == "" {
			msg = err.Error()
		}
		if e.status == http.StatusUnauthorized {
			w.Header().Set("WWW-Authenticate", `Basic realm="tokenkeeper"`)
		}
		writeJSON(w, e.status, MessageResponse{Message: msg})
		return
	}

	log.Error(ctx, "request failed", "error", err)
	writeJSON(w, http.StatusInternalServerError, MessageResponse{Message: "internal error"})
}
