// Package httpapi is the JSON-over-HTTP surface of TokenKeeper.
package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/tokenkeeper/internal/logging"
	"github.com/dmitrijs2005/tokenkeeper/internal/server/services"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

type Handler struct {
	sessions services.Sessions
	gate     services.TokenGate
	metrics  http.Handler
	log      logging.Logger
}

// NewHandler builds the HTTP handlers. metrics may be nil, in which case
// /metrics is not mounted.
func NewHandler(sessions services.Sessions, gate services.TokenGate, metrics http.Handler, l logging.Logger) *Handler {
	return &Handler{
		sessions: sessions,
		gate:     gate,
		metrics:  metrics,
		log:      l.With("module", "http"),
	}
}

func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.health)
	if h.metrics != nil {
		r.Method(http.MethodGet, "/metrics", h.metrics)
	}

	r.Post("/register", h.register)
	r.Post("/registration", h.register)
	r.Post("/login", h.login)
	r.Post("/token/verify", h.verify)

	r.Route("/{publicId}/token", func(r chi.Router) {
		r.Post("/generate", h.generate)
		r.Get("/refresh", h.refresh)
		r.Get("/delete", h.delete)
		r.Get("/current", h.current)
	})

	return r
}

func (h *Handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		h.log.Debug(r.Context(), "request",
			"method", r.Method,
			"route", chi.RouteContext(r.Context()).RoutePattern(),
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func credentials(r *http.Request) services.Credentials {
	user, pass, _ := r.BasicAuth()
	return services.Credentials{UserName: user, Password: pass}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ALIVE"))
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	if _, err := h.sessions.Register(r.Context(), req.UserName, req.Password, req.NeverExpires); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, MessageResponse{
		Message: fmt.Sprintf("User named %s created successfully", req.UserName),
	})
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	res, err := h.sessions.Login(r.Context(), req.UserName, req.Password)
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, LoginResponse{UserName: res.UserName, PublicID: res.PublicID, Token: res.Token})
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := decode(w, r, &req, true); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	token, err := h.gate.IssueToken(r.Context(), credentials(r), chi.URLParam(r, "publicId"), req.NeverExpires)
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, TokenResponse{Token: token})
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	neverExpires, err := queryBool(r, "neverExpires")
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	token, err := h.gate.RefreshToken(r.Context(), credentials(r), chi.URLParam(r, "publicId"), neverExpires)
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, TokenResponse{Token: token})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	if err := h.gate.RevokeToken(r.Context(), credentials(r), chi.URLParam(r, "publicId")); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, MessageResponse{Message: "Token deleted"})
}

func (h *Handler) current(w http.ResponseWriter, r *http.Request) {
	cur, err := h.gate.GetCurrentToken(r.Context(), credentials(r), chi.URLParam(r, "publicId"))
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, CurrentTokenResponse{Token: cur.Token, NeverExpires: cur.NeverExpires})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	var req VerifyRequest
	if err := decode(w, r, &req, false); err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	v, err := h.sessions.VerifyToken(r.Context(), req.Token)
	if err != nil {
		writeError(r.Context(), w, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, VerifyResponse{PublicID: v.PublicID, Valid: v.Valid, Expired: v.Expired})
}
