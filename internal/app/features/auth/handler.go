// internal/app/features/auth/handler.go
package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/ngoworks/programhub/internal/app/store/accounts"
	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/app/system/httpjson"
	"github.com/ngoworks/programhub/internal/app/system/timeouts"
	"github.com/ngoworks/programhub/internal/app/system/token"
	"go.uber.org/zap"
)

// Handler serves registration and login.
type Handler struct {
	store  *accounts.Store
	issuer *token.Issuer
	logger *zap.Logger
}

func NewHandler(store *accounts.Store, issuer *token.Issuer, logger *zap.Logger) *Handler {
	return &Handler{store: store, issuer: issuer, logger: logger}
}

type registerRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Register creates an account. Username and email are unique
// case-insensitively; a clash answers 409.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	v := &apperr.Validation{}
	if strings.TrimSpace(req.FullName) == "" {
		v.Add("fullName", "Full name is required")
	}
	if strings.TrimSpace(req.Email) == "" {
		v.Add("email", "Email is required")
	}
	if strings.TrimSpace(req.Username) == "" {
		v.Add("username", "Username is required")
	}
	if req.Password == "" {
		v.Add("password", "Password is required")
	}
	if err := v.Or(); err != nil {
		httpjson.Fail(w, h.logger, "register", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.store.Register(ctx, strings.TrimSpace(req.FullName), strings.TrimSpace(req.Email), strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		if err == apperr.ErrConflict {
			httpjson.Conflict(w, "Username or email already exists")
			return
		}
		httpjson.Fail(w, h.logger, "register", err)
		return
	}
	httpjson.Created(w, map[string]any{"userId": acct.ID.Hex()})
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login verifies credentials and answers with a signed session token
// plus the account summary. A bad username and a bad password are
// indistinguishable.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	v := &apperr.Validation{}
	if strings.TrimSpace(req.Username) == "" {
		v.Add("username", "Username is required")
	}
	if req.Password == "" {
		v.Add("password", "Password is required")
	}
	if err := v.Or(); err != nil {
		httpjson.Fail(w, h.logger, "login", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	acct, err := h.store.Login(ctx, strings.TrimSpace(req.Username), req.Password)
	if err != nil {
		httpjson.Fail(w, h.logger, "login", err)
		return
	}

	signed, err := h.issuer.Issue(acct.ID.Hex(), acct.Username, acct.Role)
	if err != nil {
		httpjson.Fail(w, h.logger, "issue token", err)
		return
	}
	httpjson.OK(w, map[string]any{
		"token": signed,
		"user":  acct.Summary(),
	})
}
