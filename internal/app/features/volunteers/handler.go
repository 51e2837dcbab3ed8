// internal/app/features/volunteers/handler.go
package volunteers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	volstore "github.com/ngoworks/programhub/internal/app/store/volunteers"
	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/app/system/httpjson"
	"github.com/ngoworks/programhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler serves the public volunteer intake form and the recent
// submissions listing.
type Handler struct {
	store  *volstore.Store
	logger *zap.Logger
}

func NewHandler(store *volstore.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// Submit accepts one intake submission. Interests may arrive as an
// array or a comma-separated string; both normalize to a clean list.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	var sub volstore.Submission
	if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return
	}

	v := &apperr.Validation{}
	if strings.TrimSpace(sub.Name) == "" {
		v.Add("name", "Name is required")
	}
	if strings.TrimSpace(sub.Email) == "" {
		v.Add("email", "Email is required")
	}
	if strings.TrimSpace(sub.Location) == "" {
		v.Add("location", "Location is required")
	}
	if err := v.Or(); err != nil {
		httpjson.Fail(w, h.logger, "submit volunteer", err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	created, err := h.store.Submit(ctx, sub)
	if err != nil {
		httpjson.Fail(w, h.logger, "submit volunteer", err)
		return
	}
	httpjson.Created(w, map[string]any{"volunteerId": created.ID.Hex()})
}

// ListRecent returns the newest submissions.
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := query.Get(r, "limit"); s != "" {
		if n, err := strconv.Atoi(s); err == nil {
			limit = n
		}
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	vols, err := h.store.ListRecent(ctx, limit)
	if err != nil {
		httpjson.Fail(w, h.logger, "list volunteers", err)
		return
	}
	httpjson.OK(w, map[string]any{"volunteers": vols})
}
