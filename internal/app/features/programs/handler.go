// internal/app/features/programs/handler.go
package programs

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ngoworks/programhub/internal/app/store/records"
	"github.com/ngoworks/programhub/internal/app/system/apperr"
	"github.com/ngoworks/programhub/internal/app/system/httpjson"
	"github.com/ngoworks/programhub/internal/app/system/paging"
	"github.com/ngoworks/programhub/internal/app/system/timeouts"
	"github.com/ngoworks/programhub/internal/domain/catalog"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// Handler serves one record category's endpoints. The same handler code
// is mounted once per category; everything category-specific comes from
// the store's catalog configuration.
type Handler struct {
	store  *records.Store
	logger *zap.Logger
}

func NewHandler(store *records.Store, logger *zap.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

func (h *Handler) cat() *catalog.Category { return h.store.Category() }

// decodeBody reads a JSON object body. A malformed body reports 400.
func decodeBody(w http.ResponseWriter, r *http.Request) (bson.M, bool) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		httpjson.BadRequest(w, "invalid JSON body")
		return nil, false
	}
	return bson.M(payload), true
}

// fail maps store errors onto the envelope, naming the missing resource
// the way clients expect ("Campaign not found", "Milestone not found").
func (h *Handler) fail(w http.ResponseWriter, op string, err error, childNoun string) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		httpjson.NotFound(w, h.cat().Noun+" not found")
	case errors.Is(err, apperr.ErrChildNotFound):
		if childNoun == "" {
			childNoun = "Element"
		}
		httpjson.NotFound(w, childNoun+" not found")
	case errors.Is(err, apperr.ErrConflict):
		httpjson.Conflict(w, h.cat().Noun+" with this ID already exists")
	default:
		httpjson.Fail(w, h.logger, op, err)
	}
}

func shortCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.Short())
}

func mediumCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), timeouts.Medium())
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	doc, ok := decodeBody(w, r)
	if !ok {
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	created, err := h.store.Create(ctx, doc)
	if err != nil {
		h.fail(w, "create "+h.cat().Name, err, "")
		return
	}
	httpjson.Created(w, created)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	params := map[string]string{}
	for param := range h.cat().Filters {
		params[param] = r.URL.Query().Get(param)
	}
	p := paging.Parse(r)

	ctx, cancel := mediumCtx(r)
	defer cancel()

	docs, total, err := h.store.List(ctx, params, p)
	if err != nil {
		h.fail(w, "list "+h.cat().Name, err, "")
		return
	}
	httpjson.OKPaged(w, docs, paging.NewMeta(p, total))
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := shortCtx(r)
	defer cancel()

	doc, err := h.store.Get(ctx, chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, "get "+h.cat().Name, err, "")
		return
	}
	httpjson.OK(w, doc)
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	patch, ok := decodeBody(w, r)
	if !ok {
		return
	}

	ctx, cancel := shortCtx(r)
	defer cancel()

	doc, err := h.store.Update(ctx, chi.URLParam(r, "key"), patch)
	if err != nil {
		h.fail(w, "update "+h.cat().Name, err, "")
		return
	}
	httpjson.OK(w, doc)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := shortCtx(r)
	defer cancel()

	if err := h.store.Delete(ctx, chi.URLParam(r, "key")); err != nil {
		h.fail(w, "delete "+h.cat().Name, err, "")
		return
	}
	httpjson.Message(w, h.cat().Noun+" deleted successfully")
}

func (h *Handler) Analytics(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := shortCtx(r)
	defer cancel()

	data, err := h.store.Analytics(ctx, chi.URLParam(r, "key"))
	if err != nil {
		h.fail(w, "analytics "+h.cat().Name, err, "")
		return
	}
	httpjson.OK(w, data)
}

func (h *Handler) GlobalStats(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	data, err := h.store.GlobalStats(ctx)
	if err != nil {
		h.fail(w, "stats "+h.cat().Name, err, "")
		return
	}
	httpjson.OK(w, data)
}

// appendChild handles POST {key}/{child kind}.
func (h *Handler) appendChild(child *catalog.Child) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodeBody(w, r)
		if !ok {
			return
		}

		ctx, cancel := shortCtx(r)
		defer cancel()

		if err := h.store.AppendChild(ctx, chi.URLParam(r, "key"), child, payload); err != nil {
			h.fail(w, "append "+h.cat().Name+" "+child.Kind, err, child.Noun)
			return
		}
		httpjson.Message(w, child.AddedMsg)
	}
}

// updateChild handles PUT {key}/{child kind}/{childID}.
func (h *Handler) updateChild(child *catalog.Child) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		patch, ok := decodeBody(w, r)
		if !ok {
			return
		}

		ctx, cancel := shortCtx(r)
		defer cancel()

		err := h.store.UpdateChild(ctx, chi.URLParam(r, "key"), child, chi.URLParam(r, "childID"), patch)
		if err != nil {
			h.fail(w, "update "+h.cat().Name+" "+child.Kind, err, child.Noun)
			return
		}
		httpjson.Message(w, child.UpdatedMsg)
	}
}

// mergeSection handles POST {key}/{segment} for section merges.
func (h *Handler) mergeSection(op catalog.MergeOp) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodeBody(w, r)
		if !ok {
			return
		}

		ctx, cancel := shortCtx(r)
		defer cancel()

		if _, err := h.store.MergeSection(ctx, chi.URLParam(r, "key"), op.Section, payload); err != nil {
			h.fail(w, "merge "+h.cat().Name+" "+op.Section, err, "")
			return
		}
		httpjson.Message(w, op.Message)
	}
}

// specialOp wraps a category-specific store operation that answers with
// a fixed success message. childMsg, when set, is the full 404 text for
// a missing child element.
func (h *Handler) specialOp(op, childMsg, msg string, run func(ctx context.Context, key string, payload bson.M) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		payload, ok := decodeBody(w, r)
		if !ok {
			return
		}

		ctx, cancel := shortCtx(r)
		defer cancel()

		if err := run(ctx, chi.URLParam(r, "key"), payload); err != nil {
			if errors.Is(err, apperr.ErrChildNotFound) && childMsg != "" {
				httpjson.NotFound(w, childMsg)
				return
			}
			h.fail(w, op, err, "")
			return
		}
		httpjson.Message(w, msg)
	}
}
