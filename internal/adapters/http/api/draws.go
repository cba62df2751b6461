package api

import (
	"context"
	"net/http"

	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/types"
)

// DrawDependencies defines the draw operations used by the handlers.
type DrawDependencies interface {
	Draw(ctx context.Context, req types.DrawRequest) (model.Draw, error)
	GetDraw(ctx context.Context, id string) (model.Draw, error)
	ShareDraw(ctx context.Context, id string) (types.Share, error)
}

// DrawsHandler handles draw requests.
type DrawsHandler struct {
	deps DrawDependencies
}

// NewDrawsHandler creates a new draws handler.
func NewDrawsHandler(deps DrawDependencies) *DrawsHandler {
	return &DrawsHandler{deps: deps}
}

// HandleCreate handles POST /draws requests.
func (h *DrawsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.post_draw"
	var req types.DrawRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	d, err := h.deps.Draw(r.Context(), req)
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	w.Header().Set("Location", "/draws/"+d.ID)
	writeJSON(w, http.StatusCreated, d)
}

// HandleGet handles GET /draws/{id} requests.
func (h *DrawsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	d, err := h.deps.GetDraw(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, Wrap("api.get_draw", err))
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// HandleShare handles GET /draws/{id}/share requests.
func (h *DrawsHandler) HandleShare(w http.ResponseWriter, r *http.Request) {
	s, err := h.deps.ShareDraw(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, Wrap("api.share_draw", err))
		return
	}
	writeJSON(w, http.StatusOK, s)
}
