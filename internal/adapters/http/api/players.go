package api

import (
	"context"
	"net/http"

	"github.com/okian/lineup/internal/domain/model"
)

// PlayerDependencies defines the roster operations used by the handlers.
type PlayerDependencies interface {
	CreatePlayer(ctx context.Context, p model.Player) (model.Player, error)
	GetPlayer(ctx context.Context, id string) (model.Player, error)
	UpdatePlayer(ctx context.Context, id string, p model.Player) (model.Player, error)
	DeletePlayer(ctx context.Context, id string) error
	ListPlayers(ctx context.Context) ([]model.Player, error)
}

// playerRequest mirrors the OpenAPI schema for POST and PUT /players.
type playerRequest struct {
	Name       string     `json:"name"`
	Tier       model.Tier `json:"tier"`
	Goalkeeper bool       `json:"goalkeeper"`
	Photo      string     `json:"photo"`
}

func (p playerRequest) player() model.Player {
	return model.Player{Name: p.Name, Tier: p.Tier, Goalkeeper: p.Goalkeeper, Photo: p.Photo}
}

// PlayersHandler handles roster requests.
type PlayersHandler struct {
	deps PlayerDependencies
}

// NewPlayersHandler creates a new players handler.
func NewPlayersHandler(deps PlayerDependencies) *PlayersHandler {
	return &PlayersHandler{deps: deps}
}

// HandleList handles GET /players requests.
func (h *PlayersHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	players, err := h.deps.ListPlayers(r.Context())
	if err != nil {
		writeServiceError(w, Wrap("api.list_players", err))
		return
	}
	writeJSON(w, http.StatusOK, players)
}

// HandleCreate handles POST /players requests.
func (h *PlayersHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	const op = "api.create_player"
	var req playerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	p, err := h.deps.CreatePlayer(r.Context(), req.player())
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	w.Header().Set("Location", "/players/"+p.ID)
	writeJSON(w, http.StatusCreated, p)
}

// HandleGet handles GET /players/{id} requests.
func (h *PlayersHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	p, err := h.deps.GetPlayer(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, Wrap("api.get_player", err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleUpdate handles PUT /players/{id} requests.
func (h *PlayersHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	const op = "api.update_player"
	var req playerRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, WrapKind(op, ErrBadRequest, err))
		return
	}
	p, err := h.deps.UpdatePlayer(r.Context(), r.PathValue("id"), req.player())
	if err != nil {
		writeServiceError(w, Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// HandleDelete handles DELETE /players/{id} requests.
func (h *PlayersHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.deps.DeletePlayer(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, Wrap("api.delete_player", err))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
