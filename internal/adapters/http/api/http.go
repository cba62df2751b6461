// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/okian/lineup/internal/adapters/repository"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/domain/model"
)

// maxBodyBytes caps request bodies.
const maxBodyBytes = 1 << 20

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	PlayerDependencies
	DrawDependencies
	StatsProvider
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler  *HealthHandler
	statsHandler   *StatsHandler
	playersHandler *PlayersHandler
	drawsHandler   *DrawsHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies) *Server {
	return &Server{
		healthHandler:  NewHealthHandler(),
		statsHandler:   NewStatsHandler(deps),
		playersHandler: NewPlayersHandler(deps),
		drawsHandler:   NewDrawsHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(_ context.Context, mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("GET /stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("GET /players", MetricsMiddleware(s.playersHandler.HandleList, "players"))
	mux.HandleFunc("POST /players", MetricsMiddleware(s.playersHandler.HandleCreate, "players"))
	mux.HandleFunc("GET /players/{id}", MetricsMiddleware(s.playersHandler.HandleGet, "player"))
	mux.HandleFunc("PUT /players/{id}", MetricsMiddleware(s.playersHandler.HandleUpdate, "player"))
	mux.HandleFunc("DELETE /players/{id}", MetricsMiddleware(s.playersHandler.HandleDelete, "player"))

	mux.HandleFunc("POST /draws", MetricsMiddleware(s.drawsHandler.HandleCreate, "draws"))
	mux.HandleFunc("GET /draws/{id}", MetricsMiddleware(s.drawsHandler.HandleGet, "draw"))
	mux.HandleFunc("GET /draws/{id}/share", MetricsMiddleware(s.drawsHandler.HandleShare, "draw_share"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	// Set on surplus and shortfall rejections.
	ExtraTeams int `json:"extra_teams,omitempty"`
	Missing    int `json:"missing,omitempty"`
	MaxTeams   int `json:"max_teams,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	return json.NewDecoder(r.Body).Decode(v)
}

// writeServiceError translates domain and service errors into the JSON
// error envelope.
func writeServiceError(w http.ResponseWriter, err error) {
	var (
		surplus *allocation.SurplusError
		short   *allocation.InsufficientPlayersError
	)
	switch {
	case errors.As(err, &surplus):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:       "surplus_players",
			Message:    err.Error(),
			ExtraTeams: surplus.ExtraTeams,
		})
	case errors.As(err, &short):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Code:       "insufficient_players",
			Message:    err.Error(),
			ExtraTeams: short.ExtraTeams,
			Missing:    short.Missing,
			MaxTeams:   short.MaxTeams,
		})
	case errors.Is(err, allocation.ErrNoPlayers):
		writeError(w, http.StatusBadRequest, "no_players", err)
	case errors.Is(err, allocation.ErrInvalidTeamCount), errors.Is(err, service.ErrTooManyTeams):
		writeError(w, http.StatusBadRequest, "invalid_team_count", err)
	case errors.Is(err, model.ErrInvalidPlayer):
		writeError(w, http.StatusBadRequest, "invalid_player", err)
	case errors.Is(err, ErrBadRequest):
		writeError(w, http.StatusBadRequest, "bad_request", err)
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", err)
	case errors.Is(err, service.ErrNotStarted), errors.Is(err, ErrUnavailable):
		writeError(w, http.StatusServiceUnavailable, "unavailable", err)
	default:
		writeError(w, http.StatusInternalServerError, "internal_error", err)
	}
}
