package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/okian/lineup/internal/adapters/http/api"
	service "github.com/okian/lineup/internal/app"
	"github.com/okian/lineup/internal/domain/allocation"
	"github.com/okian/lineup/internal/domain/model"
	"github.com/okian/lineup/internal/domain/share"
	"github.com/okian/lineup/internal/domain/types"
	"github.com/okian/lineup/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

type errorBody struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	ExtraTeams int    `json:"extra_teams"`
	Missing    int    `json:"missing"`
	MaxTeams   int    `json:"max_teams"`
}

func newTestServer(ctx context.Context) (*service.Service, http.Handler) {
	svc := service.New(service.WithSeeder(allocation.FixedSeed(3)))
	if err := svc.Start(ctx); err != nil {
		panic(err)
	}
	mux := http.NewServeMux()
	api.NewServer(svc).Register(ctx, mux)
	return svc, mux
}

func do(h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		if s, ok := body.(string); ok {
			buf.WriteString(s)
		} else {
			_ = json.NewEncoder(&buf).Encode(body)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func createPlayers(h http.Handler, n, keepers int) []string {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		w := do(h, http.MethodPost, "/players", map[string]any{
			"name":       fmt.Sprintf("Player %02d", i),
			"tier":       i%3 + 1,
			"goalkeeper": i < keepers,
		})
		var p model.Player
		_ = json.NewDecoder(w.Body).Decode(&p)
		ids = append(ids, p.ID)
	}
	return ids
}

func TestPlayersHandler(t *testing.T) {
	ctx := context.Background()

	Convey("Given the API server", t, func() {
		svc, h := newTestServer(ctx)
		Reset(svc.Stop)

		Convey("When creating a player", func() {
			w := do(h, http.MethodPost, "/players", map[string]any{"name": "Ana", "tier": 1, "goalkeeper": true})

			Convey("Then it returns 201 with the stored player", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				var p model.Player
				So(json.NewDecoder(w.Body).Decode(&p), ShouldBeNil)
				So(p.ID, ShouldNotBeEmpty)
				So(w.Header().Get("Location"), ShouldEqual, "/players/"+p.ID)

				get := do(h, http.MethodGet, "/players/"+p.ID, nil)
				So(get.Code, ShouldEqual, http.StatusOK)
				So(get.Body.String(), ShouldContainSubstring, `"name":"Ana"`)
			})

			Convey("Then it can be updated and deleted", func() {
				var p model.Player
				_ = json.NewDecoder(w.Body).Decode(&p)

				put := do(h, http.MethodPut, "/players/"+p.ID, map[string]any{"name": "Ana", "tier": 3})
				So(put.Code, ShouldEqual, http.StatusOK)
				So(put.Body.String(), ShouldContainSubstring, `"tier":3`)

				del := do(h, http.MethodDelete, "/players/"+p.ID, nil)
				So(del.Code, ShouldEqual, http.StatusNoContent)

				again := do(h, http.MethodDelete, "/players/"+p.ID, nil)
				So(again.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When the player is invalid", func() {
			w := do(h, http.MethodPost, "/players", map[string]any{"name": "Bia", "tier": 7})

			Convey("Then it returns 400 invalid_player", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				var body errorBody
				So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "invalid_player")
			})
		})

		Convey("When the body is not JSON", func() {
			w := do(h, http.MethodPost, "/players", "{nope")

			Convey("Then it returns 400 bad_request", func() {
				So(w.Code, ShouldEqual, http.StatusBadRequest)
				So(w.Body.String(), ShouldContainSubstring, `"code":"bad_request"`)
			})
		})

		Convey("When listing players", func() {
			createPlayers(h, 3, 1)
			w := do(h, http.MethodGet, "/players", nil)

			Convey("Then goalkeepers are listed first", func() {
				So(w.Code, ShouldEqual, http.StatusOK)
				var players []model.Player
				So(json.NewDecoder(w.Body).Decode(&players), ShouldBeNil)
				So(players, ShouldHaveLength, 3)
				So(players[0].Goalkeeper, ShouldBeTrue)
			})
		})

		Convey("When fetching an unknown player", func() {
			w := do(h, http.MethodGet, "/players/ghost", nil)

			Convey("Then it returns 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

func TestDrawsHandler(t *testing.T) {
	ctx := context.Background()

	Convey("Given 18 registered players", t, func() {
		svc, h := newTestServer(ctx)
		Reset(svc.Stop)
		ids := createPlayers(h, 18, 4)

		Convey("When drawing four teams", func() {
			w := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: ids, NumTeams: 4})

			Convey("Then it returns 201 with full teams", func() {
				So(w.Code, ShouldEqual, http.StatusCreated)
				var d model.Draw
				So(json.NewDecoder(w.Body).Decode(&d), ShouldBeNil)
				So(d.Teams, ShouldHaveLength, 4)
				So(d.PhantomsInserted, ShouldEqual, 2)
				So(d.Seed, ShouldEqual, 3)
				for _, team := range d.Teams {
					So(team.Players, ShouldHaveLength, 5)
				}

				get := do(h, http.MethodGet, "/draws/"+d.ID, nil)
				So(get.Code, ShouldEqual, http.StatusOK)

				resp := do(h, http.MethodGet, "/draws/"+d.ID+"/share", nil)
				So(resp.Code, ShouldEqual, http.StatusOK)
				var sh types.Share
				So(json.NewDecoder(resp.Body).Decode(&sh), ShouldBeNil)
				So(sh.Message, ShouldStartWith, share.Header+"\n\n*Team 1:*")
				So(strings.HasPrefix(sh.Link, "https://api.whatsapp.com/send?text="), ShouldBeTrue)
			})
		})

		Convey("When drawing too few teams for the selection", func() {
			w := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: ids, NumTeams: 2})

			Convey("Then it returns 422 surplus_players with extra teams", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				var body errorBody
				So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "surplus_players")
				So(body.ExtraTeams, ShouldEqual, 2)
			})
		})

		Convey("When drawing too many teams for the selection", func() {
			w := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: ids[:10], NumTeams: 4})

			Convey("Then it returns 422 insufficient_players", func() {
				So(w.Code, ShouldEqual, http.StatusUnprocessableEntity)
				var body errorBody
				So(json.NewDecoder(w.Body).Decode(&body), ShouldBeNil)
				So(body.Code, ShouldEqual, "insufficient_players")
				So(body.Missing, ShouldEqual, 10)
				So(body.ExtraTeams, ShouldEqual, 2)
				So(body.MaxTeams, ShouldEqual, 2)
			})
		})

		Convey("When the request is structurally wrong", func() {
			empty := do(h, http.MethodPost, "/draws", types.DrawRequest{NumTeams: 2})
			one := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: ids[:5], NumTeams: 1})
			many := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: ids, NumTeams: 9})
			unknown := do(h, http.MethodPost, "/draws", types.DrawRequest{PlayerIDs: []string{"ghost"}, NumTeams: 2})

			Convey("Then each maps to its error code", func() {
				So(empty.Code, ShouldEqual, http.StatusBadRequest)
				So(empty.Body.String(), ShouldContainSubstring, `"code":"no_players"`)
				So(one.Code, ShouldEqual, http.StatusBadRequest)
				So(one.Body.String(), ShouldContainSubstring, `"code":"invalid_team_count"`)
				So(many.Code, ShouldEqual, http.StatusBadRequest)
				So(many.Body.String(), ShouldContainSubstring, `"code":"invalid_team_count"`)
				So(unknown.Code, ShouldEqual, http.StatusNotFound)
			})
		})

		Convey("When fetching an unknown draw", func() {
			w := do(h, http.MethodGet, "/draws/missing/share", nil)

			Convey("Then it returns 404", func() {
				So(w.Code, ShouldEqual, http.StatusNotFound)
			})
		})
	})
}

type brokenDeps struct{}

func (brokenDeps) CreatePlayer(context.Context, model.Player) (model.Player, error) {
	return model.Player{}, errors.New("disk on fire")
}
func (brokenDeps) GetPlayer(context.Context, string) (model.Player, error) {
	return model.Player{}, service.ErrNotStarted
}
func (brokenDeps) UpdatePlayer(context.Context, string, model.Player) (model.Player, error) {
	return model.Player{}, nil
}
func (brokenDeps) DeletePlayer(context.Context, string) error { return nil }
func (brokenDeps) ListPlayers(context.Context) ([]model.Player, error) { return nil, nil }
func (brokenDeps) Draw(context.Context, types.DrawRequest) (model.Draw, error) {
	return model.Draw{}, nil
}
func (brokenDeps) GetDraw(context.Context, string) (model.Draw, error) { return model.Draw{}, nil }
func (brokenDeps) ShareDraw(context.Context, string) (types.Share, error) { return types.Share{}, nil }
func (brokenDeps) GetStats() types.Stats { return types.Stats{MaxTeams: 6} }

func TestServerErrors(t *testing.T) {
	ctx := context.Background()

	Convey("Given dependencies that fail", t, func() {
		mux := http.NewServeMux()
		api.NewServer(brokenDeps{}).Register(ctx, mux)

		Convey("Then unexpected errors map to 500", func() {
			w := do(mux, http.MethodPost, "/players", map[string]any{"name": "Ana", "tier": 1})
			So(w.Code, ShouldEqual, http.StatusInternalServerError)
			So(w.Body.String(), ShouldContainSubstring, "disk on fire")
		})

		Convey("Then a stopped service maps to 503", func() {
			w := do(mux, http.MethodGet, "/players/x", nil)
			So(w.Code, ShouldEqual, http.StatusServiceUnavailable)
		})

		Convey("Then stats are served as JSON", func() {
			w := do(mux, http.MethodGet, "/stats", nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, `"max_teams":6`)
		})

		Convey("Then healthz serves the metrics registry", func() {
			w := do(mux, http.MethodGet, "/healthz", nil)
			So(w.Code, ShouldEqual, http.StatusOK)
			So(w.Body.String(), ShouldContainSubstring, "lineup_draw_phantoms_inserted_total")
		})

		Convey("Then unregistered methods are rejected", func() {
			w := do(mux, http.MethodPatch, "/players", nil)
			So(w.Code, ShouldEqual, http.StatusMethodNotAllowed)
		})
	})
}

func TestCORS(t *testing.T) {
	Convey("Given a handler wrapped with CORS", t, func() {
		h := api.CORS(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}), []string{"https://club.example"})

		Convey("When an allowed origin sends a preflight", func() {
			req := httptest.NewRequest(http.MethodOptions, "/draws", http.NoBody)
			req.Header.Set("Origin", "https://club.example")
			req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then the origin is echoed back", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldEqual, "https://club.example")
			})
		})

		Convey("When another origin calls", func() {
			req := httptest.NewRequest(http.MethodGet, "/stats", http.NoBody)
			req.Header.Set("Origin", "https://elsewhere.example")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			Convey("Then no allow header is set", func() {
				So(w.Header().Get("Access-Control-Allow-Origin"), ShouldBeEmpty)
			})
		})
	})
}

func TestErrorHelpers(t *testing.T) {
	Convey("Given wrapped API errors", t, func() {
		cause := errors.New("unexpected EOF")
		err := api.WrapKind("api.post_draw", api.ErrBadRequest, cause)

		Convey("Then kind and cause are both reachable", func() {
			So(errors.Is(err, api.ErrBadRequest), ShouldBeTrue)
			So(errors.Is(err, cause), ShouldBeTrue)
			So(err.Error(), ShouldEqual, "api.post_draw: bad request: unexpected EOF")
		})

		Convey("Then Wrap keeps nil as nil", func() {
			So(api.Wrap("op", nil), ShouldBeNil)
			So(api.NewKind("op", api.ErrUnavailable).Error(), ShouldEqual, "op: service unavailable")
		})
	})
}
