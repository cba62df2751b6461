package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/okian/lineup/internal/config"
	"github.com/okian/lineup/pkg/logger"
	"github.com/okian/lineup/pkg/metrics"
	"github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestMainWiring(t *testing.T) {
	convey.Convey("Given configuration from the environment", t, func() {
		t.Setenv("LINEUP_ADDR", ":8088")
		t.Setenv("LINEUP_MAX_TEAMS", "3")
		t.Setenv("LINEUP_CORS_ALLOWED_ORIGINS", "https://club.example")

		ctx := context.Background()
		cfg, err := config.Load(ctx)
		convey.So(err, convey.ShouldBeNil)
		convey.So(cfg.Addr, convey.ShouldEqual, ":8088")

		svc := newService(cfg, logger.Get())
		convey.So(svc.Start(ctx), convey.ShouldBeNil)
		defer svc.Stop()

		h := newHandler(ctx, cfg, svc)

		convey.Convey("Then stats reflect the configured limits", func() {
			w := httptest.NewRecorder()
			h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/stats", http.NoBody))
			convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			convey.So(w.Body.String(), convey.ShouldContainSubstring, `"max_teams":3`)
		})

		convey.Convey("Then docs and spec are routed", func() {
			for _, path := range []string{"/api-docs", "/openapi.yaml", "/healthz", "/players"} {
				w := httptest.NewRecorder()
				h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, http.NoBody))
				convey.So(w.Code, convey.ShouldEqual, http.StatusOK)
			}
		})

		convey.Convey("Then the configured origin passes CORS", func() {
			req := httptest.NewRequest(http.MethodGet, "/players", http.NoBody)
			req.Header.Set("Origin", "https://club.example")
			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)
			convey.So(w.Header().Get("Access-Control-Allow-Origin"), convey.ShouldEqual, "https://club.example")
		})
	})
}

func TestUpdateSystemMetrics(t *testing.T) {
	convey.Convey("Given the system metrics updater", t, func() {
		convey.Convey("Then a single refresh does not panic", func() {
			convey.So(updateSystemMetrics, convey.ShouldNotPanic)
		})

		convey.Convey("Then it stops with its context", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cancel()
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx, metrics.RefreshInterval())
				close(done)
			}()
			<-done
			convey.So(ctx.Err(), convey.ShouldNotBeNil)
		})

		convey.Convey("Then it refreshes the goroutine gauge on each tick", func() {
			metrics.UpdateSystemGoroutineCount(0)
			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				startSystemMetricsUpdater(ctx, time.Millisecond)
				close(done)
			}()
			time.Sleep(50 * time.Millisecond)
			cancel()
			<-done

			families, err := metrics.GetRegistry().Gather()
			convey.So(err, convey.ShouldBeNil)
			var goroutines float64
			for _, f := range families {
				if strings.HasSuffix(f.GetName(), "goroutine_count") {
					goroutines = f.GetMetric()[0].GetGauge().GetValue()
				}
			}
			convey.So(goroutines, convey.ShouldBeGreaterThan, 0)
		})
	})
}
