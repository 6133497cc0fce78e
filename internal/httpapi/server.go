// Package httpapi exposes the CRUD collaborator and the manual trigger
// over HTTP.
package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/keivanh/keepwarm/internal/engine"
	apimw "github.com/keivanh/keepwarm/internal/httpapi/middleware"
	"github.com/keivanh/keepwarm/internal/repo"
)

type Server struct {
	Logger *zap.Logger
	State  *repo.State
	Engine *engine.Engine
}

func NewServer(l *zap.Logger, st *repo.State, eng *engine.Engine) *Server {
	return &Server{Logger: l, State: st, Engine: eng}
}

// RateLimits carries the per-group request budgets.
type RateLimits struct {
	PublicRPM   int
	PublicBurst int
	AdminRPM    int
	AdminBurst  int
}

func (s *Server) Router(keys apimw.Keys, rl RateLimits) http.Handler {
	r := chi.NewRouter()
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		// read surface: public or admin key
		r.Group(func(r chi.Router) {
			r.Use(apimw.RequireAny(keys))
			r.Use(apimw.RateLimit(rl.PublicRPM, rl.PublicBurst))
			r.Get("/targets", s.handleListTargets)
			r.Get("/settings", s.handleGetSettings)
			r.Get("/logs", s.handleListLogs)
		})
		// mutations and the manual trigger: admin key only
		r.Group(func(r chi.Router) {
			r.Use(apimw.RequireAdmin(keys))
			r.Use(apimw.RateLimit(rl.AdminRPM, rl.AdminBurst))
			r.Post("/targets", s.handleAddTarget)
			r.Delete("/targets", s.handleDeleteTarget)
			r.Put("/settings", s.handlePutSettings)
			r.Post("/run", s.handleRun)
		})
	})

	return r
}
