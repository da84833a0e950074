package internal

import (
	"net/http"
	"os"

	"itam-dashboard/internal/cms"
	"itam-dashboard/internal/config"
	"itam-dashboard/internal/inventory"

	"github.com/go-chi/chi/v5"
)

type Server struct {
	Router    *chi.Mux
	CMS       *cms.Client
	Inventory *inventory.Service
	Metrics   *Metrics
	Config    *config.Config
}

func NewServer(cfg *config.Config) *Server {
	client := cms.New(cfg.CMSBaseURL)

	s := &Server{
		Router:    chi.NewRouter(),
		CMS:       client,
		Inventory: inventory.NewService(client),
		Metrics:   NewMetrics(),
		Config:    cfg,
	}

	// chi requires every middleware before the first route, so the
	// metrics middleware has to go here even though its endpoint is
	// only mounted further down.
	s.Router.Use(RequestIDMiddleware)
	metricsEnabled := os.Getenv("ENABLE_METRICS") == "true"
	if metricsEnabled {
		s.Router.Use(s.Metrics.Middleware())
	}

	// Mount public routes FIRST (no session middleware)
	s.Router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		if _, err := w.Write([]byte("ok")); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})

	// Public auth routes (no session required). Logout stays public:
	// it clears cookies unconditionally and never fails.
	s.Router.Post("/auth/login", s.loginUser)
	s.Router.Post("/auth/logout", s.logoutUser)

	if metricsEnabled {
		s.Metrics.Mount(s.Router)
	}

	// Create a protected route group with middleware
	s.Router.Group(func(r chi.Router) {
		r.Use(s.sessionMiddleware)

		s.mountProtectedRoutes(r)
	})

	return s
}

// mountProtectedRoutes mounts all routes that require a session
func (s *Server) mountProtectedRoutes(r chi.Router) {
	r.Get("/auth/session", s.currentSession)
	r.Get("/offices", s.listOffices)
	r.Get("/inventory", s.getInventory)
	r.Get("/inventory/export", s.exportInventory)
}
