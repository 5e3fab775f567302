package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ivtr7/dtsite/internal/catalog"
	"github.com/ivtr7/dtsite/internal/gallery"
	"github.com/ivtr7/dtsite/internal/ratelimit"
	"github.com/ivtr7/dtsite/internal/views"
)

type Config struct {
	Store         *catalog.Store
	Ledger        *views.Ledger
	BaseURL       string
	Categories    []string
	FeaturedLimit int
}

type Server struct {
	router  chi.Router
	store   *catalog.Store
	gallery *gallery.Handler
}

func New(cfg Config) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)
	r.Use(securityHeaders(SecurityConfig{BaseURL: cfg.BaseURL}))

	resolver := views.NewResolver(cfg.Store, cfg.Ledger)
	renderer := gallery.NewRenderer(cfg.Store, resolver, cfg.Categories, cfg.FeaturedLimit)

	s := &Server{
		router:  r,
		store:   cfg.Store,
		gallery: gallery.NewHandler(cfg.Store, cfg.Ledger, resolver, renderer),
	}
	s.routes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Get("/", s.gallery.Home)

	// Opening the player mutates the ledger, so it is the one throttled
	// route.
	playerLimiter := ratelimit.NewLimiter(2, 10)
	s.router.With(playerLimiter.Middleware).Get("/player/{id}", s.gallery.Player)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/videos", s.gallery.ListVideos)
		r.Get("/videos/{id}", s.gallery.GetVideo)
	})

	s.router.Method(http.MethodGet, "/metrics", promhttp.Handler())
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(gallery.Assets()))))
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"status":"ok","videos":%d}`, s.store.Len())
}
