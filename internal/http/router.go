package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	claimHandler "github.com/jgkirkwood/claimtrack/internal/http/claim"
	projectHandler "github.com/jgkirkwood/claimtrack/internal/http/project"
)

func New(claims *claimHandler.Handler, projects *projectHandler.Handler) http.Handler {
	router := chi.NewRouter()

	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-User-Id"},
	}))

	router.Route("/claims", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		claims.Routes(r)
	})

	router.Route("/projects", func(r chi.Router) {
		r.Use(middleware.AllowContentType("application/json"))
		projects.Routes(r)
	})

	return router
}
