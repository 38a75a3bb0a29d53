package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter mounts the API. An empty origin list disables CORS.
func NewRouter(board *BoardHandler, stream *StreamHandler, corsOrigins []string) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	if len(corsOrigins) > 0 {
		r.Use(cors.New(cors.Options{
			AllowedOrigins: corsOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
			MaxAge:         300,
		}).Handler)
	}

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/state", board.State)
		r.Post("/actions", board.Dispatch)
		r.Get("/options", board.Options)
		r.Get("/export", board.Export)
		r.Post("/import", board.Import)
		r.Get("/stream", stream.Stream)

		r.Route("/boards/{boardID}/tasks", func(r chi.Router) {
			r.Get("/", board.Tasks)
			r.Post("/{taskID}/move", board.Move)
			r.Post("/{taskID}/complete", board.Complete)
		})
	})

	return r
}
