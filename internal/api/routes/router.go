package routes

import (
	"net/http"

	"github.com/keebscout/keebscout/internal/api/handlers"
	"github.com/keebscout/keebscout/internal/api/middleware"
)

// Router holds all route handlers

type Router struct {
	mux *http.ServeMux

	searchHandler *handlers.SearchHandler
}

// NewRouter creates a new router

func NewRouter(searchHandler *handlers.SearchHandler) *Router {
	return &Router{
		mux: http.NewServeMux(),

		searchHandler: searchHandler,
	}
}

// SetupRoutes configures all application routes

func (r *Router) SetupRoutes() http.Handler {

	// Health check endpoint

	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)

		if _, err := w.Write([]byte("OK")); err != nil {
			return
		}
	})

	// Search endpoints

	r.mux.HandleFunc("GET /api/search", r.searchHandler.Search)

	r.mux.HandleFunc("GET /api/adapters", r.searchHandler.ListAdapters)

	// Apply middleware

	var handler http.Handler = r.mux

	handler = middleware.LoggingMiddleware(handler)
	handler = middleware.CORSMiddleware(handler)

	return handler
}
