package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/gamelobby-go/internal/api/handler"
	apimiddleware "github.com/mcoot/gamelobby-go/internal/api/middleware"
	"github.com/mcoot/gamelobby-go/internal/api/response"
	"github.com/mcoot/gamelobby-go/internal/middleware"
	"github.com/mcoot/gamelobby-go/internal/services/lobby"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger     *slog.Logger
	Controller *lobby.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	gameHandler := handler.NewGameHandler(cfg.Controller)
	eventsHandler := handler.NewEventsHandler(cfg.Controller, cfg.Logger)
	archiveHandler := handler.NewArchiveHandler(cfg.Controller)

	// Create middleware
	authMiddleware := apimiddleware.Auth()
	loggingMiddleware := middleware.Logging(cfg.Logger, "/api/v1/health")
	recoveryMiddleware := apimiddleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Game routes open to anyone (creating discloses the admin token,
	// joining issues the player token)
	api.HandleFunc("/games", gameHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/games/{code}/join", gameHandler.Join).Methods(http.MethodPost)

	// Protected game routes
	games := api.PathPrefix("/games").Subrouter()
	games.Use(authMiddleware)
	games.HandleFunc("/{code}", gameHandler.Get).Methods(http.MethodGet)
	games.HandleFunc("/{code}/players/{player_id}", gameHandler.Rename).Methods(http.MethodPatch)
	games.HandleFunc("/{code}/start", gameHandler.Start).Methods(http.MethodPost)
	games.HandleFunc("/{code}/events", eventsHandler.Stream).Methods(http.MethodGet)

	// Archive routes (no auth, records hold no tokens)
	api.HandleFunc("/archive", archiveHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/archive/{code}", archiveHandler.Get).Methods(http.MethodGet)

	// Health check endpoint (no auth)
	api.HandleFunc("/health", healthHandler(cfg.Controller)).Methods(http.MethodGet)

	return r
}

func healthHandler(controller *lobby.Controller) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response.JSON(w, http.StatusOK, response.HealthResponse{
			Status:    "ok",
			LiveGames: controller.LiveGameCount(),
		})
	}
}
