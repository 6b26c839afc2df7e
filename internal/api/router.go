package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/okarpov/boardbanker/internal/api/handler"
	apimiddleware "github.com/okarpov/boardbanker/internal/api/middleware"
	"github.com/okarpov/boardbanker/internal/middleware"
	"github.com/okarpov/boardbanker/internal/services/auth"
	"github.com/okarpov/boardbanker/internal/services/board"
	"github.com/okarpov/boardbanker/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	AuthService       *auth.Service
	SessionController *session.Controller
	BoardService      *board.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	playerHandler := handler.NewPlayerHandler(cfg.SessionController)
	txHandler := handler.NewTransactionHandler(cfg.SessionController)
	fieldHandler := handler.NewFieldHandler(cfg.BoardService)
	authHandler := handler.NewAuthHandler(cfg.AuthService)

	bankerAuth := apimiddleware.BankerAuth(cfg.AuthService)
	protect := func(h http.HandlerFunc) http.Handler {
		return bankerAuth(h)
	}

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(apimiddleware.Recovery(cfg.Logger))
	api.Use(middleware.Logging(cfg.Logger))

	// Read endpoints stay open so spectators can follow the game
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/players", playerHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/fields", fieldHandler.List).Methods(http.MethodGet)

	// Mutating endpoints require the banker token when auth is enabled
	api.Handle("/session", protect(sessionHandler.Reset)).Methods(http.MethodDelete)
	api.Handle("/players", protect(playerHandler.Add)).Methods(http.MethodPost)
	api.Handle("/transactions", protect(txHandler.Apply)).Methods(http.MethodPost)
	api.Handle("/fields/{id}/trigger", protect(fieldHandler.Trigger)).Methods(http.MethodPost)

	// Auth endpoints
	api.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)
	api.Handle("/auth/logout", protect(authHandler.Logout)).Methods(http.MethodPost)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
