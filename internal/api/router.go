package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/harsha/nutrition-dashboard/internal/api/handlers"
	"github.com/harsha/nutrition-dashboard/internal/api/middleware"
	"github.com/harsha/nutrition-dashboard/internal/config"
	"github.com/harsha/nutrition-dashboard/internal/identity"
	"github.com/harsha/nutrition-dashboard/internal/service"
)

func NewRouter(services *service.Services, identities *identity.Cache, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(middleware.Gate)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	authHandler := handlers.NewAuthHandler(services.Auth, identities, cfg)
	pageHandler := handlers.NewPageHandler()
	nutritionHandler := handlers.NewNutritionHandler()

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Post("/logout", authHandler.Logout)
		r.Get("/user", authHandler.CurrentUser)
	})

	// Pages; the gate redirects between these and the dashboard based on
	// session state.
	r.Get("/", pageHandler.Home)
	r.Get("/login", pageHandler.Login)
	r.Get("/register", pageHandler.Register)
	r.Get("/dashboard", pageHandler.Dashboard)
	r.Get("/dashboard/nutrition", nutritionHandler.Report)

	return r
}
