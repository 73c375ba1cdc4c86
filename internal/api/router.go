package api

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/isdelr/accounts-api/internal/api/handlers"
	"github.com/isdelr/accounts-api/internal/auth"
	"github.com/isdelr/accounts-api/internal/services"
)

// NewRouter creates and configures a new Chi router.
func NewRouter(userService services.UserServiceProvider, tokenIssuer *auth.TokenIssuer, corsOrigin string) *chi.Mux {
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{corsOrigin},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService, tokenIssuer)

	// API versioning
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Get("/", userHandler.GetAll)
			r.Post("/", userHandler.Create)
			r.Post("/login", userHandler.Login)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", userHandler.Get)
				r.Put("/", userHandler.Update)
				r.Delete("/", userHandler.Delete)
			})
		})
	})

	return r
}
