package http

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"

	"taskboard/internal/auth"
	"taskboard/internal/config"
	"taskboard/internal/follow"
	"taskboard/internal/httputil"
	"taskboard/internal/logging"
	"taskboard/internal/profile"
	"taskboard/internal/task"
	"taskboard/internal/user"
)

// Handlers groups the resource handlers the router wires up.
type Handlers struct {
	Auth    *auth.Handler
	Profile *profile.Handler
	Task    *task.Handler
	User    *user.Handler
	Follow  *follow.Handler
}

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, h Handlers, authMiddleware *auth.Middleware, logger *logging.Logger) *chi.Mux {
	r := chi.NewRouter()

	// CORS - must be first
	if len(cfg.Server.TrustedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   cfg.Server.TrustedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
			ExposedHeaders:   []string{"Content-Length"},
			AllowCredentials: true,
			MaxAge:           300, // 5 minutes
		}))
	}

	// Global middleware
	r.Use(SecurityHeaders)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger(logger))
	r.Use(middleware.Compress(5))

	r.Get("/health", handleHealth)

	// Swagger UI - only in development
	if cfg.Server.IsDevelopment() {
		log.Println("Swagger UI enabled at /swagger/*")
		r.Get("/swagger/*", httpSwagger.WrapHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", h.Auth.Register)
		r.Post("/login", h.Auth.Login)

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.RequireAuth)
			r.Get("/me", h.Auth.Me)
		})

		r.Route("/profile", func(r chi.Router) {
			r.Get("/{id}", h.Profile.Get)
			r.Put("/{id}", h.Profile.Update)
		})

		r.Route("/tasks", func(r chi.Router) {
			r.Get("/", h.Task.List)
			r.Post("/", h.Task.Create)
			r.Put("/{id}", h.Task.Update)
			r.Delete("/{id}", h.Task.Delete)
		})

		r.Get("/users", h.User.Search)

		r.Route("/follow", func(r chi.Router) {
			r.Post("/", h.Follow.Follow)
			r.Delete("/", h.Follow.Unfollow)
			r.Get("/following/{followerId}", h.Follow.ListFollowing)
		})
	})

	// Uploaded avatars are served statically under /uploads
	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Upload.Dir)))
	r.Get("/uploads/*", func(w http.ResponseWriter, req *http.Request) {
		fileServer.ServeHTTP(w, req)
	})

	return r
}

// handleHealth is a simple health check endpoint
// @Summary      Health check
// @Description  Check if the API is running
// @Tags         health
// @Produce      json
// @Success      200 {object} map[string]string
// @Router       /health [get]
func handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.RespondJSON(w, map[string]string{"status": "api is running"}, http.StatusOK)
}
