package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"

	"github.com/orcahelper/orcahelper/internal/setup"
)

// New creates and configures the chi router with all the routes.
func New(deps *setup.Dependencies) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(deps.Metrics.Middleware)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   deps.Config.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		ExposedHeaders:   []string{"Authorization"},
		AllowCredentials: false,
	}))

	// Best-effort identity enrichment; never rejects a request
	r.Use(deps.Identity.Optional())

	h := deps.Handler

	r.Get("/", h.Root)
	r.Get("/healthz", h.Health)
	r.Method("GET", "/metrics", deps.Metrics.Handler())

	// Login gets its own rate limit to slow down credential stuffing
	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(10, 1*time.Minute))
		r.Post("/login", h.Login)
	})

	r.Post("/user", h.CreateUser)
	r.Get("/user", h.GetUsers)

	// Routes that need a resolved, persisted user
	r.Group(func(r chi.Router) {
		r.Use(deps.Identity.RequireUser())

		r.Get("/user/me", h.GetMe)
		r.Put("/user/update/{user_id}", h.UpdateUser)
		r.Delete("/user/{user_id}", h.DeleteUser)

		r.Post("/product", h.CreateProduct)
		r.Get("/product", h.GetProducts)
		r.Get("/product/{product_id}", h.GetProduct)
		r.Put("/product/{product_id}", h.UpdateProduct)
		r.Delete("/product/{product_id}", h.DeleteProduct)
	})

	return r
}
