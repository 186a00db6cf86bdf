package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"blogapi/internal/api/handlers"
	"blogapi/internal/config"
	"blogapi/internal/middleware"
	"blogapi/internal/services"
)

func NewRouter(cfg config.Config, resolver *middleware.SessionResolver, userSvc *services.UserService, postSvc *services.PostService) http.Handler {
	authH := handlers.NewAuthHandler(userSvc, cfg.TokenTTL, cfg.Prod())
	postsH := handlers.NewPostsHandler(postSvc)
	usersH := handlers.NewUsersHandler(userSvc)
	adminH := handlers.NewAdminHandler(userSvc, postSvc)

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(cfg.RateRPS))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	r.Use(middleware.HTTPMetrics)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authH.Register)
			r.Post("/login", authH.Login)
			r.Post("/logout", authH.Logout)
			r.With(resolver.Require).Get("/me", authH.Me)
		})

		r.Route("/posts", func(r chi.Router) {
			r.Get("/", postsH.List)
			r.Get("/{id}", postsH.Get)

			r.Group(func(r chi.Router) {
				r.Use(resolver.Require)
				r.Post("/", postsH.Create)
				r.Put("/{id}", postsH.Update)
				r.Delete("/{id}", postsH.Delete)
				r.Post("/{id}/like", postsH.ToggleLike)
				r.Post("/{id}/comments", postsH.AddComment)
				r.Delete("/{id}/comments/{commentID}", postsH.DeleteComment)
			})
		})

		r.Route("/users", func(r chi.Router) {
			r.Use(resolver.Require)
			r.With(middleware.RequireAdmin).Get("/", usersH.List)
			r.Get("/{id}", usersH.Get)
			r.Put("/{id}", usersH.Update)
			r.Delete("/{id}", usersH.Delete)
		})
	})

	r.Route("/admin", func(r chi.Router) {
		r.Use(resolver.Require, middleware.RequireAdmin)
		r.Get("/users", adminH.ListUsers)
		r.Get("/posts", adminH.ListPosts)
		r.Delete("/users/{id}", adminH.DeleteUser)
		r.Delete("/posts/{id}", adminH.DeletePost)
	})

	return r
}
