// Package blogplatform собирает HTTP-приложение блога: маршруты, middleware и сервер.
package blogplatform

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/auth/login"
	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/auth/register"
	commentcreate "github.com/magabrotheeeer/blog-platform/internal/http/handlers/comment/create"
	commentlist "github.com/magabrotheeeer/blog-platform/internal/http/handlers/comment/list"
	postcreate "github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/create"
	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/favorite"
	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/like"
	postlist "github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/list"
	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/user/me"
	"github.com/magabrotheeeer/blog-platform/internal/http/middlewarectx"

	authservice "github.com/magabrotheeeer/blog-platform/internal/services/auth"
	blogservice "github.com/magabrotheeeer/blog-platform/internal/services/blog"
)

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, authService *authservice.AuthService, blogService *blogservice.BlogService) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
		middleware.URLFormat,
	)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Открытые конечные точки
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]string{"message": "Welcome to the blog-platform API!"})
	})
	r.Post("/users", register.New(logger, authService).ServeHTTP)
	r.Post("/token", login.New(logger, authService).ServeHTTP)
	r.Get("/posts", postlist.New(logger, blogService).ServeHTTP)
	r.Get("/posts/{post_id}/comments", commentlist.New(logger, blogService).ServeHTTP)

	// Группа с bearer-аутентификацией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.JWTMiddleware(authService, logger))
		r.Get("/users/me", me.New(logger).ServeHTTP)
		r.Post("/posts", postcreate.New(logger, blogService).ServeHTTP)
		r.Post("/posts/{post_id}/comments", commentcreate.New(logger, blogService).ServeHTTP)
		r.Post("/posts/{post_id}/like", like.New(logger, blogService).ServeHTTP)
		r.Post("/posts/{post_id}/favorite", favorite.New(logger, blogService).ServeHTTP)
	})

	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
