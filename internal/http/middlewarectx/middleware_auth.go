// Package middlewarectx содержит HTTP middleware для проверки bearer-токенов.
//
// JWTMiddleware извлекает токен из заголовка Authorization, разрешает его
// в пользователя через сервис аутентификации и кладёт результат в контекст
// запроса для дальнейшего использования в обработчиках.
//
// Любая ошибка проверки — отсутствующий заголовок, неверная подпись,
// истёкший срок, удалённая учетная запись — даёт один и тот же ответ
// 401 Unauthorized с заголовком WWW-Authenticate: Bearer, без уточнения причины.
package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-platform/internal/http/response"
	"github.com/magabrotheeeer/blog-platform/internal/lib/sl"
	"github.com/magabrotheeeer/blog-platform/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

// User — ключ, под которым в контексте лежит аутентифицированный *models.User.
const User Key = "user"

// Service описывает интерфейс сервиса для разрешения токена в пользователя.
type Service interface {
	ResolveToken(ctx context.Context, token string) (*models.User, error)
}

// UserFromContext достаёт аутентифицированного пользователя из контекста запроса.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(User).(*models.User)
	return user, ok
}

// JWTMiddleware возвращает HTTP middleware, который проверяет bearer-токен
// в заголовке Authorization.
//
// Если токен валиден и его subject разрешается в существующего пользователя,
// пользователь добавляется в контекст запроса, иначе возвращается
// 401 Unauthorized с challenge-заголовком.
func JWTMiddleware(authService Service, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "auth.Jwtmiddleware"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				unauthorized(w, r)
				return
			}
			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")

			user, err := authService.ResolveToken(r.Context(), tokenStr)
			if err != nil {
				log.Error("failed to resolve token", sl.Err(err))
				unauthorized(w, r)
				return
			}
			ctx := context.WithValue(r.Context(), User, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// unauthorized пишет единый ответ для всех ошибок аутентификации.
func unauthorized(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	render.Status(r, http.StatusUnauthorized)
	render.JSON(w, r, response.Error("could not validate credentials"))
}
