// Package favorite реализует HTTP-обработчик переключения отметки "избранное".
package favorite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/blog-platform/internal/http/response"
	"github.com/magabrotheeeer/blog-platform/internal/lib/sl"
	"github.com/magabrotheeeer/blog-platform/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики переключения отметки.
type Service interface {
	ToggleFavorite(ctx context.Context, userID, postID int64) (bool, error)
}

// Handler управляет HTTP-запросами на переключение отметки "избранное".
type Handler struct {
	log     *slog.Logger
	service Service
}

// New создает новый Handler с переданными логгером и сервисом.
func New(log *slog.Logger, service Service) *Handler {
	return &Handler{
		log:     log,
		service: service,
	}
}

// ServeHTTP godoc
// @Summary Переключить отметку "избранное"
// @Description Добавляет публикацию в избранное текущего пользователя или убирает её.
// @Tags Posts
// @Produce  json
// @Security BearerAuth
// @Param post_id path int true "ID публикации"
// @Success 200 {object} map[string]any "Новое состояние отметки"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID публикации"
// @Failure 401 {object} response.ErrorResponse "Пользователь не аутентифицирован"
// @Failure 404 {object} response.ErrorResponse "Публикация не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts/{post_id}/favorite [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.favorite"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	postID, err := strconv.ParseInt(chi.URLParam(r, "post_id"), 10, 64)
	if err != nil {
		log.Error("failed to decode post_id from url", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid post id"))
		return
	}

	user, ok := middlewarectx.UserFromContext(r.Context())
	if !ok {
		log.Error("user not found in context")
		w.WriteHeader(http.StatusUnauthorized)
		render.JSON(w, r, response.Error("unauthorized"))
		return
	}

	favorited, err := h.service.ToggleFavorite(r.Context(), user.ID, postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			log.Error("post not found", slog.Int64("post_id", postID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("post not found"))
			return
		}
		log.Error("failed to toggle favorite", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not toggle favorite"))
		return
	}

	render.JSON(w, r, response.OKWithData(map[string]any{
		"post_id":   postID,
		"favorited": favorited,
	}))
}
