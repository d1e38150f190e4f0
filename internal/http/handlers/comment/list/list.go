// Package list реализует HTTP-обработчик списка комментариев публикации.
//
// Обработчик публичный: аутентификация не требуется.
package list

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-platform/internal/http/response"
	"github.com/magabrotheeeer/blog-platform/internal/lib/sl"
	"github.com/magabrotheeeer/blog-platform/internal/models"
	"github.com/magabrotheeeer/blog-platform/internal/storage/repository"
)

// Service описывает интерфейс бизнес-логики чтения комментариев.
type Service interface {
	ListComments(ctx context.Context, postID int64) ([]*models.Comment, error)
}

// Handler управляет HTTP-запросами на чтение комментариев публикации.
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
// @Summary Комментарии публикации
// @Description Возвращает все комментарии указанной публикации.
// @Tags Comments
// @Produce  json
// @Param post_id path int true "ID публикации"
// @Success 200 {array} models.Comment "Список комментариев"
// @Failure 400 {object} response.ErrorResponse "Некорректный ID публикации"
// @Failure 404 {object} response.ErrorResponse "Публикация не найдена"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts/{post_id}/comments [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.comment.list"
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

	comments, err := h.service.ListComments(r.Context(), postID)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			log.Error("post not found", slog.Int64("post_id", postID))
			w.WriteHeader(http.StatusNotFound)
			render.JSON(w, r, response.Error("post not found"))
			return
		}
		log.Error("failed to list comments", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list comments"))
		return
	}
	if comments == nil {
		comments = []*models.Comment{}
	}

	render.JSON(w, r, response.OKWithData(comments))
}
