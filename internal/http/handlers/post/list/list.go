// Package list реализует HTTP-обработчик списка публикаций.
//
// Обработчик публичный: аутентификация не требуется. Пагинация задается
// query-параметрами skip и limit.
package list

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/blog-platform/internal/http/response"
	"github.com/magabrotheeeer/blog-platform/internal/lib/sl"
	"github.com/magabrotheeeer/blog-platform/internal/models"
)

// Service описывает интерфейс бизнес-логики чтения публикаций.
type Service interface {
	ListPosts(ctx context.Context, skip, limit int) ([]*models.Post, error)
}

// Handler управляет HTTP-запросами на чтение списка публикаций.
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
// @Summary Список публикаций
// @Description Возвращает публикации с пагинацией skip/limit.
// @Tags Posts
// @Produce  json
// @Param skip query int false "Сколько записей пропустить"
// @Param limit query int false "Максимум записей в ответе"
// @Success 200 {array} models.Post "Список публикаций"
// @Failure 400 {object} response.ErrorResponse "Некорректные параметры пагинации"
// @Failure 500 {object} response.ErrorResponse "Ошибка сервера"
// @Router /posts [get]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.post.list"
	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	skip, limit, err := parsePagination(r)
	if err != nil {
		log.Error("failed to parse pagination params", sl.Err(err))
		w.WriteHeader(http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid pagination parameters"))
		return
	}

	posts, err := h.service.ListPosts(r.Context(), skip, limit)
	if err != nil {
		log.Error("failed to list posts", sl.Err(err))
		w.WriteHeader(http.StatusInternalServerError)
		render.JSON(w, r, response.Error("could not list posts"))
		return
	}
	if posts == nil {
		posts = []*models.Post{}
	}

	render.JSON(w, r, response.OKWithData(posts))
}

// parsePagination читает skip и limit из query; отсутствующие значения равны нулю,
// дефолты подставляет сервис.
func parsePagination(r *http.Request) (skip, limit int, err error) {
	if v := r.URL.Query().Get("skip"); v != "" {
		skip, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			return 0, 0, err
		}
	}
	return skip, limit, nil
}
