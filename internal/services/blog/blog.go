// Package services содержит бизнес-логику для работы с публикациями,
// комментариями и отметками "нравится"/"избранное".
package services

import (
	"context"
	"log/slog"

	"github.com/magabrotheeeer/blog-platform/internal/models"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// BlogRepository определяет методы для работы с публикациями в хранилище.
type BlogRepository interface {
	// CreatePost добавляет новую публикацию и возвращает её ID.
	CreatePost(ctx context.Context, post models.Post) (int64, error)
	// GetPost возвращает публикацию по ID.
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	// ListPosts возвращает список публикаций с пагинацией.
	ListPosts(ctx context.Context, limit, offset int) ([]*models.Post, error)
	// CreateComment добавляет комментарий и возвращает его ID.
	CreateComment(ctx context.Context, comment models.Comment) (int64, error)
	// ListCommentsByPost возвращает комментарии публикации.
	ListCommentsByPost(ctx context.Context, postID int64) ([]*models.Comment, error)
	// ToggleLike переключает отметку "нравится" и возвращает новое состояние.
	ToggleLike(ctx context.Context, userID, postID int64) (bool, error)
	// ToggleFavorite переключает отметку "избранное" и возвращает новое состояние.
	ToggleFavorite(ctx context.Context, userID, postID int64) (bool, error)
}

// BlogService реализует бизнес-логику работы с публикациями.
type BlogService struct {
	repo BlogRepository
	log  *slog.Logger
}

// NewBlogService создает новый экземпляр BlogService.
func NewBlogService(repo BlogRepository, log *slog.Logger) *BlogService {
	return &BlogService{
		repo: repo,
		log:  log,
	}
}

// CreatePost создает публикацию от имени пользователя ownerID и возвращает её.
func (s *BlogService) CreatePost(ctx context.Context, ownerID int64, req models.DummyPost) (*models.Post, error) {
	post := models.Post{
		Title:   req.Title,
		Content: req.Content,
		OwnerID: ownerID,
	}
	id, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	post.ID = id

	s.log.Info("created new post", slog.Int64("id", id), slog.Int64("owner_id", ownerID))
	return &post, nil
}

// ListPosts возвращает публикации с пагинацией skip/limit.
// Нулевой или отрицательный limit заменяется значением по умолчанию,
// слишком большой — ограничивается сверху.
func (s *BlogService) ListPosts(ctx context.Context, skip, limit int) ([]*models.Post, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	return s.repo.ListPosts(ctx, limit, skip)
}

// CreateComment создает комментарий к публикации postID от имени пользователя ownerID.
// Если публикации не существует, пробрасывается ошибка хранилища.
func (s *BlogService) CreateComment(ctx context.Context, ownerID, postID int64, req models.DummyComment) (*models.Comment, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comment := models.Comment{
		Content: req.Content,
		PostID:  postID,
		OwnerID: ownerID,
	}
	id, err := s.repo.CreateComment(ctx, comment)
	if err != nil {
		return nil, err
	}
	comment.ID = id

	s.log.Info("created new comment", slog.Int64("id", id), slog.Int64("post_id", postID))
	return &comment, nil
}

// ListComments возвращает комментарии публикации postID.
func (s *BlogService) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	return s.repo.ListCommentsByPost(ctx, postID)
}

// ToggleLike переключает отметку "нравится" и возвращает новое состояние.
func (s *BlogService) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return false, err
	}
	liked, err := s.repo.ToggleLike(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	s.log.Info("toggled like", slog.Int64("post_id", postID), slog.Bool("liked", liked))
	return liked, nil
}

// ToggleFavorite переключает отметку "избранное" и возвращает новое состояние.
func (s *BlogService) ToggleFavorite(ctx context.Context, userID, postID int64) (bool, error) {
	if _, err := s.repo.GetPost(ctx, postID); err != nil {
		return false, err
	}
	favorited, err := s.repo.ToggleFavorite(ctx, userID, postID)
	if err != nil {
		return false, err
	}
	s.log.Info("toggled favorite", slog.Int64("post_id", postID), slog.Bool("favorited", favorited))
	return favorited, nil
}
