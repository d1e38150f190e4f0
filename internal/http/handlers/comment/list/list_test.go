package list_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/comment/list"
	"github.com/magabrotheeeer/blog-platform/internal/models"
	"github.com/magabrotheeeer/blog-platform/internal/storage/repository"
)

// Мок для сервиса комментариев
type BlogServiceMock struct {
	mock.Mock
}

func (m *BlogServiceMock) ListComments(ctx context.Context, postID int64) ([]*models.Comment, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Comment), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newListRequest(postID string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/posts/"+postID+"/comments", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("post_id", postID)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestListCommentsHandler(t *testing.T) {
	comments := []*models.Comment{
		{ID: 1, Content: "first", PostID: 1, OwnerID: 2},
		{ID: 2, Content: "second", PostID: 1, OwnerID: 3},
	}

	tests := []struct {
		name           string
		postID         string
		setupMocks     func(m *BlogServiceMock)
		wantStatusCode int
		wantCount      int
	}{
		{
			name:   "comments returned",
			postID: "1",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListComments", mock.Anything, int64(1)).Return(comments, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
		},
		{
			name:   "post without comments gives empty array",
			postID: "2",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListComments", mock.Anything, int64(2)).
					Return([]*models.Comment(nil), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      0,
		},
		{
			name:           "invalid post id",
			postID:         "abc",
			setupMocks:     func(_ *BlogServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:   "post not found",
			postID: "99",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListComments", mock.Anything, int64(99)).
					Return(nil, repository.ErrPostNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(BlogServiceMock)
			tt.setupMocks(serviceMock)

			handler := list.New(newNoopLogger(), serviceMock)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, newListRequest(tt.postID))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantStatusCode == http.StatusOK {
				var body struct {
					Status string            `json:"status"`
					Data   []*models.Comment `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotNil(t, body.Data)
				assert.Len(t, body.Data, tt.wantCount)
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
