package list_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/list"
	"github.com/magabrotheeeer/blog-platform/internal/models"
)

// Мок для сервиса публикаций
type BlogServiceMock struct {
	mock.Mock
}

func (m *BlogServiceMock) ListPosts(ctx context.Context, skip, limit int) ([]*models.Post, error) {
	args := m.Called(ctx, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Post), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestListPostsHandler(t *testing.T) {
	posts := []*models.Post{
		{ID: 1, Title: "First", Content: "post", OwnerID: 1},
		{ID: 2, Title: "Second", Content: "post", OwnerID: 2},
	}

	tests := []struct {
		name           string
		query          string
		setupMocks     func(m *BlogServiceMock)
		wantStatusCode int
		wantCount      int
	}{
		{
			name:  "no pagination params",
			query: "",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListPosts", mock.Anything, 0, 0).Return(posts, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
		},
		{
			name:  "skip and limit forwarded",
			query: "?skip=5&limit=20",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListPosts", mock.Anything, 5, 20).Return(posts, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      2,
		},
		{
			name:           "non-numeric skip",
			query:          "?skip=abc",
			setupMocks:     func(_ *BlogServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "non-numeric limit",
			query:          "?limit=ten",
			setupMocks:     func(_ *BlogServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:  "empty result is an empty array",
			query: "",
			setupMocks: func(m *BlogServiceMock) {
				m.On("ListPosts", mock.Anything, 0, 0).Return([]*models.Post(nil), nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantCount:      0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(BlogServiceMock)
			tt.setupMocks(serviceMock)

			handler := list.New(newNoopLogger(), serviceMock)

			req := httptest.NewRequest(http.MethodGet, "/posts"+tt.query, nil)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantStatusCode == http.StatusOK {
				var body struct {
					Status string         `json:"status"`
					Data   []*models.Post `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotNil(t, body.Data)
				assert.Len(t, body.Data, tt.wantCount)
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
