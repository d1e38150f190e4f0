package like_test

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

	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/post/like"
	"github.com/magabrotheeeer/blog-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/blog-platform/internal/models"
	"github.com/magabrotheeeer/blog-platform/internal/storage/repository"
)

// Мок для сервиса публикаций
type BlogServiceMock struct {
	mock.Mock
}

func (m *BlogServiceMock) ToggleLike(ctx context.Context, userID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func newLikeRequest(postID string, user *models.User) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/posts/"+postID+"/like", nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("post_id", postID)
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if user != nil {
		ctx = context.WithValue(ctx, middlewarectx.User, user)
	}
	return req.WithContext(ctx)
}

func TestToggleLikeHandler(t *testing.T) {
	testUser := &models.User{ID: 7, Username: "alice", IsActive: true}

	tests := []struct {
		name           string
		postID         string
		user           *models.User
		setupMocks     func(m *BlogServiceMock)
		wantStatusCode int
		wantLiked      bool
	}{
		{
			name:   "like set",
			postID: "1",
			user:   testUser,
			setupMocks: func(m *BlogServiceMock) {
				m.On("ToggleLike", mock.Anything, int64(7), int64(1)).Return(true, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantLiked:      true,
		},
		{
			name:   "like removed on repeat",
			postID: "1",
			user:   testUser,
			setupMocks: func(m *BlogServiceMock) {
				m.On("ToggleLike", mock.Anything, int64(7), int64(1)).Return(false, nil).Once()
			},
			wantStatusCode: http.StatusOK,
			wantLiked:      false,
		},
		{
			name:           "invalid post id",
			postID:         "abc",
			user:           testUser,
			setupMocks:     func(_ *BlogServiceMock) {},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:           "no user in context",
			postID:         "1",
			user:           nil,
			setupMocks:     func(_ *BlogServiceMock) {},
			wantStatusCode: http.StatusUnauthorized,
		},
		{
			name:   "post not found",
			postID: "99",
			user:   testUser,
			setupMocks: func(m *BlogServiceMock) {
				m.On("ToggleLike", mock.Anything, int64(7), int64(99)).
					Return(false, repository.ErrPostNotFound).Once()
			},
			wantStatusCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			serviceMock := new(BlogServiceMock)
			tt.setupMocks(serviceMock)

			handler := like.New(newNoopLogger(), serviceMock)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, newLikeRequest(tt.postID, tt.user))

			assert.Equal(t, tt.wantStatusCode, rec.Code)
			if tt.wantStatusCode == http.StatusOK {
				var body struct {
					Status string `json:"status"`
					Data   struct {
						PostID int64 `json:"post_id"`
						Liked  bool  `json:"liked"`
					} `json:"data"`
				}
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.Equal(t, tt.wantLiked, body.Data.Liked)
			}
			serviceMock.AssertExpectations(t)
		})
	}
}
