package me_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/blog-platform/internal/http/handlers/user/me"
	"github.com/magabrotheeeer/blog-platform/internal/http/middlewarectx"
	"github.com/magabrotheeeer/blog-platform/internal/models"
)

func newNoopLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
}

func TestMeHandler(t *testing.T) {
	handler := me.New(newNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	ctx := context.WithValue(req.Context(), middlewarectx.User,
		&models.User{ID: 7, Username: "alice", PasswordHash: "secret-hash", IsActive: true})
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req.WithContext(ctx))

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Status string      `json:"status"`
		Data   models.User `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(7), body.Data.ID)
	assert.Equal(t, "alice", body.Data.Username)
	assert.True(t, body.Data.IsActive)

	// Хэш пароля исключён из сериализации
	assert.NotContains(t, rec.Body.String(), "secret-hash")
}

func TestMeHandler_NoUserInContext(t *testing.T) {
	handler := me.New(newNoopLogger())

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
