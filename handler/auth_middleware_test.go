// file: handler/auth_middleware_test.go

package handler

import (
	"isidro-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	tokenService := service.NewTokenService(handlerTestSecret)
	middleware := NewAuthMiddleware(tokenService)

	var gotUserID int
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserID, _ = r.Context().Value(UserIDKey).(int)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("valid access token", func(t *testing.T) {
		token, err := tokenService.IssueAccess(42)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/devotions/42", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 42, gotUserID)
	})

	t.Run("refresh token does not pass as access token", func(t *testing.T) {
		token, err := tokenService.IssueRefresh(42)
		assert.NoError(t, err)

		req := httptest.NewRequest("GET", "/api/devotions/42", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rr := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("missing header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/devotions/42", nil)
		rr := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/devotions/42", nil)
		req.Header.Set("Authorization", "Token abc")
		rr := httptest.NewRecorder()
		middleware.RequireAuth(next).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
