// file: handler/devotion_handler_test.go

package handler

import (
	"context"
	"database/sql"
	"encoding/json"
	"isidro-api/model"
	"isidro-api/service"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockDevotionRepoForHandler struct{ mock.Mock }

func (m *mockDevotionRepoForHandler) Create(devotion *model.Devotion) error {
	args := m.Called(devotion)
	return args.Error(0)
}

func (m *mockDevotionRepoForHandler) GetByUserID(userID, skip, limit int) ([]*model.Devotion, error) {
	args := m.Called(userID, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Devotion), args.Error(1)
}

func (m *mockDevotionRepoForHandler) GetByID(userID, devotionID int) (*model.Devotion, error) {
	args := m.Called(userID, devotionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Devotion), args.Error(1)
}

func (m *mockDevotionRepoForHandler) Update(devotion *model.Devotion) error {
	args := m.Called(devotion)
	return args.Error(0)
}

func (m *mockDevotionRepoForHandler) Delete(userID, devotionID int) error {
	args := m.Called(userID, devotionID)
	return args.Error(0)
}

// noopCache satisfies ICacheClient for handler tests that do not assert on
// caching behavior. Every Get is a miss.
type noopCache struct{}

func (noopCache) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult("", redis.Nil)
}

func (noopCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	return redis.NewStatusResult("OK", nil)
}

func (noopCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return redis.NewIntResult(1, nil)
}

// asUser builds a request whose context carries an authenticated user and
// whose path parameters are already resolved.
func asUser(method, target string, body string, userID int, pathValues map[string]string) *http.Request {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	for name, value := range pathValues {
		req.SetPathValue(name, value)
	}
	return req.WithContext(context.WithValue(req.Context(), UserIDKey, userID))
}

func TestDevotionHandler_OwnershipEnforcement(t *testing.T) {
	repo := new(mockDevotionRepoForHandler)
	h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))

	t.Run("other user's list is forbidden", func(t *testing.T) {
		req := asUser("GET", "/api/devotions/9", "", 42, map[string]string{"userId": "9"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.List).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusForbidden, rr.Code)
		repo.AssertNotCalled(t, "GetByUserID")
	})

	t.Run("bad path id", func(t *testing.T) {
		req := asUser("GET", "/api/devotions/abc", "", 42, map[string]string{"userId": "abc"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.List).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestDevotionHandler_CRUD(t *testing.T) {
	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		repo := new(mockDevotionRepoForHandler)
		h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))
		repo.On("Create", mock.MatchedBy(func(d *model.Devotion) bool {
			return d.UserID == 42 && d.Scripture == "John 3:16"
		})).Return(nil).Once()

		body := `{"date":"2024-05-01T00:00:00Z","scripture":"John 3:16","insight":"grace","prayer":"thanks"}`
		req := asUser("POST", "/api/devotions/42", body, 42, map[string]string{"userId": "42"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.Create).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		repo.AssertExpectations(t)
	})

	t.Run("create with missing scripture fails validation", func(t *testing.T) {
		repo := new(mockDevotionRepoForHandler)
		h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))

		body := `{"date":"2024-05-01T00:00:00Z"}`
		req := asUser("POST", "/api/devotions/42", body, 42, map[string]string{"userId": "42"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.Create).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("list", func(t *testing.T) {
		repo := new(mockDevotionRepoForHandler)
		h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))
		repo.On("GetByUserID", 42, 0, 100).
			Return([]*model.Devotion{{ID: 1, UserID: 42, Date: date, Scripture: "John 3:16"}}, nil).Once()

		req := asUser("GET", "/api/devotions/42", "", 42, map[string]string{"userId": "42"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.List).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		var devotions []model.Devotion
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &devotions))
		assert.Len(t, devotions, 1)
		repo.AssertExpectations(t)
	})

	t.Run("get missing devotion", func(t *testing.T) {
		repo := new(mockDevotionRepoForHandler)
		h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))
		repo.On("GetByID", 42, 99).Return(nil, sql.ErrNoRows).Once()

		req := asUser("GET", "/api/devotions/42/99", "", 42,
			map[string]string{"userId": "42", "devotionId": "99"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.Get).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNotFound, rr.Code)
		repo.AssertExpectations(t)
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(mockDevotionRepoForHandler)
		h := NewDevotionHandler(service.NewDevotionService(repo, noopCache{}))
		repo.On("Delete", 42, 9).Return(nil).Once()

		req := asUser("DELETE", "/api/devotions/42/9", "", 42,
			map[string]string{"userId": "42", "devotionId": "9"})
		rr := httptest.NewRecorder()
		ErrorHandlingMiddleware(h.Delete).ServeHTTP(rr, req)

		assert.Equal(t, http.StatusNoContent, rr.Code)
		repo.AssertExpectations(t)
	})
}
