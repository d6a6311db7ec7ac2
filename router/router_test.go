// file: router/router_test.go

package router_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"isidro-api/app"
	"isidro-api/config"
	"isidro-api/handler"
	"isidro-api/logger"
	"isidro-api/model"
	"isidro-api/service"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

var testApp *app.TestApp
var authService *service.AuthService
var testRedisClient *redis.Client

func TestMain(m *testing.M) {
	logger.Init()
	config.LoadConfig("../")
	authService = service.NewAuthService(nil)

	// --- Database Connection ---
	testDbConnStr := fmt.Sprintf("postgres://%s:%s@localhost:5434/%s_test?sslmode=disable",
		config.AppConfig.Database.User,
		config.AppConfig.Database.Password,
		config.AppConfig.Database.Name,
	)
	db, err := sql.Open("postgres", testDbConnStr)
	if err != nil {
		log.Fatalf("could not connect to test database: %v", err)
	}
	for i := 0; i < 5; i++ {
		if err = db.Ping(); err == nil {
			break
		}
		time.Sleep(1 * time.Second)
	}
	if err != nil {
		log.Fatalf("database not ready: %v", err)
	}
	runMigrations(testDbConnStr)

	// --- Redis Connection for Integration Tests ---
	redisAddr := fmt.Sprintf("%s:%s", config.AppConfig.Redis.Host, config.AppConfig.Redis.Port)
	testRedisClient = redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: config.AppConfig.Redis.Password,
		DB:       1, // Use a separate DB for test isolation.
	})
	if _, err := testRedisClient.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("could not connect to test redis: %v", err)
	}

	testApp = app.NewTestApp(db, testRedisClient)

	exitCode := m.Run()

	db.Close()
	testRedisClient.Close()
	os.Exit(exitCode)
}

func runMigrations(connStr string) {
	migrationPath := "file://../db/migrations"
	mig, err := migrate.New(migrationPath, connStr)
	if err != nil {
		log.Fatalf("cannot create migrate instance: %v", err)
	}
	if err := mig.Up(); err != nil && err != migrate.ErrNoChange {
		log.Fatalf("failed to run migrate up: %v", err)
	}
}

// --- Test Helper Functions ---

func clearRedis(t *testing.T) {
	err := testRedisClient.FlushDB(context.Background()).Err()
	assert.NoError(t, err)
}

func createUserForTest(t *testing.T, name, email, password string) model.User {
	hashedPassword, _ := authService.HashPassword(password)
	user := model.User{
		Name:     name,
		Email:    email,
		Password: hashedPassword,
	}
	err := testApp.DB.QueryRow(
		`INSERT INTO users (name, email, password) VALUES ($1, $2, $3) RETURNING id`,
		user.Name, user.Email, user.Password,
	).Scan(&user.ID)
	assert.NoError(t, err)
	return user
}

func loginUserForTest(t *testing.T, email, password string) string {
	requestBody := fmt.Sprintf(`{"email": "%s", "password": "%s"}`, email, password)
	req, _ := http.NewRequest("POST", "/auth/login", strings.NewReader(requestBody))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code, "Login request should be successful")
	var response handler.LoginResponse
	err := json.Unmarshal(rr.Body.Bytes(), &response)
	assert.NoError(t, err, "Should be able to unmarshal login response")
	assert.NotEmpty(t, response.AccessToken, "Access Token should not be empty")
	return response.AccessToken
}

func cleanupUser(t *testing.T, email string) {
	_, err := testApp.DB.Exec("DELETE FROM users WHERE email = $1", email)
	assert.NoError(t, err, "Failed to clean up user")
}

func authedRequest(method, target, body, token string) *http.Request {
	var req *http.Request
	if body == "" {
		req, _ = http.NewRequest(method, target, nil)
	} else {
		req, _ = http.NewRequest(method, target, strings.NewReader(body))
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

// --- Test Suites ---

func TestHealthCheck_Integration(t *testing.T) {
	req, _ := http.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	expectedBody := `{"status":"API is healthy and running"}`
	assert.JSONEq(t, expectedBody, rr.Body.String())
}

func TestRegister_Integration(t *testing.T) {
	requestBody := `{"name":"Integration User","email":"integration@test.com","password":"password123"}`
	req, _ := http.NewRequest("POST", "/users", strings.NewReader(requestBody))
	rr := httptest.NewRecorder()
	defer cleanupUser(t, "integration@test.com")
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var name string
	err := testApp.DB.QueryRow("SELECT name FROM users WHERE email = $1", "integration@test.com").Scan(&name)
	assert.NoError(t, err)
	assert.Equal(t, "Integration User", name)

	// The bcrypt hash never leaves the server.
	assert.NotContains(t, rr.Body.String(), "password")
}

func TestLogin_Integration(t *testing.T) {
	email := "login.test@example.com"
	password := "password123"
	createUserForTest(t, "Login Test", email, password)
	defer cleanupUser(t, email)

	t.Run("successful login sets refresh cookie", func(t *testing.T) {
		requestBody := fmt.Sprintf(`{"email": "%s", "password": "%s"}`, email, password)
		req, _ := http.NewRequest("POST", "/auth/login", strings.NewReader(requestBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var response handler.LoginResponse
		err := json.Unmarshal(rr.Body.Bytes(), &response)
		assert.NoError(t, err)
		assert.NotEmpty(t, response.AccessToken)
		assert.Equal(t, "bearer", response.TokenType)

		res := rr.Result()
		defer res.Body.Close()
		var refreshCookie *http.Cookie
		for _, c := range res.Cookies() {
			if c.Name == "refresh_token" {
				refreshCookie = c
			}
		}
		assert.NotNil(t, refreshCookie, "refresh_token cookie should be set")
		assert.True(t, refreshCookie.HttpOnly)
	})

	t.Run("wrong password and unknown email look the same", func(t *testing.T) {
		bodies := []string{
			fmt.Sprintf(`{"email": "%s", "password": "wrongpassword"}`, email),
			`{"email": "nobody@example.com", "password": "password123"}`,
		}
		responses := make([]string, 0, 2)
		for _, body := range bodies {
			req, _ := http.NewRequest("POST", "/auth/login", strings.NewReader(body))
			rr := httptest.NewRecorder()
			testApp.Router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			responses = append(responses, rr.Body.String())
		}
		assert.Equal(t, responses[0], responses[1])
	})
}

func TestAuthFlows_Integration(t *testing.T) {
	email := "authflow@test.com"
	password := "password123"
	user := createUserForTest(t, "Authflow User", email, password)
	defer cleanupUser(t, user.Email)

	loginBody := fmt.Sprintf(`{"email": "%s", "password": "%s"}`, email, password)
	req, _ := http.NewRequest("POST", "/auth/login", strings.NewReader(loginBody))
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)

	var loginResponse handler.LoginResponse
	err := json.Unmarshal(rr.Body.Bytes(), &loginResponse)
	assert.NoError(t, err)

	res := rr.Result()
	defer res.Body.Close()
	var refreshCookie *http.Cookie
	for _, c := range res.Cookies() {
		if c.Name == "refresh_token" {
			refreshCookie = c
		}
	}
	assert.NotNil(t, refreshCookie)

	t.Run("verify-token introspects the access token", func(t *testing.T) {
		req, _ := http.NewRequest("GET", "/auth/verify-token?token="+loginResponse.AccessToken, nil)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, fmt.Sprintf(`{"user_id":%d}`, user.ID), rr.Body.String())
	})

	t.Run("refresh via cookie mints a new access token", func(t *testing.T) {
		req, _ := http.NewRequest("POST", "/auth/refresh", http.NoBody)
		req.AddCookie(refreshCookie)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var refreshResponse handler.TokenResponse
		err := json.Unmarshal(rr.Body.Bytes(), &refreshResponse)
		assert.NoError(t, err)
		assert.NotEmpty(t, refreshResponse.AccessToken)
	})

	t.Run("refresh token cannot be used as access token", func(t *testing.T) {
		req := authedRequest("GET", fmt.Sprintf("/users/%d", user.ID), "", refreshCookie.Value)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("logout clears the cookie but does not revoke", func(t *testing.T) {
		// Logout is reachable by both verbs.
		for _, method := range []string{"GET", "POST"} {
			req, _ := http.NewRequest(method, "/auth/logout", nil)
			rr := httptest.NewRecorder()
			testApp.Router.ServeHTTP(rr, req)
			assert.Equal(t, http.StatusOK, rr.Code)

			res := rr.Result()
			defer res.Body.Close()
			var cleared *http.Cookie
			for _, c := range res.Cookies() {
				if c.Name == "refresh_token" {
					cleared = c
				}
			}
			assert.NotNil(t, cleared)
			assert.Empty(t, cleared.Value)
		}

		// Stateless tokens: the old refresh token still works.
		refreshBody := fmt.Sprintf(`{"refresh_token": "%s"}`, refreshCookie.Value)
		req, _ := http.NewRequest("POST", "/auth/refresh", strings.NewReader(refreshBody))
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestUserOwnership_Integration(t *testing.T) {
	alice := createUserForTest(t, "Alice A", "alice@test.com", "password123")
	bob := createUserForTest(t, "Bob B", "bob@test.com", "password123")
	defer cleanupUser(t, alice.Email)
	defer cleanupUser(t, bob.Email)
	aliceToken := loginUserForTest(t, alice.Email, "password123")

	t.Run("own profile is readable", func(t *testing.T) {
		req := authedRequest("GET", fmt.Sprintf("/users/%d", alice.ID), "", aliceToken)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("someone else's profile is forbidden", func(t *testing.T) {
		req := authedRequest("GET", fmt.Sprintf("/users/%d", bob.ID), "", aliceToken)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("unauthenticated access is rejected", func(t *testing.T) {
		req, _ := http.NewRequest("GET", fmt.Sprintf("/users/%d", alice.ID), nil)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}

func TestDevotions_Integration(t *testing.T) {
	clearRedis(t)
	user := createUserForTest(t, "Devout User", "devotion@test.com", "password123")
	defer cleanupUser(t, user.Email)
	token := loginUserForTest(t, user.Email, "password123")

	base := fmt.Sprintf("/api/devotions/%d", user.ID)
	body := `{"date":"2024-05-01T00:00:00Z","scripture":"John 3:16","insight":"grace","prayer":"thanks"}`

	req := authedRequest("POST", base, body, token)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var created model.Devotion
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, user.ID, created.UserID)

	t.Run("list populates the cache", func(t *testing.T) {
		req := authedRequest("GET", base, "", token)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		cacheKey := fmt.Sprintf("devotions:%d", user.ID)
		cachedValue, err := testRedisClient.Get(context.Background(), cacheKey).Result()
		assert.NoError(t, err)
		assert.NotEmpty(t, cachedValue)
	})

	t.Run("write invalidates the cache", func(t *testing.T) {
		req := authedRequest("POST", base, body, token)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)

		cacheKey := fmt.Sprintf("devotions:%d", user.ID)
		_, err := testRedisClient.Get(context.Background(), cacheKey).Result()
		assert.Equal(t, redis.Nil, err)
	})

	t.Run("update and delete", func(t *testing.T) {
		target := fmt.Sprintf("%s/%d", base, created.ID)
		updateBody := `{"date":"2024-05-01T00:00:00Z","scripture":"Psalm 23","insight":"","prayer":""}`

		req := authedRequest("PUT", target, updateBody, token)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var updated model.Devotion
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &updated))
		assert.Equal(t, "Psalm 23", updated.Scripture)

		req = authedRequest("DELETE", target, "", token)
		rr = httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)

		req = authedRequest("GET", target, "", token)
		rr = httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestTrainings_Integration(t *testing.T) {
	user := createUserForTest(t, "Trainee", "trainee@test.com", "password123")
	defer cleanupUser(t, user.Email)
	token := loginUserForTest(t, user.Email, "password123")

	// A training needs an existing category.
	req := authedRequest("POST", "/api/training-categories", `{"name":"Doctrine","type":"classroom"}`, token)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var category model.TrainingCategory
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &category))
	defer testApp.DB.Exec("DELETE FROM training_categories WHERE id = $1", category.ID)

	base := fmt.Sprintf("/api/trainings/%d", user.ID)

	t.Run("unknown category is a 404", func(t *testing.T) {
		body := `{"category_id":999999,"title":"Foundations","status":"enrolled"}`
		req := authedRequest("POST", base, body, token)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("create and list", func(t *testing.T) {
		body := fmt.Sprintf(`{"category_id":%d,"title":"Foundations","status":"enrolled"}`, category.ID)
		req := authedRequest("POST", base, body, token)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusCreated, rr.Code)

		req = authedRequest("GET", base, "", token)
		rr = httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		var trainings []model.Training
		assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &trainings))
		assert.Len(t, trainings, 1)
		assert.Equal(t, "Foundations", trainings[0].Title)
	})
}

func TestMinistryActivities_Integration(t *testing.T) {
	organizer := createUserForTest(t, "Organizer", "organizer@test.com", "password123")
	other := createUserForTest(t, "Other User", "other@test.com", "password123")
	defer cleanupUser(t, organizer.Email)
	defer cleanupUser(t, other.Email)
	organizerToken := loginUserForTest(t, organizer.Email, "password123")
	otherToken := loginUserForTest(t, other.Email, "password123")

	body := `{"title":"Youth Night","is_regular":true,"place":"Main Hall","schedule_type":"weekly","weekdays":["friday"],"start_time":"18:00","end_time":"20:00"}`
	req := authedRequest("POST", "/api/ministry-activities", body, organizerToken)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var activity model.MinistryActivity
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &activity))
	assert.Equal(t, organizer.ID, activity.OrganizerID)

	target := fmt.Sprintf("/api/ministry-activities/%d", activity.ID)

	t.Run("anyone authenticated can read", func(t *testing.T) {
		req := authedRequest("GET", target, "", otherToken)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("only the organizer can modify", func(t *testing.T) {
		req := authedRequest("PUT", target, body, otherToken)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		req = authedRequest("DELETE", target, "", otherToken)
		rr = httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("organizer can delete", func(t *testing.T) {
		req := authedRequest("DELETE", target, "", organizerToken)
		rr := httptest.NewRecorder()
		testApp.Router.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNoContent, rr.Code)
	})
}

func TestOutreaches_Integration(t *testing.T) {
	user := createUserForTest(t, "Outreach User", "outreach@test.com", "password123")
	defer cleanupUser(t, user.Email)
	token := loginUserForTest(t, user.Email, "password123")

	body := `{"name":"North District","assigned_pastor":"Ptr. Cruz","location":"North Ave","year_start":2019}`
	req := authedRequest("POST", "/api/outreach", body, token)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	var outreach model.Outreach
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &outreach))
	defer testApp.DB.Exec("DELETE FROM outreaches WHERE id = $1", outreach.ID)

	req = authedRequest("GET", fmt.Sprintf("/api/outreach/%d", outreach.ID), "", token)
	rr = httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "North District")
}

func TestDeleteUser_Cascades_Integration(t *testing.T) {
	clearRedis(t)
	user := createUserForTest(t, "Doomed User", "doomed@test.com", "password123")
	token := loginUserForTest(t, user.Email, "password123")

	// Give the user a devotion so the cascade has something to sweep.
	body := `{"date":"2024-05-01T00:00:00Z","scripture":"John 3:16","insight":"","prayer":""}`
	req := authedRequest("POST", fmt.Sprintf("/api/devotions/%d", user.ID), body, token)
	rr := httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusCreated, rr.Code)

	req = authedRequest("DELETE", fmt.Sprintf("/users/%d", user.ID), "", token)
	rr = httptest.NewRecorder()
	testApp.Router.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	var count int
	err := testApp.DB.QueryRow("SELECT COUNT(*) FROM devotions WHERE user_id = $1", user.ID).Scan(&count)
	assert.NoError(t, err)
	assert.Zero(t, count)

	err = testApp.DB.QueryRow("SELECT COUNT(*) FROM users WHERE id = $1", user.ID).Scan(&count)
	assert.NoError(t, err)
	assert.Zero(t, count)
}
