package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/stai-tuned/gcf-flood-backend/internal/auth/repository"
	"github.com/stai-tuned/gcf-flood-backend/internal/auth/service"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	users := repository.NewUserRepo(client, zap.NewNop())
	sessions := repository.NewSessionRepo(client, zap.NewNop())
	svc := service.NewAuthService(users, sessions, time.Hour)

	r := gin.New()
	New(svc).Register(r.Group("/api/v1/auth"))

	protected := r.Group("/api/v1")
	protected.Use(RequireSession(svc))
	protected.GET("/whoami", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"email": c.GetString("user_email"), "name": c.GetString("user_name")})
	})
	return r
}

func post(r *gin.Engine, path string, payload any, token string) *httptest.ResponseRecorder {
	var body []byte
	if payload != nil {
		body, _ = json.Marshal(payload)
	}
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(rr, req)
	return rr
}

func TestSignupLoginLogoutFlow(t *testing.T) {
	r := setupRouter(t)

	rr := post(r, "/api/v1/auth/signup", gin.H{"name": "Alice", "email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	rr = post(r, "/api/v1/auth/login", gin.H{"email": "alice@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var loginResp struct {
		OK      bool `json:"ok"`
		Session struct {
			Token string `json:"token"`
			Name  string `json:"name"`
		} `json:"session"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &loginResp))
	require.NotEmpty(t, loginResp.Session.Token)
	assert.Equal(t, "ALICE", loginResp.Session.Name)

	// session grants access to protected routes
	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Session.Token)
	r.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "alice@example.com")

	rr = post(r, "/api/v1/auth/logout", nil, loginResp.Session.Token)
	require.Equal(t, http.StatusOK, rr.Code)

	// token no longer valid
	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Session.Token)
	r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestSignup_ValidationErrors(t *testing.T) {
	r := setupRouter(t)

	rr := post(r, "/api/v1/auth/signup", gin.H{"name": "", "email": "bad", "password": "x"}, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp struct {
		OK     bool     `json:"ok"`
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Errors, "Please enter your name.")
	assert.Contains(t, resp.Errors, "Please enter a valid email format.")
}

func TestLogin_WrongPassword(t *testing.T) {
	r := setupRouter(t)

	rr := post(r, "/api/v1/auth/signup", gin.H{"name": "Bob", "email": "bob@example.com", "password": "secret1"}, "")
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = post(r, "/api/v1/auth/login", gin.H{"email": "bob@example.com", "password": "nope99"}, "")
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Password does not match.")
}

func TestRequireSession_MissingToken(t *testing.T) {
	r := setupRouter(t)

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/v1/whoami", nil))
	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestLogout_MissingToken(t *testing.T) {
	r := setupRouter(t)

	rr := post(r, "/api/v1/auth/logout", nil, "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
