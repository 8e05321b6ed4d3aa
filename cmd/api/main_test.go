package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GTDGit/multitool_api/internal/config"
	"github.com/GTDGit/multitool_api/internal/handler"
	"github.com/GTDGit/multitool_api/internal/middleware"
	"github.com/GTDGit/multitool_api/internal/service"
)

func testRouter(t *testing.T, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productSvc := service.NewProductService(nil)
	chatSvc := service.NewChatService(nil, service.NewToolbox(productSvc, service.NewYouTubeService(nil)), service.ChatOptions{})
	handlers := &Handlers{
		Health:   handler.NewHealthHandler("test", cfg.APIPrefix),
		Database: handler.NewDatabaseHandler(productSvc),
		Product:  handler.NewProductHandler(productSvc, false),
		Chat:     handler.NewChatHandler(chatSvc),
	}

	limiter := middleware.NewMemoryLimiter(time.Minute, 3)
	t.Cleanup(limiter.Close)

	r, err := newRouter(cfg, handlers, limiter)
	require.NoError(t, err)
	return r
}

func TestRouter_Routes(t *testing.T) {
	r := testRouter(t, &config.Config{APIPrefix: "/api/v1", CORSOrigin: []string{"*"}})

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}
	for _, want := range []string{
		"GET /",
		"GET /api/v1/health",
		"GET /api/v1/info",
		"GET /api/v1/database/health",
		"GET /api/v1/products/search",
		"GET /api/v1/products/categories",
		"POST /api/v1/chat",
	} {
		assert.True(t, registered[want], want)
	}
}

func TestRouter_MiddlewareChain(t *testing.T) {
	r := testRouter(t, &config.Config{APIPrefix: "/api/v1", CORSOrigin: []string{"*"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	req.Header.Set("Origin", "https://app.example")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://app.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "3", w.Header().Get("RateLimit-Limit"))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v2/health", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"message":"Cannot GET /api/v2/health"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestNewRouter_InvalidProxies(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewMemoryLimiter(time.Minute, 1)
	defer limiter.Close()

	_, err := newRouter(&config.Config{TrustedProxies: []string{"not-an-ip"}}, &Handlers{}, limiter)
	assert.Error(t, err)
}
