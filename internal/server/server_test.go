package server

import (
	"net/http"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServerWithDeps_RequiresDatabase(t *testing.T) {
	_, err := NewServerWithDeps(testConfig(t), nil, nil, nil)
	assert.Error(t, err)
}

func TestHealthChecks(t *testing.T) {
	app, _ := setupApp(t, testConfig(t), nil)

	resp := doJSON(t, app, http.MethodGet, "/health/live", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decode[map[string]any](t, resp)
	assert.Equal(t, "healthy", body["status"])
	checks := body["checks"].(map[string]any)
	assert.Equal(t, "healthy", checks["database"])
	assert.Equal(t, "disabled", checks["redis"])
}

func TestReadinessCheck_RedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	app, _ := setupApp(t, testConfig(t), rdb)

	resp := doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	mr.Close()
	resp = doJSON(t, app, http.MethodGet, "/health/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestOperationalEndpoints(t *testing.T) {
	cfg := testConfig(t)
	cfg.FeatureFlags = "post_cache=on,post_events=off"
	app, _ := setupApp(t, cfg, nil)

	resp := doJSON(t, app, http.MethodGet, "/flags?subject=3", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	flags := decode[struct {
		Raw       map[string]string `json:"raw"`
		Evaluated map[string]bool   `json:"evaluated"`
	}](t, resp)
	assert.Equal(t, "on", flags.Raw["post_cache"])
	assert.True(t, flags.Evaluated["post_cache"])
	assert.False(t, flags.Evaluated["post_events"])

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodGet, "/flags?subject=x", nil).StatusCode)

	resp = doJSON(t, app, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "http_requests_total")

	resp = doJSON(t, app, http.MethodGet, "/swagger/doc.json", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "/posts/create")
}

func TestResponsesCarryTraceAndRequestIDs(t *testing.T) {
	app, _ := setupApp(t, testConfig(t), nil)

	resp := doJSON(t, app, http.MethodGet, "/health/live", nil)
	assert.NotEmpty(t, resp.Header.Get("X-Request-ID"))
	assert.Len(t, resp.Header.Get("X-Trace-ID"), 32)
}

// Not parallel: t.Setenv switches the rate limiter on.
func TestCreateRoutesAreRateLimited(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	cfg := testConfig(t)
	cfg.RateLimitCreatePerMinute = 1
	app, _ := setupApp(t, cfg, rdb)

	first := doJSON(t, app, http.MethodPost, "/users/create", map[string]string{
		"username": "alice", "email": "alice@example.com",
	})
	assert.Equal(t, http.StatusCreated, first.StatusCode)

	second := doJSON(t, app, http.MethodPost, "/users/create", map[string]string{
		"username": "bob", "email": "bob@example.com",
	})
	assert.Equal(t, http.StatusTooManyRequests, second.StatusCode)
	assert.NotEmpty(t, second.Header.Get("Retry-After"))

	// Post creation has its own bucket.
	post := doJSON(t, app, http.MethodPost, "/posts/create", map[string]any{
		"userId": 1, "content": map[string]any{"title": "Hi"},
	})
	assert.Equal(t, http.StatusCreated, post.StatusCode)
}
