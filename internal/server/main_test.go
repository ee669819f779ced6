package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"postboard/internal/config"
	"postboard/internal/database"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig(t *testing.T) *config.Config {
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	return &config.Config{
		Env:                      "test",
		Port:                     "0",
		DBDriver:                 database.DriverSQLite,
		DBSQLitePath:             fmt.Sprintf("file:server_%s?mode=memory&cache=shared&_foreign_keys=1", name),
		EventsBackend:            "none",
		RateLimitCreatePerMinute: 30,
	}
}

// setupApp wires a full app over a private in-memory SQLite database.
func setupApp(t *testing.T, cfg *config.Config, rdb *redis.Client) (*fiber.App, *gorm.DB) {
	t.Helper()
	db, err := database.Connect(cfg)
	require.NoError(t, err)
	require.NoError(t, database.ApplySchema(context.Background(), db, cfg))
	t.Cleanup(func() { _ = database.Close(db) })

	s, err := NewServerWithDeps(cfg, db, rdb, nil)
	require.NoError(t, err)
	return s.NewApp(), db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = strings.NewReader(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(raw)
}
