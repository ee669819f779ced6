package server

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser_Failures(t *testing.T) {
	app, _ := setupApp(t, testConfig(t), nil)
	createUser(t, app, "alice")

	tests := []struct {
		name string
		body any
	}{
		{"duplicate username", map[string]string{"username": "alice", "email": "other@example.com"}},
		{"duplicate email", map[string]string{"username": "alice2", "email": "alice@example.com"}},
		{"missing username", map[string]string{"email": "x@example.com"}},
		{"invalid email", map[string]string{"username": "x", "email": "not-an-email"}},
		{"malformed json", `{"username":`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(t, app, http.MethodPost, "/users/create", tt.body)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Empty(t, readBody(t, resp))
		})
	}
}

func TestGetUser(t *testing.T) {
	app, _ := setupApp(t, testConfig(t), nil)
	createUser(t, app, "alice")

	assert.Equal(t, http.StatusOK, doJSON(t, app, http.MethodGet, "/users/1", nil).StatusCode)

	resp := doJSON(t, app, http.MethodGet, "/users/77", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Empty(t, readBody(t, resp))

	assert.Equal(t, http.StatusBadRequest, doJSON(t, app, http.MethodGet, "/users/abc", nil).StatusCode)
}
