package routes

import (
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shoply/server/config"
	"github.com/shoply/server/store"
)

func TestMain(m *testing.M) {
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("GIN_MODE", "test")
	config.Load()
	os.Exit(m.Run())
}

func TestHealthEndpoint(t *testing.T) {
	r := SetupRouter(store.NewUserStore(), store.NewPostStore())

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Server is running!")
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := SetupRouter(store.NewUserStore(), store.NewPostStore())

	req := httptest.NewRequest(http.MethodGet, "/api/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Contains(t, w.Body.String(), "Route not found")
}

func TestRegisterThroughRouter(t *testing.T) {
	r := SetupRouter(store.NewUserStore(), store.NewPostStore())

	body := strings.NewReader(`{"email":"a@x.com","password":"secret123","name":"A"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", body)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	cookieSet := false
	for _, c := range w.Result().Cookies() {
		if c.Name == "accessToken" && c.Value != "" {
			cookieSet = true
		}
	}
	assert.True(t, cookieSet, "expected accessToken cookie")
	assert.NotContains(t, w.Body.String(), "password")
}

func TestPostsListIsPublic(t *testing.T) {
	r := SetupRouter(store.NewUserStore(), store.NewPostStore())

	req := httptest.NewRequest(http.MethodGet, "/api/posts", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"posts"`)
}
