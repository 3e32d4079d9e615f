package controllers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContactRouter(webhookURL string) *gin.Engine {
	r := gin.New()
	r.POST("/api/contact", NewContactController(webhookURL).Relay)
	return r
}

func TestContactRelay_Success(t *testing.T) {
	var got string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		got = string(body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	r := newContactRouter(srv.URL)
	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "A", "email": "a@x.com", "message": "hi there",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, got, "A")
	assert.Contains(t, got, "a@x.com")
	assert.Contains(t, got, "hi there")
}

func TestContactRelay_WebhookFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	r := newContactRouter(srv.URL)
	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "A", "email": "a@x.com", "message": "hi",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send message")
}

func TestContactRelay_Unconfigured(t *testing.T) {
	r := newContactRouter("")
	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name": "A", "email": "a@x.com", "message": "hi",
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
