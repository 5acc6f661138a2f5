package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/sportsfed/fedsite/internal/config"
)

func corsRequest(cfg config.CORSConfig, origin string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Use(CORS(cfg))
	r.GET("/api/news", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/api/news", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsAnyOriginByDefault(t *testing.T) {
	w := corsRequest(config.CORSConfig{AllowedOrigins: []string{"*"}}, "https://anywhere.example")
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Total-Count")
}

func TestCORSRestrictsOrigins(t *testing.T) {
	cfg := config.CORSConfig{AllowedOrigins: []string{"https://federation.example"}}

	w := corsRequest(cfg, "https://federation.example")
	assert.Equal(t, "https://federation.example", w.Header().Get("Access-Control-Allow-Origin"))

	w = corsRequest(cfg, "https://evil.example")
	assert.Equal(t, http.StatusForbidden, w.Code)
}
