package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfed/fedsite/internal/models"
	"github.com/sportsfed/fedsite/internal/services"
	"github.com/sportsfed/fedsite/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubAuthenticator maps tokens to outcomes.
type stubAuthenticator map[string]struct {
	admin *models.Admin
	err   error
}

func (s stubAuthenticator) Authenticate(_ context.Context, token string) (*models.Admin, error) {
	r, ok := s[token]
	if !ok {
		return nil, utils.ErrInvalidToken
	}
	return r.admin, r.err
}

func testAuthenticator() stubAuthenticator {
	editor := &models.Admin{Email: "editor@fed.org", Role: models.RoleAdmin}
	editor.ID = 2
	root := &models.Admin{Email: "root@fed.org", Role: models.RoleSuperAdmin}
	root.ID = 1

	return stubAuthenticator{
		"editor":  {admin: editor},
		"root":    {admin: root},
		"expired": {err: utils.ErrTokenExpired},
		"deleted": {err: services.ErrNotFound},
		"broken":  {err: errors.New("database down")},
	}
}

func performAuth(t *testing.T, guard gin.HandlerFunc, header string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	r := gin.New()
	r.Use(I18nMiddleware())
	r.GET("/protected", guard, func(c *gin.Context) {
		id, _ := utils.GetAdminIDFromContext(c)
		role, _ := utils.GetAdminRoleFromContext(c)
		c.JSON(http.StatusOK, gin.H{"id": id, "role": role})
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w, body
}

func TestAdminRequired(t *testing.T) {
	guard := AdminRequired(testAuthenticator())

	tests := []struct {
		name    string
		header  string
		status  int
		message string
	}{
		{"missing header", "", http.StatusUnauthorized, "Authentication required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Invalid token"},
		{"empty token", "Bearer   ", http.StatusUnauthorized, "Invalid token"},
		{"garbage token", "Bearer nonsense", http.StatusUnauthorized, "Invalid token"},
		{"expired token", "Bearer expired", http.StatusUnauthorized, "Token expired"},
		{"deleted admin", "Bearer deleted", http.StatusUnauthorized, "Admin account no longer exists"},
		{"lookup failure", "Bearer broken", http.StatusInternalServerError, ""},
		{"admin", "Bearer editor", http.StatusOK, ""},
		{"lowercase scheme", "bearer root", http.StatusOK, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, body := performAuth(t, guard, tt.header)
			assert.Equal(t, tt.status, w.Code)
			if tt.message != "" {
				assert.Equal(t, tt.message, body["error"])
			}
		})
	}
}

func TestAdminRequiredSetsContext(t *testing.T) {
	w, body := performAuth(t, AdminRequired(testAuthenticator()), "Bearer editor")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(2), body["id"])
	assert.Equal(t, "admin", body["role"])
}

func TestSuperAdminRequired(t *testing.T) {
	guard := SuperAdminRequired(testAuthenticator())

	w, body := performAuth(t, guard, "Bearer editor")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NotEmpty(t, body["error"])

	w, _ = performAuth(t, guard, "Bearer root")
	assert.Equal(t, http.StatusOK, w.Code)

	w, _ = performAuth(t, guard, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestPreferredLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"", "en"},
		{"hi", "hi"},
		{"hi-IN,hi;q=0.9,en;q=0.8", "hi"},
		{"fr-FR,hi;q=0.5", "hi"},
		{"de, fr", "en"},
		{"EN_gb", "en"},
		{",;q=0.1", "en"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, preferredLanguage(tt.header), tt.header)
	}
}
