package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sportsfed/fedsite/internal/models"
)

type recordingAuditor struct {
	entries []*models.AuditLog
	err     error
}

func (r *recordingAuditor) RecordAudit(_ context.Context, entry *models.AuditLog) error {
	r.entries = append(r.entries, entry)
	return r.err
}

func auditEngine(recorder AuditRecorder) *gin.Engine {
	r := gin.New()
	r.Use(AuditLog(recorder))
	signedIn := func(c *gin.Context) { c.Set("admin_id", uint(7)) }
	r.GET("/api/news", signedIn, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PATCH("/api/news/:id", signedIn, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.POST("/api/contacts", func(c *gin.Context) { c.Status(http.StatusCreated) })
	r.DELETE("/api/players/:id", signedIn, func(c *gin.Context) { c.Status(http.StatusNotFound) })
	return r
}

func serve(r *gin.Engine, method, path string) {
	r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(method, path, nil))
}

func TestAuditLogRecordsAdminWrites(t *testing.T) {
	recorder := &recordingAuditor{}
	r := auditEngine(recorder)

	serve(r, http.MethodGet, "/api/news")
	serve(r, http.MethodPost, "/api/contacts")
	assert.Empty(t, recorder.entries, "reads and anonymous writes are not audited")

	serve(r, http.MethodPatch, "/api/news/12")
	serve(r, http.MethodDelete, "/api/players/3")
	require.Len(t, recorder.entries, 2)

	patch := recorder.entries[0]
	require.NotNil(t, patch.AdminID)
	assert.Equal(t, uint(7), *patch.AdminID)
	assert.Equal(t, "PATCH /api/news/:id", patch.Action)
	assert.Equal(t, "news", patch.ResourceType)
	require.NotNil(t, patch.ResourceID)
	assert.Equal(t, uint(12), *patch.ResourceID)
	assert.Equal(t, http.StatusOK, patch.Status)

	del := recorder.entries[1]
	assert.Equal(t, "players", del.ResourceType)
	assert.Equal(t, http.StatusNotFound, del.Status)
}

func TestAuditLogFailureDoesNotAffectResponse(t *testing.T) {
	r := auditEngine(&recordingAuditor{err: errors.New("disk full")})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPatch, "/api/news/1", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestExtractResourceType(t *testing.T) {
	assert.Equal(t, "hero-slides", extractResourceType("/api/hero-slides/4"))
	assert.Equal(t, "upload", extractResourceType("/api/upload"))
	assert.Equal(t, "health", extractResourceType("/health"))
	assert.Equal(t, "unknown", extractResourceType("/"))
}
