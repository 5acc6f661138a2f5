// internal/handlers/filters.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportsfed/fedsite/internal/services"
)

// ActiveFilter honours ?active=true on hero slides.
func ActiveFilter(c *gin.Context) []services.Scope {
	if isTrue(c.Query("active")) {
		return []services.Scope{services.ActiveOnly}
	}
	return nil
}

// FeaturedFilter honours ?featured=true on news and events.
func FeaturedFilter(c *gin.Context) []services.Scope {
	if isTrue(c.Query("featured")) {
		return []services.Scope{services.FeaturedOnly}
	}
	return nil
}

// CategoryFilter honours ?category= on the media gallery.
func CategoryFilter(c *gin.Context) []services.Scope {
	if category := strings.TrimSpace(c.Query("category")); category != "" {
		return []services.Scope{services.InCategory(category)}
	}
	return nil
}

func isTrue(v string) bool {
	return v == "true" || v == "1"
}
