// internal/middleware/i18n.go
package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/sportsfed/fedsite/internal/i18n"
)

// I18nMiddleware picks the first supported language from Accept-Language.
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("lang", preferredLanguage(c.GetHeader("Accept-Language")))
		c.Next()
	}
}

// preferredLanguage handles values like "hi-IN,hi;q=0.9,en;q=0.8".
func preferredLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.TrimSpace(strings.SplitN(part, ";", 2)[0])
		tag = strings.ReplaceAll(tag, "_", "-")
		base := strings.ToLower(strings.SplitN(tag, "-", 2)[0])
		if base != "" && i18n.IsSupported(base) {
			return base
		}
	}
	return i18n.DefaultLang
}
