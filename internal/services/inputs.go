// internal/services/inputs.go
package services

import (
	"strings"
	"time"

	"github.com/sportsfed/fedsite/internal/utils"
)

// Request bodies decode into structs of pointers so that an absent field
// (nil) can be told apart from an explicit empty value. The helpers below
// convert validated pointers into column values.

func text(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

// optionalText maps an absent or blank value to NULL.
func optionalText(p *string) *string {
	if p == nil {
		return nil
	}
	s := strings.TrimSpace(*p)
	if s == "" {
		return nil
	}
	return &s
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

func intValue(p *utils.IntString) int {
	if p == nil {
		return 0
	}
	return p.Int()
}

func optionalDate(p *utils.DateString) *time.Time {
	if p == nil || p.IsEmpty() {
		return nil
	}
	t := p.Time()
	return &t
}

// changeSet accumulates the columns of a PATCH payload.
type changeSet map[string]interface{}

func (c changeSet) text(column string, p *string) {
	if p != nil {
		c[column] = text(p)
	}
}

func (c changeSet) optionalText(column string, p *string) {
	if p != nil {
		if v := optionalText(p); v != nil {
			c[column] = *v
		} else {
			c[column] = nil
		}
	}
}

func (c changeSet) bool(column string, p *bool) {
	if p != nil {
		c[column] = *p
	}
}

func (c changeSet) int(column string, p *utils.IntString) {
	if p != nil {
		c[column] = p.Int()
	}
}

func (c changeSet) date(column string, p *utils.DateString) {
	if p != nil {
		c[column] = p.Time()
	}
}

func (c changeSet) optionalDate(column string, p *utils.DateString) {
	if p != nil {
		if v := optionalDate(p); v != nil {
			c[column] = *v
		} else {
			c[column] = nil
		}
	}
}
