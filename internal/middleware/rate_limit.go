// internal/middleware/rate_limit.go
package middleware

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/sportsfed/fedsite/internal/config"
	"github.com/sportsfed/fedsite/internal/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter keeps one token bucket per client IP.
type RateLimiter struct {
	visitors map[string]*visitor
	mtx      sync.Mutex
	rate     rate.Limit
	burst    int
}

func NewRateLimiter(r rate.Limit, b int) *RateLimiter {
	rl := &RateLimiter{
		visitors: make(map[string]*visitor),
		rate:     r,
		burst:    b,
	}

	// Clean up old visitors every minute
	go rl.cleanupVisitors()

	return rl
}

func (rl *RateLimiter) cleanupVisitors() {
	for {
		time.Sleep(time.Minute)
		rl.mtx.Lock()
		for ip, v := range rl.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(rl.visitors, ip)
			}
		}
		rl.mtx.Unlock()
	}
}

func (rl *RateLimiter) getVisitor(ip string) *rate.Limiter {
	rl.mtx.Lock()
	defer rl.mtx.Unlock()

	v, exists := rl.visitors[ip]
	if !exists {
		limiter := rate.NewLimiter(rl.rate, rl.burst)
		rl.visitors[ip] = &visitor{limiter, time.Now()}
		return limiter
	}

	v.lastSeen = time.Now()
	return v.limiter
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.getVisitor(c.ClientIP()).Allow() {
			utils.TooManyRequestsResponse(c)
			return
		}
		c.Next()
	}
}

// RateLimits holds the per-route limiters. When limiting is disabled every
// handler simply passes the request on.
type RateLimits struct {
	General gin.HandlerFunc
	Auth    gin.HandlerFunc
	Upload  gin.HandlerFunc
	Contact gin.HandlerFunc
}

func NewRateLimits(cfg config.RateLimitConfig) RateLimits {
	if !cfg.Enabled {
		pass := func(c *gin.Context) { c.Next() }
		return RateLimits{General: pass, Auth: pass, Upload: pass, Contact: pass}
	}

	return RateLimits{
		General: NewRateLimiter(rate.Limit(cfg.GeneralRPS), cfg.GeneralBurst).Middleware(),
		Auth:    perMinute(cfg.AuthPerMinute),
		Upload:  perMinute(cfg.UploadPerMinute),
		Contact: perMinute(cfg.ContactPerMinute),
	}
}

func perMinute(n int) gin.HandlerFunc {
	return NewRateLimiter(rate.Every(time.Minute/time.Duration(n)), n).Middleware()
}
