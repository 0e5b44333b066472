package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"timeline-to-calendar/pkg/response"
)

// rateLimiters holds one token bucket per user. Entries are never
// evicted; the user population is small and buckets are tiny.
type rateLimiters struct {
	mu       sync.Mutex
	limiters map[string]*rate.Limiter
	limit    rate.Limit
	burst    int
}

func newRateLimiters(perMinute, burst int) *rateLimiters {
	if perMinute <= 0 {
		perMinute = 10
	}
	if burst <= 0 {
		burst = 3
	}
	return &rateLimiters{
		limiters: make(map[string]*rate.Limiter),
		limit:    rate.Limit(float64(perMinute) / 60.0),
		burst:    burst,
	}
}

func (r *rateLimiters) get(key string) *rate.Limiter {
	r.mu.Lock()
	defer r.mu.Unlock()
	lim, ok := r.limiters[key]
	if !ok {
		lim = rate.NewLimiter(r.limit, r.burst)
		r.limiters[key] = lim
	}
	return lim
}

// ParseRateLimit throttles LLM parse endpoints per user. Must run
// after Auth so the user is on the context.
func (mw Middleware) ParseRateLimit() gin.HandlerFunc {
	limiters := newRateLimiters(mw.config.RateLimit.ParsePerMinute, mw.config.RateLimit.ParseBurst)
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			response.Unauthorized(c)
			c.Abort()
			return
		}

		if !limiters.get(user.ID).Allow() {
			c.JSON(http.StatusTooManyRequests, response.Resp{
				ErrorCode: http.StatusTooManyRequests,
				Message:   "Too many parse requests. Try again shortly.",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
