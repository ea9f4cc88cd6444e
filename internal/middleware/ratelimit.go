package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// DefaultLimiterIdleTTL is how long a client's bucket survives without requests.
const DefaultLimiterIdleTTL = 10 * time.Minute

// IPRateLimiter keeps one token bucket per client IP. Buckets idle for
// longer than the configured ttl are evicted.
type IPRateLimiter struct {
	ips *cache.Cache
	ttl time.Duration
	r   rate.Limit
	b   int
}

func NewIPRateLimiter(r rate.Limit, b int, idleTTL time.Duration) *IPRateLimiter {
	if idleTTL <= 0 {
		idleTTL = DefaultLimiterIdleTTL
	}
	return &IPRateLimiter{
		ips: cache.New(idleTTL, 2*idleTTL),
		ttl: idleTTL,
		r:   r,
		b:   b,
	}
}

// GetLimiter returns the limiter for ip, creating it on first sight.
// Every lookup pushes the bucket's expiry back by the idle ttl.
func (i *IPRateLimiter) GetLimiter(ip string) *rate.Limiter {
	if v, found := i.ips.Get(ip); found {
		limiter := v.(*rate.Limiter)
		i.ips.Set(ip, limiter, i.ttl)
		return limiter
	}

	limiter := rate.NewLimiter(i.r, i.b)
	if err := i.ips.Add(ip, limiter, i.ttl); err != nil {
		// Lost a race with another request from the same ip.
		if v, found := i.ips.Get(ip); found {
			return v.(*rate.Limiter)
		}
	}
	return limiter
}

// Len reports how many client buckets are currently held.
func (i *IPRateLimiter) Len() int {
	return i.ips.ItemCount()
}

// RateLimiter rejects requests over the per-IP budget with 429.
// A non-positive rate disables limiting.
func RateLimiter(r rate.Limit, b int) gin.HandlerFunc {
	if r <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	limiter := NewIPRateLimiter(r, b, DefaultLimiterIdleTTL)
	return func(c *gin.Context) {
		if !limiter.GetLimiter(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}
