package http

import (
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/techfood/usuarios/internal/httputil"
)

// clientLimiter tracks a per-IP token bucket and when it was last used.
// mu guards lastSeen, which is written by request goroutines and read by
// the cleanup loop.
type clientLimiter struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

func (cl *clientLimiter) touch(now time.Time) {
	cl.mu.Lock()
	cl.lastSeen = now
	cl.mu.Unlock()
}

func (cl *clientLimiter) idleSince(cutoff time.Time) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.lastSeen.Before(cutoff)
}

// loginRateLimiter limits unauthenticated login attempts per client IP.
// Stale entries are evicted in the background to bound memory.
type loginRateLimiter struct {
	clients     sync.Map
	requestsSec float64
	burst       int
	logger      *slog.Logger
}

func newLoginRateLimiter(requestsSec float64, burst int, logger *slog.Logger) *loginRateLimiter {
	rl := &loginRateLimiter{
		requestsSec: requestsSec,
		burst:       burst,
		logger:      logger,
	}

	go rl.cleanupLoop()

	return rl
}

func (rl *loginRateLimiter) limiterFor(ip string) *rate.Limiter {
	now := time.Now()

	if v, ok := rl.clients.Load(ip); ok {
		cl := v.(*clientLimiter)
		cl.touch(now)
		return cl.limiter
	}

	cl := &clientLimiter{
		limiter:  rate.NewLimiter(rate.Limit(rl.requestsSec), rl.burst),
		lastSeen: now,
	}
	actual, loaded := rl.clients.LoadOrStore(ip, cl)
	winner := actual.(*clientLimiter)
	if loaded {
		winner.touch(now)
	}
	return winner.limiter
}

// cleanupLoop evicts limiters that have been idle for more than ten minutes.
func (rl *loginRateLimiter) cleanupLoop() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		cutoff := time.Now().Add(-10 * time.Minute)
		rl.clients.Range(func(key, value any) bool {
			if value.(*clientLimiter).idleSince(cutoff) {
				rl.clients.Delete(key)
			}
			return true
		})
	}
}

// LoginRateLimitMiddleware returns a Gin middleware that rejects login
// attempts over the configured rate with 429 Too Many Requests.
func LoginRateLimitMiddleware(requestsSec float64, burst int, logger *slog.Logger) gin.HandlerFunc {
	rl := newLoginRateLimiter(requestsSec, burst, logger)

	return func(c *gin.Context) {
		if !rl.limiterFor(c.ClientIP()).Allow() {
			logger.Warn("login rate limit exceeded",
				slog.String("client_ip", c.ClientIP()))

			c.Header("Retry-After", "1")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, httputil.Problem{
				Type:      "https://api.techfood.com/errors/rate-limit",
				Title:     "Limite de requisições excedido",
				Status:    http.StatusTooManyRequests,
				Detail:    "Muitas tentativas de login, tente novamente em instantes",
				Timestamp: time.Now().UTC(),
			})
			return
		}

		c.Next()
	}
}
