// middleware/rate_limiter.go
package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"

	"github.com/HSouheill/apre_backend/models"
)

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
	BlockDuration     time.Duration

	// Path prefixes that are never limited
	SkipPrefixes []string

	// Never limit connections from a loopback peer, such as the report
	// pages calling the JSON API in-process
	SkipLoopback bool

	// Limiters unused for this long are dropped by the cleanup loop
	IdleTimeout time.Duration
}

type visitor struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type RateLimiter struct {
	ips           map[string]*visitor
	blockedIPs    map[string]time.Time
	mu            sync.Mutex
	limit         rate.Limit
	burst         int
	blockDuration time.Duration
	idleTimeout   time.Duration
	skipPrefixes  []string
	skipLoopback  bool
	now           func() time.Time
	stop          chan struct{}
	stopOnce      sync.Once
}

func NewRateLimiter(cfg RateLimitConfig) *RateLimiter {
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 10
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 20
	}
	if cfg.BlockDuration <= 0 {
		cfg.BlockDuration = 5 * time.Minute
	}
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = 10 * time.Minute
	}
	limiter := &RateLimiter{
		ips:           make(map[string]*visitor),
		blockedIPs:    make(map[string]time.Time),
		limit:         rate.Limit(cfg.RequestsPerSecond),
		burst:         cfg.Burst,
		blockDuration: cfg.BlockDuration,
		idleTimeout:   cfg.IdleTimeout,
		skipPrefixes:  cfg.SkipPrefixes,
		skipLoopback:  cfg.SkipLoopback,
		now:           time.Now,
		stop:          make(chan struct{}),
	}

	go limiter.cleanup(time.Minute)

	return limiter
}

// Stop ends the background cleanup loop
func (r *RateLimiter) Stop() {
	r.stopOnce.Do(func() { close(r.stop) })
}

func (r *RateLimiter) cleanup(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-r.stop:
			return
		case <-ticker.C:
			r.sweep()
		}
	}
}

// sweep drops expired blocks and limiters idle for longer than idleTimeout
func (r *RateLimiter) sweep() {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	for ip, blockUntil := range r.blockedIPs {
		if now.After(blockUntil) {
			delete(r.blockedIPs, ip)
			delete(r.ips, ip)
		}
	}
	for ip, v := range r.ips {
		if _, blocked := r.blockedIPs[ip]; blocked {
			continue
		}
		if now.Sub(v.lastSeen) > r.idleTimeout {
			delete(r.ips, ip)
		}
	}
}

func (r *RateLimiter) RateLimit() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			path := c.Request().URL.Path
			for _, prefix := range r.skipPrefixes {
				if strings.HasPrefix(path, prefix) {
					return next(c)
				}
			}

			if r.skipLoopback && isLoopbackPeer(c.Request().RemoteAddr) {
				return next(c)
			}

			ip := c.RealIP()
			if blockUntil, ok := r.allow(ip); !ok {
				c.Response().Header().Set("Retry-After", blockUntil.UTC().Format(http.TimeFormat))
				return c.JSON(http.StatusTooManyRequests, models.Response{
					Status:  http.StatusTooManyRequests,
					Message: "Too many requests",
				})
			}
			return next(c)
		}
	}
}

// isLoopbackPeer checks the TCP peer, not forwarded headers
func isLoopbackPeer(remoteAddr string) bool {
	host, _, err := net.SplitHostPort(remoteAddr)
	if err != nil {
		host = remoteAddr
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// allow reports whether ip may proceed; a refused ip stays blocked for blockDuration
func (r *RateLimiter) allow(ip string) (time.Time, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockUntil, blocked := r.blockedIPs[ip]; blocked {
		if now.Before(blockUntil) {
			return blockUntil, false
		}
		// Block has expired - reset the limiter state
		delete(r.blockedIPs, ip)
		delete(r.ips, ip)
	}

	v, exists := r.ips[ip]
	if !exists {
		v = &visitor{limiter: rate.NewLimiter(r.limit, r.burst)}
		r.ips[ip] = v
	}
	v.lastSeen = now
	if !v.limiter.AllowN(now, 1) {
		blockUntil := now.Add(r.blockDuration)
		r.blockedIPs[ip] = blockUntil
		return blockUntil, false
	}
	return time.Time{}, true
}
