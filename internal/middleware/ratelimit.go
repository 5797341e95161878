package middleware

import (
	"net/http"
	"sync"
	"time"

	"invoice-analytics-backend/internal/config"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a fixed-window request counter per client address.
type RateLimiter struct {
	mu      sync.Mutex
	clients map[string]*window

	limit       int
	windowSize  time.Duration
	stopCleanup chan struct{}
}

type window struct {
	start time.Time
	count int
}

func NewRateLimiter(cfg config.RateLimitConfig) *RateLimiter {
	limit := cfg.RequestsPerWindow
	if limit <= 0 {
		limit = 100
	}
	size := cfg.Window
	if size <= 0 {
		size = time.Minute
	}

	rl := &RateLimiter{
		clients:     make(map[string]*window),
		limit:       limit,
		windowSize:  size,
		stopCleanup: make(chan struct{}),
	}
	go rl.startCleanup()
	return rl
}

// Allow counts a request from the given client and reports whether it fits
// in the current window.
func (rl *RateLimiter) Allow(clientIP string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	w, exists := rl.clients[clientIP]
	if !exists || now.Sub(w.start) >= rl.windowSize {
		rl.clients[clientIP] = &window{start: now, count: 1}
		return true
	}

	w.count++
	return w.count <= rl.limit
}

// Middleware rejects over-limit requests with 429.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !rl.Allow(c.ClientIP()) {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}
		c.Next()
	}
}

// Stop terminates the cleanup goroutine.
func (rl *RateLimiter) Stop() {
	close(rl.stopCleanup)
}

func (rl *RateLimiter) startCleanup() {
	ticker := time.NewTicker(rl.windowSize)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			rl.cleanupStaleEntries()
		case <-rl.stopCleanup:
			return
		}
	}
}

// cleanupStaleEntries drops clients whose window expired two windows ago.
func (rl *RateLimiter) cleanupStaleEntries() {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	cutoff := time.Now().Add(-2 * rl.windowSize)
	for ip, w := range rl.clients {
		if w.start.Before(cutoff) {
			delete(rl.clients, ip)
		}
	}
}
