package middleware

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// idleTTL is how long a client may stay silent before its limiter is dropped.
const idleTTL = 10 * time.Minute

// RateLimiter implements per-IP token bucket rate limiting.
type RateLimiter struct {
	clients sync.Map // map[string]*client
	stop    chan struct{}
	once    sync.Once
}

type client struct {
	limiter *rate.Limiter

	mu       sync.Mutex
	lastSeen time.Time
}

// NewRateLimiter creates a rate limiter with background cleanup.
// Call Stop() on shutdown.
func NewRateLimiter(cleanupInterval time.Duration) *RateLimiter {
	rl := &RateLimiter{stop: make(chan struct{})}
	go rl.cleanup(cleanupInterval)
	return rl
}

// Stop terminates the background cleanup goroutine. It is safe to call twice.
func (rl *RateLimiter) Stop() {
	rl.once.Do(func() { close(rl.stop) })
}

// Limit returns middleware that allows perMinute requests per client IP with
// bursts of up to burst requests. A non-positive burst defaults to perMinute.
func (rl *RateLimiter) Limit(perMinute, burst int) Middleware {
	if burst <= 0 {
		burst = perMinute
	}
	every := rate.Limit(float64(perMinute) / 60.0)
	retryAfter := strconv.Itoa(int(math.Ceil(60.0 / float64(perMinute))))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c := rl.client(clientIP(r), every, burst)
			if !c.limiter.Allow() {
				w.Header().Set("Retry-After", retryAfter)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"error":"rate limit exceeded"}` + "\n"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (rl *RateLimiter) client(key string, every rate.Limit, burst int) *client {
	val, _ := rl.clients.LoadOrStore(key, &client{
		limiter:  rate.NewLimiter(every, burst),
		lastSeen: time.Now(),
	})
	c := val.(*client)
	c.mu.Lock()
	c.lastSeen = time.Now()
	c.mu.Unlock()
	return c
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func (rl *RateLimiter) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-rl.stop:
			return
		case <-ticker.C:
			now := time.Now()
			rl.clients.Range(func(key, value any) bool {
				c := value.(*client)
				c.mu.Lock()
				idle := now.Sub(c.lastSeen)
				c.mu.Unlock()
				if idle > idleTTL {
					rl.clients.Delete(key)
				}
				return true
			})
		}
	}
}
