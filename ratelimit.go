package main

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// staleAfter is how long an idle client keeps its bucket.
const staleAfter = 5 * time.Minute

// rateLimiter is a per-client token bucket: rate tokens, refilled every interval.
type rateLimiter struct {
	mu       sync.Mutex
	visitors map[string]*bucket
	rate     int
	interval time.Duration
	done     chan struct{}
}

type bucket struct {
	tokens   int
	lastSeen time.Time
}

func newRateLimiter(rate int, interval time.Duration) *rateLimiter {
	rl := &rateLimiter{
		visitors: make(map[string]*bucket),
		rate:     rate,
		interval: interval,
		done:     make(chan struct{}),
	}
	go rl.sweep()
	return rl
}

// sweep drops stale buckets every minute until stop is called.
func (rl *rateLimiter) sweep() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-rl.done:
			return
		case <-ticker.C:
			rl.mu.Lock()
			for key, b := range rl.visitors {
				if time.Since(b.lastSeen) > staleAfter {
					delete(rl.visitors, key)
				}
			}
			rl.mu.Unlock()
		}
	}
}

func (rl *rateLimiter) stop() {
	close(rl.done)
}

func (rl *rateLimiter) allow(key string) bool {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	b, ok := rl.visitors[key]
	if !ok {
		rl.visitors[key] = &bucket{tokens: rl.rate - 1, lastSeen: time.Now()}
		return true
	}

	if refill := int(time.Since(b.lastSeen) / rl.interval); refill > 0 {
		b.tokens = min(b.tokens+refill*rl.rate, rl.rate)
		b.lastSeen = time.Now()
	}

	if b.tokens <= 0 {
		return false
	}
	b.tokens--
	return true
}

// allowRequest rate limits by the client host, ignoring the source port.
func (rl *rateLimiter) allowRequest(r *http.Request) bool {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	return rl.allow(host)
}
