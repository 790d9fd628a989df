package api

import (
	"net"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

const clientIdleTTL = 15 * time.Minute

// clientLimiter keeps one token bucket per client key.
type clientLimiter struct {
	mu      sync.Mutex
	entries map[string]*clientEntry
	rps     rate.Limit
	burst   int
	now     func() time.Time
}

type clientEntry struct {
	lim      *rate.Limiter
	lastSeen time.Time
}

func newClientLimiter(rps float64, burst int) *clientLimiter {
	return &clientLimiter{
		entries: make(map[string]*clientEntry),
		rps:     rate.Limit(rps),
		burst:   burst,
		now:     time.Now,
	}
}

// allow reports whether the client may proceed and, if not, how long it should wait.
func (c *clientLimiter) allow(key string) (bool, time.Duration) {
	now := c.now()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.evictIdle(now)

	ent, ok := c.entries[key]
	if !ok {
		ent = &clientEntry{lim: rate.NewLimiter(c.rps, c.burst)}
		c.entries[key] = ent
	}
	ent.lastSeen = now

	reservation := ent.lim.ReserveN(now, 1)
	if !reservation.OK() {
		return false, time.Second
	}
	if delay := reservation.DelayFrom(now); delay > 0 {
		reservation.CancelAt(now)
		return false, delay
	}

	return true, 0
}

func (c *clientLimiter) evictIdle(now time.Time) {
	cutoff := now.Add(-clientIdleTTL)
	for key, ent := range c.entries {
		if ent.lastSeen.Before(cutoff) {
			delete(c.entries, key)
		}
	}
}

// clientKey identifies the caller by the first X-Forwarded-For hop, falling back to RemoteAddr.
func clientKey(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if ip := strings.TrimSpace(strings.Split(xff, ",")[0]); ip != "" {
			return ip
		}
	}

	host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}

	return "unknown"
}

// limitClients rejects clients that exceed their request budget with 429 and Retry-After.
func (h *Handler) limitClients(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.clients == nil {
			next.ServeHTTP(w, r)
			return
		}

		ok, wait := h.clients.allow(clientKey(r))
		if !ok {
			seconds := int(wait.Round(time.Second).Seconds())
			if seconds < 1 {
				seconds = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(seconds))
			h.writeJSON(w, r, http.StatusTooManyRequests, envelope{
				"success": false,
				"message": "too many requests",
			})
			return
		}

		next.ServeHTTP(w, r)
	})
}
