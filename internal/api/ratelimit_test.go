package api

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClientKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		remoteAddr string
		forwarded  string
		want       string
	}{
		{name: "forwarded first hop", remoteAddr: "10.0.0.1:5000", forwarded: " 203.0.113.7 , 10.0.0.2", want: "203.0.113.7"},
		{name: "remote host", remoteAddr: "192.0.2.1:5000", want: "192.0.2.1"},
		{name: "remote without port", remoteAddr: "192.0.2.1", want: "192.0.2.1"},
		{name: "blank forwarded falls back", remoteAddr: "192.0.2.1:5000", forwarded: " ,x", want: "192.0.2.1"},
		{name: "nothing known", want: "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			req := httptest.NewRequest("GET", "/", nil)
			req.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				req.Header.Set("X-Forwarded-For", tt.forwarded)
			}

			assert.Equal(t, tt.want, clientKey(req))
		})
	}
}

func TestClientLimiterAllow(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := newClientLimiter(2, 2)
	limiter.now = func() time.Time { return now }

	for range 2 {
		ok, _ := limiter.allow("a")
		assert.True(t, ok)
	}

	ok, wait := limiter.allow("a")
	assert.False(t, ok)
	assert.Equal(t, 500*time.Millisecond, wait)

	ok, _ = limiter.allow("b")
	assert.True(t, ok, "clients are limited independently")

	now = now.Add(500 * time.Millisecond)
	ok, _ = limiter.allow("a")
	assert.True(t, ok, "a rejected request does not consume a token")
}

func TestClientLimiterEvictsIdle(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 5, 1, 9, 0, 0, 0, time.UTC)
	limiter := newClientLimiter(1, 1)
	limiter.now = func() time.Time { return now }

	limiter.allow("a")
	now = now.Add(clientIdleTTL + time.Second)
	limiter.allow("b")

	assert.NotContains(t, limiter.entries, "a")
	assert.Contains(t, limiter.entries, "b")
}
