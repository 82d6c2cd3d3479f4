package middleware

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// RateLimitConfig holds configuration for a specific rate limit
type RateLimitConfig struct {
	Name   string
	Limit  int
	Window time.Duration
	KeyFn  func(*http.Request) string
}

// RateLimit creates a rate limiting middleware backed by Redis counters.
// It is a pass-through when rate limiting is disabled or Redis is not configured,
// and fails open when Redis errors.
func (m *Middleware) RateLimit(cfg RateLimitConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !m.cfg.RateLimit.Enabled || m.rdb == nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := r.Context()
			key := fmt.Sprintf("ratelimit:%s:%s", cfg.Name, cfg.KeyFn(r))

			count, ttl, err := m.rdb.IncrWindow(ctx, key, cfg.Window)
			if err != nil {
				m.log.Error().Err(err).Msg("failed to increment rate limit counter")
				next.ServeHTTP(w, r)
				return
			}

			resetTime := time.Now().Add(ttl).Unix()

			// Set rate limit headers
			w.Header().Set("X-RateLimit-Limit", strconv.Itoa(cfg.Limit))
			w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(max(0, cfg.Limit-int(count))))
			w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(resetTime, 10))

			if int(count) > cfg.Limit {
				m.log.Warn().
					Str("key", key).
					Int64("count", count).
					Str("request_id", GetRequestID(ctx)).
					Msg("rate limit exceeded")
				w.Header().Set("Retry-After", strconv.FormatInt(int64(ttl.Seconds()), 10))
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				w.Write([]byte(`{"success":false,"error":"Too many requests. Please try again later."}`))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// IPKey returns the peer address of the connection as the rate limit key.
// Forwarding headers are ignored.
func IPKey(r *http.Request) string {
	host := r.RemoteAddr
	if i := strings.LastIndex(host, ":"); i > 0 {
		host = host[:i]
	}
	return host
}

// ForwardedIPKey keys on the first X-Forwarded-For hop, falling back to IPKey.
// Only safe behind a proxy that overwrites the header.
func ForwardedIPKey(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		if client := strings.TrimSpace(strings.Split(forwarded, ",")[0]); client != "" {
			return client
		}
	}
	return IPKey(r)
}
