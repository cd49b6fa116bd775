package webhook

import (
	"crypto/subtle"
	"fmt"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

const (
	maxRateLimitSources = 1000
	rateLimiterTTL      = 5 * time.Minute
	maxDeliveries       = 10000
	defaultDedupTTL     = 10 * time.Minute
)

// SecurityValidator validates webhook requests
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter

	mu         sync.Mutex
	deliveries *expirable.LRU[string, struct{}]
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	ttl := config.DedupTTL
	if ttl <= 0 {
		ttl = defaultDedupTTL
	}
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
		deliveries:  expirable.NewLRU[string, struct{}](maxDeliveries, nil, ttl),
	}
}

// ValidateGitLabToken compares the X-Gitlab-Token header with the shared
// secret. No secret configured means no check.
func (v *SecurityValidator) ValidateGitLabToken(token string) error {
	if v.config.Secret == "" {
		return nil
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(v.config.Secret)) != 1 {
		return ErrInvalidToken
	}
	return nil
}

// ValidateIPAddress checks if request IP is whitelisted
func (v *SecurityValidator) ValidateIPAddress(r *http.Request) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil // No IP restriction
	}

	ip := extractIP(r)
	parsed := net.ParseIP(ip)

	for _, allowedIP := range v.config.AllowedIPs {
		if ip == allowedIP {
			return nil
		}

		// CIDR range
		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if parsed != nil && ipNet.Contains(parsed) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w: %s", ErrIPNotAllowed, ip)
}

// CheckRateLimit enforces rate limiting per source
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// SeenDelivery records id and reports whether it was already recorded within
// the dedup window. Empty ids are never deduplicated. A delivery that is not
// fully accepted must be handed back with ReleaseDelivery so a retry of the
// same id is processed.
func (v *SecurityValidator) SeenDelivery(id string) bool {
	if id == "" {
		return false
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.deliveries.Contains(id) {
		return true
	}
	v.deliveries.Add(id, struct{}{})
	return false
}

// ReleaseDelivery forgets id.
func (v *SecurityValidator) ReleaseDelivery(id string) {
	if id == "" {
		return
	}
	v.mu.Lock()
	defer v.mu.Unlock()
	v.deliveries.Remove(id)
}

// extractIP extracts client IP from request
func extractIP(r *http.Request) string {
	// Proxy or load balancer
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		ips := strings.Split(xff, ",")
		return strings.TrimSpace(ips[0])
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}

// rateLimiter keeps one token bucket per source, evicted when idle
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
	mu       sync.Mutex
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		return nil
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](maxRateLimitSources, nil, rateLimiterTTL),
		rate:     rate.Limit(float64(requestsPerMin) / 60.0), // per second
		burst:    burst,
	}
}

// Allow is a no-op on a nil limiter.
func (rl *rateLimiter) Allow(key string) error {
	if rl == nil {
		return nil
	}

	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("%w for %s", ErrRateLimited, key)
	}
	return nil
}
