package middleware

import (
	"math"
	"net"
	"net/http"
	"net/netip"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"
)

// idleClientTTL is how long an idle client's bucket is kept.
const idleClientTTL = 10 * time.Minute

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimitMiddleware provides per-client token bucket rate limiting
type RateLimitMiddleware struct {
	clients   map[string]*clientLimiter
	mu        sync.Mutex
	lastSweep time.Time
	now       func() time.Time
	trusted   []netip.Prefix
}

// NewRateLimitMiddleware creates a new rate limiting middleware. Forwarding
// headers are honoured only when the peer falls inside one of trustedProxies.
func NewRateLimitMiddleware(trustedProxies ...netip.Prefix) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		clients: make(map[string]*clientLimiter),
		now:     time.Now,
		trusted: trustedProxies,
	}
}

// RateLimit allows rps requests per second per client IP with bursts of up to burst
func (m *RateLimitMiddleware) RateLimit(rps float64, burst int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := m.clientIP(r)
			now := m.now()

			m.mu.Lock()
			m.sweep(now)
			c, exists := m.clients[clientIP]
			if !exists {
				c = &clientLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
				m.clients[clientIP] = c
			}
			c.lastSeen = now
			reservation := c.limiter.ReserveN(now, 1)
			delay := reservation.DelayFrom(now)
			if delay > 0 {
				reservation.CancelAt(now)
			}
			m.mu.Unlock()

			if !reservation.OK() || delay > 0 {
				retryAfter := 1
				if reservation.OK() {
					retryAfter = int(math.Ceil(delay.Seconds()))
				}
				log.WithFields(log.Fields{"client_ip": clientIP, "path": r.URL.Path}).Warn("Rate limit exceeded")
				w.Header().Set("Retry-After", strconv.Itoa(retryAfter))
				http.Error(w, "Rate limit exceeded", http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// Clients reports how many client buckets are tracked
func (m *RateLimitMiddleware) Clients() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.clients)
}

// sweep drops idle buckets at most once a minute. Callers hold m.mu.
func (m *RateLimitMiddleware) sweep(now time.Time) {
	if now.Sub(m.lastSweep) < time.Minute {
		return
	}
	m.lastSweep = now
	for ip, c := range m.clients {
		if now.Sub(c.lastSeen) > idleClientTTL {
			delete(m.clients, ip)
		}
	}
}

func (m *RateLimitMiddleware) isTrusted(ip string) bool {
	addr, err := netip.ParseAddr(ip)
	if err != nil {
		return false
	}
	addr = addr.Unmap()
	for _, p := range m.trusted {
		if p.Contains(addr) {
			return true
		}
	}
	return false
}

// clientIP keys requests on the connection peer. When the peer is a trusted
// proxy, X-Forwarded-For is walked right to left and the first untrusted hop
// wins; X-Real-IP is used only when no forwarded chain is present.
func (m *RateLimitMiddleware) clientIP(r *http.Request) string {
	peer := remoteIP(r)
	if !m.isTrusted(peer) {
		return peer
	}

	if xff := r.Header.Values("X-Forwarded-For"); len(xff) > 0 {
		hops := strings.Split(strings.Join(xff, ","), ",")
		for i := len(hops) - 1; i >= 0; i-- {
			hop := strings.TrimSpace(hops[i])
			if _, err := netip.ParseAddr(hop); err != nil {
				// a malformed hop cannot be attributed further back
				return peer
			}
			if !m.isTrusted(hop) {
				return hop
			}
		}
		return peer
	}
	if ip := strings.TrimSpace(r.Header.Get("X-Real-IP")); ip != "" {
		if _, err := netip.ParseAddr(ip); err == nil {
			return ip
		}
	}
	return peer
}

// remoteIP returns the host part of the connection's remote address.
func remoteIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
