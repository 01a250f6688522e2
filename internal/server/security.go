package server

import (
	"crypto/subtle"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DofusPlanner_Go/internal/logger"
)

// AuthMiddleware requires the X-API-Key header outside PublicPaths
func AuthMiddleware(apiKey string, trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isPublicPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			providedKey := r.Header.Get(HeaderAPIKey)
			if subtle.ConstantTimeCompare([]byte(providedKey), []byte(apiKey)) != 1 {
				ip := extractIP(r, trustedProxies)
				monitor.RecordFailedAuth(ip)

				logger.FromContext(r.Context()).Warn(LogMsgAuthFailed,
					"path", r.URL.Path,
					"has_key", providedKey != "",
					"ip", ip)

				http.Error(w, ErrMsgUnauthorized, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	for _, prefix := range PublicPaths {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// BodyLimitMiddleware caps request bodies. The stock-carrying endpoints
// (needs, shopping list) get stockMax, every other route defaultMax.
func BodyLimitMiddleware(defaultMax, stockMax int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			limit := defaultMax
			if carriesStock(r.URL.Path) {
				limit = stockMax
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}

func carriesStock(path string) bool {
	path = strings.TrimSuffix(path, "/")
	for _, suffix := range StockPathSuffixes {
		if strings.HasSuffix(path, suffix) {
			return true
		}
	}
	return false
}

// windowCounter counts events per key until cleared
type windowCounter struct {
	counts map[string]int
}

func (c *windowCounter) clear() {
	c.counts = make(map[string]int)
}

func (c *windowCounter) incr(key string) int {
	c.counts[key]++
	return c.counts[key]
}

// AbuseMonitor counts failed logins per client IP and requests per client
// IP and per planner account over DetectionWindow.
type AbuseMonitor struct {
	mu          sync.Mutex
	failedAuth  windowCounter
	byIP        windowCounter
	byAccount   windowCounter
	windowStart time.Time
	now         func() time.Time
}

func NewAbuseMonitor() *AbuseMonitor {
	m := &AbuseMonitor{now: time.Now}
	m.reset()
	return m
}

// caller holds mu
func (m *AbuseMonitor) reset() {
	m.failedAuth.clear()
	m.byIP.clear()
	m.byAccount.clear()
	m.windowStart = m.now()
}

// caller holds mu
func (m *AbuseMonitor) rollWindow() {
	if m.now().Sub(m.windowStart) > DetectionWindow {
		m.reset()
	}
}

// RecordFailedAuth counts a rejected API key
func (m *AbuseMonitor) RecordFailedAuth(ip string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	if n := m.failedAuth.incr(ip); n >= FailedAuthAlertThreshold {
		slog.Warn(SecurityAlertFailedAuth, "ip", ip, "count", n)
	}
}

// AllowIP counts a request from ip and reports whether it is under the limit
func (m *AbuseMonitor) AllowIP(ip string) bool {
	return m.allow(&m.byIP, "ip", ip, MaxRequestsPerWindow)
}

// AllowAccount counts a request on an account's plan and reports whether
// the account is under its own limit.
func (m *AbuseMonitor) AllowAccount(accountID string) bool {
	return m.allow(&m.byAccount, logger.AttrKeyAccountID, accountID, MaxAccountRequestsPerWindow)
}

func (m *AbuseMonitor) allow(counter *windowCounter, kind, key string, limit int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.rollWindow()
	n := counter.incr(key)
	if n <= limit {
		return true
	}
	if n%HighRateLogEvery == 0 {
		slog.Warn(SecurityAlertHighRate, kind, key, "count_in_window", n)
	}
	return false
}

// ClientRateLimitMiddleware rejects clients above MaxRequestsPerWindow
func ClientRateLimitMiddleware(trustedProxies []string, monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !monitor.AllowIP(extractIP(r, trustedProxies)) {
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccountRateLimitMiddleware gives every account its own request budget.
// Mount it under a route carrying the {accountID} parameter.
func AccountRateLimitMiddleware(monitor *AbuseMonitor) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			accountID := chi.URLParam(r, "accountID")
			if accountID != "" && !monitor.AllowAccount(accountID) {
				logger.FromContext(r.Context()).Warn(LogMsgAccountThrottled, logger.AttrKeyAccountID, accountID)
				http.Error(w, ErrMsgTooManyRequests, http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// extractIP returns the client address. X-Forwarded-For is only honoured
// when the direct peer is a trusted proxy; its rightmost hop is used.
func extractIP(r *http.Request, trustedProxies []string) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	for _, proxy := range trustedProxies {
		if proxy != remoteIP {
			continue
		}
		if forwarded := r.Header.Get(HeaderForwardedFor); forwarded != "" {
			hops := strings.Split(forwarded, ",")
			return strings.TrimSpace(hops[len(hops)-1])
		}
		break
	}

	return remoteIP
}

// SecurityHeadersMiddleware sets the browser hardening headers. API
// responses are never cached since plans change on every edit.
func SecurityHeadersMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			h.Set(HeaderContentType, HeaderValueNoSniff)
			h.Set(HeaderFrameOptions, HeaderValueSameOrigin)
			h.Set(HeaderXSSProtection, HeaderValueXSSBlock)
			h.Set(HeaderReferrerPolicy, HeaderValueReferrerStrictOrigin)
			if strings.HasPrefix(r.URL.Path, APIPrefix) {
				h.Set(HeaderCacheControl, HeaderValueNoStore)
			}

			next.ServeHTTP(w, r)
		})
	}
}
