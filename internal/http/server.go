// Package http serves the planning API: budget resolution, debt
// simulation, the standalone calculators and the advice endpoint.
package http

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"geldplan/internal/advisor"
	"geldplan/internal/cache"
	applog "geldplan/internal/log"
	"geldplan/internal/services"
)

type Server struct {
	http.Server

	datasets *services.DatasetService
	planner  *services.PlannerService
	adv      advisor.Advisor

	rateLimiter *rateLimiter
	metrics     *securityMetrics
	structured  *applog.StructuredLogger

	// Advice responses are cached on the rendered context plus question.
	adviceCache  *cache.LRUCache[string]
	cacheManager *cache.Manager

	shutdownOnce sync.Once
}

// Options carries the tunables NewServer does not default.
type Options struct {
	AdviceCacheSize int
	AdviceCacheTTL  time.Duration
}

// NewServer configures routes and middleware, returning a ready-to-run
// http.Server. adv may be nil; the advice endpoint then reports 503.
func NewServer(addr string, datasets *services.DatasetService, planner *services.PlannerService, adv advisor.Advisor, opts Options) *Server {
	if opts.AdviceCacheSize <= 0 {
		opts.AdviceCacheSize = 128
	}
	if opts.AdviceCacheTTL <= 0 {
		opts.AdviceCacheTTL = 10 * time.Minute
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		datasets:     datasets,
		planner:      planner,
		adv:          adv,
		rateLimiter:  newRateLimiter(),
		metrics:      &securityMetrics{},
		structured:   applog.NewStructuredLogger(applog.New(applog.DefaultConfig())),
		adviceCache:  cache.NewLRUCache[string](opts.AdviceCacheSize, opts.AdviceCacheTTL),
		cacheManager: cache.NewManager(),
	}

	s.cacheManager.Register(s.adviceCache)
	s.cacheManager.StartCleanup(10 * time.Minute)

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/outlook", s.withAPIMiddleware(s.handleOutlook))
	mux.HandleFunc("/api/budget/resolve", s.withAPIMiddleware(s.handleBudgetResolve))
	mux.HandleFunc("/api/budget/commit", s.withAPIMiddleware(s.handleBudgetCommit))
	mux.HandleFunc("/api/budget/template", s.withAPIMiddleware(s.handleBudgetTemplate))
	mux.HandleFunc("/api/budget/reset", s.withAPIMiddleware(s.handleBudgetReset))
	mux.HandleFunc("/api/budget/totals", s.withAPIMiddleware(s.handleBudgetTotals))

	mux.HandleFunc("/api/debts", s.withAPIMiddleware(s.handleDebts))
	mux.HandleFunc("/api/simulate", s.withAPIMiddleware(s.handleSimulate))
	mux.HandleFunc("/api/settlement", s.withAPIMiddleware(s.handleSettlement))

	mux.HandleFunc("/api/annuity/payment", s.withAPIMiddleware(s.handleAnnuityPayment))
	mux.HandleFunc("/api/annuity/extra", s.withAPIMiddleware(s.handleAnnuityExtra))

	mux.HandleFunc("/api/calc/zzp", s.withAPIMiddleware(s.handleCalcZZP))
	mux.HandleFunc("/api/calc/studentloan", s.withAPIMiddleware(s.handleCalcStudentLoan))
	mux.HandleFunc("/api/calc/growth", s.withAPIMiddleware(s.handleCalcGrowth))
	mux.HandleFunc("/api/calc/compare", s.withAPIMiddleware(s.handleCalcCompare))
	mux.HandleFunc("/api/calc/pension", s.withAPIMiddleware(s.handleCalcPension))
	mux.HandleFunc("/api/calc/split", s.withAPIMiddleware(s.handleCalcSplit))
	mux.HandleFunc("/api/calc/holiday", s.withAPIMiddleware(s.handleCalcHoliday))
	mux.HandleFunc("/api/calc/buffer", s.withAPIMiddleware(s.handleCalcBuffer))

	mux.HandleFunc("/api/advice", s.withAPIMiddleware(s.handleAdvice))

	return s
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		s.cacheManager.Stop()
		if s.rateLimiter != nil {
			s.rateLimiter.stop()
		}
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

// withAPIMiddleware adds security headers, rate limiting on writes, and
// request logging to API handlers.
func (s *Server) withAPIMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		clientIP := extractClientIP(r)

		requestID := generateRequestID()
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		r = r.WithContext(ctx)

		s.structured.LogHTTPStart(ctx, r, clientIP, requestID)

		if detectSuspiciousRequest(r, s.metrics) {
			slog.WarnContext(ctx, "Suspicious request blocked", "client_ip", clientIP, "url", r.URL.Path)
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}

		// Rate limit mutating requests only.
		if r.Method != http.MethodGet && !s.rateLimiter.allow(clientIP, s.metrics) {
			slog.WarnContext(ctx, "Rate limit exceeded", "client_ip", clientIP, "method", r.Method, "url", r.URL.Path)
			w.Header().Set("Retry-After", "60")
			writeError(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
			return
		}

		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
		w.Header().Set("Content-Security-Policy", "default-src 'none'")

		rw := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}
		next(rw, r)

		s.structured.LogHTTPEnd(ctx, r, rw.statusCode, time.Since(start).Milliseconds(), clientIP, requestID)
	}
}

type contextKey string

const requestIDKey contextKey = "request_id"

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// generateRequestID creates a unique request ID for tracing
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to timestamp if random fails
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
