// Package http exposes the dashboard as a JSON API.
package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"tally/internal/backend"
	"tally/internal/cache"
	"tally/internal/i18n"
	"tally/internal/middleware/ratelimit"
	"tally/internal/middleware/security"
	"tally/internal/middleware/trace"
	"tally/internal/report"
	"tally/internal/services"
)

// Options configures the server beyond its listen address.
type Options struct {
	DefaultLanguage   i18n.Language
	SummaryCacheTTL   time.Duration
	RequestsPerMinute int

	// Now supplies the reference instant for "upcoming" and "today"
	// computations. Defaults to time.Now.
	Now func() time.Time
}

type Server struct {
	http.Server

	store       backend.Store
	svc         *services.LedgerService
	defaultLang i18n.Language
	now         func() time.Time

	rateLimiter *ratelimit.Limiter

	// Rendered GET payloads, keyed by route, language and store version.
	// A write bumps the version, so stale entries simply stop being hit
	// and age out.
	respCache *cache.LRUCache[[]byte]

	// Computed aggregates shared across languages, same version-keyed scheme.
	summaries *report.Memoizer

	stopCacheCleanup chan struct{}
	shutdownOnce     sync.Once
}

// NewServer configures routes and middleware, returning a ready-to-run server.
func NewServer(addr string, store backend.Store, svc *services.LedgerService, opts Options) *Server {
	if opts.DefaultLanguage == "" {
		opts.DefaultLanguage = i18n.Vietnamese
	}
	if opts.SummaryCacheTTL <= 0 {
		opts.SummaryCacheTTL = 30 * time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	mux := http.NewServeMux()

	s := &Server{
		Server: http.Server{
			Addr:    addr,
			Handler: mux,
		},
		store:       store,
		svc:         svc,
		defaultLang: opts.DefaultLanguage,
		now:         opts.Now,
		rateLimiter: ratelimit.NewLimiter(ratelimit.Config{
			RequestsPerMinute: opts.RequestsPerMinute,
		}),
		respCache:        cache.NewLRUCache[[]byte](200, opts.SummaryCacheTTL),
		summaries:        report.NewMemoizer(opts.SummaryCacheTTL),
		stopCacheCleanup: make(chan struct{}),
	}

	go s.startCacheCleanup()

	mux.HandleFunc("/healthz", handleHealth)
	mux.HandleFunc("/readyz", handleReady)

	mux.HandleFunc("/api/dashboard", s.guard(http.MethodGet, s.handleDashboard))
	mux.HandleFunc("/api/dashboard/overview", s.guard(http.MethodGet, s.handleOverview))
	mux.HandleFunc("/api/dashboard/upcoming", s.guard(http.MethodGet, s.handleUpcoming))

	mux.HandleFunc("/api/revenues", s.collection(s.handleListRevenues, s.handleCreateRevenue))
	mux.HandleFunc("/api/expenses", s.collection(s.handleListExpenses, s.handleCreateExpense))
	mux.HandleFunc("/api/appointments", s.collection(s.handleListAppointments, s.handleCreateAppointment))
	mux.HandleFunc("/api/appointments/day", s.guard(http.MethodGet, s.handleAppointmentsForDay))

	mux.HandleFunc("/api/sales/categories", s.guard(http.MethodGet, s.handleSalesCategories))
	mux.HandleFunc("/api/sales/clients", s.guard(http.MethodGet, s.handleTopClients))
	mux.HandleFunc("/api/sales/transactions", s.guard(http.MethodGet, s.handleTransactions))

	mux.HandleFunc("/api/languages", s.guard(http.MethodGet, s.handleLanguages))
	mux.HandleFunc("/api/messages", s.guard(http.MethodGet, s.handleMessages))

	// Middleware chain: tracing outermost, then rate limiting on writes,
	// then security headers.
	traced := trace.NewMiddleware(clientIP)
	limited := s.rateLimiter.Middleware(clientIP, nil)

	s.Handler = traced.Middleware(limitWrites(limited, security.Headers(mux)))

	return s
}

// limitWrites applies the rate limiter to mutating requests only.
func limitWrites(limiter func(http.Handler) http.Handler, next http.Handler) http.Handler {
	limited := limiter(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
			limited.ServeHTTP(w, r)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// guard rejects requests whose method doesn't match.
func (s *Server) guard(method string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != method {
			w.Header().Set("Allow", method)
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		next(w, r)
	}
}

// collection routes GET to list and POST to create.
func (s *Server) collection(list, create http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			list(w, r)
		case http.MethodPost:
			create(w, r)
		default:
			w.Header().Set("Allow", "GET, POST")
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func (s *Server) startCacheCleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.respCache.CleanExpired()
		case <-s.stopCacheCleanup:
			return
		}
	}
}

// Shutdown gracefully shuts down the server and cleanup routines.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		close(s.stopCacheCleanup)
		s.rateLimiter.Stop()
		s.summaries.Flush()
		shutdownErr = s.Server.Shutdown(ctx)
	})

	return shutdownErr
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func handleReady(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}
