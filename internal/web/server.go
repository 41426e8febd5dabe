// ABOUTME: HTTP server for the status page, JSON API and icon endpoint
// ABOUTME: Hardened timeouts and graceful shutdown under an errgroup

package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mauromedda/echostatus/internal/i18n"
	"github.com/mauromedda/echostatus/internal/log"
	"github.com/mauromedda/echostatus/internal/status"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

const (
	langCookie      = "lang"
	shutdownTimeout = 5 * time.Second
	iconMaxAge      = 300
)

// StatusLookup resolves an address to a normalized server status.
type StatusLookup interface {
	Lookup(ctx context.Context, address string) (*status.Server, error)
}

// Options configures the page.
type Options struct {
	Examples    []string
	Language    i18n.Lang
	PlayerLimit int
	Location    *time.Location
}

// Server serves the web UI.
type Server struct {
	lookup StatusLookup
	opts   atomic.Pointer[Options]
	page   *template.Template
}

// New parses the embedded templates and returns a server backed by lookup.
func New(lookup StatusLookup, opts Options) (*Server, error) {
	page, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}
	s := &Server{lookup: lookup, page: page}
	s.Reload(opts)
	return s, nil
}

// Reload swaps the page options; requests already in flight keep the old ones.
func (s *Server) Reload(opts Options) {
	if opts.Language == "" {
		opts.Language = i18n.Default
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	s.opts.Store(&opts)
}

func (s *Server) options() *Options {
	return s.opts.Load()
}

// Handler returns the routed handler.
func (s *Server) Handler() http.Handler {
	static, _ := fs.Sub(staticFS, "static")

	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET /lang", s.handleLang)
	mux.HandleFunc("GET /api/status/{address}", s.handleAPI)
	mux.HandleFunc("GET /icon/{address}", s.handleIcon)
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))
	return withSecurityHeaders(withLogging(mux))
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := newHTTPServer(s.Handler(), addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("web: listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen %s: %w", addr, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		log.Info("web: shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// newHTTPServer applies read/write timeouts against slowloris clients.
func newHTTPServer(handler http.Handler, addr string) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20, // 1MB
	}
}

type statusRecorder struct {
	http.ResponseWriter
	code int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.code = code
	r.ResponseWriter.WriteHeader(code)
}

func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, code: http.StatusOK}
		next.ServeHTTP(rec, r)
		log.Debug("web: %s %s %d %s", r.Method, r.URL.RequestURI(), rec.code, time.Since(start).Round(time.Millisecond))
	})
}

func withSecurityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "same-origin")
		next.ServeHTTP(w, r)
	})
}
