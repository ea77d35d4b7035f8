package http

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	sessioncontext "web3admin/frontend/shared/context"
	"web3admin/infrastructure/apiclient"
	"web3admin/infrastructure/audit"
	"web3admin/infrastructure/authsession"
	"web3admin/infrastructure/flash"
	"web3admin/infrastructure/rbac"
	"web3admin/infrastructure/session"
)

//go:embed assets/*
var assets embed.FS

var ShutdownTimeout = 2 * time.Second

// Dependencies are the services the routes are wired to.
type Dependencies struct {
	API          *apiclient.Client
	Session      *authsession.Manager
	Browsers     *session.Store
	Rbac         *rbac.Rbac
	Audit        *audit.Service
	Flash        *flash.Store
	LoginLimiter *rate.Limiter
	CookieSecure bool
}

// Server bundles dependencies and route wiring.
type Server struct {
	Addr   string
	ln     net.Listener
	server *http.Server
	router *chi.Mux

	Dependencies
	unsubscribe func()
}

// NewServer creates a new http server.
func NewServer(addr string, deps Dependencies) *Server {
	s := &Server{
		Addr:         addr,
		router:       chi.NewRouter(),
		Dependencies: deps,
		server: &http.Server{
			MaxHeaderBytes:    1 << 20,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}

	s.unsubscribe = s.Session.Subscribe(logTransition)

	// Secure headers first.
	s.router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Referrer-Policy", "strict-origin-when-cross-origin")
			w.Header().Set("X-Content-Type-Options", "nosniff")
			w.Header().Set("X-Frame-Options", "DENY")
			w.Header().Set("Cache-Control", "no-store")
			next.ServeHTTP(w, r)
		})
	})

	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.Compress(5))
	s.router.Use(s.CSRFMiddleware)

	s.router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		if snap := s.Session.Snapshot(); snap.IsAuthenticated() && s.Browsers.Bound(r, snap.ID) {
			http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, "/login", http.StatusSeeOther)
	})

	s.router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Serve assets from embedded FS.
	var assetsFS fs.FS = assets
	if sub, err := fs.Sub(assets, "assets"); err == nil {
		assetsFS = sub
	} else {
		slog.Error("assets subfs init failed; serving fallback fs", slog.Any("err", err))
	}
	s.router.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.FS(assetsFS))))

	s.RegisterLoginRoutes()

	s.router.Route("/dashboard", func(r chi.Router) {
		r.Use(s.AuthenticateMiddleware)
		s.RegisterDashboardRoutes(r)
		s.RegisterEntityRoutes(r)
	})

	s.server.Handler = s.router
	return s
}

// AuthenticateMiddleware gates console pages on the auth session and applies
// RBAC checks. The browser must have signed in during the current period.
func (s *Server) AuthenticateMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snap := s.Session.Snapshot()
		if snap.IsLoading() {
			w.Header().Set("Retry-After", "1")
			http.Error(w, "session is still loading", http.StatusServiceUnavailable)
			return
		}
		if !snap.IsAuthenticated() || snap.Admin == nil || !s.Browsers.Bound(r, snap.ID) {
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		role := snap.Admin.Role
		if !s.Rbac.Allowed(role, r.URL.Path, r.Method) {
			slog.Warn("rbac denied", slog.String("role", role), slog.String("method", r.Method), slog.String("path", r.URL.Path))
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}

		viewer := sessioncontext.Viewer{Session: snap, Codes: s.Rbac.Codes(role)}
		ctx := sessioncontext.NewContextWithViewer(r.Context(), viewer)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func logTransition(snap authsession.Snapshot) {
	attrs := []any{slog.String("state", snap.State.String())}
	if snap.Admin != nil {
		attrs = append(attrs, slog.String("admin", snap.Admin.Email), slog.String("role", snap.Admin.Role))
	}
	slog.Info("auth session changed", attrs...)
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	var err error
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	go s.server.Serve(s.ln)
	return nil
}

// Stop gracefully shuts down the server.
func (s *Server) Stop() error {
	if s.ln == nil {
		return fmt.Errorf("HTTP server has not been started or is already stopped")
	}
	if s.unsubscribe != nil {
		s.unsubscribe()
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %v", err)
	}
	s.ln = nil
	return nil
}
