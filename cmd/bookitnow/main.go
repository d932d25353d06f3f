// Copyright (c) 2025-2026 BookItNow Authors
// SPDX-License-Identifier: MIT

package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bookitnow/bookitnow-web/internal/api"
	"github.com/bookitnow/bookitnow-web/internal/config"
	"github.com/bookitnow/bookitnow-web/internal/handler"
	"github.com/bookitnow/bookitnow-web/internal/middleware"
	"github.com/bookitnow/bookitnow-web/internal/render"
	"github.com/bookitnow/bookitnow-web/internal/session"
	"github.com/bookitnow/bookitnow-web/web"
)

// Version information - injected at build time via ldflags
var (
	appVersion   = "dev"
	appGitCommit = "unknown"
	appBuildTime = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	flag.BoolVar(showVersion, "v", false, "Show version information (shorthand)")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.BoolVar(showHelp, "h", false, "Show help information (shorthand)")

	flag.Usage = func() {
		_, _ = fmt.Fprintf(os.Stderr, "BookItNow - Event Ticketing Web Client\n\n")
		_, _ = fmt.Fprintf(os.Stderr, "Usage: %s [options]\n\n", os.Args[0])
		_, _ = fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		_, _ = fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKITNOW_API_URL          Ticketing API base URL (required)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKITNOW_SESSION_SECRET   Session encryption key (required, min 32 bytes)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKITNOW_SESSION_DB_PATH  Session store path (default: ./data/sessions.db)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKITNOW_SERVER_PORT      Server port (default: 8080)\n")
		_, _ = fmt.Fprintf(os.Stderr, "  BOOKITNOW_ENV              Environment: development|production (default: development)\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		_, _ = fmt.Printf("bookitnow %s (commit: %s, built: %s)\n", appVersion, appGitCommit, appBuildTime)
		os.Exit(0)
	}

	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	// Load .env file if present (development)
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Setup logger
	logLevel := slog.LevelInfo
	switch cfg.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	// Ensure data directory exists
	dbDir := filepath.Dir(cfg.SessionDBPath)
	if err := os.MkdirAll(dbDir, 0755); err != nil {
		return fmt.Errorf("creating data directory: %w", err)
	}

	// Initialize session store
	slog.Info("initializing session store", "path", cfg.SessionDBPath)
	db, err := session.OpenStore(cfg.SessionDBPath)
	if err != nil {
		return fmt.Errorf("initializing session store: %w", err)
	}
	defer func(db *sql.DB) {
		if err := db.Close(); err != nil {
			slog.Error("error closing session store", "error", err)
		}
	}(db)

	sessions := session.New(db, cfg.IsDevelopment())
	slog.Info("session manager initialized", "secure", !cfg.IsDevelopment())

	// Ticketing API client
	apiClient := api.New(cfg.APIBaseURL)
	slog.Info("api client initialized", "base_url", cfg.APIBaseURL)

	// Template renderer
	templatesFS, err := fs.Sub(web.Templates, "templates")
	if err != nil {
		return fmt.Errorf("getting templates fs: %w", err)
	}
	renderer, err := render.New(render.Config{
		TemplatesFS: templatesFS,
		Sessions:    sessions,
		IsDev:       cfg.IsDevelopment(),
	})
	if err != nil {
		return fmt.Errorf("initializing renderer: %w", err)
	}

	// Router and middleware stack
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.GetHead)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(middleware.StripTrailingSlash)

	securityConfig := middleware.DefaultSecurityHeadersConfig(cfg.IsDevelopment())
	r.Use(middleware.SecurityHeaders(securityConfig))
	slog.Info("security headers middleware initialized",
		"hsts", !cfg.IsDevelopment(),
		"x_frame_options", "SAMEORIGIN",
	)

	r.Use(middleware.Metrics)
	r.Use(sessions.LoadAndSave)
	r.Use(middleware.LoadSession(sessions))

	// CSRF protection for form routes
	csrfConfig := middleware.DefaultCSRFConfig([]byte(cfg.SessionSecret), cfg.IsDevelopment())
	csrfMiddleware := middleware.CSRF(csrfConfig)
	slog.Info("CSRF protection initialized", "secure", !cfg.IsDevelopment())

	// Rate limiter for auth routes: 10 requests per second with burst of 20 per IP
	authRateLimiter := middleware.NewRateLimiter(10.0, 20)
	slog.Info("auth rate limiter initialized", "rate", "10 req/s", "burst", 20)

	guard := middleware.NewGuard(middleware.DefaultPolicy())

	// Initialize handlers
	homeHandler := handler.NewHomeHandler(apiClient, renderer)
	authHandler := handler.NewAuthHandler(apiClient, renderer, sessions)
	dashboardHandler := handler.NewDashboardHandler(apiClient, renderer, sessions)
	ticketsHandler := handler.NewTicketsHandler(apiClient, renderer, sessions)
	organizerHandler := handler.NewOrganizerHandler(apiClient, renderer, sessions)
	adminHandler := handler.NewAdminHandler(apiClient, renderer, sessions)
	healthHandler := handler.NewHealthHandler()

	// Health and metrics
	r.Get("/health", healthHandler.Health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	// Static files
	staticFS, err := fs.Sub(web.Static, "static")
	if err != nil {
		return fmt.Errorf("getting static fs: %w", err)
	}
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))

	// Public routes
	r.Get(handler.RouteRoot, homeHandler.Home)
	r.Get(handler.RouteEvents, homeHandler.Events)

	// Auth routes (public, with CSRF and rate limiting)
	r.Group(func(r chi.Router) {
		r.Use(csrfMiddleware)
		r.Get(handler.RouteLogin, authHandler.LoginForm)
		r.With(authRateLimiter.Middleware()).Post(handler.RouteLogin, authHandler.Login)
		r.Get(handler.RouteRegister, authHandler.RegisterForm)
		r.With(authRateLimiter.Middleware()).Post(handler.RouteRegister, authHandler.Register)
		r.Post(handler.RouteLogout, authHandler.Logout)
	})

	// Attendee dashboard
	r.Group(func(r chi.Router) {
		r.Use(guard.Protect(handler.RouteDashboard))
		r.Get(handler.RouteDashboard, dashboardHandler.Dashboard)
	})

	// Tickets (attendees and organizers)
	r.Group(func(r chi.Router) {
		r.Use(guard.Protect(handler.RouteTickets))
		r.Get(handler.RouteTickets, ticketsHandler.Tickets)
		r.Get(handler.RouteTickets+"/{ticketID}/qr.png", ticketsHandler.TicketQR)
	})

	// Organizer routes
	r.Route(handler.RouteOrganizer, func(r chi.Router) {
		r.Use(guard.Protect(handler.RouteOrganizer))
		r.Use(csrfMiddleware)
		r.Get("/", organizerHandler.Home)
		r.Get("/create", organizerHandler.CreateForm)
		r.Post("/create", organizerHandler.Create)
	})

	// Admin routes
	r.Route(handler.RouteAdmin, func(r chi.Router) {
		r.Use(guard.Protect(handler.RouteAdmin))
		r.Use(csrfMiddleware)
		r.Get("/", adminHandler.Dashboard)
		r.Post("/events/{id}/status", adminHandler.UpdateEventStatus)
	})

	// Create server with appropriate timeouts
	srv := &http.Server{
		Addr:              cfg.ServerAddr(),
		Handler:           r,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second, // Longer to allow for image uploads
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	go func() {
		slog.Info("starting server", "addr", cfg.ServerAddr(), "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	slog.Info("server stopped")
	return nil
}
