package main

import (
	"fmt"
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/book"
	"bookstore/internal/httpx"
	"bookstore/internal/mirror"
	"bookstore/internal/platform/catalogclient"
	"bookstore/internal/platform/metrics"
	"bookstore/internal/review"
	"bookstore/internal/session"
	"bookstore/internal/user"

	"github.com/rs/zerolog"
)

// app holds the wired handler tree and the parts that need shutting down.
type app struct {
	handler   http.Handler
	sessions  *session.Service
	rateLimit *httpx.RateLimitMiddleware
}

func newApp(cfg Config, log zerolog.Logger) (*app, error) {
	books, err := loadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	catalog, err := book.NewMemoryRepo(books)
	if err != nil {
		return nil, fmt.Errorf("build catalog: %w", err)
	}
	log.Info().Int("books", len(books)).Msg("catalog loaded")

	m := metrics.New()
	users := user.NewService(user.NewMemoryRepo())
	sessions := session.NewService(session.NewMemoryRepo(), cfg.SessionTTL)
	cookie := session.Cookie{Name: cfg.SessionCookieName, Path: "/customer", Secure: cfg.SessionCookieSecure}
	authService := auth.NewService(cfg.JWTSecret, cfg.TokenTTL, users, sessions, cookie)

	bookHandler := book.NewHTTPHandler(book.NewService(catalog))
	userHandler := user.NewHTTPHandler(users, log)
	authHandler := auth.NewHTTPHandler(authService, log, m)
	reviewHandler := review.NewHTTPHandler(review.NewService(catalog), log, m)
	mirrorHandler := mirror.NewHTTPHandler(catalogclient.NewClient(catalogclient.Config{
		BaseURL:    cfg.MirrorBaseURL,
		Timeout:    cfg.MirrorTimeout,
		MaxRetries: 2,
	}), log)

	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.Handle("GET /metrics", m.Handler())

	router.HandleFunc("GET /{$}", bookHandler.List)
	router.HandleFunc("GET /isbn/{isbn}", bookHandler.GetByISBN)
	router.HandleFunc("GET /author/{author}", bookHandler.GetByAuthor)
	router.HandleFunc("GET /title/{title}", bookHandler.GetByTitle)
	router.HandleFunc("GET /review/{isbn}", bookHandler.GetReviews)

	router.HandleFunc("GET /promise", mirrorHandler.All)
	router.HandleFunc("GET /promise/isbn/{isbn}", mirrorHandler.GetByISBN)
	router.HandleFunc("GET /promise/author/{author}", mirrorHandler.GetByAuthor)
	router.HandleFunc("GET /promise/title/{title}", mirrorHandler.GetByTitle)

	router.HandleFunc("POST /customer/register", userHandler.Register)
	router.HandleFunc("POST /customer/login", authHandler.Login)

	// Everything under /customer/auth/ passes the session gate first.
	protected := http.NewServeMux()
	protected.HandleFunc("PUT /customer/auth/review/{isbn}", reviewHandler.Upsert)
	protected.HandleFunc("DELETE /customer/auth/review/{isbn}", reviewHandler.Delete)
	router.Handle("/customer/auth/", authHandler.Middleware()(protected))

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware(log),
		httpx.RecoveryMiddleware(log),
		httpx.SecurityHeadersMiddleware(cfg.EnableHSTS),
		httpx.CORSMiddleware(cfg.CORSOrigins),
	}
	var rateLimit *httpx.RateLimitMiddleware
	if cfg.RateLimitRPS > 0 {
		rateLimit = httpx.NewRateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst)
		middlewares = append(middlewares, rateLimit.Middleware)
	}
	if cfg.MaxBodyBytes > 0 {
		middlewares = append(middlewares, httpx.RequestSizeLimitMiddleware(cfg.MaxBodyBytes))
	}
	handler := httpx.Chain(m.Middleware(router), middlewares...)

	return &app{handler: handler, sessions: sessions, rateLimit: rateLimit}, nil
}

func loadCatalog(path string) ([]book.Book, error) {
	if path == "" {
		return book.DefaultCatalog()
	}
	books, err := book.LoadCatalogFile(path)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", path, err)
	}
	return books, nil
}

func (a *app) Close() {
	if a.rateLimit != nil {
		a.rateLimit.Close()
	}
}
