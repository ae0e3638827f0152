package main

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

type Config struct {
	Addr                string
	JWTSecret           string
	TokenTTL            time.Duration
	SessionTTL          time.Duration
	SessionCookieName   string
	SessionCookieSecure bool
	CatalogFile         string
	LogLevel            string
	LogFormat           string
	CORSOrigins         []string
	RateLimitRPS        float64
	RateLimitBurst      int
	MaxBodyBytes        int64
	MirrorBaseURL       string
	MirrorTimeout       time.Duration
	EnableHSTS          bool
}

func loadEnvFiles() {
	// Do not override environment provided by the runtime (e.g. Docker).
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")
}

func flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "addr", Value: ":5000", EnvVars: []string{"APP_ADDR"}, Usage: "listen address"},
		&cli.StringFlag{Name: "jwt-secret", EnvVars: []string{"JWT_SECRET"}, Usage: "HMAC secret for access tokens"},
		&cli.DurationFlag{Name: "token-ttl", Value: time.Hour, EnvVars: []string{"TOKEN_TTL"}},
		&cli.DurationFlag{Name: "session-ttl", Value: 24 * time.Hour, EnvVars: []string{"SESSION_TTL"}, Usage: "idle lifetime of a session, 0 keeps sessions until exit"},
		&cli.StringFlag{Name: "session-cookie-name", Value: "bookstore.sid", EnvVars: []string{"SESSION_COOKIE_NAME"}},
		&cli.BoolFlag{Name: "session-cookie-secure", EnvVars: []string{"SESSION_COOKIE_SECURE"}},
		&cli.StringFlag{Name: "catalog-file", EnvVars: []string{"CATALOG_FILE"}, Usage: "YAML catalog, the built-in catalog is used when empty"},
		&cli.StringFlag{Name: "log-level", Value: "info", EnvVars: []string{"LOG_LEVEL"}},
		&cli.StringFlag{Name: "log-format", Value: "json", EnvVars: []string{"LOG_FORMAT"}, Usage: "json or console"},
		&cli.StringFlag{Name: "cors-origins", Value: "http://localhost:3000", EnvVars: []string{"CORS_ORIGINS"}, Usage: "comma separated"},
		&cli.Float64Flag{Name: "rate-limit-rps", Value: 10, EnvVars: []string{"RATE_LIMIT_RPS"}},
		&cli.IntFlag{Name: "rate-limit-burst", Value: 20, EnvVars: []string{"RATE_LIMIT_BURST"}},
		&cli.Int64Flag{Name: "max-body-bytes", Value: 1 << 20, EnvVars: []string{"MAX_BODY_BYTES"}},
		&cli.StringFlag{Name: "mirror-base-url", EnvVars: []string{"MIRROR_BASE_URL"}, Usage: "base URL the /promise endpoints call, defaults to this server"},
		&cli.DurationFlag{Name: "mirror-timeout", Value: 5 * time.Second, EnvVars: []string{"MIRROR_TIMEOUT"}},
		&cli.BoolFlag{Name: "enable-hsts", EnvVars: []string{"ENABLE_HSTS"}},
	}
}

func configFromCLI(c *cli.Context) (Config, error) {
	cfg := Config{
		Addr:                c.String("addr"),
		JWTSecret:           c.String("jwt-secret"),
		TokenTTL:            c.Duration("token-ttl"),
		SessionTTL:          c.Duration("session-ttl"),
		SessionCookieName:   c.String("session-cookie-name"),
		SessionCookieSecure: c.Bool("session-cookie-secure"),
		CatalogFile:         c.String("catalog-file"),
		LogLevel:            c.String("log-level"),
		LogFormat:           c.String("log-format"),
		CORSOrigins:         splitList(c.String("cors-origins")),
		RateLimitRPS:        c.Float64("rate-limit-rps"),
		RateLimitBurst:      c.Int("rate-limit-burst"),
		MaxBodyBytes:        c.Int64("max-body-bytes"),
		MirrorBaseURL:       c.String("mirror-base-url"),
		MirrorTimeout:       c.Duration("mirror-timeout"),
		EnableHSTS:          c.Bool("enable-hsts"),
	}
	if cfg.JWTSecret == "" {
		return Config{}, errors.New("missing required setting: JWT_SECRET")
	}
	if cfg.MirrorBaseURL == "" {
		cfg.MirrorBaseURL = selfURL(cfg.Addr)
	}
	return cfg, nil
}

// selfURL turns a listen address into a URL reaching this process.
func selfURL(addr string) string {
	if strings.HasPrefix(addr, ":") {
		return "http://127.0.0.1" + addr
	}
	return "http://" + addr
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
