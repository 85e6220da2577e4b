package middleware

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// CORSConfig holds configuration for the CORS middleware.
type CORSConfig struct {
	// AllowedOrigins lists permitted origins. "*" allows every origin.
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
	ExposedHeaders []string
	// MaxAge is how long, in seconds, preflight results may be cached.
	MaxAge int
}

// DefaultCORSConfig returns the configuration used by browser storefront clients.
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", CorrelationIDHeader, "traceparent"},
		ExposedHeaders: []string{CorrelationIDHeader},
		MaxAge:         3600,
	}
}

// corsPolicy is a CORSConfig with its header values rendered once.
type corsPolicy struct {
	anyOrigin bool
	origins   []string
	headers   map[string]string
}

func newCORSPolicy(cfg CORSConfig) corsPolicy {
	d := DefaultCORSConfig()
	if len(cfg.AllowedMethods) == 0 {
		cfg.AllowedMethods = d.AllowedMethods
	}
	if len(cfg.AllowedHeaders) == 0 {
		cfg.AllowedHeaders = d.AllowedHeaders
	}
	if cfg.MaxAge == 0 {
		cfg.MaxAge = d.MaxAge
	}

	p := corsPolicy{
		anyOrigin: slices.Contains(cfg.AllowedOrigins, "*"),
		origins:   cfg.AllowedOrigins,
		headers: map[string]string{
			"Access-Control-Allow-Methods": strings.Join(cfg.AllowedMethods, ", "),
			"Access-Control-Allow-Headers": strings.Join(cfg.AllowedHeaders, ", "),
			"Access-Control-Max-Age":       strconv.Itoa(cfg.MaxAge),
		},
	}
	if len(cfg.ExposedHeaders) > 0 {
		p.headers["Access-Control-Expose-Headers"] = strings.Join(cfg.ExposedHeaders, ", ")
	}
	return p
}

// allowOrigin returns the Access-Control-Allow-Origin value for origin, or
// "" when it is not permitted.
func (p corsPolicy) allowOrigin(origin string) string {
	switch {
	case p.anyOrigin:
		return "*"
	case origin != "" && slices.Contains(p.origins, origin):
		return origin
	default:
		return ""
	}
}

// CORS returns middleware that sets Cross-Origin Resource Sharing headers and
// answers preflight requests with 204.
func CORS(cfg CORSConfig) func(http.Handler) http.Handler {
	policy := newCORSPolicy(cfg)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			h := w.Header()
			if allowed := policy.allowOrigin(r.Header.Get("Origin")); allowed != "" {
				h.Set("Access-Control-Allow-Origin", allowed)
				if allowed != "*" {
					h.Add("Vary", "Origin")
				}
			}
			for k, v := range policy.headers {
				h.Set(k, v)
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
