// internal/storefront/routes.go
package storefront

import (
	"embed"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"storefront/internal/catalog"
)

//go:embed assets
var assetsFS embed.FS

// Routes wires the storefront and catalog handlers. A nil limiter disables action rate limiting.
func Routes(h *Handler, catalogHandler *catalog.Handler, limiter *rate.Limiter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/", h.HandlePage)
	r.Get("/fragments/catalog", h.HandleCatalogFragment)
	r.Get("/fragments/cart", h.HandleCartFragment)
	r.Get("/catalog.json", catalogHandler.HandleDocument)
	r.Get("/healthz", h.HandleHealth)
	r.Handle("/assets/*", http.FileServer(http.FS(assetsFS)))

	r.Group(func(r chi.Router) {
		if limiter != nil {
			r.Use(rateLimit(limiter))
		}
		r.Post("/cart/{action}/{id}", h.HandleAction)
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Debug("request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func rateLimit(limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
