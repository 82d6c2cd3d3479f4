package router

import (
	"net/http"

	"github.com/tinadigital/webquest/internal/config"
	"github.com/tinadigital/webquest/internal/handler"
	"github.com/tinadigital/webquest/internal/middleware"
)

// New creates and configures the HTTP router
func New(h *handler.Handler, mw *middleware.Middleware, cfg *config.Config) http.Handler {
	mux := http.NewServeMux()

	// Health check endpoints
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /ready", h.Ready)

	mux.HandleFunc("GET /api/questions", h.Questions)

	keyFn := middleware.IPKey
	if cfg.RateLimit.TrustProxy {
		keyFn = middleware.ForwardedIPKey
	}
	sendRateLimit := mw.RateLimit(middleware.RateLimitConfig{
		Name:   "send_email",
		Limit:  cfg.RateLimit.Limit,
		Window: cfg.RateLimit.Window,
		KeyFn:  keyFn,
	})
	mux.Handle("POST /api/send-email", sendRateLimit(http.HandlerFunc(h.SendEmail)))

	// Apply middleware stack
	var handler http.Handler = mux

	handler = mw.CORS(cfg.CORS.AllowedOrigins)(handler)

	// Request logging
	handler = mw.Logger(handler)

	// Timing
	handler = mw.Timing(handler)

	// Request ID
	handler = mw.RequestID(handler)

	// Panic recovery (outermost)
	handler = mw.Recover(handler)

	return handler
}
