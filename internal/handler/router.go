package handler

import (
	"log/slog"
	"net/http"

	"github.com/vortex/docx-compare/internal/middleware"
	"github.com/vortex/docx-compare/internal/service"
)

// NewRouter builds the HTTP mux with all routes and middleware.
func NewRouter(logger *slog.Logger, svc service.CompareService, maxBodyBytes int64) http.Handler {
	mux := http.NewServeMux()

	cmp := NewCompareHandler(svc)

	// Health endpoints
	mux.HandleFunc("GET /health", Health)
	mux.HandleFunc("GET /ready", Health)

	// Document-compare endpoints
	mux.HandleFunc("POST /api/v1/documents/open", cmp.Open)
	mux.HandleFunc("POST /api/v1/documents/validate", cmp.Validate)
	mux.HandleFunc("POST /api/v1/documents/compare", cmp.Compare)

	// Apply middleware chain (outermost first)
	var h http.Handler = mux
	h = middleware.MaxBodySize(maxBodyBytes)(h)
	h = middleware.CORS(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.Logging(logger)(h)

	return h
}
