package http

import (
	"net/http"

	"github.com/bizdir/backend/internal/common/constants"
	"github.com/bizdir/backend/internal/common/httpmetrics"
	"github.com/bizdir/backend/internal/common/logger"
)

// BuildBaseHandler wraps the application mux with the shared
// middleware chain, outermost first.
func BuildBaseHandler(log *logger.Logger, handler http.Handler) http.Handler {
	metrics := httpmetrics.New()
	recovery := RecoveryMiddleware(log)
	traceID := TraceIDMiddleware
	maxRequestSize := MaxRequestSizeMiddleware(constants.DefaultMaxRequestSize)
	securityHeaders := SecurityHeadersMiddleware

	return securityHeaders(recovery(traceID(maxRequestSize(metrics.Wrap(handler)))))
}
