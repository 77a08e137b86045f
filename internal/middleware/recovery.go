package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/veloxerp/cari-recon/internal/handler"
	"github.com/veloxerp/cari-recon/internal/logging"
)

// Recovery converts a panic into a 500 response carrying the request id,
// so a consumer reporting "balance unavailable" can quote an id that
// matches the stack trace in the logs.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				log := logging.FromContext(r.Context())
				log.Error("panic recovered", "error", err, "stack", string(debug.Stack()))

				var details any
				if traceID := TraceIDFromContext(r.Context()); traceID != "" {
					details = map[string]string{"request_id": traceID}
				}
				handler.RespondAppError(w, handler.ErrInternalError, details)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
