package middleware

import (
	"log/slog"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

const redacted = "[REDACTED]"

// Logging attaches a request-scoped child logger (request_id, correlation_id)
// to the context and logs request start and completion. Request headers are
// logged at debug level with credentials redacted.
func Logging(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ctx := r.Context()

			child := logger.With(
				slog.String("request_id", RequestIDFromContext(ctx)),
				slog.String("correlation_id", CorrelationIDFromContext(ctx)),
			)
			ctx = logging.WithLogger(ctx, child)

			child.InfoContext(ctx, "request started",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
			)
			if child.Enabled(ctx, slog.LevelDebug) {
				child.LogAttrs(ctx, slog.LevelDebug, "request headers", RedactHeaders(r.Header)...)
			}

			ww := wrap(w, r)
			next.ServeHTTP(ww, r.WithContext(ctx))

			child.InfoContext(ctx, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", statusOf(ww)),
				slog.Int("bytes", ww.BytesWritten()),
				slog.Duration("duration", time.Since(start)),
			)
		})
	}
}

// RedactHeaders turns headers into log attributes sorted by name. Values of
// the headers in logging.SensitiveHeaders are replaced; multi-value headers
// are comma-joined.
func RedactHeaders(headers http.Header) []slog.Attr {
	keys := make([]string, 0, len(headers))
	for k := range headers {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	attrs := make([]slog.Attr, 0, len(keys))
	for _, k := range keys {
		v := strings.Join(headers[k], ",")
		if logging.SensitiveHeaders[strings.ToLower(k)] {
			v = redacted
		}
		attrs = append(attrs, slog.String(k, v))
	}
	return attrs
}
