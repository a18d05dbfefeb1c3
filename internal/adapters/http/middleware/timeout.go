package middleware

import (
	"net/http"
	"time"
)

const timeoutBody = "request timed out"

// Timeout bounds every request to d. The handler's context carries the
// deadline; a handler still running when it passes is abandoned and the
// client gets 503 Service Unavailable. The response is buffered until the
// handler returns, so a partial body is never sent.
func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, d, timeoutBody)
	}
}
