// Package middleware provides the inbound request pipeline shared by the HTML
// pages and the JSON API:
//
//	Recovery → RequestID → CorrelationID → OpenTelemetry → Logging → Timeout → handler
//
// Every middleware is a func(http.Handler) http.Handler so the set can be
// handed to chi's Use or composed with Chain.
package middleware

import (
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// Chain composes middlewares so the first argument is the outermost:
// Chain(a, b)(h) is a(b(h)).
func Chain(middlewares ...func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		for i := len(middlewares) - 1; i >= 0; i-- {
			h = middlewares[i](h)
		}
		return h
	}
}

// wrap returns a writer that records the status code, reusing w when an
// outer middleware already wrapped it.
func wrap(w http.ResponseWriter, r *http.Request) chimw.WrapResponseWriter {
	if ww, ok := w.(chimw.WrapResponseWriter); ok {
		return ww
	}
	return chimw.NewWrapResponseWriter(w, r.ProtoMajor)
}

// statusOf reports the status written through ww; handlers that never call
// WriteHeader or Write get the implicit 200.
func statusOf(ww chimw.WrapResponseWriter) int {
	if s := ww.Status(); s != 0 {
		return s
	}
	return http.StatusOK
}
