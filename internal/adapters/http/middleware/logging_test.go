package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

func TestLogging_StartAndCompletion(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Chain(
		middleware.RequestID(),
		middleware.CorrelationID(),
		middleware.Logging(testLogger(&buf)),
	)(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusSeeOther)
	}))

	req := httptest.NewRequest(http.MethodPost, "/projects", http.NoBody)
	req.Header.Set("X-Request-ID", "req-log")
	req.Header.Set("X-Correlation-ID", "corr-log")
	serve(h, req)

	out := buf.String()
	for _, want := range []string{
		"request started",
		"request completed",
		"method=POST",
		"path=/projects",
		"status=303",
		"request_id=req-log",
		"correlation_id=corr-log",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLogging_ImplicitOK(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("hello"))
	}))
	serve(h, httptest.NewRequest(http.MethodGet, "/", http.NoBody))

	if out := buf.String(); !strings.Contains(out, "status=200") || !strings.Contains(out, "bytes=5") {
		t.Errorf("log output missing status/bytes:\n%s", out)
	}
}

func TestLogging_StoresLoggerInContext(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Chain(middleware.RequestID(), middleware.Logging(testLogger(&buf)))(
		http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
			logging.FromContext(r.Context()).Info("inside handler")
		}),
	)

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("X-Request-ID", "req-ctx")
	serve(h, req)

	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "inside handler") && !strings.Contains(line, "request_id=req-ctx") {
			t.Errorf("handler log line missing request_id: %s", line)
		}
	}
}

func TestLogging_RedactsHeadersAtDebug(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := middleware.Logging(testLogger(&buf))(okHandler(http.StatusOK))

	req := httptest.NewRequest(http.MethodGet, "/", http.NoBody)
	req.Header.Set("Authorization", "Bearer secret-token-value")
	req.Header.Set("Accept", "text/html")
	serve(h, req)

	out := buf.String()
	if strings.Contains(out, "secret-token-value") {
		t.Errorf("log output leaked credential:\n%s", out)
	}
	if !strings.Contains(out, "text/html") {
		t.Errorf("log output missing Accept header:\n%s", out)
	}
}

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	headers := http.Header{
		"Cookie":    {"session=abc"},
		"X-Api-Key": {"k"},
		"Accept":    {"text/html", "application/json"},
	}

	got := map[string]string{}
	var order []string
	for _, a := range middleware.RedactHeaders(headers) {
		got[a.Key] = a.Value.String()
		order = append(order, a.Key)
	}

	want := map[string]string{
		"Accept":    "text/html,application/json",
		"Cookie":    "[REDACTED]",
		"X-Api-Key": "[REDACTED]",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("RedactHeaders()[%s] = %q, want %q", k, got[k], v)
		}
	}
	if strings.Join(order, ",") != "Accept,Cookie,X-Api-Key" {
		t.Errorf("RedactHeaders() order = %v, want sorted", order)
	}

	if attrs := middleware.RedactHeaders(http.Header{}); len(attrs) != 0 {
		t.Errorf("RedactHeaders(empty) = %v, want none", attrs)
	}
}
