package http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapthttp "github.com/jsamuelsen11/projectboard/internal/adapters/http"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/projectboard/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web"
	"github.com/jsamuelsen11/projectboard/internal/adapters/web/view"
	"github.com/jsamuelsen11/projectboard/internal/app"
	"github.com/jsamuelsen11/projectboard/internal/app/store"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/health"
)

func newTestRouter(t *testing.T, middlewares ...func(http.Handler) http.Handler) http.Handler {
	t.Helper()

	s := store.New()
	active := view.NewProjectList(s, project.StatusActive)
	finished := view.NewProjectList(s, project.StatusFinished)
	svc := app.NewProjectService(s, app.DefaultFormRules(), nil, discardLogger())

	registry := health.New()
	registry.Register(s)

	return adapthttp.NewRouter(
		web.NewHandler(svc, config.FormConfig{DescriptionMinLength: 5, PeopleMin: 1, PeopleMax: 6}, active, finished),
		handlers.NewProjectHandler(svc),
		handlers.NewHealthHandler(registry),
		middlewares...,
	)
}

func do(t *testing.T, h http.Handler, method, target, contentType, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func submitForm(t *testing.T, h http.Handler, title, description, people string) *httptest.ResponseRecorder {
	t.Helper()
	form := url.Values{"title": {title}, "description": {description}, "people": {people}}
	return do(t, h, http.MethodPost, "/projects", "application/x-www-form-urlencoded", form.Encode())
}

func listProjects(t *testing.T, h http.Handler, status string) dto.ProjectListResponse {
	t.Helper()
	rec := do(t, h, http.MethodGet, "/api/v1/projects?status="+status, "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var out dto.ProjectListResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	return out
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	mux, ok := newTestRouter(t).(*chi.Mux)
	require.True(t, ok, "router is not *chi.Mux")

	registered := map[string]bool{}
	require.NoError(t, chi.Walk(mux, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	}))

	for _, want := range []string{
		"GET /",
		"POST /projects",
		"GET /health/live",
		"GET /health/ready",
		"GET /api/v1/projects",
		"POST /api/v1/projects",
	} {
		assert.True(t, registered[want], "route %s not registered", want)
	}
}

func TestRouter_ValidFormSubmission(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)
	rec := submitForm(t, h, "Build API", "Design and implement", "3")
	require.Equal(t, http.StatusSeeOther, rec.Code)

	active := listProjects(t, h, "active")
	require.Equal(t, 1, active.Count)
	assert.Equal(t, "Build API", active.Projects[0].Title)
	assert.Equal(t, 3, active.Projects[0].People)
	assert.Equal(t, 0, listProjects(t, h, "finished").Count)

	page := do(t, h, http.MethodGet, "/", "", "")
	assert.Contains(t, page.Body.String(), "3 persons assigned")
}

func TestRouter_RejectedFormSubmission(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name                       string
		title, description, people string
	}{
		{name: "short description", title: "Build API", description: "hi", people: "3"},
		{name: "seven people", title: "Build API", description: "Design and implement", people: "7"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := newTestRouter(t)
			rec := submitForm(t, h, tt.title, tt.description, tt.people)

			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.Contains(t, rec.Body.String(), view.InvalidInputNotice)
			assert.Equal(t, 0, listProjects(t, h, "").Count)
		})
	}
}

func TestRouter_JSONAPI(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	rec := do(t, h, http.MethodPost, "/api/v1/projects", "application/json",
		`{"title":"Build API","description":"Design and implement","people":2}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, h, http.MethodPost, "/api/v1/projects", "application/json",
		`{"title":"Build API","description":"Design and implement","people":"abc"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

	rec = do(t, h, http.MethodGet, "/api/v1/projects?status=archived", "", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, 1, listProjects(t, h, "").Count)
}

func TestRouter_Health(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t)

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/health/live", "", "").Code)

	rec := do(t, h, http.MethodGet, "/health/ready", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"project-store":"ok"`)
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h := newTestRouter(t, middleware.RequestID())
	rec := do(t, h, http.MethodGet, "/health/live", "", "")
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := do(t, newTestRouter(t), http.MethodDelete, "/api/v1/projects", "", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
