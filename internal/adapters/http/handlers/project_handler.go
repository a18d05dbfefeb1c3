// Package handlers serves the JSON API and the health probes.
package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// ProjectHandler serves /api/v1/projects.
type ProjectHandler struct {
	svc ports.ProjectService
}

// NewProjectHandler creates a ProjectHandler backed by svc.
func NewProjectHandler(svc ports.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// ListProjects handles GET /api/v1/projects. The optional status query
// parameter restricts the result to one status.
func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	status := project.Status(r.URL.Query().Get("status"))

	projects, err := h.svc.ListProjects(r.Context(), status)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, r, http.StatusOK, dto.ToProjectListResponse(projects))
}

// CreateProject handles POST /api/v1/projects. It runs the same rules as the
// HTML form.
func (h *ProjectHandler) CreateProject(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProjectRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.SubmitProject(r.Context(), req.ToInput())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.Header().Set("Location", "/api/v1/projects?status="+created.Status.String())
	writeJSON(w, r, http.StatusCreated, dto.ToProjectResponse(created))
}
