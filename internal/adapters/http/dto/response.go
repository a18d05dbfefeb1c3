// Package dto holds the JSON request and response shapes of the HTTP API and
// its RFC 9457 Problem Details errors.
package dto

import (
	"time"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectResponse is a project as returned by the API.
type ProjectResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	People      int    `json:"people"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
}

// ProjectListResponse wraps a list of projects with its length.
type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
	Count    int               `json:"count"`
}

// ToProjectResponse converts a domain project.
func ToProjectResponse(p *project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		People:      p.People,
		Status:      p.Status.String(),
		CreatedAt:   p.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// ToProjectListResponse converts projects in order. An empty input yields an
// empty JSON array, never null.
func ToProjectListResponse(projects []project.Project) ProjectListResponse {
	items := make([]ProjectResponse, len(projects))
	for i := range projects {
		items[i] = ToProjectResponse(&projects[i])
	}
	return ProjectListResponse{Projects: items, Count: len(items)}
}
