package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectService defines the service port for project form submissions.
// Implemented by the application layer; called by inbound adapters.
type ProjectService interface {
	// SubmitProject validates the raw form values and, when every rule
	// passes, adds a new Active project to the store.
	// Returns a *domain.ValidationError (wrapping domain.ErrValidation) naming
	// the rejected fields otherwise; the store is left untouched.
	SubmitProject(ctx context.Context, input ProjectInput) (*project.Project, error)

	// ListProjects returns the stored projects in insertion order, filtered
	// to the given status. A zero status returns every project.
	ListProjects(ctx context.Context, status project.Status) ([]project.Project, error)
}

// ProjectInput carries the raw, unvalidated values of a form submission.
// People is kept as text because it is coerced to a number during validation.
type ProjectInput struct {
	Title       string
	Description string
	People      string
}
