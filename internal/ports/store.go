package ports

import (
	"context"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// Listener consumes a snapshot of the full project list. Each call receives
// its own copy; mutating it has no effect on the store or other listeners.
type Listener func(snapshot []project.Project)

// ProjectStore is the authoritative in-memory project collection.
// Exactly one exists per running application.
type ProjectStore interface {
	// AddListener registers fn to be called after every mutation, in
	// registration order. There is no way to remove a listener, and
	// registering the same function twice calls it twice.
	AddListener(fn Listener)

	// AddProject appends a new Active project with a fresh ID and notifies
	// every listener synchronously before returning it. It performs no
	// validation and never fails. The context only carries telemetry and
	// logging scope; it does not cancel the notification cycle.
	AddProject(ctx context.Context, title, description string, people int) project.Project

	// Projects returns a copy of the current list in insertion order.
	Projects() []project.Project
}
