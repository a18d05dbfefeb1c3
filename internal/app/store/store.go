// Package store holds the authoritative in-memory project list and fans every
// change out to registered listeners.
//
// One Store is constructed at startup and injected into every consumer:
//
//	s := store.New(store.WithLogger(logger), store.WithMetrics(metrics))
//	s.AddListener(func(snapshot []project.Project) { ... })
//	p := s.AddProject(ctx, "Build API", "Design and implement", 3)
//
// AddProject appends, then calls every listener synchronously in
// registration order, each with its own copy of the full list. A second
// mutation waits until the current notification cycle has finished, so
// listeners always observe snapshots in insertion order.
//
// Listeners may read from the store (Projects) but must not call AddProject;
// doing so deadlocks the notification cycle.
package store

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.ProjectStore  = (*Store)(nil)
	_ ports.HealthChecker = (*Store)(nil)
)

const checkerName = "project-store"

// Store implements ports.ProjectStore. It is safe for concurrent use.
type Store struct {
	// notifyMu serializes append+fan-out cycles.
	notifyMu sync.Mutex

	mu        sync.RWMutex
	projects  []project.Project
	listeners []ports.Listener

	newID   func() string
	now     func() time.Time
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the UUID v4 generator used for project IDs.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

// WithClock replaces the time source used for CreatedAt.
func WithClock(fn func() time.Time) Option {
	return func(s *Store) { s.now = fn }
}

// WithMetrics records project and notification counters. Nil disables
// recording.
func WithMetrics(m *telemetry.Metrics) Option {
	return func(s *Store) { s.metrics = m }
}

// WithLogger sets the logger used for store events.
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{
		newID:  uuid.NewString,
		now:    time.Now,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// AddListener registers fn. Listeners registered after a mutation are not
// called for it retroactively.
func (s *Store) AddListener(fn ports.Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// AddProject appends a new Active project and notifies every listener.
func (s *Store) AddProject(ctx context.Context, title, description string, people int) project.Project {
	s.notifyMu.Lock()
	defer s.notifyMu.Unlock()

	p := project.Project{
		ID:          s.newID(),
		Title:       title,
		Description: description,
		People:      people,
		Status:      project.StatusActive,
		CreatedAt:   s.now(),
	}

	s.mu.Lock()
	s.projects = append(s.projects, p)
	listeners := make([]ports.Listener, len(s.listeners))
	copy(listeners, s.listeners)
	current := s.projects
	s.mu.Unlock()

	s.logger.DebugContext(ctx, "project added",
		slog.String("project_id", p.ID),
		slog.Int("listeners", len(listeners)),
	)

	// current is safe to read without s.mu: appends happen only under
	// notifyMu, which this goroutine holds.
	for _, fn := range listeners {
		fn(clone(current))
	}

	s.record(ctx, p.Status, len(listeners))
	return p
}

// Projects returns a copy of every project in insertion order.
func (s *Store) Projects() []project.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clone(s.projects)
}

// Name implements ports.HealthChecker.
func (s *Store) Name() string {
	return checkerName
}

// HealthCheck implements ports.HealthChecker. The store lives in memory, so
// it is healthy for as long as the caller is still waiting.
func (s *Store) HealthCheck(ctx context.Context) error {
	return ctx.Err()
}

func (s *Store) record(ctx context.Context, status project.Status, notified int) {
	if s.metrics == nil {
		return
	}
	s.metrics.ProjectsCreated.Add(ctx, 1,
		metric.WithAttributes(telemetry.AttrStatus.String(status.String())))
	s.metrics.ListenerNotifications.Add(ctx, int64(notified))
}

func clone(projects []project.Project) []project.Project {
	out := make([]project.Project, len(projects))
	copy(out, projects)
	return out
}
