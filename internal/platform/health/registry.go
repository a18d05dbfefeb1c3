// Package health tracks the components the readiness probe depends on.
// Checks run concurrently through the fan-out helper so one slow component
// does not serialize the whole probe.
package health

import (
	"context"
	"sync"

	"github.com/jsamuelsen11/projectboard/internal/platform/fanout"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time interface check.
var _ ports.HealthRegistry = (*Registry)(nil)

const defaultConcurrency = 4

// Registry is a thread-safe implementation of [ports.HealthRegistry].
type Registry struct {
	mu          sync.RWMutex
	checkers    []ports.HealthChecker
	concurrency int
}

// New creates an empty registry that runs at most concurrency checks at once.
// A value below 1 selects the default.
func New(concurrency ...int) *Registry {
	r := &Registry{concurrency: defaultConcurrency}
	if len(concurrency) > 0 && concurrency[0] > 0 {
		r.concurrency = concurrency[0]
	}
	return r
}

// Register adds a checker. Safe for concurrent use.
func (r *Registry) Register(checker ports.HealthChecker) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = append(r.checkers, checker)
}

// CheckAll runs every registered check and returns the outcome keyed by
// checker name; nil means healthy. When two checkers share a name the one
// registered last wins. Checks not started before ctx is done report
// ctx.Err().
func (r *Registry) CheckAll(ctx context.Context) map[string]error {
	r.mu.RLock()
	checkers := make([]ports.HealthChecker, len(r.checkers))
	copy(checkers, r.checkers)
	r.mu.RUnlock()

	outcomes := fanout.Run(ctx, r.concurrency, checkers, func(ctx context.Context, c ports.HealthChecker) (struct{}, error) {
		return struct{}{}, c.HealthCheck(ctx)
	})

	results := make(map[string]error, len(checkers))
	for i, c := range checkers {
		results[c.Name()] = outcomes[i].Err
	}
	return results
}
