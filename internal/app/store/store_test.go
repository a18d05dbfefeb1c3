package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/jsamuelsen11/projectboard/internal/app/store"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

func sequentialIDs() func() string {
	var n int
	return func() string {
		n++
		return fmt.Sprintf("p%d", n)
	}
}

func newTestStore(opts ...store.Option) *store.Store {
	base := []store.Option{
		store.WithIDGenerator(sequentialIDs()),
		store.WithClock(func() time.Time { return testTime }),
	}
	return store.New(append(base, opts...)...)
}

func TestNew_Empty(t *testing.T) {
	t.Parallel()

	s := store.New()
	got := s.Projects()
	require.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAddProject_AppendsActiveProject(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	p := s.AddProject(context.Background(), "Build API", "Design and implement", 3)

	want := project.Project{
		ID:          "p1",
		Title:       "Build API",
		Description: "Design and implement",
		People:      3,
		Status:      project.StatusActive,
		CreatedAt:   testTime,
	}
	assert.Equal(t, want, p)
	assert.Equal(t, []project.Project{want}, s.Projects())
}

func TestAddProject_NeverReplaces(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	ctx := context.Background()
	for i := range 5 {
		s.AddProject(ctx, fmt.Sprintf("title %d", i), "description", i)
	}

	got := s.Projects()
	require.Len(t, got, 5)
	for i, p := range got {
		assert.Equal(t, fmt.Sprintf("title %d", i), p.Title, "insertion order at %d", i)
		assert.Equal(t, project.StatusActive, p.Status)
	}
}

func TestAddProject_AcceptsUnvalidatedInput(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	p := s.AddProject(context.Background(), "", "", -4)

	assert.Equal(t, project.StatusActive, p.Status)
	assert.Len(t, s.Projects(), 1)
}

func TestAddProject_DefaultIDsAreUnique(t *testing.T) {
	t.Parallel()

	s := store.New()
	seen := make(map[string]bool)
	for range 100 {
		p := s.AddProject(context.Background(), "t", "description", 1)
		require.NotEmpty(t, p.ID)
		assert.False(t, seen[p.ID], "duplicate id %q", p.ID)
		seen[p.ID] = true
	}
}

func TestAddListener_NotifiedInRegistrationOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var calls []string
	for _, name := range []string{"first", "second", "third"} {
		s.AddListener(func(_ []project.Project) {
			calls = append(calls, name)
		})
	}

	s.AddProject(context.Background(), "Build API", "Design and implement", 3)

	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestAddListener_SnapshotContainsNewProjectInOrder(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var snapshots [][]project.Project
	s.AddListener(func(snapshot []project.Project) {
		snapshots = append(snapshots, snapshot)
	})

	ctx := context.Background()
	s.AddProject(ctx, "one", "description", 1)
	s.AddProject(ctx, "two", "description", 2)

	require.Len(t, snapshots, 2)
	require.Len(t, snapshots[0], 1)
	assert.Equal(t, "one", snapshots[0][0].Title)
	require.Len(t, snapshots[1], 2)
	assert.Equal(t, "one", snapshots[1][0].Title)
	assert.Equal(t, "two", snapshots[1][1].Title)
}

func TestAddListener_NotRetroactive(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	ctx := context.Background()
	s.AddProject(ctx, "before", "description", 1)

	var calls int
	var last []project.Project
	s.AddListener(func(snapshot []project.Project) {
		calls++
		last = snapshot
	})
	assert.Zero(t, calls, "registering must not replay past notifications")

	s.AddProject(ctx, "after", "description", 2)
	assert.Equal(t, 1, calls)
	assert.Len(t, last, 2, "the next snapshot still carries the full list")
}

func TestAddListener_DuplicatesAreCalledTwice(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var calls int
	fn := func(_ []project.Project) { calls++ }
	s.AddListener(fn)
	s.AddListener(fn)

	s.AddProject(context.Background(), "t", "description", 1)
	assert.Equal(t, 2, calls)
}

func TestSnapshot_UnaffectedByLaterAdds(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var captured []project.Project
	s.AddListener(func(snapshot []project.Project) {
		if captured == nil {
			captured = snapshot
		}
	})

	ctx := context.Background()
	s.AddProject(ctx, "one", "description", 1)
	s.AddProject(ctx, "two", "description", 2)

	assert.Len(t, captured, 1)
}

func TestSnapshot_MutationDoesNotLeak(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var second []project.Project
	s.AddListener(func(snapshot []project.Project) {
		snapshot[0].Title = "mutated by first listener"
		snapshot[0].Status = project.StatusFinished
	})
	s.AddListener(func(snapshot []project.Project) {
		second = snapshot
	})

	s.AddProject(context.Background(), "original", "description", 1)

	assert.Equal(t, "original", second[0].Title, "listeners must receive independent copies")
	assert.Equal(t, "original", s.Projects()[0].Title)
	assert.Equal(t, project.StatusActive, s.Projects()[0].Status)

	got := s.Projects()
	got[0].Title = "mutated by caller"
	assert.Equal(t, "original", s.Projects()[0].Title)
}

func TestListener_CanReadStore(t *testing.T) {
	t.Parallel()

	s := newTestStore()
	var seen int
	s.AddListener(func(_ []project.Project) {
		seen = len(s.Projects())
	})

	s.AddProject(context.Background(), "t", "description", 1)
	assert.Equal(t, 1, seen)
}

func TestAddProject_ConcurrentCallsKeepSnapshotsConsistent(t *testing.T) {
	t.Parallel()

	s := store.New()
	var mu sync.Mutex
	var lengths []int
	s.AddListener(func(snapshot []project.Project) {
		mu.Lock()
		lengths = append(lengths, len(snapshot))
		mu.Unlock()
	})

	const n = 50
	var wg sync.WaitGroup
	for range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.AddProject(context.Background(), "t", "description", 1)
		}()
	}
	wg.Wait()

	assert.Len(t, s.Projects(), n)
	require.Len(t, lengths, n)
	for i, l := range lengths {
		assert.Equal(t, i+1, l, "notification %d saw a snapshot out of order", i)
	}
}

func TestAddProject_RecordsMetrics(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	reader := sdkmetric.NewManualReader()
	metrics, err := telemetry.NewMetrics(sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader)))
	require.NoError(t, err)

	s := newTestStore(store.WithMetrics(metrics))
	s.AddListener(func(_ []project.Project) {})
	s.AddListener(func(_ []project.Project) {})
	s.AddProject(ctx, "one", "description", 1)
	s.AddProject(ctx, "two", "description", 2)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			if sum, ok := m.Data.(metricdata.Sum[int64]); ok {
				for _, dp := range sum.DataPoints {
					sums[m.Name] += dp.Value
				}
			}
		}
	}
	assert.Equal(t, int64(2), sums["projectboard.projects.created"])
	assert.Equal(t, int64(4), sums["projectboard.listener.notifications"])
}

func TestHealthCheck(t *testing.T) {
	t.Parallel()

	s := store.New()
	assert.Equal(t, "project-store", s.Name())
	assert.NoError(t, s.HealthCheck(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.HealthCheck(ctx), context.Canceled)
}
