package view

import (
	"context"
	"io"
	"strings"
	"sync"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time interface check.
var _ templ.Component = (*ProjectList)(nil)

// ProjectList shows the projects of one status. It subscribes to the store
// when constructed and replaces its items with the filtered snapshot on every
// notification; it never reads the store directly. A list constructed after
// projects were added shows none of them until the next addition.
type ProjectList struct {
	status project.Status

	mu    sync.RWMutex
	items []project.Project
}

// NewProjectList creates the list for status and registers it with store.
func NewProjectList(store ports.ProjectStore, status project.Status) *ProjectList {
	l := &ProjectList{status: status, items: []project.Project{}}
	store.AddListener(l.update)
	return l
}

// Status returns the status this list displays.
func (l *ProjectList) Status() project.Status {
	return l.status
}

// Items returns a copy of the currently rendered projects.
func (l *ProjectList) Items() []project.Project {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]project.Project, len(l.items))
	copy(out, l.items)
	return out
}

// Render implements templ.Component.
//
//	<section class="projects" id="active-projects">
//	  <header><h2>ACTIVE PROJECTS</h2></header>
//	  <ul id="active-projects-list">…</ul>
//	</section>
func (l *ProjectList) Render(ctx context.Context, w io.Writer) error {
	items := l.Items()
	status := l.status.String()

	h := &html{w: w}
	h.raw(`<section class="projects"`)
	h.attr("id", status+"-projects")
	h.raw(`><header><h2>`)
	h.text(strings.ToUpper(status) + " PROJECTS")
	h.raw(`</h2></header><ul`)
	h.attr("id", status+"-projects-list")
	h.raw(`>`)
	if h.err != nil {
		return h.err
	}
	for i := range items {
		if err := ProjectItem(items[i]).Render(ctx, w); err != nil {
			return err
		}
	}
	h.raw(`</ul></section>`)
	return h.err
}

func (l *ProjectList) update(snapshot []project.Project) {
	filtered := project.Filter(snapshot, l.status)

	l.mu.Lock()
	l.items = filtered
	l.mu.Unlock()
}
