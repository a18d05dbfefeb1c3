package view

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

// ProjectItem renders one project as a list entry: title, team size and
// description. It is read-only.
func ProjectItem(p project.Project) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<li class="project-item"`)
		h.attr("id", "project-"+p.ID)
		h.raw(`><h2>`)
		h.text(p.Title)
		h.raw(`</h2><h3>`)
		h.text(p.Persons() + " assigned")
		h.raw(`</h3><p>`)
		h.text(p.Description)
		h.raw(`</p></li>`)
		return h.err
	})
}
