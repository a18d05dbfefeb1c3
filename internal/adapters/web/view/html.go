// Package view holds the HTML render components of the project board:
// ProjectForm, ProjectList and ProjectItem, plus the page that hosts them.
// Components are templ.Component values, so handlers render them with
// templ.Handler and tests render them into a strings.Builder.
package view

import (
	"io"

	"github.com/a-h/templ"
)

// html writes markup to w and keeps the first write error, so components can
// emit a sequence of fragments and check once at the end.
type html struct {
	w   io.Writer
	err error
}

// raw writes trusted markup.
func (h *html) raw(s string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, s)
}

// text writes user-supplied content, escaped.
func (h *html) text(s string) {
	h.raw(templ.EscapeString(s))
}

// attr writes ` name="value"` with value escaped.
func (h *html) attr(name, value string) {
	h.raw(" " + name + `="`)
	h.text(value)
	h.raw(`"`)
}
