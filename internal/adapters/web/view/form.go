package view

import (
	"context"
	"io"
	"strconv"

	"github.com/a-h/templ"
)

// InvalidInputNotice is shown when a submission fails any rule.
const InvalidInputNotice = "Invalid input, please try again!"

// FormState is what the form shows: the values as last entered, whether the
// last submission was rejected, and the team-size bounds for the number input.
type FormState struct {
	Title       string
	Description string
	People      string
	Invalid     bool

	PeopleMin int
	PeopleMax int
}

// ProjectForm renders the submission form. Inputs carry the ids title,
// description and people; a rejected submission adds the notice as an alert
// above them and keeps the entered values.
func ProjectForm(s FormState) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<form id="project-form" method="post" action="/projects" novalidate>`)
		if s.Invalid {
			h.raw(`<div class="notice" role="alert">`)
			h.text(InvalidInputNotice)
			h.raw(`</div>`)
		}

		h.raw(`<div class="form-control"><label for="title">Title</label><input type="text" id="title" name="title"`)
		h.attr("value", s.Title)
		h.raw(`></div>`)

		h.raw(`<div class="form-control"><label for="description">Description</label><textarea id="description" name="description" rows="3">`)
		h.text(s.Description)
		h.raw(`</textarea></div>`)

		h.raw(`<div class="form-control"><label for="people">People</label><input type="number" id="people" name="people" step="1"`)
		h.attr("min", strconv.Itoa(s.PeopleMin))
		h.attr("max", strconv.Itoa(s.PeopleMax))
		h.attr("value", s.People)
		h.raw(`></div>`)

		h.raw(`<button type="submit">ADD PROJECT</button></form>`)
		return h.err
	})
}
