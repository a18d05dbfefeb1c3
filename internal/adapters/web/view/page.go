package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

const pageTitle = "ProjectBoard"

// Page wraps the form and the lists in a full HTML document, form first and
// lists in the given order.
func Page(form templ.Component, lists ...templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := &html{w: w}
		h.raw(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><meta name="viewport" content="width=device-width, initial-scale=1"><title>`)
		h.text(pageTitle)
		h.raw(`</title></head><body><div id="app">`)
		if h.err != nil {
			return h.err
		}
		if err := form.Render(ctx, w); err != nil {
			return err
		}
		for _, l := range lists {
			if err := l.Render(ctx, w); err != nil {
				return err
			}
		}
		h.raw(`</div></body></html>`)
		return h.err
	})
}
