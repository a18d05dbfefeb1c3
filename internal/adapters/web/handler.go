// Package web serves the server-rendered project board: the page with the
// form and both status lists, and the form submission endpoint.
package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"

	"github.com/jsamuelsen11/projectboard/internal/adapters/web/view"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/platform/config"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const maxFormBytes = 64 << 10

// Handler renders the board and accepts form posts.
type Handler struct {
	svc   ports.ProjectService
	form  config.FormConfig
	lists []templ.Component
}

// NewHandler creates a Handler. Lists are rendered in the given order below
// the form.
func NewHandler(svc ports.ProjectService, form config.FormConfig, lists ...*view.ProjectList) *Handler {
	components := make([]templ.Component, len(lists))
	for i, l := range lists {
		components[i] = l
	}
	return &Handler{svc: svc, form: form, lists: components}
}

// Page handles GET /: an empty form above the current lists.
func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, view.FormState{})
}

// Submit handles POST /projects. A valid submission is added to the store
// and the browser is redirected to the page, which clears the form. A
// rejected one re-renders the page with the notice and the values as
// entered.
func (h *Handler) Submit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		h.render(w, r, http.StatusBadRequest, view.FormState{Invalid: true})
		return
	}

	in := ports.ProjectInput{
		Title:       r.PostFormValue("title"),
		Description: r.PostFormValue("description"),
		People:      r.PostFormValue("people"),
	}

	_, err := h.svc.SubmitProject(r.Context(), in)
	switch {
	case err == nil:
		http.Redirect(w, r, "/", http.StatusSeeOther)
	case errors.Is(err, domain.ErrValidation):
		h.render(w, r, http.StatusUnprocessableEntity, view.FormState{
			Title:       in.Title,
			Description: in.Description,
			People:      in.People,
			Invalid:     true,
		})
	default:
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "project submission failed", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, state view.FormState) {
	state.PeopleMin = h.form.PeopleMin
	state.PeopleMax = h.form.PeopleMax

	page := view.Page(view.ProjectForm(state), h.lists...)
	templ.Handler(page, templ.WithStatus(status)).ServeHTTP(w, r)
}
