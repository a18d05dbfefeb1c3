package dto

import (
	"bytes"
	"encoding/json"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

const fieldPeople = "people"

// CreateProjectRequest is the JSON body of POST /api/v1/projects. People may
// be sent as a JSON number or as the raw text typed into the form; the
// service applies the same coercion to both.
type CreateProjectRequest struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	People      json.RawMessage `json:"people"`
}

// Validate rejects a people value that is neither a number, a string nor
// absent. Content rules are the service's job.
func (r *CreateProjectRequest) Validate() error {
	if _, ok := r.peopleText(); !ok {
		return domain.NewValidationError(fieldPeople)
	}
	return nil
}

// ToInput converts the request to the service's raw form input.
func (r *CreateProjectRequest) ToInput() ports.ProjectInput {
	people, _ := r.peopleText()
	return ports.ProjectInput{
		Title:       r.Title,
		Description: r.Description,
		People:      people,
	}
}

func (r *CreateProjectRequest) peopleText() (string, bool) {
	raw := bytes.TrimSpace(r.People)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", true
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s, true
	}

	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String(), true
	}
	return "", false
}
