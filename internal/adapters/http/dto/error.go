package dto

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sort"

	"github.com/jsamuelsen11/projectboard/internal/domain"
)

// ErrorResponse is an RFC 9457 Problem Details body.
type ErrorResponse struct {
	Type     string        `json:"type"`
	Title    string        `json:"title"`
	Status   int           `json:"status"`
	Detail   string        `json:"detail,omitempty"`
	Instance string        `json:"instance,omitempty"`
	Errors   []ErrorDetail `json:"errors,omitempty"`
}

// ErrorDetail names one rejected field.
type ErrorDetail struct {
	Location string `json:"location"`
	Message  string `json:"message"`
}

// NewErrorResponse builds the problem body for err. Validation failures map
// to 400 with one ErrorDetail per rejected field; anything else is a 500
// whose detail is withheld from the client.
func NewErrorResponse(r *http.Request, err error) ErrorResponse {
	status := http.StatusInternalServerError
	detail := ""

	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		status = http.StatusBadRequest
		detail = err.Error()
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
		detail = err.Error()
	}

	resp := ErrorResponse{
		Type:     "about:blank",
		Title:    http.StatusText(status),
		Status:   status,
		Detail:   detail,
		Instance: r.URL.RequestURI(),
	}
	if verr != nil {
		resp.Errors = fieldDetails(verr.Fields)
	}
	return resp
}

// WriteErrorResponse writes err as application/problem+json.
func WriteErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	resp := NewErrorResponse(r, err)

	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(resp.Status)

	if encErr := json.NewEncoder(w).Encode(resp); encErr != nil {
		slog.ErrorContext(r.Context(), "failed to encode error response", slog.Any("error", encErr))
	}
}

func fieldDetails(fields map[string]string) []ErrorDetail {
	details := make([]ErrorDetail, 0, len(fields))
	for field, msg := range fields {
		details = append(details, ErrorDetail{Location: "body." + field, Message: msg})
	}
	sort.Slice(details, func(i, j int) bool { return details[i].Location < details[j].Location })
	return details
}
