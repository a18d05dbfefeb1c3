package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/platform/logging"
)

// maxJSONBodyBytes caps request bodies at 64 KiB; a project is three short
// fields.
const maxJSONBodyBytes = 64 << 10

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.FromContext(r.Context()).ErrorContext(r.Context(), "failed to encode response", "error", err)
	}
}

type validatable interface {
	Validate() error
}

// decodeAndValidate decodes the body into dst and runs its Validate. On
// failure it writes the problem response and returns false.
func decodeAndValidate[T validatable](w http.ResponseWriter, r *http.Request, dst T) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		dto.WriteErrorResponse(w, r, &domain.ValidationError{
			Fields: map[string]string{"body": "invalid JSON"},
		})
		return false
	}
	if err := dst.Validate(); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return false
	}
	return true
}
