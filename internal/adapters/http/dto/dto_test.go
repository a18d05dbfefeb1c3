package dto_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/projectboard/internal/adapters/http/dto"
	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
)

func TestCreateProjectRequest_People(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		body    string
		want    string
		wantErr bool
	}{
		{name: "number", body: `{"people":3}`, want: "3"},
		{name: "fractional number", body: `{"people":2.5}`, want: "2.5"},
		{name: "string", body: `{"people":"4"}`, want: "4"},
		{name: "non-numeric string", body: `{"people":"abc"}`, want: "abc"},
		{name: "absent", body: `{}`, want: ""},
		{name: "null", body: `{"people":null}`, want: ""},
		{name: "boolean", body: `{"people":true}`, wantErr: true},
		{name: "object", body: `{"people":{"n":1}}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var req dto.CreateProjectRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))

			err := req.Validate()
			if tt.wantErr {
				var verr *domain.ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Contains(t, verr.Fields, "people")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.ToInput().People)
		})
	}
}

func TestCreateProjectRequest_ToInput(t *testing.T) {
	t.Parallel()

	var req dto.CreateProjectRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"Build API","description":"Design and implement","people":3}`), &req))

	in := req.ToInput()
	assert.Equal(t, "Build API", in.Title)
	assert.Equal(t, "Design and implement", in.Description)
	assert.Equal(t, "3", in.People)
}

func TestToProjectListResponse(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 3, 1, 9, 30, 0, 0, time.FixedZone("CET", 3600))
	resp := dto.ToProjectListResponse([]project.Project{
		{ID: "a", Title: "Build API", Description: "Design and implement", People: 3, Status: project.StatusActive, CreatedAt: created},
	})

	require.Equal(t, 1, resp.Count)
	assert.Equal(t, dto.ProjectResponse{
		ID:          "a",
		Title:       "Build API",
		Description: "Design and implement",
		People:      3,
		Status:      "active",
		CreatedAt:   "2026-03-01T08:30:00Z",
	}, resp.Projects[0])

	empty, err := json.Marshal(dto.ToProjectListResponse(nil))
	require.NoError(t, err)
	assert.JSONEq(t, `{"projects":[],"count":0}`, string(empty))
}

func TestWriteErrorResponse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantFields []string
		wantDetail bool
	}{
		{
			name:       "validation error lists fields sorted",
			err:        domain.NewValidationError("people", "description"),
			wantStatus: http.StatusBadRequest,
			wantFields: []string{"body.description", "body.people"},
			wantDetail: true,
		},
		{
			name:       "bare sentinel",
			err:        domain.ErrValidation,
			wantStatus: http.StatusBadRequest,
			wantDetail: true,
		},
		{
			name:       "unknown error hides detail",
			err:        errors.New("store exploded"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/projects?x=1", http.NoBody)
			dto.WriteErrorResponse(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/problem+json", rec.Header().Get("Content-Type"))

			var body dto.ErrorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, "about:blank", body.Type)
			assert.Equal(t, http.StatusText(tt.wantStatus), body.Title)
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, "/api/v1/projects?x=1", body.Instance)
			assert.Equal(t, tt.wantDetail, body.Detail != "")

			var locations []string
			for _, d := range body.Errors {
				locations = append(locations, d.Location)
				assert.Equal(t, domain.MsgInvalidInput, d.Message)
			}
			assert.Equal(t, tt.wantFields, locations)
		})
	}
}
