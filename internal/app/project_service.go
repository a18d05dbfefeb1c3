// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"log/slog"
	"math"
	"slices"

	"go.opentelemetry.io/otel/metric"

	"github.com/jsamuelsen11/projectboard/internal/domain"
	"github.com/jsamuelsen11/projectboard/internal/domain/project"
	"github.com/jsamuelsen11/projectboard/internal/domain/validation"
	"github.com/jsamuelsen11/projectboard/internal/platform/telemetry"
	"github.com/jsamuelsen11/projectboard/internal/ports"
)

// Compile-time check that ProjectService implements ports.ProjectService.
var _ ports.ProjectService = (*ProjectService)(nil)

// Form field names, shared with the inbound adapters.
const (
	FieldTitle       = "title"
	FieldDescription = "description"
	FieldPeople      = "people"
	fieldStatus      = "status"
)

// FormRules holds the bounds applied to a project submission.
type FormRules struct {
	DescriptionMinLength int
	PeopleMin            int
	PeopleMax            int
}

// DefaultFormRules returns the stock bounds: a description of at least five
// characters and a team of one to six people.
func DefaultFormRules() FormRules {
	return FormRules{
		DescriptionMinLength: 5,
		PeopleMin:            1,
		PeopleMax:            6,
	}
}

// ProjectService implements ports.ProjectService. It turns raw form values
// into validation rules, runs them, and only touches the store when every
// rule passes.
type ProjectService struct {
	store   ports.ProjectStore
	rules   FormRules
	metrics *telemetry.Metrics
	logger  *slog.Logger
}

// NewProjectService creates a ProjectService backed by the given store.
// A nil logger is replaced by a no-op logger; nil metrics disable recording.
func NewProjectService(store ports.ProjectStore, rules FormRules, metrics *telemetry.Metrics, logger *slog.Logger) *ProjectService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &ProjectService{
		store:   store,
		rules:   rules,
		metrics: metrics,
		logger:  logger,
	}
}

// SubmitProject validates the submission and adds it to the store.
func (s *ProjectService) SubmitProject(ctx context.Context, in ports.ProjectInput) (*project.Project, error) {
	people, rejected := s.check(in)
	if len(rejected) > 0 {
		s.logger.WarnContext(ctx, "project submission rejected",
			slog.String("operation", "SubmitProject"),
			slog.Any("fields", rejected),
		)
		if s.metrics != nil {
			for _, field := range rejected {
				s.metrics.SubmissionsRejected.Add(ctx, 1,
					metric.WithAttributes(telemetry.AttrField.String(field)))
			}
		}
		return nil, domain.NewValidationError(rejected...)
	}

	p := s.store.AddProject(ctx, in.Title, in.Description, people)
	s.logger.InfoContext(ctx, "project submitted",
		slog.String("project_id", p.ID),
		slog.Int("people", p.People),
	)
	return &p, nil
}

// ListProjects returns stored projects, optionally filtered by status.
func (s *ProjectService) ListProjects(ctx context.Context, status project.Status) ([]project.Project, error) {
	s.logger.DebugContext(ctx, "listing projects", slog.String("status", status.String()))

	all := s.store.Projects()
	if status == "" {
		return all, nil
	}
	if !status.IsValid() {
		return nil, domain.NewValidationError(fieldStatus)
	}
	return project.Filter(all, status), nil
}

// Check runs the submission rules without touching the store and returns the
// names of the rejected fields, in form order.
func (s *ProjectService) Check(in ports.ProjectInput) []string {
	_, rejected := s.check(in)
	return rejected
}

func (s *ProjectService) check(in ports.ProjectInput) (int, []string) {
	people := validation.ParseNumber(in.People)

	rules := []struct {
		field string
		rule  validation.Rule
	}{
		{
			field: FieldTitle,
			rule: validation.Rule{
				Value:    validation.Text(in.Title),
				Required: true,
			},
		},
		{
			field: FieldDescription,
			rule: validation.Rule{
				Value:     validation.Text(in.Description),
				Required:  true,
				MinLength: validation.Bound(s.rules.DescriptionMinLength),
			},
		},
		{
			field: FieldPeople,
			rule: validation.Rule{
				Value:    validation.Number(people),
				Required: true,
				Min:      validation.Bound(float64(s.rules.PeopleMin)),
				Max:      validation.Bound(float64(s.rules.PeopleMax)),
			},
		},
	}

	var rejected []string
	for _, r := range rules {
		if !validation.Validate(r.rule) {
			rejected = append(rejected, r.field)
		}
	}

	// Team size is a head count; fractional values pass the range check but
	// cannot be stored.
	if people != math.Trunc(people) && !slices.Contains(rejected, FieldPeople) {
		rejected = append(rejected, FieldPeople)
	}

	return int(people), rejected
}
