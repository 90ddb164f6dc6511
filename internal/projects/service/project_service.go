package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stai-tuned/gcf-flood-backend/internal/projects/domain"
)

// Store is the persistence surface the service needs. The Redis repo
// implements it; tests may substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, p domain.Project) (*domain.Project, error)
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	Update(ctx context.Context, id string, patch domain.Project) (*domain.Project, error)
	SetGeneratedPlan(ctx context.Context, id, plan string) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	ResetDeletedSamples(ctx context.Context) error
}

// PlanGenerator produces a markdown plan from a project's attached files.
type PlanGenerator interface {
	Generate(p domain.Project) string
}

// ProjectService handles project business logic: submission validation
// and store orchestration. With strictCategories set, submissions must
// cover every required document category; otherwise only name, number,
// and per-file size are checked.
type ProjectService struct {
	store            Store
	plans            PlanGenerator
	strictCategories bool
}

func NewProjectService(store Store, plans PlanGenerator, strictCategories bool) *ProjectService {
	return &ProjectService{store: store, plans: plans, strictCategories: strictCategories}
}

// ValidationError reports every problem with a submission at once, so
// the UI can list the messages and scroll to the first missing category.
type ValidationError struct {
	Messages          []string
	MissingCategories []domain.RequiredCategory
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid submission: %s", strings.Join(e.Messages, "; "))
}

// validateSubmission checks name and number, and in strict mode the
// required-category contract: at least one file in each of the seven
// document kinds. Oversized files are not a validation failure; they
// are dropped by FilterOversized before this runs.
func (s *ProjectService) validateSubmission(p domain.Project) error {
	var msgs []string

	if strings.TrimSpace(p.Name) == "" {
		msgs = append(msgs, "Please enter project name.")
	}
	if strings.TrimSpace(p.Number) == "" {
		msgs = append(msgs, "Please enter project number.")
	}

	var missing []domain.RequiredCategory
	if s.strictCategories {
		uploaded := make(map[string]bool, len(p.Files))
		for _, f := range p.Files {
			uploaded[f.Category] = true
		}
		for _, c := range domain.RequiredCategories {
			if !uploaded[c.Key] {
				missing = append(missing, c)
				msgs = append(msgs, fmt.Sprintf("Missing required document: %s", c.Label))
			}
		}
	}

	if len(msgs) > 0 {
		return &ValidationError{Messages: msgs, MissingCategories: missing}
	}
	return nil
}

// FilterOversized drops files over the size limit and returns the
// rejected names. Valid files in the same batch still proceed.
func FilterOversized(files []domain.AttachedFile) (kept []domain.AttachedFile, rejected []string) {
	kept = make([]domain.AttachedFile, 0, len(files))
	for _, f := range files {
		if f.Size > domain.MaxFileSize {
			rejected = append(rejected, f.Name)
			continue
		}
		kept = append(kept, f)
	}
	return kept, rejected
}

// sizeWarnings renders the rejection message for each dropped file.
func sizeWarnings(rejected []string) []string {
	warnings := make([]string, 0, len(rejected))
	for _, name := range rejected {
		warnings = append(warnings, fmt.Sprintf("%s exceeds 10MB limit.", name))
	}
	return warnings
}

// Create persists a new project. Files over the size limit are dropped
// from the batch and reported as warnings; the remaining files and the
// record itself still persist.
func (s *ProjectService) Create(ctx context.Context, p domain.Project) (*domain.Project, []string, error) {
	kept, rejected := FilterOversized(p.Files)
	p.Files = kept
	if err := s.validateSubmission(p); err != nil {
		return nil, nil, err
	}
	created, err := s.store.Create(ctx, p)
	if err != nil {
		return nil, nil, err
	}
	return created, sizeWarnings(rejected), nil
}

// Update replaces an existing project's fields, with the same oversized
// handling as Create. A missing id is ErrNotFound; updates never insert.
func (s *ProjectService) Update(ctx context.Context, id string, patch domain.Project) (*domain.Project, []string, error) {
	kept, rejected := FilterOversized(patch.Files)
	patch.Files = kept
	if err := s.validateSubmission(patch); err != nil {
		return nil, nil, err
	}
	updated, err := s.store.Update(ctx, id, patch)
	if err != nil {
		return nil, nil, err
	}
	return updated, sizeWarnings(rejected), nil
}

func (s *ProjectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	return s.store.Get(ctx, id)
}

func (s *ProjectService) List(ctx context.Context) ([]domain.Project, error) {
	return s.store.List(ctx)
}

func (s *ProjectService) Delete(ctx context.Context, id string) error {
	return s.store.Delete(ctx, id)
}

func (s *ProjectService) ResetDeletedSamples(ctx context.Context) error {
	return s.store.ResetDeletedSamples(ctx)
}

// GeneratePlan runs the plan generator over the project's files and
// persists the result as the project's generated plan.
func (s *ProjectService) GeneratePlan(ctx context.Context, id string) (*domain.Project, error) {
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	plan := s.plans.Generate(*p)
	return s.store.SetGeneratedPlan(ctx, id, plan)
}
