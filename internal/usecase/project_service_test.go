package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"researchtracker/internal/domain"
)

type fakeProjectRepo struct {
	projects map[string]domain.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]domain.Project)}
}

func (r *fakeProjectRepo) Create(ctx context.Context, project domain.Project) error {
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	project, ok := r.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &project, nil
}

func (r *fakeProjectRepo) List(ctx context.Context) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(r.projects))
	for _, project := range r.projects {
		out = append(out, project)
	}
	return out, nil
}

func (r *fakeProjectRepo) Update(ctx context.Context, project domain.Project) error {
	if _, ok := r.projects[project.ID]; !ok {
		return domain.ErrNotFound
	}
	r.projects[project.ID] = project
	return nil
}

func (r *fakeProjectRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.projects[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.projects, id)
	return nil
}

func (r *fakeProjectRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.projects)), nil
}

var testActor = domain.Principal{Subject: "pi-1", Username: "alice", Role: domain.RolePI}

func TestCreateProjectDefaults(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	project, err := svc.Create(context.Background(), ProjectInput{Title: "Coral Genomics"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Status != domain.StatusPlanning {
		t.Fatalf("status = %s, want PLANNING", project.Status)
	}
	if project.PIID != "pi-1" {
		t.Fatalf("piID = %s, want the acting principal", project.PIID)
	}
	if project.ID == "" {
		t.Fatalf("expected a generated id")
	}
}

func TestCreateProjectExplicitStatus(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	project, err := svc.Create(context.Background(), ProjectInput{Title: "X", Status: "ACTIVE"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if project.Status != domain.StatusActive {
		t.Fatalf("status = %s, want ACTIVE", project.Status)
	}

	if _, err := svc.Create(context.Background(), ProjectInput{Title: "X", Status: "BOGUS"}, testActor); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("bogus status: err = %v, want ErrInvalidArgument", err)
	}
}

func TestCreateProjectRequiresTitle(t *testing.T) {
	svc := NewProjectService(newFakeProjectRepo())

	if _, err := svc.Create(context.Background(), ProjectInput{Title: "   "}, testActor); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("err = %v, want ErrInvalidArgument", err)
	}
}

func TestUpdateProjectKeepsStatusWhenOmitted(t *testing.T) {
	repo := newFakeProjectRepo()
	svc := NewProjectService(repo)

	created, err := svc.Create(context.Background(), ProjectInput{Title: "X", Status: "ACTIVE"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, ProjectInput{Title: "Renamed"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Status != domain.StatusActive {
		t.Fatalf("status = %s, an omitted status must keep the current one", updated.Status)
	}
	if updated.Title != "Renamed" {
		t.Fatalf("title = %s, want Renamed", updated.Title)
	}
	if updated.PIID != "pi-1" {
		t.Fatalf("update must not reassign the PI")
	}
}

func TestUpdateStatus(t *testing.T) {
	repo := newFakeProjectRepo()
	clock := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	svc := NewProjectService(repo)
	svc.Clock = func() time.Time { return clock }

	created, err := svc.Create(context.Background(), ProjectInput{Title: "X"}, testActor)
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	clock = clock.Add(time.Hour)
	updated, err := svc.UpdateStatus(context.Background(), created.ID, "ON_HOLD")
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.Status != domain.StatusOnHold {
		t.Fatalf("status = %s, want ON_HOLD", updated.Status)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatalf("updatedAt must advance on status change")
	}

	if _, err := svc.UpdateStatus(context.Background(), created.ID, "NOPE"); !errors.Is(err, domain.ErrInvalidArgument) {
		t.Fatalf("invalid status: err = %v", err)
	}
	if _, err := svc.UpdateStatus(context.Background(), "missing", "ACTIVE"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("missing project: err = %v", err)
	}
}

func TestMilestoneServiceChecksProject(t *testing.T) {
	projects := newFakeProjectRepo()
	milestones := &fakeMilestoneRepo{items: make(map[string]domain.Milestone)}
	svc := NewMilestoneService(milestones, projects)

	_, err := svc.Add(context.Background(), "missing", MilestoneInput{Title: "M"}, testActor)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("add to missing project: err = %v, want ErrNotFound", err)
	}

	projects.projects["p1"] = domain.Project{ID: "p1", Title: "X"}
	milestone, err := svc.Add(context.Background(), "p1", MilestoneInput{Title: "Collect samples"}, testActor)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if milestone.ProjectID != "p1" {
		t.Fatalf("projectID = %s, want p1", milestone.ProjectID)
	}
	if milestone.CreatedByID != "pi-1" {
		t.Fatalf("createdBy = %s, want the acting principal", milestone.CreatedByID)
	}
}

type fakeMilestoneRepo struct {
	items map[string]domain.Milestone
}

func (r *fakeMilestoneRepo) Create(ctx context.Context, milestone domain.Milestone) error {
	r.items[milestone.ID] = milestone
	return nil
}

func (r *fakeMilestoneRepo) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	milestone, ok := r.items[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &milestone, nil
}

func (r *fakeMilestoneRepo) ListByProject(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	out := make([]domain.Milestone, 0)
	for _, milestone := range r.items {
		if milestone.ProjectID == projectID {
			out = append(out, milestone)
		}
	}
	return out, nil
}

func (r *fakeMilestoneRepo) Update(ctx context.Context, milestone domain.Milestone) error {
	if _, ok := r.items[milestone.ID]; !ok {
		return domain.ErrNotFound
	}
	r.items[milestone.ID] = milestone
	return nil
}

func (r *fakeMilestoneRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.items, id)
	return nil
}

func (r *fakeMilestoneRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.items)), nil
}
