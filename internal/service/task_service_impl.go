package service

import (
	"context"
	"errors"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	users    repository.UserRepo
	now      func() time.Time
}

func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo, users repository.UserRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects, users: users, now: func() time.Time { return time.Now().UTC() }}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	if t.ID == "" {
		t.ID = domain.NewID(domain.PrefixTask)
	}
	if t.Status == "" {
		t.Status = domain.TaskPendiente
	}
	if t.ProjectName == "" && t.ProjectID != "" {
		if p, err := s.projects.GetByID(ctx, t.ProjectID); err == nil {
			t.ProjectName = p.Name
		}
	}
	if t.AssignedToName == "" && t.AssignedTo != "" {
		if u, err := s.users.GetByID(ctx, t.AssignedTo); err == nil {
			t.AssignedToName = u.Name
		}
	}
	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	return s.tasks.GetByID(ctx, id)
}

func (s *taskService) List(ctx context.Context) ([]*domain.Task, error) {
	return s.tasks.List(ctx)
}

func (s *taskService) ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error) {
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *taskService) ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, userID)
}

func (s *taskService) Update(ctx context.Context, id string, patch domain.TaskPatch) error {
	t, err := s.tasks.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	patch.Apply(t)
	if patch.ProjectID != nil && patch.ProjectName == nil {
		if p, err := s.projects.GetByID(ctx, t.ProjectID); err == nil {
			t.ProjectName = p.Name
		}
	}
	if patch.AssignedTo != nil && patch.AssignedToName == nil {
		if u, err := s.users.GetByID(ctx, t.AssignedTo); err == nil {
			t.AssignedToName = u.Name
		}
	}
	return s.tasks.Update(ctx, t)
}

func (s *taskService) Delete(ctx context.Context, id string) error {
	return s.tasks.Delete(ctx, id)
}

func (s *taskService) AddProgressUpdate(ctx context.Context, taskID, content, author string) error {
	u := domain.ProgressUpdate{
		ID:      domain.NewID(domain.PrefixProgressUpdate),
		Date:    s.now(),
		Content: content,
		Author:  author,
	}
	return s.tasks.AddUpdate(ctx, taskID, u)
}
