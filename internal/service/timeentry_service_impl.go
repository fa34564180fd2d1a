package service

import (
	"context"
	"errors"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type timeEntryService struct {
	entries repository.TimeEntryRepo
	tasks   repository.TaskRepo
	users   repository.UserRepo
}

func NewTimeEntryService(entries repository.TimeEntryRepo, tasks repository.TaskRepo, users repository.UserRepo) TimeEntryService {
	return &timeEntryService{entries: entries, tasks: tasks, users: users}
}

func (s *timeEntryService) Create(ctx context.Context, te *domain.TimeEntry) error {
	if te.ID == "" {
		te.ID = domain.NewID(domain.PrefixTimeEntry)
	}
	if te.TaskTitle == "" && te.TaskID != "" {
		if t, err := s.tasks.GetByID(ctx, te.TaskID); err == nil {
			te.TaskTitle = t.Title
			if te.ProjectName == "" {
				te.ProjectName = t.ProjectName
			}
		}
	}
	if te.UserName == "" && te.UserID != "" {
		if u, err := s.users.GetByID(ctx, te.UserID); err == nil {
			te.UserName = u.Name
		}
	}
	return s.entries.Create(ctx, te)
}

func (s *timeEntryService) GetByID(ctx context.Context, id string) (*domain.TimeEntry, error) {
	return s.entries.GetByID(ctx, id)
}

func (s *timeEntryService) List(ctx context.Context) ([]*domain.TimeEntry, error) {
	return s.entries.List(ctx)
}

func (s *timeEntryService) ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error) {
	return s.entries.ListByTask(ctx, taskID)
}

func (s *timeEntryService) ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error) {
	return s.entries.ListByUser(ctx, userID)
}

func (s *timeEntryService) Update(ctx context.Context, id string, patch domain.TimeEntryPatch) error {
	te, err := s.entries.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	patch.Apply(te)
	return s.entries.Update(ctx, te)
}

func (s *timeEntryService) Delete(ctx context.Context, id string) error {
	return s.entries.Delete(ctx, id)
}
