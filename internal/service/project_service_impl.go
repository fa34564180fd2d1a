package service

import (
	"context"
	"errors"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
	clients  repository.ClientRepo
}

func NewProjectService(projects repository.ProjectRepo, clients repository.ClientRepo) ProjectService {
	return &projectService{projects: projects, clients: clients}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	if p.ID == "" {
		p.ID = domain.NewID(domain.PrefixProject)
	}
	if p.Status == "" {
		p.Status = domain.ProjectActivo
	}
	if p.ClientName == "" && p.ClientID != "" {
		if c, err := s.clients.GetByID(ctx, p.ClientID); err == nil {
			p.ClientName = c.Name
		}
	}
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.projects.GetByID(ctx, id)
}

func (s *projectService) List(ctx context.Context) ([]*domain.Project, error) {
	return s.projects.List(ctx)
}

func (s *projectService) ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error) {
	return s.projects.ListByClient(ctx, clientID)
}

func (s *projectService) ListForUser(ctx context.Context, userID string) ([]*domain.Project, error) {
	all, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	var out []*domain.Project
	for _, p := range all {
		if p.IsAssignedTo(userID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch domain.ProjectPatch) error {
	p, err := s.projects.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	patch.Apply(p)
	// Re-resolve the cached client name when the patch moved the project to
	// another client without naming it.
	if patch.ClientID != nil && patch.ClientName == nil {
		if c, err := s.clients.GetByID(ctx, p.ClientID); err == nil {
			p.ClientName = c.Name
		}
	}
	return s.projects.Update(ctx, p)
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	return s.projects.Delete(ctx, id)
}
