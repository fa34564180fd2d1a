package service

import (
	"context"
	"errors"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type clientService struct {
	clients  repository.ClientRepo
	projects repository.ProjectRepo
}

func NewClientService(clients repository.ClientRepo, projects repository.ProjectRepo) ClientService {
	return &clientService{clients: clients, projects: projects}
}

func (s *clientService) Create(ctx context.Context, c *domain.Client) error {
	if c.ID == "" {
		c.ID = domain.NewID(domain.PrefixClient)
	}
	return s.clients.Create(ctx, c)
}

func (s *clientService) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	return s.clients.GetByID(ctx, id)
}

func (s *clientService) List(ctx context.Context) ([]*domain.Client, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	// project_count is a stored cache; recompute it from the live collection
	// so listings reflect projects added since the client record was written.
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	counts := make(map[string]int, len(clients))
	for _, p := range projects {
		counts[p.ClientID]++
	}
	for _, c := range clients {
		c.ProjectCount = counts[c.ID]
	}
	return clients, nil
}

func (s *clientService) Update(ctx context.Context, id string, patch domain.ClientPatch) error {
	c, err := s.clients.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	patch.Apply(c)
	return s.clients.Update(ctx, c)
}

func (s *clientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}
