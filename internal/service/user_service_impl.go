package service

import (
	"context"
	"fmt"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

type userService struct {
	users repository.UserRepo
}

func NewUserService(users repository.UserRepo) UserService {
	return &userService{users: users}
}

func (s *userService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.users.List(ctx)
}

func (s *userService) Lawyers(ctx context.Context) ([]*domain.User, error) {
	return s.users.ListByRole(ctx, domain.RoleAbogado)
}

func (s *userService) Login(ctx context.Context, role domain.UserRole) (*domain.User, error) {
	matches, err := s.users.ListByRole(ctx, role)
	if err != nil {
		return nil, err
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no user with role %s: %w", role, domain.ErrNotFound)
	}
	return matches[0], nil
}
