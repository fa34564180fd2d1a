package repository

import (
	"context"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

type ClientRepo interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, c *domain.Client) error
	Delete(ctx context.Context, id string) error
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id string) error
}

type TaskRepo interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id string) error
	// AddUpdate appends a progress update to the task's history and
	// overwrites the task's scalar avance with the update content, in one
	// transaction. Silent no-op when the task does not exist.
	AddUpdate(ctx context.Context, taskID string, u domain.ProgressUpdate) error
}

type TimeEntryRepo interface {
	Create(ctx context.Context, te *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context) ([]*domain.TimeEntry, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, te *domain.TimeEntry) error
	Delete(ctx context.Context, id string) error
}

type NotificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) error
	List(ctx context.Context) ([]*domain.Notification, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type UserRepo interface {
	Create(ctx context.Context, u *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]*domain.User, error)
}
