package service

import (
	"context"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

type ClientService interface {
	Create(ctx context.Context, c *domain.Client) error
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	List(ctx context.Context) ([]*domain.Client, error)
	Update(ctx context.Context, id string, patch domain.ClientPatch) error
	Delete(ctx context.Context, id string) error
}

type ProjectService interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context) ([]*domain.Project, error)
	ListByClient(ctx context.Context, clientID string) ([]*domain.Project, error)
	ListForUser(ctx context.Context, userID string) ([]*domain.Project, error)
	Update(ctx context.Context, id string, patch domain.ProjectPatch) error
	Delete(ctx context.Context, id string) error
}

type TaskService interface {
	Create(ctx context.Context, t *domain.Task) error
	GetByID(ctx context.Context, id string) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, patch domain.TaskPatch) error
	Delete(ctx context.Context, id string) error
	// AddProgressUpdate appends a dated entry to the task's progress history
	// and mirrors the content into the task's avance field.
	AddProgressUpdate(ctx context.Context, taskID, content, author string) error
}

type TimeEntryService interface {
	Create(ctx context.Context, te *domain.TimeEntry) error
	GetByID(ctx context.Context, id string) (*domain.TimeEntry, error)
	List(ctx context.Context) ([]*domain.TimeEntry, error)
	ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.TimeEntry, error)
	Update(ctx context.Context, id string, patch domain.TimeEntryPatch) error
	Delete(ctx context.Context, id string) error
}

type NotificationService interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListForRole(ctx context.Context, role domain.UserRole) ([]*domain.Notification, error)
	UnreadCount(ctx context.Context, role domain.UserRole) (int, error)
	MarkRead(ctx context.Context, id string) error
	MarkAllRead(ctx context.Context) error
}

type UserService interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Lawyers(ctx context.Context) ([]*domain.User, error)
	// Login resolves the demo account for a role: the first user in the
	// directory carrying that role.
	Login(ctx context.Context, role domain.UserRole) (*domain.User, error)
}

type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
	UserSummary(ctx context.Context, userID string) (*UserSummary, error)
}
