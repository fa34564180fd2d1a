package service

import (
	"context"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
)

// DashboardStats aggregates the firm-wide figures shown on the dashboard.
type DashboardStats struct {
	TotalProjects  int
	ActiveProjects int
	PendingTasks   int
	OverdueTasks   int
	CriticalTasks  int
	TotalClients   int
	// WeekHours covers time entries dated within the last seven days.
	WeekHours         float64
	WeekBillableHours float64
	ByDivision        map[domain.Division]int
	ByCategory        map[domain.Category]int
	Workloads         []LawyerWorkload
	UpcomingTasks     []*domain.Task
	// ActiveByDue holds the active projects ordered by due date.
	ActiveByDue []*domain.Project
}

// LawyerWorkload is one row of the per-lawyer distribution table.
type LawyerWorkload struct {
	User         *domain.User
	PendingTasks int
	WeekHours    float64
}

// UserSummary aggregates one lawyer's personal panel figures.
type UserSummary struct {
	ActiveProjects int
	PendingTasks   int
	CompletedTasks int
	OverdueTasks   int
	TotalHours     float64
	BillableHours  float64
}

type statsService struct {
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	clients  repository.ClientRepo
	entries  repository.TimeEntryRepo
	users    repository.UserRepo
	now      func() time.Time
}

func NewStatsService(
	projects repository.ProjectRepo,
	tasks repository.TaskRepo,
	clients repository.ClientRepo,
	entries repository.TimeEntryRepo,
	users repository.UserRepo,
) StatsService {
	return &statsService{
		projects: projects,
		tasks:    tasks,
		clients:  clients,
		entries:  entries,
		users:    users,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	clients, err := s.clients.List(ctx)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.List(ctx)
	if err != nil {
		return nil, err
	}
	lawyers, err := s.users.ListByRole(ctx, domain.RoleAbogado)
	if err != nil {
		return nil, err
	}

	now := s.now()
	stats := &DashboardStats{
		TotalProjects: len(projects),
		TotalClients:  len(clients),
		ByDivision:    make(map[domain.Division]int),
		ByCategory:    make(map[domain.Category]int),
	}
	for _, p := range projects {
		if p.Status == domain.ProjectActivo {
			stats.ActiveProjects++
			stats.ActiveByDue = append(stats.ActiveByDue, p)
		}
		stats.ByDivision[p.Division()]++
		stats.ByCategory[p.Category]++
	}
	domain.SortProjectsByDueDate(stats.ActiveByDue, false)

	pendingByUser := make(map[string]int)
	for _, t := range tasks {
		open := t.Status == domain.TaskPendiente || t.Status == domain.TaskEnProgreso
		if open {
			stats.PendingTasks++
			pendingByUser[t.AssignedTo]++
			if domain.Overdue(now, t.DueDate) {
				stats.OverdueTasks++
			}
			if t.Priority == domain.PriorityCritica {
				stats.CriticalTasks++
			}
			stats.UpcomingTasks = append(stats.UpcomingTasks, t)
		}
	}
	domain.SortTasksByDueDate(stats.UpcomingTasks, false)

	weekStart := now.AddDate(0, 0, -7)
	hoursByUser := make(map[string]float64)
	for _, te := range entries {
		if te.Date.Before(weekStart) {
			continue
		}
		stats.WeekHours += te.Hours
		if te.Billable {
			stats.WeekBillableHours += te.Hours
		}
		hoursByUser[te.UserID] += te.Hours
	}

	for _, u := range lawyers {
		stats.Workloads = append(stats.Workloads, LawyerWorkload{
			User:         u,
			PendingTasks: pendingByUser[u.ID],
			WeekHours:    hoursByUser[u.ID],
		})
	}
	return stats, nil
}

func (s *statsService) UserSummary(ctx context.Context, userID string) (*UserSummary, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	entries, err := s.entries.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	sum := &UserSummary{}
	for _, p := range projects {
		if p.IsAssignedTo(userID) && p.Status == domain.ProjectActivo {
			sum.ActiveProjects++
		}
	}
	for _, t := range tasks {
		switch t.Status {
		case domain.TaskCompletada:
			sum.CompletedTasks++
		case domain.TaskPendiente, domain.TaskEnProgreso:
			sum.PendingTasks++
			if domain.Overdue(now, t.DueDate) {
				sum.OverdueTasks++
			}
		}
	}
	sum.TotalHours = domain.SumHours(entries)
	sum.BillableHours = domain.SumBillableHours(entries)
	return sum, nil
}
