package testutil

import (
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
)

// Builders for test records. Every builder assigns a fresh prefixed id and
// sensible defaults; options override individual fields.

type ClientOption func(*domain.Client)

func WithClientEmail(email string) ClientOption {
	return func(c *domain.Client) { c.Email = email }
}

func NewTestClient(name string, opts ...ClientOption) *domain.Client {
	c := &domain.Client{
		ID:          domain.NewID(domain.PrefixClient),
		Name:        name,
		ContactName: "Lic. Contacto",
		Email:       "contacto@cliente.mx",
		Phone:       "+52 81 0000 0000",
		Address:     "Monterrey, NL",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type ProjectOption func(*domain.Project)

func WithProjectClient(c *domain.Client) ProjectOption {
	return func(p *domain.Project) {
		p.ClientID = c.ID
		p.ClientName = c.Name
	}
}

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) { p.Status = s }
}

func WithProjectPriority(pr domain.Priority) ProjectOption {
	return func(p *domain.Project) { p.Priority = pr }
}

func WithProjectCategory(c domain.Category) ProjectOption {
	return func(p *domain.Project) { p.Category = c }
}

func WithProjectDueDate(d time.Time) ProjectOption {
	return func(p *domain.Project) { p.DueDate = d }
}

func WithProjectAssignees(ids ...string) ProjectOption {
	return func(p *domain.Project) { p.AssignedTo = ids }
}

func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        domain.NewID(domain.PrefixProject),
		Name:      name,
		ClientID:  "c-unknown",
		Category:  domain.CategoryLitigioFiscal,
		Status:    domain.ProjectActivo,
		Priority:  domain.PriorityMedia,
		DueDate:   now.AddDate(0, 1, 0),
		StartDate: now.AddDate(0, -1, 0),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

type TaskOption func(*domain.Task)

func WithTaskProject(p *domain.Project) TaskOption {
	return func(t *domain.Task) {
		t.ProjectID = p.ID
		t.ProjectName = p.Name
	}
}

func WithTaskStatus(s domain.TaskStatus) TaskOption {
	return func(t *domain.Task) { t.Status = s }
}

func WithTaskPriority(pr domain.Priority) TaskOption {
	return func(t *domain.Task) { t.Priority = pr }
}

func WithTaskAssignee(userID, userName string) TaskOption {
	return func(t *domain.Task) {
		t.AssignedTo = userID
		t.AssignedToName = userName
	}
}

func WithTaskDueDate(d time.Time) TaskOption {
	return func(t *domain.Task) { t.DueDate = d }
}

func WithTaskAlerts(alerts ...domain.TaskAlert) TaskOption {
	return func(t *domain.Task) { t.Alerts = alerts }
}

func NewTestTask(title string, opts ...TaskOption) *domain.Task {
	t := &domain.Task{
		ID:        domain.NewID(domain.PrefixTask),
		Title:     title,
		ProjectID: "p-unknown",
		Priority:  domain.PriorityMedia,
		Status:    domain.TaskPendiente,
		DueDate:   time.Now().UTC().AddDate(0, 0, 7),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

type TimeEntryOption func(*domain.TimeEntry)

func WithEntryTask(t *domain.Task) TimeEntryOption {
	return func(te *domain.TimeEntry) {
		te.TaskID = t.ID
		te.TaskTitle = t.Title
		te.ProjectName = t.ProjectName
	}
}

func WithEntryUser(userID, userName string) TimeEntryOption {
	return func(te *domain.TimeEntry) {
		te.UserID = userID
		te.UserName = userName
	}
}

func WithEntryHours(hours float64, billable bool) TimeEntryOption {
	return func(te *domain.TimeEntry) {
		te.Hours = hours
		te.Billable = billable
	}
}

func NewTestTimeEntry(opts ...TimeEntryOption) *domain.TimeEntry {
	te := &domain.TimeEntry{
		ID:       domain.NewID(domain.PrefixTimeEntry),
		TaskID:   "t-unknown",
		UserID:   "u-unknown",
		Date:     time.Now().UTC(),
		Hours:    1,
		Billable: true,
	}
	for _, opt := range opts {
		opt(te)
	}
	return te
}

type NotificationOption func(*domain.Notification)

func WithNotificationRead(read bool) NotificationOption {
	return func(n *domain.Notification) { n.Read = read }
}

func WithNotificationRole(role domain.UserRole) NotificationOption {
	return func(n *domain.Notification) { n.TargetRole = role }
}

func WithNotificationLink(linkTo string) NotificationOption {
	return func(n *domain.Notification) { n.LinkTo = linkTo }
}

func NewTestNotification(title string, opts ...NotificationOption) *domain.Notification {
	n := &domain.Notification{
		ID:      domain.NewID(domain.PrefixNotification),
		Type:    domain.NotificationRecordatorio,
		Title:   title,
		Message: "mensaje de prueba",
		Date:    time.Now().UTC(),
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

func NewTestUser(name string, role domain.UserRole) *domain.User {
	return &domain.User{
		ID:     domain.NewID(domain.PrefixUser),
		Name:   name,
		Email:  "user@lexpro.mx",
		Role:   role,
		Avatar: "XX",
	}
}
