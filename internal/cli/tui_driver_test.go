package cli

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/nav"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
	"github.com/DiegoRozo23/lexpro-abogados/internal/seed"
	"github.com/DiegoRozo23/lexpro-abogados/internal/service"
	"github.com/DiegoRozo23/lexpro-abogados/internal/teatest"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
)

// newTestApp wires a full App over a seeded in-memory store.
func newTestApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)

	clientRepo := repository.NewSQLiteClientRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	timeEntryRepo := repository.NewSQLiteTimeEntryRepo(database)
	notificationRepo := repository.NewSQLiteNotificationRepo(database)
	userRepo := repository.NewSQLiteUserRepo(database)

	if err := seed.Demo(context.Background(), seed.Stores{
		Users:         userRepo,
		Clients:       clientRepo,
		Projects:      projectRepo,
		Tasks:         taskRepo,
		TimeEntries:   timeEntryRepo,
		Notifications: notificationRepo,
	}); err != nil {
		t.Fatalf("seeding demo data: %v", err)
	}

	return &App{
		Clients:       service.NewClientService(clientRepo, projectRepo),
		Projects:      service.NewProjectService(projectRepo, clientRepo),
		Tasks:         service.NewTaskService(taskRepo, projectRepo, userRepo),
		TimeEntries:   service.NewTimeEntryService(timeEntryRepo, taskRepo, userRepo),
		Notifications: service.NewNotificationService(notificationRepo),
		Users:         service.NewUserService(userRepo),
		Stats:         service.NewStatsService(projectRepo, taskRepo, clientRepo, timeEntryRepo, userRepo),
	}
}

// TestDriver wraps teatest.Driver with inspection methods for appModel
// internals (view stack, nav frames, shared state).
type TestDriver struct {
	*teatest.Driver
}

// NewTestDriver constructs the appModel over a seeded App, sets terminal
// size, and drains Init(). The driver starts on the login screen.
func NewTestDriver(t *testing.T, app *App) *TestDriver {
	t.Helper()

	m := newAppModel(app)
	d := teatest.New(t, m, teatest.WithSize(120, 40))
	d.DrainInit()

	return &TestDriver{Driver: d}
}

// LoginAdmin skips the demo credential fields and selects the admin role.
func (d *TestDriver) LoginAdmin() {
	d.T.Helper()
	d.PressEnter() // email -> password
	d.PressEnter() // password -> role rows
	d.PressEnter() // Administrador
}

// LoginLawyer skips the demo credential fields and selects the lawyer role.
func (d *TestDriver) LoginLawyer() {
	d.T.Helper()
	d.PressEnter()
	d.PressEnter()
	d.PressDown()
	d.PressEnter()
}

func (d *TestDriver) appModel() appModel {
	return d.Model.(appModel)
}

// ActiveViewID returns the ViewID of the top view on the stack.
func (d *TestDriver) ActiveViewID() ViewID {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ViewID(-1)
	}
	return v.ID()
}

// ActiveViewTitle returns the Title() of the top view on the stack.
func (d *TestDriver) ActiveViewTitle() string {
	m := d.appModel()
	v := m.activeView()
	if v == nil {
		return ""
	}
	return v.Title()
}

// ViewStackLen returns the number of views on the stack.
func (d *TestDriver) ViewStackLen() int {
	return len(d.appModel().views)
}

// ViewStackIDs returns the ViewIDs of all views on the stack, bottom to top.
func (d *TestDriver) ViewStackIDs() []ViewID {
	m := d.appModel()
	ids := make([]ViewID, len(m.views))
	for i, v := range m.views {
		ids[i] = v.ID()
	}
	return ids
}

// Frames returns the nav history, root first.
func (d *TestDriver) Frames() []nav.Frame {
	return d.appModel().stack.Frames()
}

// State returns the shared state for inspection.
func (d *TestDriver) State() *SharedState {
	return d.appModel().state
}

// IsQuitting reports whether the app has signaled a quit, either via the
// model's quitting flag or the driver seeing tea.QuitMsg.
func (d *TestDriver) IsQuitting() bool {
	return d.appModel().quitting || d.Quitting
}
