package service

import (
	"context"
	"testing"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statsFixture struct {
	svc      *statsService
	projects repository.ProjectRepo
	tasks    repository.TaskRepo
	clients  repository.ClientRepo
	entries  repository.TimeEntryRepo
	users    repository.UserRepo
}

func newStatsFixture(t *testing.T) statsFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := statsFixture{
		projects: repository.NewSQLiteProjectRepo(db),
		tasks:    repository.NewSQLiteTaskRepo(db),
		clients:  repository.NewSQLiteClientRepo(db),
		entries:  repository.NewSQLiteTimeEntryRepo(db),
		users:    repository.NewSQLiteUserRepo(db),
	}
	f.svc = &statsService{
		projects: f.projects,
		tasks:    f.tasks,
		clients:  f.clients,
		entries:  f.entries,
		users:    f.users,
		now:      func() time.Time { return domain.MustDate("2026-08-31") },
	}
	return f
}

func TestStatsService_Dashboard(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	require.NoError(t, f.clients.Create(ctx, testutil.NewTestClient("Cliente Unico")))

	active := testutil.NewTestProject("Activo Fiscal",
		testutil.WithProjectCategory(domain.CategoryLitigioFiscal))
	done := testutil.NewTestProject("Cerrado Corporativo",
		testutil.WithProjectCategory(domain.CategoryContractual),
		testutil.WithProjectStatus(domain.ProjectCompletado))
	require.NoError(t, f.projects.Create(ctx, active))
	require.NoError(t, f.projects.Create(ctx, done))

	abogada := testutil.NewTestUser("Ana Garcia", domain.RoleAbogado)
	require.NoError(t, f.users.Create(ctx, abogada))

	overdue := testutil.NewTestTask("Vencida pendiente",
		testutil.WithTaskDueDate(domain.MustDate("2026-08-20")),
		testutil.WithTaskAssignee(abogada.ID, abogada.Name))
	critical := testutil.NewTestTask("Critica en progreso",
		testutil.WithTaskStatus(domain.TaskEnProgreso),
		testutil.WithTaskPriority(domain.PriorityCritica),
		testutil.WithTaskDueDate(domain.MustDate("2026-09-10")))
	closed := testutil.NewTestTask("Terminada",
		testutil.WithTaskStatus(domain.TaskCompletada))
	for _, task := range []*domain.Task{overdue, critical, closed} {
		require.NoError(t, f.tasks.Create(ctx, task))
	}

	inWeek := testutil.NewTestTimeEntry(
		testutil.WithEntryUser(abogada.ID, abogada.Name),
		testutil.WithEntryHours(4, true))
	inWeek.Date = domain.MustDate("2026-08-28")
	nonBillable := testutil.NewTestTimeEntry(testutil.WithEntryHours(2, false))
	nonBillable.Date = domain.MustDate("2026-08-29")
	old := testutil.NewTestTimeEntry(testutil.WithEntryHours(8, true))
	old.Date = domain.MustDate("2026-07-01")
	for _, te := range []*domain.TimeEntry{inWeek, nonBillable, old} {
		require.NoError(t, f.entries.Create(ctx, te))
	}

	stats, err := f.svc.Dashboard(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TotalProjects)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.TotalClients)
	assert.Equal(t, 2, stats.PendingTasks)
	assert.Equal(t, 1, stats.OverdueTasks)
	assert.Equal(t, 1, stats.CriticalTasks)
	assert.Equal(t, 6.0, stats.WeekHours)
	assert.Equal(t, 4.0, stats.WeekBillableHours)
	assert.Equal(t, 1, stats.ByDivision[domain.DivisionFiscal])
	assert.Equal(t, 1, stats.ByDivision[domain.DivisionCorporativo])
	assert.Equal(t, 1, stats.ByCategory[domain.CategoryContractual])

	// Open tasks sorted by due date, earliest first.
	require.Len(t, stats.UpcomingTasks, 2)
	assert.Equal(t, overdue.ID, stats.UpcomingTasks[0].ID)
	assert.Equal(t, critical.ID, stats.UpcomingTasks[1].ID)

	require.Len(t, stats.Workloads, 1)
	assert.Equal(t, abogada.ID, stats.Workloads[0].User.ID)
	assert.Equal(t, 1, stats.Workloads[0].PendingTasks)
	assert.Equal(t, 4.0, stats.Workloads[0].WeekHours)
}

func TestStatsService_UserSummary(t *testing.T) {
	f := newStatsFixture(t)
	ctx := context.Background()

	mine := testutil.NewTestProject("Mi Proyecto", testutil.WithProjectAssignees("u-2"))
	foreign := testutil.NewTestProject("Ajeno", testutil.WithProjectAssignees("u-9"))
	require.NoError(t, f.projects.Create(ctx, mine))
	require.NoError(t, f.projects.Create(ctx, foreign))

	pending := testutil.NewTestTask("Pendiente mia",
		testutil.WithTaskAssignee("u-2", "Ana Garcia"),
		testutil.WithTaskDueDate(domain.MustDate("2026-08-01")))
	completed := testutil.NewTestTask("Hecha",
		testutil.WithTaskAssignee("u-2", "Ana Garcia"),
		testutil.WithTaskStatus(domain.TaskCompletada))
	require.NoError(t, f.tasks.Create(ctx, pending))
	require.NoError(t, f.tasks.Create(ctx, completed))

	te := testutil.NewTestTimeEntry(
		testutil.WithEntryUser("u-2", "Ana Garcia"),
		testutil.WithEntryHours(5, true))
	require.NoError(t, f.entries.Create(ctx, te))
	offTheClock := testutil.NewTestTimeEntry(
		testutil.WithEntryUser("u-2", "Ana Garcia"),
		testutil.WithEntryHours(1.5, false))
	require.NoError(t, f.entries.Create(ctx, offTheClock))

	sum, err := f.svc.UserSummary(ctx, "u-2")
	require.NoError(t, err)
	assert.Equal(t, 1, sum.ActiveProjects)
	assert.Equal(t, 1, sum.PendingTasks)
	assert.Equal(t, 1, sum.CompletedTasks)
	assert.Equal(t, 1, sum.OverdueTasks)
	assert.Equal(t, 6.5, sum.TotalHours)
	assert.Equal(t, 5.0, sum.BillableHours)
}
