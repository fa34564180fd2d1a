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

type taskFixture struct {
	svc      *taskService
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
	users    repository.UserRepo
}

func newTaskFixture(t *testing.T) taskFixture {
	t.Helper()
	db := testutil.NewTestDB(t)
	f := taskFixture{
		tasks:    repository.NewSQLiteTaskRepo(db),
		projects: repository.NewSQLiteProjectRepo(db),
		users:    repository.NewSQLiteUserRepo(db),
	}
	f.svc = &taskService{
		tasks:    f.tasks,
		projects: f.projects,
		users:    f.users,
		now:      func() time.Time { return domain.MustDate("2026-08-31") },
	}
	return f
}

func TestTaskService_CreateResolvesDisplayCaches(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	p := testutil.NewTestProject("Concurso Mercantil")
	require.NoError(t, f.projects.Create(ctx, p))
	u := testutil.NewTestUser("Ana Garcia", domain.RoleAbogado)
	require.NoError(t, f.users.Create(ctx, u))

	task := &domain.Task{
		Title:      "Preparar lista de acreedores",
		ProjectID:  p.ID,
		AssignedTo: u.ID,
		Priority:   domain.PriorityAlta,
		DueDate:    domain.MustDate("2026-09-15"),
	}
	require.NoError(t, f.svc.Create(ctx, task))

	got, err := f.svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Concurso Mercantil", got.ProjectName)
	assert.Equal(t, "Ana Garcia", got.AssignedToName)
	assert.Equal(t, domain.TaskPendiente, got.Status)
}

func TestTaskService_UpdateReresolvesAssigneeName(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	ana := testutil.NewTestUser("Ana Garcia", domain.RoleAbogado)
	roberto := testutil.NewTestUser("Roberto Sanchez", domain.RoleAbogado)
	require.NoError(t, f.users.Create(ctx, ana))
	require.NoError(t, f.users.Create(ctx, roberto))

	task := testutil.NewTestTask("Reasignable", testutil.WithTaskAssignee(ana.ID, ana.Name))
	require.NoError(t, f.svc.Create(ctx, task))

	require.NoError(t, f.svc.Update(ctx, task.ID, domain.TaskPatch{AssignedTo: &roberto.ID}))

	got, err := f.svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, roberto.ID, got.AssignedTo)
	assert.Equal(t, "Roberto Sanchez", got.AssignedToName)
}

func TestTaskService_UpdateMissingIsSilentNoop(t *testing.T) {
	f := newTaskFixture(t)

	status := domain.TaskCompletada
	err := f.svc.Update(context.Background(), "t-missing", domain.TaskPatch{Status: &status})
	assert.NoError(t, err)
}

func TestTaskService_AddProgressUpdate(t *testing.T) {
	f := newTaskFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Con seguimiento")
	require.NoError(t, f.svc.Create(ctx, task))

	require.NoError(t, f.svc.AddProgressUpdate(ctx, task.ID, "Se desahogo la audiencia", "Ana Garcia"))

	got, err := f.svc.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, got.ProgressUpdates, 1)
	u := got.ProgressUpdates[0]
	assert.Contains(t, u.ID, domain.PrefixProgressUpdate+"-")
	assert.Equal(t, "Se desahogo la audiencia", u.Content)
	assert.Equal(t, "Ana Garcia", u.Author)
	assert.Equal(t, domain.MustDate("2026-08-31"), u.Date)
	assert.Equal(t, "Se desahogo la audiencia", got.Avance)
}

func TestTaskService_AddProgressUpdateUnknownTask(t *testing.T) {
	f := newTaskFixture(t)

	err := f.svc.AddProgressUpdate(context.Background(), "t-missing", "nada", "nadie")
	assert.NoError(t, err)
}
