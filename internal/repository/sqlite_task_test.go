package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Presentar demanda de nulidad",
		testutil.WithTaskPriority(domain.PriorityCritica),
		testutil.WithTaskAssignee("u-3", "Roberto Sanchez"),
		testutil.WithTaskAlerts(
			domain.TaskAlert{Date: "2026-09-10", Time: "09:00"},
			domain.TaskAlert{Date: "2026-09-12", Time: "14:30"},
		),
	)
	require.NoError(t, repo.Create(ctx, task))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "Presentar demanda de nulidad", fetched.Title)
	assert.Equal(t, domain.PriorityCritica, fetched.Priority)
	assert.Equal(t, "u-3", fetched.AssignedTo)
	assert.Equal(t, "Roberto Sanchez", fetched.AssignedToName)
	require.Len(t, fetched.Alerts, 2)
	assert.Equal(t, "2026-09-10", fetched.Alerts[0].Date)
	assert.Equal(t, "14:30", fetched.Alerts[1].Time)
}

func TestTaskRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)

	_, err := repo.GetByID(context.Background(), "t-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTaskRepo_ListByProjectAndAssignee(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("Amparo Fiscal")
	inProject := testutil.NewTestTask("Redactar alegatos", testutil.WithTaskProject(p))
	mine := testutil.NewTestTask("Revisar expediente", testutil.WithTaskAssignee("u-2", "Ana Garcia"))
	other := testutil.NewTestTask("Sin relacion")
	for _, task := range []*domain.Task{inProject, mine, other} {
		require.NoError(t, repo.Create(ctx, task))
	}

	byProject, err := repo.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, byProject, 1)
	assert.Equal(t, inProject.ID, byProject[0].ID)

	byAssignee, err := repo.ListByAssignee(ctx, "u-2")
	require.NoError(t, err)
	require.Len(t, byAssignee, 1)
	assert.Equal(t, mine.ID, byAssignee[0].ID)
}

func TestTaskRepo_UpdateTouchesOnlyTargetRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	a := testutil.NewTestTask("Tarea A")
	b := testutil.NewTestTask("Tarea B")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Status = domain.TaskCompletada
	a.Alerts = []domain.TaskAlert{{Date: "2026-10-01", Time: "08:00"}}
	require.NoError(t, repo.Update(ctx, a))

	gotA, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskCompletada, gotA.Status)
	require.Len(t, gotA.Alerts, 1)

	gotB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskPendiente, gotB.Status)
	assert.Empty(t, gotB.Alerts)
}

func TestTaskRepo_DeleteCascadesAlertsAndUpdates(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Con hijos",
		testutil.WithTaskAlerts(domain.TaskAlert{Date: "2026-09-01", Time: "10:00"}))
	require.NoError(t, repo.Create(ctx, task))
	require.NoError(t, repo.AddUpdate(ctx, task.ID, domain.ProgressUpdate{
		ID: domain.NewID(domain.PrefixProgressUpdate), Date: time.Now(), Content: "avance inicial",
	}))

	require.NoError(t, repo.Delete(ctx, task.ID))

	var alerts, updates int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM task_alerts`).Scan(&alerts))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM task_updates`).Scan(&updates))
	assert.Zero(t, alerts)
	assert.Zero(t, updates)
}

func TestTaskRepo_AddUpdateAppendsHistoryAndOverwritesAvance(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Seguimiento")
	require.NoError(t, repo.Create(ctx, task))

	first := domain.ProgressUpdate{
		ID:      domain.NewID(domain.PrefixProgressUpdate),
		Date:    domain.MustDate("2026-08-20"),
		Content: "Se presento el escrito inicial",
		Author:  "Ana Garcia",
	}
	second := domain.ProgressUpdate{
		ID:      domain.NewID(domain.PrefixProgressUpdate),
		Date:    domain.MustDate("2026-08-25"),
		Content: "Juzgado admitio la demanda",
		Author:  "Ana Garcia",
	}
	require.NoError(t, repo.AddUpdate(ctx, task.ID, first))
	require.NoError(t, repo.AddUpdate(ctx, task.ID, second))

	fetched, err := repo.GetByID(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, fetched.ProgressUpdates, 2)
	assert.Equal(t, "Se presento el escrito inicial", fetched.ProgressUpdates[0].Content)
	assert.Equal(t, "Juzgado admitio la demanda", fetched.ProgressUpdates[1].Content)
	// The scalar mirrors the latest update.
	assert.Equal(t, "Juzgado admitio la demanda", fetched.Avance)
}

func TestTaskRepo_AddUpdateUnknownTaskIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	err := repo.AddUpdate(ctx, "t-missing", domain.ProgressUpdate{
		ID: domain.NewID(domain.PrefixProgressUpdate), Date: time.Now(), Content: "fantasma",
	})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM task_updates`).Scan(&count))
	assert.Zero(t, count)
}

func TestTaskRepo_DeleteLeavesTimeEntries(t *testing.T) {
	db := testutil.NewTestDB(t)
	tasks := NewSQLiteTaskRepo(db)
	entries := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Facturable")
	require.NoError(t, tasks.Create(ctx, task))
	te := testutil.NewTestTimeEntry(testutil.WithEntryTask(task))
	require.NoError(t, entries.Create(ctx, te))

	require.NoError(t, tasks.Delete(ctx, task.ID))

	left, err := entries.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, task.Title, left[0].TaskTitle)
}
