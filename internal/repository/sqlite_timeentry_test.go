package repository

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeEntryRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	te := testutil.NewTestTimeEntry(
		testutil.WithEntryUser("u-2", "Ana Garcia"),
		testutil.WithEntryHours(3.5, false),
	)
	te.Description = "Revision de contrato"
	require.NoError(t, repo.Create(ctx, te))

	fetched, err := repo.GetByID(ctx, te.ID)
	require.NoError(t, err)
	assert.Equal(t, 3.5, fetched.Hours)
	assert.False(t, fetched.Billable)
	assert.Equal(t, "Ana Garcia", fetched.UserName)
	assert.Equal(t, "Revision de contrato", fetched.Description)
}

func TestTimeEntryRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)

	_, err := repo.GetByID(context.Background(), "te-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestTimeEntryRepo_ListByTaskAndUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	task := testutil.NewTestTask("Audiencia")
	onTask := testutil.NewTestTimeEntry(testutil.WithEntryTask(task))
	byUser := testutil.NewTestTimeEntry(testutil.WithEntryUser("u-4", "Carmen Vega"))
	other := testutil.NewTestTimeEntry()
	for _, te := range []*domain.TimeEntry{onTask, byUser, other} {
		require.NoError(t, repo.Create(ctx, te))
	}

	forTask, err := repo.ListByTask(ctx, task.ID)
	require.NoError(t, err)
	require.Len(t, forTask, 1)
	assert.Equal(t, onTask.ID, forTask[0].ID)

	forUser, err := repo.ListByUser(ctx, "u-4")
	require.NoError(t, err)
	require.Len(t, forUser, 1)
	assert.Equal(t, byUser.ID, forUser[0].ID)
}

func TestTimeEntryRepo_AddThenDeleteRestoresCollection(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	keep := testutil.NewTestTimeEntry()
	require.NoError(t, repo.Create(ctx, keep))
	before, err := repo.List(ctx)
	require.NoError(t, err)

	extra := testutil.NewTestTimeEntry()
	require.NoError(t, repo.Create(ctx, extra))
	require.NoError(t, repo.Delete(ctx, extra.ID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestTimeEntryRepo_UpdateTouchesOnlyTargetRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteTimeEntryRepo(db)
	ctx := context.Background()

	a := testutil.NewTestTimeEntry(testutil.WithEntryHours(2, true))
	b := testutil.NewTestTimeEntry(testutil.WithEntryHours(4, true))
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Hours = 8
	a.Billable = false
	require.NoError(t, repo.Update(ctx, a))

	gotA, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, 8.0, gotA.Hours)
	assert.False(t, gotA.Billable)

	gotB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, gotB.Hours)
	assert.True(t, gotB.Billable)
}
