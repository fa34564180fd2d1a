package service

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTimeEntryFixture(t *testing.T) (TimeEntryService, repository.TaskRepo, repository.UserRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	entries := repository.NewSQLiteTimeEntryRepo(db)
	tasks := repository.NewSQLiteTaskRepo(db)
	users := repository.NewSQLiteUserRepo(db)
	return NewTimeEntryService(entries, tasks, users), tasks, users
}

func TestTimeEntryService_CreateResolvesDisplayNames(t *testing.T) {
	svc, tasks, users := newTimeEntryFixture(t)
	ctx := context.Background()

	task := testutil.NewTestTask("Preparar alegatos")
	task.ProjectName = "Litigio Aduanero"
	require.NoError(t, tasks.Create(ctx, task))
	u := testutil.NewTestUser("Carmen Vega", domain.RoleAbogado)
	require.NoError(t, users.Create(ctx, u))

	te := &domain.TimeEntry{TaskID: task.ID, UserID: u.ID, Hours: 2.5, Billable: true}
	require.NoError(t, svc.Create(ctx, te))

	assert.Contains(t, te.ID, domain.PrefixTimeEntry+"-")
	assert.Equal(t, "Preparar alegatos", te.TaskTitle)
	assert.Equal(t, "Litigio Aduanero", te.ProjectName)
	assert.Equal(t, "Carmen Vega", te.UserName)
}

func TestTimeEntryService_UpdateAppliesPatch(t *testing.T) {
	svc, _, _ := newTimeEntryFixture(t)
	ctx := context.Background()

	te := testutil.NewTestTimeEntry(testutil.WithEntryHours(1, true))
	require.NoError(t, svc.Create(ctx, te))

	hours := 4.0
	billable := false
	require.NoError(t, svc.Update(ctx, te.ID, domain.TimeEntryPatch{Hours: &hours, Billable: &billable}))

	got, err := svc.GetByID(ctx, te.ID)
	require.NoError(t, err)
	assert.Equal(t, 4.0, got.Hours)
	assert.False(t, got.Billable)
}

func TestTimeEntryService_UpdateMissingIsNoOp(t *testing.T) {
	svc, _, _ := newTimeEntryFixture(t)

	hours := 2.0
	assert.NoError(t, svc.Update(context.Background(), "te-nope", domain.TimeEntryPatch{Hours: &hours}))
}

func TestSumHoursSplitsBillable(t *testing.T) {
	entries := []*domain.TimeEntry{
		testutil.NewTestTimeEntry(testutil.WithEntryHours(3, true)),
		testutil.NewTestTimeEntry(testutil.WithEntryHours(2, false)),
		testutil.NewTestTimeEntry(testutil.WithEntryHours(1.5, true)),
	}

	assert.Equal(t, 6.5, domain.SumHours(entries))
	assert.Equal(t, 4.5, domain.SumBillableHours(entries))
}
