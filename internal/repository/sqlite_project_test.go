package repository

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("Juicio de Nulidad SAT",
		testutil.WithProjectCategory(domain.CategoryLitigioFiscal),
		testutil.WithProjectPriority(domain.PriorityAlta),
		testutil.WithProjectAssignees("u-2", "u-3"),
	)
	p.Juzgado = "Tribunal Federal de Justicia Administrativa"
	p.Expediente = "TFJA-2026-0142"
	p.Team = []string{"u-2", "u-3", "u-4"}
	p.Budget = 250000
	require.NoError(t, repo.Create(ctx, p))

	fetched, err := repo.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Juicio de Nulidad SAT", fetched.Name)
	assert.Equal(t, domain.PriorityAlta, fetched.Priority)
	assert.Equal(t, []string{"u-2", "u-3"}, fetched.AssignedTo)
	assert.Equal(t, []string{"u-2", "u-3", "u-4"}, fetched.Team)
	assert.Equal(t, "TFJA-2026-0142", fetched.Expediente)
	assert.Equal(t, 250000.0, fetched.Budget)
	assert.Equal(t, p.DueDate.Format(domain.DateLayout), fetched.DueDate.Format(domain.DateLayout))
}

func TestProjectRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)

	_, err := repo.GetByID(context.Background(), "p-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProjectRepo_ListByClient(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Constructora del Valle")
	ours := testutil.NewTestProject("Defensa Fiscal 2026", testutil.WithProjectClient(c))
	other := testutil.NewTestProject("Asunto Ajeno")
	require.NoError(t, repo.Create(ctx, ours))
	require.NoError(t, repo.Create(ctx, other))

	list, err := repo.ListByClient(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, ours.ID, list[0].ID)
	assert.Equal(t, "Constructora del Valle", list[0].ClientName)
}

func TestProjectRepo_UpdateTouchesOnlyTargetRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	a := testutil.NewTestProject("Proyecto A")
	b := testutil.NewTestProject("Proyecto B")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	a.Status = domain.ProjectCompletado
	a.Progress = 100
	require.NoError(t, repo.Update(ctx, a))

	gotA, err := repo.GetByID(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectCompletado, gotA.Status)
	assert.Equal(t, 100, gotA.Progress)

	gotB, err := repo.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectActivo, gotB.Status)
}

func TestProjectRepo_DeleteLeavesTasksDangling(t *testing.T) {
	db := testutil.NewTestDB(t)
	projects := NewSQLiteProjectRepo(db)
	tasks := NewSQLiteTaskRepo(db)
	ctx := context.Background()

	p := testutil.NewTestProject("Proyecto Borrado")
	require.NoError(t, projects.Create(ctx, p))
	task := testutil.NewTestTask("Tarea Sobreviviente", testutil.WithTaskProject(p))
	require.NoError(t, tasks.Create(ctx, task))

	require.NoError(t, projects.Delete(ctx, p.ID))

	left, err := tasks.ListByProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, left, 1)
	assert.Equal(t, "Proyecto Borrado", left[0].ProjectName)
}
