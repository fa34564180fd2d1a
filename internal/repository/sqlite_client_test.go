package repository

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientRepo_CreateAndGetByID(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Grupo Industrial del Norte", testutil.WithClientEmail("jsalinas@gin.com.mx"))
	require.NoError(t, repo.Create(ctx, c))

	fetched, err := repo.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ID)
	assert.Equal(t, "Grupo Industrial del Norte", fetched.Name)
	assert.Equal(t, "jsalinas@gin.com.mx", fetched.Email)
}

func TestClientRepo_GetByID_NotFound(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)

	_, err := repo.GetByID(context.Background(), "c-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestClientRepo_ListPreservesInsertionOrder(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	names := []string{"Zeta SA", "Alfa SA", "Media SA"}
	for _, name := range names {
		require.NoError(t, repo.Create(ctx, testutil.NewTestClient(name)))
	}

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for i, name := range names {
		assert.Equal(t, name, list[i].Name)
	}
}

func TestClientRepo_AddThenDeleteRestoresCollection(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	base := testutil.NewTestClient("Cliente Base")
	require.NoError(t, repo.Create(ctx, base))
	before, err := repo.List(ctx)
	require.NoError(t, err)

	extra := testutil.NewTestClient("Cliente Temporal")
	require.NoError(t, repo.Create(ctx, extra))
	require.NoError(t, repo.Delete(ctx, extra.ID))

	after, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestClientRepo_DeleteMissingIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteClientRepo(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testutil.NewTestClient("Unico")))
	assert.NoError(t, repo.Delete(ctx, "c-missing"))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestClientRepo_DeleteDoesNotCascadeToProjects(t *testing.T) {
	db := testutil.NewTestDB(t)
	clients := NewSQLiteClientRepo(db)
	projects := NewSQLiteProjectRepo(db)
	ctx := context.Background()

	c := testutil.NewTestClient("Cliente con Proyecto")
	require.NoError(t, clients.Create(ctx, c))
	p := testutil.NewTestProject("Proyecto Huerfano", testutil.WithProjectClient(c))
	require.NoError(t, projects.Create(ctx, p))

	require.NoError(t, clients.Delete(ctx, c.ID))

	// The project survives with its stale client reference.
	fetched, err := projects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, c.ID, fetched.ClientID)
	assert.Equal(t, "Cliente con Proyecto", fetched.ClientName)
}
