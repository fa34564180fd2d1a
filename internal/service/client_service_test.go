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

func newClientFixture(t *testing.T) (ClientService, repository.ProjectRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	clients := repository.NewSQLiteClientRepo(db)
	projects := repository.NewSQLiteProjectRepo(db)
	return NewClientService(clients, projects), projects
}

func TestClientService_CreateAssignsID(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	c := &domain.Client{Name: "Despacho Asociado"}
	require.NoError(t, svc.Create(ctx, c))
	assert.NotEmpty(t, c.ID)
	assert.Contains(t, c.ID, domain.PrefixClient+"-")
}

func TestClientService_ListRecomputesProjectCount(t *testing.T) {
	svc, projects := newClientFixture(t)
	ctx := context.Background()

	c := testutil.NewTestClient("Cliente Activo")
	require.NoError(t, svc.Create(ctx, c))
	for _, name := range []string{"Asunto Uno", "Asunto Dos"} {
		require.NoError(t, projects.Create(ctx, testutil.NewTestProject(name, testutil.WithProjectClient(c))))
	}

	list, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, 2, list[0].ProjectCount)
}

func TestClientService_UpdateAppliesPatch(t *testing.T) {
	svc, _ := newClientFixture(t)
	ctx := context.Background()

	c := testutil.NewTestClient("Nombre Viejo", testutil.WithClientEmail("viejo@cliente.mx"))
	require.NoError(t, svc.Create(ctx, c))

	name := "Nombre Nuevo"
	require.NoError(t, svc.Update(ctx, c.ID, domain.ClientPatch{Name: &name}))

	got, err := svc.GetByID(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Nombre Nuevo", got.Name)
	// Untouched fields survive the patch.
	assert.Equal(t, "viejo@cliente.mx", got.Email)
}

func TestClientService_UpdateMissingIsSilentNoop(t *testing.T) {
	svc, _ := newClientFixture(t)

	name := "Fantasma"
	err := svc.Update(context.Background(), "c-missing", domain.ClientPatch{Name: &name})
	assert.NoError(t, err)
}
