package seed

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/repository"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStores(t *testing.T) Stores {
	t.Helper()
	db := testutil.NewTestDB(t)
	s := Stores{
		Users:         repository.NewSQLiteUserRepo(db),
		Clients:       repository.NewSQLiteClientRepo(db),
		Projects:      repository.NewSQLiteProjectRepo(db),
		Tasks:         repository.NewSQLiteTaskRepo(db),
		TimeEntries:   repository.NewSQLiteTimeEntryRepo(db),
		Notifications: repository.NewSQLiteNotificationRepo(db),
	}
	require.NoError(t, Demo(context.Background(), s))
	return s
}

func TestDemo_CollectionSizes(t *testing.T) {
	s := seededStores(t)
	ctx := context.Background()

	users, err := s.Users.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 5)

	clients, err := s.Clients.List(ctx)
	require.NoError(t, err)
	assert.Len(t, clients, 6)

	projects, err := s.Projects.List(ctx)
	require.NoError(t, err)
	assert.Len(t, projects, 10)

	tasks, err := s.Tasks.List(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 14)

	entries, err := s.TimeEntries.List(ctx)
	require.NoError(t, err)
	assert.Len(t, entries, 12)

	notifications, err := s.Notifications.List(ctx)
	require.NoError(t, err)
	assert.Len(t, notifications, 7)
}

func TestDemo_LoginAccounts(t *testing.T) {
	s := seededStores(t)
	ctx := context.Background()

	admins, err := s.Users.ListByRole(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	require.NotEmpty(t, admins)
	assert.Equal(t, "u1", admins[0].ID)

	lawyers, err := s.Users.ListByRole(ctx, domain.RoleAbogado)
	require.NoError(t, err)
	require.NotEmpty(t, lawyers)
	assert.Equal(t, "u3", lawyers[0].ID)
}

func TestDemo_TaskChildren(t *testing.T) {
	s := seededStores(t)
	ctx := context.Background()

	t1, err := s.Tasks.GetByID(ctx, "t1")
	require.NoError(t, err)
	assert.Len(t, t1.Alerts, 3)
	require.Len(t, t1.ProgressUpdates, 1)
	assert.Equal(t, "Lic. Arturo", t1.ProgressUpdates[0].Author)
}

func TestDemo_ProjectRelations(t *testing.T) {
	s := seededStores(t)
	ctx := context.Background()

	p1, err := s.Projects.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "c1", p1.ClientID)
	assert.Equal(t, domain.DivisionFiscal, p1.Division())
	assert.True(t, p1.IsAssignedTo("u3"))

	forClient, err := s.Projects.ListByClient(ctx, "c1")
	require.NoError(t, err)
	assert.Len(t, forClient, 3)
}
