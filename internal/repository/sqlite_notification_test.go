package repository

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationRepo_CreateAndList(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(db)
	ctx := context.Background()

	n := testutil.NewTestNotification("Vence plazo de apelacion",
		testutil.WithNotificationRole(domain.RoleAbogado),
		testutil.WithNotificationLink("proyectos"),
	)
	n.Type = domain.NotificationVencimiento
	require.NoError(t, repo.Create(ctx, n))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, domain.NotificationVencimiento, list[0].Type)
	assert.Equal(t, domain.RoleAbogado, list[0].TargetRole)
	assert.Equal(t, "proyectos", list[0].LinkTo)
	assert.False(t, list[0].Read)
}

func TestNotificationRepo_MarkRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(db)
	ctx := context.Background()

	a := testutil.NewTestNotification("Primera")
	b := testutil.NewTestNotification("Segunda")
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, b))

	require.NoError(t, repo.MarkRead(ctx, a.ID))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].Read)
	assert.False(t, list[1].Read)
}

func TestNotificationRepo_MarkReadMissingIsNoop(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(db)

	assert.NoError(t, repo.MarkRead(context.Background(), "n-missing"))
}

func TestNotificationRepo_MarkAllRead(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteNotificationRepo(db)
	ctx := context.Background()

	for _, title := range []string{"Una", "Dos", "Tres"} {
		require.NoError(t, repo.Create(ctx, testutil.NewTestNotification(title)))
	}

	require.NoError(t, repo.MarkAllRead(ctx))
	// Idempotent on a second call.
	require.NoError(t, repo.MarkAllRead(ctx))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 3)
	for _, n := range list {
		assert.True(t, n.Read)
	}
}
