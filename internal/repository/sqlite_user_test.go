package repository

import (
	"context"
	"testing"

	"github.com/DiegoRozo23/lexpro-abogados/internal/domain"
	"github.com/DiegoRozo23/lexpro-abogados/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_ListByRole(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewSQLiteUserRepo(db)
	ctx := context.Background()

	admin := testutil.NewTestUser("Carlos Mendoza", domain.RoleAdmin)
	lawyerA := testutil.NewTestUser("Ana Garcia", domain.RoleAbogado)
	lawyerB := testutil.NewTestUser("Roberto Sanchez", domain.RoleAbogado)
	for _, u := range []*domain.User{admin, lawyerA, lawyerB} {
		require.NoError(t, repo.Create(ctx, u))
	}

	lawyers, err := repo.ListByRole(ctx, domain.RoleAbogado)
	require.NoError(t, err)
	require.Len(t, lawyers, 2)
	assert.Equal(t, "Ana Garcia", lawyers[0].Name)
	assert.Equal(t, "Roberto Sanchez", lawyers[1].Name)

	fetched, err := repo.GetByID(ctx, admin.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, fetched.Role)

	_, err = repo.GetByID(ctx, "u-nope")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
