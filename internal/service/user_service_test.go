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

func newUserFixture(t *testing.T) (UserService, repository.UserRepo) {
	t.Helper()
	db := testutil.NewTestDB(t)
	users := repository.NewSQLiteUserRepo(db)
	return NewUserService(users), users
}

func TestUserService_LoginPicksFirstOfRole(t *testing.T) {
	svc, users := newUserFixture(t)
	ctx := context.Background()

	admin := testutil.NewTestUser("Administrador", domain.RoleAdmin)
	first := testutil.NewTestUser("Abogado", domain.RoleAbogado)
	second := testutil.NewTestUser("Lic. Maria Lopez", domain.RoleAbogado)
	for _, u := range []*domain.User{admin, first, second} {
		require.NoError(t, users.Create(ctx, u))
	}

	u, err := svc.Login(ctx, domain.RoleAbogado)
	require.NoError(t, err)
	assert.Equal(t, first.ID, u.ID)

	u, err = svc.Login(ctx, domain.RoleAdmin)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, u.ID)
}

func TestUserService_LoginNoUserForRole(t *testing.T) {
	svc, _ := newUserFixture(t)

	_, err := svc.Login(context.Background(), domain.RoleAbogado)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUserService_Lawyers(t *testing.T) {
	svc, users := newUserFixture(t)
	ctx := context.Background()

	require.NoError(t, users.Create(ctx, testutil.NewTestUser("Administrador", domain.RoleAdmin)))
	require.NoError(t, users.Create(ctx, testutil.NewTestUser("Abogado", domain.RoleAbogado)))

	lawyers, err := svc.Lawyers(ctx)
	require.NoError(t, err)
	require.Len(t, lawyers, 1)
	assert.Equal(t, domain.RoleAbogado, lawyers[0].Role)
}
