package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tallydb/src/engine"
	"tallydb/src/entities"
)

func TestUserService_CreateHashesPassword(t *testing.T) {
	m := newTestManager(t)

	user := entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin)
	require.NoError(t, m.Users.Create(user, "s3cretpass"))

	stored, err := m.Users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "argon2id$"))
	assert.NotContains(t, stored.PasswordHash, "s3cretpass")
}

func TestUserService_CreateRejectsShortPassword(t *testing.T) {
	m := newTestManager(t)

	user := entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin)
	err := m.Users.Create(user, "short")
	require.Error(t, err)

	stored, err := m.Users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestUserService_EmailIsUnique(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Users.Create(entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin), "s3cretpass"))

	err := m.Users.Create(entities.NewUser("Bia", "ana@example.com", entities.RoleCashier), "otherpass")
	require.Error(t, err)
	assert.True(t, engine.IsUniqueViolation(err))
}

func TestUserService_Authenticate(t *testing.T) {
	m := newTestManager(t)

	user := entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin)
	require.NoError(t, m.Users.Create(user, "s3cretpass"))

	got, err := m.Users.Authenticate("ana@example.com", "s3cretpass")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)

	_, err = m.Users.Authenticate("ana@example.com", "wrongpass")
	assert.Error(t, err)

	_, err = m.Users.Authenticate("nobody@example.com", "s3cretpass")
	assert.Error(t, err)
}

func TestUserService_InactiveNeverAuthenticates(t *testing.T) {
	m := newTestManager(t)

	user := entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin)
	require.NoError(t, m.Users.Create(user, "s3cretpass"))

	stored, err := m.Users.GetByEmail("ana@example.com")
	require.NoError(t, err)
	stored.Active = false
	require.NoError(t, m.Users.Update(stored.ID, stored))

	_, err = m.Users.Authenticate("ana@example.com", "s3cretpass")
	assert.Error(t, err)
}

func TestUserService_GetByRole(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.Users.Create(entities.NewUser("Ana", "ana@example.com", entities.RoleAdmin), "s3cretpass"))
	require.NoError(t, m.Users.Create(entities.NewUser("Bia", "bia@example.com", entities.RoleCashier), "s3cretpass"))
	require.NoError(t, m.Users.Create(entities.NewUser("Caio", "caio@example.com", entities.RoleCashier), "s3cretpass"))

	cashiers, err := m.Users.GetByRole(entities.RoleCashier)
	require.NoError(t, err)
	assert.Len(t, cashiers, 2)
}
