package pg

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcahelper/orcahelper/internal/domain"
	internal_errors "github.com/orcahelper/orcahelper/internal/errors"
)

func newTestUser() domain.User {
	return domain.User{
		Name:     "A",
		Email:    fmt.Sprintf("%s@x.com", uuid.NewString()),
		PassHash: "$2a$10$fakehashfakehashfakehash",
	}
}

func TestSaveUserAndLookups(t *testing.T) {
	user := newTestUser()

	saved, err := storage.SaveUser(user)
	require.NoError(t, err)
	assert.NotZero(t, saved.Id)
	assert.False(t, saved.CreatedAt.IsZero())

	byEmail, err := storage.UserByEmail(user.Email)
	require.NoError(t, err)
	assert.Equal(t, saved.Id, byEmail.Id)
	assert.Equal(t, user.Name, byEmail.Name)
	assert.Equal(t, user.PassHash, byEmail.PassHash)

	byId, err := storage.UserById(saved.Id)
	require.NoError(t, err)
	assert.Equal(t, user.Email, byId.Email)
}

func TestSaveUserDuplicateEmail(t *testing.T) {
	user := newTestUser()

	_, err := storage.SaveUser(user)
	require.NoError(t, err)

	_, err = storage.SaveUser(user)
	require.Error(t, err)
	assert.True(t, internal_errors.IsConflict(err))
}

func TestUserNotFound(t *testing.T) {
	_, err := storage.UserByEmail("missing@x.com")
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))

	_, err = storage.UserById(-1)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUpdateUser(t *testing.T) {
	saved, err := storage.SaveUser(newTestUser())
	require.NoError(t, err)

	saved.Name = "B"
	saved.Email = fmt.Sprintf("%s@x.com", uuid.NewString())
	saved.PassHash = "$2a$10$otherhashotherhashother"
	require.NoError(t, storage.UpdateUser(saved))

	got, err := storage.UserById(saved.Id)
	require.NoError(t, err)
	assert.Equal(t, "B", got.Name)
	assert.Equal(t, saved.Email, got.Email)
	assert.Equal(t, saved.PassHash, got.PassHash)
}

func TestUpdateUserNotFound(t *testing.T) {
	user := newTestUser()
	user.Id = -1
	err := storage.UpdateUser(user)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestDeleteUserCascadesProducts(t *testing.T) {
	saved, err := storage.SaveUser(newTestUser())
	require.NoError(t, err)

	product, err := storage.SaveProduct(domain.Product{Name: "milk", UserId: saved.Id, Price: 9.99})
	require.NoError(t, err)

	require.NoError(t, storage.DeleteUser(saved.Id))

	_, err = storage.UserById(saved.Id)
	assert.True(t, internal_errors.IsNotFound(err))

	_, err = storage.Product(product.Id, saved.Id)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestDeleteUserNotFound(t *testing.T) {
	err := storage.DeleteUser(-1)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUsersPagination(t *testing.T) {
	for i := 0; i < 3; i++ {
		_, err := storage.SaveUser(newTestUser())
		require.NoError(t, err)
	}

	page, err := storage.Users(0, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := storage.Users(0, 1000)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(all), 3)
}
