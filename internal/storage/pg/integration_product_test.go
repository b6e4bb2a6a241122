package pg

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orcahelper/orcahelper/internal/domain"
	internal_errors "github.com/orcahelper/orcahelper/internal/errors"
)

func mustSaveUser(t *testing.T) domain.User {
	t.Helper()
	user, err := storage.SaveUser(newTestUser())
	require.NoError(t, err)
	return user
}

func TestSaveProductAndGet(t *testing.T) {
	owner := mustSaveUser(t)
	expires := time.Now().AddDate(0, 1, 0).Truncate(24 * time.Hour).UTC()

	saved, err := storage.SaveProduct(domain.Product{Name: "milk", UserId: owner.Id, ExpiresAt: &expires, Price: 4.50})
	require.NoError(t, err)
	assert.NotZero(t, saved.Id)

	got, err := storage.Product(saved.Id, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, "milk", got.Name)
	assert.Equal(t, owner.Id, got.UserId)
	assert.InDelta(t, 4.50, got.Price, 0.001)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, expires.Format("2006-01-02"), got.ExpiresAt.Format("2006-01-02"))
}

func TestSaveProductNilExpiry(t *testing.T) {
	owner := mustSaveUser(t)

	saved, err := storage.SaveProduct(domain.Product{Name: "salt", UserId: owner.Id, Price: 1.20})
	require.NoError(t, err)

	got, err := storage.Product(saved.Id, owner.Id)
	require.NoError(t, err)
	assert.Nil(t, got.ExpiresAt)
}

func TestProductScopedByOwner(t *testing.T) {
	owner := mustSaveUser(t)
	other := mustSaveUser(t)

	saved, err := storage.SaveProduct(domain.Product{Name: "cheese", UserId: owner.Id, Price: 7.00})
	require.NoError(t, err)

	// another user's product looks like it does not exist
	_, err = storage.Product(saved.Id, other.Id)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))

	err = storage.DeleteProduct(saved.Id, other.Id)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))

	saved.UserId = other.Id
	err = storage.UpdateProduct(saved)
	require.Error(t, err)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestUpdateProduct(t *testing.T) {
	owner := mustSaveUser(t)

	saved, err := storage.SaveProduct(domain.Product{Name: "bread", UserId: owner.Id, Price: 2.00})
	require.NoError(t, err)

	expires := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour).UTC()
	saved.Name = "rye bread"
	saved.ExpiresAt = &expires
	saved.Price = 2.50
	require.NoError(t, storage.UpdateProduct(saved))

	got, err := storage.Product(saved.Id, owner.Id)
	require.NoError(t, err)
	assert.Equal(t, "rye bread", got.Name)
	assert.InDelta(t, 2.50, got.Price, 0.001)
	require.NotNil(t, got.ExpiresAt)
}

func TestDeleteProduct(t *testing.T) {
	owner := mustSaveUser(t)

	saved, err := storage.SaveProduct(domain.Product{Name: "eggs", UserId: owner.Id, Price: 3.10})
	require.NoError(t, err)

	require.NoError(t, storage.DeleteProduct(saved.Id, owner.Id))

	_, err = storage.Product(saved.Id, owner.Id)
	assert.True(t, internal_errors.IsNotFound(err))
}

func TestProductsByUserPagination(t *testing.T) {
	owner := mustSaveUser(t)
	for i := 0; i < 3; i++ {
		_, err := storage.SaveProduct(domain.Product{Name: "item", UserId: owner.Id, Price: float64(i)})
		require.NoError(t, err)
	}

	page, err := storage.ProductsByUser(owner.Id, 1, 2)
	require.NoError(t, err)
	assert.Len(t, page, 2)

	all, err := storage.ProductsByUser(owner.Id, 0, 100)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	empty, err := storage.ProductsByUser(-1, 0, 100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}
