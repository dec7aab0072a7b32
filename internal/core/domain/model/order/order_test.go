package order_test

import (
	"testing"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/order"
	"handmade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("valid order", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC()

		o, err := order.NewOrder(id, createdAt)
		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.Equal(t, order.InitialStatus, o.Status())
		assert.Equal(t, createdAt, o.CreatedTime())
		assert.False(t, o.IsDeleted())
	})

	t.Run("zero uuid rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.UUID{}, time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero created time rejected", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("active order", func(t *testing.T) {
		id := kernel.NewUUID()
		createdAt := time.Now().UTC()

		o, err := order.RestoreOrder(id, "Shipped", createdAt, kernel.NotDeleted())
		require.NoError(t, err)
		assert.Equal(t, "Shipped", o.Status())
		assert.False(t, o.IsDeleted())
	})

	t.Run("deleted order keeps deletion state", func(t *testing.T) {
		deletedAt := time.Now().UTC()
		deletion, err := kernel.DeletedBy("admin", deletedAt)
		require.NoError(t, err)

		o, err := order.RestoreOrder(kernel.NewUUID(), "Cancelled", deletedAt.Add(-time.Hour), deletion)
		require.NoError(t, err)
		assert.True(t, o.IsDeleted())
		assert.Equal(t, "admin", o.Deletion().By())
		assert.Equal(t, deletedAt, o.Deletion().At())
	})

	t.Run("empty status rejected", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), "", time.Now().UTC(), kernel.NotDeleted())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderValidate(t *testing.T) {
	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil order is not constructed", func(t *testing.T) {
		var o *order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrderIsEqual(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now().UTC()

	a, err := order.NewOrder(id, now)
	require.NoError(t, err)
	b, err := order.RestoreOrder(id, "Delivered", now, kernel.NotDeleted())
	require.NoError(t, err)
	c, err := order.NewOrder(kernel.NewUUID(), now)
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
	assert.False(t, a.IsEqual(nil))
}
