package payment_test

import (
	"testing"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/core/domain/model/payment"
	"handmade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pendingPayment(t *testing.T, expiresAt, createdAt time.Time) *payment.Payment {
	t.Helper()

	p, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 2500, expiresAt, createdAt)
	require.NoError(t, err)
	return p
}

func TestNewPayment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("valid payment starts pending", func(t *testing.T) {
		id := kernel.NewUUID()
		orderID := kernel.NewUUID()
		expiresAt := now.Add(15 * 24 * time.Hour)

		p, err := payment.NewPayment(id, orderID, 2500, expiresAt, now)
		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.True(t, p.OrderID().IsEqual(orderID))
		assert.Equal(t, int64(2500), p.Amount())
		assert.Equal(t, payment.Pending, p.Status())
		assert.Equal(t, expiresAt, p.ExpirationTime())
		assert.False(t, p.Deletion().IsDeleted())
	})

	t.Run("non-positive amount rejected", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 0, now.Add(time.Hour), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), -1, now.Add(time.Hour), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero expiration time rejected", func(t *testing.T) {
		_, err := payment.NewPayment(kernel.NewUUID(), kernel.NewUUID(), 100, time.Time{}, now)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestPaymentComplete(t *testing.T) {
	now := time.Now().UTC()

	t.Run("pending payment completes", func(t *testing.T) {
		p := pendingPayment(t, now.Add(time.Hour), now)
		require.NoError(t, p.Complete())
		assert.Equal(t, payment.Completed, p.Status())
	})

	t.Run("completed payment cannot complete again", func(t *testing.T) {
		p := pendingPayment(t, now.Add(time.Hour), now)
		require.NoError(t, p.Complete())
		require.ErrorIs(t, p.Complete(), errs.ErrValueIsInvalid)
	})
}

func TestPaymentExpire(t *testing.T) {
	now := time.Now().UTC()

	t.Run("overdue pending payment expires", func(t *testing.T) {
		p := pendingPayment(t, now.Add(-time.Minute), now.Add(-time.Hour))
		assert.True(t, p.IsOverdue(now))

		require.NoError(t, p.Expire(now))
		assert.Equal(t, payment.Expired, p.Status())
	})

	t.Run("deadline exactly now counts as overdue", func(t *testing.T) {
		p := pendingPayment(t, now, now.Add(-time.Hour))
		require.NoError(t, p.Expire(now))
	})

	t.Run("not yet overdue payment cannot expire", func(t *testing.T) {
		p := pendingPayment(t, now.Add(time.Hour), now)
		assert.False(t, p.IsOverdue(now))
		require.ErrorIs(t, p.Expire(now), payment.ErrPaymentNotOverdue)
	})

	t.Run("completed payment cannot expire", func(t *testing.T) {
		p := pendingPayment(t, now.Add(-time.Minute), now.Add(-time.Hour))
		require.NoError(t, p.Complete())
		require.ErrorIs(t, p.Expire(now), errs.ErrValueIsInvalid)
	})
}

func TestRestorePayment(t *testing.T) {
	now := time.Now().UTC()

	t.Run("restores all fields", func(t *testing.T) {
		id := kernel.NewUUID()
		p, err := payment.RestorePayment(
			id, kernel.NewUUID(), 999, payment.Expired, now.Add(-time.Hour), now.Add(-2*time.Hour),
			kernel.NotDeleted())
		require.NoError(t, err)
		assert.Equal(t, payment.Expired, p.Status())
		assert.Equal(t, int64(999), p.Amount())
	})

	t.Run("unknown status rejected", func(t *testing.T) {
		_, err := payment.RestorePayment(
			kernel.NewUUID(), kernel.NewUUID(), 999, payment.Unknown, now, now, kernel.NotDeleted())
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestPaymentStatusString(t *testing.T) {
	assert.Equal(t, "Pending", payment.Pending.String())
	assert.Equal(t, "Completed", payment.Completed.String())
	assert.Equal(t, "Expired", payment.Expired.String())
	assert.Equal(t, "Unknown", payment.Unknown.String())
	assert.Equal(t, "Unknown", payment.Status(42).String())
}

func TestPaymentValidate(t *testing.T) {
	var p payment.Payment
	require.ErrorIs(t, p.Validate(), payment.ErrPaymentIsNotConstructed)
}
