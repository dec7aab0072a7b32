package kernel_test

import (
	"testing"
	"time"

	"handmade/internal/core/domain/model/kernel"
	"handmade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotDeleted(t *testing.T) {
	d := kernel.NotDeleted()

	assert.False(t, d.IsDeleted())
	assert.True(t, d.At().IsZero())
	assert.Empty(t, d.By())
}

func TestDeletedBy(t *testing.T) {
	t.Run("valid actor and time", func(t *testing.T) {
		now := time.Now().UTC()

		d, err := kernel.DeletedBy("admin", now)
		require.NoError(t, err)
		assert.True(t, d.IsDeleted())
		assert.Equal(t, now, d.At())
		assert.Equal(t, "admin", d.By())
	})

	t.Run("empty actor rejected", func(t *testing.T) {
		_, err := kernel.DeletedBy("", time.Now().UTC())
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("zero time rejected", func(t *testing.T) {
		_, err := kernel.DeletedBy("admin", time.Time{})
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestDeletionZeroValueIsActive(t *testing.T) {
	var d kernel.Deletion
	assert.False(t, d.IsDeleted())
}
