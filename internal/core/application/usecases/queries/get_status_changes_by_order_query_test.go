package queries_test

import (
	"testing"

	"handmade/internal/core/application/usecases/queries"
	"handmade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStatusChangesByOrderQuery_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	query, err := queries.NewGetStatusChangesByOrderQuery(orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, query.OrderID())
	require.NoError(t, query.Validate())
}

func TestNewGetStatusChangesByOrderQuery_InvalidOrderID(t *testing.T) {
	_, err := queries.NewGetStatusChangesByOrderQuery(kernel.UUID{})
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestGetStatusChangesByOrderQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetStatusChangesByOrderQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStatusChangesByOrderQueryIsNotConstructed)
}
