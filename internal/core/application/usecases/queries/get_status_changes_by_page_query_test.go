package queries_test

import (
	"testing"

	"handmade/internal/core/application/usecases/queries"
	"handmade/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetStatusChangesByPageQuery_ValidInput(t *testing.T) {
	query, err := queries.NewGetStatusChangesByPageQuery(3, 20)
	require.NoError(t, err)
	assert.Equal(t, 3, query.Page())
	assert.Equal(t, 20, query.PageSize())
	assert.Equal(t, 40, query.Offset())
	require.NoError(t, query.Validate())
}

func TestNewGetStatusChangesByPageQuery_FirstPageHasZeroOffset(t *testing.T) {
	query, err := queries.NewGetStatusChangesByPageQuery(1, 50)
	require.NoError(t, err)
	assert.Equal(t, 0, query.Offset())
}

func TestNewGetStatusChangesByPageQuery_InvalidPage(t *testing.T) {
	for _, page := range []int{0, -1} {
		_, err := queries.NewGetStatusChangesByPageQuery(page, 20)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestNewGetStatusChangesByPageQuery_InvalidPageSize(t *testing.T) {
	for _, pageSize := range []int{0, -5} {
		_, err := queries.NewGetStatusChangesByPageQuery(1, pageSize)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	}
}

func TestGetStatusChangesByPageQuery_Validate_NotConstructed(t *testing.T) {
	query := queries.GetStatusChangesByPageQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetStatusChangesByPageQueryIsNotConstructed)
}
