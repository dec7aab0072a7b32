package commands_test

import (
	"testing"
	"time"

	"handmade/internal/core/application/usecases/commands"
	"handmade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateStatusChangeCommand_ValidInput(t *testing.T) {
	orderID := kernel.NewUUID()
	changeTime := time.Now().UTC().Add(-time.Hour)

	cmd, err := commands.NewCreateStatusChangeCommand(orderID, "Shipped", changeTime, "seller-42")
	require.NoError(t, err)
	assert.Equal(t, orderID, cmd.OrderID())
	assert.Equal(t, "Shipped", cmd.Status())
	assert.Equal(t, changeTime, cmd.ChangeTime())
	assert.Equal(t, "seller-42", cmd.Actor())
	require.NoError(t, cmd.StatusChangeID().Validate())
}

func TestNewCreateStatusChangeCommand_GeneratesUniqueIDs(t *testing.T) {
	orderID := kernel.NewUUID()
	changeTime := time.Now().UTC().Add(-time.Hour)

	first, err := commands.NewCreateStatusChangeCommand(orderID, "Shipped", changeTime, "seller-42")
	require.NoError(t, err)
	second, err := commands.NewCreateStatusChangeCommand(orderID, "Shipped", changeTime, "seller-42")
	require.NoError(t, err)

	assert.False(t, first.StatusChangeID().IsEqual(second.StatusChangeID()))
}

func TestNewCreateStatusChangeCommand_InvalidOrderID(t *testing.T) {
	_, err := commands.NewCreateStatusChangeCommand(
		kernel.UUID{}, "Shipped", time.Now().UTC(), "seller-42")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewCreateStatusChangeCommand_EmptyStatus(t *testing.T) {
	_, err := commands.NewCreateStatusChangeCommand(
		kernel.NewUUID(), "", time.Now().UTC(), "seller-42")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrStatusIsRequired)
}

func TestNewCreateStatusChangeCommand_ZeroChangeTime(t *testing.T) {
	_, err := commands.NewCreateStatusChangeCommand(
		kernel.NewUUID(), "Shipped", time.Time{}, "seller-42")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrChangeTimeIsRequired)
}

func TestNewCreateStatusChangeCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewCreateStatusChangeCommand(
		kernel.NewUUID(), "Shipped", time.Now().UTC(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIsRequired)
}

func TestCreateStatusChangeCommand_Validate_NotConstructed(t *testing.T) {
	cmd := commands.CreateStatusChangeCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCreateStatusChangeCommandIsNotConstructed)
}
