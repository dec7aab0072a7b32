package commands_test

import (
	"testing"

	"handmade/internal/core/application/usecases/commands"
	"handmade/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDeleteStatusChangeCommand_ValidInput(t *testing.T) {
	id := kernel.NewUUID()
	cmd, err := commands.NewDeleteStatusChangeCommand(id, "admin")
	require.NoError(t, err)
	assert.Equal(t, id, cmd.StatusChangeID())
	assert.Equal(t, "admin", cmd.Actor())
}

func TestNewDeleteStatusChangeCommand_InvalidStatusChangeID(t *testing.T) {
	_, err := commands.NewDeleteStatusChangeCommand(kernel.UUID{}, "admin")
	require.Error(t, err)
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestNewDeleteStatusChangeCommand_EmptyActor(t *testing.T) {
	_, err := commands.NewDeleteStatusChangeCommand(kernel.NewUUID(), "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrActorIsRequired)
}
