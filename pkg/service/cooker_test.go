package service

import (
	"testing"

	"github.com/cuemby/cookshow/pkg/events"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChefService_Create(t *testing.T) {
	svc, rec := newTestServices(t)

	chef, err := svc.Chefs.Create("Gordon")
	require.NoError(t, err)
	assert.NotEmpty(t, chef.ID)
	assert.Equal(t, "Gordon", chef.FullName)
	assert.Equal(t, types.RoleChef, chef.Role)

	other, err := svc.Chefs.Create("Jamie")
	require.NoError(t, err)
	assert.NotEqual(t, chef.ID, other.ID)

	assert.Equal(t, []events.EventType{events.EventChefCreated, events.EventChefCreated}, rec.types())
}

func TestChefService_CreateDuplicate(t *testing.T) {
	svc, rec := newTestServices(t)

	_, err := svc.Chefs.Create("Gordon")
	require.NoError(t, err)

	_, err = svc.Chefs.Create("Gordon")
	assert.ErrorIs(t, err, ErrConflict)

	chefs, err := svc.Chefs.List()
	require.NoError(t, err)
	assert.Len(t, chefs, 1, "no second record")
	assert.Len(t, rec.types(), 1)
}

func TestChefService_CreateInvalid(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Chefs.Create("  ")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestChefService_GetAndDelete(t *testing.T) {
	svc, rec := newTestServices(t)

	chef, err := svc.Chefs.Create("Gordon")
	require.NoError(t, err)

	got, err := svc.Chefs.Get(chef.ID)
	require.NoError(t, err)
	assert.Equal(t, chef, got)

	byName, err := svc.Chefs.GetByName("Gordon")
	require.NoError(t, err)
	assert.Equal(t, chef.ID, byName.ID)

	require.NoError(t, svc.Chefs.Delete(chef.ID))
	_, err = svc.Chefs.Get(chef.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.Chefs.Delete(chef.ID), ErrNotFound)
	assert.ErrorIs(t, svc.Chefs.Delete("missing"), ErrNotFound)
	assert.Equal(t, []events.EventType{events.EventChefCreated, events.EventChefDeleted}, rec.types())
}

func TestViewerService(t *testing.T) {
	svc, rec := newTestServices(t)

	viewer, err := svc.Viewers.Create("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, types.RoleViewer, viewer.Role)

	_, err = svc.Viewers.Create("Jane Doe")
	assert.ErrorIs(t, err, ErrConflict)

	got, err := svc.Viewers.GetByName("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, viewer.ID, got.ID)

	_, err = svc.Viewers.GetByName("John Doe")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, svc.Viewers.Delete(viewer.ID))
	assert.ErrorIs(t, svc.Viewers.Delete(viewer.ID), ErrNotFound)

	assert.Equal(t, []events.EventType{events.EventViewerCreated, events.EventViewerDeleted}, rec.types())
}

func TestParticipantService(t *testing.T) {
	svc, _ := newTestServices(t)

	alice, err := svc.Participants.Create("Alice", 3)
	require.NoError(t, err)
	assert.Equal(t, types.RoleParticipant, alice.Role)
	assert.Equal(t, 3, alice.Season)

	_, err = svc.Participants.Create("Bob", 3)
	require.NoError(t, err)
	_, err = svc.Participants.Create("Carol", 4)
	require.NoError(t, err)

	t.Run("duplicate name in another season", func(t *testing.T) {
		_, err := svc.Participants.Create("Alice", 5)
		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("invalid season", func(t *testing.T) {
		_, err := svc.Participants.Create("Dave", 0)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("by season", func(t *testing.T) {
		season3, err := svc.Participants.ListBySeason(3)
		require.NoError(t, err)
		assert.Len(t, season3, 2)

		empty, err := svc.Participants.ListBySeason(10)
		require.NoError(t, err)
		assert.Empty(t, empty)
	})

	t.Run("get by id and name", func(t *testing.T) {
		got, err := svc.Participants.Get(alice.ID)
		require.NoError(t, err)
		assert.Equal(t, "Alice", got.FullName)

		got, err = svc.Participants.GetByName("Alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, got.ID)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.Participants.Delete(alice.ID))
		assert.ErrorIs(t, svc.Participants.Delete(alice.ID), ErrNotFound)

		all, err := svc.Participants.List()
		require.NoError(t, err)
		assert.Len(t, all, 2)
	})
}

func TestSameNameAcrossCollections(t *testing.T) {
	svc, _ := newTestServices(t)

	_, err := svc.Chefs.Create("Alex")
	require.NoError(t, err)
	_, err = svc.Viewers.Create("Alex")
	require.NoError(t, err)
	_, err = svc.Participants.Create("Alex", 1)
	require.NoError(t, err)
}

func TestCookerServices_StorageFailure(t *testing.T) {
	svc := newBrokenServices(t)

	_, err := svc.Chefs.Create("Gordon")
	assert.ErrorIs(t, err, ErrOperationFailed)

	_, err = svc.Viewers.GetByName("Jane")
	assert.ErrorIs(t, err, ErrOperationFailed)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = svc.Participants.ListBySeason(1)
	assert.ErrorIs(t, err, ErrOperationFailed)

	assert.ErrorIs(t, svc.Participants.Delete("p-1"), ErrOperationFailed)
}
