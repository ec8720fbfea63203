package main

import (
	"testing"

	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedStore(t *testing.T) *storage.BoltStore {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	require.NoError(t, store.CreateChef(types.NewChef("c-1", "Gordon")))
	require.NoError(t, store.CreateViewer(types.NewViewer("v-1", "Jane")))
	require.NoError(t, store.CreateParticipant(types.NewParticipant("p-1", "Alice", 3)))
	require.NoError(t, store.CreateParticipant(types.NewParticipant("p-2", "Bob", 3)))
	require.NoError(t, store.CreateRecipe(&types.Recipe{ID: "r-1", Author: "Alice", Num: 1, Ingredients: []string{"egg"}}))
	return store
}

func TestMigrateDryRun(t *testing.T) {
	src := seedStore(t)

	counts, err := migrate(src, nil)
	require.NoError(t, err)
	assert.Equal(t, Counts{Chefs: 1, Viewers: 1, Participants: 2, Recipes: 1}, counts)
}

func TestMigrateCopiesEverything(t *testing.T) {
	src := seedStore(t)
	dst, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	defer dst.Close()

	counts, err := migrate(src, dst)
	require.NoError(t, err)
	assert.Equal(t, 2, counts.Participants)

	recipe, err := dst.GetRecipe("r-1")
	require.NoError(t, err)
	assert.Equal(t, "Alice", recipe.Author)

	// Running again overwrites in place
	_, err = migrate(src, dst)
	require.NoError(t, err)
	participants, err := dst.ListParticipants()
	require.NoError(t, err)
	assert.Len(t, participants, 2)
}

func TestMigrateFailingDestination(t *testing.T) {
	src := seedStore(t)
	dst, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, dst.Close())

	_, err = migrate(src, dst)
	assert.ErrorContains(t, err, "copy chef c-1")
}
