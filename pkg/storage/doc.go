/*
Package storage provides document persistence for cookshow's four collections.

The Store interface is the union of ChefStore, ViewerStore, ParticipantStore
and RecipeStore. Two implementations ship with cookshow:

  - BoltStore: embedded BoltDB file (<dataDir>/cookshow.db), one bucket per
    collection, JSON values keyed by entity ID. This is the default.
  - MongoStore: MongoDB collections Chefs, Viewers, Participants and Recipes,
    matching the layout of existing cookshow databases.

# Buckets

	chefs          (Chef ID)
	viewers        (Viewer ID)
	participants   (Participant ID)
	recipes        (Recipe ID)

# Design Patterns

Upsert Pattern:
  - Create and Update share one write (bolt Put, mongo ReplaceOne with upsert)
  - No existence check inside the store; services decide what "exists" means

Idempotent Deletes:
  - Delete returns no error if the key doesn't exist

Not Found:
  - Every lookup that finds nothing returns an error wrapping ErrNotFound
  - Callers test with errors.Is(err, storage.ErrNotFound)

Filter Pattern:
  - BoltStore lists the bucket and filters in memory (by name, season,
    author, number, ingredient); the collections are small
  - MongoStore pushes the same equality filters to the server

Ordering:
  - BoltStore iterates in key order. Keys are random UUIDs, so list order is
    stable but unrelated to insertion order.

# Usage

	store, err := storage.NewBoltStore("/var/lib/cookshow")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

	chef := types.NewChef(uuid.New().String(), "Gordon")
	err = store.CreateChef(chef)

	found, err := store.GetChefByName("Gordon")
	if errors.Is(err, storage.ErrNotFound) {
		// absent
	}

	salty, err := store.ListRecipesByIngredient("salt")

Every operation records its latency in the
cookshow_storage_operation_duration_seconds histogram.
*/
package storage
