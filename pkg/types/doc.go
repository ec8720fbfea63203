/*
Package types defines the data model shared by every cookshow package.

# Cookers

Chef, Viewer and Participant embed a common Cooker (id, full name, role). Each
lives in its own collection, so the same full name may appear as a Chef and as
a Participant at the same time; that is not a conflict.

	chef := types.NewChef(uuid.New().String(), "Gordon")
	participant := types.NewParticipant(uuid.New().String(), "Alice", 3)

The role is fixed by the constructor. JSON encoding is flat:

	{"id":"...","fullName":"Alice","role":"PARTICIPANT","season":3}

# Recipes

A Recipe carries a title, an author name, a sequence number and two ordered
lists. Instructions are stored in execution order and must never be
reordered. The author is matched against cooker names but is not a foreign key.

RecipeView is the composite returned by participant-linked queries: the
recipe's fields plus the author's season.
*/
package types
