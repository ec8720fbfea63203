package client

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cuemby/cookshow/pkg/api"
	"github.com/cuemby/cookshow/pkg/service"
	"github.com/cuemby/cookshow/pkg/storage"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T) *Client {
	t.Helper()
	store, err := storage.NewBoltStore(t.TempDir())
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	srv := httptest.NewServer(api.NewServer(api.DefaultConfig(), service.New(store, nil), store).Handler())
	t.Cleanup(srv.Close)

	c, err := NewClient(srv.URL)
	require.NoError(t, err)
	return c
}

func TestNewClient(t *testing.T) {
	tests := []struct {
		name    string
		addr    string
		want    string
		wantErr bool
	}{
		{name: "host and port", addr: "localhost:8080", want: "http://localhost:8080"},
		{name: "full url", addr: "https://cookshow.example.com/", want: "https://cookshow.example.com"},
		{name: "empty", addr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClient(tt.addr)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.baseURL)
		})
	}
}

func TestClient_Cookers(t *testing.T) {
	c := newTestClient(t)

	chef, err := c.CreateChef("Gordon")
	require.NoError(t, err)
	assert.Equal(t, types.RoleChef, chef.Role)

	_, err = c.CreateChef("Gordon")
	assert.True(t, IsConflict(err))

	got, err := c.GetChef(chef.ID)
	require.NoError(t, err)
	assert.Equal(t, chef, got)

	viewer, err := c.CreateViewer("Jane Doe")
	require.NoError(t, err)
	byName, err := c.GetViewerByName("Jane Doe")
	require.NoError(t, err)
	assert.Equal(t, viewer.ID, byName.ID)

	participant, err := c.CreateParticipant("Alice", 3)
	require.NoError(t, err)
	assert.Equal(t, 3, participant.Season)

	p, err := c.GetParticipantByName("Alice")
	require.NoError(t, err)
	assert.Equal(t, participant.ID, p.ID)
	p, err = c.GetParticipant(participant.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", p.FullName)

	require.NoError(t, c.DeleteChef(chef.ID))
	require.NoError(t, c.DeleteViewer(viewer.ID))
	require.NoError(t, c.DeleteParticipant(participant.ID))

	_, err = c.GetChef(chef.ID)
	assert.True(t, IsNotFound(err))
}

func TestClient_Recipes(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateParticipant("Alice", 3)
	require.NoError(t, err)
	_, err = c.CreateChef("Gordon")
	require.NoError(t, err)

	first, err := c.CreateRecipe(service.RecipeInput{Author: "Alice", Ingredients: "egg, salt", Instructions: "beat; fry"})
	require.NoError(t, err)
	assert.Equal(t, 1, first.Num)
	assert.Equal(t, []string{"egg", "salt"}, first.Ingredients)

	second, err := c.CreateRecipe(service.RecipeInput{Author: "Gordon", Ingredients: "salt", Instructions: "season"})
	require.NoError(t, err)
	assert.Equal(t, 2, second.Num)

	all, err := c.ListRecipes()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	view, err := c.GetRecipeByParticipant("Alice")
	require.NoError(t, err)
	assert.Equal(t, 3, view.Season)
	assert.Equal(t, first.ID, view.ID)

	byChef, err := c.GetRecipeByChef("Gordon")
	require.NoError(t, err)
	assert.Equal(t, second.ID, byChef.ID)

	_, err = c.GetRecipeByViewer("Nobody")
	assert.True(t, IsNotFound(err))

	byNum, err := c.GetRecipeByNumber(2)
	require.NoError(t, err)
	assert.Equal(t, second.ID, byNum.ID)

	season, err := c.ListRecipesBySeason(3)
	require.NoError(t, err)
	require.Len(t, season, 1)
	assert.Equal(t, "Alice", season[0].Author)

	salty, err := c.ListRecipesByIngredient("salt")
	require.NoError(t, err)
	assert.Len(t, salty, 2)

	ingredients := "egg, salt, pepper"
	updated, err := c.UpdateRecipe(first.ID, service.RecipePatch{Ingredients: &ingredients})
	require.NoError(t, err)
	assert.Equal(t, []string{"egg", "salt", "pepper"}, updated.Ingredients)
	assert.Equal(t, []string{"beat", "fry"}, updated.Instructions)

	require.NoError(t, c.DeleteRecipe(first.ID))
	_, err = c.GetRecipeByNumber(1)
	assert.True(t, IsNotFound(err))
}

func TestClient_APIError(t *testing.T) {
	c := newTestClient(t)

	_, err := c.CreateParticipant("Alice", 0)
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, api.ErrCodeInvalidRequest, apiErr.Code)
	assert.NotEmpty(t, apiErr.RequestID)
	assert.False(t, IsNotFound(err))
	assert.False(t, IsConflict(err))
}
