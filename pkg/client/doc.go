/*
Package client provides a Go client for the cookshow HTTP API.

The client wraps the REST routes served by pkg/api with typed methods that
return pkg/types values. It is used by the cookshow CLI (apply, recipe) and
can be embedded in other tools.

# Usage

	c, err := client.NewClient("localhost:8080")
	if err != nil {
		return err
	}

	chef, err := c.CreateChef("Gordon")
	if client.IsConflict(err) {
		// a chef with that name already exists
	}

	recipe, err := c.CreateRecipe(service.RecipeInput{
		Author:       "Gordon",
		Ingredients:  "egg, salt",
		Instructions: "beat; fry",
	})

	views, err := c.ListRecipesBySeason(3)

# Errors

Any non-2xx response is returned as *APIError carrying the HTTP status, the
error code and the request ID from the server's error body. IsNotFound and
IsConflict test for the two cases callers usually branch on.

Every call is bounded by DefaultTimeout.
*/
package client
