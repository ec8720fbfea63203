package types

// Role identifies which collection a cooker belongs to
type Role string

const (
	RoleChef        Role = "CHEF"
	RoleViewer      Role = "VIEWER"
	RoleParticipant Role = "PARTICIPANT"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	switch r {
	case RoleChef, RoleViewer, RoleParticipant:
		return true
	}
	return false
}

// Cooker holds the fields shared by every person record.
// Role is set by the concrete constructor and never changes afterwards.
type Cooker struct {
	ID       string `json:"id" bson:"_id" yaml:"id"`
	FullName string `json:"fullName" bson:"fullName" yaml:"fullName"`
	Role     Role   `json:"role" bson:"role" yaml:"role"`
}

// Chef is a cooker stored in the chefs collection
type Chef struct {
	Cooker `bson:",inline" yaml:",inline"`
}

// NewChef creates a chef with the CHEF role
func NewChef(id, fullName string) *Chef {
	return &Chef{Cooker: Cooker{ID: id, FullName: fullName, Role: RoleChef}}
}

// Viewer is a cooker stored in the viewers collection
type Viewer struct {
	Cooker `bson:",inline" yaml:",inline"`
}

// NewViewer creates a viewer with the VIEWER role
func NewViewer(id, fullName string) *Viewer {
	return &Viewer{Cooker: Cooker{ID: id, FullName: fullName, Role: RoleViewer}}
}

// Participant is a competitor in a given season
type Participant struct {
	Cooker `bson:",inline" yaml:",inline"`
	Season int `json:"season" bson:"season" yaml:"season"`
}

// NewParticipant creates a participant with the PARTICIPANT role
func NewParticipant(id, fullName string, season int) *Participant {
	return &Participant{
		Cooker: Cooker{ID: id, FullName: fullName, Role: RoleParticipant},
		Season: season,
	}
}

// Recipe is a dish submitted by a cooker.
// Author is matched against cooker full names but is not a foreign key.
type Recipe struct {
	ID           string   `json:"id" bson:"_id" yaml:"id"`
	Title        string   `json:"title" bson:"title" yaml:"title"`
	Author       string   `json:"author" bson:"author" yaml:"author"`
	Num          int      `json:"num" bson:"num" yaml:"num"`
	Ingredients  []string `json:"ingredients" bson:"ingredients" yaml:"ingredients"`
	Instructions []string `json:"instructions" bson:"instructions" yaml:"instructions"` // execution order
}

// HasIngredient reports whether ingredient is one of the recipe's ingredients.
// Matching is exact; "salt" does not match "saltine".
func (r *Recipe) HasIngredient(ingredient string) bool {
	for _, i := range r.Ingredients {
		if i == ingredient {
			return true
		}
	}
	return false
}

// RecipeView is a recipe merged with its participant author's season
type RecipeView struct {
	ID           string   `json:"id"`
	Author       string   `json:"author"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Season       int      `json:"season"`
}

// NewRecipeView combines a recipe with the season of the participant who wrote it
func NewRecipeView(recipe *Recipe, season int) *RecipeView {
	return &RecipeView{
		ID:           recipe.ID,
		Author:       recipe.Author,
		Ingredients:  recipe.Ingredients,
		Instructions: recipe.Instructions,
		Season:       season,
	}
}
