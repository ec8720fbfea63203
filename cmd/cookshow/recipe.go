package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cuemby/cookshow/pkg/client"
	"github.com/cuemby/cookshow/pkg/types"
	"github.com/spf13/cobra"
)

var recipeCmd = &cobra.Command{
	Use:   "recipe",
	Short: "Query recipes",
}

var recipeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recipes",
	Long: `List recipes, optionally restricted to one season or one ingredient.

Examples:
  cookshow recipe list
  cookshow recipe list --season 3
  cookshow recipe list --ingredient salt`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		season, _ := cmd.Flags().GetInt("season")
		ingredient, _ := cmd.Flags().GetString("ingredient")
		out := cmd.OutOrStdout()

		switch {
		case cmd.Flags().Changed("season"):
			views, err := c.ListRecipesBySeason(season)
			if err != nil {
				return fmt.Errorf("failed to list season %d: %w", season, err)
			}
			printRecipeViews(out, views)
		case ingredient != "":
			recipes, err := c.ListRecipesByIngredient(ingredient)
			if err != nil {
				return fmt.Errorf("failed to list recipes with %q: %w", ingredient, err)
			}
			printRecipes(out, recipes)
		default:
			recipes, err := c.ListRecipes()
			if err != nil {
				return fmt.Errorf("failed to list recipes: %w", err)
			}
			printRecipes(out, recipes)
		}
		return nil
	},
}

var recipeGetCmd = &cobra.Command{
	Use:   "get",
	Short: "Show a single recipe",
	Long: `Show a single recipe by number or by author.

Examples:
  cookshow recipe get --number 2
  cookshow recipe get --participant "Alice Smith"
  cookshow recipe get --chef "Gordon Ramsay"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newClient(cmd)
		if err != nil {
			return err
		}
		number, _ := cmd.Flags().GetInt("number")
		participant, _ := cmd.Flags().GetString("participant")
		chef, _ := cmd.Flags().GetString("chef")
		viewer, _ := cmd.Flags().GetString("viewer")
		out := cmd.OutOrStdout()

		var recipe *types.Recipe
		switch {
		case cmd.Flags().Changed("number"):
			recipe, err = c.GetRecipeByNumber(number)
		case participant != "":
			view, err := c.GetRecipeByParticipant(participant)
			if err != nil {
				return fmt.Errorf("failed to get recipe: %w", err)
			}
			printRecipeViews(out, []*types.RecipeView{view})
			return nil
		case chef != "":
			recipe, err = c.GetRecipeByChef(chef)
		case viewer != "":
			recipe, err = c.GetRecipeByViewer(viewer)
		default:
			return fmt.Errorf("one of --number, --participant, --chef or --viewer is required")
		}
		if err != nil {
			return fmt.Errorf("failed to get recipe: %w", err)
		}
		printRecipe(out, recipe)
		return nil
	},
}

func init() {
	recipeCmd.PersistentFlags().String("api", "localhost:8080", "API address")
	recipeCmd.AddCommand(recipeListCmd)
	recipeCmd.AddCommand(recipeGetCmd)

	recipeListCmd.Flags().Int("season", 0, "Only recipes of participants in this season")
	recipeListCmd.Flags().String("ingredient", "", "Only recipes using this ingredient")
	recipeListCmd.MarkFlagsMutuallyExclusive("season", "ingredient")

	recipeGetCmd.Flags().Int("number", 0, "Recipe number")
	recipeGetCmd.Flags().String("participant", "", "Participant full name")
	recipeGetCmd.Flags().String("chef", "", "Chef full name")
	recipeGetCmd.Flags().String("viewer", "", "Viewer full name")
	recipeGetCmd.MarkFlagsMutuallyExclusive("number", "participant", "chef", "viewer")
}

func newClient(cmd *cobra.Command) (*client.Client, error) {
	addr, _ := cmd.Flags().GetString("api")
	c, err := client.NewClient(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}
	return c, nil
}

func printRecipes(out io.Writer, recipes []*types.Recipe) {
	if len(recipes) == 0 {
		fmt.Fprintln(out, "No recipes found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NUM\tAUTHOR\tTITLE\tINGREDIENTS")
	for _, r := range recipes {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", r.Num, r.Author, r.Title, strings.Join(r.Ingredients, ", "))
	}
	w.Flush()
}

func printRecipeViews(out io.Writer, views []*types.RecipeView) {
	if len(views) == 0 {
		fmt.Fprintln(out, "No recipes found")
		return
	}
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEASON\tAUTHOR\tINGREDIENTS")
	for _, v := range views {
		fmt.Fprintf(w, "%d\t%s\t%s\n", v.Season, v.Author, strings.Join(v.Ingredients, ", "))
	}
	w.Flush()
}

func printRecipe(out io.Writer, r *types.Recipe) {
	fmt.Fprintf(out, "Recipe #%d\n", r.Num)
	fmt.Fprintf(out, "  ID:     %s\n", r.ID)
	if r.Title != "" {
		fmt.Fprintf(out, "  Title:  %s\n", r.Title)
	}
	fmt.Fprintf(out, "  Author: %s\n", r.Author)
	fmt.Fprintln(out, "  Ingredients:")
	for _, i := range r.Ingredients {
		fmt.Fprintf(out, "    - %s\n", i)
	}
	fmt.Fprintln(out, "  Instructions:")
	for n, step := range r.Instructions {
		fmt.Fprintf(out, "    %d. %s\n", n+1, step)
	}
}

