package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cuemby/cookshow/pkg/client"
	"github.com/cuemby/cookshow/pkg/service"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var applyCmd = &cobra.Command{
	Use:   "apply",
	Short: "Apply a resource file",
	Long: `Create chefs, viewers, participants and recipes from a YAML file.

A file may hold several documents separated by "---". Resources whose name
already exists are reported and skipped.

Examples:
  # Seed a season
  cookshow apply -f season3.yaml

  # Against a remote server
  cookshow apply -f recipes.yaml --api cookshow.internal:8080`,
	RunE: runApply,
}

func init() {
	applyCmd.Flags().StringP("file", "f", "", "YAML file to apply (required)")
	applyCmd.Flags().String("api", "localhost:8080", "API address")
	_ = applyCmd.MarkFlagRequired("file")
}

// Resource is one document of an apply file
type Resource struct {
	APIVersion string                 `yaml:"apiVersion"`
	Kind       string                 `yaml:"kind"`
	Metadata   ResourceMetadata       `yaml:"metadata"`
	Spec       map[string]interface{} `yaml:"spec"`
}

type ResourceMetadata struct {
	Name   string            `yaml:"name"`
	Labels map[string]string `yaml:"labels,omitempty"`
}

func runApply(cmd *cobra.Command, args []string) error {
	filename, _ := cmd.Flags().GetString("file")

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}
	defer f.Close()

	resources, err := parseResources(f)
	if err != nil {
		return err
	}

	c, err := newClient(cmd)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, r := range resources {
		if err := applyResource(out, c, r); err != nil {
			return fmt.Errorf("%s %q: %w", r.Kind, r.Metadata.Name, err)
		}
	}
	return nil
}

// parseResources decodes every YAML document in r, skipping empty ones
func parseResources(r io.Reader) ([]*Resource, error) {
	dec := yaml.NewDecoder(r)
	var resources []*Resource
	for i := 1; ; i++ {
		var res Resource
		err := dec.Decode(&res)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to parse YAML document %d: %w", i, err)
		}
		if res.Kind == "" && res.Metadata.Name == "" {
			continue
		}
		if res.Metadata.Name == "" {
			return nil, fmt.Errorf("document %d: metadata.name is required", i)
		}
		resources = append(resources, &res)
	}
	return resources, nil
}

func applyResource(out io.Writer, c *client.Client, r *Resource) error {
	switch r.Kind {
	case "Chef":
		return applyChef(out, c, r)
	case "Viewer":
		return applyViewer(out, c, r)
	case "Participant":
		return applyParticipant(out, c, r)
	case "Recipe":
		return applyRecipe(out, c, r)
	default:
		return fmt.Errorf("unsupported resource kind: %s", r.Kind)
	}
}

func applyChef(out io.Writer, c *client.Client, r *Resource) error {
	name := r.Metadata.Name
	chef, err := c.CreateChef(name)
	if client.IsConflict(err) {
		fmt.Fprintf(out, "Chef already exists: %s (skipping)\n", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create chef: %w", err)
	}
	fmt.Fprintf(out, "✓ Chef created: %s (ID: %s)\n", name, chef.ID)
	return nil
}

func applyViewer(out io.Writer, c *client.Client, r *Resource) error {
	name := r.Metadata.Name
	viewer, err := c.CreateViewer(name)
	if client.IsConflict(err) {
		fmt.Fprintf(out, "Viewer already exists: %s (skipping)\n", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create viewer: %w", err)
	}
	fmt.Fprintf(out, "✓ Viewer created: %s (ID: %s)\n", name, viewer.ID)
	return nil
}

func applyParticipant(out io.Writer, c *client.Client, r *Resource) error {
	name := r.Metadata.Name
	season := getInt(r.Spec, "season", 0)

	participant, err := c.CreateParticipant(name, season)
	if client.IsConflict(err) {
		fmt.Fprintf(out, "Participant already exists: %s (skipping)\n", name)
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to create participant: %w", err)
	}
	fmt.Fprintf(out, "✓ Participant created: %s (season %d, ID: %s)\n", name, season, participant.ID)
	return nil
}

// applyRecipe creates a recipe named after its author unless that author
// already has one
func applyRecipe(out io.Writer, c *client.Client, r *Resource) error {
	author := getString(r.Spec, "author", r.Metadata.Name)

	existing, err := c.ListRecipes()
	if err != nil {
		return fmt.Errorf("failed to list recipes: %w", err)
	}
	for _, recipe := range existing {
		if recipe.Author == author {
			fmt.Fprintf(out, "Recipe already exists for %s: #%d (skipping)\n", author, recipe.Num)
			return nil
		}
	}

	recipe, err := c.CreateRecipe(service.RecipeInput{
		Title:        getString(r.Spec, "title", ""),
		Author:       author,
		Ingredients:  getList(r.Spec, "ingredients", ", "),
		Instructions: getList(r.Spec, "instructions", "; "),
	})
	if err != nil {
		return fmt.Errorf("failed to create recipe: %w", err)
	}
	fmt.Fprintf(out, "✓ Recipe created: #%d by %s (ID: %s)\n", recipe.Num, author, recipe.ID)
	return nil
}

// Helper functions
func getString(m map[string]interface{}, key, defaultValue string) string {
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprintf("%v", v)
	}
	return defaultValue
}

func getInt(m map[string]interface{}, key string, defaultValue int) int {
	if v, ok := m[key]; ok {
		switch val := v.(type) {
		case int:
			return val
		case float64:
			return int(val)
		}
	}
	return defaultValue
}

// getList accepts either a YAML sequence or an already separated string
func getList(m map[string]interface{}, key, sep string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return ""
	}
	items, ok := v.([]interface{})
	if !ok {
		return fmt.Sprintf("%v", v)
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%v", item))
	}
	return strings.Join(parts, sep)
}
