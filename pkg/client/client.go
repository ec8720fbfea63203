package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/cuemby/cookshow/pkg/api"
	"github.com/cuemby/cookshow/pkg/service"
	"github.com/cuemby/cookshow/pkg/types"
)

// DefaultTimeout bounds every API call
const DefaultTimeout = 10 * time.Second

// Client wraps the cookshow REST API for CLI usage
type Client struct {
	baseURL string
	http    *http.Client
	timeout time.Duration
}

// NewClient creates a client for the API at addr ("localhost:8080" or a full URL)
func NewClient(addr string) (*Client, error) {
	if addr == "" {
		return nil, fmt.Errorf("API address is required")
	}
	if !strings.Contains(addr, "://") {
		addr = "http://" + addr
	}
	u, err := url.Parse(addr)
	if err != nil {
		return nil, fmt.Errorf("invalid API address %q: %w", addr, err)
	}

	return &Client{
		baseURL: strings.TrimRight(u.String(), "/"),
		http:    &http.Client{},
		timeout: DefaultTimeout,
	}, nil
}

// APIError is a non-2xx response from the server
type APIError struct {
	StatusCode int
	Code       string `json:"code"`
	Message    string `json:"message"`
	RequestID  string `json:"requestId"`
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: HTTP %d", e.StatusCode)
	}
	return fmt.Sprintf("API error (%s): %s", e.Code, e.Message)
}

// IsNotFound reports whether err is a 404 from the API
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// IsConflict reports whether err is a duplicate-name rejection
func IsConflict(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Code == api.ErrCodeConflict
}

func (c *Client) do(method, path string, body, out interface{}) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return apiErr
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func escape(s string) string {
	return url.PathEscape(s)
}

// Chefs

// CreateChef creates a chef
func (c *Client) CreateChef(fullName string) (*types.Chef, error) {
	var chef types.Chef
	if err := c.do(http.MethodPost, "/chef", api.CreateCookerRequest{FullName: fullName}, &chef); err != nil {
		return nil, err
	}
	return &chef, nil
}

// GetChef gets a chef by id
func (c *Client) GetChef(id string) (*types.Chef, error) {
	var chef types.Chef
	if err := c.do(http.MethodGet, "/chef/"+escape(id), nil, &chef); err != nil {
		return nil, err
	}
	return &chef, nil
}

// DeleteChef deletes a chef
func (c *Client) DeleteChef(id string) error {
	return c.do(http.MethodDelete, "/chef/"+escape(id), nil, nil)
}

// Viewers

// CreateViewer creates a viewer
func (c *Client) CreateViewer(fullName string) (*types.Viewer, error) {
	var viewer types.Viewer
	if err := c.do(http.MethodPost, "/viewer", api.CreateCookerRequest{FullName: fullName}, &viewer); err != nil {
		return nil, err
	}
	return &viewer, nil
}

// GetViewerByName gets a viewer by full name
func (c *Client) GetViewerByName(fullName string) (*types.Viewer, error) {
	var viewer types.Viewer
	if err := c.do(http.MethodGet, "/viewer/"+escape(fullName), nil, &viewer); err != nil {
		return nil, err
	}
	return &viewer, nil
}

// DeleteViewer deletes a viewer
func (c *Client) DeleteViewer(id string) error {
	return c.do(http.MethodDelete, "/viewer/"+escape(id), nil, nil)
}

// Participants

// CreateParticipant creates a participant in a season
func (c *Client) CreateParticipant(fullName string, season int) (*types.Participant, error) {
	var participant types.Participant
	body := api.CreateParticipantRequest{FullName: fullName, Season: season}
	if err := c.do(http.MethodPost, "/participant", body, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetParticipant gets a participant by id
func (c *Client) GetParticipant(id string) (*types.Participant, error) {
	var participant types.Participant
	if err := c.do(http.MethodGet, "/participant/id/"+escape(id), nil, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// GetParticipantByName gets a participant by full name
func (c *Client) GetParticipantByName(fullName string) (*types.Participant, error) {
	var participant types.Participant
	if err := c.do(http.MethodGet, "/participant/name/"+escape(fullName), nil, &participant); err != nil {
		return nil, err
	}
	return &participant, nil
}

// DeleteParticipant deletes a participant
func (c *Client) DeleteParticipant(id string) error {
	return c.do(http.MethodDelete, "/participant/"+escape(id), nil, nil)
}

// Recipes

// CreateRecipe creates a recipe from its flat form
func (c *Client) CreateRecipe(input service.RecipeInput) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.do(http.MethodPost, "/recipe", input, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipes lists every recipe
func (c *Client) ListRecipes() ([]*types.Recipe, error) {
	recipes := []*types.Recipe{}
	if err := c.do(http.MethodGet, "/recipe", nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipeByParticipant gets a participant's recipe with its season
func (c *Client) GetRecipeByParticipant(authorName string) (*types.RecipeView, error) {
	var view types.RecipeView
	if err := c.do(http.MethodGet, "/recipe/participant/"+escape(authorName), nil, &view); err != nil {
		return nil, err
	}
	return &view, nil
}

// GetRecipeByChef gets the recipe of a chef
func (c *Client) GetRecipeByChef(name string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.do(http.MethodGet, "/recipe/chef/"+escape(name), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeByViewer gets the recipe of a viewer
func (c *Client) GetRecipeByViewer(name string) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.do(http.MethodGet, "/recipe/viewer/"+escape(name), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetRecipeByNumber gets a recipe by its sequence number
func (c *Client) GetRecipeByNumber(num int) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.do(http.MethodGet, "/recipe/number/"+strconv.Itoa(num), nil, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// ListRecipesBySeason lists recipe views for a season
func (c *Client) ListRecipesBySeason(season int) ([]*types.RecipeView, error) {
	views := []*types.RecipeView{}
	if err := c.do(http.MethodGet, "/recipe/season/"+strconv.Itoa(season), nil, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// ListRecipesByIngredient lists recipes using an ingredient
func (c *Client) ListRecipesByIngredient(ingredient string) ([]*types.Recipe, error) {
	recipes := []*types.Recipe{}
	if err := c.do(http.MethodGet, "/recipe/ingredient/"+escape(ingredient), nil, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// UpdateRecipe applies a partial update
func (c *Client) UpdateRecipe(id string, patch service.RecipePatch) (*types.Recipe, error) {
	var recipe types.Recipe
	if err := c.do(http.MethodPut, "/recipe/"+escape(id), patch, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// DeleteRecipe deletes a recipe
func (c *Client) DeleteRecipe(id string) error {
	return c.do(http.MethodDelete, "/recipe/"+escape(id), nil, nil)
}
