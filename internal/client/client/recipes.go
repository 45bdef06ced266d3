package client

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (c *HTTPClient) Recipes(ctx context.Context) ([]models.Recipe, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/recipes"})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Recipe](raw, "recipes")
}

func (c *HTTPClient) SearchRecipes(ctx context.Context, q models.RecipeQuery) ([]models.Recipe, error) {
	params := url.Values{}
	if q.Query != "" {
		params.Set("q", q.Query)
	}
	if q.Category != "" {
		params.Set("category", q.Category)
	}
	if q.SortBy != "" {
		params.Set("sort_by", q.SortBy)
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/recipes/search", query: params})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Recipe](raw, "recipes")
}

func (c *HTTPClient) Recipe(ctx context.Context, id string) (*models.Recipe, error) {
	if id == "" {
		return nil, errEmptyID
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: pathID("/recipes", id)})
	if err != nil {
		return nil, err
	}
	r, err := decode[models.Recipe](raw, "recipe")
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: "/recipes", body: in})
	if err != nil {
		return nil, err
	}
	r, err := decode[models.Recipe](raw, "recipe")
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (*models.Recipe, error) {
	if id == "" {
		return nil, errEmptyID
	}
	raw, err := c.do(ctx, request{method: http.MethodPut, path: pathID("/recipes", id), body: in})
	if err != nil {
		return nil, err
	}
	r, err := decode[models.Recipe](raw, "recipe")
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *HTTPClient) DeleteRecipe(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	_, err := c.do(ctx, request{method: http.MethodDelete, path: pathID("/recipes", id)})
	return err
}

func (c *HTTPClient) AddFavorite(ctx context.Context, id string) (*models.FavoriteResult, error) {
	return c.favorite(ctx, http.MethodPost, id, true)
}

func (c *HTTPClient) RemoveFavorite(ctx context.Context, id string) (*models.FavoriteResult, error) {
	return c.favorite(ctx, http.MethodDelete, id, false)
}

// favorite assumes the requested state when the answer omits is_favorite.
func (c *HTTPClient) favorite(ctx context.Context, method, id string, want bool) (*models.FavoriteResult, error) {
	if id == "" {
		return nil, errEmptyID
	}
	raw, err := c.do(ctx, request{method: method, path: pathID("/recipes", id, "favorite")})
	if err != nil {
		return nil, err
	}
	body, err := decode[struct {
		IsFavorite *bool  `json:"is_favorite"`
		Message    string `json:"message"`
	}](raw, "")
	if err != nil {
		return nil, err
	}
	res := &models.FavoriteResult{IsFavorite: want, Message: body.Message}
	if body.IsFavorite != nil {
		res.IsFavorite = *body.IsFavorite
	}
	return res, nil
}

func (c *HTTPClient) Favorites(ctx context.Context) ([]models.Recipe, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/recipes/favorites"})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Recipe](raw, "recipes")
}

// Query runs one LLM generation, modification or fork. It uses the longer
// generation timeout.
func (c *HTTPClient) Query(ctx context.Context, req models.LLMQueryRequest) (*models.LLMQueryResponse, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: "/llm/query", body: req, timeout: c.genTimeout})
	if err != nil {
		return nil, err
	}
	resp, err := decode[models.LLMQueryResponse](raw, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
