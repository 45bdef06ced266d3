package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (c *HTTPClient) RecipeCreationLimit(ctx context.Context) (*models.RateLimitStatus, error) {
	return c.rateLimit(ctx, "/rate-limits/recipe-creation")
}

func (c *HTTPClient) RecipeModificationLimit(ctx context.Context, recipeID string) (*models.RateLimitStatus, error) {
	if recipeID == "" {
		return nil, errEmptyID
	}
	return c.rateLimit(ctx, pathID("/rate-limits/recipe-modification", recipeID))
}

func (c *HTTPClient) rateLimit(ctx context.Context, path string) (*models.RateLimitStatus, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: path})
	if err != nil {
		return nil, err
	}
	st, err := decode[models.RateLimitStatus](raw, "")
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/dashboard/stats"})
	if err != nil {
		return nil, err
	}
	st, err := decode[models.DashboardStats](raw, "")
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) RecentFavorites(ctx context.Context) ([]models.Recipe, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/dashboard/favorites/recent"})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Recipe](raw, "recipes")
}

func (c *HTTPClient) Featured(ctx context.Context, limit int) (*models.FeaturedRecipes, error) {
	return c.featured(ctx, "/featured", limit)
}

func (c *HTTPClient) FeaturedByCategory(ctx context.Context, category string, limit int) (*models.FeaturedRecipes, error) {
	if category == "" {
		return nil, errEmptyID
	}
	return c.featured(ctx, pathID("/featured/category", category), limit)
}

func (c *HTTPClient) featured(ctx context.Context, path string, limit int) (*models.FeaturedRecipes, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: path, query: params})
	if err != nil {
		return nil, err
	}
	f, err := decode[models.FeaturedRecipes](raw, "")
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) CreateFeedback(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: "/feedback", body: req})
	if err != nil {
		return nil, err
	}
	f, err := decode[models.Feedback](raw, "feedback")
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) ListFeedback(ctx context.Context, f models.FeedbackFilter) ([]models.Feedback, error) {
	params := url.Values{}
	setIf(params, "type", f.Type)
	setIf(params, "status", f.Status)
	setIf(params, "priority", f.Priority)
	setIf(params, "user_id", f.UserID)
	if f.Limit > 0 {
		params.Set("limit", strconv.Itoa(f.Limit))
	}
	if f.Offset > 0 {
		params.Set("offset", strconv.Itoa(f.Offset))
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/feedback", query: params})
	if err != nil {
		return nil, err
	}
	return decode[[]models.Feedback](raw, "feedback")
}

func (c *HTTPClient) Feedback(ctx context.Context, id string) (*models.Feedback, error) {
	if id == "" {
		return nil, errEmptyID
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: pathID("/feedback", id)})
	if err != nil {
		return nil, err
	}
	f, err := decode[models.Feedback](raw, "feedback")
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (c *HTTPClient) UpdateFeedbackStatus(ctx context.Context, id string, upd models.FeedbackStatusUpdate) (string, error) {
	if id == "" {
		return "", errEmptyID
	}
	raw, err := c.do(ctx, request{method: http.MethodPut, path: pathID("/feedback", id, "status"), body: upd})
	if err != nil {
		return "", err
	}
	return messageOf(raw)
}

func setIf(v url.Values, key, value string) {
	if value != "" {
		v.Set(key, value)
	}
}
