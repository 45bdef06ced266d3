package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

const (
	DefaultFeaturedLimit   = 6
	DefaultByCategoryLimit = 4
)

type FeaturedService interface {
	Featured(ctx context.Context, limit int) (*models.FeaturedRecipes, error)
	ByCategory(ctx context.Context, category string, limit int) (*models.FeaturedRecipes, error)
}

type featuredService struct {
	api client.FeaturedAPI
}

func NewFeaturedService(api client.FeaturedAPI) FeaturedService {
	return &featuredService{api: api}
}

// Featured returns the highlighted recipes; a non-positive limit means 6.
func (s *featuredService) Featured(ctx context.Context, limit int) (*models.FeaturedRecipes, error) {
	if limit <= 0 {
		limit = DefaultFeaturedLimit
	}
	return s.api.Featured(ctx, limit)
}

// ByCategory is Featured restricted to one category; the default limit is 4.
func (s *featuredService) ByCategory(ctx context.Context, category string, limit int) (*models.FeaturedRecipes, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil, fmt.Errorf("%w: category is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = DefaultByCategoryLimit
	}
	return s.api.FeaturedByCategory(ctx, category, limit)
}
