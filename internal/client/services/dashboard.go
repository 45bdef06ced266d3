package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

type DashboardService interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
	RecentFavorites(ctx context.Context) ([]models.Recipe, error)
}

type dashboardService struct {
	api client.DashboardAPI
}

func NewDashboardService(api client.DashboardAPI) DashboardService {
	return &dashboardService{api: api}
}

func (s *dashboardService) Stats(ctx context.Context) (*models.DashboardStats, error) {
	st, err := s.api.DashboardStats(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard stats: %w", err)
	}
	return st, nil
}

func (s *dashboardService) RecentFavorites(ctx context.Context) ([]models.Recipe, error) {
	list, err := s.api.RecentFavorites(ctx)
	if err != nil {
		return nil, fmt.Errorf("recent favorites: %w", err)
	}
	if list == nil {
		list = []models.Recipe{}
	}
	return list, nil
}
