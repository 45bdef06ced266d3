package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

var (
	feedbackTypes      = []string{"bug", "feature", "general"}
	feedbackPriorities = []string{"low", "medium", "high", "critical"}
	feedbackStatuses   = []string{"open", "in_progress", "resolved", "closed"}
)

type FeedbackService interface {
	Create(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error)
	List(ctx context.Context, f models.FeedbackFilter) ([]models.Feedback, error)
	Get(ctx context.Context, id string) (*models.Feedback, error)
	UpdateStatus(ctx context.Context, id string, upd models.FeedbackStatusUpdate) (string, error)
}

type feedbackService struct {
	api client.FeedbackAPI
}

func NewFeedbackService(api client.FeedbackAPI) FeedbackService {
	return &feedbackService{api: api}
}

func (s *feedbackService) Create(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error) {
	req.Title = strings.TrimSpace(req.Title)
	req.Description = strings.TrimSpace(req.Description)
	if req.Type == "" {
		req.Type = "general"
	}
	switch {
	case !slices.Contains(feedbackTypes, req.Type):
		return nil, fmt.Errorf("%w: unknown feedback type %q", ErrInvalidInput, req.Type)
	case req.Title == "":
		return nil, fmt.Errorf("%w: title is required", ErrInvalidInput)
	case req.Description == "":
		return nil, fmt.Errorf("%w: description is required", ErrInvalidInput)
	case req.Priority != "" && !slices.Contains(feedbackPriorities, req.Priority):
		return nil, fmt.Errorf("%w: unknown priority %q", ErrInvalidInput, req.Priority)
	}
	return s.api.CreateFeedback(ctx, req)
}

func (s *feedbackService) List(ctx context.Context, f models.FeedbackFilter) ([]models.Feedback, error) {
	list, err := s.api.ListFeedback(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return list, nil
}

func (s *feedbackService) Get(ctx context.Context, id string) (*models.Feedback, error) {
	if strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("%w: feedback id is required", ErrInvalidInput)
	}
	return s.api.Feedback(ctx, id)
}

func (s *feedbackService) UpdateStatus(ctx context.Context, id string, upd models.FeedbackStatusUpdate) (string, error) {
	if !slices.Contains(feedbackStatuses, upd.Status) {
		return "", fmt.Errorf("%w: unknown feedback status %q", ErrInvalidInput, upd.Status)
	}
	return s.api.UpdateFeedbackStatus(ctx, id, upd)
}
