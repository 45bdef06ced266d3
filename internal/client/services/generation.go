package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/drafts"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

// RecipeCreator is the part of the recipe store drafts are saved through.
type RecipeCreator interface {
	Create(ctx context.Context, in models.RecipeInput) (*models.Recipe, error)
}

// GenerationService drives the LLM recipe flow.
//
// Contract:
//   - Generate, Modify and Fork post to /llm/query with the matching intent.
//     A returned draft becomes the last draft and is stored locally.
//   - SaveDraft turns a draft into a new recipe.
//   - Restore reloads the newest stored draft after a restart.
type GenerationService interface {
	Generate(ctx context.Context, query string, skipSimilar bool) (*models.LLMQueryResponse, error)
	Modify(ctx context.Context, query, draftID string) (*models.LLMQueryResponse, error)
	Fork(ctx context.Context, query, recipeID string) (*models.LLMQueryResponse, error)
	SaveDraft(ctx context.Context, d *models.RecipeDraft) (*models.Recipe, error)
	LastDraft() *models.RecipeDraft
	Restore(ctx context.Context) error
	Drafts(ctx context.Context) ([]drafts.Stored, error)
}

type generationService struct {
	api     client.LLMAPI
	recipes RecipeCreator
	repo    drafts.Repository
	log     logging.Logger

	mu   sync.RWMutex
	last *models.RecipeDraft
}

// NewGenerationService wires the LLM endpoint, the recipe store and an
// optional local draft repository (nil disables persistence).
func NewGenerationService(api client.LLMAPI, recipes RecipeCreator, repo drafts.Repository, log logging.Logger) GenerationService {
	if log == nil {
		log = logging.NewNop()
	}
	return &generationService{api: api, recipes: recipes, repo: repo, log: log.With("component", "generation")}
}

func (s *generationService) Generate(ctx context.Context, query string, skipSimilar bool) (*models.LLMQueryResponse, error) {
	return s.query(ctx, models.LLMQueryRequest{Query: query, Intent: models.IntentGenerate, SkipSimilarCheck: skipSimilar})
}

func (s *generationService) Modify(ctx context.Context, query, draftID string) (*models.LLMQueryResponse, error) {
	if strings.TrimSpace(draftID) == "" {
		return nil, ErrMissingDraft
	}
	return s.query(ctx, models.LLMQueryRequest{Query: query, Intent: models.IntentModify, DraftID: draftID})
}

func (s *generationService) Fork(ctx context.Context, query, recipeID string) (*models.LLMQueryResponse, error) {
	if strings.TrimSpace(recipeID) == "" {
		return nil, ErrMissingRecipe
	}
	return s.query(ctx, models.LLMQueryRequest{Query: query, Intent: models.IntentFork, RecipeID: recipeID})
}

func (s *generationService) query(ctx context.Context, req models.LLMQueryRequest) (*models.LLMQueryResponse, error) {
	req.Query = strings.TrimSpace(req.Query)
	if req.Query == "" {
		return nil, ErrEmptyQuery
	}

	resp, err := s.api.Query(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("llm %s: %w", req.Intent, err)
	}
	if resp.Recipe == nil {
		// similar recipes found or a plain message; nothing to keep
		return resp, nil
	}
	if resp.Recipe.ID == "" {
		resp.Recipe.ID = resp.DraftID
	}

	d := *resp.Recipe
	s.mu.Lock()
	s.last = &d
	s.mu.Unlock()

	if s.repo != nil && d.ID != "" {
		if err := s.repo.Save(ctx, req.Query, &d); err != nil {
			s.log.Warn(ctx, "failed to store draft", "draft_id", d.ID, "error", err)
		}
	}
	return resp, nil
}

// SaveDraft creates a recipe from d, or from the last draft when d is nil.
// The stored copy of the draft is removed once the recipe exists.
func (s *generationService) SaveDraft(ctx context.Context, d *models.RecipeDraft) (*models.Recipe, error) {
	if d == nil {
		d = s.LastDraft()
	}
	if d == nil {
		return nil, ErrNoDraft
	}

	r, err := s.recipes.Create(ctx, d.ToRecipeInput())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	if s.last != nil && s.last.ID == d.ID {
		s.last = nil
	}
	s.mu.Unlock()

	if s.repo != nil && d.ID != "" {
		if err := s.repo.Delete(ctx, d.ID); err != nil && !errors.Is(err, drafts.ErrNotFound) {
			s.log.Warn(ctx, "failed to drop saved draft", "draft_id", d.ID, "error", err)
		}
	}
	s.log.Info(ctx, "draft saved as recipe", "draft_id", d.ID, "recipe_id", r.ID)
	return r, nil
}

func (s *generationService) LastDraft() *models.RecipeDraft {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.last == nil {
		return nil
	}
	d := *s.last
	return &d
}

func (s *generationService) Restore(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}
	st, err := s.repo.Latest(ctx)
	if errors.Is(err, drafts.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		d := st.Draft
		s.last = &d
	}
	return nil
}

func (s *generationService) Drafts(ctx context.Context) ([]drafts.Stored, error) {
	if s.repo == nil {
		return nil, nil
	}
	return s.repo.List(ctx)
}
