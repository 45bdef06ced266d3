package stores

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const AlreadyUpdatedMessage = "Favorite status already updated"

// RecipeStore caches the recipe list and the viewer's favorite flags.
type RecipeStore struct {
	api client.RecipeAPI
	log logging.Logger

	mu        sync.RWMutex
	recipes   []models.Recipe
	favorites []models.Recipe
	fav       map[string]bool
	inflight  map[string]chan struct{}
	loading   int
	err       string
}

func NewRecipeStore(api client.RecipeAPI, log logging.Logger) *RecipeStore {
	if log == nil {
		log = logging.NewNop()
	}
	return &RecipeStore{
		api:      api,
		log:      log.With("component", "recipes"),
		fav:      make(map[string]bool),
		inflight: make(map[string]chan struct{}),
	}
}

// Fetch replaces the cached list with GET /recipes.
func (s *RecipeStore) Fetch(ctx context.Context) error {
	s.begin()
	defer s.end()

	list, err := s.api.Recipes(ctx)
	if err != nil {
		return s.fail(err, "Failed to fetch recipes")
	}
	s.replace(list)
	return nil
}

// Search replaces the cached list with the matching recipes.
func (s *RecipeStore) Search(ctx context.Context, query, category, sortBy string) error {
	s.begin()
	defer s.end()

	list, err := s.api.SearchRecipes(ctx, models.RecipeQuery{Query: query, Category: category, SortBy: sortBy})
	if err != nil {
		return s.fail(err, "Failed to search recipes")
	}
	s.replace(list)
	return nil
}

// Get loads one recipe and splices it into the list when it is cached.
func (s *RecipeStore) Get(ctx context.Context, id string) (*models.Recipe, error) {
	s.begin()
	defer s.end()

	r, err := s.api.Recipe(ctx, id)
	if err != nil {
		return nil, s.fail(err, "Failed to fetch recipe")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.learn(*r)
	if i := s.index(id); i >= 0 {
		s.recipes[i] = *r
	}
	out := s.view(*r)
	return &out, nil
}

func (s *RecipeStore) Create(ctx context.Context, in models.RecipeInput) (*models.Recipe, error) {
	s.begin()
	defer s.end()

	r, err := s.api.CreateRecipe(ctx, in)
	if err != nil {
		return nil, s.fail(err, "Failed to create recipe")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.learn(*r)
	s.recipes = append(s.recipes, *r)
	out := s.view(*r)
	return &out, nil
}

func (s *RecipeStore) Update(ctx context.Context, id string, in models.RecipeInput) (*models.Recipe, error) {
	s.begin()
	defer s.end()

	r, err := s.api.UpdateRecipe(ctx, id, in)
	if err != nil {
		return nil, s.fail(err, "Failed to update recipe")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.learn(*r)
	if i := s.index(id); i >= 0 {
		s.recipes[i] = *r
	}
	out := s.view(*r)
	return &out, nil
}

func (s *RecipeStore) Delete(ctx context.Context, id string) error {
	s.begin()
	defer s.end()

	if err := s.api.DeleteRecipe(ctx, id); err != nil {
		return s.fail(err, "Failed to delete recipe")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.index(id); i >= 0 {
		s.recipes = append(s.recipes[:i], s.recipes[i+1:]...)
	}
	for i := range s.favorites {
		if s.favorites[i].ID == id {
			s.favorites = append(s.favorites[:i], s.favorites[i+1:]...)
			break
		}
	}
	delete(s.fav, id)
	return nil
}

// FetchFavorites loads the viewer's favorites; every returned recipe is
// marked favorite.
func (s *RecipeStore) FetchFavorites(ctx context.Context) error {
	s.begin()
	defer s.end()

	list, err := s.api.Favorites(ctx)
	if err != nil {
		return s.fail(err, "Failed to fetch favorites")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.favorites = make([]models.Recipe, len(list))
	for i, r := range list {
		r.IsFavorite = true
		s.learn(r)
		s.favorites[i] = r
	}
	return nil
}

// ToggleFavorite flips the favorite flag of a recipe. The cache changes
// before the backend is called and is settled once the call returns: the
// server's answer on success, the optimistic value on conflict, the previous
// value on any other failure. Toggles of the same recipe are serialized; a
// second one waits for the first and flips the settled value.
func (s *RecipeStore) ToggleFavorite(ctx context.Context, id string) (*models.FavoriteResult, error) {
	prev, done, err := s.acquire(ctx, id)
	if err != nil {
		return nil, err
	}
	defer done()

	desired := !prev
	var res *models.FavoriteResult
	if prev {
		res, err = s.api.RemoveFavorite(ctx, id)
	} else {
		res, err = s.api.AddFavorite(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err == nil:
		s.setFavorite(id, res.IsFavorite)
		s.err = ""
		return res, nil
	case errors.Is(err, client.ErrConflict):
		s.err = ""
		s.log.Debug(ctx, "favorite already in desired state", "recipe_id", id, "is_favorite", desired)
		return &models.FavoriteResult{IsFavorite: desired, Message: AlreadyUpdatedMessage}, nil
	default:
		s.setFavorite(id, prev)
		s.err = client.Message(err, "Failed to update favorite")
		return nil, err
	}
}

// acquire takes the per-recipe toggle slot and applies the optimistic
// write. It returns the pre-toggle value and the release func.
func (s *RecipeStore) acquire(ctx context.Context, id string) (bool, func(), error) {
	for {
		s.mu.Lock()
		wait, busy := s.inflight[id]
		if !busy {
			ch := make(chan struct{})
			s.inflight[id] = ch
			prev := s.fav[id]
			s.setFavorite(id, !prev)
			s.mu.Unlock()

			release := func() {
				s.mu.Lock()
				delete(s.inflight, id)
				s.mu.Unlock()
				close(ch)
			}
			return prev, release, nil
		}
		s.mu.Unlock()

		select {
		case <-wait:
		case <-ctx.Done():
			return false, nil, ctx.Err()
		}
	}
}

// IsFavorite reports the known favorite state; unknown recipes are not
// favorites.
func (s *RecipeStore) IsFavorite(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fav[id]
}

// Recipes returns a copy of the cached list.
func (s *RecipeStore) Recipes() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, len(s.recipes))
	for i, r := range s.recipes {
		out[i] = s.view(r)
	}
	return out
}

// Favorites returns a copy of the list loaded by FetchFavorites, without
// recipes that have since been unfavorited.
func (s *RecipeStore) Favorites() []models.Recipe {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Recipe, 0, len(s.favorites))
	for _, r := range s.favorites {
		if s.fav[r.ID] {
			out = append(out, s.view(r))
		}
	}
	return out
}

func (s *RecipeStore) ByID(id string) (models.Recipe, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.index(id); i >= 0 {
		return s.view(s.recipes[i]), true
	}
	return models.Recipe{}, false
}

func (s *RecipeStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *RecipeStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

func (s *RecipeStore) replace(list []models.Recipe) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.recipes = append([]models.Recipe(nil), list...)
	for _, r := range list {
		s.learn(r)
	}
}

// learn records the server's favorite flag unless a toggle is in flight.
// Callers hold s.mu.
func (s *RecipeStore) learn(r models.Recipe) {
	if _, busy := s.inflight[r.ID]; busy {
		return
	}
	s.fav[r.ID] = r.IsFavorite
}

// setFavorite updates the flag everywhere it is cached. Callers hold s.mu.
func (s *RecipeStore) setFavorite(id string, v bool) {
	s.fav[id] = v
	if i := s.index(id); i >= 0 {
		s.recipes[i].IsFavorite = v
	}
}

func (s *RecipeStore) view(r models.Recipe) models.Recipe {
	if v, ok := s.fav[r.ID]; ok {
		r.IsFavorite = v
	}
	return r
}

func (s *RecipeStore) index(id string) int {
	for i := range s.recipes {
		if s.recipes[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *RecipeStore) begin() {
	s.mu.Lock()
	s.loading++
	s.err = ""
	s.mu.Unlock()
}

func (s *RecipeStore) end() {
	s.mu.Lock()
	s.loading--
	s.mu.Unlock()
}

func (s *RecipeStore) fail(err error, fallback string) error {
	s.mu.Lock()
	s.err = client.Message(err, fallback)
	s.mu.Unlock()
	return err
}
