package stores

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const (
	DefaultPageSize  = 20
	DefaultStatsDays = 30
	DefaultTopUsers  = 10
)

// AdminStore backs the admin console. Mutations refetch the page they
// affect instead of patching it locally.
type AdminStore struct {
	api client.AdminAPI
	log logging.Logger

	mu       sync.RWMutex
	users    models.Page[models.User]
	search   string
	details  *models.UserDetails
	recipes  models.Page[models.Recipe]
	actions  models.Page[models.AdminAction]
	platform *models.PlatformStats
	daily    []models.DailyStats
	topUsers []models.TopUser
	loading  int
	err      string
}

func NewAdminStore(api client.AdminAPI, log logging.Logger) *AdminStore {
	if log == nil {
		log = logging.NewNop()
	}
	return &AdminStore{
		api:     api,
		log:     log.With("component", "admin"),
		users:   models.Page[models.User]{Page: 1, PageSize: DefaultPageSize},
		recipes: models.Page[models.Recipe]{Page: 1, PageSize: DefaultPageSize},
		actions: models.Page[models.AdminAction]{Page: 1, PageSize: DefaultPageSize},
	}
}

func (s *AdminStore) FetchUsers(ctx context.Context, page int, search string) error {
	if page < 1 {
		page = 1
	}
	return s.run("Failed to fetch users", func() error {
		p, err := s.api.AdminUsers(ctx, page, DefaultPageSize, search)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.users = normalizePage(*p, page)
		s.search = search
		s.mu.Unlock()
		return nil
	})
}

func (s *AdminStore) FetchUserDetails(ctx context.Context, id string) error {
	return s.run("Failed to fetch user details", func() error {
		d, err := s.api.AdminUserDetails(ctx, id)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.details = d
		s.mu.Unlock()
		return nil
	})
}

func (s *AdminStore) UpdateUserRole(ctx context.Context, id string, role models.Role) error {
	return s.mutateUsers(ctx, "Failed to update user role", func() error {
		return s.api.AdminUpdateUserRole(ctx, id, role)
	})
}

func (s *AdminStore) BanUser(ctx context.Context, id, reason string) error {
	return s.mutateUsers(ctx, "Failed to ban user", func() error {
		return s.api.AdminBanUser(ctx, id, reason)
	})
}

func (s *AdminStore) UnbanUser(ctx context.Context, id string) error {
	return s.mutateUsers(ctx, "Failed to unban user", func() error {
		return s.api.AdminUnbanUser(ctx, id)
	})
}

func (s *AdminStore) DeleteUser(ctx context.Context, id string) error {
	return s.mutateUsers(ctx, "Failed to delete user", func() error {
		return s.api.AdminDeleteUser(ctx, id)
	})
}

func (s *AdminStore) mutateUsers(ctx context.Context, fallback string, call func() error) error {
	if err := s.run(fallback, call); err != nil {
		return err
	}
	s.mu.RLock()
	page, search := s.users.Page, s.search
	s.mu.RUnlock()
	return s.FetchUsers(ctx, page, search)
}

func (s *AdminStore) FetchRecipes(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	return s.run("Failed to fetch recipes", func() error {
		p, err := s.api.AdminRecipes(ctx, page, DefaultPageSize)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.recipes = normalizePage(*p, page)
		s.mu.Unlock()
		return nil
	})
}

func (s *AdminStore) HideRecipe(ctx context.Context, id, reason string) error {
	return s.mutateRecipes(ctx, "Failed to hide recipe", func() error {
		return s.api.AdminHideRecipe(ctx, id, reason)
	})
}

func (s *AdminStore) UnhideRecipe(ctx context.Context, id string) error {
	return s.mutateRecipes(ctx, "Failed to unhide recipe", func() error {
		return s.api.AdminUnhideRecipe(ctx, id)
	})
}

func (s *AdminStore) DeleteRecipe(ctx context.Context, id string) error {
	return s.mutateRecipes(ctx, "Failed to delete recipe", func() error {
		return s.api.AdminDeleteRecipe(ctx, id)
	})
}

func (s *AdminStore) mutateRecipes(ctx context.Context, fallback string, call func() error) error {
	if err := s.run(fallback, call); err != nil {
		return err
	}
	s.mu.RLock()
	page := s.recipes.Page
	s.mu.RUnlock()
	return s.FetchRecipes(ctx, page)
}

func (s *AdminStore) FetchPlatformStats(ctx context.Context) error {
	return s.run("Failed to fetch platform stats", func() error {
		st, err := s.api.PlatformStats(ctx)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.platform = st
		s.mu.Unlock()
		return nil
	})
}

// FetchDailyStats loads per-day counters; days <= 0 means the last 30 days.
func (s *AdminStore) FetchDailyStats(ctx context.Context, days int) error {
	if days <= 0 {
		days = DefaultStatsDays
	}
	return s.run("Failed to fetch daily stats", func() error {
		st, err := s.api.DailyStats(ctx, days)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.daily = st
		s.mu.Unlock()
		return nil
	})
}

// FetchTopUsers loads the most active users; limit <= 0 means 10.
func (s *AdminStore) FetchTopUsers(ctx context.Context, limit int) error {
	if limit <= 0 {
		limit = DefaultTopUsers
	}
	return s.run("Failed to fetch top users", func() error {
		top, err := s.api.TopUsers(ctx, limit)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.topUsers = top
		s.mu.Unlock()
		return nil
	})
}

func (s *AdminStore) FetchActions(ctx context.Context, page int, f models.ActionFilter) error {
	if page < 1 {
		page = 1
	}
	return s.run("Failed to fetch admin actions", func() error {
		p, err := s.api.AdminActions(ctx, page, DefaultPageSize, f)
		if err != nil {
			return err
		}
		s.mu.Lock()
		s.actions = normalizePage(*p, page)
		s.mu.Unlock()
		return nil
	})
}

func (s *AdminStore) Users() models.Page[models.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPage(s.users)
}

func (s *AdminStore) UserDetails() *models.UserDetails {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.details == nil {
		return nil
	}
	d := *s.details
	return &d
}

func (s *AdminStore) Recipes() models.Page[models.Recipe] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPage(s.recipes)
}

func (s *AdminStore) Actions() models.Page[models.AdminAction] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyPage(s.actions)
}

func (s *AdminStore) PlatformStats() *models.PlatformStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.platform == nil {
		return nil
	}
	st := *s.platform
	return &st
}

func (s *AdminStore) DailyStats() []models.DailyStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.DailyStats(nil), s.daily...)
}

func (s *AdminStore) TopUsers() []models.TopUser {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.TopUser(nil), s.topUsers...)
}

func (s *AdminStore) Err() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

func (s *AdminStore) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

// run clears the error slot, calls fn and records its failure.
func (s *AdminStore) run(fallback string, fn func() error) error {
	s.mu.Lock()
	s.loading++
	s.err = ""
	s.mu.Unlock()

	err := fn()

	s.mu.Lock()
	s.loading--
	if err != nil {
		s.err = client.Message(err, fallback)
	}
	s.mu.Unlock()
	return err
}

// normalizePage fills page metadata the backend left out.
func normalizePage[T any](p models.Page[T], requested int) models.Page[T] {
	if p.Page == 0 {
		p.Page = requested
	}
	if p.PageSize == 0 {
		p.PageSize = DefaultPageSize
	}
	return p
}

func copyPage[T any](p models.Page[T]) models.Page[T] {
	p.Items = append([]T(nil), p.Items...)
	return p
}
