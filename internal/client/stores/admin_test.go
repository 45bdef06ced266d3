package stores

import (
	"context"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

type fakeAdmin struct {
	mu       sync.Mutex
	calls    []string
	banErr   error
	usersErr error
	days     int
	limit    int
}

func (f *fakeAdmin) record(c string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)
}

func (f *fakeAdmin) AdminUsers(_ context.Context, page, pageSize int, search string) (*models.Page[models.User], error) {
	f.record("users")
	if f.usersErr != nil {
		return nil, f.usersErr
	}
	return &models.Page[models.User]{Items: []models.User{{ID: "u1", Username: search}}, Total: 41, Page: page, PageSize: pageSize}, nil
}

func (f *fakeAdmin) AdminUserDetails(_ context.Context, id string) (*models.UserDetails, error) {
	f.record("details " + id)
	return &models.UserDetails{User: models.User{ID: id}, Stats: models.UserStats{RecipeCount: 3}}, nil
}

func (f *fakeAdmin) AdminUpdateUserRole(_ context.Context, id string, role models.Role) error {
	f.record("role " + id + " " + string(role))
	return nil
}

func (f *fakeAdmin) AdminBanUser(_ context.Context, id, reason string) error {
	f.record("ban " + id + " " + reason)
	return f.banErr
}

func (f *fakeAdmin) AdminUnbanUser(_ context.Context, id string) error {
	f.record("unban " + id)
	return nil
}

func (f *fakeAdmin) AdminDeleteUser(_ context.Context, id string) error {
	f.record("delete-user " + id)
	return nil
}

func (f *fakeAdmin) AdminRecipes(_ context.Context, page, pageSize int) (*models.Page[models.Recipe], error) {
	f.record("recipes")
	return &models.Page[models.Recipe]{Items: []models.Recipe{{ID: "r1"}}, Total: 1}, nil
}

func (f *fakeAdmin) AdminHideRecipe(_ context.Context, id, reason string) error {
	f.record("hide " + id + " " + reason)
	return nil
}

func (f *fakeAdmin) AdminUnhideRecipe(_ context.Context, id string) error {
	f.record("unhide " + id)
	return nil
}

func (f *fakeAdmin) AdminDeleteRecipe(_ context.Context, id string) error {
	f.record("delete-recipe " + id)
	return nil
}

func (f *fakeAdmin) PlatformStats(context.Context) (*models.PlatformStats, error) {
	return &models.PlatformStats{TotalUsers: 10, BannedUsers: 1}, nil
}

func (f *fakeAdmin) DailyStats(_ context.Context, days int) ([]models.DailyStats, error) {
	f.days = days
	return []models.DailyStats{{Date: "2024-01-01", NewUsers: 2}}, nil
}

func (f *fakeAdmin) TopUsers(_ context.Context, limit int) ([]models.TopUser, error) {
	f.limit = limit
	return []models.TopUser{{UserID: "u1", RecipeCount: 9}}, nil
}

func (f *fakeAdmin) AdminActions(_ context.Context, page, pageSize int, fl models.ActionFilter) (*models.Page[models.AdminAction], error) {
	f.record("actions " + fl.TargetType)
	return &models.Page[models.AdminAction]{Items: []models.AdminAction{{ID: "a1", TargetType: fl.TargetType}}, Total: 1, Page: page, PageSize: pageSize}, nil
}

func TestAdminStore_FetchUsers(t *testing.T) {
	api := &fakeAdmin{}
	s := NewAdminStore(api, nil)

	require.NoError(t, s.FetchUsers(context.Background(), 0, "bob"))
	p := s.Users()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
	assert.Equal(t, 41, p.Total)
	require.Len(t, p.Items, 1)
	assert.Equal(t, "bob", p.Items[0].Username)
}

func TestAdminStore_MutationsRefetchPage(t *testing.T) {
	api := &fakeAdmin{}
	s := NewAdminStore(api, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchUsers(ctx, 2, "x"))
	require.NoError(t, s.BanUser(ctx, "u1", "spam"))
	require.NoError(t, s.UnbanUser(ctx, "u1"))
	require.NoError(t, s.UpdateUserRole(ctx, "u1", models.RoleModerator))
	require.NoError(t, s.DeleteUser(ctx, "u1"))

	assert.Equal(t, []string{
		"users",
		"ban u1 spam", "users",
		"unban u1", "users",
		"role u1 moderator", "users",
		"delete-user u1", "users",
	}, api.calls)
	assert.Equal(t, 2, s.Users().Page)
}

func TestAdminStore_RecipeModeration(t *testing.T) {
	api := &fakeAdmin{}
	s := NewAdminStore(api, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchRecipes(ctx, 1))
	require.NoError(t, s.HideRecipe(ctx, "r1", "nsfw"))
	require.NoError(t, s.UnhideRecipe(ctx, "r1"))
	require.NoError(t, s.DeleteRecipe(ctx, "r1"))

	assert.Equal(t, []string{
		"recipes",
		"hide r1 nsfw", "recipes",
		"unhide r1", "recipes",
		"delete-recipe r1", "recipes",
	}, api.calls)
	assert.Len(t, s.Recipes().Items, 1)
}

func TestAdminStore_ErrorMessages(t *testing.T) {
	api := &fakeAdmin{banErr: client.NewAPIError(http.StatusForbidden, "Cannot ban another admin")}
	s := NewAdminStore(api, nil)
	ctx := context.Background()

	err := s.BanUser(ctx, "u2", "x")
	require.ErrorIs(t, err, client.ErrForbidden)
	assert.Equal(t, "Cannot ban another admin", s.Err())
	assert.Equal(t, []string{"ban u2 x"}, api.calls)

	api.banErr = client.NewAPIError(http.StatusInternalServerError, "")
	require.Error(t, s.BanUser(ctx, "u2", "x"))
	assert.Equal(t, "Failed to ban user", s.Err())

	api.usersErr = client.NewAPIError(http.StatusServiceUnavailable, "")
	require.Error(t, s.FetchUsers(ctx, 1, ""))
	assert.Equal(t, "Failed to fetch users", s.Err())
	assert.False(t, s.IsLoading())
}

func TestAdminStore_Analytics(t *testing.T) {
	api := &fakeAdmin{}
	s := NewAdminStore(api, nil)
	ctx := context.Background()

	require.NoError(t, s.FetchPlatformStats(ctx))
	assert.Equal(t, 10, s.PlatformStats().TotalUsers)

	require.NoError(t, s.FetchDailyStats(ctx, 0))
	assert.Equal(t, DefaultStatsDays, api.days)
	assert.Len(t, s.DailyStats(), 1)

	require.NoError(t, s.FetchTopUsers(ctx, 0))
	assert.Equal(t, DefaultTopUsers, api.limit)
	assert.Equal(t, 9, s.TopUsers()[0].RecipeCount)

	require.NoError(t, s.FetchActions(ctx, 1, models.ActionFilter{TargetType: "user"}))
	assert.Equal(t, "user", s.Actions().Items[0].TargetType)

	require.NoError(t, s.FetchUserDetails(ctx, "u7"))
	assert.Equal(t, 3, s.UserDetails().Stats.RecipeCount)
}
