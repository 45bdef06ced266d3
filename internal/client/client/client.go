package client

import (
	"context"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

// AuthAPI covers credential exchange and the caller's own profile.
type AuthAPI interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error)
	Logout(ctx context.Context) error
	Profile(ctx context.Context) (*models.User, error)
	UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error)
}

type RecipeAPI interface {
	Recipes(ctx context.Context) ([]models.Recipe, error)
	SearchRecipes(ctx context.Context, q models.RecipeQuery) ([]models.Recipe, error)
	Recipe(ctx context.Context, id string) (*models.Recipe, error)
	CreateRecipe(ctx context.Context, in models.RecipeInput) (*models.Recipe, error)
	UpdateRecipe(ctx context.Context, id string, in models.RecipeInput) (*models.Recipe, error)
	DeleteRecipe(ctx context.Context, id string) error
	AddFavorite(ctx context.Context, id string) (*models.FavoriteResult, error)
	RemoveFavorite(ctx context.Context, id string) (*models.FavoriteResult, error)
	Favorites(ctx context.Context) ([]models.Recipe, error)
}

type LLMAPI interface {
	Query(ctx context.Context, req models.LLMQueryRequest) (*models.LLMQueryResponse, error)
}

type RateLimitAPI interface {
	RecipeCreationLimit(ctx context.Context) (*models.RateLimitStatus, error)
	RecipeModificationLimit(ctx context.Context, recipeID string) (*models.RateLimitStatus, error)
}

type DashboardAPI interface {
	DashboardStats(ctx context.Context) (*models.DashboardStats, error)
	RecentFavorites(ctx context.Context) ([]models.Recipe, error)
}

type AccountAPI interface {
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (string, error)
	CompletePasswordReset(ctx context.Context, token, password string) (string, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
}

type FeaturedAPI interface {
	Featured(ctx context.Context, limit int) (*models.FeaturedRecipes, error)
	FeaturedByCategory(ctx context.Context, category string, limit int) (*models.FeaturedRecipes, error)
}

type FeedbackAPI interface {
	CreateFeedback(ctx context.Context, req models.FeedbackRequest) (*models.Feedback, error)
	ListFeedback(ctx context.Context, f models.FeedbackFilter) ([]models.Feedback, error)
	Feedback(ctx context.Context, id string) (*models.Feedback, error)
	UpdateFeedbackStatus(ctx context.Context, id string, upd models.FeedbackStatusUpdate) (string, error)
}

type AdminAPI interface {
	AdminUsers(ctx context.Context, page, pageSize int, search string) (*models.Page[models.User], error)
	AdminUserDetails(ctx context.Context, id string) (*models.UserDetails, error)
	AdminUpdateUserRole(ctx context.Context, id string, role models.Role) error
	AdminBanUser(ctx context.Context, id, reason string) error
	AdminUnbanUser(ctx context.Context, id string) error
	AdminDeleteUser(ctx context.Context, id string) error
	AdminRecipes(ctx context.Context, page, pageSize int) (*models.Page[models.Recipe], error)
	AdminHideRecipe(ctx context.Context, id, reason string) error
	AdminUnhideRecipe(ctx context.Context, id string) error
	AdminDeleteRecipe(ctx context.Context, id string) error
	PlatformStats(ctx context.Context) (*models.PlatformStats, error)
	DailyStats(ctx context.Context, days int) ([]models.DailyStats, error)
	TopUsers(ctx context.Context, limit int) ([]models.TopUser, error)
	AdminActions(ctx context.Context, page, pageSize int, f models.ActionFilter) (*models.Page[models.AdminAction], error)
}

// API is everything the backend offers. HTTPClient implements it.
type API interface {
	AuthAPI
	RecipeAPI
	LLMAPI
	RateLimitAPI
	DashboardAPI
	AccountAPI
	FeaturedAPI
	FeedbackAPI
	AdminAPI
}

var _ API = (*HTTPClient)(nil)
