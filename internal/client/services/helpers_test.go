package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/drafts"
)

// fakeAPI implements the backend interfaces the services depend on and
// records the last request of each kind.
type fakeAPI struct {
	mu sync.Mutex

	llmResp *models.LLMQueryResponse
	llmErr  error
	llmReqs []models.LLMQueryRequest

	stats     *models.DashboardStats
	favorites []models.Recipe
	dashErr   error

	accountCalls []string
	accountArgs  []string

	featuredLimit int
	featuredCat   string

	feedbackReq    *models.FeedbackRequest
	feedbackFilter models.FeedbackFilter
	feedbackStatus models.FeedbackStatusUpdate
}

func (f *fakeAPI) Query(_ context.Context, req models.LLMQueryRequest) (*models.LLMQueryResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.llmReqs = append(f.llmReqs, req)
	if f.llmErr != nil {
		return nil, f.llmErr
	}
	resp := *f.llmResp
	if resp.Recipe != nil {
		d := *resp.Recipe
		resp.Recipe = &d
	}
	return &resp, nil
}

func (f *fakeAPI) DashboardStats(context.Context) (*models.DashboardStats, error) {
	return f.stats, f.dashErr
}

func (f *fakeAPI) RecentFavorites(context.Context) ([]models.Recipe, error) {
	return f.favorites, f.dashErr
}

func (f *fakeAPI) account(name string, args ...string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accountCalls = append(f.accountCalls, name)
	f.accountArgs = append(f.accountArgs, args...)
	return name + " ok", nil
}

func (f *fakeAPI) RequestPasswordReset(_ context.Context, email string) (string, error) {
	return f.account("request", email)
}

func (f *fakeAPI) VerifyResetToken(_ context.Context, token string) (string, error) {
	return f.account("verify-reset", token)
}

func (f *fakeAPI) CompletePasswordReset(_ context.Context, token, password string) (string, error) {
	return f.account("complete", token, password)
}

func (f *fakeAPI) VerifyEmail(_ context.Context, token string) (string, error) {
	return f.account("verify-email", token)
}

func (f *fakeAPI) ResendVerification(_ context.Context, email string) (string, error) {
	return f.account("resend", email)
}

func (f *fakeAPI) Featured(_ context.Context, limit int) (*models.FeaturedRecipes, error) {
	f.featuredLimit = limit
	return &models.FeaturedRecipes{Count: limit}, nil
}

func (f *fakeAPI) FeaturedByCategory(_ context.Context, category string, limit int) (*models.FeaturedRecipes, error) {
	f.featuredCat, f.featuredLimit = category, limit
	return &models.FeaturedRecipes{Count: limit, Category: category}, nil
}

func (f *fakeAPI) CreateFeedback(_ context.Context, req models.FeedbackRequest) (*models.Feedback, error) {
	f.feedbackReq = &req
	return &models.Feedback{ID: "fb1", Type: req.Type, Title: req.Title, Status: "open"}, nil
}

func (f *fakeAPI) ListFeedback(_ context.Context, filter models.FeedbackFilter) ([]models.Feedback, error) {
	f.feedbackFilter = filter
	return []models.Feedback{{ID: "fb1"}}, nil
}

func (f *fakeAPI) Feedback(_ context.Context, id string) (*models.Feedback, error) {
	return &models.Feedback{ID: id}, nil
}

func (f *fakeAPI) UpdateFeedbackStatus(_ context.Context, _ string, upd models.FeedbackStatusUpdate) (string, error) {
	f.feedbackStatus = upd
	return "Feedback status updated", nil
}

type fakeCreator struct {
	got []models.RecipeInput
	err error
}

func (c *fakeCreator) Create(_ context.Context, in models.RecipeInput) (*models.Recipe, error) {
	if c.err != nil {
		return nil, c.err
	}
	c.got = append(c.got, in)
	return &models.Recipe{ID: "r-new", Name: in.Name}, nil
}

func setupDrafts(t *testing.T) drafts.Repository {
	t.Helper()
	db, err := client.InitDatabase(context.Background(), filepath.Join(t.TempDir(), "drafts.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return drafts.NewSQLiteRepository(db)
}
