package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func newTestClient(t *testing.T, r chi.Router) *HTTPClient {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(Options{BaseURL: srv.URL + "/api/v1"})
	require.NoError(t, err)
	return c
}

func TestNewHTTPClient_Validation(t *testing.T) {
	_, err := NewHTTPClient(Options{BaseURL: "ftp://example.com"})
	require.Error(t, err)

	_, err = NewHTTPClient(Options{BaseURL: "://bad"})
	require.Error(t, err)

	c, err := NewHTTPClient(Options{BaseURL: "http://localhost:8080/api/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api/v1", c.baseURL)
	assert.Equal(t, DefaultTimeout, c.timeout)
	assert.Equal(t, DefaultGenerationTimeout, c.genTimeout)
}

func TestHeaders(t *testing.T) {
	var got http.Header
	r := chi.NewRouter()
	r.Get("/api/v1/profile", func(w http.ResponseWriter, req *http.Request) {
		got = req.Header.Clone()
		writeJSON(w, http.StatusOK, map[string]any{"profile": map[string]any{"id": "u1", "email": "a@x.com"}})
	})
	c := newTestClient(t, r)
	c.SetTokenSource(func() string { return "T1" })

	u, err := c.Profile(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "a@x.com", u.Email)

	assert.Equal(t, "Bearer T1", got.Get("Authorization"))
	assert.Equal(t, "no-cache", got.Get("Cache-Control"))
	_, err = uuid.Parse(got.Get("X-Request-ID"))
	assert.NoError(t, err)
}

func TestNoTokenNoAuthorizationHeader(t *testing.T) {
	var auth atomic.Value
	r := chi.NewRouter()
	r.Post("/api/v1/auth/login", func(w http.ResponseWriter, req *http.Request) {
		auth.Store(req.Header.Get("Authorization"))
		var body models.LoginRequest
		_ = json.NewDecoder(req.Body).Decode(&body)
		writeJSON(w, http.StatusOK, map[string]any{"token": "T-" + body.Email, "user_id": "u1"})
	})
	c := newTestClient(t, r)

	resp, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com", Password: "p"})
	require.NoError(t, err)
	assert.Equal(t, "T-a@x.com", resp.Token)
	assert.Equal(t, "", auth.Load())
}

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{http.StatusBadRequest, ErrBadRequest},
		{http.StatusUnprocessableEntity, ErrBadRequest},
		{http.StatusUnauthorized, ErrUnauthorized},
		{http.StatusForbidden, ErrForbidden},
		{http.StatusNotFound, ErrNotFound},
		{http.StatusConflict, ErrConflict},
		{http.StatusTooManyRequests, ErrRateLimited},
		{http.StatusInternalServerError, ErrServer},
		{http.StatusBadGateway, ErrServer},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			r := chi.NewRouter()
			r.Get("/api/v1/recipes/{id}", func(w http.ResponseWriter, _ *http.Request) {
				writeJSON(w, tt.status, map[string]string{"error": "boom"})
			})
			c := newTestClient(t, r)

			_, err := c.Recipe(context.Background(), "r1")
			require.ErrorIs(t, err, tt.want)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
			assert.Equal(t, "boom", apiErr.Message)
			assert.Equal(t, "boom", Message(err, "fallback"))
		})
	}
}

func TestErrorMessageFallsBackToMessageField(t *testing.T) {
	r := chi.NewRouter()
	r.Delete("/api/v1/recipes/{id}", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusForbidden, map[string]string{"message": "not yours"})
	})
	c := newTestClient(t, r)

	err := c.DeleteRecipe(context.Background(), "r1")
	require.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, "not yours", err.Error())
	assert.Equal(t, "fallback", Message(errors.New("plain"), "fallback"))
}

func TestUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c, err := NewHTTPClient(Options{BaseURL: url})
	require.NoError(t, err)

	_, err = c.Recipes(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestTimeoutMapsToUnavailable(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/recipes", func(w http.ResponseWriter, req *http.Request) {
		select {
		case <-req.Context().Done():
		case <-time.After(2 * time.Second):
		}
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c, err := NewHTTPClient(Options{BaseURL: srv.URL, Timeout: 50 * time.Millisecond})
	require.NoError(t, err)

	_, err = c.Recipes(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestUnauthorizedHook(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/recipes", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "token expired"})
	})
	r.Post("/api/v1/auth/login", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	})
	c := newTestClient(t, r)

	var fired atomic.Int32
	c.OnUnauthorized(func(context.Context) { fired.Add(1) })

	// anonymous 401 is a credential failure, not an expired session
	_, err := c.Login(context.Background(), models.LoginRequest{Email: "a@x.com"})
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, fired.Load())

	c.SetTokenSource(func() string { return "T1" })
	_, err = c.Recipes(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.EqualValues(t, 1, fired.Load())
}

func TestRecipesEnvelopes(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/recipes", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"recipes": []map[string]any{{"id": "1", "name": "A"}}})
	})
	r.Get("/api/v1/recipes/favorites", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "2", "is_favorite": true}})
	})
	r.Get("/api/v1/recipes/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := chi.URLParam(req, "id")
		if id == "wrapped" {
			writeJSON(w, http.StatusOK, map[string]any{"recipe": map[string]any{"id": id, "calories": 10}})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"id": id, "nutrition": map[string]any{"calories": 20}})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	list, err := c.Recipes(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "A", list[0].Name)

	favs, err := c.Favorites(ctx)
	require.NoError(t, err)
	require.Len(t, favs, 1)
	assert.True(t, favs[0].IsFavorite)

	one, err := c.Recipe(ctx, "wrapped")
	require.NoError(t, err)
	assert.Equal(t, "wrapped", one.ID)
	assert.InDelta(t, 10, one.Calories, 0.001)

	bare, err := c.Recipe(ctx, "bare")
	require.NoError(t, err)
	assert.Equal(t, "bare", bare.ID)
	assert.InDelta(t, 20, bare.Calories, 0.001)

	_, err = c.Recipe(ctx, "")
	require.ErrorIs(t, err, errEmptyID)
}

func TestSearchQueryParams(t *testing.T) {
	var q map[string]string
	r := chi.NewRouter()
	r.Get("/api/v1/recipes/search", func(w http.ResponseWriter, req *http.Request) {
		q = map[string]string{
			"q":        req.URL.Query().Get("q"),
			"category": req.URL.Query().Get("category"),
			"sort_by":  req.URL.Query().Get("sort_by"),
		}
		writeJSON(w, http.StatusOK, []any{})
	})
	c := newTestClient(t, r)

	list, err := c.SearchRecipes(context.Background(), models.RecipeQuery{Query: "soup", Category: "dinner", SortBy: "newest"})
	require.NoError(t, err)
	assert.Empty(t, list)
	assert.Equal(t, map[string]string{"q": "soup", "category": "dinner", "sort_by": "newest"}, q)
}

func TestFavoriteEndpoints(t *testing.T) {
	var calls []string
	r := chi.NewRouter()
	r.Post("/api/v1/recipes/{id}/favorite", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "POST "+chi.URLParam(req, "id"))
		writeJSON(w, http.StatusOK, map[string]any{"is_favorite": true, "message": "Recipe added to favorites"})
	})
	r.Delete("/api/v1/recipes/{id}/favorite", func(w http.ResponseWriter, req *http.Request) {
		calls = append(calls, "DELETE "+chi.URLParam(req, "id"))
		writeJSON(w, http.StatusOK, map[string]any{"message": "Recipe removed from favorites"})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	res, err := c.AddFavorite(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, models.FavoriteResult{IsFavorite: true, Message: "Recipe added to favorites"}, *res)

	res, err = c.RemoveFavorite(ctx, "1")
	require.NoError(t, err)
	assert.False(t, res.IsFavorite)
	assert.Equal(t, []string{"POST 1", "DELETE 1"}, calls)
}

func TestLLMQuery(t *testing.T) {
	var body models.LLMQueryRequest
	r := chi.NewRouter()
	r.Post("/api/v1/llm/query", func(w http.ResponseWriter, req *http.Request) {
		assert.NoError(t, json.NewDecoder(req.Body).Decode(&body))
		writeJSON(w, http.StatusOK, map[string]any{
			"draft_id": "d1",
			"recipe":   map[string]any{"id": "d1", "name": "Soup", "servings": map[string]string{"Value": "4"}},
		})
	})
	c := newTestClient(t, r)

	resp, err := c.Query(context.Background(), models.LLMQueryRequest{Query: "soup", Intent: models.IntentModify, DraftID: "d0"})
	require.NoError(t, err)
	assert.Equal(t, "d1", resp.DraftID)
	assert.Equal(t, "4", resp.Recipe.Servings.Value)
	assert.Equal(t, models.IntentModify, body.Intent)
	assert.Equal(t, "d0", body.DraftID)
}

func TestAdminPages(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/admin/users", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "2", req.URL.Query().Get("page"))
		assert.Equal(t, "20", req.URL.Query().Get("page_size"))
		assert.Equal(t, "bob", req.URL.Query().Get("search"))
		writeJSON(w, http.StatusOK, map[string]any{
			"users": []map[string]any{{"id": "u1"}}, "total": 21, "page": 2, "page_size": 20,
		})
	})
	r.Get("/api/v1/admin/analytics/daily", func(w http.ResponseWriter, req *http.Request) {
		assert.Equal(t, "30", req.URL.Query().Get("days"))
		writeJSON(w, http.StatusOK, map[string]any{"stats": []map[string]any{{"date": "2024-01-01", "new_users": 3}}, "days": 30})
	})
	r.Post("/api/v1/admin/users/{id}/ban", func(w http.ResponseWriter, req *http.Request) {
		var b reasonBody
		_ = json.NewDecoder(req.Body).Decode(&b)
		assert.Equal(t, "spam", b.Reason)
		writeJSON(w, http.StatusOK, map[string]string{"message": "ok"})
	})
	c := newTestClient(t, r)
	ctx := context.Background()

	page, err := c.AdminUsers(ctx, 2, 20, "bob")
	require.NoError(t, err)
	assert.Equal(t, 21, page.Total)
	assert.Equal(t, 2, page.Page)
	require.Len(t, page.Items, 1)

	daily, err := c.DailyStats(ctx, 30)
	require.NoError(t, err)
	require.Len(t, daily, 1)
	assert.Equal(t, 3, daily[0].NewUsers)

	require.NoError(t, c.AdminBanUser(ctx, "u1", "spam"))
	require.ErrorIs(t, c.AdminBanUser(ctx, "", "spam"), errEmptyID)
}

func TestAccountEndpoints(t *testing.T) {
	var got map[string]string
	r := chi.NewRouter()
	r.Post("/api/v1/auth/password-reset/complete", func(w http.ResponseWriter, req *http.Request) {
		_ = json.NewDecoder(req.Body).Decode(&got)
		writeJSON(w, http.StatusOK, map[string]string{"message": "Password updated"})
	})
	c := newTestClient(t, r)

	msg, err := c.CompletePasswordReset(context.Background(), "tok", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Password updated", msg)
	assert.Equal(t, map[string]string{"token": "tok", "new_password": "secret"}, got)
}

func TestUnauthorizedHookSuppressed(t *testing.T) {
	r := chi.NewRouter()
	r.Get("/api/v1/profile", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "nope"})
	})
	c := newTestClient(t, r)
	c.SetTokenSource(func() string { return "T1" })

	var fired atomic.Int32
	c.OnUnauthorized(func(context.Context) { fired.Add(1) })

	_, err := c.Profile(WithoutUnauthorizedHook(context.Background()))
	require.ErrorIs(t, err, ErrUnauthorized)
	assert.Zero(t, fired.Load())
}

func TestNewAPIError(t *testing.T) {
	err := NewAPIError(http.StatusConflict, "")
	require.ErrorIs(t, err, ErrConflict)
	assert.Equal(t, "conflict", err.Error())

	zero := &APIError{StatusCode: http.StatusNotFound}
	require.ErrorIs(t, zero, ErrNotFound)
}
