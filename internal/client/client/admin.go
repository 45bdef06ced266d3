package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func pageParams(page, pageSize int) url.Values {
	params := url.Values{}
	if page > 0 {
		params.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		params.Set("page_size", strconv.Itoa(pageSize))
	}
	return params
}

func (c *HTTPClient) AdminUsers(ctx context.Context, page, pageSize int, search string) (*models.Page[models.User], error) {
	params := pageParams(page, pageSize)
	setIf(params, "search", search)
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/users", query: params})
	if err != nil {
		return nil, err
	}
	return decodePage[models.User](raw, "users")
}

func (c *HTTPClient) AdminUserDetails(ctx context.Context, id string) (*models.UserDetails, error) {
	if id == "" {
		return nil, errEmptyID
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: pathID("/admin/users", id)})
	if err != nil {
		return nil, err
	}
	d, err := decode[models.UserDetails](raw, "")
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *HTTPClient) AdminUpdateUserRole(ctx context.Context, id string, role models.Role) error {
	if id == "" {
		return errEmptyID
	}
	body := struct {
		Role models.Role `json:"role"`
	}{role}
	_, err := c.do(ctx, request{method: http.MethodPut, path: pathID("/admin/users", id, "role"), body: body})
	return err
}

type reasonBody struct {
	Reason string `json:"reason"`
}

func (c *HTTPClient) AdminBanUser(ctx context.Context, id, reason string) error {
	return c.adminPost(ctx, pathID("/admin/users", id, "ban"), id, reasonBody{Reason: reason})
}

func (c *HTTPClient) AdminUnbanUser(ctx context.Context, id string) error {
	return c.adminPost(ctx, pathID("/admin/users", id, "unban"), id, nil)
}

func (c *HTTPClient) AdminDeleteUser(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	_, err := c.do(ctx, request{method: http.MethodDelete, path: pathID("/admin/users", id)})
	return err
}

func (c *HTTPClient) AdminRecipes(ctx context.Context, page, pageSize int) (*models.Page[models.Recipe], error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/recipes", query: pageParams(page, pageSize)})
	if err != nil {
		return nil, err
	}
	return decodePage[models.Recipe](raw, "recipes")
}

func (c *HTTPClient) AdminHideRecipe(ctx context.Context, id, reason string) error {
	return c.adminPost(ctx, pathID("/admin/recipes", id, "hide"), id, reasonBody{Reason: reason})
}

func (c *HTTPClient) AdminUnhideRecipe(ctx context.Context, id string) error {
	return c.adminPost(ctx, pathID("/admin/recipes", id, "unhide"), id, nil)
}

func (c *HTTPClient) AdminDeleteRecipe(ctx context.Context, id string) error {
	if id == "" {
		return errEmptyID
	}
	_, err := c.do(ctx, request{method: http.MethodDelete, path: pathID("/admin/recipes", id)})
	return err
}

func (c *HTTPClient) adminPost(ctx context.Context, path, id string, body any) error {
	if id == "" {
		return errEmptyID
	}
	_, err := c.do(ctx, request{method: http.MethodPost, path: path, body: body})
	return err
}

func (c *HTTPClient) PlatformStats(ctx context.Context) (*models.PlatformStats, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/analytics/platform"})
	if err != nil {
		return nil, err
	}
	st, err := decode[models.PlatformStats](raw, "")
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (c *HTTPClient) DailyStats(ctx context.Context, days int) ([]models.DailyStats, error) {
	params := url.Values{}
	if days > 0 {
		params.Set("days", strconv.Itoa(days))
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/analytics/daily", query: params})
	if err != nil {
		return nil, err
	}
	return decode[[]models.DailyStats](raw, "stats")
}

func (c *HTTPClient) TopUsers(ctx context.Context, limit int) ([]models.TopUser, error) {
	params := url.Values{}
	if limit > 0 {
		params.Set("limit", strconv.Itoa(limit))
	}
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/analytics/top-users", query: params})
	if err != nil {
		return nil, err
	}
	return decode[[]models.TopUser](raw, "users")
}

func (c *HTTPClient) AdminActions(ctx context.Context, page, pageSize int, f models.ActionFilter) (*models.Page[models.AdminAction], error) {
	params := pageParams(page, pageSize)
	setIf(params, "admin_id", f.AdminID)
	setIf(params, "target_type", f.TargetType)
	setIf(params, "action", f.Action)
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/admin/actions", query: params})
	if err != nil {
		return nil, err
	}
	return decodePage[models.AdminAction](raw, "actions")
}
