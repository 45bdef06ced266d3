package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/login", body: req})
	if err != nil {
		return nil, err
	}
	resp, err := decode[models.AuthResponse](raw, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: "/auth/register", body: req})
	if err != nil {
		return nil, err
	}
	resp, err := decode[models.AuthResponse](raw, "")
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Logout(ctx context.Context) error {
	_, err := c.do(ctx, request{method: http.MethodPost, path: "/profile/logout"})
	return err
}

func (c *HTTPClient) Profile(ctx context.Context) (*models.User, error) {
	raw, err := c.do(ctx, request{method: http.MethodGet, path: "/profile"})
	if err != nil {
		return nil, err
	}
	u, err := decode[models.User](raw, "profile")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, upd models.ProfileUpdate) (*models.User, error) {
	raw, err := c.do(ctx, request{method: http.MethodPut, path: "/profile", body: upd})
	if err != nil {
		return nil, err
	}
	u, err := decode[models.User](raw, "profile")
	if err != nil {
		return nil, err
	}
	return &u, nil
}

type emailBody struct {
	Email string `json:"email"`
}

type tokenBody struct {
	Token string `json:"token"`
}

func (c *HTTPClient) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	return c.postMessage(ctx, "/auth/password-reset/request", emailBody{Email: email})
}

func (c *HTTPClient) VerifyResetToken(ctx context.Context, token string) (string, error) {
	return c.postMessage(ctx, "/auth/password-reset/verify", tokenBody{Token: token})
}

func (c *HTTPClient) CompletePasswordReset(ctx context.Context, token, password string) (string, error) {
	body := struct {
		Token       string `json:"token"`
		NewPassword string `json:"new_password"`
	}{token, password}
	return c.postMessage(ctx, "/auth/password-reset/complete", body)
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, token string) (string, error) {
	return c.postMessage(ctx, "/auth/email-verification/verify", tokenBody{Token: token})
}

func (c *HTTPClient) ResendVerification(ctx context.Context, email string) (string, error) {
	return c.postMessage(ctx, "/auth/email-verification/resend", emailBody{Email: email})
}

func (c *HTTPClient) postMessage(ctx context.Context, path string, body any) (string, error) {
	raw, err := c.do(ctx, request{method: http.MethodPost, path: path, body: body})
	if err != nil {
		return "", err
	}
	return messageOf(raw)
}
