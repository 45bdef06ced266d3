package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/recipebox/internal/client/client"
)

const minPasswordLength = 8

// AccountService covers password recovery and e-mail verification. Every
// call returns the backend's confirmation message.
type AccountService interface {
	RequestPasswordReset(ctx context.Context, email string) (string, error)
	VerifyResetToken(ctx context.Context, token string) (string, error)
	CompletePasswordReset(ctx context.Context, token, password string) (string, error)
	VerifyEmail(ctx context.Context, token string) (string, error)
	ResendVerification(ctx context.Context, email string) (string, error)
}

type accountService struct {
	api client.AccountAPI
}

func NewAccountService(api client.AccountAPI) AccountService {
	return &accountService{api: api}
}

func (s *accountService) RequestPasswordReset(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	return s.api.RequestPasswordReset(ctx, email)
}

func (s *accountService) VerifyResetToken(ctx context.Context, token string) (string, error) {
	token, err := requireToken(token)
	if err != nil {
		return "", err
	}
	return s.api.VerifyResetToken(ctx, token)
}

func (s *accountService) CompletePasswordReset(ctx context.Context, token, password string) (string, error) {
	token, err := requireToken(token)
	if err != nil {
		return "", err
	}
	if len(password) < minPasswordLength {
		return "", fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, minPasswordLength)
	}
	return s.api.CompletePasswordReset(ctx, token, password)
}

func (s *accountService) VerifyEmail(ctx context.Context, token string) (string, error) {
	token, err := requireToken(token)
	if err != nil {
		return "", err
	}
	return s.api.VerifyEmail(ctx, token)
}

func (s *accountService) ResendVerification(ctx context.Context, email string) (string, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return "", err
	}
	return s.api.ResendVerification(ctx, email)
}

func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if _, err := mail.ParseAddress(email); err != nil {
		return "", fmt.Errorf("%w: invalid email %q", ErrInvalidInput, email)
	}
	return email, nil
}

func requireToken(token string) (string, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return "", fmt.Errorf("%w: token is required", ErrInvalidInput)
	}
	return token, nil
}
