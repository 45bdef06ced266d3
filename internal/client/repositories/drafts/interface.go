package drafts

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
)

var ErrNotFound = errors.New("draft not found")

// Stored is a draft plus the prompt that produced it.
type Stored struct {
	Query string
	Draft models.RecipeDraft
}

type Repository interface {
	// Save inserts the draft or replaces the one with the same id.
	Save(ctx context.Context, query string, d *models.RecipeDraft) error
	Get(ctx context.Context, id string) (*Stored, error)
	// Latest returns the most recently saved draft.
	Latest(ctx context.Context) (*Stored, error)
	List(ctx context.Context) ([]Stored, error)
	Delete(ctx context.Context, id string) error
}
