package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
	"github.com/dmitrijs2005/recipebox/internal/logging"
)

const (
	KeyToken = "auth_token"
	KeyUser  = "auth_user"
)

// Persister stores the session between runs.
type Persister interface {
	// Load returns an empty token when nothing is stored. A stored user that
	// cannot be decoded is reported as nil.
	Load(ctx context.Context) (token string, user *models.User, err error)
	Save(ctx context.Context, token string, user *models.User) error
	Clear(ctx context.Context) error
}

// SQLitePersister keeps the session in the metadata table.
type SQLitePersister struct {
	db  *sql.DB
	log logging.Logger
}

func NewSQLitePersister(db *sql.DB, log logging.Logger) *SQLitePersister {
	if log == nil {
		log = logging.NewNop()
	}
	return &SQLitePersister{db: db, log: log}
}

func (p *SQLitePersister) Load(ctx context.Context) (string, *models.User, error) {
	repo := metadata.NewSQLiteRepository(p.db)

	token, err := repo.Get(ctx, KeyToken)
	if err != nil {
		return "", nil, fmt.Errorf("load session token: %w", err)
	}
	raw, err := repo.Get(ctx, KeyUser)
	if err != nil {
		return "", nil, fmt.Errorf("load session user: %w", err)
	}
	if len(raw) == 0 {
		return string(token), nil, nil
	}

	var u models.User
	if err := json.Unmarshal(raw, &u); err != nil {
		p.log.Warn(ctx, "stored user is malformed, ignoring it", "error", err)
		return string(token), nil, nil
	}
	return string(token), &u, nil
}

// Save writes token and user in one transaction. A nil user removes the
// stored one.
func (p *SQLitePersister) Save(ctx context.Context, token string, user *models.User) error {
	var raw []byte
	if user != nil {
		b, err := json.Marshal(user)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		raw = b
	}

	return dbx.WithTx(ctx, p.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, KeyToken, []byte(token)); err != nil {
			return err
		}
		if raw == nil {
			return repo.Delete(ctx, KeyUser)
		}
		return repo.Set(ctx, KeyUser, raw)
	})
}

func (p *SQLitePersister) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(p.db).Delete(ctx, KeyToken, KeyUser)
}
