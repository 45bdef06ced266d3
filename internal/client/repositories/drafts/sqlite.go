package drafts

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/recipebox/internal/client/models"
	"github.com/dmitrijs2005/recipebox/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Save(ctx context.Context, query string, d *models.RecipeDraft) error {
	if d == nil || d.ID == "" {
		return errors.New("draft id is required")
	}
	payload, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	_, err = r.db.ExecContext(ctx, `
		INSERT INTO drafts (id, query, payload, created_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET query = excluded.query,
			payload = excluded.payload,
			created_at = excluded.created_at`,
		d.ID, query, payload)
	if err != nil {
		return fmt.Errorf("failed to upsert draft: %w", err)
	}
	return nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*Stored, error) {
	row := r.db.QueryRowContext(ctx, `SELECT query, payload FROM drafts WHERE id = ?`, id)
	return scanOne(row)
}

func (r *SQLiteRepository) Latest(ctx context.Context) (*Stored, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT query, payload FROM drafts ORDER BY created_at DESC, rowid DESC LIMIT 1`)
	return scanOne(row)
}

func (r *SQLiteRepository) List(ctx context.Context) ([]Stored, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT query, payload FROM drafts ORDER BY created_at DESC, rowid DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to select drafts: %w", err)
	}
	defer rows.Close()

	var result []Stored
	for rows.Next() {
		s, err := scanOne(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate drafts: %w", err)
	}
	return result, nil
}

func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM drafts WHERE id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanOne(s scanner) (*Stored, error) {
	var (
		st      Stored
		payload []byte
	)
	if err := s.Scan(&st.Query, &payload); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to scan draft: %w", err)
	}
	if err := json.Unmarshal(payload, &st.Draft); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &st, nil
}
