package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/rpeart73/clockwork-elite/internal/models"
)

// ErrDraftNotFound is returned when no draft exists for a key.
var ErrDraftNotFound = errors.New("draft not found")

// DraftStore persists the last raw input and rendered note per client key as
// opaque strings. Structured contact and thread data is never stored; every
// session recomputes extraction from the raw text.
type DraftStore struct {
	db *sqlx.DB
}

type draftRow struct {
	Key       string    `db:"draft_key"`
	Input     string    `db:"input"`
	Note      string    `db:"note"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewDraftStore creates a draft store and ensures its table exists.
func NewDraftStore(db *sqlx.DB) (*DraftStore, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is required for draft store")
	}

	store := &DraftStore{db: db}
	if err := store.createTables(); err != nil {
		return nil, fmt.Errorf("failed to create draft tables: %w", err)
	}
	return store, nil
}

func (s *DraftStore) createTables() error {
	query := `CREATE TABLE IF NOT EXISTS drafts (
		draft_key VARCHAR(128) PRIMARY KEY,
		input TEXT NOT NULL,
		note TEXT NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`
	_, err := s.db.Exec(query)
	return err
}

// Save upserts the draft for a key. Delete-then-insert keeps the statement
// portable across both supported drivers.
func (s *DraftStore) Save(ctx context.Context, key, input, note string) error {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin draft transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx, s.db.Rebind(`DELETE FROM drafts WHERE draft_key = ?`), key); err != nil {
		return fmt.Errorf("failed to clear previous draft: %w", err)
	}

	insert := s.db.Rebind(`INSERT INTO drafts (draft_key, input, note, updated_at) VALUES (?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, insert, key, input, note, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to save draft: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit draft: %w", err)
	}
	return nil
}

// Get loads the draft for a key. Returns ErrDraftNotFound when none exists.
func (s *DraftStore) Get(ctx context.Context, key string) (*models.DraftResponse, error) {
	var row draftRow
	query := s.db.Rebind(`SELECT draft_key, input, note, updated_at FROM drafts WHERE draft_key = ?`)
	if err := s.db.GetContext(ctx, &row, query, key); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrDraftNotFound
		}
		return nil, fmt.Errorf("failed to load draft: %w", err)
	}

	return &models.DraftResponse{
		Key:       row.Key,
		Input:     row.Input,
		Note:      row.Note,
		UpdatedAt: row.UpdatedAt,
	}, nil
}

// Delete removes the draft for a key. Deleting a missing draft is not an error.
func (s *DraftStore) Delete(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.db.Rebind(`DELETE FROM drafts WHERE draft_key = ?`), key); err != nil {
		return fmt.Errorf("failed to delete draft: %w", err)
	}
	return nil
}
