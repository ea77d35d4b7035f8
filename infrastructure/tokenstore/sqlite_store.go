package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/uptrace/bun"

	"web3admin/infrastructure/sqlite"
	"web3admin/models"
)

// SQLiteStore keeps the token in the stored_tokens table so it survives
// restarts. Reads are served from memory once loaded.
type SQLiteStore struct {
	db   *sqlite.DB
	name string

	mu     sync.RWMutex
	loaded bool
	token  string
}

func NewSQLiteStore(db *sqlite.DB, name string) *SQLiteStore {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return &SQLiteStore{db: db, name: name}
}

func (s *SQLiteStore) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	if s.loaded {
		token := s.token
		s.mu.RUnlock()
		return token, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.token, nil
	}

	var row models.StoredToken
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&row).Where("name = ?", s.name).Limit(1).Scan(ctx)
	})
	switch {
	case errors.Is(err, sql.ErrNoRows):
		s.token = ""
	case err != nil:
		return "", fmt.Errorf("load token: %w", err)
	default:
		s.token = row.Value
	}
	s.loaded = true
	return s.token, nil
}

func (s *SQLiteStore) SetToken(ctx context.Context, token string) error {
	if strings.TrimSpace(token) == "" {
		return s.ClearToken(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewInsert().
			Model(&models.StoredToken{Name: s.name, Value: token, UpdatedAt: time.Now()}).
			On("CONFLICT (name) DO UPDATE").
			Set("value = EXCLUDED.value").
			Set("updated_at = EXCLUDED.updated_at").
			Exec(ctx)
		return err
	})
	if err != nil {
		return fmt.Errorf("store token: %w", err)
	}
	s.token = token
	s.loaded = true
	return nil
}

func (s *SQLiteStore) ClearToken(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		_, err := tx.NewDelete().Model((*models.StoredToken)(nil)).Where("name = ?", s.name).Exec(ctx)
		return err
	})
	// Memory is cleared even if the delete fails.
	s.token = ""
	s.loaded = err == nil
	if err != nil {
		return fmt.Errorf("clear token: %w", err)
	}
	return nil
}
