package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"web3admin/infrastructure/sqlite"
	"web3admin/models"
)

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Entry describes one mutation sent to the content API.
type Entry struct {
	Admin      models.Admin
	Action     string
	EntityType string
	EntityID   string
	Err        error
	Payload    any
}

// Service appends to and reads the local audit trail.
type Service struct {
	db *sqlite.DB
}

func NewService(db *sqlite.DB) *Service {
	return &Service{db: db}
}

// Record stores e. A nil Service records nothing.
func (s *Service) Record(ctx context.Context, e Entry) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithWriteTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return s.Write(ctx, tx, e)
	})
}

// Write inserts e inside the caller's transaction.
func (s *Service) Write(ctx context.Context, tx bun.Tx, e Entry) error {
	payload, err := marshal(e.Payload)
	if err != nil {
		return fmt.Errorf("marshal audit payload: %w", err)
	}
	outcome := OutcomeOK
	if e.Err != nil {
		outcome = OutcomeFailed
	}
	row := &models.AuditLog{
		AdminID:     e.Admin.ID,
		AdminEmail:  e.Admin.Email,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		Outcome:     outcome,
		PayloadJSON: payload,
		CreatedAt:   time.Now().UTC(),
	}
	_, err = tx.NewInsert().Model(row).Exec(ctx)
	return err
}

// Recent returns the newest limit entries.
func (s *Service) Recent(ctx context.Context, limit int) ([]models.AuditLog, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 10
	}
	rows := make([]models.AuditLog, 0, limit)
	err := s.db.WithReadTx(ctx, func(ctx context.Context, tx bun.Tx) error {
		return tx.NewSelect().Model(&rows).OrderExpr("created_at DESC, id DESC").Limit(limit).Scan(ctx)
	})
	return rows, err
}

func marshal(v any) (string, error) {
	if v == nil {
		return "", nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
