package models

import (
	"time"

	"github.com/uptrace/bun"
)

// StoredToken is a durable credential slot.
type StoredToken struct {
	bun.BaseModel `bun:"table:stored_tokens,alias:st"`

	Name      string    `bun:"name,pk"`
	Value     string    `bun:"value,notnull"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}

// AuditLog captures mutations issued from this console against the content API.
type AuditLog struct {
	bun.BaseModel `bun:"table:audit_logs,alias:al"`

	ID          int64     `bun:"id,pk,autoincrement"`
	AdminID     string    `bun:"admin_id,notnull"`
	AdminEmail  string    `bun:"admin_email,notnull"`
	Action      string    `bun:"action,notnull"`
	EntityType  string    `bun:"entity_type,notnull"`
	EntityID    string    `bun:"entity_id,notnull"`
	Outcome     string    `bun:"outcome,notnull"`
	PayloadJSON string    `bun:"payload_json"`
	CreatedAt   time.Time `bun:"created_at,notnull,default:current_timestamp"`
}

// Admin is the identity returned by the content API.
type Admin struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	CreatedAt string `json:"createdAt,omitempty"`
}
