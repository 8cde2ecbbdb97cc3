package domain

import "time"

// Idempotency remembers which submission a client-supplied Idempotency-Key
// produced, keyed by (scope, key). Scope is the destination table, so the
// same key may be reused across forms.
type Idempotency struct {
	ID           string    `gorm:"type:char(36);primaryKey"`
	Scope        string    `gorm:"type:varchar(64);not null;uniqueIndex:ux_idem_scope_key,priority:1"`
	Key          string    `gorm:"type:varchar(200);not null;uniqueIndex:ux_idem_scope_key,priority:2"`
	SubmissionID string    `gorm:"type:char(36);not null"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName implements the GORM tabler interface.
func (Idempotency) TableName() string { return "idempotency" }
