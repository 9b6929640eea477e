package model

import (
	"time"
)

// AuditLog is an immutable record of a security-relevant action.
// Rows are append-only: never updated, never deleted.
type AuditLog struct {
	UUID         string    `json:"uuid" db:"uuid"`
	ActorID      string    `json:"actor_id" db:"actor_id"`
	Action       string    `json:"action" db:"action"`
	TargetEntity string    `json:"target_entity" db:"target_entity"`
	IPAddress    string    `json:"ip_address" db:"ip_address"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
