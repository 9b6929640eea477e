package dto

import (
	"time"
)

// AuditLog represents an audit trail entry in API responses
type AuditLog struct {
	UUID         string    `json:"uuid"`
	ActorID      string    `json:"actor_id,omitempty"`
	Action       string    `json:"action"`
	TargetEntity string    `json:"target_entity,omitempty"`
	IPAddress    string    `json:"ip_address,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// AuditLogListResponse is the list envelope for audit entries
type AuditLogListResponse struct {
	Count      int         `json:"count"`
	List       []*AuditLog `json:"list"`
	Pagination Pagination  `json:"pagination"`
}
