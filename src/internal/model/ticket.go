package model

import (
	"time"
)

// Ticket represents a helpdesk ticket
type Ticket struct {
	UUID            string    `json:"uuid" db:"uuid"`
	TicketUID       string    `json:"ticket_uid" db:"ticket_uid"` // human-readable code, e.g. TKT-1767000000
	Title           string    `json:"title" db:"title"`
	Description     string    `json:"description" db:"description"`
	Category        string    `json:"category" db:"category"`
	Priority        string    `json:"priority" db:"priority"`
	Status          string    `json:"status" db:"status"`
	AttachmentURL   string    `json:"attachment_url" db:"attachment_url"`
	ResolutionNotes string    `json:"resolution_notes" db:"resolution_notes"`
	UserID          string    `json:"user_id" db:"user_id"`                 // FK to User.UUID (owner)
	AssignedAdmin   *string   `json:"assigned_admin" db:"assigned_admin"`   // FK to User.UUID
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Ticket model
func (Ticket) TableName() string {
	return "tickets"
}
