package dto

import (
	"time"
)

// Ticket represents a helpdesk ticket in API responses
type Ticket struct {
	UUID            string     `json:"uuid"`
	TicketUID       string     `json:"ticket_uid"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	Category        string     `json:"category,omitempty"`
	Priority        string     `json:"priority,omitempty"`
	Status          string     `json:"status"`
	AttachmentURL   string     `json:"attachment_url,omitempty"`
	ResolutionNotes string     `json:"resolution_notes,omitempty"`
	UserID          string     `json:"user_id"`
	AssignedAdmin   *string    `json:"assigned_admin,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// CreateTicketRequest carries the fields for POST /api/v1/tickets.
// AttachmentURL points at externally hosted upload storage; this service
// never receives file bytes.
type CreateTicketRequest struct {
	Title         string `json:"title" binding:"required"`
	Description   string `json:"description" binding:"required"`
	Category      string `json:"category" binding:"required"`
	Priority      string `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	AttachmentURL string `json:"attachment_url"`
}

// UpdateTicketRequest carries the fields for PUT /api/v1/tickets/:ticketId
type UpdateTicketRequest struct {
	Status          string `json:"status" binding:"required,oneof=Open 'In Progress' Resolved Closed"`
	Priority        string `json:"priority" binding:"required,oneof=Low Medium High Critical"`
	ResolutionNotes string `json:"resolution_notes" binding:"required"`
}

// TicketListResponse is the list envelope for tickets
type TicketListResponse struct {
	Count      int        `json:"count"`
	List       []*Ticket  `json:"list"`
	Pagination Pagination `json:"pagination"`
}
