/*
 *  Copyright (c) 2026, WSO2 LLC. (http://www.wso2.org) All Rights Reserved.
 *
 *  Licensed under the Apache License, Version 2.0 (the "License");
 *  you may not use this file except in compliance with the License.
 *  You may obtain a copy of the License at
 *
 *  http://www.apache.org/licenses/LICENSE-2.0
 *
 *  Unless required by applicable law or agreed to in writing, software
 *  distributed under the License is distributed on an "AS IS" BASIS,
 *  WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 *  See the License for the specific language governing permissions and
 *  limitations under the License.
 *
 */

package repository

import (
	"database/sql"
	"errors"
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// TicketRepo implements TicketRepository
type TicketRepo struct {
	db *database.DB
}

// NewTicketRepo creates a new ticket repository
func NewTicketRepo(db *database.DB) TicketRepository {
	return &TicketRepo{db: db}
}

const ticketColumns = `uuid, ticket_uid, title, description, category, priority, status,
	attachment_url, resolution_notes, user_id, assigned_admin, created_at, updated_at`

// CreateTicket inserts a new ticket
func (r *TicketRepo) CreateTicket(ticket *model.Ticket) error {
	ticket.CreatedAt = time.Now()
	ticket.UpdatedAt = time.Now()

	query := `
		INSERT INTO tickets (` + ticketColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		ticket.UUID, ticket.TicketUID, ticket.Title, ticket.Description, ticket.Category,
		ticket.Priority, ticket.Status, ticket.AttachmentURL, ticket.ResolutionNotes,
		ticket.UserID, ticket.AssignedAdmin, ticket.CreatedAt, ticket.UpdatedAt)
	return err
}

func scanTicket(scan func(dest ...any) error) (*model.Ticket, error) {
	ticket := &model.Ticket{}
	err := scan(
		&ticket.UUID, &ticket.TicketUID, &ticket.Title, &ticket.Description, &ticket.Category,
		&ticket.Priority, &ticket.Status, &ticket.AttachmentURL, &ticket.ResolutionNotes,
		&ticket.UserID, &ticket.AssignedAdmin, &ticket.CreatedAt, &ticket.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return ticket, nil
}

// GetTicketByUUID retrieves a ticket by ID
func (r *TicketRepo) GetTicketByUUID(uuid string) (*model.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE uuid = ?`
	ticket, err := scanTicket(r.db.QueryRow(r.db.Rebind(query), uuid).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return ticket, nil
}

func (r *TicketRepo) listTickets(query string, args ...any) ([]*model.Ticket, error) {
	rows, err := r.db.Query(r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickets []*model.Ticket
	for rows.Next() {
		ticket, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, err
		}
		tickets = append(tickets, ticket)
	}

	return tickets, rows.Err()
}

// ListTickets retrieves all tickets, newest first
func (r *TicketRepo) ListTickets() ([]*model.Ticket, error) {
	return r.listTickets(`SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC`)
}

// ListTicketsByOwner retrieves tickets raised by a user
func (r *TicketRepo) ListTicketsByOwner(userID string) ([]*model.Ticket, error) {
	return r.listTickets(`SELECT `+ticketColumns+` FROM tickets WHERE user_id = ? ORDER BY created_at DESC`, userID)
}

// ListRecentTickets retrieves the most recently created tickets
func (r *TicketRepo) ListRecentTickets(limit int) ([]*model.Ticket, error) {
	return r.listTickets(`SELECT `+ticketColumns+` FROM tickets ORDER BY created_at DESC LIMIT ?`, limit)
}

// UpdateTicket modifies an existing ticket
func (r *TicketRepo) UpdateTicket(ticket *model.Ticket) error {
	ticket.UpdatedAt = time.Now()

	query := `
		UPDATE tickets
		SET title = ?, description = ?, category = ?, priority = ?, status = ?,
			attachment_url = ?, resolution_notes = ?, assigned_admin = ?, updated_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		ticket.Title, ticket.Description, ticket.Category, ticket.Priority, ticket.Status,
		ticket.AttachmentURL, ticket.ResolutionNotes, ticket.AssignedAdmin, ticket.UpdatedAt,
		ticket.UUID)
	return err
}

// CountTickets counts all tickets
func (r *TicketRepo) CountTickets() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM tickets`).Scan(&count)
	return count, err
}

// CountTicketsByStatus counts tickets in the given status
func (r *TicketRepo) CountTicketsByStatus(status string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tickets WHERE status = ?`
	err := r.db.QueryRow(r.db.Rebind(query), status).Scan(&count)
	return count, err
}

// CountOpenCriticalTickets counts critical-priority tickets that are not closed
func (r *TicketRepo) CountOpenCriticalTickets() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM tickets WHERE priority = 'Critical' AND status != 'Closed'`
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}
