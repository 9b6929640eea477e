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

package service

import (
	"errors"
	"sort"
	"strings"
	"testing"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/websocket"
)

type memTicketRepo struct {
	tickets []*model.Ticket
}

func (r *memTicketRepo) CreateTicket(ticket *model.Ticket) error {
	r.tickets = append(r.tickets, ticket)
	return nil
}

func (r *memTicketRepo) GetTicketByUUID(uuid string) (*model.Ticket, error) {
	for _, ticket := range r.tickets {
		if ticket.UUID == uuid {
			return ticket, nil
		}
	}
	return nil, nil
}

func (r *memTicketRepo) ListTickets() ([]*model.Ticket, error) {
	return r.tickets, nil
}

func (r *memTicketRepo) ListTicketsByOwner(userID string) ([]*model.Ticket, error) {
	list := make([]*model.Ticket, 0)
	for _, ticket := range r.tickets {
		if ticket.UserID == userID {
			list = append(list, ticket)
		}
	}
	return list, nil
}

func (r *memTicketRepo) ListRecentTickets(limit int) ([]*model.Ticket, error) {
	sorted := append([]*model.Ticket(nil), r.tickets...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CreatedAt.After(sorted[j].CreatedAt) })
	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

func (r *memTicketRepo) UpdateTicket(ticket *model.Ticket) error {
	for i, existing := range r.tickets {
		if existing.UUID == ticket.UUID {
			r.tickets[i] = ticket
			return nil
		}
	}
	return nil
}

func (r *memTicketRepo) CountTickets() (int, error) {
	return len(r.tickets), nil
}

func (r *memTicketRepo) CountTicketsByStatus(status string) (int, error) {
	count := 0
	for _, ticket := range r.tickets {
		if ticket.Status == status {
			count++
		}
	}
	return count, nil
}

func (r *memTicketRepo) CountOpenCriticalTickets() (int, error) {
	count := 0
	for _, ticket := range r.tickets {
		if ticket.Priority == constants.TicketPriorityCritical && ticket.Status != constants.TicketStatusClosed {
			count++
		}
	}
	return count, nil
}

func newTicketFixture() (*TicketService, *memAuditRepo) {
	auditRepo := &memAuditRepo{}
	return NewTicketService(&memTicketRepo{}, NewAuditService(auditRepo), websocket.NewManager()), auditRepo
}

func TestCreateTicket(t *testing.T) {
	s, auditRepo := newTicketFixture()

	ticket, err := s.CreateTicket(&dto.CreateTicketRequest{
		Title:       "Laptop will not boot",
		Description: "Black screen after power on",
		Category:    "Hardware",
		Priority:    constants.TicketPriorityHigh,
	}, "user-7", "10.0.0.3")
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	if !strings.HasPrefix(ticket.TicketUID, "TKT-") {
		t.Errorf("ticket uid = %q, want TKT- prefix", ticket.TicketUID)
	}
	if ticket.Status != constants.TicketStatusOpen {
		t.Errorf("status = %q, want %q", ticket.Status, constants.TicketStatusOpen)
	}
	if ticket.UserID != "user-7" {
		t.Errorf("owner = %q, want user-7", ticket.UserID)
	}
	if got := auditRepo.lastAction(); got != constants.AuditActionCreateTicket {
		t.Errorf("last audit action = %q, want %q", got, constants.AuditActionCreateTicket)
	}
}

func TestUpdateTicketAssignsAdmin(t *testing.T) {
	s, _ := newTicketFixture()

	created, err := s.CreateTicket(&dto.CreateTicketRequest{
		Title:       "VPN keeps dropping",
		Description: "Disconnects every few minutes",
		Category:    "Network",
		Priority:    constants.TicketPriorityMedium,
	}, "user-7", "10.0.0.3")
	if err != nil {
		t.Fatalf("CreateTicket failed: %v", err)
	}

	updated, err := s.UpdateTicket(created.UUID, &dto.UpdateTicketRequest{
		Status:          constants.TicketStatusResolved,
		Priority:        constants.TicketPriorityMedium,
		ResolutionNotes: "Reissued VPN profile",
	}, "admin-2", "10.0.0.4")
	if err != nil {
		t.Fatalf("UpdateTicket failed: %v", err)
	}

	if updated.Status != constants.TicketStatusResolved {
		t.Errorf("status = %q, want %q", updated.Status, constants.TicketStatusResolved)
	}
	if updated.AssignedAdmin == nil || *updated.AssignedAdmin != "admin-2" {
		t.Error("acting admin was not recorded as assignee")
	}
	if updated.ResolutionNotes != "Reissued VPN profile" {
		t.Errorf("resolution notes = %q", updated.ResolutionNotes)
	}
}

func TestUpdateMissingTicket(t *testing.T) {
	s, _ := newTicketFixture()

	_, err := s.UpdateTicket("no-such-ticket", &dto.UpdateTicketRequest{
		Status:          constants.TicketStatusClosed,
		Priority:        constants.TicketPriorityLow,
		ResolutionNotes: "n/a",
	}, "admin-2", "10.0.0.4")
	if !errors.Is(err, constants.ErrTicketNotFound) {
		t.Fatalf("UpdateTicket error = %v, want ErrTicketNotFound", err)
	}
}

func TestListTicketsByOwnerFilters(t *testing.T) {
	s, _ := newTicketFixture()

	for _, owner := range []string{"user-1", "user-2", "user-1"} {
		_, err := s.CreateTicket(&dto.CreateTicketRequest{
			Title:       "Issue for " + owner,
			Description: "details",
			Category:    "Software",
			Priority:    constants.TicketPriorityLow,
		}, owner, "10.0.0.3")
		if err != nil {
			t.Fatalf("CreateTicket failed: %v", err)
		}
	}

	mine, err := s.ListTicketsByOwner("user-1")
	if err != nil {
		t.Fatalf("ListTicketsByOwner failed: %v", err)
	}
	if mine.Count != 2 {
		t.Fatalf("owner ticket count = %d, want 2", mine.Count)
	}
	for _, ticket := range mine.List {
		if ticket.UserID != "user-1" {
			t.Errorf("foreign ticket %s in owner listing", ticket.UUID)
		}
	}
}
