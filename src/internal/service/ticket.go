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
	"fmt"
	"time"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"
	"itam-api/src/internal/websocket"

	"github.com/google/uuid"
)

type TicketService struct {
	ticketRepo   repository.TicketRepository
	auditService *AuditService
	events       *websocket.Manager
}

func NewTicketService(ticketRepo repository.TicketRepository, auditService *AuditService,
	events *websocket.Manager) *TicketService {
	return &TicketService{
		ticketRepo:   ticketRepo,
		auditService: auditService,
		events:       events,
	}
}

func (s *TicketService) CreateTicket(req *dto.CreateTicketRequest, ownerID, ipAddress string) (*dto.Ticket, error) {
	now := time.Now().UTC()
	ticket := &model.Ticket{
		UUID:          uuid.New().String(),
		TicketUID:     fmt.Sprintf("TKT-%d", now.Unix()),
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      req.Priority,
		Status:        constants.TicketStatusOpen,
		AttachmentURL: req.AttachmentURL,
		UserID:        ownerID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.ticketRepo.CreateTicket(ticket); err != nil {
		return nil, err
	}

	s.auditService.Record(ownerID, constants.AuditActionCreateTicket, "ticket:"+ticket.UUID, ipAddress)
	s.events.Broadcast(websocket.Event{
		Type:       websocket.EventTicketCreated,
		EntityUUID: ticket.UUID,
		Summary:    fmt.Sprintf("%s [%s] %s", ticket.TicketUID, ticket.Priority, ticket.Title),
	})

	return s.modelToDTO(ticket), nil
}

func (s *TicketService) GetTicketByID(ticketID string) (*dto.Ticket, error) {
	ticket, err := s.ticketRepo.GetTicketByUUID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, constants.ErrTicketNotFound
	}
	return s.modelToDTO(ticket), nil
}

func (s *TicketService) ListTickets() (*dto.TicketListResponse, error) {
	tickets, err := s.ticketRepo.ListTickets()
	if err != nil {
		return nil, err
	}
	return s.toListResponse(tickets), nil
}

// ListTicketsByOwner returns the tickets raised by a single user
func (s *TicketService) ListTicketsByOwner(userID string) (*dto.TicketListResponse, error) {
	tickets, err := s.ticketRepo.ListTicketsByOwner(userID)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(tickets), nil
}

// UpdateTicket applies an admin's triage decision. The acting admin becomes
// the assignee.
func (s *TicketService) UpdateTicket(ticketID string, req *dto.UpdateTicketRequest, adminID, ipAddress string) (*dto.Ticket, error) {
	ticket, err := s.ticketRepo.GetTicketByUUID(ticketID)
	if err != nil {
		return nil, err
	}
	if ticket == nil {
		return nil, constants.ErrTicketNotFound
	}

	ticket.Status = req.Status
	ticket.Priority = req.Priority
	ticket.ResolutionNotes = req.ResolutionNotes
	ticket.AssignedAdmin = &adminID
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.ticketRepo.UpdateTicket(ticket); err != nil {
		return nil, err
	}

	s.auditService.Record(adminID, constants.AuditActionUpdateTicket, "ticket:"+ticket.UUID, ipAddress)
	s.events.Broadcast(websocket.Event{
		Type:       websocket.EventTicketUpdated,
		EntityUUID: ticket.UUID,
		Summary:    fmt.Sprintf("%s -> %s", ticket.TicketUID, ticket.Status),
	})

	return s.modelToDTO(ticket), nil
}

func (s *TicketService) toListResponse(tickets []*model.Ticket) *dto.TicketListResponse {
	list := make([]*dto.Ticket, 0)
	for _, ticket := range tickets {
		list = append(list, s.modelToDTO(ticket))
	}
	return &dto.TicketListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}
}

func (s *TicketService) modelToDTO(ticket *model.Ticket) *dto.Ticket {
	return &dto.Ticket{
		UUID:            ticket.UUID,
		TicketUID:       ticket.TicketUID,
		Title:           ticket.Title,
		Description:     ticket.Description,
		Category:        ticket.Category,
		Priority:        ticket.Priority,
		Status:          ticket.Status,
		AttachmentURL:   ticket.AttachmentURL,
		ResolutionNotes: ticket.ResolutionNotes,
		UserID:          ticket.UserID,
		AssignedAdmin:   ticket.AssignedAdmin,
		CreatedAt:       ticket.CreatedAt,
		UpdatedAt:       ticket.UpdatedAt,
	}
}
