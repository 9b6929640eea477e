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

package handler

import (
	"net/http"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/service"
	"itam-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	ticketService *service.TicketService
}

func NewTicketHandler(ticketService *service.TicketService) *TicketHandler {
	return &TicketHandler{ticketService: ticketService}
}

// CreateTicket handles POST /api/v1/tickets. Any signed-in user can raise
// a ticket; ownership comes from the token, never the body.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	ownerID, _ := middleware.GetUserIDFromContext(c)
	ticket, err := h.ticketService.CreateTicket(&req, ownerID, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, ticket)
}

// GetTicket handles GET /api/v1/tickets/:ticketId. Users can only see
// their own tickets; admins see everything.
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticket, err := h.ticketService.GetTicketByID(c.Param("ticketId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	role, _ := middleware.GetRoleFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)
	if role == constants.RoleUser && ticket.UserID != userID {
		c.JSON(utils.GetErrorResponse(constants.ErrTicketNotFound))
		return
	}

	c.JSON(http.StatusOK, ticket)
}

// ListTickets handles GET /api/v1/tickets. Admins get the full queue;
// users get their own tickets.
func (h *TicketHandler) ListTickets(c *gin.Context) {
	role, _ := middleware.GetRoleFromContext(c)
	userID, _ := middleware.GetUserIDFromContext(c)

	var (
		tickets *dto.TicketListResponse
		err     error
	)
	if role == constants.RoleUser {
		tickets, err = h.ticketService.ListTicketsByOwner(userID)
	} else {
		tickets, err = h.ticketService.ListTickets()
	}
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, tickets)
}

// UpdateTicket handles PUT /api/v1/tickets/:ticketId (admin triage)
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	adminID, _ := middleware.GetUserIDFromContext(c)
	ticket, err := h.ticketService.UpdateTicket(c.Param("ticketId"), &req, adminID, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, ticket)
}

// RegisterRoutes registers helpdesk endpoints
func (h *TicketHandler) RegisterRoutes(r *gin.Engine) {
	ticketGroup := r.Group("/api/v1/tickets")
	{
		ticketGroup.GET("", h.ListTickets)
		ticketGroup.POST("", h.CreateTicket)
		ticketGroup.GET("/:ticketId", h.GetTicket)
		ticketGroup.PUT("/:ticketId",
			middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin), h.UpdateTicket)
	}
}
