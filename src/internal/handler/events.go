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
	"time"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/utils"
	ws "itam-api/src/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// EventsHandler upgrades admin dashboard connections onto the live event
// feed (ticket activity and vault access).
type EventsHandler struct {
	manager  *ws.Manager
	maxConns int
	upgrader websocket.Upgrader
}

func NewEventsHandler(manager *ws.Manager, maxConns int) *EventsHandler {
	return &EventsHandler{
		manager:  manager,
		maxConns: maxConns,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Same-origin deployments only; the dashboard is served
				// alongside the API
				return true
			},
			HandshakeTimeout: 10 * time.Second,
		},
	}
}

// Connect handles GET /api/v1/events
func (h *EventsHandler) Connect(c *gin.Context) {
	if h.manager.ClientCount() >= h.maxConns {
		c.JSON(http.StatusServiceUnavailable, utils.NewErrorResponse("Service Unavailable",
			"Event feed connection limit reached"))
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.LogError("Failed to upgrade event feed connection", err)
		return
	}

	h.manager.Register(conn)
}

// RegisterRoutes registers the event feed endpoint, admin-gated
func (h *EventsHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/events",
		middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin), h.Connect)
}
