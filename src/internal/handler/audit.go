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
	"strconv"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/service"
	"itam-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListAuditLogs handles GET /api/v1/audit-logs?limit=&offset=
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	logs, err := h.auditService.ListAuditLogs(limit, offset)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, logs)
}

// RegisterRoutes registers the audit trail endpoint. The trail is read-only
// over HTTP; there is no write endpoint at all.
func (h *AuditHandler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/v1/audit-logs",
		middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin), h.ListAuditLogs)
}
