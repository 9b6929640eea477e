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

type RepairHandler struct {
	repairService *service.RepairService
}

func NewRepairHandler(repairService *service.RepairService) *RepairHandler {
	return &RepairHandler{repairService: repairService}
}

// CreateRepairLog handles POST /api/v1/repairs
func (h *RepairHandler) CreateRepairLog(c *gin.Context) {
	var req dto.CreateRepairLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	repairLog, err := h.repairService.CreateRepairLog(&req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, repairLog)
}

// UpdateRepairStatus handles PATCH /api/v1/repairs/:repairId/status
func (h *RepairHandler) UpdateRepairStatus(c *gin.Context) {
	var req dto.UpdateRepairStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	repairLog, err := h.repairService.UpdateRepairStatus(c.Param("repairId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, repairLog)
}

// ListRepairLogs handles GET /api/v1/repairs
func (h *RepairHandler) ListRepairLogs(c *gin.Context) {
	repairLogs, err := h.repairService.ListRepairLogs()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, repairLogs)
}

// RegisterRoutes registers repair tracking endpoints, all admin-gated
func (h *RepairHandler) RegisterRoutes(r *gin.Engine) {
	repairGroup := r.Group("/api/v1/repairs")
	repairGroup.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		repairGroup.GET("", h.ListRepairLogs)
		repairGroup.POST("", h.CreateRepairLog)
		repairGroup.PATCH("/:repairId/status", h.UpdateRepairStatus)
	}
}
