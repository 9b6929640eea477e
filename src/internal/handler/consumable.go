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

type ConsumableHandler struct {
	consumableService *service.ConsumableService
}

func NewConsumableHandler(consumableService *service.ConsumableService) *ConsumableHandler {
	return &ConsumableHandler{consumableService: consumableService}
}

// CreateConsumable handles POST /api/v1/consumables
func (h *ConsumableHandler) CreateConsumable(c *gin.Context) {
	var req dto.CreateConsumableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	consumable, err := h.consumableService.CreateConsumable(&req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, consumable)
}

// ListConsumables handles GET /api/v1/consumables
func (h *ConsumableHandler) ListConsumables(c *gin.Context) {
	consumables, err := h.consumableService.ListConsumables()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, consumables)
}

// Restock handles POST /api/v1/consumables/:consumableId/restock
func (h *ConsumableHandler) Restock(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	consumable, err := h.consumableService.Restock(c.Param("consumableId"), req.Quantity)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, consumable)
}

// Consume handles POST /api/v1/consumables/:consumableId/consume
func (h *ConsumableHandler) Consume(c *gin.Context) {
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	consumable, err := h.consumableService.Consume(c.Param("consumableId"), req.Quantity)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, consumable)
}

// RegisterRoutes registers consumable stock endpoints, all admin-gated
func (h *ConsumableHandler) RegisterRoutes(r *gin.Engine) {
	consumableGroup := r.Group("/api/v1/consumables")
	consumableGroup.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		consumableGroup.GET("", h.ListConsumables)
		consumableGroup.POST("", h.CreateConsumable)
		consumableGroup.POST("/:consumableId/restock", h.Restock)
		consumableGroup.POST("/:consumableId/consume", h.Consume)
	}
}
