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

type AssetHandler struct {
	assetService *service.AssetService
}

func NewAssetHandler(assetService *service.AssetService) *AssetHandler {
	return &AssetHandler{assetService: assetService}
}

// CreateAsset handles POST /api/v1/assets
func (h *AssetHandler) CreateAsset(c *gin.Context) {
	var req dto.CreateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	asset, err := h.assetService.CreateAsset(&req, actorID, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, asset)
}

// GetAsset handles GET /api/v1/assets/:assetId
func (h *AssetHandler) GetAsset(c *gin.Context) {
	asset, err := h.assetService.GetAssetByID(c.Param("assetId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, asset)
}

// ListAssets handles GET /api/v1/assets
func (h *AssetHandler) ListAssets(c *gin.Context) {
	assets, err := h.assetService.ListAssets()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, assets)
}

// UpdateAssetStatus handles PATCH /api/v1/assets/:assetId/status
func (h *AssetHandler) UpdateAssetStatus(c *gin.Context) {
	var req dto.UpdateAssetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	asset, err := h.assetService.UpdateAssetStatus(c.Param("assetId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, asset)
}

// RegisterRoutes registers asset inventory endpoints, all admin-gated
func (h *AssetHandler) RegisterRoutes(r *gin.Engine) {
	assetGroup := r.Group("/api/v1/assets")
	assetGroup.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		assetGroup.GET("", h.ListAssets)
		assetGroup.POST("", h.CreateAsset)
		assetGroup.GET("/:assetId", h.GetAsset)
		assetGroup.PATCH("/:assetId/status", h.UpdateAssetStatus)
	}
}
