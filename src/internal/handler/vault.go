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

type VaultHandler struct {
	vaultService *service.VaultService
}

func NewVaultHandler(vaultService *service.VaultService) *VaultHandler {
	return &VaultHandler{vaultService: vaultService}
}

// CreateLicense handles POST /api/v1/vault/licenses
func (h *VaultHandler) CreateLicense(c *gin.Context) {
	var req dto.CreateLicenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	license, err := h.vaultService.CreateLicense(&req, actorID, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, license)
}

// ListLicenses handles GET /api/v1/vault/licenses. The response carries
// metadata only; secrets stay sealed.
func (h *VaultHandler) ListLicenses(c *gin.Context) {
	licenses, err := h.vaultService.ListLicenses()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, licenses)
}

// RevealLicense handles POST /api/v1/vault/licenses/:licenseId/reveal.
// The caller must present a fresh challenge proof; the decrypted secrets
// appear only in this response and are never cached.
func (h *VaultHandler) RevealLicense(c *gin.Context) {
	var req dto.RevealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	// The token may also arrive in a header, matching how the challenge
	// endpoint hands it out
	if req.CaptchaToken == "" {
		req.CaptchaToken = c.GetHeader("X-Captcha-Token")
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	actorRole, _ := middleware.GetRoleFromContext(c)
	revealed, err := h.vaultService.Reveal(c.Param("licenseId"), &req, actorID, actorRole, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, revealed)
}

// DeleteLicense handles DELETE /api/v1/vault/licenses/:licenseId
func (h *VaultHandler) DeleteLicense(c *gin.Context) {
	if err := h.vaultService.DeleteLicense(c.Param("licenseId")); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers vault endpoints, all admin-gated. The reveal
// route carries its own deeper checks inside the service.
func (h *VaultHandler) RegisterRoutes(r *gin.Engine) {
	vaultGroup := r.Group("/api/v1/vault/licenses")
	vaultGroup.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		vaultGroup.GET("", h.ListLicenses)
		vaultGroup.POST("", h.CreateLicense)
		vaultGroup.POST("/:licenseId/reveal", h.RevealLicense)
		vaultGroup.DELETE("/:licenseId",
			middleware.RequireRole(constants.RoleSuperAdmin), h.DeleteLicense)
	}
}
