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

	"itam-api/src/internal/dto"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/service"
	"itam-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService  *service.AuthService
	cookieMaxAge int
}

func NewAuthHandler(authService *service.AuthService, expiryHours int) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		cookieMaxAge: expiryHours * 3600,
	}
}

// Login handles POST /api/v1/auth/login. On success the token is returned
// in the body and also set as an HTTP-only cookie for browser clients.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	resp, err := h.authService.Login(&req, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie("access_token", resp.Token, h.cookieMaxAge, "/", "", false, true)
	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout by clearing the session cookie
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie("access_token", "", -1, "/", "", false, true)
	c.Status(http.StatusNoContent)
}

// Me handles GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	email, _ := middleware.GetEmailFromContext(c)
	fullName, _ := middleware.GetFullNameFromContext(c)
	role, _ := middleware.GetRoleFromContext(c)

	c.JSON(http.StatusOK, gin.H{
		"user_id":   userID,
		"email":     email,
		"full_name": fullName,
		"role":      role,
	})
}

// RegisterRoutes registers auth endpoints
func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	authGroup := r.Group("/api/v1/auth")
	{
		authGroup.POST("/login", h.Login)
		authGroup.POST("/logout", h.Logout)
		authGroup.GET("/me", h.Me)
	}
}
