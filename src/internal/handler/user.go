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

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUser handles POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	actorID, _ := middleware.GetUserIDFromContext(c)
	user, err := h.userService.CreateUser(&req, actorID, c.ClientIP())
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, user)
}

// GetUser handles GET /api/v1/users/:userId
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.GetUserByID(c.Param("userId"))
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// ListUsers handles GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, users)
}

// UpdateUser handles PUT /api/v1/users/:userId
func (h *UserHandler) UpdateUser(c *gin.Context) {
	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	user, err := h.userService.UpdateUser(c.Param("userId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser handles DELETE /api/v1/users/:userId
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actorID, _ := middleware.GetUserIDFromContext(c)
	if err := h.userService.DeleteUser(c.Param("userId"), actorID, c.ClientIP()); err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// RegisterRoutes registers user management endpoints. Admins manage accounts;
// deleting one is reserved for super admins.
func (h *UserHandler) RegisterRoutes(r *gin.Engine) {
	userGroup := r.Group("/api/v1/users")
	userGroup.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
	{
		userGroup.GET("", h.ListUsers)
		userGroup.POST("", h.CreateUser)
		userGroup.GET("/:userId", h.GetUser)
		userGroup.PUT("/:userId", h.UpdateUser)
		userGroup.DELETE("/:userId",
			middleware.RequireRole(constants.RoleSuperAdmin), h.DeleteUser)
	}
}
