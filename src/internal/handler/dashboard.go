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
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/service"
	"itam-api/src/internal/utils"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// AdminDashboard handles GET /api/v1/dashboard/admin
func (h *DashboardHandler) AdminDashboard(c *gin.Context) {
	dashboard, err := h.dashboardService.AdminDashboard()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// UserDashboard handles GET /api/v1/dashboard/me
func (h *DashboardHandler) UserDashboard(c *gin.Context) {
	userID, _ := middleware.GetUserIDFromContext(c)
	dashboard, err := h.dashboardService.UserDashboard(userID)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, dashboard)
}

// RegisterRoutes registers dashboard endpoints
func (h *DashboardHandler) RegisterRoutes(r *gin.Engine) {
	dashboardGroup := r.Group("/api/v1/dashboard")
	{
		dashboardGroup.GET("/me", h.UserDashboard)
		dashboardGroup.GET("/admin",
			middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin), h.AdminDashboard)
	}
}
