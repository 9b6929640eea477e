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

type DepartmentHandler struct {
	departmentService *service.DepartmentService
}

func NewDepartmentHandler(departmentService *service.DepartmentService) *DepartmentHandler {
	return &DepartmentHandler{departmentService: departmentService}
}

// CreateDepartment handles POST /api/v1/departments
func (h *DepartmentHandler) CreateDepartment(c *gin.Context) {
	var req dto.CreateDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	department, err := h.departmentService.CreateDepartment(&req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, department)
}

// CreateSubDepartment handles POST /api/v1/departments/:departmentId/sub-departments
func (h *DepartmentHandler) CreateSubDepartment(c *gin.Context) {
	var req dto.CreateSubDepartmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Bad Request",
			utils.FormatValidationError(err)))
		return
	}

	subDepartment, err := h.departmentService.CreateSubDepartment(c.Param("departmentId"), &req)
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusCreated, subDepartment)
}

// ListDepartments handles GET /api/v1/departments
func (h *DepartmentHandler) ListDepartments(c *gin.Context) {
	departments, err := h.departmentService.ListDepartments()
	if err != nil {
		c.JSON(utils.GetErrorResponse(err))
		return
	}
	c.JSON(http.StatusOK, departments)
}

// RegisterRoutes registers department endpoints. Reads are open to any
// signed-in user; writes need an admin.
func (h *DepartmentHandler) RegisterRoutes(r *gin.Engine) {
	departmentGroup := r.Group("/api/v1/departments")
	{
		departmentGroup.GET("", h.ListDepartments)

		adminOnly := departmentGroup.Group("")
		adminOnly.Use(middleware.RequireRole(constants.RoleAdmin, constants.RoleSuperAdmin))
		{
			adminOnly.POST("", h.CreateDepartment)
			adminOnly.POST("/:departmentId/sub-departments", h.CreateSubDepartment)
		}
	}
}
