package dto

import (
	"time"
)

// Department represents a department with its sub-departments
type Department struct {
	UUID           string           `json:"uuid"`
	Name           string           `json:"name"`
	SubDepartments []*SubDepartment `json:"sub_departments"`
	CreatedAt      time.Time        `json:"created_at"`
}

// SubDepartment represents a sub-unit within a department
type SubDepartment struct {
	UUID         string    `json:"uuid"`
	Name         string    `json:"name"`
	DepartmentID string    `json:"department_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// CreateDepartmentRequest carries the fields for POST /api/v1/departments
type CreateDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// CreateSubDepartmentRequest carries the fields for
// POST /api/v1/departments/:departmentId/sub-departments
type CreateSubDepartmentRequest struct {
	Name string `json:"name" binding:"required"`
}

// DepartmentListResponse is the list envelope for departments
type DepartmentListResponse struct {
	Count      int           `json:"count"`
	List       []*Department `json:"list"`
	Pagination Pagination    `json:"pagination"`
}
