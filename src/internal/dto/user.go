package dto

import (
	"time"
)

// User represents a user account in API responses. The password hash
// never leaves the model layer.
type User struct {
	UUID          string    `json:"uuid"`
	FullName      string    `json:"full_name"`
	Email         string    `json:"email"`
	Role          string    `json:"role"`
	EmployeeID    string    `json:"employee_id,omitempty"`
	Designation   string    `json:"designation,omitempty"`
	Department    string    `json:"department,omitempty"`
	SubDepartment string    `json:"sub_department,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

// CreateUserRequest carries the fields for POST /api/v1/users
type CreateUserRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Role          string `json:"role" binding:"required,oneof=user admin super_admin"`
	EmployeeID    string `json:"employee_id"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	SubDepartment string `json:"sub_department"`
}

// UpdateUserRequest carries the fields for PUT /api/v1/users/:userId
type UpdateUserRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Role          string `json:"role" binding:"required,oneof=user admin super_admin"`
	EmployeeID    string `json:"employee_id"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	SubDepartment string `json:"sub_department"`
}

// UserListResponse is the list envelope for users
type UserListResponse struct {
	Count      int        `json:"count"`
	List       []*User    `json:"list"`
	Pagination Pagination `json:"pagination"`
}
