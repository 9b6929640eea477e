package model

import (
	"time"
)

// Department represents an organizational department
type Department struct {
	UUID      string    `json:"uuid" db:"uuid"`
	Name      string    `json:"name" db:"name"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the Department model
func (Department) TableName() string {
	return "departments"
}

// SubDepartment represents a sub-unit within a department
type SubDepartment struct {
	UUID         string    `json:"uuid" db:"uuid"`
	Name         string    `json:"name" db:"name"`
	DepartmentID string    `json:"department_id" db:"department_id"` // FK to Department.UUID
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the SubDepartment model
func (SubDepartment) TableName() string {
	return "sub_departments"
}
