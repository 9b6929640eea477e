package model

import (
	"time"
)

// User represents an employee or IT staff account
type User struct {
	UUID           string    `json:"uuid" db:"uuid"`
	FullName       string    `json:"full_name" db:"full_name"`
	Email          string    `json:"email" db:"email"`
	HashedPassword string    `json:"-" db:"hashed_password"`
	Role           string    `json:"role" db:"role"`
	EmployeeID     string    `json:"employee_id" db:"employee_id"`
	Designation    string    `json:"designation" db:"designation"`
	Department     string    `json:"department" db:"department"`
	SubDepartment  string    `json:"sub_department" db:"sub_department"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
