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

package repository

import (
	"database/sql"
	"errors"
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// UserRepo implements UserRepository
type UserRepo struct {
	db *database.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *database.DB) UserRepository {
	return &UserRepo{db: db}
}

const userColumns = `uuid, full_name, email, hashed_password, role, employee_id, designation, department, sub_department, created_at`

// CreateUser inserts a new user
func (r *UserRepo) CreateUser(user *model.User) error {
	user.CreatedAt = time.Now()

	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query), user.UUID, user.FullName, user.Email, user.HashedPassword,
		user.Role, user.EmployeeID, user.Designation, user.Department, user.SubDepartment, user.CreatedAt)
	return err
}

func (r *UserRepo) scanUser(row *sql.Row) (*model.User, error) {
	user := &model.User{}
	err := row.Scan(&user.UUID, &user.FullName, &user.Email, &user.HashedPassword, &user.Role,
		&user.EmployeeID, &user.Designation, &user.Department, &user.SubDepartment, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return user, nil
}

// GetUserByUUID retrieves a user by ID
func (r *UserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE uuid = ?`
	return r.scanUser(r.db.QueryRow(r.db.Rebind(query), uuid))
}

// GetUserByEmail retrieves a user by email
func (r *UserRepo) GetUserByEmail(email string) (*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = ?`
	return r.scanUser(r.db.QueryRow(r.db.Rebind(query), email))
}

// ListUsers retrieves all users, newest first
func (r *UserRepo) ListUsers() ([]*model.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*model.User
	for rows.Next() {
		user := &model.User{}
		err := rows.Scan(&user.UUID, &user.FullName, &user.Email, &user.HashedPassword, &user.Role,
			&user.EmployeeID, &user.Designation, &user.Department, &user.SubDepartment, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

// UpdateUser modifies an existing user's profile fields
func (r *UserRepo) UpdateUser(user *model.User) error {
	query := `
		UPDATE users
		SET full_name = ?, role = ?, employee_id = ?, designation = ?, department = ?, sub_department = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(r.db.Rebind(query), user.FullName, user.Role, user.EmployeeID,
		user.Designation, user.Department, user.SubDepartment, user.UUID)
	return err
}

// DeleteUser removes a user
func (r *UserRepo) DeleteUser(uuid string) error {
	query := `DELETE FROM users WHERE uuid = ?`
	_, err := r.db.Exec(r.db.Rebind(query), uuid)
	return err
}

// CountByRole counts users holding the given role
func (r *UserRepo) CountByRole(role string) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM users WHERE role = ?`
	err := r.db.QueryRow(r.db.Rebind(query), role).Scan(&count)
	return count, err
}
