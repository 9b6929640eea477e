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

// DepartmentRepo implements DepartmentRepository
type DepartmentRepo struct {
	db *database.DB
}

// NewDepartmentRepo creates a new department repository
func NewDepartmentRepo(db *database.DB) DepartmentRepository {
	return &DepartmentRepo{db: db}
}

// CreateDepartment inserts a new department
func (r *DepartmentRepo) CreateDepartment(department *model.Department) error {
	department.CreatedAt = time.Now()

	query := `INSERT INTO departments (uuid, name, created_at) VALUES (?, ?, ?)`
	_, err := r.db.Exec(r.db.Rebind(query), department.UUID, department.Name, department.CreatedAt)
	return err
}

// GetDepartmentByUUID retrieves a department by ID
func (r *DepartmentRepo) GetDepartmentByUUID(uuid string) (*model.Department, error) {
	department := &model.Department{}
	query := `SELECT uuid, name, created_at FROM departments WHERE uuid = ?`
	err := r.db.QueryRow(r.db.Rebind(query), uuid).Scan(&department.UUID, &department.Name, &department.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return department, nil
}

// GetDepartmentByName retrieves a department by its unique name
func (r *DepartmentRepo) GetDepartmentByName(name string) (*model.Department, error) {
	department := &model.Department{}
	query := `SELECT uuid, name, created_at FROM departments WHERE name = ?`
	err := r.db.QueryRow(r.db.Rebind(query), name).Scan(&department.UUID, &department.Name, &department.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return department, nil
}

// ListDepartments retrieves all departments ordered by name
func (r *DepartmentRepo) ListDepartments() ([]*model.Department, error) {
	query := `SELECT uuid, name, created_at FROM departments ORDER BY name`
	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var departments []*model.Department
	for rows.Next() {
		department := &model.Department{}
		if err := rows.Scan(&department.UUID, &department.Name, &department.CreatedAt); err != nil {
			return nil, err
		}
		departments = append(departments, department)
	}

	return departments, rows.Err()
}

// CreateSubDepartment inserts a new sub-department
func (r *DepartmentRepo) CreateSubDepartment(subDepartment *model.SubDepartment) error {
	subDepartment.CreatedAt = time.Now()

	query := `INSERT INTO sub_departments (uuid, name, department_id, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.Exec(r.db.Rebind(query), subDepartment.UUID, subDepartment.Name,
		subDepartment.DepartmentID, subDepartment.CreatedAt)
	return err
}

// GetSubDepartmentsByDepartmentID retrieves the sub-departments of a department
func (r *DepartmentRepo) GetSubDepartmentsByDepartmentID(departmentID string) ([]*model.SubDepartment, error) {
	query := `SELECT uuid, name, department_id, created_at FROM sub_departments WHERE department_id = ? ORDER BY name`
	rows, err := r.db.Query(r.db.Rebind(query), departmentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subDepartments []*model.SubDepartment
	for rows.Next() {
		subDepartment := &model.SubDepartment{}
		if err := rows.Scan(&subDepartment.UUID, &subDepartment.Name, &subDepartment.DepartmentID, &subDepartment.CreatedAt); err != nil {
			return nil, err
		}
		subDepartments = append(subDepartments, subDepartment)
	}

	return subDepartments, rows.Err()
}
