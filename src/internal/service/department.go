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

package service

import (
	"time"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"

	"github.com/google/uuid"
)

type DepartmentService struct {
	departmentRepo repository.DepartmentRepository
}

func NewDepartmentService(departmentRepo repository.DepartmentRepository) *DepartmentService {
	return &DepartmentService{departmentRepo: departmentRepo}
}

func (s *DepartmentService) CreateDepartment(req *dto.CreateDepartmentRequest) (*dto.Department, error) {
	existing, err := s.departmentRepo.GetDepartmentByName(req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrDepartmentExists
	}

	department := &model.Department{
		UUID:      uuid.New().String(),
		Name:      req.Name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.departmentRepo.CreateDepartment(department); err != nil {
		return nil, err
	}

	return &dto.Department{
		UUID:           department.UUID,
		Name:           department.Name,
		SubDepartments: []*dto.SubDepartment{},
		CreatedAt:      department.CreatedAt,
	}, nil
}

func (s *DepartmentService) CreateSubDepartment(departmentID string, req *dto.CreateSubDepartmentRequest) (*dto.SubDepartment, error) {
	department, err := s.departmentRepo.GetDepartmentByUUID(departmentID)
	if err != nil {
		return nil, err
	}
	if department == nil {
		return nil, constants.ErrDepartmentNotFound
	}

	subDepartment := &model.SubDepartment{
		UUID:         uuid.New().String(),
		Name:         req.Name,
		DepartmentID: departmentID,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.departmentRepo.CreateSubDepartment(subDepartment); err != nil {
		return nil, err
	}

	return &dto.SubDepartment{
		UUID:         subDepartment.UUID,
		Name:         subDepartment.Name,
		DepartmentID: subDepartment.DepartmentID,
		CreatedAt:    subDepartment.CreatedAt,
	}, nil
}

// ListDepartments returns every department with its sub-departments nested
func (s *DepartmentService) ListDepartments() (*dto.DepartmentListResponse, error) {
	departments, err := s.departmentRepo.ListDepartments()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.Department, 0)
	for _, department := range departments {
		subDepartments, err := s.departmentRepo.GetSubDepartmentsByDepartmentID(department.UUID)
		if err != nil {
			return nil, err
		}

		subs := make([]*dto.SubDepartment, 0)
		for _, sub := range subDepartments {
			subs = append(subs, &dto.SubDepartment{
				UUID:         sub.UUID,
				Name:         sub.Name,
				DepartmentID: sub.DepartmentID,
				CreatedAt:    sub.CreatedAt,
			})
		}

		list = append(list, &dto.Department{
			UUID:           department.UUID,
			Name:           department.Name,
			SubDepartments: subs,
			CreatedAt:      department.CreatedAt,
		})
	}

	return &dto.DepartmentListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}
