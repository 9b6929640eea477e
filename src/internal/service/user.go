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
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo     repository.UserRepository
	auditService *AuditService
}

func NewUserService(userRepo repository.UserRepository, auditService *AuditService) *UserService {
	return &UserService{
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (s *UserService) CreateUser(req *dto.CreateUserRequest, actorID, ipAddress string) (*dto.User, error) {
	existing, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, constants.ErrUserExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		UUID:           uuid.New().String(),
		FullName:       req.FullName,
		Email:          req.Email,
		HashedPassword: string(hashed),
		Role:           req.Role,
		EmployeeID:     req.EmployeeID,
		Designation:    req.Designation,
		Department:     req.Department,
		SubDepartment:  req.SubDepartment,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, err
	}

	s.auditService.Record(actorID, constants.AuditActionCreateUser, "user:"+user.UUID, ipAddress)

	return s.modelToDTO(user), nil
}

func (s *UserService) GetUserByID(userID string) (*dto.User, error) {
	user, err := s.userRepo.GetUserByUUID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}
	return s.modelToDTO(user), nil
}

func (s *UserService) ListUsers() (*dto.UserListResponse, error) {
	users, err := s.userRepo.ListUsers()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.User, 0)
	for _, user := range users {
		list = append(list, s.modelToDTO(user))
	}

	return &dto.UserListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

func (s *UserService) UpdateUser(userID string, req *dto.UpdateUserRequest) (*dto.User, error) {
	user, err := s.userRepo.GetUserByUUID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrUserNotFound
	}

	user.FullName = req.FullName
	user.Role = req.Role
	user.EmployeeID = req.EmployeeID
	user.Designation = req.Designation
	user.Department = req.Department
	user.SubDepartment = req.SubDepartment

	if err := s.userRepo.UpdateUser(user); err != nil {
		return nil, err
	}
	return s.modelToDTO(user), nil
}

func (s *UserService) DeleteUser(userID, actorID, ipAddress string) error {
	user, err := s.userRepo.GetUserByUUID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return constants.ErrUserNotFound
	}

	if err := s.userRepo.DeleteUser(userID); err != nil {
		return err
	}

	s.auditService.Record(actorID, constants.AuditActionDeleteUser, "user:"+userID, ipAddress)
	return nil
}

func (s *UserService) modelToDTO(user *model.User) *dto.User {
	return &dto.User{
		UUID:          user.UUID,
		FullName:      user.FullName,
		Email:         user.Email,
		Role:          user.Role,
		EmployeeID:    user.EmployeeID,
		Designation:   user.Designation,
		Department:    user.Department,
		SubDepartment: user.SubDepartment,
		CreatedAt:     user.CreatedAt,
	}
}
