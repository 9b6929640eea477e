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
	"fmt"
	"time"

	"itam-api/src/config"
	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"
	"itam-api/src/internal/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	userRepo     repository.UserRepository
	auditService *AuditService
	jwtConfig    config.JWT
}

func NewAuthService(userRepo repository.UserRepository, auditService *AuditService, jwtConfig config.JWT) *AuthService {
	return &AuthService{
		userRepo:     userRepo,
		auditService: auditService,
		jwtConfig:    jwtConfig,
	}
}

// Login verifies credentials and issues a session token. A wrong email and
// a wrong password produce the same error so the response does not leak
// which accounts exist.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress string) (*dto.LoginResponse, error) {
	user, err := s.userRepo.GetUserByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, constants.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
		return nil, constants.ErrInvalidCredentials
	}

	token, err := s.issueToken(user)
	if err != nil {
		return nil, err
	}

	s.auditService.Record(user.UUID, constants.AuditActionLogin, "user:"+user.UUID, ipAddress)

	return &dto.LoginResponse{
		Token:    token,
		UserID:   user.UUID,
		FullName: user.FullName,
		Email:    user.Email,
		Role:     user.Role,
	}, nil
}

func (s *AuthService) issueToken(user *model.User) (string, error) {
	now := time.Now()
	claims := &middleware.CustomClaims{
		Email:    user.Email,
		FullName: user.FullName,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.UUID,
			Issuer:    s.jwtConfig.Issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.jwtConfig.ExpiryHours) * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtConfig.SecretKey))
}

// EnsureSuperAdmin creates the bootstrap super-admin account if no super
// admin exists yet. With an empty seed password the account is not created;
// an operator must supply one explicitly.
func (s *AuthService) EnsureSuperAdmin(seed config.Seed) error {
	count, err := s.userRepo.CountByRole(constants.RoleSuperAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if seed.Password == "" {
		utils.LogWarning("No super admin exists and SEED_PASSWORD is unset; skipping bootstrap account")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash seed password: %w", err)
	}

	user := &model.User{
		UUID:           uuid.New().String(),
		FullName:       seed.FullName,
		Email:          seed.Email,
		HashedPassword: string(hashed),
		Role:           constants.RoleSuperAdmin,
		CreatedAt:      time.Now().UTC(),
	}
	if err := s.userRepo.CreateUser(user); err != nil {
		return err
	}

	utils.LogInfo(fmt.Sprintf("Seeded super admin account %s", seed.Email))
	return nil
}
