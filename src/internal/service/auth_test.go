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
	"errors"
	"testing"

	"itam-api/src/config"
	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

type memUserRepo struct {
	users map[string]*model.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]*model.User)}
}

func (r *memUserRepo) CreateUser(user *model.User) error {
	r.users[user.UUID] = user
	return nil
}

func (r *memUserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	return r.users[uuid], nil
}

func (r *memUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListUsers() ([]*model.User, error) {
	list := make([]*model.User, 0)
	for _, user := range r.users {
		list = append(list, user)
	}
	return list, nil
}

func (r *memUserRepo) UpdateUser(user *model.User) error {
	r.users[user.UUID] = user
	return nil
}

func (r *memUserRepo) DeleteUser(uuid string) error {
	delete(r.users, uuid)
	return nil
}

func (r *memUserRepo) CountByRole(role string) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

var testJWTConfig = config.JWT{
	SecretKey:   "test-secret-key",
	Issuer:      "itam-api-test",
	ExpiryHours: 8,
}

func newAuthFixture() (*AuthService, *memUserRepo, *memAuditRepo) {
	userRepo := newMemUserRepo()
	auditRepo := &memAuditRepo{}
	return NewAuthService(userRepo, NewAuditService(auditRepo), testJWTConfig), userRepo, auditRepo
}

func seedAccount(t *testing.T, s *AuthService, email, password string) {
	t.Helper()
	err := s.EnsureSuperAdmin(config.Seed{
		Email:    email,
		Password: password,
		FullName: "Test Admin",
	})
	if err != nil {
		t.Fatalf("EnsureSuperAdmin failed: %v", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	s, _, auditRepo := newAuthFixture()
	seedAccount(t, s, "admin@example.com", "correct horse battery")

	resp, err := s.Login(&dto.LoginRequest{
		Email:    "admin@example.com",
		Password: "correct horse battery",
	}, "10.0.0.2")
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != constants.RoleSuperAdmin {
		t.Errorf("role = %q, want %q", resp.Role, constants.RoleSuperAdmin)
	}

	claims := &middleware.CustomClaims{}
	token, err := jwt.ParseWithClaims(resp.Token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTConfig.SecretKey), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Subject != resp.UserID {
		t.Errorf("token subject = %q, want %q", claims.Subject, resp.UserID)
	}
	if claims.Issuer != testJWTConfig.Issuer {
		t.Errorf("token issuer = %q, want %q", claims.Issuer, testJWTConfig.Issuer)
	}

	if got := auditRepo.lastAction(); got != constants.AuditActionLogin {
		t.Errorf("last audit action = %q, want %q", got, constants.AuditActionLogin)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	s, _, _ := newAuthFixture()
	seedAccount(t, s, "admin@example.com", "correct horse battery")

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "wrong password", email: "admin@example.com", password: "incorrect"},
		{name: "unknown account", email: "nobody@example.com", password: "correct horse battery"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Login(&dto.LoginRequest{Email: tt.email, Password: tt.password}, "10.0.0.2")
			if !errors.Is(err, constants.ErrInvalidCredentials) {
				t.Fatalf("Login error = %v, want ErrInvalidCredentials", err)
			}
		})
	}
}

func TestEnsureSuperAdminIdempotent(t *testing.T) {
	s, userRepo, _ := newAuthFixture()
	seed := config.Seed{Email: "admin@example.com", Password: "seed-password", FullName: "Bootstrap"}

	if err := s.EnsureSuperAdmin(seed); err != nil {
		t.Fatalf("first EnsureSuperAdmin failed: %v", err)
	}
	if err := s.EnsureSuperAdmin(seed); err != nil {
		t.Fatalf("second EnsureSuperAdmin failed: %v", err)
	}

	count, _ := userRepo.CountByRole(constants.RoleSuperAdmin)
	if count != 1 {
		t.Errorf("super admin count = %d, want 1", count)
	}
}

func TestEnsureSuperAdminRequiresPassword(t *testing.T) {
	s, userRepo, _ := newAuthFixture()

	if err := s.EnsureSuperAdmin(config.Seed{Email: "admin@example.com"}); err != nil {
		t.Fatalf("EnsureSuperAdmin failed: %v", err)
	}

	count, _ := userRepo.CountByRole(constants.RoleSuperAdmin)
	if count != 0 {
		t.Error("bootstrap account created without a seed password")
	}
}
