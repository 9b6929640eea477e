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

package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/model"
	"itam-api/src/internal/service"

	"github.com/gin-gonic/gin"
)

// stubUserRepo is an in-memory UserRepository for routing tests
type stubUserRepo struct {
	users map[string]*model.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*model.User)}
}

func (r *stubUserRepo) CreateUser(user *model.User) error {
	r.users[user.UUID] = user
	return nil
}

func (r *stubUserRepo) GetUserByUUID(uuid string) (*model.User, error) {
	return r.users[uuid], nil
}

func (r *stubUserRepo) GetUserByEmail(email string) (*model.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) ListUsers() ([]*model.User, error) {
	list := make([]*model.User, 0)
	for _, user := range r.users {
		list = append(list, user)
	}
	return list, nil
}

func (r *stubUserRepo) UpdateUser(user *model.User) error {
	r.users[user.UUID] = user
	return nil
}

func (r *stubUserRepo) DeleteUser(uuid string) error {
	delete(r.users, uuid)
	return nil
}

func (r *stubUserRepo) CountByRole(role string) (int, error) {
	count := 0
	for _, user := range r.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// stubAuditRepo discards audit entries in routing tests
type stubAuditRepo struct{}

func (r *stubAuditRepo) CreateAuditLog(entry *model.AuditLog) error { return nil }

func (r *stubAuditRepo) ListAuditLogs(limit, offset int) ([]*model.AuditLog, error) {
	return []*model.AuditLog{}, nil
}

func (r *stubAuditRepo) CountAuditLogs() (int, error) { return 0, nil }

// newTestRouter builds a router with the identity of the given role already
// resolved, the way the JWT middleware would have left it
func newTestRouter(role string, userRepo *stubUserRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "actor-1")
		c.Set("email", "actor@example.com")
		c.Set("role", role)
		c.Next()
	})

	auditService := service.NewAuditService(&stubAuditRepo{})
	userService := service.NewUserService(userRepo, auditService)
	NewUserHandler(userService).RegisterRoutes(r)
	NewAuditHandler(auditService).RegisterRoutes(r)
	return r
}

func TestUserRouteRoleGates(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		method     string
		path       string
		wantStatus int
	}{
		{"admin lists users", constants.RoleAdmin, http.MethodGet, "/api/v1/users", http.StatusOK},
		{"super admin lists users", constants.RoleSuperAdmin, http.MethodGet, "/api/v1/users", http.StatusOK},
		{"regular user blocked from listing", constants.RoleUser, http.MethodGet, "/api/v1/users", http.StatusUnauthorized},
		{"admin blocked from deleting", constants.RoleAdmin, http.MethodDelete, "/api/v1/users/target-1", http.StatusUnauthorized},
		{"super admin deletes", constants.RoleSuperAdmin, http.MethodDelete, "/api/v1/users/target-1", http.StatusNoContent},
		{"admin reads audit trail", constants.RoleAdmin, http.MethodGet, "/api/v1/audit-logs", http.StatusOK},
		{"regular user blocked from audit trail", constants.RoleUser, http.MethodGet, "/api/v1/audit-logs", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := newStubUserRepo()
			userRepo.users["target-1"] = &model.User{
				UUID:  "target-1",
				Email: "target@example.com",
				Role:  constants.RoleUser,
			}
			router := newTestRouter(tt.role, userRepo)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, nil)
			router.ServeHTTP(w, req)

			if w.Code != tt.wantStatus {
				t.Errorf("%s %s as %s = %d, want %d", tt.method, tt.path, tt.role, w.Code, tt.wantStatus)
			}
		})
	}
}
