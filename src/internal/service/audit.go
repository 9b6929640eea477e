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

	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"
	"itam-api/src/internal/utils"

	"github.com/google/uuid"
)

type AuditService struct {
	auditRepo repository.AuditLogRepository
}

func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Record appends an audit entry. Recording is best-effort: a failure is
// logged and swallowed so that audit trouble never fails the operation
// being audited.
func (s *AuditService) Record(actorID, action, targetEntity, ipAddress string) {
	entry := &model.AuditLog{
		UUID:         uuid.New().String(),
		ActorID:      actorID,
		Action:       action,
		TargetEntity: targetEntity,
		IPAddress:    ipAddress,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.auditRepo.CreateAuditLog(entry); err != nil {
		utils.LogError("Failed to record audit entry", err)
	}
}

// ListAuditLogs returns a page of the audit trail, newest first
func (s *AuditService) ListAuditLogs(limit, offset int) (*dto.AuditLogListResponse, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}

	entries, err := s.auditRepo.ListAuditLogs(limit, offset)
	if err != nil {
		return nil, err
	}
	total, err := s.auditRepo.CountAuditLogs()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.AuditLog, 0)
	for _, entry := range entries {
		list = append(list, &dto.AuditLog{
			UUID:         entry.UUID,
			ActorID:      entry.ActorID,
			Action:       entry.Action,
			TargetEntity: entry.TargetEntity,
			IPAddress:    entry.IPAddress,
			CreatedAt:    entry.CreatedAt,
		})
	}

	return &dto.AuditLogListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  total,
			Offset: offset,
			Limit:  limit,
		},
	}, nil
}
