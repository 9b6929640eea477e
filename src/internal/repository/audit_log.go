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
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// AuditLogRepo implements AuditLogRepository. The table is append-only:
// there are deliberately no update or delete methods.
type AuditLogRepo struct {
	db *database.DB
}

// NewAuditLogRepo creates a new audit log repository
func NewAuditLogRepo(db *database.DB) AuditLogRepository {
	return &AuditLogRepo{db: db}
}

// CreateAuditLog appends an audit entry
func (r *AuditLogRepo) CreateAuditLog(entry *model.AuditLog) error {
	entry.CreatedAt = time.Now()

	query := `
		INSERT INTO audit_logs (uuid, actor_id, action, target_entity, ip_address, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		entry.UUID, entry.ActorID, entry.Action, entry.TargetEntity, entry.IPAddress, entry.CreatedAt)
	return err
}

// ListAuditLogs retrieves audit entries, newest first
func (r *AuditLogRepo) ListAuditLogs(limit, offset int) ([]*model.AuditLog, error) {
	query := `
		SELECT uuid, actor_id, action, target_entity, ip_address, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`
	rows, err := r.db.Query(r.db.Rebind(query), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*model.AuditLog
	for rows.Next() {
		entry := &model.AuditLog{}
		err := rows.Scan(&entry.UUID, &entry.ActorID, &entry.Action, &entry.TargetEntity,
			&entry.IPAddress, &entry.CreatedAt)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

// CountAuditLogs counts all audit entries
func (r *AuditLogRepo) CountAuditLogs() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM audit_logs`).Scan(&count)
	return count, err
}
