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

	"itam-api/src/internal/model"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(user *model.User) error
	GetUserByUUID(uuid string) (*model.User, error)
	GetUserByEmail(email string) (*model.User, error)
	ListUsers() ([]*model.User, error)
	UpdateUser(user *model.User) error
	DeleteUser(uuid string) error
	CountByRole(role string) (int, error)
}

// DepartmentRepository defines the interface for department master data
type DepartmentRepository interface {
	CreateDepartment(department *model.Department) error
	GetDepartmentByUUID(uuid string) (*model.Department, error)
	GetDepartmentByName(name string) (*model.Department, error)
	ListDepartments() ([]*model.Department, error)
	CreateSubDepartment(subDepartment *model.SubDepartment) error
	GetSubDepartmentsByDepartmentID(departmentID string) ([]*model.SubDepartment, error)
}

// AssetRepository defines the interface for asset data access
type AssetRepository interface {
	CreateAsset(asset *model.Asset) error
	GetAssetByUUID(uuid string) (*model.Asset, error)
	ListAssets() ([]*model.Asset, error)
	ListAssetsByAssignee(userID string) ([]*model.Asset, error)
	UpdateAsset(asset *model.Asset) error
	CountAssets() (int, error)
}

// TicketRepository defines the interface for ticket data access
type TicketRepository interface {
	CreateTicket(ticket *model.Ticket) error
	GetTicketByUUID(uuid string) (*model.Ticket, error)
	ListTickets() ([]*model.Ticket, error)
	ListTicketsByOwner(userID string) ([]*model.Ticket, error)
	ListRecentTickets(limit int) ([]*model.Ticket, error)
	UpdateTicket(ticket *model.Ticket) error
	CountTickets() (int, error)
	CountTicketsByStatus(status string) (int, error)
	CountOpenCriticalTickets() (int, error)
}

// LicenseRepository defines the interface for vaulted license data access.
// Secret columns pass through as opaque encrypted strings; the repository
// never sees plaintext.
type LicenseRepository interface {
	CreateLicense(license *model.SoftwareLicense) error
	GetLicenseByUUID(uuid string) (*model.SoftwareLicense, error)
	ListLicenses() ([]*model.SoftwareLicense, error)
	ListLicensesRenewingBetween(from, to time.Time) ([]*model.SoftwareLicense, error)
	DeleteLicense(uuid string) error
}

// RepairLogRepository defines the interface for repair log data access
type RepairLogRepository interface {
	CreateRepairLog(repairLog *model.RepairLog) error
	GetRepairLogByUUID(uuid string) (*model.RepairLog, error)
	ListRepairLogs() ([]*model.RepairLog, error)
	UpdateRepairLogStatus(uuid, status string) error
}

// ConsumableRepository defines the interface for consumable stock data access
type ConsumableRepository interface {
	CreateConsumable(consumable *model.Consumable) error
	GetConsumableByUUID(uuid string) (*model.Consumable, error)
	ListConsumables() ([]*model.Consumable, error)
	UpdateConsumable(consumable *model.Consumable) error
}

// AuditLogRepository defines the interface for the append-only audit trail
type AuditLogRepository interface {
	CreateAuditLog(entry *model.AuditLog) error
	ListAuditLogs(limit, offset int) ([]*model.AuditLog, error)
	CountAuditLogs() (int, error)
}
