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

package constants

// Role Constants
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

// ValidRoles Valid user roles
var ValidRoles = map[string]bool{
	RoleUser:       true,
	RoleAdmin:      true,
	RoleSuperAdmin: true,
}

// Ticket Status Constants
const (
	TicketStatusOpen       = "Open"
	TicketStatusInProgress = "In Progress"
	TicketStatusResolved   = "Resolved"
	TicketStatusClosed     = "Closed"
)

// ValidTicketStatuses Valid ticket statuses
var ValidTicketStatuses = map[string]bool{
	TicketStatusOpen:       true,
	TicketStatusInProgress: true,
	TicketStatusResolved:   true,
	TicketStatusClosed:     true,
}

// Ticket Priority Constants
const (
	TicketPriorityLow      = "Low"
	TicketPriorityMedium   = "Medium"
	TicketPriorityHigh     = "High"
	TicketPriorityCritical = "Critical"
)

// ValidTicketPriorities Valid ticket priorities
var ValidTicketPriorities = map[string]bool{
	TicketPriorityLow:      true,
	TicketPriorityMedium:   true,
	TicketPriorityHigh:     true,
	TicketPriorityCritical: true,
}

// Asset Status Constants
const (
	AssetStatusInStock     = "In Stock"
	AssetStatusAssigned    = "Assigned"
	AssetStatusUnderRepair = "Under Repair"
	AssetStatusRetired     = "Retired"
)

// ValidAssetStatuses Valid asset statuses
var ValidAssetStatuses = map[string]bool{
	AssetStatusInStock:     true,
	AssetStatusAssigned:    true,
	AssetStatusUnderRepair: true,
	AssetStatusRetired:     true,
}

// Repair Status Constants
const (
	RepairStatusInProgress = "In Progress"
	RepairStatusCompleted  = "Completed"
)

// Audit Action Constants
const (
	AuditActionLogin         = "LOGIN"
	AuditActionCreateTicket  = "CREATE_TICKET"
	AuditActionUpdateTicket  = "UPDATE_TICKET"
	AuditActionCreateLicense = "CREATE_LICENSE"
	AuditActionRevealLicense = "REVEAL_LICENSE"
	AuditActionRevealDenied  = "REVEAL_LICENSE_DENIED"
	AuditActionCreateUser    = "CREATE_USER"
	AuditActionDeleteUser    = "DELETE_USER"
	AuditActionCreateAsset   = "CREATE_ASSET"
)

// RevealPasswordUnset is returned in place of the login password when a
// license was stored without one.
const RevealPasswordUnset = "N/A"
