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
	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
)

// expiringLicenseWindowDays is the renewal alert horizon on the admin
// dashboard
const expiringLicenseWindowDays = 30

// recentTicketLimit caps the recent-activity list on the admin dashboard
const recentTicketLimit = 10

type DashboardService struct {
	ticketService *TicketService
	assetService  *AssetService
	vaultService  *VaultService
}

func NewDashboardService(ticketService *TicketService, assetService *AssetService,
	vaultService *VaultService) *DashboardService {
	return &DashboardService{
		ticketService: ticketService,
		assetService:  assetService,
		vaultService:  vaultService,
	}
}

// AdminDashboard aggregates the KPIs for the admin landing page
func (s *DashboardService) AdminDashboard() (*dto.AdminDashboard, error) {
	totalTickets, err := s.ticketService.ticketRepo.CountTickets()
	if err != nil {
		return nil, err
	}
	openTickets, err := s.ticketService.ticketRepo.CountTicketsByStatus(constants.TicketStatusOpen)
	if err != nil {
		return nil, err
	}
	criticalTickets, err := s.ticketService.ticketRepo.CountOpenCriticalTickets()
	if err != nil {
		return nil, err
	}
	assetCount, err := s.assetService.assetRepo.CountAssets()
	if err != nil {
		return nil, err
	}

	recentModels, err := s.ticketService.ticketRepo.ListRecentTickets(recentTicketLimit)
	if err != nil {
		return nil, err
	}
	recentTickets := make([]*dto.Ticket, 0)
	for _, ticket := range recentModels {
		recentTickets = append(recentTickets, s.ticketService.modelToDTO(ticket))
	}

	expiringLicenses, err := s.vaultService.ExpiringLicenses(expiringLicenseWindowDays)
	if err != nil {
		return nil, err
	}

	return &dto.AdminDashboard{
		TotalTickets:     totalTickets,
		OpenTickets:      openTickets,
		CriticalTickets:  criticalTickets,
		AssetCount:       assetCount,
		RecentTickets:    recentTickets,
		ExpiringLicenses: expiringLicenses,
	}, nil
}

// UserDashboard aggregates the signed-in user's own assets and tickets
func (s *DashboardService) UserDashboard(userID string) (*dto.UserDashboard, error) {
	assets, err := s.assetService.ListAssetsByAssignee(userID)
	if err != nil {
		return nil, err
	}
	tickets, err := s.ticketService.ListTicketsByOwner(userID)
	if err != nil {
		return nil, err
	}

	return &dto.UserDashboard{
		Assets:  assets.List,
		Tickets: tickets.List,
	}, nil
}
