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

type RepairService struct {
	repairRepo repository.RepairLogRepository
	assetRepo  repository.AssetRepository
}

func NewRepairService(repairRepo repository.RepairLogRepository, assetRepo repository.AssetRepository) *RepairService {
	return &RepairService{
		repairRepo: repairRepo,
		assetRepo:  assetRepo,
	}
}

// CreateRepairLog opens a repair record and moves the asset under repair
func (s *RepairService) CreateRepairLog(req *dto.CreateRepairLogRequest) (*dto.RepairLog, error) {
	asset, err := s.assetRepo.GetAssetByUUID(req.AssetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, constants.ErrAssetNotFound
	}

	repairLog := &model.RepairLog{
		UUID:          uuid.New().String(),
		AssetID:       req.AssetID,
		IssueReported: req.IssueReported,
		VendorName:    req.VendorName,
		RepairCost:    req.RepairCost,
		RepairDate:    time.Now().UTC(),
		Status:        constants.RepairStatusInProgress,
		Remarks:       req.Remarks,
	}
	if err := s.repairRepo.CreateRepairLog(repairLog); err != nil {
		return nil, err
	}

	asset.Status = constants.AssetStatusUnderRepair
	asset.UpdatedAt = time.Now().UTC()
	if err := s.assetRepo.UpdateAsset(asset); err != nil {
		return nil, err
	}

	return s.modelToDTO(repairLog), nil
}

// UpdateRepairStatus closes out or reopens a repair. Completing a repair
// returns the asset to stock.
func (s *RepairService) UpdateRepairStatus(repairID string, req *dto.UpdateRepairStatusRequest) (*dto.RepairLog, error) {
	repairLog, err := s.repairRepo.GetRepairLogByUUID(repairID)
	if err != nil {
		return nil, err
	}
	if repairLog == nil {
		return nil, constants.ErrRepairLogNotFound
	}

	if err := s.repairRepo.UpdateRepairLogStatus(repairID, req.Status); err != nil {
		return nil, err
	}
	repairLog.Status = req.Status

	if req.Status == constants.RepairStatusCompleted {
		asset, err := s.assetRepo.GetAssetByUUID(repairLog.AssetID)
		if err != nil {
			return nil, err
		}
		if asset != nil {
			asset.Status = constants.AssetStatusInStock
			asset.UpdatedAt = time.Now().UTC()
			if err := s.assetRepo.UpdateAsset(asset); err != nil {
				return nil, err
			}
		}
	}

	return s.modelToDTO(repairLog), nil
}

func (s *RepairService) ListRepairLogs() (*dto.RepairLogListResponse, error) {
	repairLogs, err := s.repairRepo.ListRepairLogs()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.RepairLog, 0)
	for _, repairLog := range repairLogs {
		list = append(list, s.modelToDTO(repairLog))
	}

	return &dto.RepairLogListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

func (s *RepairService) modelToDTO(repairLog *model.RepairLog) *dto.RepairLog {
	return &dto.RepairLog{
		UUID:          repairLog.UUID,
		AssetID:       repairLog.AssetID,
		IssueReported: repairLog.IssueReported,
		VendorName:    repairLog.VendorName,
		RepairCost:    repairLog.RepairCost,
		RepairDate:    repairLog.RepairDate,
		Status:        repairLog.Status,
		Remarks:       repairLog.Remarks,
	}
}
