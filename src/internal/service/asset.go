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
	"encoding/json"
	"fmt"
	"time"

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"

	"github.com/google/uuid"
)

type AssetService struct {
	assetRepo    repository.AssetRepository
	userRepo     repository.UserRepository
	auditService *AuditService
}

func NewAssetService(assetRepo repository.AssetRepository, userRepo repository.UserRepository,
	auditService *AuditService) *AssetService {
	return &AssetService{
		assetRepo:    assetRepo,
		userRepo:     userRepo,
		auditService: auditService,
	}
}

func (s *AssetService) CreateAsset(req *dto.CreateAssetRequest, actorID, ipAddress string) (*dto.Asset, error) {
	var assignedTo *string
	if req.AssignedTo != "" {
		user, err := s.userRepo.GetUserByUUID(req.AssignedTo)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, constants.ErrUserNotFound
		}
		assignedTo = &req.AssignedTo
	}

	assetID, err := s.nextAssetID()
	if err != nil {
		return nil, err
	}

	specs, err := marshalSpecs(req.TechnicalSpecs)
	if err != nil {
		return nil, err
	}

	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}
	status := req.Status
	if status == "" {
		status = constants.AssetStatusInStock
	}
	if !constants.ValidAssetStatuses[status] {
		return nil, fmt.Errorf("invalid asset status: %s", status)
	}
	if assignedTo != nil {
		status = constants.AssetStatusAssigned
	}

	now := time.Now().UTC()
	asset := &model.Asset{
		UUID:           uuid.New().String(),
		AssetID:        assetID,
		Category:       req.Category,
		AssetName:      req.AssetName,
		Brand:          req.Brand,
		Model:          req.Model,
		SerialNumber:   req.SerialNumber,
		AssetTag:       req.AssetTag,
		Location:       req.Location,
		Quantity:       quantity,
		PurchaseDate:   req.PurchaseDate,
		InvoiceDate:    req.InvoiceDate,
		InvoiceNumber:  req.InvoiceNumber,
		VendorName:     req.VendorName,
		WarrantyExpiry: req.WarrantyExpiry,
		BaseAmount:     req.BaseAmount,
		GSTAmount:      req.GSTAmount,
		TotalAmount:    req.BaseAmount + req.GSTAmount,
		Ownership:      req.Ownership,
		Status:         status,
		Department:     req.Department,
		Remarks:        req.Remarks,
		AssignedTo:     assignedTo,
		TechnicalSpecs: specs,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.assetRepo.CreateAsset(asset); err != nil {
		return nil, err
	}

	s.auditService.Record(actorID, constants.AuditActionCreateAsset, "asset:"+asset.UUID, ipAddress)

	return s.modelToDTO(asset)
}

func (s *AssetService) GetAssetByID(assetID string) (*dto.Asset, error) {
	asset, err := s.assetRepo.GetAssetByUUID(assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, constants.ErrAssetNotFound
	}
	return s.modelToDTO(asset)
}

func (s *AssetService) ListAssets() (*dto.AssetListResponse, error) {
	assets, err := s.assetRepo.ListAssets()
	if err != nil {
		return nil, err
	}
	return s.toListResponse(assets)
}

// ListAssetsByAssignee returns the assets assigned to a single user
func (s *AssetService) ListAssetsByAssignee(userID string) (*dto.AssetListResponse, error) {
	assets, err := s.assetRepo.ListAssetsByAssignee(userID)
	if err != nil {
		return nil, err
	}
	return s.toListResponse(assets)
}

// UpdateAssetStatus moves an asset through its lifecycle. Assigning requires
// a valid user; any other status clears the assignment.
func (s *AssetService) UpdateAssetStatus(assetID string, req *dto.UpdateAssetStatusRequest) (*dto.Asset, error) {
	asset, err := s.assetRepo.GetAssetByUUID(assetID)
	if err != nil {
		return nil, err
	}
	if asset == nil {
		return nil, constants.ErrAssetNotFound
	}

	if req.Status == constants.AssetStatusAssigned {
		if req.AssignedTo == "" {
			return nil, constants.ErrUserNotFound
		}
		user, err := s.userRepo.GetUserByUUID(req.AssignedTo)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, constants.ErrUserNotFound
		}
		asset.AssignedTo = &req.AssignedTo
	} else {
		asset.AssignedTo = nil
	}

	asset.Status = req.Status
	if req.Remarks != "" {
		asset.Remarks = req.Remarks
	}
	asset.UpdatedAt = time.Now().UTC()

	if err := s.assetRepo.UpdateAsset(asset); err != nil {
		return nil, err
	}
	return s.modelToDTO(asset)
}

// nextAssetID produces the next human-readable asset code, e.g. AST-2026-0001.
// The sequence restarts visually each year but stays unique because it is
// derived from the running total.
func (s *AssetService) nextAssetID() (string, error) {
	count, err := s.assetRepo.CountAssets()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("AST-%d-%04d", time.Now().Year(), count+1), nil
}

func (s *AssetService) toListResponse(assets []*model.Asset) (*dto.AssetListResponse, error) {
	list := make([]*dto.Asset, 0)
	for _, asset := range assets {
		item, err := s.modelToDTO(asset)
		if err != nil {
			return nil, err
		}
		list = append(list, item)
	}
	return &dto.AssetListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

func (s *AssetService) modelToDTO(asset *model.Asset) (*dto.Asset, error) {
	specs, err := unmarshalSpecs(asset.TechnicalSpecs)
	if err != nil {
		return nil, err
	}
	return &dto.Asset{
		UUID:           asset.UUID,
		AssetID:        asset.AssetID,
		Category:       asset.Category,
		AssetName:      asset.AssetName,
		Brand:          asset.Brand,
		Model:          asset.Model,
		SerialNumber:   asset.SerialNumber,
		AssetTag:       asset.AssetTag,
		Location:       asset.Location,
		Quantity:       asset.Quantity,
		PurchaseDate:   asset.PurchaseDate,
		InvoiceDate:    asset.InvoiceDate,
		InvoiceNumber:  asset.InvoiceNumber,
		VendorName:     asset.VendorName,
		WarrantyExpiry: asset.WarrantyExpiry,
		BaseAmount:     asset.BaseAmount,
		GSTAmount:      asset.GSTAmount,
		TotalAmount:    asset.TotalAmount,
		Ownership:      asset.Ownership,
		Status:         asset.Status,
		Department:     asset.Department,
		Remarks:        asset.Remarks,
		AssignedTo:     asset.AssignedTo,
		TechnicalSpecs: specs,
		CreatedAt:      asset.CreatedAt,
		UpdatedAt:      asset.UpdatedAt,
	}, nil
}

// marshalSpecs serializes the technical spec map for the JSON text column.
// A nil map is stored as an empty object so reads never deal with NULL.
func marshalSpecs(specs map[string]string) (string, error) {
	if specs == nil {
		specs = map[string]string{}
	}
	raw, err := json.Marshal(specs)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

func unmarshalSpecs(raw string) (map[string]string, error) {
	specs := make(map[string]string)
	if raw == "" {
		return specs, nil
	}
	if err := json.Unmarshal([]byte(raw), &specs); err != nil {
		return nil, err
	}
	return specs, nil
}
