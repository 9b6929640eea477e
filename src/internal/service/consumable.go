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

type ConsumableService struct {
	consumableRepo repository.ConsumableRepository
}

func NewConsumableService(consumableRepo repository.ConsumableRepository) *ConsumableService {
	return &ConsumableService{consumableRepo: consumableRepo}
}

func (s *ConsumableService) CreateConsumable(req *dto.CreateConsumableRequest) (*dto.Consumable, error) {
	consumable := &model.Consumable{
		UUID:              uuid.New().String(),
		ItemName:          req.ItemName,
		Category:          req.Category,
		TotalQuantity:     req.TotalQuantity,
		RemainingQuantity: req.TotalQuantity,
		LastRestocked:     time.Now().UTC(),
		ThresholdLimit:    req.ThresholdLimit,
	}
	if err := s.consumableRepo.CreateConsumable(consumable); err != nil {
		return nil, err
	}
	return s.modelToDTO(consumable), nil
}

// Restock adds stock and stamps the restock time
func (s *ConsumableService) Restock(consumableID string, quantity int) (*dto.Consumable, error) {
	consumable, err := s.consumableRepo.GetConsumableByUUID(consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, constants.ErrConsumableNotFound
	}

	consumable.TotalQuantity += quantity
	consumable.RemainingQuantity += quantity
	consumable.LastRestocked = time.Now().UTC()

	if err := s.consumableRepo.UpdateConsumable(consumable); err != nil {
		return nil, err
	}
	return s.modelToDTO(consumable), nil
}

// Consume draws down stock. Stock never goes negative; drawing more than
// remains is rejected.
func (s *ConsumableService) Consume(consumableID string, quantity int) (*dto.Consumable, error) {
	consumable, err := s.consumableRepo.GetConsumableByUUID(consumableID)
	if err != nil {
		return nil, err
	}
	if consumable == nil {
		return nil, constants.ErrConsumableNotFound
	}

	if quantity > consumable.RemainingQuantity {
		return nil, constants.ErrInsufficientStock
	}
	consumable.RemainingQuantity -= quantity

	if err := s.consumableRepo.UpdateConsumable(consumable); err != nil {
		return nil, err
	}
	return s.modelToDTO(consumable), nil
}

func (s *ConsumableService) ListConsumables() (*dto.ConsumableListResponse, error) {
	consumables, err := s.consumableRepo.ListConsumables()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.Consumable, 0)
	for _, consumable := range consumables {
		list = append(list, s.modelToDTO(consumable))
	}

	return &dto.ConsumableListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

func (s *ConsumableService) modelToDTO(consumable *model.Consumable) *dto.Consumable {
	return &dto.Consumable{
		UUID:              consumable.UUID,
		ItemName:          consumable.ItemName,
		Category:          consumable.Category,
		TotalQuantity:     consumable.TotalQuantity,
		RemainingQuantity: consumable.RemainingQuantity,
		LastRestocked:     consumable.LastRestocked,
		ThresholdLimit:    consumable.ThresholdLimit,
		LowStock:          consumable.LowStock(),
	}
}
