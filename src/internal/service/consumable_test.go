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

	"itam-api/src/internal/constants"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
)

type memConsumableRepo struct {
	consumables map[string]*model.Consumable
}

func newMemConsumableRepo() *memConsumableRepo {
	return &memConsumableRepo{consumables: make(map[string]*model.Consumable)}
}

func (r *memConsumableRepo) CreateConsumable(consumable *model.Consumable) error {
	r.consumables[consumable.UUID] = consumable
	return nil
}

func (r *memConsumableRepo) GetConsumableByUUID(uuid string) (*model.Consumable, error) {
	return r.consumables[uuid], nil
}

func (r *memConsumableRepo) ListConsumables() ([]*model.Consumable, error) {
	list := make([]*model.Consumable, 0)
	for _, consumable := range r.consumables {
		list = append(list, consumable)
	}
	return list, nil
}

func (r *memConsumableRepo) UpdateConsumable(consumable *model.Consumable) error {
	r.consumables[consumable.UUID] = consumable
	return nil
}

func TestConsumeStock(t *testing.T) {
	s := NewConsumableService(newMemConsumableRepo())

	created, err := s.CreateConsumable(&dto.CreateConsumableRequest{
		ItemName:       "Toner Cartridge",
		Category:       "Printer Supplies",
		TotalQuantity:  10,
		ThresholdLimit: 3,
	})
	if err != nil {
		t.Fatalf("CreateConsumable failed: %v", err)
	}
	if created.RemainingQuantity != 10 {
		t.Fatalf("remaining = %d, want 10", created.RemainingQuantity)
	}

	tests := []struct {
		name          string
		quantity      int
		wantErr       error
		wantRemaining int
		wantLowStock  bool
	}{
		{name: "normal draw", quantity: 4, wantRemaining: 6, wantLowStock: false},
		{name: "draw below threshold", quantity: 4, wantRemaining: 2, wantLowStock: true},
		{name: "overdraw rejected", quantity: 5, wantErr: constants.ErrInsufficientStock, wantRemaining: 2, wantLowStock: true},
		{name: "exact drain", quantity: 2, wantRemaining: 0, wantLowStock: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.Consume(created.UUID, tt.quantity)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Consume error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Consume failed: %v", err)
			}
			if got.RemainingQuantity != tt.wantRemaining {
				t.Errorf("remaining = %d, want %d", got.RemainingQuantity, tt.wantRemaining)
			}
			if got.LowStock != tt.wantLowStock {
				t.Errorf("low stock = %v, want %v", got.LowStock, tt.wantLowStock)
			}
		})
	}
}

func TestRestock(t *testing.T) {
	s := NewConsumableService(newMemConsumableRepo())

	created, err := s.CreateConsumable(&dto.CreateConsumableRequest{
		ItemName:       "AA Batteries",
		Category:       "Batteries",
		TotalQuantity:  2,
		ThresholdLimit: 5,
	})
	if err != nil {
		t.Fatalf("CreateConsumable failed: %v", err)
	}
	if !created.LowStock {
		t.Error("expected fresh stock below threshold to report low")
	}

	restocked, err := s.Restock(created.UUID, 10)
	if err != nil {
		t.Fatalf("Restock failed: %v", err)
	}
	if restocked.TotalQuantity != 12 || restocked.RemainingQuantity != 12 {
		t.Errorf("after restock total=%d remaining=%d, want 12/12",
			restocked.TotalQuantity, restocked.RemainingQuantity)
	}
	if restocked.LowStock {
		t.Error("restocked item still reports low stock")
	}
	if restocked.LastRestocked.Before(created.LastRestocked) {
		t.Error("restock moved the restock timestamp backwards")
	}
}

func TestConsumeMissingConsumable(t *testing.T) {
	s := NewConsumableService(newMemConsumableRepo())

	_, err := s.Consume("no-such-item", 1)
	if !errors.Is(err, constants.ErrConsumableNotFound) {
		t.Fatalf("Consume error = %v, want ErrConsumableNotFound", err)
	}
}
