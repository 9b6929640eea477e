package dto

import (
	"time"
)

// Consumable represents a stocked consumable item in API responses
type Consumable struct {
	UUID              string    `json:"uuid"`
	ItemName          string    `json:"item_name"`
	Category          string    `json:"category"`
	TotalQuantity     int       `json:"total_quantity"`
	RemainingQuantity int       `json:"remaining_quantity"`
	LastRestocked     time.Time `json:"last_restocked"`
	ThresholdLimit    int       `json:"threshold_limit"`
	LowStock          bool      `json:"low_stock"`
}

// CreateConsumableRequest carries the fields for POST /api/v1/consumables
type CreateConsumableRequest struct {
	ItemName       string `json:"item_name" binding:"required"`
	Category       string `json:"category" binding:"required"`
	TotalQuantity  int    `json:"total_quantity" binding:"required,min=1"`
	ThresholdLimit int    `json:"threshold_limit"`
}

// AdjustStockRequest carries the fields for POST /api/v1/consumables/:consumableId/restock
// and POST /api/v1/consumables/:consumableId/consume
type AdjustStockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ConsumableListResponse is the list envelope for consumables
type ConsumableListResponse struct {
	Count      int           `json:"count"`
	List       []*Consumable `json:"list"`
	Pagination Pagination    `json:"pagination"`
}
