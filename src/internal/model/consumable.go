package model

import (
	"time"
)

// Consumable represents a stocked consumable item (toner, ink, batteries)
type Consumable struct {
	UUID              string    `json:"uuid" db:"uuid"`
	ItemName          string    `json:"item_name" db:"item_name"`
	Category          string    `json:"category" db:"category"`
	TotalQuantity     int       `json:"total_quantity" db:"total_quantity"`
	RemainingQuantity int       `json:"remaining_quantity" db:"remaining_quantity"`
	LastRestocked     time.Time `json:"last_restocked" db:"last_restocked"`
	ThresholdLimit    int       `json:"threshold_limit" db:"threshold_limit"`
}

// TableName returns the table name for the Consumable model
func (Consumable) TableName() string {
	return "consumables"
}

// LowStock reports whether remaining stock has fallen below the alert threshold
func (c *Consumable) LowStock() bool {
	return c.RemainingQuantity < c.ThresholdLimit
}
