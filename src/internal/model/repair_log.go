package model

import (
	"time"
)

// RepairLog represents a repair event for an asset
type RepairLog struct {
	UUID          string    `json:"uuid" db:"uuid"`
	AssetID       string    `json:"asset_id" db:"asset_id"` // FK to Asset.UUID
	IssueReported string    `json:"issue_reported" db:"issue_reported"`
	VendorName    string    `json:"vendor_name" db:"vendor_name"`
	RepairCost    float64   `json:"repair_cost" db:"repair_cost"`
	RepairDate    time.Time `json:"repair_date" db:"repair_date"`
	Status        string    `json:"status" db:"status"`
	Remarks       string    `json:"remarks" db:"remarks"`
}

// TableName returns the table name for the RepairLog model
func (RepairLog) TableName() string {
	return "repair_logs"
}
