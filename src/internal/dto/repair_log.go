package dto

import (
	"time"
)

// RepairLog represents an asset repair event in API responses
type RepairLog struct {
	UUID          string    `json:"uuid"`
	AssetID       string    `json:"asset_id"`
	IssueReported string    `json:"issue_reported"`
	VendorName    string    `json:"vendor_name,omitempty"`
	RepairCost    float64   `json:"repair_cost"`
	RepairDate    time.Time `json:"repair_date"`
	Status        string    `json:"status"`
	Remarks       string    `json:"remarks,omitempty"`
}

// CreateRepairLogRequest carries the fields for POST /api/v1/repairs
type CreateRepairLogRequest struct {
	AssetID       string  `json:"asset_id" binding:"required"`
	IssueReported string  `json:"issue_reported" binding:"required"`
	VendorName    string  `json:"vendor_name"`
	RepairCost    float64 `json:"repair_cost"`
	Remarks       string  `json:"remarks"`
}

// UpdateRepairStatusRequest carries the fields for PATCH /api/v1/repairs/:repairId/status
type UpdateRepairStatusRequest struct {
	Status string `json:"status" binding:"required,oneof='In Progress' Completed"`
}

// RepairLogListResponse is the list envelope for repair logs
type RepairLogListResponse struct {
	Count      int          `json:"count"`
	List       []*RepairLog `json:"list"`
	Pagination Pagination   `json:"pagination"`
}
