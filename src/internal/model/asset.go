package model

import (
	"time"
)

// Asset represents a physical or virtual inventory item.
// TechnicalSpecs is stored as a JSON object in a text column; the keys are
// free-form spec names (RAM, Processor, ...) captured explicitly from the
// request, never reflected from arbitrary form fields.
type Asset struct {
	UUID           string     `json:"uuid" db:"uuid"`
	AssetID        string     `json:"asset_id" db:"asset_id"` // human-readable code, e.g. AST-2026-0001
	Category       string     `json:"category" db:"category"`
	AssetName      string     `json:"asset_name" db:"asset_name"`
	Brand          string     `json:"brand" db:"brand"`
	Model          string     `json:"model" db:"model"`
	SerialNumber   string     `json:"serial_number" db:"serial_number"`
	AssetTag       string     `json:"asset_tag" db:"asset_tag"`
	Location       string     `json:"location" db:"location"`
	Quantity       int        `json:"quantity" db:"quantity"`
	PurchaseDate   *time.Time `json:"purchase_date" db:"purchase_date"`
	InvoiceDate    *time.Time `json:"invoice_date" db:"invoice_date"`
	InvoiceNumber  string     `json:"invoice_number" db:"invoice_number"`
	VendorName     string     `json:"vendor_name" db:"vendor_name"`
	WarrantyExpiry *time.Time `json:"warranty_expiry" db:"warranty_expiry"`
	BaseAmount     float64    `json:"base_amount" db:"base_amount"`
	GSTAmount      float64    `json:"gst_amount" db:"gst_amount"`
	TotalAmount    float64    `json:"total_amount" db:"total_amount"`
	Ownership      string     `json:"ownership" db:"ownership"`
	Status         string     `json:"status" db:"status"`
	Department     string     `json:"department" db:"department"`
	Remarks        string     `json:"remarks" db:"remarks"`
	AssignedTo     *string    `json:"assigned_to" db:"assigned_to"` // FK to User.UUID
	TechnicalSpecs string     `json:"technical_specs" db:"technical_specs"`
	CreatedAt      time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at" db:"updated_at"`
}

// TableName returns the table name for the Asset model
func (Asset) TableName() string {
	return "assets"
}
