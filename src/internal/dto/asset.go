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

package dto

import (
	"time"
)

// Asset represents an inventory item in API responses
type Asset struct {
	UUID           string            `json:"uuid"`
	AssetID        string            `json:"asset_id"`
	Category       string            `json:"category"`
	AssetName      string            `json:"asset_name"`
	Brand          string            `json:"brand,omitempty"`
	Model          string            `json:"model,omitempty"`
	SerialNumber   string            `json:"serial_number,omitempty"`
	AssetTag       string            `json:"asset_tag,omitempty"`
	Location       string            `json:"location,omitempty"`
	Quantity       int               `json:"quantity"`
	PurchaseDate   *time.Time        `json:"purchase_date,omitempty"`
	InvoiceDate    *time.Time        `json:"invoice_date,omitempty"`
	InvoiceNumber  string            `json:"invoice_number,omitempty"`
	VendorName     string            `json:"vendor_name,omitempty"`
	WarrantyExpiry *time.Time        `json:"warranty_expiry,omitempty"`
	BaseAmount     float64           `json:"base_amount"`
	GSTAmount      float64           `json:"gst_amount"`
	TotalAmount    float64           `json:"total_amount"`
	Ownership      string            `json:"ownership"`
	Status         string            `json:"status"`
	Department     string            `json:"department,omitempty"`
	Remarks        string            `json:"remarks,omitempty"`
	AssignedTo     *string           `json:"assigned_to,omitempty"`
	TechnicalSpecs map[string]string `json:"technical_specs"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateAssetRequest carries the fields for POST /api/v1/assets.
// TechnicalSpecs is an explicit string-to-string mapping; anything the
// caller wants captured beyond the standard columns goes in here.
type CreateAssetRequest struct {
	Category       string            `json:"category" binding:"required"`
	AssetName      string            `json:"asset_name" binding:"required"`
	Brand          string            `json:"brand"`
	Model          string            `json:"model"`
	SerialNumber   string            `json:"serial_number"`
	AssetTag       string            `json:"asset_tag"`
	Location       string            `json:"location"`
	Quantity       int               `json:"quantity"`
	PurchaseDate   *time.Time        `json:"purchase_date"`
	InvoiceDate    *time.Time        `json:"invoice_date"`
	InvoiceNumber  string            `json:"invoice_number"`
	VendorName     string            `json:"vendor_name"`
	WarrantyExpiry *time.Time        `json:"warranty_expiry"`
	BaseAmount     float64           `json:"base_amount"`
	GSTAmount      float64           `json:"gst_amount"`
	Ownership      string            `json:"ownership"`
	Status         string            `json:"status"`
	Department     string            `json:"department"`
	Remarks        string            `json:"remarks"`
	AssignedTo     string            `json:"assigned_to"`
	TechnicalSpecs map[string]string `json:"technical_specs"`
}

// UpdateAssetStatusRequest carries the fields for PATCH /api/v1/assets/:assetId/status
type UpdateAssetStatusRequest struct {
	Status     string `json:"status" binding:"required,oneof='In Stock' Assigned 'Under Repair' Retired"`
	AssignedTo string `json:"assigned_to"`
	Remarks    string `json:"remarks"`
}

// AssetListResponse is the list envelope for assets
type AssetListResponse struct {
	Count      int        `json:"count"`
	List       []*Asset   `json:"list"`
	Pagination Pagination `json:"pagination"`
}
