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

package repository

import (
	"database/sql"
	"errors"
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"
)

// AssetRepo implements AssetRepository
type AssetRepo struct {
	db *database.DB
}

// NewAssetRepo creates a new asset repository
func NewAssetRepo(db *database.DB) AssetRepository {
	return &AssetRepo{db: db}
}

const assetColumns = `uuid, asset_id, category, asset_name, brand, model, serial_number, asset_tag,
	location, quantity, purchase_date, invoice_date, invoice_number, vendor_name, warranty_expiry,
	base_amount, gst_amount, total_amount, ownership, status, department, remarks, assigned_to,
	technical_specs, created_at, updated_at`

// CreateAsset inserts a new asset
func (r *AssetRepo) CreateAsset(asset *model.Asset) error {
	asset.CreatedAt = time.Now()
	asset.UpdatedAt = time.Now()

	query := `
		INSERT INTO assets (` + assetColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		asset.UUID, asset.AssetID, asset.Category, asset.AssetName, asset.Brand, asset.Model,
		asset.SerialNumber, asset.AssetTag, asset.Location, asset.Quantity, asset.PurchaseDate,
		asset.InvoiceDate, asset.InvoiceNumber, asset.VendorName, asset.WarrantyExpiry,
		asset.BaseAmount, asset.GSTAmount, asset.TotalAmount, asset.Ownership, asset.Status,
		asset.Department, asset.Remarks, asset.AssignedTo, asset.TechnicalSpecs,
		asset.CreatedAt, asset.UpdatedAt)
	return err
}

func scanAsset(scan func(dest ...any) error) (*model.Asset, error) {
	asset := &model.Asset{}
	err := scan(
		&asset.UUID, &asset.AssetID, &asset.Category, &asset.AssetName, &asset.Brand, &asset.Model,
		&asset.SerialNumber, &asset.AssetTag, &asset.Location, &asset.Quantity, &asset.PurchaseDate,
		&asset.InvoiceDate, &asset.InvoiceNumber, &asset.VendorName, &asset.WarrantyExpiry,
		&asset.BaseAmount, &asset.GSTAmount, &asset.TotalAmount, &asset.Ownership, &asset.Status,
		&asset.Department, &asset.Remarks, &asset.AssignedTo, &asset.TechnicalSpecs,
		&asset.CreatedAt, &asset.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return asset, nil
}

// GetAssetByUUID retrieves an asset by ID
func (r *AssetRepo) GetAssetByUUID(uuid string) (*model.Asset, error) {
	query := `SELECT ` + assetColumns + ` FROM assets WHERE uuid = ?`
	asset, err := scanAsset(r.db.QueryRow(r.db.Rebind(query), uuid).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return asset, nil
}

func (r *AssetRepo) listAssets(query string, args ...any) ([]*model.Asset, error) {
	rows, err := r.db.Query(r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []*model.Asset
	for rows.Next() {
		asset, err := scanAsset(rows.Scan)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}

	return assets, rows.Err()
}

// ListAssets retrieves all assets, newest first
func (r *AssetRepo) ListAssets() ([]*model.Asset, error) {
	return r.listAssets(`SELECT ` + assetColumns + ` FROM assets ORDER BY created_at DESC`)
}

// ListAssetsByAssignee retrieves the assets assigned to a user
func (r *AssetRepo) ListAssetsByAssignee(userID string) ([]*model.Asset, error) {
	return r.listAssets(`SELECT `+assetColumns+` FROM assets WHERE assigned_to = ? ORDER BY created_at DESC`, userID)
}

// UpdateAsset modifies an existing asset
func (r *AssetRepo) UpdateAsset(asset *model.Asset) error {
	asset.UpdatedAt = time.Now()

	query := `
		UPDATE assets
		SET category = ?, asset_name = ?, brand = ?, model = ?, serial_number = ?, asset_tag = ?,
			location = ?, quantity = ?, purchase_date = ?, invoice_date = ?, invoice_number = ?,
			vendor_name = ?, warranty_expiry = ?, base_amount = ?, gst_amount = ?, total_amount = ?,
			ownership = ?, status = ?, department = ?, remarks = ?, assigned_to = ?,
			technical_specs = ?, updated_at = ?
		WHERE uuid = ?
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		asset.Category, asset.AssetName, asset.Brand, asset.Model, asset.SerialNumber, asset.AssetTag,
		asset.Location, asset.Quantity, asset.PurchaseDate, asset.InvoiceDate, asset.InvoiceNumber,
		asset.VendorName, asset.WarrantyExpiry, asset.BaseAmount, asset.GSTAmount, asset.TotalAmount,
		asset.Ownership, asset.Status, asset.Department, asset.Remarks, asset.AssignedTo,
		asset.TechnicalSpecs, asset.UpdatedAt, asset.UUID)
	return err
}

// CountAssets counts all assets
func (r *AssetRepo) CountAssets() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM assets`).Scan(&count)
	return count, err
}
