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

// LicenseRepo implements LicenseRepository. The *_enc columns carry
// cipher tokens straight through; plaintext never reaches this layer.
type LicenseRepo struct {
	db *database.DB
}

// NewLicenseRepo creates a new license repository
func NewLicenseRepo(db *database.DB) LicenseRepository {
	return &LicenseRepo{db: db}
}

const licenseColumns = `uuid, software_name, license_type, purchase_date, activation_date,
	renewal_date, login_username, login_password_enc, product_key_enc, vendor_name, cost,
	user_strength, created_by, created_at`

// CreateLicense inserts a new license record
func (r *LicenseRepo) CreateLicense(license *model.SoftwareLicense) error {
	license.CreatedAt = time.Now()

	query := `
		INSERT INTO software_licenses (` + licenseColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(r.db.Rebind(query),
		license.UUID, license.SoftwareName, license.LicenseType, license.PurchaseDate,
		license.ActivationDate, license.RenewalDate, license.LoginUsername,
		license.LoginPasswordEnc, license.ProductKeyEnc, license.VendorName, license.Cost,
		license.UserStrength, license.CreatedBy, license.CreatedAt)
	return err
}

func scanLicense(scan func(dest ...any) error) (*model.SoftwareLicense, error) {
	license := &model.SoftwareLicense{}
	err := scan(
		&license.UUID, &license.SoftwareName, &license.LicenseType, &license.PurchaseDate,
		&license.ActivationDate, &license.RenewalDate, &license.LoginUsername,
		&license.LoginPasswordEnc, &license.ProductKeyEnc, &license.VendorName, &license.Cost,
		&license.UserStrength, &license.CreatedBy, &license.CreatedAt)
	if err != nil {
		return nil, err
	}
	return license, nil
}

// GetLicenseByUUID retrieves a license by ID
func (r *LicenseRepo) GetLicenseByUUID(uuid string) (*model.SoftwareLicense, error) {
	query := `SELECT ` + licenseColumns + ` FROM software_licenses WHERE uuid = ?`
	license, err := scanLicense(r.db.QueryRow(r.db.Rebind(query), uuid).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return license, nil
}

func (r *LicenseRepo) listLicenses(query string, args ...any) ([]*model.SoftwareLicense, error) {
	rows, err := r.db.Query(r.db.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var licenses []*model.SoftwareLicense
	for rows.Next() {
		license, err := scanLicense(rows.Scan)
		if err != nil {
			return nil, err
		}
		licenses = append(licenses, license)
	}

	return licenses, rows.Err()
}

// ListLicenses retrieves all licenses, newest first
func (r *LicenseRepo) ListLicenses() ([]*model.SoftwareLicense, error) {
	return r.listLicenses(`SELECT ` + licenseColumns + ` FROM software_licenses ORDER BY created_at DESC`)
}

// ListLicensesRenewingBetween retrieves licenses whose renewal date falls
// inside the given window, soonest first
func (r *LicenseRepo) ListLicensesRenewingBetween(from, to time.Time) ([]*model.SoftwareLicense, error) {
	query := `
		SELECT ` + licenseColumns + `
		FROM software_licenses
		WHERE renewal_date >= ? AND renewal_date <= ?
		ORDER BY renewal_date
	`
	return r.listLicenses(query, from, to)
}

// DeleteLicense removes a license record
func (r *LicenseRepo) DeleteLicense(uuid string) error {
	query := `DELETE FROM software_licenses WHERE uuid = ?`
	_, err := r.db.Exec(r.db.Rebind(query), uuid)
	return err
}
