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
	"os"
	"path/filepath"
	"testing"
	"time"

	"itam-api/src/internal/database"
	"itam-api/src/internal/model"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates a temporary SQLite database for testing
func setupTestDB(t *testing.T) *database.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")

	sqlDB, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		t.Fatalf("Failed to open SQLite database: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if _, err := sqlDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	schemaSQL, err := os.ReadFile(filepath.Join("..", "database", "schema.sqlite.sql"))
	if err != nil {
		t.Fatalf("Failed to read schema file: %v", err)
	}
	if _, err := sqlDB.Exec(string(schemaSQL)); err != nil {
		t.Fatalf("Failed to create test schema: %v", err)
	}

	return &database.DB{DB: sqlDB}
}

func TestLicenseRepoCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLicenseRepo(db)

	renewal := time.Now().Add(20 * 24 * time.Hour).UTC().Truncate(time.Second)
	license := &model.SoftwareLicense{
		UUID:             uuid.New().String(),
		SoftwareName:     "Design Suite",
		LicenseType:      "Subscription",
		RenewalDate:      &renewal,
		LoginUsername:    "design-admin",
		LoginPasswordEnc: "enc:password-token",
		ProductKeyEnc:    "enc:product-key-token",
		VendorName:       "Acme Software",
		Cost:             "1200",
		UserStrength:     25,
	}

	if err := repo.CreateLicense(license); err != nil {
		t.Fatalf("CreateLicense failed: %v", err)
	}

	got, err := repo.GetLicenseByUUID(license.UUID)
	if err != nil {
		t.Fatalf("GetLicenseByUUID failed: %v", err)
	}
	if got == nil {
		t.Fatal("GetLicenseByUUID returned nil for an existing record")
	}
	if got.SoftwareName != license.SoftwareName {
		t.Errorf("software name = %q, want %q", got.SoftwareName, license.SoftwareName)
	}
	if got.ProductKeyEnc != "enc:product-key-token" {
		t.Errorf("product key token = %q, want the stored opaque token", got.ProductKeyEnc)
	}
	if got.LoginPasswordEnc != "enc:password-token" {
		t.Errorf("password token = %q, want the stored opaque token", got.LoginPasswordEnc)
	}
	if got.RenewalDate == nil || !got.RenewalDate.Equal(renewal) {
		t.Errorf("renewal date = %v, want %v", got.RenewalDate, renewal)
	}
}

func TestLicenseRepoGetMissing(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLicenseRepo(db)

	got, err := repo.GetLicenseByUUID(uuid.New().String())
	if err != nil {
		t.Fatalf("GetLicenseByUUID failed: %v", err)
	}
	if got != nil {
		t.Error("GetLicenseByUUID returned a record for a missing id")
	}
}

func TestLicenseRepoRenewalWindow(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLicenseRepo(db)

	now := time.Now().UTC().Truncate(time.Second)
	dates := map[string]time.Time{
		"due-soon":    now.Add(10 * 24 * time.Hour),
		"due-later":   now.Add(90 * 24 * time.Hour),
		"already-due": now.Add(-5 * 24 * time.Hour),
	}
	for name, d := range dates {
		renewal := d
		err := repo.CreateLicense(&model.SoftwareLicense{
			UUID:          uuid.New().String(),
			SoftwareName:  name,
			LicenseType:   "Perpetual",
			RenewalDate:   &renewal,
			ProductKeyEnc: "enc:key",
		})
		if err != nil {
			t.Fatalf("CreateLicense(%s) failed: %v", name, err)
		}
	}

	got, err := repo.ListLicensesRenewingBetween(now, now.Add(30*24*time.Hour))
	if err != nil {
		t.Fatalf("ListLicensesRenewingBetween failed: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("window returned %d licenses, want 1", len(got))
	}
	if got[0].SoftwareName != "due-soon" {
		t.Errorf("window returned %q, want %q", got[0].SoftwareName, "due-soon")
	}
}

func TestLicenseRepoDelete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewLicenseRepo(db)

	license := &model.SoftwareLicense{
		UUID:          uuid.New().String(),
		SoftwareName:  "Short Lived",
		LicenseType:   "Trial",
		ProductKeyEnc: "enc:key",
	}
	if err := repo.CreateLicense(license); err != nil {
		t.Fatalf("CreateLicense failed: %v", err)
	}

	if err := repo.DeleteLicense(license.UUID); err != nil {
		t.Fatalf("DeleteLicense failed: %v", err)
	}

	got, err := repo.GetLicenseByUUID(license.UUID)
	if err != nil {
		t.Fatalf("GetLicenseByUUID failed: %v", err)
	}
	if got != nil {
		t.Error("license still present after delete")
	}
}
