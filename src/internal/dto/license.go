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

// License represents a vaulted software license in list and get
// responses. Secret fields are intentionally absent: the only path that
// ever returns them is the reveal operation.
type License struct {
	UUID           string     `json:"uuid"`
	SoftwareName   string     `json:"software_name"`
	LicenseType    string     `json:"license_type"`
	PurchaseDate   *time.Time `json:"purchase_date,omitempty"`
	ActivationDate *time.Time `json:"activation_date,omitempty"`
	RenewalDate    *time.Time `json:"renewal_date,omitempty"`
	LoginUsername  string     `json:"login_username,omitempty"`
	VendorName     string     `json:"vendor_name,omitempty"`
	Cost           string     `json:"cost,omitempty"`
	UserStrength   int        `json:"user_strength,omitempty"`
	CreatedBy      string     `json:"created_by,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
}

// CreateLicenseRequest carries the fields for POST /api/v1/vault/licenses.
// ProductKey and LoginPassword arrive in plaintext over the authenticated
// channel and are encrypted before anything is persisted.
type CreateLicenseRequest struct {
	SoftwareName   string     `json:"software_name" binding:"required"`
	LicenseType    string     `json:"license_type" binding:"required"`
	ProductKey     string     `json:"product_key" binding:"required"`
	LoginUsername  string     `json:"login_username"`
	LoginPassword  string     `json:"login_password"`
	PurchaseDate   *time.Time `json:"purchase_date"`
	ActivationDate *time.Time `json:"activation_date"`
	RenewalDate    *time.Time `json:"renewal_date"`
	VendorName     string     `json:"vendor_name"`
	Cost           string     `json:"cost"`
	UserStrength   int        `json:"user_strength"`
}

// RevealRequest carries the challenge proof for POST /api/v1/vault/licenses/:licenseId/reveal.
// The token may ride in the body or in the X-Captcha-Token header.
type RevealRequest struct {
	CaptchaInput string `json:"captcha_input" binding:"required"`
	CaptchaToken string `json:"captcha_token"`
}

// RevealResponse is the one-shot decrypted view of a license's secrets.
// Password is the sentinel "N/A" when the license was stored without one.
type RevealResponse struct {
	ProductKey string `json:"product_key"`
	Password   string `json:"password"`
}

// LicenseListResponse is the list envelope for licenses
type LicenseListResponse struct {
	Count      int        `json:"count"`
	List       []*License `json:"list"`
	Pagination Pagination `json:"pagination"`
}
