package model

import (
	"time"
)

// SoftwareLicense represents a vaulted license record. ProductKeyEnc and
// LoginPasswordEnc are authenticated-encryption tokens produced by the
// cipher service; the plaintext values exist only transiently inside the
// create and reveal calls and are never persisted or logged.
type SoftwareLicense struct {
	UUID             string     `json:"uuid" db:"uuid"`
	SoftwareName     string     `json:"software_name" db:"software_name"`
	LicenseType      string     `json:"license_type" db:"license_type"`
	PurchaseDate     *time.Time `json:"purchase_date" db:"purchase_date"`
	ActivationDate   *time.Time `json:"activation_date" db:"activation_date"`
	RenewalDate      *time.Time `json:"renewal_date" db:"renewal_date"`
	LoginUsername    string     `json:"login_username" db:"login_username"`
	LoginPasswordEnc string     `json:"-" db:"login_password_enc"`
	ProductKeyEnc    string     `json:"-" db:"product_key_enc"`
	VendorName       string     `json:"vendor_name" db:"vendor_name"`
	Cost             string     `json:"cost" db:"cost"`
	UserStrength     int        `json:"user_strength" db:"user_strength"`
	CreatedBy        string     `json:"created_by" db:"created_by"` // FK to User.UUID
	CreatedAt        time.Time  `json:"created_at" db:"created_at"`
}

// TableName returns the table name for the SoftwareLicense model
func (SoftwareLicense) TableName() string {
	return "software_licenses"
}
