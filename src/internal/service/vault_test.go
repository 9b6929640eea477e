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

package service

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"strconv"
	"testing"
	"time"

	"itam-api/src/internal/captcha"
	"itam-api/src/internal/constants"
	"itam-api/src/internal/crypto"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/websocket"
)

// memLicenseRepo is an in-memory LicenseRepository for service tests
type memLicenseRepo struct {
	licenses map[string]*model.SoftwareLicense
}

func newMemLicenseRepo() *memLicenseRepo {
	return &memLicenseRepo{licenses: make(map[string]*model.SoftwareLicense)}
}

func (r *memLicenseRepo) CreateLicense(license *model.SoftwareLicense) error {
	r.licenses[license.UUID] = license
	return nil
}

func (r *memLicenseRepo) GetLicenseByUUID(uuid string) (*model.SoftwareLicense, error) {
	return r.licenses[uuid], nil
}

func (r *memLicenseRepo) ListLicenses() ([]*model.SoftwareLicense, error) {
	list := make([]*model.SoftwareLicense, 0)
	for _, license := range r.licenses {
		list = append(list, license)
	}
	return list, nil
}

func (r *memLicenseRepo) ListLicensesRenewingBetween(from, to time.Time) ([]*model.SoftwareLicense, error) {
	list := make([]*model.SoftwareLicense, 0)
	for _, license := range r.licenses {
		if license.RenewalDate != nil && !license.RenewalDate.Before(from) && !license.RenewalDate.After(to) {
			list = append(list, license)
		}
	}
	return list, nil
}

func (r *memLicenseRepo) DeleteLicense(uuid string) error {
	delete(r.licenses, uuid)
	return nil
}

// memAuditRepo records audit entries in memory for assertions
type memAuditRepo struct {
	entries []*model.AuditLog
}

func (r *memAuditRepo) CreateAuditLog(entry *model.AuditLog) error {
	r.entries = append(r.entries, entry)
	return nil
}

func (r *memAuditRepo) ListAuditLogs(limit, offset int) ([]*model.AuditLog, error) {
	return r.entries, nil
}

func (r *memAuditRepo) CountAuditLogs() (int, error) {
	return len(r.entries), nil
}

func (r *memAuditRepo) lastAction() string {
	if len(r.entries) == 0 {
		return ""
	}
	return r.entries[len(r.entries)-1].Action
}

type vaultFixture struct {
	service   *VaultService
	cipher    *crypto.TokenCipher
	auditRepo *memAuditRepo
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		t.Fatalf("Failed to generate test key: %v", err)
	}
	cipher, err := crypto.NewTokenCipher(base64.StdEncoding.EncodeToString(key))
	if err != nil {
		t.Fatalf("Failed to create cipher: %v", err)
	}

	auditRepo := &memAuditRepo{}
	auditService := NewAuditService(auditRepo)
	captchaService := captcha.NewService(cipher, 280, 90, 5*time.Minute)

	return &vaultFixture{
		service:   NewVaultService(newMemLicenseRepo(), cipher, captchaService, auditService, websocket.NewManager()),
		cipher:    cipher,
		auditRepo: auditRepo,
	}
}

// sealAnswer builds a valid challenge token carrying the given answer,
// the same shape Issue produces
func (f *vaultFixture) sealAnswer(t *testing.T, answer string) string {
	t.Helper()
	expiry := strconv.FormatInt(time.Now().Add(5*time.Minute).Unix(), 10)
	token, err := f.cipher.Encrypt(answer + "|" + expiry)
	if err != nil {
		t.Fatalf("Failed to seal challenge token: %v", err)
	}
	return token
}

func (f *vaultFixture) createLicense(t *testing.T, productKey, loginPassword string) *dto.License {
	t.Helper()
	license, err := f.service.CreateLicense(&dto.CreateLicenseRequest{
		SoftwareName:  "Accounting Suite",
		LicenseType:   "Subscription",
		ProductKey:    productKey,
		LoginUsername: "accounts",
		LoginPassword: loginPassword,
	}, "admin-1", "10.0.0.5")
	if err != nil {
		t.Fatalf("CreateLicense failed: %v", err)
	}
	return license
}

func TestCreateLicenseRequiresProductKey(t *testing.T) {
	f := newVaultFixture(t)

	for _, key := range []string{"", "   "} {
		_, err := f.service.CreateLicense(&dto.CreateLicenseRequest{
			SoftwareName: "Accounting Suite",
			LicenseType:  "Subscription",
			ProductKey:   key,
		}, "admin-1", "10.0.0.5")
		if !errors.Is(err, constants.ErrMissingKey) {
			t.Errorf("CreateLicense(%q) error = %v, want ErrMissingKey", key, err)
		}
	}

	licenses, err := f.service.ListLicenses()
	if err != nil {
		t.Fatalf("ListLicenses failed: %v", err)
	}
	if licenses.Count != 0 {
		t.Errorf("stored licenses = %d, want 0", licenses.Count)
	}
}

func TestRevealRoundTrip(t *testing.T) {
	f := newVaultFixture(t)
	license := f.createLicense(t, "ABC-123-XYZ", "hunter2")

	token := f.sealAnswer(t, "42")
	revealed, err := f.service.Reveal(license.UUID, &dto.RevealRequest{
		CaptchaInput: "42",
		CaptchaToken: token,
	}, "admin-1", constants.RoleAdmin, "10.0.0.5")
	if err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}

	if revealed.ProductKey != "ABC-123-XYZ" {
		t.Errorf("product key = %q, want %q", revealed.ProductKey, "ABC-123-XYZ")
	}
	if revealed.Password != "hunter2" {
		t.Errorf("password = %q, want %q", revealed.Password, "hunter2")
	}
	if got := f.auditRepo.lastAction(); got != constants.AuditActionRevealLicense {
		t.Errorf("last audit action = %q, want %q", got, constants.AuditActionRevealLicense)
	}
}

func TestRevealPasswordSentinel(t *testing.T) {
	f := newVaultFixture(t)
	license := f.createLicense(t, "ABC-123-XYZ", "")

	revealed, err := f.service.Reveal(license.UUID, &dto.RevealRequest{
		CaptchaInput: "42",
		CaptchaToken: f.sealAnswer(t, "42"),
	}, "admin-1", constants.RoleAdmin, "10.0.0.5")
	if err != nil {
		t.Fatalf("Reveal failed: %v", err)
	}
	if revealed.Password != constants.RevealPasswordUnset {
		t.Errorf("password = %q, want the unset sentinel", revealed.Password)
	}
}

func TestRevealDeniedForUserRole(t *testing.T) {
	f := newVaultFixture(t)
	license := f.createLicense(t, "ABC-123-XYZ", "hunter2")

	// Even a correct challenge proof must not get a plain user through
	_, err := f.service.Reveal(license.UUID, &dto.RevealRequest{
		CaptchaInput: "42",
		CaptchaToken: f.sealAnswer(t, "42"),
	}, "user-1", constants.RoleUser, "10.0.0.9")

	if !errors.Is(err, constants.ErrUnauthorized) {
		t.Fatalf("Reveal error = %v, want ErrUnauthorized", err)
	}
	if got := f.auditRepo.lastAction(); got != constants.AuditActionRevealDenied {
		t.Errorf("last audit action = %q, want %q", got, constants.AuditActionRevealDenied)
	}
}

func TestRevealWrongAnswer(t *testing.T) {
	f := newVaultFixture(t)
	license := f.createLicense(t, "ABC-123-XYZ", "hunter2")

	_, err := f.service.Reveal(license.UUID, &dto.RevealRequest{
		CaptchaInput: "41",
		CaptchaToken: f.sealAnswer(t, "42"),
	}, "admin-1", constants.RoleAdmin, "10.0.0.5")

	if !errors.Is(err, constants.ErrCaptchaFailed) {
		t.Fatalf("Reveal error = %v, want ErrCaptchaFailed", err)
	}
	if got := f.auditRepo.lastAction(); got != constants.AuditActionRevealDenied {
		t.Errorf("last audit action = %q, want %q", got, constants.AuditActionRevealDenied)
	}
}

func TestRevealForeignToken(t *testing.T) {
	f := newVaultFixture(t)
	license := f.createLicense(t, "ABC-123-XYZ", "hunter2")

	// Token sealed under a different deployment's key
	other := newVaultFixture(t)
	foreignToken := other.sealAnswer(t, "42")

	_, err := f.service.Reveal(license.UUID, &dto.RevealRequest{
		CaptchaInput: "42",
		CaptchaToken: foreignToken,
	}, "admin-1", constants.RoleAdmin, "10.0.0.5")

	if !errors.Is(err, constants.ErrCaptchaFailed) {
		t.Fatalf("Reveal error = %v, want ErrCaptchaFailed", err)
	}
}

func TestRevealMissingLicense(t *testing.T) {
	f := newVaultFixture(t)

	_, err := f.service.Reveal("no-such-license", &dto.RevealRequest{
		CaptchaInput: "42",
		CaptchaToken: f.sealAnswer(t, "42"),
	}, "admin-1", constants.RoleAdmin, "10.0.0.5")

	if !errors.Is(err, constants.ErrLicenseNotFound) {
		t.Fatalf("Reveal error = %v, want ErrLicenseNotFound", err)
	}
}

func TestListLicensesOmitsSecrets(t *testing.T) {
	f := newVaultFixture(t)
	f.createLicense(t, "ABC-123-XYZ", "hunter2")

	resp, err := f.service.ListLicenses()
	if err != nil {
		t.Fatalf("ListLicenses failed: %v", err)
	}
	if resp.Count != 1 {
		t.Fatalf("license count = %d, want 1", resp.Count)
	}
	// The list DTO has no secret fields at all; spot-check the visible ones
	if resp.List[0].SoftwareName != "Accounting Suite" {
		t.Errorf("software name = %q, want %q", resp.List[0].SoftwareName, "Accounting Suite")
	}
}

func TestExpiringLicensesWindow(t *testing.T) {
	f := newVaultFixture(t)

	soon := time.Now().Add(10 * 24 * time.Hour).UTC()
	later := time.Now().Add(120 * 24 * time.Hour).UTC()

	for name, renewal := range map[string]time.Time{"soon": soon, "later": later} {
		date := renewal
		_, err := f.service.CreateLicense(&dto.CreateLicenseRequest{
			SoftwareName: name,
			LicenseType:  "Subscription",
			ProductKey:   "KEY-" + name,
			RenewalDate:  &date,
		}, "admin-1", "10.0.0.5")
		if err != nil {
			t.Fatalf("CreateLicense(%s) failed: %v", name, err)
		}
	}

	expiring, err := f.service.ExpiringLicenses(30)
	if err != nil {
		t.Fatalf("ExpiringLicenses failed: %v", err)
	}
	if len(expiring) != 1 {
		t.Fatalf("expiring count = %d, want 1", len(expiring))
	}
	if expiring[0].SoftwareName != "soon" {
		t.Errorf("expiring license = %q, want %q", expiring[0].SoftwareName, "soon")
	}
}

func TestSecretsAreEncryptedAtRest(t *testing.T) {
	f := newVaultFixture(t)

	repo := newMemLicenseRepo()
	f.service.licenseRepo = repo
	license := f.createLicense(t, "ABC-123-XYZ", "hunter2")

	stored := repo.licenses[license.UUID]
	if stored.ProductKeyEnc == "ABC-123-XYZ" {
		t.Error("product key stored in plaintext")
	}
	if stored.LoginPasswordEnc == "hunter2" {
		t.Error("login password stored in plaintext")
	}

	// Stored tokens must round-trip through the vault cipher
	if got, err := f.cipher.Decrypt(stored.ProductKeyEnc); err != nil || got != "ABC-123-XYZ" {
		t.Errorf("stored product key decrypts to (%q, %v), want (%q, nil)", got, err, "ABC-123-XYZ")
	}
}
