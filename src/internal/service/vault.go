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
	"fmt"
	"strings"
	"time"

	"itam-api/src/internal/captcha"
	"itam-api/src/internal/constants"
	"itam-api/src/internal/crypto"
	"itam-api/src/internal/dto"
	"itam-api/src/internal/model"
	"itam-api/src/internal/repository"
	"itam-api/src/internal/websocket"

	"github.com/google/uuid"
)

// rolesAllowedToReveal is the set of roles permitted to decrypt vaulted
// secrets. Membership is checked before any cryptographic work happens.
var rolesAllowedToReveal = map[string]bool{
	constants.RoleAdmin:      true,
	constants.RoleSuperAdmin: true,
}

// VaultService owns the encrypted license store. Secrets are encrypted on
// the way in and decrypted only inside Reveal, after every gate has passed.
type VaultService struct {
	licenseRepo    repository.LicenseRepository
	cipher         *crypto.TokenCipher
	captchaService *captcha.Service
	auditService   *AuditService
	events         *websocket.Manager
}

func NewVaultService(licenseRepo repository.LicenseRepository, cipher *crypto.TokenCipher,
	captchaService *captcha.Service, auditService *AuditService, events *websocket.Manager) *VaultService {
	return &VaultService{
		licenseRepo:    licenseRepo,
		cipher:         cipher,
		captchaService: captchaService,
		auditService:   auditService,
		events:         events,
	}
}

// CreateLicense encrypts the product key and login password and persists the
// record. Plaintext secrets exist only inside this call.
func (s *VaultService) CreateLicense(req *dto.CreateLicenseRequest, actorID, ipAddress string) (*dto.License, error) {
	if strings.TrimSpace(req.ProductKey) == "" {
		return nil, constants.ErrMissingKey
	}

	productKeyEnc, err := s.cipher.Encrypt(req.ProductKey)
	if err != nil {
		return nil, err
	}

	var loginPasswordEnc string
	if req.LoginPassword != "" {
		loginPasswordEnc, err = s.cipher.Encrypt(req.LoginPassword)
		if err != nil {
			return nil, err
		}
	}

	license := &model.SoftwareLicense{
		UUID:             uuid.New().String(),
		SoftwareName:     req.SoftwareName,
		LicenseType:      req.LicenseType,
		PurchaseDate:     req.PurchaseDate,
		ActivationDate:   req.ActivationDate,
		RenewalDate:      req.RenewalDate,
		LoginUsername:    req.LoginUsername,
		LoginPasswordEnc: loginPasswordEnc,
		ProductKeyEnc:    productKeyEnc,
		VendorName:       req.VendorName,
		Cost:             req.Cost,
		UserStrength:     req.UserStrength,
		CreatedBy:        actorID,
		CreatedAt:        time.Now().UTC(),
	}
	if err := s.licenseRepo.CreateLicense(license); err != nil {
		return nil, err
	}

	s.auditService.Record(actorID, constants.AuditActionCreateLicense, "license:"+license.UUID, ipAddress)

	return s.modelToDTO(license), nil
}

func (s *VaultService) ListLicenses() (*dto.LicenseListResponse, error) {
	licenses, err := s.licenseRepo.ListLicenses()
	if err != nil {
		return nil, err
	}

	list := make([]*dto.License, 0)
	for _, license := range licenses {
		list = append(list, s.modelToDTO(license))
	}

	return &dto.LicenseListResponse{
		Count: len(list),
		List:  list,
		Pagination: dto.Pagination{
			Total:  len(list),
			Offset: 0,
			Limit:  len(list),
		},
	}, nil
}

// Reveal decrypts a license's secrets for a caller who has passed every
// gate. The checks run in a fixed order and the flow fails closed: role
// first, then challenge proof, then record existence, then decryption.
// Nothing is decrypted before the caller is fully authorized, and every
// denial is audited.
func (s *VaultService) Reveal(licenseID string, req *dto.RevealRequest, actorID, actorRole, ipAddress string) (*dto.RevealResponse, error) {
	if !rolesAllowedToReveal[actorRole] {
		s.recordDenial(actorID, licenseID, ipAddress)
		return nil, constants.ErrUnauthorized
	}

	if !s.captchaService.Verify(req.CaptchaInput, req.CaptchaToken) {
		s.recordDenial(actorID, licenseID, ipAddress)
		return nil, constants.ErrCaptchaFailed
	}

	license, err := s.licenseRepo.GetLicenseByUUID(licenseID)
	if err != nil {
		return nil, err
	}
	if license == nil {
		return nil, constants.ErrLicenseNotFound
	}

	productKey, err := s.cipher.Decrypt(license.ProductKeyEnc)
	if err != nil {
		return nil, constants.ErrDecryptFailed
	}

	password := constants.RevealPasswordUnset
	if license.LoginPasswordEnc != "" {
		password, err = s.cipher.Decrypt(license.LoginPasswordEnc)
		if err != nil {
			return nil, constants.ErrDecryptFailed
		}
	}

	s.auditService.Record(actorID, constants.AuditActionRevealLicense, "license:"+license.UUID, ipAddress)
	s.events.Broadcast(websocket.Event{
		Type:       websocket.EventVaultRevealed,
		EntityUUID: license.UUID,
		Summary:    fmt.Sprintf("License %s revealed", license.SoftwareName),
	})

	return &dto.RevealResponse{
		ProductKey: productKey,
		Password:   password,
	}, nil
}

func (s *VaultService) DeleteLicense(licenseID string) error {
	license, err := s.licenseRepo.GetLicenseByUUID(licenseID)
	if err != nil {
		return err
	}
	if license == nil {
		return constants.ErrLicenseNotFound
	}
	return s.licenseRepo.DeleteLicense(licenseID)
}

// ExpiringLicenses returns licenses whose renewal falls within the next
// windowDays days
func (s *VaultService) ExpiringLicenses(windowDays int) ([]*dto.License, error) {
	now := time.Now().UTC()
	licenses, err := s.licenseRepo.ListLicensesRenewingBetween(now, now.Add(time.Duration(windowDays)*24*time.Hour))
	if err != nil {
		return nil, err
	}

	list := make([]*dto.License, 0)
	for _, license := range licenses {
		list = append(list, s.modelToDTO(license))
	}
	return list, nil
}

func (s *VaultService) recordDenial(actorID, licenseID, ipAddress string) {
	s.auditService.Record(actorID, constants.AuditActionRevealDenied, "license:"+licenseID, ipAddress)
	s.events.Broadcast(websocket.Event{
		Type:       websocket.EventVaultDenied,
		EntityUUID: licenseID,
		Summary:    "License reveal denied",
	})
}

func (s *VaultService) modelToDTO(license *model.SoftwareLicense) *dto.License {
	return &dto.License{
		UUID:           license.UUID,
		SoftwareName:   license.SoftwareName,
		LicenseType:    license.LicenseType,
		PurchaseDate:   license.PurchaseDate,
		ActivationDate: license.ActivationDate,
		RenewalDate:    license.RenewalDate,
		LoginUsername:  license.LoginUsername,
		VendorName:     license.VendorName,
		Cost:           license.Cost,
		UserStrength:   license.UserStrength,
		CreatedBy:      license.CreatedBy,
		CreatedAt:      license.CreatedAt,
	}
}
