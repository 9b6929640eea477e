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

package constants

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUnauthorized       = errors.New("operation not permitted for this role")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists with the given email")
)

var (
	ErrLicenseNotFound = errors.New("license not found")
	ErrCaptchaFailed   = errors.New("captcha verification failed")
	ErrDecryptFailed   = errors.New("stored secret could not be decrypted")
	ErrMissingKey      = errors.New("product key is required")
)

var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrDepartmentExists   = errors.New("department already exists")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrRepairLogNotFound  = errors.New("repair log not found")
	ErrConsumableNotFound = errors.New("consumable not found")
	ErrInsufficientStock  = errors.New("insufficient remaining stock")
)
