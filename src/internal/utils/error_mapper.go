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

package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"itam-api/src/internal/constants"

	"github.com/go-playground/validator/v10"
)

// makeError creates a standardized error response tuple
func makeError(status int, message string) (int, interface{}) {
	return status, NewErrorResponse(message)
}

// FormatValidationError converts validator errors to user-friendly messages (public API)
func FormatValidationError(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error() // Not a validation error, return as-is
	}
	return formatValidationError(validationErrors)
}

// formatValidationError converts ValidationErrors to user-friendly messages (internal)
func formatValidationError(validationErrors validator.ValidationErrors) string {
	var messages []string
	for _, fieldError := range validationErrors {
		fieldName := getUserFriendlyFieldName(fieldError.Field())
		message := getValidationErrorMessage(fieldName, fieldError.Tag(), fieldError.Param())
		messages = append(messages, message)
	}
	return strings.Join(messages, "; ")
}

// getUserFriendlyFieldName maps struct field names to user-friendly field names
func getUserFriendlyFieldName(fieldName string) string {
	fieldMap := map[string]string{
		"FullName":      "full name",
		"Email":         "email",
		"Password":      "password",
		"Role":          "role",
		"SoftwareName":  "software name",
		"LicenseType":   "license type",
		"ProductKey":    "product key",
		"LoginPassword": "login password",
		"AssetName":     "asset name",
		"Category":      "category",
		"Title":         "title",
		"Description":   "description",
		"Priority":      "priority",
		"ItemName":      "item name",
		"IssueReported": "reported issue",
	}

	if friendly, exists := fieldMap[fieldName]; exists {
		return friendly
	}
	return strings.ToLower(fieldName)
}

// getValidationErrorMessage creates user-friendly validation error messages
func getValidationErrorMessage(fieldName, tag, param string) string {
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", fieldName)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fieldName, param)
	case "max":
		return fmt.Sprintf("%s must not exceed %s characters", fieldName, param)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fieldName)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fieldName, strings.ReplaceAll(param, " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", fieldName)
	}
}

// GetErrorResponse maps domain errors and validation errors to HTTP status and error response
func GetErrorResponse(err error) (int, interface{}) {
	// First check if it's a validation error
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		userFriendlyMessage := formatValidationError(validationErrors)
		return makeError(http.StatusBadRequest, userFriendlyMessage)
	}

	// Handle domain/business logic errors
	switch {
	case errors.Is(err, constants.ErrInvalidCredentials):
		return makeError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, constants.ErrUnauthorized):
		return makeError(http.StatusForbidden, "Operation not permitted for this role")
	case errors.Is(err, constants.ErrUserNotFound):
		return makeError(http.StatusNotFound, "User not found")
	case errors.Is(err, constants.ErrUserExists):
		return makeError(http.StatusConflict, "User already exists with the given email")
	case errors.Is(err, constants.ErrLicenseNotFound):
		return makeError(http.StatusNotFound, "License not found")
	case errors.Is(err, constants.ErrCaptchaFailed):
		return makeError(http.StatusForbidden, "Incorrect Captcha! Access Denied.")
	case errors.Is(err, constants.ErrDecryptFailed):
		return makeError(http.StatusUnprocessableEntity, "Stored record is invalid")
	case errors.Is(err, constants.ErrMissingKey):
		return makeError(http.StatusBadRequest, "Product key is required")
	case errors.Is(err, constants.ErrDepartmentNotFound):
		return makeError(http.StatusNotFound, "Department not found")
	case errors.Is(err, constants.ErrDepartmentExists):
		return makeError(http.StatusConflict, "Department already exists")
	case errors.Is(err, constants.ErrAssetNotFound):
		return makeError(http.StatusNotFound, "Asset not found")
	case errors.Is(err, constants.ErrTicketNotFound):
		return makeError(http.StatusNotFound, "Ticket not found")
	case errors.Is(err, constants.ErrRepairLogNotFound):
		return makeError(http.StatusNotFound, "Repair log not found")
	case errors.Is(err, constants.ErrConsumableNotFound):
		return makeError(http.StatusNotFound, "Consumable not found")
	case errors.Is(err, constants.ErrInsufficientStock):
		return makeError(http.StatusConflict, "Insufficient remaining stock")
	default:
		return makeError(http.StatusInternalServerError, "An unexpected error occurred")
	}
}
