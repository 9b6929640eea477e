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

package config

import (
	"encoding/base64"
	"fmt"
	"sync"

	"github.com/kelseyhightower/envconfig"
)

// Server holds the configuration parameters for the application.
type Server struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"DEBUG"`

	// Server configurations
	Port string `envconfig:"PORT" default:"9343"`

	// Database configurations
	Database     Database `envconfig:"DATABASE"`
	DBSchemaPath string   `envconfig:"DB_SCHEMA_PATH" default:"./internal/database/schema.sql"`

	// JWT Authentication configurations
	JWT JWT `envconfig:"JWT"`

	// Vault configurations
	Vault Vault `envconfig:"VAULT"`

	// Captcha configurations
	Captcha Captcha `envconfig:"CAPTCHA"`

	// Seed account created on first start when no super admin exists
	Seed Seed `envconfig:"SEED"`

	// WebSocket configurations
	WebSocket WebSocket `envconfig:"WEBSOCKET"`
}

// JWT holds JWT-specific configuration
type JWT struct {
	SecretKey   string `envconfig:"SECRET_KEY" default:"change-me-in-production"`
	Issuer      string `envconfig:"ISSUER" default:"itam-api"`
	ExpiryHours int    `envconfig:"EXPIRY_HOURS" default:"8"`
}

// Vault holds the encrypted-at-rest configuration for the license vault.
// EncryptionKey must be a base64-encoded 32-byte key; the process refuses
// to start without it so a secret can never be written unencryptably.
type Vault struct {
	EncryptionKey string `envconfig:"ENCRYPTION_KEY"`
}

// Captcha holds challenge-token configuration
type Captcha struct {
	Width      int `envconfig:"WIDTH" default:"280"`
	Height     int `envconfig:"HEIGHT" default:"90"`
	TTLSeconds int `envconfig:"TTL_SECONDS" default:"300"`
}

// Seed holds the bootstrap super-admin account
type Seed struct {
	Email    string `envconfig:"EMAIL" default:"itsupport@example.com"`
	Password string `envconfig:"PASSWORD" default:""`
	FullName string `envconfig:"FULL_NAME" default:"IT Super Admin"`
}

// WebSocket holds WebSocket-specific configuration
type WebSocket struct {
	MaxConnections    int `envconfig:"WS_MAX_CONNECTIONS" default:"100"`
	ConnectionTimeout int `envconfig:"WS_CONNECTION_TIMEOUT" default:"30"` // seconds
}

// Database holds database-specific configuration
type Database struct {
	Driver string `envconfig:"DRIVER" default:"sqlite3"`
	// Path is the file path for SQLite databases.
	// Use DATABASE_DB_PATH to override; keeping it distinct from the OS PATH variable.
	Path            string `envconfig:"DB_PATH" default:"./data/itam.db"`
	Host            string `envconfig:"HOST" default:"localhost"`
	Port            int    `envconfig:"PORT" default:"5432"`
	Name            string `envconfig:"NAME" default:"itam"`
	User            string `envconfig:"USER" default:""`
	Password        string `envconfig:"PASSWORD" default:""`
	SSLMode         string `envconfig:"SSL_MODE" default:"disable"`
	MaxOpenConns    int    `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int    `envconfig:"MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime int    `envconfig:"CONN_MAX_LIFETIME" default:"300"` // seconds

	// ExecuteSchemaDDL controls whether to run the schema DDL (CREATE TABLE, etc.) on startup.
	// Set to false when the DB user lacks DDL privileges.
	ExecuteSchemaDDL bool `envconfig:"EXECUTE_SCHEMA_DDL" default:"true"`
}

// package-level variable and mutex for thread safety
var (
	processOnce     sync.Once
	settingInstance *Server
)

// GetConfig initializes and returns a singleton instance of the Server struct.
// It uses sync.Once to ensure that the initialization logic is executed only
// once, making it safe for concurrent use. If there is an error during the
// initialization, the function will panic: a misconfigured process must not
// come up at all.
func GetConfig() *Server {
	var err error
	processOnce.Do(func() {
		settingInstance = &Server{}
		err = envconfig.Process("", settingInstance)
		if err == nil {
			err = validateVaultConfig(&settingInstance.Vault)
		}
	})
	if err != nil {
		panic(err)
	}
	return settingInstance
}

// validateVaultConfig ensures the vault encryption key is present and usable
// before any request is served. A missing or malformed key is a fatal
// startup error, never a runtime one.
func validateVaultConfig(cfg *Vault) error {
	if cfg.EncryptionKey == "" {
		return fmt.Errorf("VAULT_ENCRYPTION_KEY is not configured")
	}
	key, err := base64.StdEncoding.DecodeString(cfg.EncryptionKey)
	if err != nil {
		return fmt.Errorf("VAULT_ENCRYPTION_KEY is not valid base64: %w", err)
	}
	if len(key) != 32 {
		return fmt.Errorf("VAULT_ENCRYPTION_KEY must decode to 32 bytes, got %d", len(key))
	}
	return nil
}
