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

package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"itam-api/src/config"
	"itam-api/src/internal/captcha"
	"itam-api/src/internal/crypto"
	"itam-api/src/internal/database"
	"itam-api/src/internal/handler"
	"itam-api/src/internal/middleware"
	"itam-api/src/internal/repository"
	"itam-api/src/internal/service"
	"itam-api/src/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	router    *gin.Engine
	wsManager *websocket.Manager
}

// StartITAMServer creates a new server instance with all dependencies
// initialized and routes registered
func StartITAMServer(cfg *config.Server) (*Server, error) {
	// Initialize database using configuration
	db, err := database.NewConnection(&cfg.Database)
	if err != nil {
		return nil, err
	}

	// Initialize schema (skip when ExecuteSchemaDDL is false, e.g. deployed Postgres without DDL access)
	if cfg.Database.ExecuteSchemaDDL {
		if err := db.InitSchema(cfg.DBSchemaPath); err != nil {
			return nil, err
		}
	} else {
		log.Printf("Skipping schema DDL execution (DATABASE_EXECUTE_SCHEMA_DDL=false)\n")
	}

	// The vault cipher is constructed once at startup; a bad key stops the
	// process here
	vaultCipher, err := crypto.NewTokenCipher(cfg.Vault.EncryptionKey)
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepo(db)
	departmentRepo := repository.NewDepartmentRepo(db)
	assetRepo := repository.NewAssetRepo(db)
	ticketRepo := repository.NewTicketRepo(db)
	licenseRepo := repository.NewLicenseRepo(db)
	repairRepo := repository.NewRepairLogRepo(db)
	consumableRepo := repository.NewConsumableRepo(db)
	auditRepo := repository.NewAuditLogRepo(db)

	// Initialize WebSocket event feed
	wsManager := websocket.NewManager()

	// Initialize services
	auditService := service.NewAuditService(auditRepo)
	captchaService := captcha.NewService(vaultCipher, cfg.Captcha.Width, cfg.Captcha.Height,
		time.Duration(cfg.Captcha.TTLSeconds)*time.Second)
	authService := service.NewAuthService(userRepo, auditService, cfg.JWT)
	userService := service.NewUserService(userRepo, auditService)
	departmentService := service.NewDepartmentService(departmentRepo)
	assetService := service.NewAssetService(assetRepo, userRepo, auditService)
	ticketService := service.NewTicketService(ticketRepo, auditService, wsManager)
	vaultService := service.NewVaultService(licenseRepo, vaultCipher, captchaService, auditService, wsManager)
	repairService := service.NewRepairService(repairRepo, assetRepo)
	consumableService := service.NewConsumableService(consumableRepo)
	dashboardService := service.NewDashboardService(ticketService, assetService, vaultService)

	// Seed the bootstrap super admin on first start
	if err := authService.EnsureSuperAdmin(cfg.Seed); err != nil {
		return nil, err
	}

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService, cfg.JWT.ExpiryHours)
	captchaHandler := handler.NewCaptchaHandler(captchaService)
	userHandler := handler.NewUserHandler(userService)
	departmentHandler := handler.NewDepartmentHandler(departmentService)
	assetHandler := handler.NewAssetHandler(assetService)
	ticketHandler := handler.NewTicketHandler(ticketService)
	vaultHandler := handler.NewVaultHandler(vaultService)
	repairHandler := handler.NewRepairHandler(repairService)
	consumableHandler := handler.NewConsumableHandler(consumableService)
	auditHandler := handler.NewAuditHandler(auditService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	eventsHandler := handler.NewEventsHandler(wsManager, cfg.WebSocket.MaxConnections)

	// Setup router
	router := gin.Default()

	// Configure and apply CORS middleware first (before auth middleware)
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Captcha-Token"}
	corsConfig.ExposeHeaders = []string{"X-Captcha-Token"}
	router.Use(cors.New(corsConfig))

	// Configure and apply JWT authentication middleware. The challenge
	// endpoint stays open: it must be reachable from the login screen.
	authConfig := middleware.AuthConfig{
		SecretKey:   cfg.JWT.SecretKey,
		TokenIssuer: cfg.JWT.Issuer,
		SkipPaths: []string{
			"/health",
			"/api/v1/auth/login",
			"/api/v1/captcha",
		},
	}
	router.Use(middleware.AuthMiddleware(authConfig))

	// Register routes
	authHandler.RegisterRoutes(router)
	captchaHandler.RegisterRoutes(router)
	userHandler.RegisterRoutes(router)
	departmentHandler.RegisterRoutes(router)
	assetHandler.RegisterRoutes(router)
	ticketHandler.RegisterRoutes(router)
	vaultHandler.RegisterRoutes(router)
	repairHandler.RegisterRoutes(router)
	consumableHandler.RegisterRoutes(router)
	auditHandler.RegisterRoutes(router)
	dashboardHandler.RegisterRoutes(router)
	eventsHandler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return &Server{
		router:    router,
		wsManager: wsManager,
	}, nil
}

// Start runs the HTTP server on the given port
func (s *Server) Start(port string) error {
	if port == "" {
		return fmt.Errorf("port cannot be empty")
	}

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("[INFO] Listening on port %s", port)
	return srv.ListenAndServe()
}

// GetRouter exposes the underlying router for tests
func (s *Server) GetRouter() *gin.Engine {
	return s.router
}
