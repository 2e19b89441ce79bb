package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "esrs-platform/docs" // This is for Swagger
	"esrs-platform/internal/auth"
	"esrs-platform/internal/cache"
	"esrs-platform/internal/config"
	"esrs-platform/internal/database"
	"esrs-platform/internal/handlers"
	"esrs-platform/internal/logger"
	"esrs-platform/internal/middleware"
	"esrs-platform/internal/models"
	"esrs-platform/internal/repository"
	"esrs-platform/internal/service"
	"esrs-platform/internal/storage"

	httpSwagger "github.com/swaggo/http-swagger"
)

// @title ESRS Platform API
// @version 1.0
// @description Backend API for ESRS materiality assessment and sustainability data collection

// @contact.name API Support
// @contact.email support@esrs-platform.io

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logger
	logger.Setup(logger.Config{
		Level: cfg.Log.Level,
		Env:   cfg.App.Env,
	})

	slog.Info("Starting application",
		"name", cfg.App.Name,
		"version", cfg.App.Version,
		"env", cfg.App.Env,
		"log_level", logger.GetLevel(cfg.Log.Level),
	)

	// Initialize database
	db, err := database.New(&cfg.Database)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func(db *database.Database) {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}(db)

	slog.Info("Database connection established")

	// Run database migrations
	migrator := database.NewMigrationExecutor(db.DB)
	if err := migrator.RunMigrations("./migrations"); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed")

	// Initialize repositories
	profileRepo := repository.NewProfileRepository(db.DB)
	orgRepo := repository.NewOrganizationRepository(db.DB)
	projectRepo := repository.NewProjectRepository(db.DB)
	assessmentRepo := repository.NewAssessmentRepository(db.DB)
	catalogRepo := repository.NewCatalogRepository(db.DB)
	entryRepo := repository.NewEntryRepository(db.DB)
	auditRepo := repository.NewAuditRepository(db.DB)

	// Initialize profile cache; a nil Redis client degrades to direct reads
	redisClient := cache.NewRedisClient(&cfg.Redis)
	profileCache := cache.NewProfileCache(redisClient, profileRepo, cfg.Redis.TTL)
	defer profileCache.Close()

	// Initialize evidence storage
	evidenceStore, err := storage.NewEvidenceStore(&cfg.Storage)
	if err != nil {
		slog.Error("Failed to initialize evidence storage", "error", err)
		os.Exit(1)
	}

	// Initialize services
	authService := auth.NewService(&cfg.JWT)
	authSvc := service.NewAuthService(profileRepo, authService, cfg.App.EnableRegistration)
	adminSvc := service.NewAdminService(orgRepo, projectRepo, profileRepo, auditRepo, profileCache)
	projectSvc := service.NewProjectService(projectRepo, profileCache)
	materialitySvc := service.NewMaterialityService(assessmentRepo, auditRepo)
	disclosureSvc := service.NewDisclosureService(assessmentRepo, catalogRepo, entryRepo)
	entrySvc := service.NewEntryService(entryRepo, catalogRepo, assessmentRepo, auditRepo)
	reportSvc := service.NewReportService(projectSvc, disclosureSvc, entrySvc)

	// Initialize middleware
	authMw := middleware.NewAuthMiddleware(authService)
	rbacMw := middleware.NewRBACMiddleware(profileCache, projectRepo)
	corsMw := middleware.NewCORSMiddleware(&cfg.CORS)
	rateLimiter := middleware.NewRateLimiter(&cfg.RateLimit)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authSvc)
	adminHandler := handlers.NewAdminHandler(adminSvc)
	projectHandler := handlers.NewProjectHandler(projectSvc)
	materialityHandler := handlers.NewMaterialityHandler(materialitySvc)
	disclosureHandler := handlers.NewDisclosureHandler(disclosureSvc)
	entryHandler := handlers.NewEntryHandler(entrySvc, disclosureSvc)
	evidenceHandler := handlers.NewEvidenceHandler(evidenceStore, cfg.Storage.MaxUploadBytes)
	reportHandler := handlers.NewReportHandler(reportSvc)

	// Setup router
	mux := http.NewServeMux()

	// Public routes
	mux.HandleFunc("POST /api/v1/auth/register", authHandler.Register)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Authenticated routes
	mux.Handle("GET /api/v1/auth/me", authMw.Authenticate(http.HandlerFunc(authHandler.Me)))
	mux.Handle("GET /api/v1/standards", authMw.Authenticate(http.HandlerFunc(materialityHandler.ListStandards)))
	mux.Handle("GET /api/v1/projects", authMw.Authenticate(http.HandlerFunc(projectHandler.ListProjects)))

	// Project-scoped routes. Access requires a membership or the Admin role;
	// the effective role is resolved per request.
	mux.Handle("GET /api/v1/projects/{id}",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(projectHandler.GetProject),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/assessments",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(materialityHandler.ListAssessments),
			),
		),
	)
	mux.Handle("POST /api/v1/projects/{id}/assessments",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(materialityHandler.CreateAssessment),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/assessments/codes",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(materialityHandler.ListAssessedCodes),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/requirements",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(disclosureHandler.ListRequirements),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/progress",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(disclosureHandler.Progress),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/entries",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(entryHandler.ListEntries),
			),
		),
	)
	mux.Handle("POST /api/v1/projects/{id}/entries",
		authMw.Authenticate(
			rbacMw.RequireProjectRole(models.RoleDataCollector, models.RoleAdmin)(
				http.HandlerFunc(entryHandler.CreateEntry),
			),
		),
	)
	mux.Handle("PATCH /api/v1/projects/{id}/entries/{entryID}/status",
		authMw.Authenticate(
			rbacMw.RequireProjectRole(models.RoleReviewer, models.RoleAdmin)(
				http.HandlerFunc(entryHandler.TransitionEntry),
			),
		),
	)
	mux.Handle("POST /api/v1/projects/{id}/evidence",
		authMw.Authenticate(
			rbacMw.RequireProjectRole(models.RoleDataCollector, models.RoleAdmin)(
				http.HandlerFunc(evidenceHandler.Upload),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/summary",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(entryHandler.Summary),
			),
		),
	)
	mux.Handle("GET /api/v1/projects/{id}/report",
		authMw.Authenticate(
			rbacMw.RequireProjectAccess(
				http.HandlerFunc(reportHandler.Download),
			),
		),
	)

	// Admin routes
	mux.Handle("GET /api/v1/admin/organizations",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.ListOrganizations),
			),
		),
	)
	mux.Handle("POST /api/v1/admin/organizations",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.CreateOrganization),
			),
		),
	)
	mux.Handle("DELETE /api/v1/admin/organizations/{id}",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.DeleteOrganization),
			),
		),
	)
	mux.Handle("GET /api/v1/admin/projects",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.ListProjects),
			),
		),
	)
	mux.Handle("POST /api/v1/admin/projects",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.CreateProject),
			),
		),
	)
	mux.Handle("DELETE /api/v1/admin/projects/{id}",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.DeleteProject),
			),
		),
	)
	mux.Handle("GET /api/v1/admin/users",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.ListProfiles),
			),
		),
	)
	mux.Handle("PUT /api/v1/admin/users/{id}/role",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.UpdateGlobalRole),
			),
		),
	)
	mux.Handle("GET /api/v1/admin/members",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.ListProjectMembers),
			),
		),
	)
	mux.Handle("POST /api/v1/admin/members",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.AddProjectMember),
			),
		),
	)
	mux.Handle("DELETE /api/v1/admin/members/{id}",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.RemoveProjectMember),
			),
		),
	)
	mux.Handle("GET /api/v1/admin/audit-logs",
		authMw.Authenticate(
			rbacMw.RequireGlobalRole(models.RoleAdmin)(
				http.HandlerFunc(adminHandler.ListAuditLogs),
			),
		),
	)

	// Health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.HealthCheck(); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			if _, err := w.Write([]byte(`{"status":"unhealthy","database":"error"}`)); err != nil {
				slog.Error("Failed to write health check response", "error", err)
			}
			return
		}
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy","version":"` + cfg.App.Version + `"}`)); err != nil {
			slog.Error("Failed to write health check response", "error", err)
		}
	})

	// Swagger documentation
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	// Apply global middleware
	handler := middleware.LoggingMiddleware(
		middleware.SecurityHeaders(
			corsMw.Handler(
				rateLimiter.Limit(mux),
			),
		),
	)

	// Create server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  cfg.Server.TimeoutRead,
		WriteTimeout: cfg.Server.TimeoutWrite,
		IdleTimeout:  cfg.Server.TimeoutIdle,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server starting", "address", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Server shutting down...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server stopped")
}
