package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/oralvis-health/scan-api/internal/config"
	domainScan "github.com/oralvis-health/scan-api/internal/domain/scan"
	"github.com/oralvis-health/scan-api/internal/handlers"
	infraRepo "github.com/oralvis-health/scan-api/internal/infra/repository"
	"github.com/oralvis-health/scan-api/internal/middleware"
	"github.com/oralvis-health/scan-api/internal/token"
	ucScan "github.com/oralvis-health/scan-api/internal/usecase/scan"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cfg *config.Config,
	store domainScan.ObjectStorage,
) {

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	userRepo := infraRepo.NewUserGormRepository(db)
	scanRepo := infraRepo.NewScanGormRepository(db)

	tokens := token.NewService(cfg.JWTSecret, cfg.TokenTTL)

	// ======================================================
	// 🧠 USE CASES — SCANS
	// ======================================================
	uploadScanUC := ucScan.NewUploadScan(scanRepo, store)
	listScansUC := ucScan.NewListScans(scanRepo)
	deleteScanUC := ucScan.NewDeleteScan(scanRepo)
	clearScansUC := ucScan.NewClearScans(scanRepo)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(userRepo, tokens)
	scanHandler := handlers.NewScanHandler(
		uploadScanUC,
		listScansUC,
		deleteScanUC,
		clearScansUC,
	)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// 🔐 PROTECTED API
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(tokens))
		{
			secured.POST("/upload", scanHandler.Upload)
			secured.GET("/scans", scanHandler.List)

			// "/scans/all" must be registered before "/scans/:id".
			secured.DELETE("/scans/all", scanHandler.Clear)
			secured.DELETE("/scans/:id", scanHandler.Delete)
		}
	}
}
