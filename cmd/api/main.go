package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oralvis-health/scan-api/internal/config"
	dbpkg "github.com/oralvis-health/scan-api/internal/db"
	"github.com/oralvis-health/scan-api/internal/middleware"
	"github.com/oralvis-health/scan-api/internal/routes"
	"github.com/oralvis-health/scan-api/internal/storage"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)

	store, err := storage.NewS3Store(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to init object storage: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, store)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
