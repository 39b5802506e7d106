package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"manajemen-toko/src/config"
	"manajemen-toko/src/handlers"
	"manajemen-toko/src/repositories"
	"manajemen-toko/src/routes"
	"manajemen-toko/src/services"
)

func main() {
	cfg := config.Load()
	config.SetLogLevel(cfg.LogLevel)
	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatal("Failed to connect database: ", err)
	}
	if err := config.AutoMigrate(db); err != nil {
		log.Fatal("Failed to migrate database: ", err)
	}

	// Initialize repository
	repo := &repositories.StoreRepository{DB: db}

	// Initialize services
	storeService := &services.StoreService{Repo: repo}
	opnameService := &services.OpnameService{Repo: repo}
	reportService := &services.ReportService{
		Repo:              repo,
		LowStockThreshold: cfg.LowStockThreshold,
	}

	// Insert sample data jika kosong
	if cfg.SeedSampleData {
		if err := seedSampleData(repo, storeService); err != nil {
			log.Printf("Failed to seed sample data: %v", err)
		}
	}

	// Initialize handlers
	storeHandler := &handlers.StoreHandler{Service: storeService}
	opnameHandler := &handlers.OpnameHandler{Service: opnameService}
	reportHandler := &handlers.ReportHandler{Service: reportService}

	// Setup router dengan recovery middleware
	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg)))

	api := router.Group("/api/v1")
	stores := api.Group("/stores")
	routes.RegisterStoreRoutes(stores, storeHandler)
	routes.RegisterOpnameRoutes(stores, opnameHandler)
	routes.RegisterReportRoutes(stores, reportHandler)

	// Start server
	port := ":" + cfg.Port

	if err := router.Run(port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}

func corsConfig(cfg config.Config) cors.Config {
	conf := cors.DefaultConfig()
	if len(cfg.CORSAllowedOrigins) == 0 {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = cfg.CORSAllowedOrigins
	}
	conf.AddAllowMethods("GET", "POST", "PUT", "DELETE", "OPTIONS")
	conf.AddAllowHeaders("Origin", "Content-Type")
	// download filenames
	conf.AddExposeHeaders("Content-Disposition")
	return conf
}

func seedSampleData(repo *repositories.StoreRepository, svc *services.StoreService) error {
	ctx := context.Background()

	count, err := repo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	log.Println("🌱 Seeding sample stores...")
	added, err := svc.SeedStores(ctx, services.DefaultStores(time.Now()))
	if err != nil {
		return err
	}
	log.Printf("✅ Seeded %d stores", added)
	return nil
}
