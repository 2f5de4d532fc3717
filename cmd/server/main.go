package main

import (
	"context"
	"log"
	"time"

	"oilfield-dashboard-api/config"
	"oilfield-dashboard-api/internal/binding"
	"oilfield-dashboard-api/internal/catalog"
	"oilfield-dashboard-api/internal/chat"
	"oilfield-dashboard-api/internal/dashboard"
	"oilfield-dashboard-api/internal/datacache"
	"oilfield-dashboard-api/internal/report"
	"oilfield-dashboard-api/internal/schema"
	"oilfield-dashboard-api/internal/storage"
	"oilfield-dashboard-api/internal/telemetry"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func main() {
	cfg := config.LoadConfig()

	db, err := gorm.Open(sqlite.Open(cfg.DBPath), &gorm.Config{})
	if err != nil {
		log.Fatal("Failed to open database:", err)
	}
	if err := db.AutoMigrate(&storage.DurableRecord{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	records := &storage.RecordStore{DB: db}

	catalogService := catalog.NewCatalogService(time.Duration(cfg.MockLatencyMS) * time.Millisecond)
	catalog.RegisterRoutes(r, catalogService)

	registry := schema.NewRegistry()

	configStore := binding.NewConfigStore(records)
	if err := configStore.Load(); err != nil {
		log.Fatal("Failed to load widget configurations:", err)
	}

	resolver := &binding.Resolver{Catalog: catalogService, Registry: registry}
	binding.RegisterRoutes(r, configStore, resolver)

	cache := datacache.NewCache()

	dashboardService := dashboard.NewDashboardService(configStore, resolver, cache, records)
	dashboard.RegisterRoutes(r, dashboardService)

	// Warm the cache for widgets configured in a previous session.
	if err := dashboardService.RefreshAll(context.Background()); err != nil {
		log.Printf("initial refresh: %v", err)
	}

	chatService := chat.NewChatService(records, &chat.KeywordResponder{Catalog: catalogService})
	if err := chatService.Load(); err != nil {
		log.Fatal("Failed to load chat history:", err)
	}
	chat.RegisterRoutes(r, chatService)

	reportService := &report.ReportService{
		Catalog:  catalogService,
		Store:    configStore,
		Resolver: resolver,
	}
	report.RegisterRoutes(r, reportService)

	telemetryService := telemetry.NewTelemetryService(3 * time.Second)
	telemetryService.Start()
	defer telemetryService.Stop()
	telemetry.RegisterRoutes(r, telemetryService)

	log.Printf("Starting server on 0.0.0.0:%s ...", cfg.Port)
	log.Fatal(r.Run("0.0.0.0:" + cfg.Port))
}
