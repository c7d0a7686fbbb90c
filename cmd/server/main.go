package main

import (
	"log"
	"strings"
	"time"

	"celikhane-backend/internal/apierr"
	"celikhane-backend/internal/auth"
	"celikhane-backend/internal/catalog"
	"celikhane-backend/internal/config"
	"celikhane-backend/internal/database"
	"celikhane-backend/internal/forecast"
	"celikhane-backend/internal/ingest"
	"celikhane-backend/internal/models"
	"celikhane-backend/internal/store"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Veritabanı başlatılamadı: %v", err)
	}
	st := store.New(db)

	period := forecast.Period{Year: cfg.ForecastYear, Month: time.Month(cfg.ForecastMonth)}

	app := fiber.New(fiber.Config{
		ErrorHandler: apierr.ErrorHandler,
	})

	// CORS origins'i virgülle ayrılmış string'den array'e çevir
	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	// Public
	app.Get("/", catalog.RootHandler())
	app.Get("/health", catalog.HealthHandler(st))
	app.Post("/auth/register-admin", auth.RegisterAdminHandler(st))
	app.Post("/auth/login", auth.LoginHandler(cfg, st))

	// Referans listeleri (okuma, auth gerektirmez)
	app.Get("/product-groups", catalog.ListProductGroupsHandler(st))
	app.Get("/steel-grades", catalog.ListSteelGradesHandler(st))
	app.Get("/forecasted-production", catalog.ListForecastedProductionHandler(st))
	app.Get("/historical-production", catalog.ListHistoricalProductionHandler(st))
	app.Get("/daily-schedules", catalog.ListDailySchedulesHandler(st))

	// Protected
	protected := app.Group("")
	protected.Use(auth.JWTMiddleware(cfg))

	protected.Get("/auth/me", auth.MeHandler(st))
	protected.Post("/auth/users", auth.RequireRole(models.RoleAdmin), auth.CreateOperatorHandler(st))

	// Veri yükleme
	protected.Post("/upload/production-history", ingest.UploadProductionHistoryHandler(st))
	protected.Post("/upload/product-groups", ingest.UploadProductGroupsHandler(st))
	protected.Post("/upload/daily-schedule", ingest.UploadDailyScheduleHandler(st))

	// Tahmin
	protected.Post("/forecast", forecast.ForecastHandler(st, period))
	protected.Get("/forecast/trend", forecast.TrendHandler(st))

	log.Println("Server çalışıyor port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
