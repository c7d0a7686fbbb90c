package catalog

import (
	"time"

	"celikhane-backend/internal/apierr"
	"celikhane-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

// GET /
// API dizini: istemcilerin keşif için kullandığı sabit yanıt.
func RootHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Steel Production Forecast API",
			"version": "1.0.0",
			"endpoints": fiber.Map{
				"forecast":                  "/forecast",
				"upload_production_history": "/upload/production-history",
				"upload_product_groups":     "/upload/product-groups",
				"upload_daily_schedule":     "/upload/daily-schedule",
				"product_groups":            "/product-groups",
				"steel_grades":              "/steel-grades",
			},
		})
	}
}

// GET /health
// Veritabanı erişilemezse servis çökmez; degraded durum 503 gövdesiyle raporlanır.
func HealthHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if err := st.Ping(); err != nil {
			return apierr.ServiceUnavailable(err)
		}

		groupCount, err := st.CountProductGroups()
		if err != nil {
			return apierr.ServiceUnavailable(err)
		}
		gradeCount, err := st.CountSteelGrades()
		if err != nil {
			return apierr.ServiceUnavailable(err)
		}

		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Format(time.RFC3339),
			"database":  "connected",
			"data_summary": fiber.Map{
				"product_groups": groupCount,
				"steel_grades":   gradeCount,
			},
		})
	}
}
