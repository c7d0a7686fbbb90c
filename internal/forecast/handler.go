package forecast

import (
	"celikhane-backend/internal/apierr"
	"celikhane-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ForecastRequest struct {
	GradePercentages map[string]float64 `json:"grade_percentages"`
}

type ForecastResponse struct {
	ForecastDate   string         `json:"forecast_date"`
	GradeBreakdown map[string]int `json:"grade_breakdown"`
}

// POST /forecast
func ForecastHandler(st *store.Store, period Period) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ForecastRequest
		if err := c.BodyParser(&body); err != nil {
			return apierr.InvalidRequest("Geçersiz istek gövdesi: " + err.Error())
		}

		result, err := ComputeForecast(st, period, body.GradePercentages)
		if err != nil {
			if _, ok := err.(*apierr.Error); ok {
				return err
			}
			return apierr.ServiceUnavailable(err)
		}

		return c.JSON(ForecastResponse{
			ForecastDate:   result.ForecastDate.Format("2006-01-02"),
			GradeBreakdown: result.GradeBreakdown,
		})
	}
}

// GET /forecast/trend?grade=B500A
// Kalitenin üretim geçmişine doğrusal uyum: tonajın zamana göre eğilimi.
func TrendHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		gradeName := c.Query("grade")
		if gradeName == "" {
			return apierr.InvalidRequest("grade parametresi zorunlu")
		}

		grade, err := st.GetSteelGradeByName(gradeName)
		if err != nil {
			return apierr.ServiceUnavailable(err)
		}
		if grade == nil {
			return fiber.NewError(fiber.StatusNotFound, "Kalite bulunamadı: "+gradeName)
		}

		records, err := st.ListHistoricalProduction(store.HistoricalProductionFilter{
			GradeID: &grade.ID,
			Limit:   1000,
		})
		if err != nil {
			return apierr.ServiceUnavailable(err)
		}
		if len(records) < 2 {
			return apierr.InvalidData("Doğrusal uyum için en az 2 üretim kaydı gerekli")
		}

		// x: ilk kayıttan itibaren gün, y: tonaj
		origin := records[0].Date
		x := make([]float64, len(records))
		y := make([]float64, len(records))
		for i, rec := range records {
			x[i] = rec.Date.Sub(origin).Hours() / 24
			y[i] = float64(rec.Tons)
		}

		fit, err := LinearFit(x, y)
		if err != nil {
			return apierr.InvalidData(err.Error())
		}

		return c.JSON(fiber.Map{
			"grade":     grade.Name,
			"points":    len(records),
			"slope":     fit.Slope,
			"intercept": fit.Intercept,
			"r_value":   fit.RValue,
		})
	}
}
