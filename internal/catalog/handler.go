package catalog

import (
	"strconv"
	"time"

	"celikhane-backend/internal/store"

	"github.com/gofiber/fiber/v2"
)

type ProductGroupResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type SteelGradeResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProductGroupID *uint  `json:"product_group_id"`
}

type ForecastedProductionResponse struct {
	ID               uint   `json:"id"`
	Date             string `json:"date"`
	Heats            int    `json:"heats"`
	ProductGroupID   uint   `json:"product_group_id"`
	ProductGroupName string `json:"product_group_name"`
}

type HistoricalProductionResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	Tons      int    `json:"tons"`
	GradeID   uint   `json:"grade_id"`
	GradeName string `json:"grade_name"`
}

type DailyScheduleResponse struct {
	ID        uint   `json:"id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	MouldSize string `json:"mould_size"`
	GradeID   uint   `json:"grade_id"`
	GradeName string `json:"grade_name"`
}

const dateFormat = "2006-01-02"

// GET /product-groups
func ListProductGroupsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		groups, err := st.ListProductGroups()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gruplar listelenemedi")
		}

		res := make([]ProductGroupResponse, 0, len(groups))
		for _, g := range groups {
			res = append(res, ProductGroupResponse{ID: g.ID, Name: g.Name})
		}
		return c.JSON(res)
	}
}

// GET /steel-grades?skip=0&limit=100
func ListSteelGradesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		skip := queryInt(c, "skip", 0)
		limit := queryInt(c, "limit", 100)

		grades, err := st.ListSteelGrades(skip, limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Kaliteler listelenemedi")
		}

		res := make([]SteelGradeResponse, 0, len(grades))
		for _, g := range grades {
			res = append(res, SteelGradeResponse{ID: g.ID, Name: g.Name, ProductGroupID: g.ProductGroupID})
		}
		return c.JSON(res)
	}
}

// GET /forecasted-production
func ListForecastedProductionHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		records, err := st.ListForecastedProduction()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Tahmin kayıtları listelenemedi")
		}

		res := make([]ForecastedProductionResponse, 0, len(records))
		for _, rec := range records {
			res = append(res, ForecastedProductionResponse{
				ID:               rec.ID,
				Date:             rec.Date.Format(dateFormat),
				Heats:            rec.Heats,
				ProductGroupID:   rec.ProductGroupID,
				ProductGroupName: rec.ProductGroup.Name,
			})
		}
		return c.JSON(res)
	}
}

// GET /historical-production?grade_id=&start_date=&end_date=&skip=&limit=
func ListHistoricalProductionHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := store.HistoricalProductionFilter{
			Skip:  queryInt(c, "skip", 0),
			Limit: queryInt(c, "limit", 100),
		}

		if v := c.Query("grade_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "grade_id geçersiz")
			}
			gid := uint(id)
			filter.GradeID = &gid
		}
		if v := c.Query("start_date"); v != "" {
			d, err := time.Parse(dateFormat, v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "start_date geçersiz (YYYY-MM-DD)")
			}
			filter.StartDate = &d
		}
		if v := c.Query("end_date"); v != "" {
			d, err := time.Parse(dateFormat, v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "end_date geçersiz (YYYY-MM-DD)")
			}
			filter.EndDate = &d
		}

		records, err := st.ListHistoricalProduction(filter)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Üretim geçmişi listelenemedi")
		}

		res := make([]HistoricalProductionResponse, 0, len(records))
		for _, rec := range records {
			res = append(res, HistoricalProductionResponse{
				ID:        rec.ID,
				Date:      rec.Date.Format(dateFormat),
				Tons:      rec.Tons,
				GradeID:   rec.GradeID,
				GradeName: rec.Grade.Name,
			})
		}
		return c.JSON(res)
	}
}

// GET /daily-schedules?date=&grade_id=&skip=&limit=
func ListDailySchedulesHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		filter := store.DailyScheduleFilter{
			Skip:  queryInt(c, "skip", 0),
			Limit: queryInt(c, "limit", 100),
		}

		if v := c.Query("date"); v != "" {
			d, err := time.Parse(dateFormat, v)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date geçersiz (YYYY-MM-DD)")
			}
			filter.Date = &d
		}
		if v := c.Query("grade_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 32)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "grade_id geçersiz")
			}
			gid := uint(id)
			filter.GradeID = &gid
		}

		records, err := st.ListDailySchedules(filter)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Günlük planlar listelenemedi")
		}

		res := make([]DailyScheduleResponse, 0, len(records))
		for _, rec := range records {
			res = append(res, DailyScheduleResponse{
				ID:        rec.ID,
				Date:      rec.Date.Format(dateFormat),
				StartTime: rec.StartTime,
				MouldSize: rec.MouldSize,
				GradeID:   rec.GradeID,
				GradeName: rec.Grade.Name,
			})
		}
		return c.JSON(res)
	}
}

func queryInt(c *fiber.Ctx, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}
