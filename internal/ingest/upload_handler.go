package ingest

import (
	"fmt"
	"log"
	"mime/multipart"
	"regexp"
	"strings"

	"celikhane-backend/internal/apierr"
	"celikhane-backend/internal/store"
	"celikhane-backend/internal/tabular"

	"github.com/gofiber/fiber/v2"
)

// Basit tablolu dosyalarda atlanan başlık satırı sayısı
const headerSkipRows = 1

const qualityColumn = "Quality:"

var yearColumnRe = regexp.MustCompile(`(19|20)\d{2}`)

// openUpload: Form dosyasını alır ve uzantı kapısından geçirir.
func openUpload(c *fiber.Ctx) (*multipart.FileHeader, error) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
	}

	name := strings.ToLower(fileHeader.Filename)
	if !strings.HasSuffix(name, ".xlsx") && !strings.HasSuffix(name, ".csv") {
		return nil, apierr.InvalidFileType("Only CSV or XLSX files are supported")
	}
	return fileHeader, nil
}

// wrapProcessing: İşleme hattından çıkan hataları sınıflandırır.
// apierr türleri aynen geçer, geri kalan her şey File Processing Error olur.
func wrapProcessing(err error) error {
	if _, ok := err.(*apierr.Error); ok {
		return err
	}
	return apierr.Processing(err)
}

// normalizeHistoryTable: Üretim geçmişi tablosunu uzun formata getirir.
// Yıl taşıyan tarih kolonları + "Quality:" kolonu varsa geniş formattır:
// tarih kolonları (grade_name, date, tons) üçlülerine eritilir. Aksi halde
// tablo zaten uzun format kabul edilir.
func normalizeHistoryTable(t *tabular.Table) (*tabular.Table, error) {
	var dateCols []string
	for _, col := range t.Columns {
		if yearColumnRe.MatchString(col) {
			dateCols = append(dateCols, col)
		}
	}

	if len(dateCols) > 0 && t.HasColumn(qualityColumn) {
		long, err := t.Melt(qualityColumn, dateCols, ColDate, ColTons)
		if err != nil {
			return nil, err
		}
		long.RenameColumn(qualityColumn, ColGradeName)
		return long, nil
	}
	return t, nil
}

// POST /upload/production-history
func UploadProductionHistoryHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := openUpload(c)
		if err != nil {
			return err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		table, err := tabular.ReadSheet(fileHeader.Filename, file, headerSkipRows)
		if err != nil {
			return wrapProcessing(err)
		}

		long, err := normalizeHistoryTable(table)
		if err != nil {
			return wrapProcessing(err)
		}

		// Zorunlu kolon kontrolü
		var missing []string
		for _, col := range []string{ColDate, ColGradeName, ColTons} {
			if !long.HasColumn(col) {
				missing = append(missing, col)
			}
		}
		if len(missing) > 0 {
			return apierr.MissingColumns(fmt.Sprintf(
				"Missing required columns: %v. Available columns: %v", missing, long.Columns))
		}

		if columnAllEmpty(long, ColGradeName) {
			return apierr.InvalidData("All grade_name values are null/empty")
		}
		if columnAllEmpty(long, ColTons) {
			return apierr.InvalidData("All tons values are null/empty")
		}

		records, err := StoreProductionHistory(st, long)
		if err != nil {
			return wrapProcessing(err)
		}

		if records == 0 {
			return apierr.NoRecordsInserted(noRecordsDetail(st, long))
		}

		log.Printf("Üretim geçmişi yüklendi: %d kayıt (%s)", records, fileHeader.Filename)
		return c.JSON(fiber.Map{
			"message":          fmt.Sprintf("Production history uploaded successfully. %d records inserted.", records),
			"records_inserted": records,
		})
	}
}

// POST /upload/product-groups
func UploadProductGroupsHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := openUpload(c)
		if err != nil {
			return err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		table, err := tabular.ReadSheet(fileHeader.Filename, file, headerSkipRows)
		if err != nil {
			return wrapProcessing(err)
		}

		// Aylık grup tablosu hep geniş formattır: grup başına bir satır,
		// ay başına bir kolon
		long, err := table.Melt(qualityColumn, nil, ColDate, ColHeats)
		if err != nil {
			return wrapProcessing(err)
		}
		long.RenameColumn(qualityColumn, ColGroupName)

		records, err := StoreProductGroups(st, long)
		if err != nil {
			return wrapProcessing(err)
		}

		log.Printf("Ürün grupları ve tahmin yüklendi: %d kayıt (%s)", records, fileHeader.Filename)
		return c.JSON(fiber.Map{
			"message":          fmt.Sprintf("Product groups and forecasted production uploaded successfully. %d records inserted.", records),
			"records_inserted": records,
		})
	}
}

// POST /upload/daily-schedule
func UploadDailyScheduleHandler(st *store.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fileHeader, err := openUpload(c)
		if err != nil {
			return err
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		entriesByDate, err := tabular.ParseSchedule(fileHeader.Filename, file)
		if err != nil {
			return wrapProcessing(err)
		}

		records, err := StoreDailySchedule(st, entriesByDate)
		if err != nil {
			return wrapProcessing(err)
		}

		log.Printf("Günlük plan yüklendi: %d kayıt (%s)", records, fileHeader.Filename)
		return c.JSON(fiber.Map{
			"message":          fmt.Sprintf("Daily schedule uploaded successfully. %d records inserted.", records),
			"records_inserted": records,
		})
	}
}

func columnAllEmpty(t *tabular.Table, col string) bool {
	for _, row := range t.Rows {
		if t.Cell(row, col) != "" {
			return false
		}
	}
	return true
}

// noRecordsDetail: Hiç kayıt eklenmediğinde teşhis mesajı üretir:
// dosyadan örnek kalite adları + veritabanında bilinen kaliteler.
func noRecordsDetail(st *store.Store, t *tabular.Table) string {
	seen := make(map[string]bool)
	var sample []string
	for _, row := range t.Rows {
		name := t.Cell(row, ColGradeName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		sample = append(sample, name)
		if len(sample) == 5 {
			break
		}
	}

	var known []string
	if grades, err := st.ListSteelGrades(0, 100); err == nil {
		for _, g := range grades {
			known = append(known, g.Name)
			if len(known) == 10 {
				break
			}
		}
	}

	return fmt.Sprintf("No records inserted. Sample grades from file: %v. Existing grades in DB: %v", sample, known)
}
