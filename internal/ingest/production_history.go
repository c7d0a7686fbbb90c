package ingest

import (
	"fmt"
	"strconv"
	"strings"

	"celikhane-backend/internal/models"
	"celikhane-backend/internal/store"
	"celikhane-backend/internal/tabular"
)

// Uzun formattaki yükleme tablolarında beklenen kolon isimleri
const (
	ColDate             = "date"
	ColGradeName        = "grade_name"
	ColTons             = "tons"
	ColProductGroupName = "product_group_id"
	ColGroupName        = "product_group_name"
	ColHeats            = "heats"
)

// parseAmount: Hücre değerini tam sayıya indirger (ondalıklar kırpılır).
func parseAmount(s string) (int, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("sayı çözümlenemedi: %q", s)
	}
	return int(f), nil
}

// StoreProductionHistory: Uzun formattaki üretim geçmişi satırlarını işler.
// Her satır için: grup tanımlayıcısı varsa grubu bul/oluştur, kaliteyi
// bul/oluştur (yeni kaliteye grup bağı oluşturma anında yazılır), (tarih, kalite)
// çifti zaten kayıtlıysa satırı atla, değilse ekle. Çözümlemeyen tarih veya
// sayı olmayan tonaj tüm batch'i düşürür; tek tolerans duplicate atlamasıdır.
func StoreProductionHistory(st *store.Store, t *tabular.Table) (int, error) {
	inserted := 0
	hasGroupCol := t.HasColumn(ColProductGroupName)

	for _, row := range t.Rows {
		gradeName := t.Cell(row, ColGradeName)
		if gradeName == "" {
			continue
		}

		// Grup tanımlayıcısı taşıyan yüklemelerde grubu isimle bul/oluştur
		var groupID *uint
		if hasGroupCol {
			if groupName := t.Cell(row, ColProductGroupName); groupName != "" {
				group, _, err := st.GetOrCreateProductGroup(groupName)
				if err != nil {
					return inserted, err
				}
				groupID = &group.ID
			}
		}

		grade, _, err := st.GetOrCreateSteelGrade(gradeName, groupID)
		if err != nil {
			return inserted, err
		}

		date, err := tabular.ParseDate(t.Cell(row, ColDate))
		if err != nil {
			return inserted, err
		}

		tons, err := parseAmount(t.Cell(row, ColTons))
		if err != nil {
			return inserted, err
		}

		exists, err := st.HasHistoricalProduction(date, grade.ID)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue // aynı (tarih, kalite) çifti: eski kayıt kazanır
		}

		rec := models.HistoricalProduction{Date: date, Tons: tons, GradeID: grade.ID}
		if err := st.CreateHistoricalProduction(&rec); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
