package ingest

import (
	"celikhane-backend/internal/models"
	"celikhane-backend/internal/store"
	"celikhane-backend/internal/tabular"
)

// StoreProductGroups: Ürün grubu + grup tahmini satırlarını işler.
// Önce batch'teki bilinmeyen gruplar toplu oluşturulur, sonra üç alanı da dolu
// olan satırlar tahmin kaydı olarak eklenir. Boş grup adı, tarih veya heats
// değeri taşıyan satırlar hata değildir, sessizce atlanır; (tarih, grup) çifti
// zaten kayıtlıysa satır yine atlanır.
func StoreProductGroups(st *store.Store, t *tabular.Table) (int, error) {
	inserted := 0

	// 1. geçiş: batch'teki benzersiz grup adları
	seen := make(map[string]bool)
	for _, row := range t.Rows {
		name := t.Cell(row, ColGroupName)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		_, created, err := st.GetOrCreateProductGroup(name)
		if err != nil {
			return inserted, err
		}
		if created {
			inserted++
		}
	}

	// 2. geçiş: tahmin kayıtları
	for _, row := range t.Rows {
		name := t.Cell(row, ColGroupName)
		dateStr := t.Cell(row, ColDate)
		heatsStr := t.Cell(row, ColHeats)
		if name == "" || dateStr == "" || heatsStr == "" {
			continue
		}

		group, err := st.GetProductGroupByName(name)
		if err != nil {
			return inserted, err
		}
		if group == nil {
			continue
		}

		date, err := tabular.ParseDate(dateStr)
		if err != nil {
			return inserted, err
		}

		heats, err := parseAmount(heatsStr)
		if err != nil {
			return inserted, err
		}

		exists, err := st.HasForecastedProduction(date, group.ID)
		if err != nil {
			return inserted, err
		}
		if exists {
			continue
		}

		rec := models.ForecastedProduction{Date: date, Heats: heats, ProductGroupID: group.ID}
		if err := st.CreateForecastedProduction(&rec); err != nil {
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
