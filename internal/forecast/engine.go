package forecast

import (
	"time"

	"celikhane-backend/internal/apierr"
	"celikhane-backend/internal/store"
)

// Period: Tahminin hedeflediği planlama dönemi (ay + yıl). Config'den gelir;
// takvime gömülü tek bir tarihe bağımlılık yoktur.
type Period struct {
	Year  int
	Month time.Month
}

// Tahmin tarihi dönemin 24. günü olarak raporlanır (tarihsel çapa).
const anchorDay = 24

// AnchorDate: Dönemin yanıtlarda görünen sabit tarihi.
func (p Period) AnchorDate() time.Time {
	return time.Date(p.Year, p.Month, anchorDay, 0, 0, 0, 0, time.UTC)
}

// Result: Kalite bazında heat dağılımı.
type Result struct {
	ForecastDate   time.Time
	GradeBreakdown map[string]int
}

// ComputeForecast: Grup bazında tutulan tahmin kayıtlarını kalite bazına indirger.
//
// Hedef dönemdeki tahmin heat'leri grup adına göre toplanır; istenen her kalite
// grubuna çözülür ve grubun toplamından ağırlığı oranında pay alır:
// int(groupTotal * weight / 100). Kesme (truncation) bilinçli politikadır:
// ağırlıklar tam 100'e toplandığında grup toplamının üstüne asla çıkılmaz,
// kalan küsurat dağıtılmaz. Ağırlıklar doğrulanmaz; 100'ü aşan veya negatif
// ağırlık çağıranın sorumluluğudur.
//
// Bilinmeyen kalite, grupsuz kalite veya dönemde tahmini olmayan grup hata
// değildir: ilgili kalite 0 alır. Tek motor seviyesi hata boş ağırlık kümesidir.
func ComputeForecast(st *store.Store, period Period, weights map[string]float64) (*Result, error) {
	if len(weights) == 0 {
		return nil, apierr.InvalidRequest("No grade percentages provided")
	}

	records, err := st.ListForecastedProduction()
	if err != nil {
		return nil, err
	}

	// Hedef dönem filtresi + grup adına göre toplam
	heatsByGroup := make(map[string]int)
	for _, rec := range records {
		if rec.Date.Month() != period.Month || rec.Date.Year() != period.Year {
			continue
		}
		groupName := rec.ProductGroup.Name
		if groupName == "" {
			groupName = "Unknown"
		}
		heatsByGroup[groupName] += rec.Heats
	}

	breakdown := make(map[string]int, len(weights))
	for gradeName, weight := range weights {
		grade, err := st.GetSteelGradeByName(gradeName)
		if err != nil {
			return nil, err
		}

		if grade == nil || grade.ProductGroupID == nil || grade.ProductGroup == nil {
			// Üretim/tahmin bağı olmayan kalite sıfır tahmin alır
			breakdown[gradeName] = 0
			continue
		}

		groupTotal := heatsByGroup[grade.ProductGroup.Name]
		breakdown[gradeName] = int(float64(groupTotal) * weight / 100)
	}

	return &Result{
		ForecastDate:   period.AnchorDate(),
		GradeBreakdown: breakdown,
	}, nil
}
