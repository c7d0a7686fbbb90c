package ingest

import (
	"time"

	"celikhane-backend/internal/models"
	"celikhane-backend/internal/store"
	"celikhane-backend/internal/tabular"
)

// StoreDailySchedule: Güne göre bölünmüş plan kayıtlarını işler.
// Plan satırları yalnızca mevcut kalitelere bağlanabilir: bilinmeyen kalite
// taşıyan satır sessizce atlanır (yükleme sırası bağımlılığı, hata değil).
// Benzersizlik kısıtı yoktur; bir günde aynı kalite için birden çok döküm olağandır.
func StoreDailySchedule(st *store.Store, entriesByDate map[time.Time][]tabular.ScheduleEntry) (int, error) {
	inserted := 0

	for date, entries := range entriesByDate {
		for _, entry := range entries {
			grade, err := st.GetSteelGradeByName(entry.Grade)
			if err != nil {
				return inserted, err
			}
			if grade == nil {
				continue
			}

			rec := models.DailyProductionSchedule{
				Date:      date,
				StartTime: entry.StartTime,
				MouldSize: entry.MouldSize,
				GradeID:   grade.ID,
			}
			if err := st.CreateScheduleEntry(&rec); err != nil {
				return inserted, err
			}
			inserted++
		}
	}
	return inserted, nil
}
