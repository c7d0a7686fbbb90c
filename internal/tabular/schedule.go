package tabular

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// ScheduleEntry: Günlük döküm planındaki tek kalem.
type ScheduleEntry struct {
	StartTime string
	Grade     string
	MouldSize string
}

// ParseSchedule: Tablo düzeninde olmayan günlük plan dosyasını çözer.
// Düzen: her gün üç kolonluk bir blok (başlangıç saati, kalite, kalıp ölçüsü),
// tarihler 2. satırda her üç kolonda bir, veri 4. satırdan itibaren.
// Kalite hücresi boş, "-" veya "Grade" olan satırlar atlanır; çıktı güne göre
// bölünmüş bağımsız kayıt kümeleridir (ara dosya yazılmaz, bellekte tutulur).
func ParseSchedule(filename string, r io.Reader) (map[time.Time][]ScheduleEntry, error) {
	rows, err := ReadRawRows(filename, r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 4 {
		return nil, fmt.Errorf("plan dosyası beklenen düzende değil: en az 4 satır gerekli")
	}

	// Tarih başlıkları: 2. satırda her üçüncü kolon
	dateRow := rows[1]
	var dates []time.Time
	var dateValid []bool
	for i := 0; i < len(dateRow); i += 3 {
		cell := strings.TrimSpace(dateRow[i])
		if cell == "" {
			dates = append(dates, time.Time{})
			dateValid = append(dateValid, false)
			continue
		}
		d, err := ParseDate(cell)
		if err != nil {
			return nil, fmt.Errorf("plan tarihi çözümlenemedi (kolon %d): %w", i+1, err)
		}
		dates = append(dates, d)
		dateValid = append(dateValid, true)
	}

	entries := make(map[time.Time][]ScheduleEntry)
	for _, row := range rows[3:] {
		for i := 0; i+2 < len(row); i += 3 {
			grade := strings.TrimSpace(row[i+1])
			if grade == "" || grade == "-" || grade == "Grade" {
				continue
			}

			block := i / 3
			if block >= len(dates) || !dateValid[block] {
				continue
			}

			entries[dates[block]] = append(entries[dates[block]], ScheduleEntry{
				StartTime: strings.TrimSpace(row[i]),
				Grade:     grade,
				MouldSize: strings.TrimSpace(row[i+2]),
			})
		}
	}
	return entries, nil
}
