package models

import "time"

// HistoricalProduction: Bir kalitenin bir gündeki fiili üretimi (ton)
// (date, grade_id) çifti benzersizdir; aynı çift tekrar yüklenirse eski kayıt kazanır
type HistoricalProduction struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;uniqueIndex:idx_hist_date_grade"`
	Tons      int       `gorm:"not null"`
	GradeID   uint      `gorm:"not null;uniqueIndex:idx_hist_date_grade"`
	Grade     SteelGrade
	CreatedAt time.Time
	UpdatedAt time.Time
}
