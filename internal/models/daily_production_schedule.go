package models

import "time"

// DailyProductionSchedule: Planlanmış bir döküm kalemi
// Benzersizlik kısıtı yok: bir günde aynı kalite için birden fazla döküm normaldir
type DailyProductionSchedule struct {
	ID        uint      `gorm:"primaryKey"`
	Date      time.Time `gorm:"type:date;not null;index"`
	StartTime string    `gorm:"size:20"`
	MouldSize string    `gorm:"size:50"`
	GradeID   uint      `gorm:"not null;index"`
	Grade     SteelGrade
	CreatedAt time.Time
	UpdatedAt time.Time
}
