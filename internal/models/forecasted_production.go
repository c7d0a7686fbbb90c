package models

import "time"

// ForecastedProduction: Bir ürün grubu için öngörülen döküm (heat) sayısı
// Tahmin grup bazında tutulur, kalite bazında değil; (date, product_group_id) benzersizdir
type ForecastedProduction struct {
	ID             uint      `gorm:"primaryKey"`
	Date           time.Time `gorm:"type:date;not null;uniqueIndex:idx_fcst_date_group"`
	Heats          int       `gorm:"not null"`
	ProductGroupID uint      `gorm:"not null;uniqueIndex:idx_fcst_date_group"`
	ProductGroup   ProductGroup
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
