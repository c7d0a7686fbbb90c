package models

import "time"

// SteelGrade: Çelik kalitesi (örn: "B500A")
// En fazla bir ürün grubuna bağlıdır; grup bağlantısı yalnızca oluşturma anında
// yazılır, sonradan backfill yapılmaz
type SteelGrade struct {
	ID             uint   `gorm:"primaryKey"`
	Name           string `gorm:"size:100;not null;unique"`
	ProductGroupID *uint  `gorm:"index"` // grubu bilinmeyen kaliteler için NULL
	ProductGroup   *ProductGroup
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
