package models

import "time"

// ProductGroup: Üst seviye çelik sınıflandırması (örn: "Rebar", "MBQ")
// İlk referansta oluşturulur, sonradan silinmez ve güncellenmez
type ProductGroup struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"size:100;not null;unique"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Grades []SteelGrade `gorm:"foreignKey:ProductGroupID"`
}
