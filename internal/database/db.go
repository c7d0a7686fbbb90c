package database

import (
	"fmt"

	"celikhane-backend/internal/config"
	"celikhane-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open: Postgres bağlantısını açar ve şemayı migrate eder.
// Bağlantı global tutulmaz; çağıran katman *gorm.DB'yi handler'lara enjekte eder.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("veritabanına bağlanılamadı: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate: Tablo ve kısıtları oluşturur. Benzersizlik kısıtları (kalite/grup adı,
// fact tablolarındaki tarih+referans çiftleri) uygulama kodunda değil burada,
// şema seviyesinde zorlanır; eşzamanlı yüklemelerde yarışı veritabanı çözer.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.ProductGroup{},
		&models.SteelGrade{},
		&models.HistoricalProduction{},
		&models.ForecastedProduction{},
		&models.DailyProductionSchedule{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate hatası: %w", err)
	}
	return nil
}
