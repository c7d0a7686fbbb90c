package store

import (
	"errors"
	"time"

	"celikhane-backend/internal/models"

	"gorm.io/gorm"
)

// Store: Tüm kalıcılık erişiminin geçtiği handle. Global DB yerine
// handler kurucularına enjekte edilir; her istek kendi scope'unda çalışır.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Ping: Bağlantı sağlığı kontrolü (health endpoint'i için).
func (s *Store) Ping() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

// GetProductGroupByName: İsimle grup arar; bulunamazsa (nil, nil) döner.
func (s *Store) GetProductGroupByName(name string) (*models.ProductGroup, error) {
	var group models.ProductGroup
	err := s.db.Where("name = ?", name).First(&group).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &group, nil
}

// GetOrCreateProductGroup: Grubu ismiyle bulur, yoksa oluşturur.
// Eşzamanlı istekler aynı ismi yarıştırırsa insert unique kısıtına takılır;
// bu "zaten var" demektir, kayıt yeniden okunur.
func (s *Store) GetOrCreateProductGroup(name string) (*models.ProductGroup, bool, error) {
	existing, err := s.GetProductGroupByName(name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	group := models.ProductGroup{Name: name}
	if err := s.db.Create(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.GetProductGroupByName(name)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return &group, true, nil
}

func (s *Store) ListProductGroups() ([]models.ProductGroup, error) {
	var groups []models.ProductGroup
	if err := s.db.Order("id asc").Find(&groups).Error; err != nil {
		return nil, err
	}
	return groups, nil
}

func (s *Store) CountProductGroups() (int64, error) {
	var count int64
	err := s.db.Model(&models.ProductGroup{}).Count(&count).Error
	return count, err
}

// GetSteelGradeByName: İsimle kalite arar; bulunamazsa (nil, nil) döner.
func (s *Store) GetSteelGradeByName(name string) (*models.SteelGrade, error) {
	var grade models.SteelGrade
	err := s.db.Preload("ProductGroup").Where("name = ?", name).First(&grade).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &grade, nil
}

// GetOrCreateSteelGrade: Kaliteyi ismiyle bulur, yoksa verilen grup bağıyla oluşturur.
// Grup bağı yalnızca oluşturma anında yazılır; mevcut kayıt asla güncellenmez.
func (s *Store) GetOrCreateSteelGrade(name string, productGroupID *uint) (*models.SteelGrade, bool, error) {
	existing, err := s.GetSteelGradeByName(name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	grade := models.SteelGrade{Name: name, ProductGroupID: productGroupID}
	if err := s.db.Create(&grade).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			existing, ferr := s.GetSteelGradeByName(name)
			if ferr != nil {
				return nil, false, ferr
			}
			return existing, false, nil
		}
		return nil, false, err
	}
	return &grade, true, nil
}

func (s *Store) ListSteelGrades(skip, limit int) ([]models.SteelGrade, error) {
	var grades []models.SteelGrade
	if err := s.db.Order("id asc").Offset(skip).Limit(limit).Find(&grades).Error; err != nil {
		return nil, err
	}
	return grades, nil
}

func (s *Store) CountSteelGrades() (int64, error) {
	var count int64
	err := s.db.Model(&models.SteelGrade{}).Count(&count).Error
	return count, err
}

// HasHistoricalProduction: (date, grade) çifti için kayıt var mı?
func (s *Store) HasHistoricalProduction(date time.Time, gradeID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.HistoricalProduction{}).
		Where("date = ? AND grade_id = ?", date, gradeID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateHistoricalProduction(rec *models.HistoricalProduction) error {
	return s.db.Create(rec).Error
}

// HistoricalProductionFilter: Listeleme filtreleri; nil alanlar filtre uygulamaz.
type HistoricalProductionFilter struct {
	GradeID   *uint
	StartDate *time.Time
	EndDate   *time.Time
	Skip      int
	Limit     int
}

func (s *Store) ListHistoricalProduction(f HistoricalProductionFilter) ([]models.HistoricalProduction, error) {
	query := s.db.Model(&models.HistoricalProduction{}).Preload("Grade")

	if f.GradeID != nil {
		query = query.Where("grade_id = ?", *f.GradeID)
	}
	if f.StartDate != nil {
		query = query.Where("date >= ?", *f.StartDate)
	}
	if f.EndDate != nil {
		query = query.Where("date <= ?", *f.EndDate)
	}

	var records []models.HistoricalProduction
	if err := query.Order("date asc").Offset(f.Skip).Limit(f.Limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// HasForecastedProduction: (date, group) çifti için tahmin kaydı var mı?
func (s *Store) HasForecastedProduction(date time.Time, productGroupID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.ForecastedProduction{}).
		Where("date = ? AND product_group_id = ?", date, productGroupID).
		Count(&count).Error
	return count > 0, err
}

func (s *Store) CreateForecastedProduction(rec *models.ForecastedProduction) error {
	return s.db.Create(rec).Error
}

// ListForecastedProduction: Tüm tahmin kayıtları, grup bilgisiyle birlikte.
func (s *Store) ListForecastedProduction() ([]models.ForecastedProduction, error) {
	var records []models.ForecastedProduction
	if err := s.db.Preload("ProductGroup").Order("date asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (s *Store) CreateScheduleEntry(rec *models.DailyProductionSchedule) error {
	return s.db.Create(rec).Error
}

// DailyScheduleFilter: Günlük plan listeleme filtreleri.
type DailyScheduleFilter struct {
	Date    *time.Time
	GradeID *uint
	Skip    int
	Limit   int
}

func (s *Store) ListDailySchedules(f DailyScheduleFilter) ([]models.DailyProductionSchedule, error) {
	query := s.db.Model(&models.DailyProductionSchedule{}).Preload("Grade")

	if f.Date != nil {
		query = query.Where("date = ?", *f.Date)
	}
	if f.GradeID != nil {
		query = query.Where("grade_id = ?", *f.GradeID)
	}

	var records []models.DailyProductionSchedule
	if err := query.Order("date asc, id asc").Offset(f.Skip).Limit(f.Limit).Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
