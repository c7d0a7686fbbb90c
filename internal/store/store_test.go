package store

import (
	"testing"
	"time"

	"celikhane-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("test veritabanı açılamadı: %v", err)
	}

	// :memory: bağlantı başına ayrı veritabanı demektir; havuzu teke indir
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql.DB alınamadı: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&models.User{},
		&models.ProductGroup{},
		&models.SteelGrade{},
		&models.HistoricalProduction{},
		&models.ForecastedProduction{},
		&models.DailyProductionSchedule{},
	); err != nil {
		t.Fatalf("migrate hatası: %v", err)
	}

	return New(db)
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestGetOrCreateProductGroup(t *testing.T) {
	st := newTestStore(t)

	group, created, err := st.GetOrCreateProductGroup("Rebar")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if !created {
		t.Error("ilk çağrı yeni kayıt oluşturmalı")
	}

	again, created, err := st.GetOrCreateProductGroup("Rebar")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if created {
		t.Error("ikinci çağrı mevcut kaydı dönmeli, yenisini oluşturmamalı")
	}
	if again.ID != group.ID {
		t.Errorf("aynı kayıt dönmeli: %d != %d", again.ID, group.ID)
	}

	count, _ := st.CountProductGroups()
	if count != 1 {
		t.Errorf("tek grup olmalı, %d var", count)
	}
}

func TestGetOrCreateSteelGrade_GroupLinkImmutable(t *testing.T) {
	st := newTestStore(t)

	// Grupsuz oluşturulan kalitenin bağı sonradan yazılmaz
	grade, created, err := st.GetOrCreateSteelGrade("B500A", nil)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if !created {
		t.Fatal("kalite oluşturulmalıydı")
	}
	if grade.ProductGroupID != nil {
		t.Error("grupsuz kalitenin ProductGroupID'si nil olmalı")
	}

	group, _, err := st.GetOrCreateProductGroup("Rebar")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	// Aynı kalite grup bağıyla tekrar istenirse mevcut kayıt değişmeden döner
	same, created, err := st.GetOrCreateSteelGrade("B500A", &group.ID)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if created {
		t.Error("mevcut kalite yeniden oluşturulmamalı")
	}
	if same.ProductGroupID != nil {
		t.Error("mevcut kaydın grup bağı backfill edilmemeli")
	}
}

func TestGetSteelGradeByName_NotFound(t *testing.T) {
	st := newTestStore(t)

	grade, err := st.GetSteelGradeByName("YOK")
	if err != nil {
		t.Fatalf("bulunamayan kayıt hata olmamalı: %v", err)
	}
	if grade != nil {
		t.Error("bulunamayan kayıt nil dönmeli")
	}
}

func TestHistoricalProductionUniqueness(t *testing.T) {
	st := newTestStore(t)

	grade, _, err := st.GetOrCreateSteelGrade("B500A", nil)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	d := date(2024, time.August, 1)
	rec := models.HistoricalProduction{Date: d, Tons: 120, GradeID: grade.ID}
	if err := st.CreateHistoricalProduction(&rec); err != nil {
		t.Fatalf("ilk insert başarısız: %v", err)
	}

	// Aynı (tarih, kalite) çifti şema kısıtına takılmalı
	dup := models.HistoricalProduction{Date: d, Tons: 999, GradeID: grade.ID}
	if err := st.CreateHistoricalProduction(&dup); err == nil {
		t.Error("duplicate (date, grade_id) insert'i kısıt hatası vermeli")
	}

	exists, err := st.HasHistoricalProduction(d, grade.ID)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if !exists {
		t.Error("kayıt var olarak görünmeli")
	}
}

func TestForecastedProductionUniqueness(t *testing.T) {
	st := newTestStore(t)

	group, _, err := st.GetOrCreateProductGroup("MBQ")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	d := date(2024, time.September, 1)
	if err := st.CreateForecastedProduction(&models.ForecastedProduction{
		Date: d, Heats: 40, ProductGroupID: group.ID,
	}); err != nil {
		t.Fatalf("ilk insert başarısız: %v", err)
	}

	err = st.CreateForecastedProduction(&models.ForecastedProduction{
		Date: d, Heats: 20, ProductGroupID: group.ID,
	})
	if err == nil {
		t.Error("duplicate (date, product_group_id) insert'i kısıt hatası vermeli")
	}
}

func TestScheduleAllowsMultiplePerDay(t *testing.T) {
	st := newTestStore(t)

	grade, _, err := st.GetOrCreateSteelGrade("B500B", nil)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	d := date(2024, time.September, 5)
	for _, start := range []string{"08:00", "14:30"} {
		err := st.CreateScheduleEntry(&models.DailyProductionSchedule{
			Date: d, StartTime: start, MouldSize: "130x130", GradeID: grade.ID,
		})
		if err != nil {
			t.Fatalf("plan kaydı eklenemedi: %v", err)
		}
	}

	records, err := st.ListDailySchedules(DailyScheduleFilter{Date: &d, Limit: 10})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(records) != 2 {
		t.Errorf("aynı gün iki döküm kaydı olmalı, %d var", len(records))
	}
}

func TestListSteelGradesPagination(t *testing.T) {
	st := newTestStore(t)

	for _, name := range []string{"A", "B", "C", "D", "E"} {
		if _, _, err := st.GetOrCreateSteelGrade(name, nil); err != nil {
			t.Fatalf("beklenmeyen hata: %v", err)
		}
	}

	page, err := st.ListSteelGrades(2, 2)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(page) != 2 {
		t.Fatalf("sayfa 2 kayıt içermeli, %d var", len(page))
	}
	if page[0].Name != "C" || page[1].Name != "D" {
		t.Errorf("beklenen sayfa [C D], gelen [%s %s]", page[0].Name, page[1].Name)
	}
}

func TestListHistoricalProductionFilters(t *testing.T) {
	st := newTestStore(t)

	grade, _, _ := st.GetOrCreateSteelGrade("B500A", nil)
	other, _, _ := st.GetOrCreateSteelGrade("B500C", nil)

	for day := 1; day <= 5; day++ {
		st.CreateHistoricalProduction(&models.HistoricalProduction{
			Date: date(2024, time.August, day), Tons: day * 10, GradeID: grade.ID,
		})
	}
	st.CreateHistoricalProduction(&models.HistoricalProduction{
		Date: date(2024, time.August, 1), Tons: 77, GradeID: other.ID,
	})

	start := date(2024, time.August, 2)
	end := date(2024, time.August, 4)
	records, err := st.ListHistoricalProduction(HistoricalProductionFilter{
		GradeID:   &grade.ID,
		StartDate: &start,
		EndDate:   &end,
		Limit:     100,
	})
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("tarih aralığında 3 kayıt olmalı, %d var", len(records))
	}
	for _, rec := range records {
		if rec.GradeID != grade.ID {
			t.Errorf("filtre dışı kalite döndü: %d", rec.GradeID)
		}
	}
}
