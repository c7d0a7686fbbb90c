package tabular

import (
	"strings"
	"testing"
	"time"
)

func TestReadSheet_CSVWithSkipRow(t *testing.T) {
	// İlk satır dosya başlığı, ikinci satır kolon başlıkları
	csvData := strings.Join([]string{
		"Üretim Raporu 2024",
		"date,grade_name,tons",
		"2024-08-01,B500A,120",
		"2024-08-02,B500B,95",
	}, "\n")

	table, err := ReadSheet("report.csv", strings.NewReader(csvData), 1)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	if len(table.Columns) != 3 || table.Columns[0] != "date" {
		t.Errorf("beklenmeyen başlıklar: %v", table.Columns)
	}
	if len(table.Rows) != 2 {
		t.Fatalf("2 veri satırı beklenir, %d geldi", len(table.Rows))
	}
	if got := table.Cell(table.Rows[0], "grade_name"); got != "B500A" {
		t.Errorf("grade_name B500A olmalı, %q geldi", got)
	}
}

func TestReadSheet_ShortRowsPadded(t *testing.T) {
	csvData := "a,b,c\n1,2\n"

	table, err := ReadSheet("data.csv", strings.NewReader(csvData), 0)
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(table.Rows[0]) != 3 {
		t.Fatalf("satır başlık genişliğine tamamlanmalı: %v", table.Rows[0])
	}
	if table.Cell(table.Rows[0], "c") != "" {
		t.Error("eksik hücre boş olmalı")
	}
}

func TestReadSheet_UnsupportedExtension(t *testing.T) {
	if _, err := ReadSheet("data.xls", strings.NewReader(""), 0); err == nil {
		t.Error("desteklenmeyen uzantı hata vermeli")
	}
}

func TestMelt_WideToLong(t *testing.T) {
	table := &Table{
		Columns: []string{"Quality:", "2024-09-01", "2024-10-01"},
		Rows: [][]string{
			{"Rebar", "40", "35"},
			{"MBQ", "20", "25"},
		},
	}

	long, err := table.Melt("Quality:", nil, "date", "heats")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	if len(long.Rows) != 4 {
		t.Fatalf("2 kolon x 2 satır = 4 uzun satır beklenir, %d geldi", len(long.Rows))
	}
	// İlk eritilen kolonun satırları önce gelir
	first := long.Rows[0]
	if first[0] != "Rebar" || first[1] != "2024-09-01" || first[2] != "40" {
		t.Errorf("beklenmeyen ilk satır: %v", first)
	}
}

func TestMelt_SelectedColumnsOnly(t *testing.T) {
	table := &Table{
		Columns: []string{"Quality:", "Not", "2024-09-01"},
		Rows:    [][]string{{"Rebar", "açıklama", "40"}},
	}

	long, err := table.Melt("Quality:", []string{"2024-09-01"}, "date", "tons")
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}
	if len(long.Rows) != 1 {
		t.Fatalf("yalnızca seçilen kolon eritilmeli, %d satır geldi", len(long.Rows))
	}
	if long.Rows[0][2] != "40" {
		t.Errorf("beklenmeyen değer: %v", long.Rows[0])
	}
}

func TestMelt_MissingIDColumn(t *testing.T) {
	table := &Table{Columns: []string{"a"}, Rows: nil}
	if _, err := table.Melt("yok", nil, "date", "value"); err == nil {
		t.Error("eksik id kolonu hata vermeli")
	}
}

func TestForwardFill(t *testing.T) {
	table := &Table{
		Columns: []string{"group", "value"},
		Rows: [][]string{
			{"Rebar", "1"},
			{"", "2"},
			{"", "3"},
			{"MBQ", "4"},
			{"", "5"},
		},
	}

	table.ForwardFill("group")

	want := []string{"Rebar", "Rebar", "Rebar", "MBQ", "MBQ"}
	for i, row := range table.Rows {
		if row[0] != want[i] {
			t.Errorf("satır %d: %q beklenir, %q geldi", i, want[i], row[0])
		}
	}
}

func TestDropEmptyColumns(t *testing.T) {
	table := &Table{
		Columns: []string{"a", "bos", "b"},
		Rows: [][]string{
			{"1", "", "x"},
			{"2", "", "y"},
		},
	}

	table.DropEmptyColumns()

	if len(table.Columns) != 2 || table.Columns[0] != "a" || table.Columns[1] != "b" {
		t.Errorf("boş kolon düşmeli: %v", table.Columns)
	}
	if len(table.Rows[0]) != 2 {
		t.Errorf("satırlar da daralmalı: %v", table.Rows[0])
	}
}

func TestParseDate_Formats(t *testing.T) {
	cases := map[string]time.Time{
		"2024-09-24":          time.Date(2024, 9, 24, 0, 0, 0, 0, time.UTC),
		"2024-09-24 00:00:00": time.Date(2024, 9, 24, 0, 0, 0, 0, time.UTC),
		"09-24-24":            time.Date(2024, 9, 24, 0, 0, 0, 0, time.UTC),
		"24.09.2024":          time.Date(2024, 9, 24, 0, 0, 0, 0, time.UTC),
	}

	for input, want := range cases {
		got, err := ParseDate(input)
		if err != nil {
			t.Errorf("%q çözümlenmeliydi: %v", input, err)
			continue
		}
		if !got.Equal(want) {
			t.Errorf("%q: %v beklenir, %v geldi", input, want, got)
		}
	}

	if _, err := ParseDate("tarih değil"); err == nil {
		t.Error("geçersiz tarih hata vermeli")
	}
	if _, err := ParseDate(""); err == nil {
		t.Error("boş tarih hata vermeli")
	}
}

func TestParseSchedule_TripletLayout(t *testing.T) {
	csvData := strings.Join([]string{
		"Günlük Döküm Planı,,,,,",
		"2024-09-05,,,2024-09-06,,",
		"Start,Grade,Mould,Start,Grade,Mould",
		"08:00,B500A,130x130,09:00,B500B,140x140",
		"10:00,-,130x130,11:00,Grade,140x140",
		"12:00,B500C,150x150,,,",
	}, "\n")

	entries, err := ParseSchedule("plan.csv", strings.NewReader(csvData))
	if err != nil {
		t.Fatalf("beklenmeyen hata: %v", err)
	}

	day1 := time.Date(2024, 9, 5, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 9, 6, 0, 0, 0, 0, time.UTC)

	if len(entries[day1]) != 2 {
		t.Errorf("ilk gün 2 kayıt beklenir, %d geldi: %+v", len(entries[day1]), entries[day1])
	}
	if len(entries[day2]) != 1 {
		t.Errorf("ikinci gün 1 kayıt beklenir, %d geldi: %+v", len(entries[day2]), entries[day2])
	}

	first := entries[day1][0]
	if first.StartTime != "08:00" || first.Grade != "B500A" || first.MouldSize != "130x130" {
		t.Errorf("beklenmeyen kayıt: %+v", first)
	}

	// "-" ve "Grade" hücreleri atlanmış olmalı
	for _, e := range entries[day1] {
		if e.Grade == "-" || e.Grade == "Grade" {
			t.Errorf("placeholder kalite atlanmalıydı: %+v", e)
		}
	}
}

func TestParseSchedule_BadDateHeaderRejected(t *testing.T) {
	csvData := strings.Join([]string{
		"başlık,,",
		"tarih değil,,",
		",,",
		"08:00,B500A,130x130",
	}, "\n")

	if _, err := ParseSchedule("plan.csv", strings.NewReader(csvData)); err == nil {
		t.Error("bozuk tarih başlığı hata vermeli")
	}
}

func TestParseSchedule_TooShortRejected(t *testing.T) {
	if _, err := ParseSchedule("plan.csv", strings.NewReader("a,b,c\n1,2,3\n")); err == nil {
		t.Error("4 satırdan kısa dosya hata vermeli")
	}
}
