package tabular

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

// Table: Kolon isimleriyle normalize edilmiş satır tablosu.
// Eksik hücreler boş string olarak tutulur.
type Table struct {
	Columns []string
	Rows    [][]string
}

// ColumnIndex: Kolonun indeksini döner, yoksa -1.
func (t *Table) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

func (t *Table) HasColumn(name string) bool {
	return t.ColumnIndex(name) >= 0
}

// Cell: Satırdan kolon değerini okur; kolon yoksa veya satır kısaysa boş döner.
func (t *Table) Cell(row []string, name string) string {
	idx := t.ColumnIndex(name)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

// ReadSheet: Spreadsheet dosyasını (.xlsx veya .csv) tabloya çevirir.
// skip kadar baştaki satır atlanır, sonraki satır başlık kabul edilir.
func ReadSheet(filename string, r io.Reader, skip int) (*Table, error) {
	rows, err := ReadRawRows(filename, r)
	if err != nil {
		return nil, err
	}

	if len(rows) <= skip {
		return nil, fmt.Errorf("dosyada başlık satırı yok")
	}
	rows = rows[skip:]

	header := make([]string, len(rows[0]))
	for i, cell := range rows[0] {
		header[i] = strings.TrimSpace(cell)
	}

	table := &Table{Columns: header}
	for _, raw := range rows[1:] {
		// Satırı başlık genişliğine sabitle (kısa satırlar boş hücreyle doldurulur)
		row := make([]string, len(header))
		for i := range header {
			if i < len(raw) {
				row[i] = strings.TrimSpace(raw[i])
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// ReadRawRows: Dosyayı ham satır matrisi olarak okur. .xlsx için excelize,
// .csv için encoding/csv kullanılır; başka uzantı desteklenmez.
func ReadRawRows(filename string, r io.Reader) ([][]string, error) {
	name := strings.ToLower(filename)

	switch {
	case strings.HasSuffix(name, ".xlsx"):
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, fmt.Errorf("excel dosyası okunamadı: %w", err)
		}
		defer f.Close()

		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("excel dosyasında sheet bulunamadı")
		}
		rows, err := f.GetRows(sheets[0])
		if err != nil {
			return nil, fmt.Errorf("sheet okunamadı: %w", err)
		}
		return rows, nil

	case strings.HasSuffix(name, ".csv"):
		reader := csv.NewReader(r)
		reader.FieldsPerRecord = -1 // satır uzunlukları değişken olabilir
		rows, err := reader.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("csv dosyası okunamadı: %w", err)
		}
		return rows, nil

	default:
		return nil, fmt.Errorf("desteklenmeyen dosya formatı: %s", filename)
	}
}

// Spreadsheet hücrelerinde karşılaşılan tarih formatları. Excel hücre
// biçimine göre farklı string üretir, hepsi sırayla denenir.
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"01-02-06",
	"1/2/06 15:04",
	"01/02/2006",
	"1/2/2006",
	"02.01.2006",
	"2.1.2006",
	time.RFC3339,
}

// ParseDate: Hücre değerini tarihe çevirir; saat bileşeni atılır.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("boş tarih")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("tarih çözümlenemedi: %q", s)
}
