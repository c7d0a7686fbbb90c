package tabular

import "fmt"

// Melt: Geniş formatı uzun formata çevirir. idCol sabit kalır; valueCols'taki
// her kolon için (id, varName, valueName) üçlüsünden bir satır üretilir.
// valueCols nil ise idCol dışındaki tüm kolonlar eritilir.
func (t *Table) Melt(idCol string, valueCols []string, varName, valueName string) (*Table, error) {
	idIdx := t.ColumnIndex(idCol)
	if idIdx < 0 {
		return nil, fmt.Errorf("kolon bulunamadı: %q", idCol)
	}

	if valueCols == nil {
		for _, col := range t.Columns {
			if col != idCol {
				valueCols = append(valueCols, col)
			}
		}
	}

	out := &Table{Columns: []string{idCol, varName, valueName}}
	for _, col := range valueCols {
		colIdx := t.ColumnIndex(col)
		if colIdx < 0 {
			return nil, fmt.Errorf("kolon bulunamadı: %q", col)
		}
		for _, row := range t.Rows {
			id := ""
			if idIdx < len(row) {
				id = row[idIdx]
			}
			value := ""
			if colIdx < len(row) {
				value = row[colIdx]
			}
			out.Rows = append(out.Rows, []string{id, col, value})
		}
	}
	return out, nil
}

// RenameColumn: Kolonu yeniden adlandırır; kolon yoksa sessizce geçer.
func (t *Table) RenameColumn(from, to string) {
	if idx := t.ColumnIndex(from); idx >= 0 {
		t.Columns[idx] = to
	}
}

// ForwardFill: Kolondaki boş hücrelere bir üstteki dolu değeri yayar
// (birleştirilmiş başlık hücreleri için).
func (t *Table) ForwardFill(col string) {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return
	}
	last := ""
	for _, row := range t.Rows {
		if idx >= len(row) {
			continue
		}
		if row[idx] == "" {
			row[idx] = last
		} else {
			last = row[idx]
		}
	}
}

// DropEmptyColumns: Hiçbir satırda değeri olmayan kolonları tablodan çıkarır.
func (t *Table) DropEmptyColumns() {
	keep := make([]int, 0, len(t.Columns))
	for i := range t.Columns {
		empty := true
		for _, row := range t.Rows {
			if i < len(row) && row[i] != "" {
				empty = false
				break
			}
		}
		if !empty {
			keep = append(keep, i)
		}
	}

	cols := make([]string, 0, len(keep))
	for _, i := range keep {
		cols = append(cols, t.Columns[i])
	}

	rows := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		newRow := make([]string, 0, len(keep))
		for _, i := range keep {
			if i < len(row) {
				newRow = append(newRow, row[i])
			} else {
				newRow = append(newRow, "")
			}
		}
		rows = append(rows, newRow)
	}

	t.Columns = cols
	t.Rows = rows
}
