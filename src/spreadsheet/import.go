package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"manajemen-toko/src/models"
)

const (
	FormItemSheet  = "Pemeriksaan Barang"
	FormAssetSheet = "Pemeriksaan Aset"
)

var (
	ErrNoKnownSheet  = errors.New("workbook has no Barang, Aset or Biaya sheet")
	ErrMissingColumn = errors.New("missing column")
	ErrInvalidNumber = errors.New("not a number")
	ErrInvalidDate   = errors.New("not a date")

	ErrUnreadableWorkbook = errors.New("file is not a readable xlsx workbook")
)

// RowError points at the sheet row a value came from. Row is 1-based with the
// header on row 1.
type RowError struct {
	Sheet  string
	Row    int
	Column string
	Err    error
}

func (e *RowError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("sheet %s row %d: %v", e.Sheet, e.Row, e.Err)
	}
	return fmt.Sprintf("sheet %s row %d column %s: %v", e.Sheet, e.Row, e.Column, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }

// ============ PARSED ROWS ============

// ItemRow is one Barang row. RecordedStock is nil when the cell was blank.
type ItemRow struct {
	Sheet         string
	Row           int
	SKU           string
	Name          string
	Description   string
	Category      string
	Unit          string
	RecordedStock *int
	PurchasePrice decimal.Decimal
	SellingPrice  decimal.Decimal
}

// AssetRow is one Aset row. Condition is the raw cell text and PurchaseDate
// is zero when the cell was blank.
type AssetRow struct {
	Sheet        string
	Row          int
	Code         string
	Name         string
	Description  string
	Category     string
	Condition    string
	PurchaseDate time.Time
	Value        decimal.Decimal
}

type CostRow struct {
	Sheet       string
	Row         int
	Name        string
	Description string
	Amount      decimal.Decimal
	Frequency   models.CostFrequency
}

type Workbook struct {
	Items  []ItemRow
	Assets []AssetRow
	Costs  []CostRow
}

func (w *Workbook) Len() int {
	return len(w.Items) + len(w.Assets) + len(w.Costs)
}

// ============ STORE DATA ============

// ReadWorkbook - Parse every sheet whose name contains barang, aset or biaya.
// When entities are given only their sheets are read. Blank rows are skipped.
func ReadWorkbook(r io.Reader, entities ...Entity) (*Workbook, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	wb := &Workbook{}
	found := false
	for _, sheet := range f.GetSheetList() {
		m, ok := MappingForSheet(sheet)
		if !ok || !wanted(m.Entity, entities) {
			continue
		}
		found = true

		rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
		if err != nil {
			return nil, fmt.Errorf("read sheet %s: %w", sheet, err)
		}
		if len(rows) == 0 {
			continue
		}
		t, err := newTable(sheet, m, rows[0])
		if err != nil {
			return nil, err
		}

		for i, cells := range rows[1:] {
			if blank(cells) {
				continue
			}
			rec := t.record(i+2, cells)
			switch m.Entity {
			case EntityItems:
				row, err := parseItem(rec)
				if err != nil {
					return nil, err
				}
				wb.Items = append(wb.Items, row)
			case EntityAssets:
				row, err := parseAsset(rec)
				if err != nil {
					return nil, err
				}
				wb.Assets = append(wb.Assets, row)
			case EntityCosts:
				row, err := parseCost(rec)
				if err != nil {
					return nil, err
				}
				wb.Costs = append(wb.Costs, row)
			}
		}
	}
	if !found {
		return nil, ErrNoKnownSheet
	}
	return wb, nil
}

func parseItem(rec record) (ItemRow, error) {
	row := ItemRow{
		Sheet:       rec.sheet,
		Row:         rec.row,
		SKU:         rec.text(FieldSKU),
		Name:        rec.text(FieldName),
		Description: rec.text(FieldDescription),
		Category:    rec.text(FieldCategory),
		Unit:        rec.text(FieldUnit),
	}
	var err error
	if row.RecordedStock, err = rec.optionalInt(FieldRecordedStock); err != nil {
		return row, err
	}
	if row.PurchasePrice, err = rec.money(FieldPurchasePrice); err != nil {
		return row, err
	}
	if row.SellingPrice, err = rec.money(FieldSellingPrice); err != nil {
		return row, err
	}
	return row, nil
}

func parseAsset(rec record) (AssetRow, error) {
	row := AssetRow{
		Sheet:       rec.sheet,
		Row:         rec.row,
		Code:        rec.text(FieldCode),
		Name:        rec.text(FieldName),
		Description: rec.text(FieldDescription),
		Category:    rec.text(FieldCategory),
		Condition:   rec.text(FieldCondition),
	}
	var err error
	if row.PurchaseDate, err = rec.date(FieldPurchaseDate); err != nil {
		return row, err
	}
	if row.Value, err = rec.money(FieldValue); err != nil {
		return row, err
	}
	return row, nil
}

func parseCost(rec record) (CostRow, error) {
	row := CostRow{
		Sheet:       rec.sheet,
		Row:         rec.row,
		Name:        rec.text(FieldName),
		Description: rec.text(FieldDescription),
		Frequency:   models.CostFrequency(strings.ToLower(rec.text(FieldFrequency))),
	}
	if row.Frequency == "" {
		row.Frequency = models.FrequencyBulanan
	}
	var err error
	if row.Amount, err = rec.money(FieldAmount); err != nil {
		return row, err
	}
	return row, nil
}

// ============ OPNAME FORM ============

// OpnameCounts are the values filled into an offline opname form, keyed by
// SKU and asset code. Rows left blank are absent.
type OpnameCounts struct {
	Counts     map[string]int
	Conditions map[string]models.AssetCondition
}

// ReadOpnameForm - Read back a form produced by ExportOpnameForm.
func ReadOpnameForm(r io.Reader) (*OpnameCounts, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnreadableWorkbook, err)
	}
	defer f.Close()

	out := &OpnameCounts{Counts: map[string]int{}, Conditions: map[string]models.AssetCondition{}}

	itemForm := Mapping{Sheet: FormItemSheet, Key: FieldSKU, Columns: []Column{
		{FieldSKU, "SKU"},
		{FieldRecordedStock, formCountHead},
	}}
	err = readForm(f, itemForm, func(rec record) error {
		n, err := rec.optionalInt(FieldRecordedStock)
		if err != nil || n == nil {
			return err
		}
		out.Counts[rec.text(FieldSKU)] = *n
		return nil
	})
	if err != nil {
		return nil, err
	}

	assetForm := Mapping{Sheet: FormAssetSheet, Key: FieldCode, Columns: []Column{
		{FieldCode, "Kode"},
		{FieldCondition, formCondHead},
	}}
	err = readForm(f, assetForm, func(rec record) error {
		raw := rec.text(FieldCondition)
		if raw == "" {
			return nil
		}
		c, ok := models.ParseAssetCondition(raw)
		if !ok {
			return rec.fail(FieldCondition, fmt.Errorf("unknown condition %q", raw))
		}
		out.Conditions[rec.text(FieldCode)] = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func readForm(f *excelize.File, m Mapping, fn func(rec record) error) error {
	if idx, err := f.GetSheetIndex(m.Sheet); err != nil || idx < 0 {
		return err
	}
	rows, err := f.GetRows(m.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return fmt.Errorf("read sheet %s: %w", m.Sheet, err)
	}
	if len(rows) == 0 {
		return nil
	}
	t, err := newTable(m.Sheet, m, rows[0])
	if err != nil {
		return err
	}
	for i, cells := range rows[1:] {
		if blank(cells) {
			continue
		}
		if err := fn(t.record(i+2, cells)); err != nil {
			return err
		}
	}
	return nil
}

// ============ CELL PARSING ============

type table struct {
	sheet   string
	mapping Mapping
	columns map[int]string
}

func newTable(sheet string, m Mapping, header []string) (*table, error) {
	t := &table{sheet: sheet, mapping: m, columns: map[int]string{}}
	hasKey := false
	for i, h := range header {
		if field, ok := m.FieldOf(h); ok {
			t.columns[i] = field
			hasKey = hasKey || field == m.Key
		}
	}
	if !hasKey {
		return nil, &RowError{Sheet: sheet, Row: 1, Column: m.Header(m.Key), Err: ErrMissingColumn}
	}
	return t, nil
}

func (t *table) record(row int, cells []string) record {
	values := make(map[string]string, len(t.columns))
	for i, field := range t.columns {
		if i < len(cells) {
			values[field] = strings.TrimSpace(cells[i])
		}
	}
	return record{sheet: t.sheet, row: row, mapping: t.mapping, values: values}
}

type record struct {
	sheet   string
	row     int
	mapping Mapping
	values  map[string]string
}

func (r record) text(field string) string {
	return r.values[field]
}

func (r record) fail(field string, err error) error {
	return &RowError{Sheet: r.sheet, Row: r.row, Column: r.mapping.Header(field), Err: err}
}

// money treats a blank cell as zero.
func (r record) money(field string) (decimal.Decimal, error) {
	raw := r.text(field)
	if raw == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, r.fail(field, fmt.Errorf("%w: %q", ErrInvalidNumber, raw))
	}
	return d, nil
}

func (r record) optionalInt(field string) (*int, error) {
	raw := r.text(field)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() {
		return nil, r.fail(field, fmt.Errorf("%w: %q", ErrInvalidNumber, raw))
	}
	n := int(d.IntPart())
	return &n, nil
}

var dateLayouts = []string{dateLayout, "2006/01/02", "02/01/2006", "02-01-2006", time.RFC3339}

// date accepts ISO and day-first text dates as well as raw spreadsheet serials.
func (r record) date(field string) (time.Time, error) {
	raw := r.text(field)
	if raw == "" {
		return time.Time{}, nil
	}
	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		t, err := excelize.ExcelDateToTime(serial, false)
		if err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, r.fail(field, fmt.Errorf("%w: %q", ErrInvalidDate, raw))
}

func wanted(e Entity, entities []Entity) bool {
	if len(entities) == 0 {
		return true
	}
	for _, x := range entities {
		if x == e {
			return true
		}
	}
	return false
}

func blank(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
