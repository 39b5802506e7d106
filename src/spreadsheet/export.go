package spreadsheet

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
)

const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const (
	dateLayout    = "2006-01-02"
	maxColWidth   = 50
	defaultSheet  = "Sheet1"
	formCountHead = "Stok Terkini (Isi di sini)"
	formCondHead  = "Kondisi (Isi: Bagus/Normal/Rusak)"
)

// ErrNothingToExport is returned when every requested sheet is empty.
var (
	ErrNothingToExport = errors.New("tidak ada data untuk diekspor")
	ErrUnknownEntity   = errors.New("unknown entity")
)

// File is a rendered workbook.
type File struct {
	Name string
	Data []byte
}

type sheetData struct {
	name    string
	headers []string
	rows    [][]interface{}
}

var unsafeFilenameChars = regexp.MustCompile(`[/\\?%*:|"<>]`)

// SanitizeFilename replaces characters that are not allowed in file names.
func SanitizeFilename(name string) string {
	return strings.TrimSpace(unsafeFilenameChars.ReplaceAllString(name, "-"))
}

// ============ STORE DATA ============

// ExportStore - Write one sheet per requested entity, all three when none is given.
// Empty collections get no sheet.
func ExportStore(store *models.Store, entities ...Entity) (*File, error) {
	if len(entities) == 0 {
		entities = []Entity{EntityItems, EntityAssets, EntityCosts}
	}

	sheets := make([]sheetData, 0, len(entities))
	for _, e := range entities {
		m, ok := MappingFor(e)
		if !ok {
			return nil, fmt.Errorf("%w %q", ErrUnknownEntity, e)
		}
		sheets = append(sheets, sheetData{name: m.Sheet, headers: m.Headers(), rows: entityRows(store, m)})
	}

	suffix := "Semua Data"
	if len(entities) == 1 {
		suffix = sheets[0].name
	}
	return render(store.Name+"-"+suffix+".xlsx", sheets)
}

func entityRows(store *models.Store, m Mapping) [][]interface{} {
	var records []map[string]interface{}
	switch m.Entity {
	case EntityItems:
		for _, item := range store.Items {
			records = append(records, map[string]interface{}{
				FieldSKU:           item.SKU,
				FieldName:          item.Name,
				FieldDescription:   item.Description,
				FieldCategory:      itemCategoryName(store, item.CategoryID),
				FieldUnit:          unitName(store, item.SellingUnitID),
				FieldRecordedStock: store.RecordedStock(item.ID),
				FieldPurchasePrice: number(item.PurchasePrice),
				FieldSellingPrice:  number(item.SellingPrice),
			})
		}
	case EntityAssets:
		for _, a := range store.Assets {
			date := ""
			if !a.PurchaseDate.IsZero() {
				date = a.PurchaseDate.Format(dateLayout)
			}
			records = append(records, map[string]interface{}{
				FieldCode:         a.Code,
				FieldName:         a.Name,
				FieldDescription:  a.Description,
				FieldCategory:     assetCategoryName(store, a.CategoryID),
				FieldCondition:    string(a.Condition),
				FieldPurchaseDate: date,
				FieldValue:        number(a.Value),
			})
		}
	case EntityCosts:
		for _, c := range store.Costs {
			records = append(records, map[string]interface{}{
				FieldName:        c.Name,
				FieldDescription: c.Description,
				FieldAmount:      number(c.Amount),
				FieldFrequency:   string(c.Frequency),
			})
		}
	}

	rows := make([][]interface{}, 0, len(records))
	for _, rec := range records {
		row := make([]interface{}, len(m.Columns))
		for i, c := range m.Columns {
			row[i] = rec[c.Field]
		}
		rows = append(rows, row)
	}
	return rows
}

// ============ OPNAME ============

// ExportOpnameForm - Blank counting form for offline stock opname. The SKU and
// Kode columns let a filled form be read back with ReadOpnameForm.
func ExportOpnameForm(store *models.Store) (*File, error) {
	sheet := engine.BuildSheet(store)

	items := sheetData{
		name:    FormItemSheet,
		headers: []string{"SKU", "Nama", "Satuan", "Stok Awal", formCountHead, "Selisih"},
	}
	for _, it := range sheet.Items {
		items.rows = append(items.rows, []interface{}{it.SKU, it.Name, it.Unit, it.RecordedStock, "", ""})
	}

	assets := sheetData{
		name:    FormAssetSheet,
		headers: []string{"Kode", "Aset", "Kondisi Awal", formCondHead},
	}
	for _, a := range sheet.Assets {
		assets.rows = append(assets.rows, []interface{}{a.Code, a.Name, string(a.Condition), ""})
	}

	return render(store.Name+"-Opname Offline.xlsx", []sheetData{items, assets})
}

// ExportOpnameReport - Result workbook of a completed session. The asset sheet
// only appears when a condition changed.
func ExportOpnameReport(storeName string, session models.OpnameSession) (*File, error) {
	items := sheetData{
		name:    "Hasil Cek Barang",
		headers: []string{"Nama", "Stok Awal", "Hitungan Fisik", "Selisih", "Satuan"},
	}
	for _, it := range session.Items {
		items.rows = append(items.rows, []interface{}{it.ItemName, it.InitialStock, it.PhysicalCount, it.Discrepancy, it.Unit})
	}

	assets := sheetData{
		name:    "Hasil Cek Aset",
		headers: []string{"Aset", "Kondisi Awal", "Kondisi Baru"},
	}
	for _, c := range session.AssetChanges {
		assets.rows = append(assets.rows, []interface{}{c.AssetName, string(c.OldCondition), string(c.NewCondition)})
	}

	return render(storeName+"-Laporan_Stock_Opname.xlsx", []sheetData{items, assets})
}

// ============ WORKBOOK ============
func render(filename string, sheets []sheetData) (*File, error) {
	f := excelize.NewFile()
	defer f.Close()

	written := 0
	for _, s := range sheets {
		if len(s.rows) == 0 {
			continue
		}
		var err error
		if written == 0 {
			err = f.SetSheetName(defaultSheet, s.name)
		} else {
			_, err = f.NewSheet(s.name)
		}
		if err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s); err != nil {
			return nil, fmt.Errorf("write sheet %s: %w", s.name, err)
		}
		written++
	}
	if written == 0 {
		return nil, ErrNothingToExport
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return &File{Name: SanitizeFilename(filename), Data: buf.Bytes()}, nil
}

func writeSheet(f *excelize.File, s sheetData) error {
	header := make([]interface{}, len(s.headers))
	widths := make([]int, len(s.headers))
	for i, h := range s.headers {
		header[i] = h
		widths[i] = utf8.RuneCountInString(h)
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return err
	}

	for r, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, r+2)
		if err != nil {
			return err
		}
		row := row
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return err
		}
		for i, v := range row {
			if i < len(widths) {
				if n := utf8.RuneCountInString(fmt.Sprint(v)); n > widths[i] {
					widths[i] = n
				}
			}
		}
	}

	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		width := w + 2
		if width > maxColWidth {
			width = maxColWidth
		}
		if err := f.SetColWidth(s.name, col, col, float64(width)); err != nil {
			return err
		}
	}
	return nil
}

// number keeps money cells numeric so spreadsheet formulas work on them.
func number(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

// Dangling references export as blank cells so a re-import does not create
// a category or unit literally named N/A.
func itemCategoryName(store *models.Store, id string) string {
	if c, ok := store.ItemCategory(id); ok {
		return c.Name
	}
	return ""
}

func assetCategoryName(store *models.Store, id string) string {
	if c, ok := store.AssetCategory(id); ok {
		return c.Name
	}
	return ""
}

func unitName(store *models.Store, id string) string {
	for _, u := range store.Units {
		if u.ID == id {
			return u.Name
		}
	}
	return ""
}
