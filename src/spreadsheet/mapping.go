package spreadsheet

import "strings"

// Entity names one of the store collections that round-trips through a workbook.
type Entity string

const (
	EntityItems  Entity = "items"
	EntityAssets Entity = "assets"
	EntityCosts  Entity = "costs"
)

// ============ FIELD NAMES ============
const (
	FieldSKU           = "sku"
	FieldCode          = "code"
	FieldName          = "name"
	FieldDescription   = "description"
	FieldCategory      = "category"
	FieldUnit          = "unit"
	FieldRecordedStock = "recordedStock"
	FieldPurchasePrice = "purchasePrice"
	FieldSellingPrice  = "sellingPrice"
	FieldCondition     = "condition"
	FieldPurchaseDate  = "purchaseDate"
	FieldValue         = "value"
	FieldAmount        = "amount"
	FieldFrequency     = "frequency"
)

// Column ties a domain field to the header text users see.
type Column struct {
	Field  string
	Header string
}

// Mapping is the column layout of one entity sheet. Match is the lowercase
// fragment a sheet name has to contain to be read as this entity.
type Mapping struct {
	Entity  Entity
	Sheet   string
	Match   string
	Key     string
	Columns []Column
}

var ItemMapping = Mapping{
	Entity: EntityItems,
	Sheet:  "Barang",
	Match:  "barang",
	Key:    FieldName,
	Columns: []Column{
		{FieldSKU, "SKU"},
		{FieldName, "Nama Barang"},
		{FieldDescription, "Keterangan"},
		{FieldCategory, "Kategori"},
		{FieldUnit, "Satuan"},
		{FieldRecordedStock, "Stok Tercatat"},
		{FieldPurchasePrice, "Harga Beli"},
		{FieldSellingPrice, "Harga Jual"},
	},
}

var AssetMapping = Mapping{
	Entity: EntityAssets,
	Sheet:  "Aset",
	Match:  "aset",
	Key:    FieldName,
	Columns: []Column{
		{FieldCode, "Kode"},
		{FieldName, "Nama Aset"},
		{FieldDescription, "Keterangan"},
		{FieldCategory, "Kategori"},
		{FieldCondition, "Kondisi"},
		{FieldPurchaseDate, "Tgl Perolehan"},
		{FieldValue, "Nilai"},
	},
}

var CostMapping = Mapping{
	Entity: EntityCosts,
	Sheet:  "Biaya",
	Match:  "biaya",
	Key:    FieldName,
	Columns: []Column{
		{FieldName, "Nama Biaya"},
		{FieldDescription, "Keterangan"},
		{FieldAmount, "Jumlah"},
		{FieldFrequency, "Frekuensi"},
	},
}

// Mappings lists every entity in workbook order.
var Mappings = []Mapping{ItemMapping, AssetMapping, CostMapping}

// MappingFor returns the layout of an entity.
func MappingFor(e Entity) (Mapping, bool) {
	for _, m := range Mappings {
		if m.Entity == e {
			return m, true
		}
	}
	return Mapping{}, false
}

// MappingForSheet picks the layout whose fragment the sheet name contains.
func MappingForSheet(sheet string) (Mapping, bool) {
	name := strings.ToLower(sheet)
	for _, m := range Mappings {
		if strings.Contains(name, m.Match) {
			return m, true
		}
	}
	return Mapping{}, false
}

func (m Mapping) Headers() []string {
	out := make([]string, len(m.Columns))
	for i, c := range m.Columns {
		out[i] = c.Header
	}
	return out
}

func (m Mapping) Header(field string) string {
	for _, c := range m.Columns {
		if c.Field == field {
			return c.Header
		}
	}
	return field
}

// FieldOf resolves a header cell, ignoring case and surrounding spaces.
func (m Mapping) FieldOf(header string) (string, bool) {
	header = strings.TrimSpace(header)
	for _, c := range m.Columns {
		if strings.EqualFold(c.Header, header) {
			return c.Field, true
		}
	}
	return "", false
}
