package spreadsheet

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"manajemen-toko/src/models"
)

func sampleStore() *models.Store {
	return &models.Store{
		ID:   "toko-uji",
		Name: "Toko Uji: Cabang/1",
		ItemCategories: []models.ItemCategory{
			{ID: "cat-makanan", Name: "Makanan Ringan", Prefix: "MR"},
		},
		Units: []models.Unit{
			{ID: "u-pcs", Name: "Pcs"},
			{ID: "u-dus", Name: "Dus"},
		},
		AssetCategories: []models.AssetCategory{
			{ID: "ac-elektronik", Name: "Elektronik", Prefix: "ELK"},
		},
		Items: []models.Item{
			{ID: "item-1", SKU: "MR-001", Name: "Keripik Singkong", CategoryID: "cat-makanan", SellingUnitID: "u-pcs", PurchaseUnitID: "u-dus", ConversionRate: 24, PurchasePrice: decimal.RequireFromString("104.1667"), SellingPrice: decimal.NewFromInt(6000)},
			{ID: "item-2", SKU: "MR-002", Name: "Biskuit Coklat", CategoryID: "cat-hilang", SellingUnitID: "u-pcs", PurchaseUnitID: "u-pcs", ConversionRate: 1, PurchasePrice: decimal.NewFromInt(3000), SellingPrice: decimal.NewFromInt(4500)},
		},
		Inventory: []models.StoreInventory{
			{ItemID: "item-1", RecordedStock: 50},
			{ItemID: "item-2", RecordedStock: 7},
		},
		Assets: []models.Asset{
			{ID: "asset-1", Code: "ELK-001", Name: "Kulkas Display", CategoryID: "ac-elektronik", PurchaseDate: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Value: decimal.NewFromInt(3000000), Condition: models.ConditionBagus},
		},
	}
}

func workbookBytes(t *testing.T, build func(f *excelize.File)) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	build(f)
	buf, err := f.WriteToBuffer()
	require.NoError(t, err)
	return bytes.NewReader(buf.Bytes())
}

// ============ TEST SCENARIO 1: STORE EXPORT / IMPORT ============
func TestStoreWorkbook(t *testing.T) {
	t.Run("SC1: Exported workbook reads back through the same mapping", func(t *testing.T) {
		file, err := ExportStore(sampleStore())
		require.NoError(t, err)
		assert.Equal(t, "Toko Uji- Cabang-1-Semua Data.xlsx", file.Name)

		wb, err := ReadWorkbook(bytes.NewReader(file.Data))
		require.NoError(t, err)
		require.Len(t, wb.Items, 2)
		require.Len(t, wb.Assets, 1)
		assert.Empty(t, wb.Costs)

		first := wb.Items[0]
		assert.Equal(t, "Barang", first.Sheet)
		assert.Equal(t, 2, first.Row)
		assert.Equal(t, "MR-001", first.SKU)
		assert.Equal(t, "Makanan Ringan", first.Category)
		assert.Equal(t, "Pcs", first.Unit)
		require.NotNil(t, first.RecordedStock)
		assert.Equal(t, 50, *first.RecordedStock)
		assert.True(t, first.PurchasePrice.Equal(decimal.RequireFromString("104.1667")), first.PurchasePrice.String())
		assert.True(t, first.SellingPrice.Equal(decimal.NewFromInt(6000)))

		assert.Equal(t, "", wb.Items[1].Category, "dangling category exports blank")

		asset := wb.Assets[0]
		assert.Equal(t, "ELK-001", asset.Code)
		assert.Equal(t, "Bagus", asset.Condition)
		assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), asset.PurchaseDate)
		assert.True(t, asset.Value.Equal(decimal.NewFromInt(3000000)))
	})

	t.Run("SC2: Empty collections get no sheet", func(t *testing.T) {
		file, err := ExportStore(sampleStore())
		require.NoError(t, err)

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, []string{"Barang", "Aset"}, f.GetSheetList())
	})

	t.Run("SC3: Single sheet export is named after the sheet", func(t *testing.T) {
		file, err := ExportStore(sampleStore(), EntityAssets)
		require.NoError(t, err)
		assert.Equal(t, "Toko Uji- Cabang-1-Aset.xlsx", file.Name)
	})

	t.Run("SC4: Nothing to export", func(t *testing.T) {
		_, err := ExportStore(&models.Store{Name: "Kosong"})
		assert.ErrorIs(t, err, ErrNothingToExport)

		_, err = ExportStore(sampleStore(), EntityCosts)
		assert.ErrorIs(t, err, ErrNothingToExport)
	})

	t.Run("SC5: Unknown entity is rejected", func(t *testing.T) {
		_, err := ExportStore(sampleStore(), Entity("kas"))
		assert.ErrorIs(t, err, ErrUnknownEntity)
	})
}

// ============ TEST SCENARIO 2: IMPORT PARSING ============
func TestReadWorkbook(t *testing.T) {
	t.Run("SC1: Sheets are matched by name fragment and headers ignore case", func(t *testing.T) {
		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Data Biaya 2024"))
			require.NoError(t, f.SetSheetRow("Data Biaya 2024", "A1", &[]interface{}{"nama biaya", " JUMLAH ", "Frekuensi", "Kolom Lain"}))
			require.NoError(t, f.SetSheetRow("Data Biaya 2024", "A2", &[]interface{}{"Sewa Tempat", 12000000, "Tahunan", "x"}))
			require.NoError(t, f.SetSheetRow("Data Biaya 2024", "A4", &[]interface{}{"Listrik", 750000}))
		})

		wb, err := ReadWorkbook(r)
		require.NoError(t, err)
		require.Len(t, wb.Costs, 2)
		assert.Equal(t, models.FrequencyTahunan, wb.Costs[0].Frequency)
		assert.True(t, wb.Costs[0].Amount.Equal(decimal.NewFromInt(12000000)))
		assert.Equal(t, 4, wb.Costs[1].Row, "blank row 3 is skipped, numbering keeps sheet rows")
		assert.Equal(t, models.FrequencyBulanan, wb.Costs[1].Frequency, "blank frequency defaults to bulanan")
	})

	t.Run("SC2: A bad number points at its sheet row and column", func(t *testing.T) {
		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Barang"))
			require.NoError(t, f.SetSheetRow("Barang", "A1", &[]interface{}{"SKU", "Nama Barang", "Harga Jual"}))
			require.NoError(t, f.SetSheetRow("Barang", "A2", &[]interface{}{"A-1", "Teh", 3500}))
			require.NoError(t, f.SetSheetRow("Barang", "A3", &[]interface{}{"A-2", "Kopi", "murah"}))
		})

		_, err := ReadWorkbook(r)
		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr), "got %v", err)
		assert.Equal(t, "Barang", rowErr.Sheet)
		assert.Equal(t, 3, rowErr.Row)
		assert.Equal(t, "Harga Jual", rowErr.Column)
		assert.ErrorIs(t, err, ErrInvalidNumber)
	})

	t.Run("SC3: Fractional stock is rejected", func(t *testing.T) {
		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Barang"))
			require.NoError(t, f.SetSheetRow("Barang", "A1", &[]interface{}{"Nama Barang", "Stok Tercatat"}))
			require.NoError(t, f.SetSheetRow("Barang", "A2", &[]interface{}{"Teh", 2.5}))
		})
		_, err := ReadWorkbook(r)
		assert.ErrorIs(t, err, ErrInvalidNumber)
	})

	t.Run("SC4: Missing name column", func(t *testing.T) {
		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Aset"))
			require.NoError(t, f.SetSheetRow("Aset", "A1", &[]interface{}{"Kode", "Nilai"}))
			require.NoError(t, f.SetSheetRow("Aset", "A2", &[]interface{}{"AST-001", 1000}))
		})
		_, err := ReadWorkbook(r)
		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, 1, rowErr.Row)
		assert.Equal(t, "Nama Aset", rowErr.Column)
		assert.ErrorIs(t, err, ErrMissingColumn)
	})

	t.Run("SC5: Date cells accept serials and day-first text", func(t *testing.T) {
		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Aset"))
			require.NoError(t, f.SetSheetRow("Aset", "A1", &[]interface{}{"Nama Aset", "Tgl Perolehan"}))
			require.NoError(t, f.SetSheetRow("Aset", "A2", &[]interface{}{"Etalase", 45366}))
			require.NoError(t, f.SetSheetRow("Aset", "A3", &[]interface{}{"Kursi", "15/03/2024"}))
			require.NoError(t, f.SetSheetRow("Aset", "A4", &[]interface{}{"Meja", ""}))
			require.NoError(t, f.SetSheetRow("Aset", "A5", &[]interface{}{"Rak", "kemarin"}))
		})
		_, err := ReadWorkbook(r)
		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, 5, rowErr.Row)
		assert.ErrorIs(t, err, ErrInvalidDate)

		r = workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetSheetName("Sheet1", "Aset"))
			require.NoError(t, f.SetSheetRow("Aset", "A1", &[]interface{}{"Nama Aset", "Tgl Perolehan"}))
			require.NoError(t, f.SetSheetRow("Aset", "A2", &[]interface{}{"Etalase", 45366}))
			require.NoError(t, f.SetSheetRow("Aset", "A3", &[]interface{}{"Kursi", "15/03/2024"}))
			require.NoError(t, f.SetSheetRow("Aset", "A4", &[]interface{}{"Meja"}))
		})
		wb, err := ReadWorkbook(r)
		require.NoError(t, err)
		require.Len(t, wb.Assets, 3)
		want := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
		assert.Equal(t, want, wb.Assets[0].PurchaseDate)
		assert.Equal(t, want, wb.Assets[1].PurchaseDate)
		assert.True(t, wb.Assets[2].PurchaseDate.IsZero())
	})

	t.Run("SC6: Entity filter and unknown workbooks", func(t *testing.T) {
		file, err := ExportStore(sampleStore())
		require.NoError(t, err)

		wb, err := ReadWorkbook(bytes.NewReader(file.Data), EntityAssets)
		require.NoError(t, err)
		assert.Empty(t, wb.Items)
		assert.Len(t, wb.Assets, 1)
		assert.Equal(t, 1, wb.Len())

		r := workbookBytes(t, func(f *excelize.File) {
			require.NoError(t, f.SetCellValue("Sheet1", "A1", "halo"))
		})
		_, err = ReadWorkbook(r)
		assert.ErrorIs(t, err, ErrNoKnownSheet)

		_, err = ReadWorkbook(bytes.NewReader([]byte("bukan excel")))
		assert.ErrorIs(t, err, ErrUnreadableWorkbook)
	})
}

// ============ TEST SCENARIO 3: OPNAME WORKBOOKS ============
func TestOpnameWorkbooks(t *testing.T) {
	t.Run("SC1: Filled offline form reads back as counts", func(t *testing.T) {
		file, err := ExportOpnameForm(sampleStore())
		require.NoError(t, err)
		assert.Equal(t, "Toko Uji- Cabang-1-Opname Offline.xlsx", file.Name)

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		assert.Equal(t, []string{FormItemSheet, FormAssetSheet}, f.GetSheetList())

		// Rows are sorted by name: Biskuit Coklat, Keripik Singkong.
		sku, err := f.GetCellValue(FormItemSheet, "A2")
		require.NoError(t, err)
		assert.Equal(t, "MR-002", sku)

		require.NoError(t, f.SetCellValue(FormItemSheet, "E2", 5))
		require.NoError(t, f.SetCellValue(FormItemSheet, "E3", 48))
		require.NoError(t, f.SetCellValue(FormAssetSheet, "D2", "rusak"))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		f.Close()

		counts, err := ReadOpnameForm(bytes.NewReader(buf.Bytes()))
		require.NoError(t, err)
		assert.Equal(t, map[string]int{"MR-002": 5, "MR-001": 48}, counts.Counts)
		assert.Equal(t, map[string]models.AssetCondition{"ELK-001": models.ConditionRusak}, counts.Conditions)
	})

	t.Run("SC2: Unfilled rows are absent and bad conditions are reported", func(t *testing.T) {
		file, err := ExportOpnameForm(sampleStore())
		require.NoError(t, err)

		counts, err := ReadOpnameForm(bytes.NewReader(file.Data))
		require.NoError(t, err)
		assert.Empty(t, counts.Counts)
		assert.Empty(t, counts.Conditions)

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		require.NoError(t, f.SetCellValue(FormAssetSheet, "D2", "Hilang"))
		buf, err := f.WriteToBuffer()
		require.NoError(t, err)
		f.Close()

		_, err = ReadOpnameForm(bytes.NewReader(buf.Bytes()))
		var rowErr *RowError
		require.True(t, errors.As(err, &rowErr))
		assert.Equal(t, FormAssetSheet, rowErr.Sheet)
		assert.Equal(t, 2, rowErr.Row)
	})

	t.Run("SC3: Report workbook omits the asset sheet without changes", func(t *testing.T) {
		session := models.OpnameSession{
			ID:     "op-1",
			Status: models.OpnameStatusCompleted,
			Items: []models.OpnameItem{
				{ItemID: "item-1", ItemName: "Keripik Singkong", Unit: "Pcs", InitialStock: 50, PhysicalCount: 48, Discrepancy: -2},
			},
		}
		file, err := ExportOpnameReport("Toko Uji", session)
		require.NoError(t, err)
		assert.Equal(t, "Toko Uji-Laporan_Stock_Opname.xlsx", file.Name)

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()
		assert.Equal(t, []string{"Hasil Cek Barang"}, f.GetSheetList())
		rows, err := f.GetRows("Hasil Cek Barang")
		require.NoError(t, err)
		assert.Equal(t, []string{"Nama", "Stok Awal", "Hitungan Fisik", "Selisih", "Satuan"}, rows[0])
		assert.Equal(t, []string{"Keripik Singkong", "50", "48", "-2", "Pcs"}, rows[1])

		session.AssetChanges = []models.OpnameAssetChange{
			{AssetID: "asset-1", AssetName: "Kulkas Display", OldCondition: models.ConditionBagus, NewCondition: models.ConditionRusak},
		}
		file, err = ExportOpnameReport("Toko Uji", session)
		require.NoError(t, err)
		g, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer g.Close()
		assert.Equal(t, []string{"Hasil Cek Barang", "Hasil Cek Aset"}, g.GetSheetList())
	})
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "a-b-c-d.xlsx", SanitizeFilename(`a/b\c?d.xlsx`))
	assert.Equal(t, "Toko -Kopi-", SanitizeFilename(` Toko "Kopi" `))
	assert.Equal(t, "Warung Makan", SanitizeFilename("Warung Makan"))
}
