package services

import (
	"time"

	"github.com/shopspring/decimal"

	"manajemen-toko/src/models"
)

// DefaultStores - Sample stores used to fill an empty database. Asset purchase
// dates are one or two years before now.
func DefaultStores(now time.Time) []models.Store {
	oneYearAgo := truncateDay(now.AddDate(-1, 0, 0))
	twoYearsAgo := truncateDay(now.AddDate(-2, 0, 0))

	return []models.Store{
		{
			ID:      "toko-kelontong-berkah",
			Name:    "Toko Kelontong Berkah",
			Address: "Jl. Pahlawan No. 123, Surabaya",
			ItemCategories: []models.ItemCategory{
				{ID: "ic-tkb-1", Name: "Makanan Ringan", Prefix: "MR"},
				{ID: "ic-tkb-2", Name: "Minuman", Prefix: "MNM"},
				{ID: "ic-tkb-3", Name: "Sembako", Prefix: "SMK"},
				{ID: "ic-tkb-4", Name: "Kebutuhan Dapur", Prefix: "KBD"},
			},
			Units: []models.Unit{
				{ID: "u-tkb-1", Name: "Pcs"},
				{ID: "u-tkb-2", Name: "Botol"},
				{ID: "u-tkb-3", Name: "Kg"},
				{ID: "u-tkb-4", Name: "Liter"},
				{ID: "u-tkb-5", Name: "Bungkus"},
				{ID: "u-tkb-6", Name: "Dus"},
			},
			AssetCategories: []models.AssetCategory{
				{ID: "ac-tkb-1", Name: "Elektronik", Prefix: "ELK"},
				{ID: "ac-tkb-2", Name: "Furnitur", Prefix: "FNR"},
			},
			Items: []models.Item{
				seedItem("item-tkb-1", "MR-001", "Indomie Goreng", "ic-tkb-1", "u-tkb-5", "u-tkb-6", 40, 2400, 3000, "Harga beli per dus Rp 96.000"),
				seedItem("item-tkb-2", "MNM-001", "Teh Botol Sosro", "ic-tkb-2", "u-tkb-2", "u-tkb-2", 1, 3000, 3500, "Kemasan 250ml"),
				seedItem("item-tkb-3", "SMK-001", "Beras Raja Lele", "ic-tkb-3", "u-tkb-3", "u-tkb-3", 1, 12000, 13000, "Harga per Kg. Dijual dalam karung 5kg"),
				seedItem("item-tkb-4", "SMK-002", "Minyak Goreng Sania", "ic-tkb-3", "u-tkb-4", "u-tkb-4", 1, 15000, 17000, "Harga per Liter. Pouch 2 liter"),
				seedItem("item-tkb-5", "KBD-001", "Gula Pasir Gulaku", "ic-tkb-4", "u-tkb-3", "u-tkb-3", 1, 14000, 16000, "Kemasan 1kg"),
			},
			Inventory: []models.StoreInventory{
				{ItemID: "item-tkb-1", RecordedStock: 40},
				{ItemID: "item-tkb-2", RecordedStock: 24},
				{ItemID: "item-tkb-3", RecordedStock: 50},
				{ItemID: "item-tkb-4", RecordedStock: 30},
				{ItemID: "item-tkb-5", RecordedStock: 20},
			},
			Assets: []models.Asset{
				seedAsset("asset-tkb-1", "ELK-001", "Kulkas Sharp", "ac-tkb-1", twoYearsAgo, 3000000, models.ConditionBagus, "2 pintu, untuk minuman dingin"),
				seedAsset("asset-tkb-2", "FNR-001", "Rak Gondola Besi", "ac-tkb-2", twoYearsAgo, 1500000, models.ConditionNormal, "5 tingkat, panjang 2 meter"),
			},
			Costs: []models.OperationalCost{
				seedCost("cost-tkb-1", "Listrik", 500000, models.FrequencyBulanan, "Tagihan PLN bulanan"),
				seedCost("cost-tkb-2", "Sewa Toko", 12000000, models.FrequencyTahunan, "Sewa ruko per tahun"),
			},
			Investors: []models.Investor{},
			CashFlow:  []models.CashFlowEntry{},
		},
		{
			ID:      "kedai-kopi-senja",
			Name:    "Kopi Senja",
			Address: "Jl. Pemuda No. 45, Semarang",
			ItemCategories: []models.ItemCategory{
				{ID: "ic-kks-1", Name: "Espresso Based", Prefix: "EB"},
				{ID: "ic-kks-2", Name: "Manual Brew", Prefix: "MB"},
				{ID: "ic-kks-3", Name: "Non-Kopi", Prefix: "NK"},
				{ID: "ic-kks-4", Name: "Pastry", Prefix: "PT"},
			},
			Units: []models.Unit{
				{ID: "u-kks-1", Name: "Gelas"},
				{ID: "u-kks-2", Name: "Pcs"},
			},
			AssetCategories: []models.AssetCategory{
				{ID: "ac-kks-1", Name: "Mesin Kopi", Prefix: "MKP"},
				{ID: "ac-kks-2", Name: "Peralatan Bar", Prefix: "PBR"},
				{ID: "ac-kks-3", Name: "Furnitur", Prefix: "FNR"},
			},
			Items: []models.Item{
				seedItem("item-kks-1", "EB-001", "Caffe Latte", "ic-kks-1", "u-kks-1", "u-kks-1", 1, 12000, 25000, "Hot/Ice"),
				seedItem("item-kks-2", "MB-001", "V60", "ic-kks-2", "u-kks-1", "u-kks-1", 1, 10000, 22000, "Beans: Gayo / Kintamani"),
				seedItem("item-kks-3", "NK-001", "Red Velvet Latte", "ic-kks-3", "u-kks-1", "u-kks-1", 1, 13000, 26000, "Non-coffee"),
				seedItem("item-kks-4", "PT-001", "Croissant Butter", "ic-kks-4", "u-kks-2", "u-kks-2", 1, 8000, 18000, "Original butter"),
			},
			Inventory: []models.StoreInventory{
				{ItemID: "item-kks-1", RecordedStock: 0},
				{ItemID: "item-kks-2", RecordedStock: 0},
				{ItemID: "item-kks-3", RecordedStock: 0},
				{ItemID: "item-kks-4", RecordedStock: 15},
			},
			Assets: []models.Asset{
				seedAsset("asset-kks-1", "MKP-001", "Mesin Espresso La Marzocco", "ac-kks-1", oneYearAgo, 80000000, models.ConditionBagus, "Linea Mini, 2 group"),
				seedAsset("asset-kks-2", "PBR-001", "Grinder Mahlkönig", "ac-kks-2", oneYearAgo, 25000000, models.ConditionBagus, "EK43"),
				seedAsset("asset-kks-3", "FNR-001", "Set Meja & Kursi Kayu", "ac-kks-3", oneYearAgo, 15000000, models.ConditionNormal, "Kapasitas 20 orang"),
			},
			Costs: []models.OperationalCost{
				seedCost("cost-kks-1", "Biji Kopi Arabica", 2000000, models.FrequencyMingguan, "Supplier: Gayo Mountain Coffee"),
				seedCost("cost-kks-2", "Susu UHT Full Cream", 500000, models.FrequencyMingguan, "Brand: Greenfields"),
				seedCost("cost-kks-3", "Gaji Barista", 3500000, models.FrequencyBulanan, "Per orang"),
				seedCost("cost-kks-4", "Internet & Wifi", 400000, models.FrequencyBulanan, "Provider: IndiHome"),
			},
			Investors: []models.Investor{},
			CashFlow:  []models.CashFlowEntry{},
		},
		{
			ID:      "warung-makan-sederhana",
			Name:    "Warung Makan Sederhana",
			Address: "Jl. Kaliurang KM 5, Yogyakarta",
			ItemCategories: []models.ItemCategory{
				{ID: "ic-wms-1", Name: "Makanan Utama", Prefix: "MU"},
				{ID: "ic-wms-2", Name: "Lauk Pauk", Prefix: "LP"},
				{ID: "ic-wms-3", Name: "Minuman", Prefix: "MNM"},
			},
			Units: []models.Unit{
				{ID: "u-wms-1", Name: "Porsi"},
				{ID: "u-wms-2", Name: "Pcs"},
				{ID: "u-wms-3", Name: "Gelas"},
			},
			AssetCategories: []models.AssetCategory{
				{ID: "ac-wms-1", Name: "Peralatan Masak", Prefix: "PM"},
				{ID: "ac-wms-2", Name: "Furnitur", Prefix: "FNR"},
			},
			Items: []models.Item{
				seedItem("item-wms-1", "MU-001", "Nasi Rames", "ic-wms-1", "u-wms-1", "u-wms-1", 1, 7000, 12000, "Nasi + 3 macam sayur"),
				seedItem("item-wms-2", "LP-001", "Ayam Goreng", "ic-wms-2", "u-wms-2", "u-wms-2", 1, 5000, 8000, "Ayam ungkep bumbu kuning"),
				seedItem("item-wms-3", "LP-002", "Lele Goreng", "ic-wms-2", "u-wms-2", "u-wms-2", 1, 4000, 7000, "Ukuran sedang"),
				seedItem("item-wms-4", "MNM-001", "Es Teh Manis", "ic-wms-3", "u-wms-3", "u-wms-3", 1, 1000, 3000, "Teh tubruk gula asli"),
			},
			Inventory: []models.StoreInventory{
				{ItemID: "item-wms-1", RecordedStock: 0},
				{ItemID: "item-wms-2", RecordedStock: 30},
				{ItemID: "item-wms-3", RecordedStock: 25},
				{ItemID: "item-wms-4", RecordedStock: 0},
			},
			Assets: []models.Asset{
				seedAsset("asset-wms-1", "PM-001", "Kompor Gas Rinnai", "ac-wms-1", twoYearsAgo, 700000, models.ConditionNormal, "2 tungku"),
				seedAsset("asset-wms-2", "PM-002", "Kulkas Polytron", "ac-wms-1", oneYearAgo, 2500000, models.ConditionBagus, "1 pintu"),
				seedAsset("asset-wms-3", "FNR-001", "Etalase Kaca", "ac-wms-2", twoYearsAgo, 1200000, models.ConditionNormal, "Untuk display lauk"),
			},
			Costs: []models.OperationalCost{
				seedCost("cost-wms-1", "Belanja Bahan Baku", 300000, models.FrequencyHarian, "Belanja di pasar pagi"),
				seedCost("cost-wms-2", "Gas LPG 3kg", 25000, models.FrequencyHarian, "Rata-rata pemakaian per hari"),
			},
			Investors: []models.Investor{},
			CashFlow:  []models.CashFlowEntry{},
		},
	}
}

func seedItem(id, sku, name, categoryID, sellingUnitID, purchaseUnitID string, rate int, purchase, selling int64, description string) models.Item {
	return models.Item{
		ID:             id,
		SKU:            sku,
		Name:           name,
		CategoryID:     categoryID,
		SellingUnitID:  sellingUnitID,
		PurchaseUnitID: purchaseUnitID,
		ConversionRate: rate,
		PurchasePrice:  decimal.NewFromInt(purchase),
		SellingPrice:   decimal.NewFromInt(selling),
		Description:    description,
	}
}

func seedAsset(id, code, name, categoryID string, purchased time.Time, value int64, condition models.AssetCondition, description string) models.Asset {
	return models.Asset{
		ID:           id,
		Code:         code,
		Name:         name,
		CategoryID:   categoryID,
		PurchaseDate: purchased,
		Value:        decimal.NewFromInt(value),
		Description:  description,
		Condition:    condition,
	}
}

func seedCost(id, name string, amount int64, frequency models.CostFrequency, description string) models.OperationalCost {
	return models.OperationalCost{
		ID:          id,
		Name:        name,
		Amount:      decimal.NewFromInt(amount),
		Frequency:   frequency,
		Description: description,
	}
}
