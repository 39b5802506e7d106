package services_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"manajemen-toko/src/config"
	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/repositories"
	"manajemen-toko/src/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, config.AutoMigrate(db))
	return db
}

func setupStoreService(t *testing.T) (*services.StoreService, *repositories.StoreRepository) {
	t.Helper()
	repo := &repositories.StoreRepository{DB: setupTestDB(t)}
	return &services.StoreService{Repo: repo}, repo
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, dec(want).Equal(got), append([]interface{}{"want %s, got %s", want, got.String()}, msgAndArgs...)...)
}

// ============ TEST SCENARIO 1: STORE LIFECYCLE ============
func TestStoreLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupStoreService(t)

	t.Run("SC1: Create derives the id from the name", func(t *testing.T) {
		store, err := svc.CreateStore(ctx, services.StoreInput{Name: "  Toko Maju Jaya ", Address: "Jl. Diponegoro 7"})
		require.NoError(t, err)
		assert.Equal(t, "toko-maju-jaya", store.ID)
		assert.Equal(t, "Toko Maju Jaya", store.Name)
		assert.NotNil(t, store.Items)
		assert.True(t, store.CapitalRecouped.IsZero())

		again, err := svc.CreateStore(ctx, services.StoreInput{Name: "Toko Maju Jaya"})
		require.NoError(t, err)
		assert.NotEqual(t, store.ID, again.ID)
		assert.Contains(t, again.ID, "toko-maju-jaya-")
	})

	t.Run("SC2: Name is required", func(t *testing.T) {
		_, err := svc.CreateStore(ctx, services.StoreInput{Name: "   "})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("SC3: Update and delete", func(t *testing.T) {
		updated, err := svc.UpdateStore(ctx, "toko-maju-jaya", services.StoreInput{Name: "Toko Maju", Address: "Jl. Baru"})
		require.NoError(t, err)
		assert.Equal(t, "Toko Maju", updated.Name)

		require.NoError(t, svc.DeleteStore(ctx, "toko-maju-jaya"))
		_, err = svc.GetStore(ctx, "toko-maju-jaya")
		assert.ErrorIs(t, err, services.ErrStoreNotFound)
		assert.ErrorIs(t, svc.DeleteStore(ctx, "toko-maju-jaya"), services.ErrStoreNotFound)
	})

	t.Run("SC4: Unknown store", func(t *testing.T) {
		_, err := svc.UpdateStore(ctx, "tidak-ada", services.StoreInput{Name: "X"})
		assert.ErrorIs(t, err, services.ErrStoreNotFound)
	})
}

// ============ TEST SCENARIO 2: SAMPLE DATA ============
func TestSeedStores(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupStoreService(t)
	now := time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC)

	t.Run("SC1: Seeding fills an empty database once", func(t *testing.T) {
		added, err := svc.SeedStores(ctx, services.DefaultStores(now))
		require.NoError(t, err)
		assert.Equal(t, 3, added)

		added, err = svc.SeedStores(ctx, services.DefaultStores(now))
		require.NoError(t, err)
		assert.Equal(t, 0, added)

		stores, err := svc.ListStores(ctx)
		require.NoError(t, err)
		require.Len(t, stores, 3)
		assert.Equal(t, "Kopi Senja", stores[0].Name)
	})

	t.Run("SC2: Sample capital matches the seeded records", func(t *testing.T) {
		store, err := svc.GetStore(ctx, "toko-kelontong-berkah")
		require.NoError(t, err)

		// Stock 40*2400 + 24*3000 + 50*12000 + 30*15000 + 20*14000 = 1,498,000,
		// assets 4,500,000, yearly rent 12,000,000.
		breakdown := engine.InitialCapital(store)
		assertDecimal(t, "1498000", breakdown.StockValue)
		assertDecimal(t, "4500000", breakdown.AssetValue)
		assertDecimal(t, "17998000", breakdown.Total)
		assert.Equal(t, time.Date(2023, 6, 10, 0, 0, 0, 0, time.UTC), store.Assets[0].PurchaseDate)
	})
}

// ============ TEST SCENARIO 3: MASTER DATA & ITEMS ============
func TestCatalog(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupStoreService(t)
	store, err := svc.CreateStore(ctx, services.StoreInput{Name: "Toko Katalog"})
	require.NoError(t, err)

	cat, err := svc.AddItemCategory(ctx, store.ID, services.CategoryInput{Name: "Makanan Ringan", Prefix: "mr"})
	require.NoError(t, err)
	pcs, err := svc.AddUnit(ctx, store.ID, services.UnitInput{Name: "Bungkus"})
	require.NoError(t, err)
	dus, err := svc.AddUnit(ctx, store.ID, services.UnitInput{Name: "Dus"})
	require.NoError(t, err)

	var itemID string

	t.Run("SC1: Category prefix is upper-cased or derived", func(t *testing.T) {
		assert.Equal(t, "MR", cat.Prefix)
		other, err := svc.AddItemCategory(ctx, store.ID, services.CategoryInput{Name: "minuman"})
		require.NoError(t, err)
		assert.Equal(t, "MIN", other.Prefix)
	})

	t.Run("SC2: New item gets SKU, per-unit price and converted stock", func(t *testing.T) {
		item, err := svc.AddItem(ctx, store.ID, services.ItemInput{
			Name:               "Indomie Goreng",
			CategoryID:         cat.ID,
			SellingUnitID:      pcs.ID,
			PurchaseUnitID:     dus.ID,
			ConversionRate:     40,
			SellingPrice:       dec("3000"),
			TotalPurchasePrice: dec("192000"),
			PurchasedQuantity:  2,
			InitialStock:       2,
			StockUnit:          engine.UnitPurchase,
		})
		require.NoError(t, err)
		itemID = item.ID
		assert.Equal(t, "MR-001", item.SKU)
		assertDecimal(t, "2400", item.PurchasePrice)

		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, 80, got.RecordedStock(item.ID))
		assertDecimal(t, "192000", engine.StockValue(got))
	})

	t.Run("SC3: Editing without a new batch keeps the purchase price", func(t *testing.T) {
		item, err := svc.UpdateItem(ctx, store.ID, itemID, services.ItemInput{
			Name:           "Indomie Goreng Jumbo",
			CategoryID:     cat.ID,
			SellingUnitID:  pcs.ID,
			PurchaseUnitID: dus.ID,
			ConversionRate: 40,
			SellingPrice:   dec("3500"),
		})
		require.NoError(t, err)
		assert.Equal(t, "MR-001", item.SKU)
		assertDecimal(t, "2400", item.PurchasePrice)
		assertDecimal(t, "3500", item.SellingPrice)
	})

	t.Run("SC4: Restock in purchase units re-derives the price", func(t *testing.T) {
		inv, err := svc.Restock(ctx, store.ID, itemID, services.RestockInput{Quantity: 1, Unit: engine.UnitPurchase, TotalPurchasePrice: dec("100000")})
		require.NoError(t, err)
		assert.Equal(t, 120, inv.RecordedStock)

		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		assertDecimal(t, "2500", got.Items[0].PurchasePrice)

		inv, err = svc.Restock(ctx, store.ID, itemID, services.RestockInput{Quantity: 5, Unit: engine.UnitSelling})
		require.NoError(t, err)
		assert.Equal(t, 125, inv.RecordedStock)
	})

	t.Run("SC5: Referenced master data cannot be deleted", func(t *testing.T) {
		assert.ErrorIs(t, svc.DeleteUnit(ctx, store.ID, dus.ID), services.ErrInUse)
		assert.ErrorIs(t, svc.DeleteItemCategory(ctx, store.ID, cat.ID), services.ErrInUse)
		assert.ErrorIs(t, svc.DeleteUnit(ctx, store.ID, "u-tidak-ada"), services.ErrUnitNotFound)
	})

	t.Run("SC6: Invalid input leaves the store unchanged", func(t *testing.T) {
		before, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)

		_, err = svc.AddItem(ctx, store.ID, services.ItemInput{Name: "Tanpa Satuan", ConversionRate: 1})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		_, err = svc.UpdateItem(ctx, store.ID, "item-tidak-ada", services.ItemInput{Name: "X", SellingUnitID: pcs.ID, PurchaseUnitID: pcs.ID, ConversionRate: 1})
		assert.ErrorIs(t, err, services.ErrItemNotFound)
		_, err = svc.Restock(ctx, store.ID, itemID, services.RestockInput{Quantity: 0, Unit: engine.UnitSelling})
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		after, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		assert.Equal(t, before.Items, after.Items)
		assert.Equal(t, before.Inventory, after.Inventory)
	})

	t.Run("SC7: Deleting an item frees its unit and SKU", func(t *testing.T) {
		require.NoError(t, svc.DeleteItem(ctx, store.ID, itemID))
		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Items)
		assert.Empty(t, got.Inventory)
		assert.NoError(t, svc.DeleteUnit(ctx, store.ID, dus.ID))
	})

	t.Run("SC8: Asset codes and default condition", func(t *testing.T) {
		elk, err := svc.AddAssetCategory(ctx, store.ID, services.CategoryInput{Name: "Elektronik", Prefix: "ELK"})
		require.NoError(t, err)

		a, err := svc.AddAsset(ctx, store.ID, services.AssetInput{Name: "Kulkas", CategoryID: elk.ID, Value: dec("3000000")})
		require.NoError(t, err)
		assert.Equal(t, "ELK-001", a.Code)
		assert.Equal(t, models.ConditionNormal, a.Condition)

		b, err := svc.AddAsset(ctx, store.ID, services.AssetInput{Name: "Rak", Value: dec("500000"), Condition: models.ConditionBagus})
		require.NoError(t, err)
		assert.Equal(t, "AST-001", b.Code)

		_, err = svc.AddAsset(ctx, store.ID, services.AssetInput{Name: "Meja", Condition: "Hilang"})
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		updated, err := svc.UpdateAsset(ctx, store.ID, a.ID, services.AssetInput{Name: "Kulkas 2 Pintu", CategoryID: elk.ID, Value: dec("2800000"), Condition: models.ConditionRusak})
		require.NoError(t, err)
		assert.Equal(t, "ELK-001", updated.Code)

		assert.ErrorIs(t, svc.DeleteAssetCategory(ctx, store.ID, elk.ID), services.ErrInUse)
		require.NoError(t, svc.DeleteAsset(ctx, store.ID, a.ID))
		assert.NoError(t, svc.DeleteAssetCategory(ctx, store.ID, elk.ID))
	})
}

// ============ TEST SCENARIO 4: COSTS, INVESTORS & CASH FLOW ============
func TestFinance(t *testing.T) {
	ctx := context.Background()
	svc, _ := setupStoreService(t)
	store, err := svc.CreateStore(ctx, services.StoreInput{Name: "Toko Keuangan"})
	require.NoError(t, err)

	// Initial capital 1,000,000 asset + 1,200,000 yearly cost; monthly cost 100,000.
	_, err = svc.AddAsset(ctx, store.ID, services.AssetInput{Name: "Etalase", Value: dec("1000000")})
	require.NoError(t, err)
	_, err = svc.AddCost(ctx, store.ID, services.CostInput{Name: "Sewa", Amount: dec("1200000"), Frequency: models.FrequencyTahunan})
	require.NoError(t, err)

	t.Run("SC1: Investor shares cannot pass 100 percent", func(t *testing.T) {
		inv, err := svc.AddInvestor(ctx, store.ID, services.InvestorInput{Name: "Budi", SharePercentage: dec("25")})
		require.NoError(t, err)

		_, err = svc.AddInvestor(ctx, store.ID, services.InvestorInput{Name: "Sari", SharePercentage: dec("80")})
		assert.ErrorIs(t, err, services.ErrShareExceeded)

		_, err = svc.UpdateInvestor(ctx, store.ID, inv.ID, services.InvestorInput{Name: "Budi", SharePercentage: dec("101")})
		assert.ErrorIs(t, err, services.ErrInvalidInput)

		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		require.Len(t, got.Investors, 1)
		assertDecimal(t, "25", got.Investors[0].SharePercentage)
	})

	var febID string

	t.Run("SC2: Cash flow recomputes the capital waterfall", func(t *testing.T) {
		_, err := svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Date: time.Date(2025, 1, 20, 0, 0, 0, 0, time.UTC), Amount: dec("2100000")})
		require.NoError(t, err)
		feb, err := svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Date: time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC), Amount: dec("1100000"), Description: "Penjualan"})
		require.NoError(t, err)
		febID = feb.ID

		// Jan: owner 75% of 2,000,000 = 1,500,000, all recouped.
		// Feb: owner 75% of 1,000,000 = 750,000, 700,000 recouped, 50,000 profit.
		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		assertDecimal(t, "2200000", got.CapitalRecouped)
		assertDecimal(t, "50000", got.NetProfit)
	})

	t.Run("SC3: Invalid entries are refused", func(t *testing.T) {
		_, err := svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Date: time.Now(), Amount: dec("0")})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		_, err = svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Amount: dec("1000")})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
		_, err = svc.AddCost(ctx, store.ID, services.CostInput{Name: "Air", Amount: dec("1000"), Frequency: "bulanan-an"})
		assert.ErrorIs(t, err, services.ErrInvalidInput)
	})

	t.Run("SC4: Listing a month is newest first", func(t *testing.T) {
		_, err := svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Date: time.Date(2025, 2, 14, 0, 0, 0, 0, time.UTC), Amount: dec("10000")})
		require.NoError(t, err)

		entries, err := svc.ListCashFlow(ctx, store.ID, 2025, time.February)
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, 14, entries[0].Date.Day())

		all, err := svc.ListCashFlow(ctx, store.ID, 0, 0)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})

	t.Run("SC5: Removing an entry rolls the totals back", func(t *testing.T) {
		require.NoError(t, svc.DeleteCashFlow(ctx, store.ID, febID))
		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)

		// Feb is now 10,000 income: a loss month.
		assertDecimal(t, "1500000", got.CapitalRecouped)
		assertDecimal(t, "0", got.NetProfit)
		assert.ErrorIs(t, svc.DeleteCashFlow(ctx, store.ID, febID), services.ErrCashFlowNotFound)
	})

	t.Run("SC6: Cost changes move initial capital", func(t *testing.T) {
		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		costID := got.Costs[0].ID

		_, err = svc.UpdateCost(ctx, store.ID, costID, services.CostInput{Name: "Sewa", Amount: dec("2400000"), Frequency: models.FrequencyTahunan})
		require.NoError(t, err)
		got, err = svc.GetStore(ctx, store.ID)
		require.NoError(t, err)

		// Monthly cost 200,000: Jan owner share 75% of 1,900,000 = 1,425,000.
		assertDecimal(t, "3400000", engine.InitialCapital(got).Total)
		assertDecimal(t, "1425000", got.CapitalRecouped)

		require.NoError(t, svc.DeleteCost(ctx, store.ID, costID))
		assert.ErrorIs(t, svc.DeleteCost(ctx, store.ID, costID), services.ErrCostNotFound)
	})
}

// ============ TEST SCENARIO 5: CASH FLOW WEST OF UTC ============
func TestFinanceLocalZone(t *testing.T) {
	orig := time.Local
	time.Local = time.FixedZone("EST", -5*60*60)
	t.Cleanup(func() { time.Local = orig })

	ctx := context.Background()
	svc, _ := setupStoreService(t)
	store, err := svc.CreateStore(ctx, services.StoreInput{Name: "Toko Zona"})
	require.NoError(t, err)

	t.Run("SC1: Entry stays in its month after reload", func(t *testing.T) {
		_, err := svc.AddCashFlow(ctx, store.ID, services.CashFlowInput{Date: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), Amount: dec("500000")})
		require.NoError(t, err)

		got, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)
		require.Len(t, got.CashFlow, 1)
		assert.Equal(t, 1, got.CashFlow[0].Date.Day())
		assert.Equal(t, time.March, got.CashFlow[0].Date.Month())

		march, err := svc.ListCashFlow(ctx, store.ID, 2024, time.March)
		require.NoError(t, err)
		assert.Len(t, march, 1)
		feb, err := svc.ListCashFlow(ctx, store.ID, 2024, time.February)
		require.NoError(t, err)
		assert.Empty(t, feb)

		months := engine.IncomeByMonth(got.CashFlow)
		require.Len(t, months, 1)
		assert.Equal(t, "2024-03", months[0].Month)
		assertDecimal(t, "500000", months[0].Income)
	})

	t.Run("SC2: Waterfall is stable across saves", func(t *testing.T) {
		before, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)

		_, err = svc.UpdateStore(ctx, store.ID, services.StoreInput{Name: "Toko Zona"})
		require.NoError(t, err)
		after, err := svc.GetStore(ctx, store.ID)
		require.NoError(t, err)

		assertDecimal(t, before.CapitalRecouped.String(), after.CapitalRecouped)
		assertDecimal(t, before.NetProfit.String(), after.NetProfit)
		assert.Equal(t, before.CashFlow[0].Date, after.CashFlow[0].Date)
	})
}
