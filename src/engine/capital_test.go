package engine_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ============ TEST SCENARIO 6: INITIAL CAPITAL ============
func TestInitialCapital(t *testing.T) {
	t.Run("SC1: stock, assets and yearly or one-time costs", func(t *testing.T) {
		store := fixtureStore()
		store.Costs = []models.OperationalCost{
			{ID: "c1", Name: "Sewa Ruko", Amount: dec("12000000"), Frequency: models.FrequencyTahunan},
			{ID: "c2", Name: "Renovasi", Amount: dec("2000000"), Frequency: models.FrequencySekali},
			{ID: "c3", Name: "Listrik", Amount: dec("500000"), Frequency: models.FrequencyBulanan},
			{ID: "c4", Name: "Kebersihan", Amount: dec("10000"), Frequency: models.FrequencyHarian},
		}

		b := engine.InitialCapital(&store)
		// 8000*50 + 24000*3 + 0*0
		assertDecimal(t, "472000", b.StockValue)
		assertDecimal(t, "3500000", b.AssetValue)
		assertDecimal(t, "14000000", b.CapitalCosts)
		assertDecimal(t, "17972000", b.Total)
	})

	t.Run("SC2: monthly operating cost comes from yearly costs only", func(t *testing.T) {
		costs := []models.OperationalCost{
			{Amount: dec("12000000"), Frequency: models.FrequencyTahunan},
			{Amount: dec("500000"), Frequency: models.FrequencyBulanan},
			{Amount: dec("2000000"), Frequency: models.FrequencySekali},
		}
		assertDecimal(t, "1000000", engine.MonthlyOperatingCost(costs))
	})

	t.Run("SC3: annualized cost rollup", func(t *testing.T) {
		costs := []models.OperationalCost{
			{Amount: dec("10000"), Frequency: models.FrequencyHarian},
			{Amount: dec("50000"), Frequency: models.FrequencyMingguan},
			{Amount: dec("500000"), Frequency: models.FrequencyBulanan},
			{Amount: dec("1200000"), Frequency: models.FrequencyTahunan},
			{Amount: dec("9000000"), Frequency: models.FrequencySekali},
		}
		r := engine.AnnualizedCost(costs)
		// 3650000 + 2600000 + 6000000 + 1200000
		assertDecimal(t, "13450000", r.Annual)
		assert.True(t, r.Monthly.Mul(decimal.NewFromInt(12)).Sub(r.Annual).Abs().LessThan(dec("0.0001")))
		assertDecimal(t, "36849.3150684931506849", r.Daily.Round(16))
	})

	t.Run("SC4: owner share is floored at zero", func(t *testing.T) {
		assertDecimal(t, "100", engine.OwnerSharePercent(nil))
		assertDecimal(t, "70", engine.OwnerSharePercent([]models.Investor{{SharePercentage: dec("30")}}))
		assertDecimal(t, "0", engine.OwnerSharePercent([]models.Investor{{SharePercentage: dec("60")}, {SharePercentage: dec("55")}}))
	})
}

// ============ TEST SCENARIO 7: CAPITAL WATERFALL ============
func TestCapitalWaterfall(t *testing.T) {
	t.Run("SC1: straddle month splits between recoup and profit", func(t *testing.T) {
		res := engine.Allocate(engine.AllocationInput{
			InitialCapital:       dec("1000000"),
			MonthlyOperatingCost: decimal.Zero,
			OwnerSharePercent:    dec("100"),
			Months: []engine.MonthIncome{
				{Month: "2025-01", Income: dec("900000")},
				{Month: "2025-02", Income: dec("300000")},
			},
		})
		require.Len(t, res.Months, 2)
		straddle := res.Months[1]
		assertDecimal(t, "100000", straddle.Recouped)
		assertDecimal(t, "200000", straddle.Profit)
		assertDecimal(t, "1000000", res.CapitalRecouped)
		assertDecimal(t, "200000", res.NetProfit)
	})

	t.Run("SC2: loss month contributes nothing", func(t *testing.T) {
		res := engine.Allocate(engine.AllocationInput{
			InitialCapital:       dec("5000000"),
			MonthlyOperatingCost: dec("1000000"),
			OwnerSharePercent:    dec("60"),
			Months: []engine.MonthIncome{
				{Month: "2025-01", Income: dec("3000000")},
				{Month: "2025-02", Income: dec("400000")},
				{Month: "2025-03", Income: dec("2000000")},
			},
		})
		assertDecimal(t, "1200000", res.Months[0].OwnerShare)
		assertDecimal(t, "-600000", res.Months[1].GrossProfit)
		assertDecimal(t, "0", res.Months[1].OwnerShare)
		assertDecimal(t, "1800000", res.CapitalRecouped)
		assertDecimal(t, "0", res.NetProfit)
	})

	t.Run("SC3: fully recouped capital sends everything to profit", func(t *testing.T) {
		res := engine.Allocate(engine.AllocationInput{
			InitialCapital:    dec("100"),
			OwnerSharePercent: dec("100"),
			Months: []engine.MonthIncome{
				{Month: "2025-01", Income: dec("100")},
				{Month: "2025-02", Income: dec("250")},
			},
		})
		assertDecimal(t, "100", res.CapitalRecouped)
		assertDecimal(t, "250", res.NetProfit)
		assertDecimal(t, "0", res.Months[1].Recouped)
	})

	t.Run("SC4: conservation and monotonicity over random histories", func(t *testing.T) {
		rng := rand.New(rand.NewSource(42))
		for run := 0; run < 200; run++ {
			in := engine.AllocationInput{
				InitialCapital:       decimal.NewFromInt(rng.Int63n(5_000_000)),
				MonthlyOperatingCost: decimal.NewFromInt(rng.Int63n(1_000_000)),
				OwnerSharePercent:    decimal.NewFromInt(rng.Int63n(101)),
			}
			for m := 0; m < 1+rng.Intn(24); m++ {
				in.Months = append(in.Months, engine.MonthIncome{
					Month:  engine.MonthKey(day(2023, time.January, 1).AddDate(0, m, 0)),
					Income: decimal.NewFromInt(rng.Int63n(3_000_000)),
				})
			}

			res := engine.Allocate(in)
			expected := decimal.Zero
			prev := decimal.Zero
			for _, m := range res.Months {
				gross := m.Income.Sub(in.MonthlyOperatingCost)
				if gross.IsPositive() {
					expected = expected.Add(gross.Mul(in.OwnerSharePercent).Div(decimal.NewFromInt(100)))
				}
				require.True(t, m.CapitalRecouped.GreaterThanOrEqual(prev), "run %d month %s", run, m.Month)
				prev = m.CapitalRecouped
			}
			require.True(t, res.CapitalRecouped.LessThanOrEqual(in.InitialCapital), "run %d", run)
			require.True(t, res.CapitalRecouped.Add(res.NetProfit).Equal(expected), "run %d", run)

			again := engine.Allocate(in)
			require.True(t, again.CapitalRecouped.Equal(res.CapitalRecouped))
			require.True(t, again.NetProfit.Equal(res.NetProfit))
		}
	})

	t.Run("SC5: income is grouped by month in chronological order", func(t *testing.T) {
		months := engine.IncomeByMonth([]models.CashFlowEntry{
			{Date: day(2025, time.March, 3), Amount: dec("100")},
			{Date: day(2024, time.December, 31), Amount: dec("50")},
			{Date: day(2025, time.March, 20), Amount: dec("25")},
		})
		require.Len(t, months, 2)
		assert.Equal(t, "2024-12", months[0].Month)
		assertDecimal(t, "50", months[0].Income)
		assert.Equal(t, "2025-03", months[1].Month)
		assertDecimal(t, "125", months[1].Income)
	})

	t.Run("SC6: recompute writes the store rollups", func(t *testing.T) {
		store := models.Store{
			Costs:     []models.OperationalCost{{Amount: dec("1200000"), Frequency: models.FrequencyTahunan}},
			Investors: []models.Investor{{ID: "inv-1", Name: "Budi", SharePercentage: dec("50")}},
			CashFlow: []models.CashFlowEntry{
				{Date: day(2025, time.January, 5), Amount: dec("2100000")},
				{Date: day(2025, time.February, 5), Amount: dec("4100000")},
			},
		}
		// capital 1200000, op cost 100000, owner share 50%: 1000000 then 2000000
		engine.Recompute(&store)
		assertDecimal(t, "1200000", store.CapitalRecouped)
		assertDecimal(t, "1800000", store.NetProfit)

		store.CashFlow = store.CashFlow[:1]
		engine.Recompute(&store)
		assertDecimal(t, "1000000", store.CapitalRecouped)
		assertDecimal(t, "0", store.NetProfit)
	})
}

// ============ TEST SCENARIO 10: MONTH BUCKETS ============
func TestMonthBuckets(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	march := day(2024, time.March, 1)

	t.Run("SC1: month key follows the UTC month", func(t *testing.T) {
		assert.Equal(t, "2024-03", engine.MonthKey(march.In(est)))
		assert.Equal(t, "2024-02", engine.MonthKey(march.Add(-time.Hour).In(est)))
	})

	t.Run("SC2: entries are listed under their UTC month", func(t *testing.T) {
		entries := []models.CashFlowEntry{{ID: "cf-1", Date: march.In(est), Amount: dec("500000")}}
		assert.Len(t, engine.EntriesInMonth(entries, 2024, time.March), 1)
		assert.Empty(t, engine.EntriesInMonth(entries, 2024, time.February))

		months := engine.IncomeByMonth(entries)
		require.Len(t, months, 1)
		assert.Equal(t, "2024-03", months[0].Month)
	})
}

// ============ TEST SCENARIO 8: ROLLUPS ============
func TestRollups(t *testing.T) {
	t.Run("SC1: low stock sorted ascending, dangling rows skipped", func(t *testing.T) {
		store := fixtureStore()
		store.Inventory = append(store.Inventory,
			models.StoreInventory{ItemID: "item-3", RecordedStock: 0},
			models.StoreInventory{ItemID: "item-hapus", RecordedStock: 1},
		)
		low := engine.LowStockItems(&store, engine.DefaultLowStockThreshold)
		require.Len(t, low, 2)
		assert.Equal(t, "item-3", low[0].ItemID)
		assert.Equal(t, "item-2", low[1].ItemID)
	})

	t.Run("SC2: condition counts include every condition", func(t *testing.T) {
		counts := engine.ConditionCounts(fixtureStore().Assets)
		assert.Equal(t, 1, counts[models.ConditionBagus])
		assert.Equal(t, 1, counts[models.ConditionNormal])
		assert.Equal(t, 0, counts[models.ConditionRusak])
	})

	t.Run("SC3: monthly report flags over-allocated investors", func(t *testing.T) {
		store := fixtureStore()
		store.Investors = []models.Investor{
			{ID: "i1", Name: "Ani", SharePercentage: dec("70")},
			{ID: "i2", Name: "Budi", SharePercentage: dec("40")},
		}
		store.CashFlow = []models.CashFlowEntry{
			{ID: "e1", Date: day(2025, time.April, 2), Amount: dec("1000000")},
			{ID: "e2", Date: day(2025, time.April, 20), Amount: dec("500000")},
			{ID: "e3", Date: day(2025, time.May, 1), Amount: dec("999")},
		}
		r := engine.BuildMonthlyReport(&store, 2025, time.April)
		assert.Equal(t, "2025-04", r.Month)
		assertDecimal(t, "1500000", r.Income)
		assertDecimal(t, "0", r.OwnerSharePercent)
		assert.True(t, r.OverAllocated)
		require.Len(t, r.Investors, 2)
		assertDecimal(t, "1050000", r.Investors[0].ShareAmount)
		assertDecimal(t, "600000", r.Investors[1].ShareAmount)
		require.Len(t, r.Entries, 2)
		assert.Equal(t, "e2", r.Entries[0].ID)
	})

	t.Run("SC4: remaining capital never goes negative", func(t *testing.T) {
		assertDecimal(t, "0", engine.RemainingCapital(dec("100"), dec("150")))
		assertDecimal(t, "40", engine.RemainingCapital(dec("100"), dec("60")))
	})

	t.Run("SC5: store summary includes latest opname", func(t *testing.T) {
		store := fixtureStore()
		latest := &models.OpnameSession{
			ID:   "sesi-akhir",
			Date: day(2025, time.June, 1),
			Items: []models.OpnameItem{
				{ItemID: "item-1", Discrepancy: -1},
			},
		}
		s := engine.SummarizeStore(&store, latest, engine.DefaultLowStockThreshold)
		assertDecimal(t, "472000", s.StockValue)
		assertDecimal(t, "3972000", s.TotalValue)
		require.NotNil(t, s.LatestOpname)
		assert.Equal(t, 1, s.LatestOpname.Items.ShortageItems)
		assert.Equal(t, 2, s.LatestOpname.Assets.Checked)
	})
}

// ============ TEST SCENARIO 9: CODES ============
func TestCodes(t *testing.T) {
	t.Run("SC1: SKU follows the category count", func(t *testing.T) {
		store := fixtureStore()
		assert.Equal(t, "MR-003", engine.NextSKU(&store, "cat-mkn"))
		assert.Equal(t, "MN-002", engine.NextSKU(&store, "cat-min"))
		assert.Equal(t, "BRG-001", engine.NextSKU(&store, "cat-tidak-ada"))
		assert.Equal(t, "ELK-003", engine.NextAssetCode(&store, "acat-elk"))
		assert.Equal(t, "AST-001", engine.NextAssetCode(&store, ""))
	})

	t.Run("SC2: gap after deletion does not reuse a taken code", func(t *testing.T) {
		store := fixtureStore()
		store.Items = store.Items[1:] // MR-001 removed, MR-002 remains
		assert.Equal(t, "MR-003", engine.NextSKU(&store, "cat-mkn"))
	})

	t.Run("SC3: prefix from name", func(t *testing.T) {
		assert.Equal(t, "MIN", engine.PrefixFromName(" minuman "))
		assert.Equal(t, "AB", engine.PrefixFromName("ab"))
	})
}
