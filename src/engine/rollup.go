package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"manajemen-toko/src/models"
)

// DefaultLowStockThreshold flags items at or below five selling units.
const DefaultLowStockThreshold = 5

// ============ STORE SUMMARY ============
type LowStockItem struct {
	ItemID        string `json:"itemId"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	RecordedStock int    `json:"recordedStock"`
}

// LowStockItems lists inventory records at or below threshold, lowest stock
// first. Records whose item no longer exists are skipped.
func LowStockItems(store *models.Store, threshold int) []LowStockItem {
	out := []LowStockItem{}
	for _, inv := range store.Inventory {
		if inv.RecordedStock > threshold {
			continue
		}
		i := store.ItemIndex(inv.ItemID)
		if i < 0 {
			continue
		}
		item := store.Items[i]
		out = append(out, LowStockItem{
			ItemID:        item.ID,
			SKU:           item.SKU,
			Name:          item.Name,
			Unit:          store.UnitName(item.SellingUnitID),
			RecordedStock: inv.RecordedStock,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].RecordedStock < out[j].RecordedStock })
	return out
}

// ConditionCounts always carries all three conditions, zero when absent.
func ConditionCounts(assets []models.Asset) map[models.AssetCondition]int {
	counts := make(map[models.AssetCondition]int, len(models.AssetConditions))
	for _, c := range models.AssetConditions {
		counts[c] = 0
	}
	for _, a := range assets {
		counts[a.Condition]++
	}
	return counts
}

type LatestOpname struct {
	SessionID string        `json:"sessionId"`
	Date      time.Time     `json:"date"`
	Items     OpnameSummary `json:"items"`
	Assets    AssetSummary  `json:"assets"`
}

type StoreSummary struct {
	StoreID         string                        `json:"storeId"`
	StoreName       string                        `json:"storeName"`
	ItemCount       int                           `json:"itemCount"`
	AssetCount      int                           `json:"assetCount"`
	StockValue      decimal.Decimal               `json:"stockValue"`
	AssetValue      decimal.Decimal               `json:"assetValue"`
	TotalValue      decimal.Decimal               `json:"totalValue"`
	Costs           CostRollup                    `json:"costs"`
	LowStock        []LowStockItem                `json:"lowStock"`
	AssetConditions map[models.AssetCondition]int `json:"assetConditions"`
	InitialCapital  CapitalBreakdown              `json:"initialCapital"`
	CapitalRecouped decimal.Decimal               `json:"capitalRecouped"`
	NetProfit       decimal.Decimal               `json:"netProfit"`
	LatestOpname    *LatestOpname                 `json:"latestOpname,omitempty"`
}

// SummarizeStore builds the dashboard view. latest may be nil when the store
// has never been counted.
func SummarizeStore(store *models.Store, latest *models.OpnameSession, lowStockThreshold int) StoreSummary {
	stock := StockValue(store)
	assets := AssetValue(store.Assets)
	s := StoreSummary{
		StoreID:         store.ID,
		StoreName:       store.Name,
		ItemCount:       len(store.Items),
		AssetCount:      len(store.Assets),
		StockValue:      stock,
		AssetValue:      assets,
		TotalValue:      stock.Add(assets),
		Costs:           AnnualizedCost(store.Costs),
		LowStock:        LowStockItems(store, lowStockThreshold),
		AssetConditions: ConditionCounts(store.Assets),
		InitialCapital:  InitialCapital(store),
		CapitalRecouped: store.CapitalRecouped,
		NetProfit:       store.NetProfit,
	}
	if latest != nil {
		s.LatestOpname = &LatestOpname{
			SessionID: latest.ID,
			Date:      latest.Date,
			Items:     SummarizeOpname(*latest),
			Assets:    SummarizeAssets(*latest, len(store.Assets)),
		}
	}
	return s
}

// ============ MONTHLY CASH REPORT ============
type InvestorShare struct {
	InvestorID      string          `json:"investorId"`
	Name            string          `json:"name"`
	SharePercentage decimal.Decimal `json:"sharePercentage"`
	ShareAmount     decimal.Decimal `json:"shareAmount"`
}

type MonthlyReport struct {
	Month                string                 `json:"month"`
	Income               decimal.Decimal        `json:"income"`
	MonthlyOperatingCost decimal.Decimal        `json:"monthlyOperatingCost"`
	GrossProfit          decimal.Decimal        `json:"grossProfit"`
	OwnerSharePercent    decimal.Decimal        `json:"ownerSharePercent"`
	OwnerShareAmount     decimal.Decimal        `json:"ownerShareAmount"`
	Investors            []InvestorShare        `json:"investors"`
	TotalInvestorShare   decimal.Decimal        `json:"totalInvestorShare"`
	OverAllocated        bool                   `json:"overAllocated"`
	InitialCapital       decimal.Decimal        `json:"initialCapital"`
	CapitalRecouped      decimal.Decimal        `json:"capitalRecouped"`
	RemainingCapital     decimal.Decimal        `json:"remainingCapital"`
	NetProfit            decimal.Decimal        `json:"netProfit"`
	Entries              []models.CashFlowEntry `json:"entries"`
}

// EntriesInMonth returns the entries dated in year/month (UTC), newest first.
func EntriesInMonth(entries []models.CashFlowEntry, year int, month time.Month) []models.CashFlowEntry {
	out := []models.CashFlowEntry{}
	for _, e := range entries {
		d := e.Date.UTC()
		if d.Year() == year && d.Month() == month {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out
}

// BuildMonthlyReport splits one month's gross profit between the owner and the
// investors. Investor shares are not renormalized, so OverAllocated marks a
// store whose shares add up past 100 percent.
func BuildMonthlyReport(store *models.Store, year int, month time.Month) MonthlyReport {
	entries := EntriesInMonth(store.CashFlow, year, month)
	income := decimal.Zero
	for _, e := range entries {
		income = income.Add(e.Amount)
	}
	opCost := MonthlyOperatingCost(store.Costs)
	gross := income.Sub(opCost)
	distributable := decimal.Zero
	if gross.IsPositive() {
		distributable = gross
	}

	ownerPct := OwnerSharePercent(store.Investors)
	investorTotal := TotalInvestorShare(store.Investors)
	initial := InitialCapital(store).Total

	r := MonthlyReport{
		Month:                MonthKey(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)),
		Income:               income,
		MonthlyOperatingCost: opCost,
		GrossProfit:          gross,
		OwnerSharePercent:    ownerPct,
		OwnerShareAmount:     distributable.Mul(ownerPct).Div(hundred),
		Investors:            make([]InvestorShare, 0, len(store.Investors)),
		TotalInvestorShare:   investorTotal,
		OverAllocated:        investorTotal.GreaterThan(hundred),
		InitialCapital:       initial,
		CapitalRecouped:      store.CapitalRecouped,
		RemainingCapital:     RemainingCapital(initial, store.CapitalRecouped),
		NetProfit:            store.NetProfit,
		Entries:              entries,
	}
	for _, inv := range store.Investors {
		r.Investors = append(r.Investors, InvestorShare{
			InvestorID:      inv.ID,
			Name:            inv.Name,
			SharePercentage: inv.SharePercentage,
			ShareAmount:     distributable.Mul(inv.SharePercentage).Div(hundred),
		})
	}
	return r
}
