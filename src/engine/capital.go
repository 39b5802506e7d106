package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"manajemen-toko/src/models"
)

const monthKeyLayout = "2006-01"

var (
	twelve          = decimal.NewFromInt(12)
	daysInYear      = decimal.NewFromInt(365)
	weeksInYear     = decimal.NewFromInt(52)
	monthsInYear    = twelve
	annualFrequency = map[models.CostFrequency]decimal.Decimal{
		models.FrequencyHarian:   daysInYear,
		models.FrequencyMingguan: weeksInYear,
		models.FrequencyBulanan:  monthsInYear,
		models.FrequencyTahunan:  decimal.NewFromInt(1),
	}
)

// MonthKey formats t as the YYYY-MM bucket used by the allocation fold.
// Months are UTC months.
func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

// ============ INITIAL CAPITAL ============

// CapitalBreakdown is the initial capital with its three components.
type CapitalBreakdown struct {
	StockValue   decimal.Decimal `json:"stockValue"`
	AssetValue   decimal.Decimal `json:"assetValue"`
	CapitalCosts decimal.Decimal `json:"capitalCosts"`
	Total        decimal.Decimal `json:"total"`
}

// StockValue sums purchasePrice x recordedStock over the catalog.
func StockValue(store *models.Store) decimal.Decimal {
	total := decimal.Zero
	for _, item := range store.Items {
		qty := decimal.NewFromInt(int64(store.RecordedStock(item.ID)))
		total = total.Add(item.PurchasePrice.Mul(qty))
	}
	return total
}

func AssetValue(assets []models.Asset) decimal.Decimal {
	total := decimal.Zero
	for _, a := range assets {
		total = total.Add(a.Value)
	}
	return total
}

// CapitalCosts sums yearly and one-time costs. Daily, weekly and monthly
// costs are operating expense and never count as invested capital.
func CapitalCosts(costs []models.OperationalCost) decimal.Decimal {
	total := decimal.Zero
	for _, c := range costs {
		if c.Frequency == models.FrequencyTahunan || c.Frequency == models.FrequencySekali {
			total = total.Add(c.Amount)
		}
	}
	return total
}

func InitialCapital(store *models.Store) CapitalBreakdown {
	b := CapitalBreakdown{
		StockValue:   StockValue(store),
		AssetValue:   AssetValue(store.Assets),
		CapitalCosts: CapitalCosts(store.Costs),
	}
	b.Total = b.StockValue.Add(b.AssetValue).Add(b.CapitalCosts)
	return b
}

// ============ OPERATING COST ============

// MonthlyOperatingCost is the figure the allocation fold subtracts from each
// month's income: yearly costs spread over twelve months.
func MonthlyOperatingCost(costs []models.OperationalCost) decimal.Decimal {
	yearly := decimal.Zero
	for _, c := range costs {
		if c.Frequency == models.FrequencyTahunan {
			yearly = yearly.Add(c.Amount)
		}
	}
	return yearly.Div(twelve)
}

// CostRollup projects every recurring cost to a year, then back to a month and
// a day. One-time costs are excluded.
type CostRollup struct {
	Annual  decimal.Decimal `json:"annual"`
	Monthly decimal.Decimal `json:"monthly"`
	Daily   decimal.Decimal `json:"daily"`
}

func AnnualizedCost(costs []models.OperationalCost) CostRollup {
	annual := decimal.Zero
	for _, c := range costs {
		if factor, ok := annualFrequency[c.Frequency]; ok {
			annual = annual.Add(c.Amount.Mul(factor))
		}
	}
	return CostRollup{
		Annual:  annual,
		Monthly: annual.Div(monthsInYear),
		Daily:   annual.Div(daysInYear),
	}
}

// ============ OWNERSHIP ============
func TotalInvestorShare(investors []models.Investor) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range investors {
		total = total.Add(inv.SharePercentage)
	}
	return total
}

// OwnerSharePercent is the residual share after investors, floored at zero.
func OwnerSharePercent(investors []models.Investor) decimal.Decimal {
	rest := hundred.Sub(TotalInvestorShare(investors))
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}

// ============ ALLOCATION ============

// MonthIncome is the summed cash inflow of one calendar month.
type MonthIncome struct {
	Month  string          `json:"month"`
	Income decimal.Decimal `json:"income"`
}

// IncomeByMonth groups entries by YYYY-MM, oldest month first.
func IncomeByMonth(entries []models.CashFlowEntry) []MonthIncome {
	sums := make(map[string]decimal.Decimal)
	for _, e := range entries {
		key := MonthKey(e.Date)
		sums[key] = sums[key].Add(e.Amount)
	}
	out := make([]MonthIncome, 0, len(sums))
	for month, income := range sums {
		out = append(out, MonthIncome{Month: month, Income: income})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

type AllocationInput struct {
	InitialCapital       decimal.Decimal
	MonthlyOperatingCost decimal.Decimal
	OwnerSharePercent    decimal.Decimal
	Months               []MonthIncome
}

// AllocationInputFor derives the fold inputs from a store.
func AllocationInputFor(store *models.Store) AllocationInput {
	return AllocationInput{
		InitialCapital:       InitialCapital(store).Total,
		MonthlyOperatingCost: MonthlyOperatingCost(store.Costs),
		OwnerSharePercent:    OwnerSharePercent(store.Investors),
		Months:               IncomeByMonth(store.CashFlow),
	}
}

// MonthAllocation traces one step of the fold. CapitalRecouped is cumulative.
type MonthAllocation struct {
	Month           string          `json:"month"`
	Income          decimal.Decimal `json:"income"`
	GrossProfit     decimal.Decimal `json:"grossProfit"`
	OwnerShare      decimal.Decimal `json:"ownerShare"`
	Recouped        decimal.Decimal `json:"recouped"`
	Profit          decimal.Decimal `json:"profit"`
	CapitalRecouped decimal.Decimal `json:"capitalRecouped"`
}

type Allocation struct {
	CapitalRecouped decimal.Decimal   `json:"capitalRecouped"`
	NetProfit       decimal.Decimal   `json:"netProfit"`
	Months          []MonthAllocation `json:"months"`
}

// Allocate folds the months in the given order. Each month's owner share first
// pays down whatever initial capital is still outstanding; the rest is net
// profit. A loss month contributes nothing and is not carried forward.
func Allocate(in AllocationInput) Allocation {
	res := Allocation{
		CapitalRecouped: decimal.Zero,
		NetProfit:       decimal.Zero,
		Months:          make([]MonthAllocation, 0, len(in.Months)),
	}
	for _, m := range in.Months {
		gross := m.Income.Sub(in.MonthlyOperatingCost)
		share := decimal.Zero
		if gross.IsPositive() {
			share = gross.Mul(in.OwnerSharePercent).Div(hundred)
		}

		recouped := decimal.Zero
		if res.CapitalRecouped.LessThan(in.InitialCapital) {
			needed := in.InitialCapital.Sub(res.CapitalRecouped)
			recouped = decimal.Min(share, needed)
		}
		profit := share.Sub(recouped)

		res.CapitalRecouped = res.CapitalRecouped.Add(recouped)
		res.NetProfit = res.NetProfit.Add(profit)
		res.Months = append(res.Months, MonthAllocation{
			Month:           m.Month,
			Income:          m.Income,
			GrossProfit:     gross,
			OwnerShare:      share,
			Recouped:        recouped,
			Profit:          profit,
			CapitalRecouped: res.CapitalRecouped,
		})
	}
	return res
}

// Recompute reruns the whole allocation and overwrites the store's cached
// rollups. It must follow every change to cash flow, costs, investors, items,
// inventory or assets.
func Recompute(store *models.Store) Allocation {
	res := Allocate(AllocationInputFor(store))
	store.CapitalRecouped = res.CapitalRecouped
	store.NetProfit = res.NetProfit
	return res
}

// RemainingCapital is the part of initial capital not yet recouped, never negative.
func RemainingCapital(initial, recouped decimal.Decimal) decimal.Decimal {
	rest := initial.Sub(recouped)
	if rest.IsNegative() {
		return decimal.Zero
	}
	return rest
}
