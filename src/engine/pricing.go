package engine

import (
	"github.com/shopspring/decimal"
)

// MarginUndefined is displayed when the purchase price is not positive.
const MarginUndefined = "-"

var hundred = decimal.NewFromInt(100)

// PerSellingUnitPurchasePrice derives the cost of one selling unit from a
// purchase batch: totalPurchasePrice paid for purchasedQuantity purchase units.
// Without a usable batch the previous price is kept so that editing an item
// never erases its known cost.
func PerSellingUnitPurchasePrice(previous, totalPurchasePrice decimal.Decimal, purchasedQuantity, conversionRate int) decimal.Decimal {
	if purchasedQuantity <= 0 || !totalPurchasePrice.IsPositive() {
		return previous
	}
	if conversionRate < 1 {
		conversionRate = 1
	}
	return totalPurchasePrice.
		Div(decimal.NewFromInt(int64(purchasedQuantity))).
		Div(decimal.NewFromInt(int64(conversionRate))).
		Round(4)
}

// MarginPercent returns the markup over purchase price in percent. ok is false
// when the purchase price is zero or negative.
func MarginPercent(purchasePrice, sellingPrice decimal.Decimal) (percent decimal.Decimal, ok bool) {
	if !purchasePrice.IsPositive() {
		return decimal.Zero, false
	}
	return sellingPrice.Sub(purchasePrice).Div(purchasePrice).Mul(hundred), true
}

// FormatMargin renders MarginPercent with one decimal, e.g. "25.0%".
func FormatMargin(purchasePrice, sellingPrice decimal.Decimal) string {
	m, ok := MarginPercent(purchasePrice, sellingPrice)
	if !ok {
		return MarginUndefined
	}
	return m.StringFixed(1) + "%"
}
