package engine

import (
	"fmt"

	"manajemen-toko/src/models"
)

// QuantityUnit says which unit an entered quantity is counted in.
type QuantityUnit string

const (
	UnitPurchase QuantityUnit = "purchase"
	UnitSelling  QuantityUnit = "selling"
)

func (u QuantityUnit) Valid() bool {
	return u == UnitPurchase || u == UnitSelling
}

// SplitStock breaks a stock level counted in selling units into whole purchase
// units and the selling-unit remainder. A rate below 1 is treated as 1.
func SplitStock(total, conversionRate int) (purchaseUnits, remainder int) {
	if conversionRate < 1 {
		conversionRate = 1
	}
	return total / conversionRate, total % conversionRate
}

// ToSellingUnits converts an entered quantity to selling units.
func ToSellingUnits(quantity int, unit QuantityUnit, conversionRate int) int {
	if unit == UnitPurchase {
		if conversionRate < 1 {
			conversionRate = 1
		}
		return quantity * conversionRate
	}
	return quantity
}

// StockLabel renders a stock level like "2 Dus 2 Bungkus". Items sold in the
// unit they are bought in show the plain total.
func StockLabel(total, conversionRate int, purchaseUnit, sellingUnit string, sameUnit bool) string {
	if conversionRate <= 1 || sameUnit {
		return fmt.Sprintf("%d %s", total, sellingUnit)
	}
	boxes, rest := SplitStock(total, conversionRate)
	switch {
	case boxes == 0:
		return fmt.Sprintf("%d %s", rest, sellingUnit)
	case rest == 0:
		return fmt.Sprintf("%d %s", boxes, purchaseUnit)
	default:
		return fmt.Sprintf("%d %s %d %s", boxes, purchaseUnit, rest, sellingUnit)
	}
}

// ItemStockLabel is StockLabel with the unit names resolved from the store.
func ItemStockLabel(store *models.Store, item models.Item) string {
	return StockLabel(
		store.RecordedStock(item.ID),
		item.ConversionRate,
		store.UnitName(item.PurchaseUnitID),
		store.UnitName(item.SellingUnitID),
		item.PurchaseUnitID == item.SellingUnitID,
	)
}
