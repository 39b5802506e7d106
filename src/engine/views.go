package engine

import (
	"sort"

	"manajemen-toko/src/models"
)

// ItemView is an item with its references resolved for display.
type ItemView struct {
	models.Item
	CategoryName     string `json:"categoryName"`
	SellingUnitName  string `json:"sellingUnitName"`
	PurchaseUnitName string `json:"purchaseUnitName"`
	RecordedStock    int    `json:"recordedStock"`
	StockLabel       string `json:"stockLabel"`
	Margin           string `json:"margin"`
}

func ListItems(store *models.Store) []ItemView {
	out := make([]ItemView, 0, len(store.Items))
	for _, item := range store.Items {
		out = append(out, ItemView{
			Item:             item,
			CategoryName:     store.ItemCategoryName(item.CategoryID),
			SellingUnitName:  store.UnitName(item.SellingUnitID),
			PurchaseUnitName: store.UnitName(item.PurchaseUnitID),
			RecordedStock:    store.RecordedStock(item.ID),
			StockLabel:       ItemStockLabel(store, item),
			Margin:           FormatMargin(item.PurchasePrice, item.SellingPrice),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SKU < out[j].SKU })
	return out
}

type AssetView struct {
	models.Asset
	CategoryName string `json:"categoryName"`
}

func ListAssets(store *models.Store) []AssetView {
	out := make([]AssetView, 0, len(store.Assets))
	for _, a := range store.Assets {
		out = append(out, AssetView{Asset: a, CategoryName: store.AssetCategoryName(a.CategoryID)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
