package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
)

// ============ REQUEST STRUCTS ============
type CategoryInput struct {
	Name   string
	Prefix string
}

type UnitInput struct {
	Name string
}

// ItemInput carries the purchase batch the per-unit purchase price is derived
// from. InitialStock is only read when the item is created.
type ItemInput struct {
	Name               string
	CategoryID         string
	SellingUnitID      string
	PurchaseUnitID     string
	ConversionRate     int
	SellingPrice       decimal.Decimal
	TotalPurchasePrice decimal.Decimal
	PurchasedQuantity  int
	Description        string
	InitialStock       int
	StockUnit          engine.QuantityUnit
}

type RestockInput struct {
	Quantity           int
	Unit               engine.QuantityUnit
	TotalPurchasePrice decimal.Decimal
}

type AssetInput struct {
	Name         string
	CategoryID   string
	PurchaseDate time.Time
	Value        decimal.Decimal
	Description  string
	Condition    models.AssetCondition
}

// ============ ITEM CATEGORIES ============

// AddItemCategory - Add an item category; prefix defaults to the first letters of the name
func (s *StoreService) AddItemCategory(ctx context.Context, storeID string, in CategoryInput) (*models.ItemCategory, error) {
	name, prefix, err := normalizeCategory(in)
	if err != nil {
		return nil, err
	}
	cat := models.ItemCategory{ID: uuid.NewString(), Name: name, Prefix: prefix}
	_, err = s.mutate(ctx, storeID, "AddItemCategory", func(store *models.Store) error {
		store.ItemCategories = append(store.ItemCategories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *StoreService) UpdateItemCategory(ctx context.Context, storeID, categoryID string, in CategoryInput) (*models.ItemCategory, error) {
	name, prefix, err := normalizeCategory(in)
	if err != nil {
		return nil, err
	}
	var out models.ItemCategory
	_, err = s.mutate(ctx, storeID, "UpdateItemCategory", func(store *models.Store) error {
		for i := range store.ItemCategories {
			if store.ItemCategories[i].ID == categoryID {
				store.ItemCategories[i].Name = name
				store.ItemCategories[i].Prefix = prefix
				out = store.ItemCategories[i]
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItemCategory - Refused while any item still uses the category
func (s *StoreService) DeleteItemCategory(ctx context.Context, storeID, categoryID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteItemCategory", func(store *models.Store) error {
		for _, item := range store.Items {
			if item.CategoryID == categoryID {
				return ErrInUse
			}
		}
		for i, c := range store.ItemCategories {
			if c.ID == categoryID {
				store.ItemCategories = append(store.ItemCategories[:i], store.ItemCategories[i+1:]...)
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	return err
}

// ============ UNITS ============
func (s *StoreService) AddUnit(ctx context.Context, storeID string, in UnitInput) (*models.Unit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("unit name is required")
	}
	unit := models.Unit{ID: uuid.NewString(), Name: name}
	_, err := s.mutate(ctx, storeID, "AddUnit", func(store *models.Store) error {
		store.Units = append(store.Units, unit)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

func (s *StoreService) UpdateUnit(ctx context.Context, storeID, unitID string, in UnitInput) (*models.Unit, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, invalid("unit name is required")
	}
	var out models.Unit
	_, err := s.mutate(ctx, storeID, "UpdateUnit", func(store *models.Store) error {
		for i := range store.Units {
			if store.Units[i].ID == unitID {
				store.Units[i].Name = name
				out = store.Units[i]
				return nil
			}
		}
		return ErrUnitNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteUnit - Refused while any item sells or buys in the unit
func (s *StoreService) DeleteUnit(ctx context.Context, storeID, unitID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteUnit", func(store *models.Store) error {
		for _, item := range store.Items {
			if item.SellingUnitID == unitID || item.PurchaseUnitID == unitID {
				return ErrInUse
			}
		}
		for i, u := range store.Units {
			if u.ID == unitID {
				store.Units = append(store.Units[:i], store.Units[i+1:]...)
				return nil
			}
		}
		return ErrUnitNotFound
	})
	return err
}

// ============ ASSET CATEGORIES ============
func (s *StoreService) AddAssetCategory(ctx context.Context, storeID string, in CategoryInput) (*models.AssetCategory, error) {
	name, prefix, err := normalizeCategory(in)
	if err != nil {
		return nil, err
	}
	cat := models.AssetCategory{ID: uuid.NewString(), Name: name, Prefix: prefix}
	_, err = s.mutate(ctx, storeID, "AddAssetCategory", func(store *models.Store) error {
		store.AssetCategories = append(store.AssetCategories, cat)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &cat, nil
}

func (s *StoreService) UpdateAssetCategory(ctx context.Context, storeID, categoryID string, in CategoryInput) (*models.AssetCategory, error) {
	name, prefix, err := normalizeCategory(in)
	if err != nil {
		return nil, err
	}
	var out models.AssetCategory
	_, err = s.mutate(ctx, storeID, "UpdateAssetCategory", func(store *models.Store) error {
		for i := range store.AssetCategories {
			if store.AssetCategories[i].ID == categoryID {
				store.AssetCategories[i].Name = name
				store.AssetCategories[i].Prefix = prefix
				out = store.AssetCategories[i]
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) DeleteAssetCategory(ctx context.Context, storeID, categoryID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteAssetCategory", func(store *models.Store) error {
		for _, a := range store.Assets {
			if a.CategoryID == categoryID {
				return ErrInUse
			}
		}
		for i, c := range store.AssetCategories {
			if c.ID == categoryID {
				store.AssetCategories = append(store.AssetCategories[:i], store.AssetCategories[i+1:]...)
				return nil
			}
		}
		return ErrCategoryNotFound
	})
	return err
}

// ============ ITEMS ============

// AddItem - Create an item with its initial stock. The SKU is assigned here and never changes.
func (s *StoreService) AddItem(ctx context.Context, storeID string, in ItemInput) (*models.Item, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}
	if in.InitialStock < 0 {
		return nil, invalid("initial stock cannot be negative")
	}
	unit := in.StockUnit
	if unit == "" {
		unit = engine.UnitSelling
	}
	if !unit.Valid() {
		return nil, invalid("stock unit must be purchase or selling")
	}

	var out models.Item
	_, err := s.mutate(ctx, storeID, "AddItem", func(store *models.Store) error {
		out = models.Item{
			ID:             uuid.NewString(),
			SKU:            engine.NextSKU(store, in.CategoryID),
			Name:           strings.TrimSpace(in.Name),
			CategoryID:     in.CategoryID,
			SellingUnitID:  in.SellingUnitID,
			PurchaseUnitID: in.PurchaseUnitID,
			ConversionRate: in.ConversionRate,
			PurchasePrice:  engine.PerSellingUnitPurchasePrice(decimal.Zero, in.TotalPurchasePrice, in.PurchasedQuantity, in.ConversionRate),
			SellingPrice:   in.SellingPrice,
			Description:    strings.TrimSpace(in.Description),
		}
		store.Items = append(store.Items, out)
		store.Inventory = append(store.Inventory, models.StoreInventory{
			ItemID:        out.ID,
			RecordedStock: engine.ToSellingUnits(in.InitialStock, unit, in.ConversionRate),
		})
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateItem - Edit an item. Without a new purchase batch the known purchase price is kept.
func (s *StoreService) UpdateItem(ctx context.Context, storeID, itemID string, in ItemInput) (*models.Item, error) {
	if err := validateItem(in); err != nil {
		return nil, err
	}

	var out models.Item
	_, err := s.mutate(ctx, storeID, "UpdateItem", func(store *models.Store) error {
		i := store.ItemIndex(itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		item := &store.Items[i]
		item.Name = strings.TrimSpace(in.Name)
		item.CategoryID = in.CategoryID
		item.SellingUnitID = in.SellingUnitID
		item.PurchaseUnitID = in.PurchaseUnitID
		item.ConversionRate = in.ConversionRate
		item.PurchasePrice = engine.PerSellingUnitPurchasePrice(item.PurchasePrice, in.TotalPurchasePrice, in.PurchasedQuantity, in.ConversionRate)
		item.SellingPrice = in.SellingPrice
		item.Description = strings.TrimSpace(in.Description)
		out = *item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteItem - Remove an item together with its inventory record
func (s *StoreService) DeleteItem(ctx context.Context, storeID, itemID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteItem", func(store *models.Store) error {
		i := store.ItemIndex(itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		store.Items = append(store.Items[:i], store.Items[i+1:]...)
		if j := store.InventoryIndex(itemID); j >= 0 {
			store.Inventory = append(store.Inventory[:j], store.Inventory[j+1:]...)
		}
		return nil
	})
	return err
}

// Restock - Add stock to an item. A batch price re-derives the per-unit purchase price.
func (s *StoreService) Restock(ctx context.Context, storeID, itemID string, in RestockInput) (*models.StoreInventory, error) {
	if in.Quantity <= 0 {
		return nil, invalid("restock quantity must be positive")
	}
	if !in.Unit.Valid() {
		return nil, invalid("restock unit must be purchase or selling")
	}
	if in.TotalPurchasePrice.IsNegative() {
		return nil, invalid("purchase price cannot be negative")
	}

	var out models.StoreInventory
	_, err := s.mutate(ctx, storeID, "Restock", func(store *models.Store) error {
		i := store.ItemIndex(itemID)
		if i < 0 {
			return ErrItemNotFound
		}
		item := &store.Items[i]
		added := engine.ToSellingUnits(in.Quantity, in.Unit, item.ConversionRate)

		rate := item.ConversionRate
		if in.Unit == engine.UnitSelling {
			rate = 1
		}
		item.PurchasePrice = engine.PerSellingUnitPurchasePrice(item.PurchasePrice, in.TotalPurchasePrice, in.Quantity, rate)

		j := store.InventoryIndex(itemID)
		if j < 0 {
			store.Inventory = append(store.Inventory, models.StoreInventory{ItemID: itemID})
			j = len(store.Inventory) - 1
		}
		store.Inventory[j].RecordedStock += added
		out = store.Inventory[j]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ============ ASSETS ============
func (s *StoreService) AddAsset(ctx context.Context, storeID string, in AssetInput) (*models.Asset, error) {
	if err := validateAsset(&in); err != nil {
		return nil, err
	}
	var out models.Asset
	_, err := s.mutate(ctx, storeID, "AddAsset", func(store *models.Store) error {
		out = models.Asset{
			ID:           uuid.NewString(),
			Code:         engine.NextAssetCode(store, in.CategoryID),
			Name:         strings.TrimSpace(in.Name),
			CategoryID:   in.CategoryID,
			PurchaseDate: in.PurchaseDate,
			Value:        in.Value,
			Description:  strings.TrimSpace(in.Description),
			Condition:    in.Condition,
		}
		store.Assets = append(store.Assets, out)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateAsset - Edit an asset; id and code stay as they are
func (s *StoreService) UpdateAsset(ctx context.Context, storeID, assetID string, in AssetInput) (*models.Asset, error) {
	if err := validateAsset(&in); err != nil {
		return nil, err
	}
	var out models.Asset
	_, err := s.mutate(ctx, storeID, "UpdateAsset", func(store *models.Store) error {
		i := store.AssetIndex(assetID)
		if i < 0 {
			return ErrAssetNotFound
		}
		a := &store.Assets[i]
		a.Name = strings.TrimSpace(in.Name)
		a.CategoryID = in.CategoryID
		a.PurchaseDate = in.PurchaseDate
		a.Value = in.Value
		a.Description = strings.TrimSpace(in.Description)
		a.Condition = in.Condition
		out = *a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *StoreService) DeleteAsset(ctx context.Context, storeID, assetID string) error {
	_, err := s.mutate(ctx, storeID, "DeleteAsset", func(store *models.Store) error {
		i := store.AssetIndex(assetID)
		if i < 0 {
			return ErrAssetNotFound
		}
		store.Assets = append(store.Assets[:i], store.Assets[i+1:]...)
		return nil
	})
	return err
}

// ============ VALIDATION ============
func normalizeCategory(in CategoryInput) (name, prefix string, err error) {
	name = strings.TrimSpace(in.Name)
	if name == "" {
		return "", "", invalid("category name is required")
	}
	prefix = strings.ToUpper(strings.TrimSpace(in.Prefix))
	if prefix == "" {
		prefix = engine.PrefixFromName(name)
	}
	return name, prefix, nil
}

func validateItem(in ItemInput) error {
	switch {
	case strings.TrimSpace(in.Name) == "":
		return invalid("item name is required")
	case in.SellingUnitID == "" || in.PurchaseUnitID == "":
		return invalid("selling and purchase units are required")
	case in.ConversionRate < 1:
		return invalid("conversion rate must be at least 1")
	case in.SellingPrice.IsNegative():
		return invalid("selling price cannot be negative")
	case in.TotalPurchasePrice.IsNegative():
		return invalid("purchase price cannot be negative")
	case in.PurchasedQuantity < 0:
		return invalid("purchased quantity cannot be negative")
	}
	return nil
}

func validateAsset(in *AssetInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return invalid("asset name is required")
	}
	if in.Value.IsNegative() {
		return invalid("asset value cannot be negative")
	}
	if in.Condition == "" {
		in.Condition = models.ConditionNormal
	}
	if !in.Condition.Valid() {
		return invalid("asset condition must be Bagus, Normal or Rusak")
	}
	return nil
}
