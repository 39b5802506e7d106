package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// NotAvailable is shown in place of a category or unit name whose id no longer resolves.
const NotAvailable = "N/A"

// ============ ENUMS & TYPES ============
type AssetCondition string

const (
	ConditionBagus  AssetCondition = "Bagus"
	ConditionNormal AssetCondition = "Normal"
	ConditionRusak  AssetCondition = "Rusak"
)

var AssetConditions = []AssetCondition{ConditionBagus, ConditionNormal, ConditionRusak}

func (c AssetCondition) Valid() bool {
	switch c {
	case ConditionBagus, ConditionNormal, ConditionRusak:
		return true
	default:
		return false
	}
}

// ParseAssetCondition matches s case-insensitively against the known conditions.
func ParseAssetCondition(s string) (AssetCondition, bool) {
	s = strings.TrimSpace(s)
	for _, c := range AssetConditions {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type CostFrequency string

const (
	FrequencyHarian   CostFrequency = "harian"
	FrequencyMingguan CostFrequency = "mingguan"
	FrequencyBulanan  CostFrequency = "bulanan"
	FrequencyTahunan  CostFrequency = "tahunan"
	FrequencySekali   CostFrequency = "sekali"
)

func (f CostFrequency) Valid() bool {
	switch f {
	case FrequencyHarian, FrequencyMingguan, FrequencyBulanan, FrequencyTahunan, FrequencySekali:
		return true
	default:
		return false
	}
}

// ============ MASTER DATA ============
type ItemCategory struct {
	ID     string `json:"id" msgpack:"id"`
	Name   string `json:"name" msgpack:"name"`
	Prefix string `json:"prefix" msgpack:"prefix"`
}

type Unit struct {
	ID   string `json:"id" msgpack:"id"`
	Name string `json:"name" msgpack:"name"`
}

type AssetCategory struct {
	ID     string `json:"id" msgpack:"id"`
	Name   string `json:"name" msgpack:"name"`
	Prefix string `json:"prefix" msgpack:"prefix"`
}

// Item prices are always per selling unit.
type Item struct {
	ID             string          `json:"id" msgpack:"id"`
	SKU            string          `json:"sku" msgpack:"sku"`
	Name           string          `json:"name" msgpack:"name"`
	CategoryID     string          `json:"categoryId" msgpack:"category_id"`
	SellingUnitID  string          `json:"sellingUnitId" msgpack:"selling_unit_id"`
	PurchaseUnitID string          `json:"purchaseUnitId" msgpack:"purchase_unit_id"`
	ConversionRate int             `json:"conversionRate" msgpack:"conversion_rate"`
	PurchasePrice  decimal.Decimal `json:"purchasePrice" msgpack:"purchase_price"`
	SellingPrice   decimal.Decimal `json:"sellingPrice" msgpack:"selling_price"`
	Description    string          `json:"description" msgpack:"description"`
}

// StoreInventory holds the recorded stock of one item, in selling units.
type StoreInventory struct {
	ItemID        string `json:"itemId" msgpack:"item_id"`
	RecordedStock int    `json:"recordedStock" msgpack:"recorded_stock"`
}

type Asset struct {
	ID           string          `json:"id" msgpack:"id"`
	Code         string          `json:"code" msgpack:"code"`
	Name         string          `json:"name" msgpack:"name"`
	CategoryID   string          `json:"categoryId" msgpack:"category_id"`
	PurchaseDate time.Time       `json:"purchaseDate" msgpack:"purchase_date"`
	Value        decimal.Decimal `json:"value" msgpack:"value"`
	Description  string          `json:"description" msgpack:"description"`
	Condition    AssetCondition  `json:"condition" msgpack:"condition"`
}

type OperationalCost struct {
	ID          string          `json:"id" msgpack:"id"`
	Name        string          `json:"name" msgpack:"name"`
	Amount      decimal.Decimal `json:"amount" msgpack:"amount"`
	Frequency   CostFrequency   `json:"frequency" msgpack:"frequency"`
	Description string          `json:"description" msgpack:"description"`
}

type Investor struct {
	ID              string          `json:"id" msgpack:"id"`
	Name            string          `json:"name" msgpack:"name"`
	SharePercentage decimal.Decimal `json:"sharePercentage" msgpack:"share_percentage"`
}

type CashFlowEntry struct {
	ID          string          `json:"id" msgpack:"id"`
	Date        time.Time       `json:"date" msgpack:"date"`
	Amount      decimal.Decimal `json:"amount" msgpack:"amount"`
	Description string          `json:"description" msgpack:"description"`
}

// ============ AGGREGATE ============

// Store owns every collection of one shop. CapitalRecouped and NetProfit are
// derived values and are rewritten by a full recompute on each mutation.
type Store struct {
	ID              string            `json:"id" msgpack:"id"`
	Name            string            `json:"name" msgpack:"name"`
	Address         string            `json:"address,omitempty" msgpack:"address"`
	ItemCategories  []ItemCategory    `json:"itemCategories" msgpack:"item_categories"`
	Units           []Unit            `json:"units" msgpack:"units"`
	AssetCategories []AssetCategory   `json:"assetCategories" msgpack:"asset_categories"`
	Items           []Item            `json:"items" msgpack:"items"`
	Inventory       []StoreInventory  `json:"inventory" msgpack:"inventory"`
	Assets          []Asset           `json:"assets" msgpack:"assets"`
	Costs           []OperationalCost `json:"costs" msgpack:"costs"`
	Investors       []Investor        `json:"investors" msgpack:"investors"`
	CashFlow        []CashFlowEntry   `json:"cashFlow" msgpack:"cash_flow"`
	CapitalRecouped decimal.Decimal   `json:"capitalRecouped" msgpack:"capital_recouped"`
	NetProfit       decimal.Decimal   `json:"netProfit" msgpack:"net_profit"`
}

// Clone returns a copy whose slices can be modified without touching s.
func (s Store) Clone() Store {
	c := s
	c.ItemCategories = append([]ItemCategory(nil), s.ItemCategories...)
	c.Units = append([]Unit(nil), s.Units...)
	c.AssetCategories = append([]AssetCategory(nil), s.AssetCategories...)
	c.Items = append([]Item(nil), s.Items...)
	c.Inventory = append([]StoreInventory(nil), s.Inventory...)
	c.Assets = append([]Asset(nil), s.Assets...)
	c.Costs = append([]OperationalCost(nil), s.Costs...)
	c.Investors = append([]Investor(nil), s.Investors...)
	c.CashFlow = append([]CashFlowEntry(nil), s.CashFlow...)
	return c
}

// ============ LOOKUPS ============

func (s *Store) ItemIndex(id string) int {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) AssetIndex(id string) int {
	for i := range s.Assets {
		if s.Assets[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) InventoryIndex(itemID string) int {
	for i := range s.Inventory {
		if s.Inventory[i].ItemID == itemID {
			return i
		}
	}
	return -1
}

// RecordedStock returns 0 for an item without an inventory record.
func (s *Store) RecordedStock(itemID string) int {
	if i := s.InventoryIndex(itemID); i >= 0 {
		return s.Inventory[i].RecordedStock
	}
	return 0
}

func (s *Store) UnitName(id string) string {
	for _, u := range s.Units {
		if u.ID == id {
			return u.Name
		}
	}
	return NotAvailable
}

func (s *Store) ItemCategory(id string) (ItemCategory, bool) {
	for _, c := range s.ItemCategories {
		if c.ID == id {
			return c, true
		}
	}
	return ItemCategory{}, false
}

func (s *Store) AssetCategory(id string) (AssetCategory, bool) {
	for _, c := range s.AssetCategories {
		if c.ID == id {
			return c, true
		}
	}
	return AssetCategory{}, false
}

func (s *Store) ItemCategoryName(id string) string {
	if c, ok := s.ItemCategory(id); ok {
		return c.Name
	}
	return NotAvailable
}

func (s *Store) AssetCategoryName(id string) string {
	if c, ok := s.AssetCategory(id); ok {
		return c.Name
	}
	return NotAvailable
}
