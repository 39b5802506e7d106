package services

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"manajemen-toko/src/config"
	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/spreadsheet"
)

// ImportResult counts imported rows by outcome.
type ImportResult struct {
	Added   int `json:"added"`
	Updated int `json:"updated"`
}

// ============ STORE WORKBOOK ============

// ExportWorkbook - Store data as xlsx, every entity when none is given
func (s *StoreService) ExportWorkbook(ctx context.Context, storeID string, entities ...spreadsheet.Entity) (*spreadsheet.File, error) {
	store, err := s.GetStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return spreadsheet.ExportStore(store, entities...)
}

// ImportWorkbook - Upsert items by SKU, assets by code and costs by name.
// Every row passes the same checks as manual entry; one bad row rejects the
// whole workbook and leaves the store untouched.
func (s *StoreService) ImportWorkbook(ctx context.Context, storeID string, r io.Reader, entities ...spreadsheet.Entity) (*ImportResult, error) {
	wb, err := spreadsheet.ReadWorkbook(r, entities...)
	if err != nil {
		return nil, err
	}

	var res ImportResult
	today := truncateDay(time.Now())
	_, err = s.mutate(ctx, storeID, "ImportWorkbook", func(store *models.Store) error {
		res = ImportResult{}
		for _, row := range wb.Items {
			added, err := importItem(store, row)
			if err != nil {
				return err
			}
			res.count(added)
		}
		for _, row := range wb.Assets {
			added, err := importAsset(store, row, today)
			if err != nil {
				return err
			}
			res.count(added)
		}
		for _, row := range wb.Costs {
			added, err := importCost(store, row)
			if err != nil {
				return err
			}
			res.count(added)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	config.GetLogger().WithFields(logrus.Fields{
		"store_id": storeID,
		"added":    res.Added,
		"updated":  res.Updated,
	}).Info("workbook imported")
	return &res, nil
}

func (r *ImportResult) count(added bool) {
	if added {
		r.Added++
	} else {
		r.Updated++
	}
}

func importItem(store *models.Store, row spreadsheet.ItemRow) (bool, error) {
	existing := -1
	if row.SKU != "" {
		for i := range store.Items {
			if store.Items[i].SKU == row.SKU {
				existing = i
				break
			}
		}
	}

	in := ItemInput{
		Name:               row.Name,
		SellingPrice:       row.SellingPrice,
		TotalPurchasePrice: row.PurchasePrice,
		Description:        row.Description,
		ConversionRate:     1,
	}
	if existing >= 0 {
		item := store.Items[existing]
		in.SellingUnitID, in.PurchaseUnitID, in.ConversionRate = item.SellingUnitID, item.PurchaseUnitID, item.ConversionRate
	}
	if row.Unit != "" {
		unitID := ensureUnit(store, row.Unit)
		in.SellingUnitID = unitID
		if in.PurchaseUnitID == "" || in.ConversionRate == 1 {
			in.PurchaseUnitID = unitID
		}
	}
	if err := validateItem(in); err != nil {
		return false, rowError(row.Sheet, row.Row, err)
	}
	if row.RecordedStock != nil && *row.RecordedStock < 0 {
		return false, rowError(row.Sheet, row.Row, invalid("recorded stock cannot be negative"))
	}
	in.CategoryID = ensureItemCategory(store, row.Category)

	if existing >= 0 {
		item := &store.Items[existing]
		item.Name = strings.TrimSpace(in.Name)
		item.Description = strings.TrimSpace(in.Description)
		if in.CategoryID != "" {
			item.CategoryID = in.CategoryID
		}
		item.SellingUnitID = in.SellingUnitID
		item.PurchaseUnitID = in.PurchaseUnitID
		item.PurchasePrice = row.PurchasePrice
		item.SellingPrice = row.SellingPrice
		if row.RecordedStock != nil {
			setRecordedStock(store, item.ID, *row.RecordedStock)
		}
		return false, nil
	}

	sku := row.SKU
	if sku == "" {
		sku = engine.NextSKU(store, in.CategoryID)
	}
	item := models.Item{
		ID:             uuid.NewString(),
		SKU:            sku,
		Name:           strings.TrimSpace(in.Name),
		CategoryID:     in.CategoryID,
		SellingUnitID:  in.SellingUnitID,
		PurchaseUnitID: in.PurchaseUnitID,
		ConversionRate: in.ConversionRate,
		PurchasePrice:  row.PurchasePrice,
		SellingPrice:   row.SellingPrice,
		Description:    strings.TrimSpace(in.Description),
	}
	store.Items = append(store.Items, item)
	stock := 0
	if row.RecordedStock != nil {
		stock = *row.RecordedStock
	}
	setRecordedStock(store, item.ID, stock)
	return true, nil
}

// importAsset falls back to Normal for an unknown condition and to today for
// a blank purchase date.
func importAsset(store *models.Store, row spreadsheet.AssetRow, today time.Time) (bool, error) {
	condition, ok := models.ParseAssetCondition(row.Condition)
	if !ok {
		condition = models.ConditionNormal
	}
	date := row.PurchaseDate
	if date.IsZero() {
		date = today
	}
	in := AssetInput{
		Name:         row.Name,
		PurchaseDate: date,
		Value:        row.Value,
		Description:  row.Description,
		Condition:    condition,
	}
	if err := validateAsset(&in); err != nil {
		return false, rowError(row.Sheet, row.Row, err)
	}
	in.CategoryID = ensureAssetCategory(store, row.Category)

	if row.Code != "" {
		for i := range store.Assets {
			a := &store.Assets[i]
			if a.Code != row.Code {
				continue
			}
			a.Name = strings.TrimSpace(in.Name)
			a.Description = strings.TrimSpace(in.Description)
			if in.CategoryID != "" {
				a.CategoryID = in.CategoryID
			}
			a.PurchaseDate = in.PurchaseDate
			a.Value = in.Value
			a.Condition = in.Condition
			return false, nil
		}
	}

	code := row.Code
	if code == "" {
		code = engine.NextAssetCode(store, in.CategoryID)
	}
	store.Assets = append(store.Assets, models.Asset{
		ID:           uuid.NewString(),
		Code:         code,
		Name:         strings.TrimSpace(in.Name),
		CategoryID:   in.CategoryID,
		PurchaseDate: in.PurchaseDate,
		Value:        in.Value,
		Description:  strings.TrimSpace(in.Description),
		Condition:    in.Condition,
	})
	return true, nil
}

func importCost(store *models.Store, row spreadsheet.CostRow) (bool, error) {
	in := CostInput{Name: row.Name, Amount: row.Amount, Frequency: row.Frequency, Description: row.Description}
	if err := validateCost(in); err != nil {
		return false, rowError(row.Sheet, row.Row, err)
	}
	name := strings.TrimSpace(in.Name)
	for i := range store.Costs {
		c := &store.Costs[i]
		if strings.EqualFold(c.Name, name) {
			c.Name = name
			c.Amount = in.Amount
			c.Frequency = in.Frequency
			c.Description = strings.TrimSpace(in.Description)
			return false, nil
		}
	}
	store.Costs = append(store.Costs, models.OperationalCost{
		ID:          uuid.NewString(),
		Name:        name,
		Amount:      in.Amount,
		Frequency:   in.Frequency,
		Description: strings.TrimSpace(in.Description),
	})
	return true, nil
}

// ============ MASTER DATA LOOKUPS ============

// ensureItemCategory finds a category by name, ignoring case, and creates it
// when missing. A blank name resolves to no category.
func ensureItemCategory(store *models.Store, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, c := range store.ItemCategories {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}
	c := models.ItemCategory{ID: uuid.NewString(), Name: name, Prefix: engine.PrefixFromName(name)}
	store.ItemCategories = append(store.ItemCategories, c)
	return c.ID
}

func ensureAssetCategory(store *models.Store, name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return ""
	}
	for _, c := range store.AssetCategories {
		if strings.EqualFold(c.Name, name) {
			return c.ID
		}
	}
	c := models.AssetCategory{ID: uuid.NewString(), Name: name, Prefix: engine.PrefixFromName(name)}
	store.AssetCategories = append(store.AssetCategories, c)
	return c.ID
}

func ensureUnit(store *models.Store, name string) string {
	name = strings.TrimSpace(name)
	for _, u := range store.Units {
		if strings.EqualFold(u.Name, name) {
			return u.ID
		}
	}
	u := models.Unit{ID: uuid.NewString(), Name: name}
	store.Units = append(store.Units, u)
	return u.ID
}

func setRecordedStock(store *models.Store, itemID string, stock int) {
	if i := store.InventoryIndex(itemID); i >= 0 {
		store.Inventory[i].RecordedStock = stock
		return
	}
	store.Inventory = append(store.Inventory, models.StoreInventory{ItemID: itemID, RecordedStock: stock})
}

func rowError(sheet string, row int, err error) error {
	return &spreadsheet.RowError{Sheet: sheet, Row: row, Err: err}
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ============ OPNAME WORKBOOKS ============

// ExportForm - Offline counting form for a store
func (s *OpnameService) ExportForm(ctx context.Context, storeID string) (*spreadsheet.File, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	return spreadsheet.ExportOpnameForm(store)
}

// ExportReport - Result workbook of one completed session
func (s *OpnameService) ExportReport(ctx context.Context, storeID, sessionID string) (*spreadsheet.File, error) {
	report, err := s.Report(ctx, storeID, sessionID)
	if err != nil {
		return nil, err
	}
	return spreadsheet.ExportOpnameReport(report.StoreName, report.Session)
}

// CompleteFromForm - Complete an opname from a filled offline form. Every item
// still needs a count; assets left blank keep their condition.
func (s *OpnameService) CompleteFromForm(ctx context.Context, storeID string, r io.Reader) (*OpnameReport, error) {
	store, err := s.findStore(ctx, storeID)
	if err != nil {
		return nil, err
	}
	form, err := spreadsheet.ReadOpnameForm(r)
	if err != nil {
		return nil, err
	}

	sub := engine.Submission{
		Counts:     make(map[string]int, len(form.Counts)),
		Conditions: make(map[string]models.AssetCondition, len(form.Conditions)),
	}
	for sku, n := range form.Counts {
		id := ""
		for _, item := range store.Items {
			if item.SKU == sku {
				id = item.ID
				break
			}
		}
		if id == "" {
			return nil, invalid(fmt.Sprintf("unknown SKU %q in form", sku))
		}
		sub.Counts[id] = n
	}
	for code, c := range form.Conditions {
		id := ""
		for _, a := range store.Assets {
			if a.Code == code {
				id = a.ID
				break
			}
		}
		if id == "" {
			return nil, invalid(fmt.Sprintf("unknown asset code %q in form", code))
		}
		sub.Conditions[id] = c
	}
	return s.CompleteOpname(ctx, storeID, sub)
}
