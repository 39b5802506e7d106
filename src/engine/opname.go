package engine

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"manajemen-toko/src/models"
)

var (
	ErrUnknownItem      = errors.New("item is not in the store catalog")
	ErrUnknownAsset     = errors.New("asset is not registered in the store")
	ErrNegativeCount    = errors.New("physical count cannot be negative")
	ErrInvalidCondition = errors.New("asset condition must be Bagus, Normal or Rusak")
)

// MissingCountError lists catalog items that have no physical count yet.
// Zero is a valid count; an absent entry is not.
type MissingCountError struct {
	Items []string
}

func (e *MissingCountError) Error() string {
	return fmt.Sprintf("physical count missing for %d item(s): %s", len(e.Items), strings.Join(e.Items, ", "))
}

// Submission is a finished count: physical stock per item id (selling units)
// and observed condition per asset id.
type Submission struct {
	Counts     map[string]int
	Conditions map[string]models.AssetCondition
}

// Reconciliation is the outcome of an opname: the report plus the inventory and
// assets that replace the store's current ones.
type Reconciliation struct {
	Session   models.OpnameSession
	Inventory []models.StoreInventory
	Assets    []models.Asset
}

// Apply returns a copy of store with the counted inventory and asset conditions.
func (r Reconciliation) Apply(store models.Store) models.Store {
	updated := store.Clone()
	updated.Inventory = append([]models.StoreInventory(nil), r.Inventory...)
	updated.Assets = append([]models.Asset(nil), r.Assets...)
	return updated
}

// Validate checks a submission before it is reconciled.
func Validate(store *models.Store, sub Submission) error {
	var missing []string
	for _, item := range store.Items {
		count, ok := sub.Counts[item.ID]
		if !ok {
			missing = append(missing, item.Name)
			continue
		}
		if count < 0 {
			return fmt.Errorf("%s: %w", item.Name, ErrNegativeCount)
		}
	}
	if len(missing) > 0 {
		return &MissingCountError{Items: missing}
	}
	for id, cond := range sub.Conditions {
		if store.AssetIndex(id) < 0 {
			return fmt.Errorf("%s: %w", id, ErrUnknownAsset)
		}
		if !cond.Valid() {
			return fmt.Errorf("%s: %w", id, ErrInvalidCondition)
		}
	}
	return nil
}

// Reconcile compares the submission with the store's recorded state. Every
// catalog item appears once in the report; only assets whose condition changed
// are listed. The physical count overwrites the recorded stock.
func Reconcile(store *models.Store, sub Submission, sessionID string, now time.Time) Reconciliation {
	session := models.OpnameSession{
		ID:           sessionID,
		StoreID:      store.ID,
		Date:         now,
		Status:       models.OpnameStatusCompleted,
		Items:        make([]models.OpnameItem, 0, len(store.Items)),
		AssetChanges: []models.OpnameAssetChange{},
	}
	inventory := make([]models.StoreInventory, 0, len(store.Items))

	for i, item := range store.Items {
		initial := store.RecordedStock(item.ID)
		physical := sub.Counts[item.ID]
		session.Items = append(session.Items, models.OpnameItem{
			Position:      i,
			ItemID:        item.ID,
			ItemName:      item.Name,
			Unit:          store.UnitName(item.SellingUnitID),
			InitialStock:  initial,
			PhysicalCount: physical,
			Discrepancy:   physical - initial,
		})
		inventory = append(inventory, models.StoreInventory{ItemID: item.ID, RecordedStock: physical})
	}

	assets := make([]models.Asset, 0, len(store.Assets))
	for _, asset := range store.Assets {
		next, ok := sub.Conditions[asset.ID]
		if !ok || next == "" {
			next = asset.Condition
		}
		if next != asset.Condition {
			session.AssetChanges = append(session.AssetChanges, models.OpnameAssetChange{
				Position:     len(session.AssetChanges),
				AssetID:      asset.ID,
				AssetName:    asset.Name,
				OldCondition: asset.Condition,
				NewCondition: next,
			})
		}
		asset.Condition = next
		assets = append(assets, asset)
	}

	return Reconciliation{Session: session, Inventory: inventory, Assets: assets}
}

// ============ DRAFT ============

// Draft is an opname in progress. It is never persisted; discarding it
// cancels the opname.
type Draft struct {
	store      models.Store
	counts     map[string]int
	conditions map[string]models.AssetCondition
}

// NewDraft starts with every count empty and every asset at its current condition.
func NewDraft(store models.Store) *Draft {
	d := &Draft{
		store:      store.Clone(),
		counts:     make(map[string]int, len(store.Items)),
		conditions: make(map[string]models.AssetCondition, len(store.Assets)),
	}
	for _, a := range store.Assets {
		d.conditions[a.ID] = a.Condition
	}
	return d
}

func (d *Draft) SetCount(itemID string, count int) error {
	if d.store.ItemIndex(itemID) < 0 {
		return fmt.Errorf("%s: %w", itemID, ErrUnknownItem)
	}
	if count < 0 {
		return ErrNegativeCount
	}
	d.counts[itemID] = count
	return nil
}

// ClearCount makes an item's count empty again.
func (d *Draft) ClearCount(itemID string) {
	delete(d.counts, itemID)
}

func (d *Draft) SetCondition(assetID string, cond models.AssetCondition) error {
	if d.store.AssetIndex(assetID) < 0 {
		return fmt.Errorf("%s: %w", assetID, ErrUnknownAsset)
	}
	if !cond.Valid() {
		return ErrInvalidCondition
	}
	d.conditions[assetID] = cond
	return nil
}

// Missing returns the items still waiting for a count, in catalog order.
func (d *Draft) Missing() []models.Item {
	var out []models.Item
	for _, item := range d.store.Items {
		if _, ok := d.counts[item.ID]; !ok {
			out = append(out, item)
		}
	}
	return out
}

func (d *Draft) Submission() Submission {
	sub := Submission{
		Counts:     make(map[string]int, len(d.counts)),
		Conditions: make(map[string]models.AssetCondition, len(d.conditions)),
	}
	for k, v := range d.counts {
		sub.Counts[k] = v
	}
	for k, v := range d.conditions {
		sub.Conditions[k] = v
	}
	return sub
}

func (d *Draft) Sheet() Sheet {
	return BuildSheet(&d.store)
}

// Complete validates the draft and produces the completed session.
func (d *Draft) Complete(sessionID string, now time.Time) (Reconciliation, error) {
	sub := d.Submission()
	if err := Validate(&d.store, sub); err != nil {
		return Reconciliation{}, err
	}
	return Reconcile(&d.store, sub, sessionID, now), nil
}

// ============ COUNTING SHEET ============
type SheetItem struct {
	ItemID        string `json:"itemId"`
	SKU           string `json:"sku"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	RecordedStock int    `json:"recordedStock"`
	StockLabel    string `json:"stockLabel"`
}

type SheetAsset struct {
	AssetID   string                `json:"assetId"`
	Code      string                `json:"code"`
	Name      string                `json:"name"`
	Condition models.AssetCondition `json:"condition"`
}

type Sheet struct {
	StoreID string       `json:"storeId"`
	Items   []SheetItem  `json:"items"`
	Assets  []SheetAsset `json:"assets"`
}

// BuildSheet lists what has to be counted, items sorted by name.
func BuildSheet(store *models.Store) Sheet {
	sheet := Sheet{
		StoreID: store.ID,
		Items:   make([]SheetItem, 0, len(store.Items)),
		Assets:  make([]SheetAsset, 0, len(store.Assets)),
	}
	for _, item := range store.Items {
		sheet.Items = append(sheet.Items, SheetItem{
			ItemID:        item.ID,
			SKU:           item.SKU,
			Name:          item.Name,
			Unit:          store.UnitName(item.SellingUnitID),
			RecordedStock: store.RecordedStock(item.ID),
			StockLabel:    ItemStockLabel(store, item),
		})
	}
	sort.SliceStable(sheet.Items, func(i, j int) bool {
		return sheet.Items[i].Name < sheet.Items[j].Name
	})
	for _, a := range store.Assets {
		sheet.Assets = append(sheet.Assets, SheetAsset{AssetID: a.ID, Code: a.Code, Name: a.Name, Condition: a.Condition})
	}
	return sheet
}

// ============ REPORT SUMMARY ============

// OpnameSummary counts items per outcome and, separately, sums the surplus and
// shortage quantities. MatchedItems+SurplusItems+ShortageItems == TotalItems.
type OpnameSummary struct {
	TotalItems       int `json:"totalItems"`
	MatchedItems     int `json:"matchedItems"`
	SurplusItems     int `json:"surplusItems"`
	ShortageItems    int `json:"shortageItems"`
	SurplusQuantity  int `json:"surplusQuantity"`
	ShortageQuantity int `json:"shortageQuantity"`
}

func SummarizeOpname(session models.OpnameSession) OpnameSummary {
	s := OpnameSummary{TotalItems: len(session.Items)}
	for _, item := range session.Items {
		switch {
		case item.Discrepancy > 0:
			s.SurplusItems++
			s.SurplusQuantity += item.Discrepancy
		case item.Discrepancy < 0:
			s.ShortageItems++
			s.ShortageQuantity += -item.Discrepancy
		default:
			s.MatchedItems++
		}
	}
	return s
}

type AssetSummary struct {
	Checked       int `json:"checked"`
	Changed       int `json:"changed"`
	BecameDamaged int `json:"becameDamaged"`
}

// SummarizeAssets uses the store's current asset count as the number checked.
func SummarizeAssets(session models.OpnameSession, assetsChecked int) AssetSummary {
	s := AssetSummary{Checked: assetsChecked, Changed: len(session.AssetChanges)}
	for _, c := range session.AssetChanges {
		if c.NewCondition == models.ConditionRusak {
			s.BecameDamaged++
		}
	}
	return s
}
