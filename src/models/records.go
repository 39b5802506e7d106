package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ============ STORE DOCUMENT ============

// StoreRecord persists one Store aggregate as an encoded document. The rollup
// columns duplicate the document's cached values so listings need no decoding.
type StoreRecord struct {
	ID              string          `gorm:"type:varchar(64);primaryKey"`
	Name            string          `gorm:"type:varchar(200);not null"`
	Address         string          `gorm:"type:text"`
	CapitalRecouped decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	NetProfit       decimal.Decimal `gorm:"type:numeric(20,4);not null;default:0"`
	Document        []byte          `gorm:"not null"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (StoreRecord) TableName() string {
	return "stores"
}

// ============ OPNAME HISTORY ============
type OpnameStatus string

const OpnameStatusCompleted OpnameStatus = "completed"

// OpnameSession is the immutable report of one physical count.
type OpnameSession struct {
	ID           string              `gorm:"type:varchar(64);primaryKey" json:"id"`
	StoreID      string              `gorm:"type:varchar(64);not null;index:idx_opname_store_date" json:"storeId"`
	Date         time.Time           `gorm:"column:session_date;not null;index:idx_opname_store_date" json:"date"`
	Status       OpnameStatus        `gorm:"type:varchar(20);not null" json:"status"`
	Items        []OpnameItem        `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"items"`
	AssetChanges []OpnameAssetChange `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"assetChanges"`
}

func (OpnameSession) TableName() string {
	return "opname_sessions"
}

// OpnameItem snapshots the item name and unit at session time.
type OpnameItem struct {
	ID            uint   `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID     string `gorm:"type:varchar(64);not null;index" json:"-"`
	Position      int    `gorm:"not null" json:"-"`
	ItemID        string `gorm:"type:varchar(64);not null" json:"itemId"`
	ItemName      string `gorm:"type:varchar(200);not null" json:"itemName"`
	Unit          string `gorm:"type:varchar(50);not null" json:"unit"`
	InitialStock  int    `gorm:"not null" json:"initialStock"`
	PhysicalCount int    `gorm:"not null" json:"physicalCount"`
	Discrepancy   int    `gorm:"not null" json:"discrepancy"`
}

func (OpnameItem) TableName() string {
	return "opname_items"
}

type OpnameAssetChange struct {
	ID           uint           `gorm:"primaryKey;autoIncrement" json:"-"`
	SessionID    string         `gorm:"type:varchar(64);not null;index" json:"-"`
	Position     int            `gorm:"not null" json:"-"`
	AssetID      string         `gorm:"type:varchar(64);not null" json:"assetId"`
	AssetName    string         `gorm:"type:varchar(200);not null" json:"assetName"`
	OldCondition AssetCondition `gorm:"type:varchar(20);not null" json:"oldCondition"`
	NewCondition AssetCondition `gorm:"type:varchar(20);not null" json:"newCondition"`
}

func (OpnameAssetChange) TableName() string {
	return "opname_asset_changes"
}
