package requests

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// Money fields are pointers so `required` can tell a missing value from zero.

// ============ STORE ============
type StoreRequest struct {
	ID      string `json:"id" binding:"omitempty,max=64"`
	Name    string `json:"name" binding:"required,max=120"`
	Address string `json:"address" binding:"max=255"`
}

// ============ MASTER DATA ============
type CategoryRequest struct {
	Name   string `json:"name" binding:"required,max=80"`
	Prefix string `json:"prefix" binding:"omitempty,alphanum,max=10"`
}

type UnitRequest struct {
	Name string `json:"name" binding:"required,max=40"`
}

// ============ ITEMS ============
type ItemRequest struct {
	Name           string           `json:"name" binding:"required,max=120"`
	CategoryID     string           `json:"categoryId"`
	SellingUnitID  string           `json:"sellingUnitId" binding:"required"`
	PurchaseUnitID string           `json:"purchaseUnitId" binding:"required"`
	ConversionRate int              `json:"conversionRate" binding:"required,min=1"`
	SellingPrice   *decimal.Decimal `json:"sellingPrice" binding:"required"`
	Description    string           `json:"description" binding:"max=500"`

	// Optional purchase batch; the per-unit purchase price is derived from it
	TotalPurchasePrice *decimal.Decimal `json:"totalPurchasePrice,omitempty"`
	PurchasedQuantity  int              `json:"purchasedQuantity" binding:"min=0"`

	// Only read on create
	InitialStock int    `json:"initialStock" binding:"min=0"`
	StockUnit    string `json:"stockUnit" binding:"omitempty,oneof=purchase selling"`
}

type RestockRequest struct {
	Quantity           int              `json:"quantity" binding:"required,min=1"`
	Unit               string           `json:"unit" binding:"required,oneof=purchase selling"`
	TotalPurchasePrice *decimal.Decimal `json:"totalPurchasePrice,omitempty"`
}

// ============ ASSETS ============
type AssetRequest struct {
	Name         string           `json:"name" binding:"required,max=120"`
	CategoryID   string           `json:"categoryId"`
	PurchaseDate string           `json:"purchaseDate" binding:"required,datetime=2006-01-02"`
	Value        *decimal.Decimal `json:"value" binding:"required"`
	Description  string           `json:"description" binding:"max=500"`
	Condition    string           `json:"condition" binding:"omitempty,oneof=Bagus Normal Rusak"`
}

// ============ FINANCE ============
type CostRequest struct {
	Name        string           `json:"name" binding:"required,max=120"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Frequency   string           `json:"frequency" binding:"required,oneof=harian mingguan bulanan tahunan sekali"`
	Description string           `json:"description" binding:"max=500"`
}

type InvestorRequest struct {
	Name            string           `json:"name" binding:"required,max=120"`
	SharePercentage *decimal.Decimal `json:"sharePercentage" binding:"required"`
}

type CashFlowRequest struct {
	Date        string           `json:"date" binding:"required,datetime=2006-01-02"`
	Amount      *decimal.Decimal `json:"amount" binding:"required"`
	Description string           `json:"description" binding:"max=500"`
}

// ============ OPNAME ============

// OpnameRequest keys counts by item id and conditions by asset id.
type OpnameRequest struct {
	Counts     map[string]int    `json:"counts" binding:"required"`
	Conditions map[string]string `json:"conditions" binding:"omitempty,dive,oneof=Bagus Normal Rusak"`
}

// ============ HELPERS ============

// Amount - Value of an optional money field, zero when absent
func Amount(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// ProcessValidationErrors - Field to failed rule, nil when err is not a validation error
func ProcessValidationErrors(err error) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	errorResponse := make(map[string]string)
	for _, ve := range validationErrors {
		errorResponse[ve.Field()] = ve.Tag()
	}
	return errorResponse
}
