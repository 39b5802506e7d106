package services

import "errors"

var (
	ErrStoreNotFound    = errors.New("store not found")
	ErrItemNotFound     = errors.New("item not found")
	ErrAssetNotFound    = errors.New("asset not found")
	ErrCostNotFound     = errors.New("operational cost not found")
	ErrInvestorNotFound = errors.New("investor not found")
	ErrCashFlowNotFound = errors.New("cash flow entry not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrUnitNotFound     = errors.New("unit not found")
	ErrSessionNotFound  = errors.New("opname session not found")
	ErrInUse            = errors.New("still used by other records")
	ErrInvalidInput     = errors.New("invalid input")
	ErrShareExceeded    = errors.New("total investor share would exceed 100%")
)
