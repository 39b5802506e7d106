package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/requests"
	"manajemen-toko/src/services"
)

// ============ ITEM CATEGORIES ============

func (h *StoreHandler) AddItemCategory(c *gin.Context) {
	var req requests.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.Service.AddItemCategory(c.Request.Context(), c.Param("storeID"), services.CategoryInput{Name: req.Name, Prefix: req.Prefix})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": category})
}

func (h *StoreHandler) UpdateItemCategory(c *gin.Context) {
	var req requests.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.Service.UpdateItemCategory(c.Request.Context(), c.Param("storeID"), c.Param("categoryID"), services.CategoryInput{Name: req.Name, Prefix: req.Prefix})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

// DeleteItemCategory - Refused with 409 while an item still uses it
func (h *StoreHandler) DeleteItemCategory(c *gin.Context) {
	if err := h.Service.DeleteItemCategory(c.Request.Context(), c.Param("storeID"), c.Param("categoryID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ============ UNITS ============

func (h *StoreHandler) AddUnit(c *gin.Context) {
	var req requests.UnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.Service.AddUnit(c.Request.Context(), c.Param("storeID"), services.UnitInput{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Unit created successfully", "data": unit})
}

func (h *StoreHandler) UpdateUnit(c *gin.Context) {
	var req requests.UnitRequest
	if !bindJSON(c, &req) {
		return
	}
	unit, err := h.Service.UpdateUnit(c.Request.Context(), c.Param("storeID"), c.Param("unitID"), services.UnitInput{Name: req.Name})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit updated successfully", "data": unit})
}

func (h *StoreHandler) DeleteUnit(c *gin.Context) {
	if err := h.Service.DeleteUnit(c.Request.Context(), c.Param("storeID"), c.Param("unitID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Unit deleted successfully"})
}

// ============ ASSET CATEGORIES ============

func (h *StoreHandler) AddAssetCategory(c *gin.Context) {
	var req requests.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.Service.AddAssetCategory(c.Request.Context(), c.Param("storeID"), services.CategoryInput{Name: req.Name, Prefix: req.Prefix})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Category created successfully", "data": category})
}

func (h *StoreHandler) UpdateAssetCategory(c *gin.Context) {
	var req requests.CategoryRequest
	if !bindJSON(c, &req) {
		return
	}
	category, err := h.Service.UpdateAssetCategory(c.Request.Context(), c.Param("storeID"), c.Param("categoryID"), services.CategoryInput{Name: req.Name, Prefix: req.Prefix})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully", "data": category})
}

func (h *StoreHandler) DeleteAssetCategory(c *gin.Context) {
	if err := h.Service.DeleteAssetCategory(c.Request.Context(), c.Param("storeID"), c.Param("categoryID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

// ============ ITEMS ============

// AddItem - Create an item with its initial stock and purchase batch
func (h *StoreHandler) AddItem(c *gin.Context) {
	var req requests.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.Service.AddItem(c.Request.Context(), c.Param("storeID"), itemInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Item created successfully",
		"data":    item,
	})
}

// UpdateItem - Edit an item; SKU and stock are not touched
func (h *StoreHandler) UpdateItem(c *gin.Context) {
	var req requests.ItemRequest
	if !bindJSON(c, &req) {
		return
	}

	item, err := h.Service.UpdateItem(c.Request.Context(), c.Param("storeID"), c.Param("itemID"), itemInput(req))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item updated successfully",
		"data":    item,
	})
}

func (h *StoreHandler) DeleteItem(c *gin.Context) {
	if err := h.Service.DeleteItem(c.Request.Context(), c.Param("storeID"), c.Param("itemID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Item deleted successfully"})
}

// Restock - Add stock in purchase or selling units
func (h *StoreHandler) Restock(c *gin.Context) {
	var req requests.RestockRequest
	if !bindJSON(c, &req) {
		return
	}

	inventory, err := h.Service.Restock(c.Request.Context(), c.Param("storeID"), c.Param("itemID"), services.RestockInput{
		Quantity:           req.Quantity,
		Unit:               engine.QuantityUnit(req.Unit),
		TotalPurchasePrice: requests.Amount(req.TotalPurchasePrice),
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Stock added successfully",
		"data":    inventory,
	})
}

func itemInput(req requests.ItemRequest) services.ItemInput {
	return services.ItemInput{
		Name:               req.Name,
		CategoryID:         req.CategoryID,
		SellingUnitID:      req.SellingUnitID,
		PurchaseUnitID:     req.PurchaseUnitID,
		ConversionRate:     req.ConversionRate,
		SellingPrice:       requests.Amount(req.SellingPrice),
		TotalPurchasePrice: requests.Amount(req.TotalPurchasePrice),
		PurchasedQuantity:  req.PurchasedQuantity,
		Description:        req.Description,
		InitialStock:       req.InitialStock,
		StockUnit:          engine.QuantityUnit(req.StockUnit),
	}
}

// ============ ASSETS ============

func (h *StoreHandler) AddAsset(c *gin.Context) {
	in, ok := bindAsset(c)
	if !ok {
		return
	}
	asset, err := h.Service.AddAsset(c.Request.Context(), c.Param("storeID"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Asset created successfully", "data": asset})
}

func (h *StoreHandler) UpdateAsset(c *gin.Context) {
	in, ok := bindAsset(c)
	if !ok {
		return
	}
	asset, err := h.Service.UpdateAsset(c.Request.Context(), c.Param("storeID"), c.Param("assetID"), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset updated successfully", "data": asset})
}

func (h *StoreHandler) DeleteAsset(c *gin.Context) {
	if err := h.Service.DeleteAsset(c.Request.Context(), c.Param("storeID"), c.Param("assetID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Asset deleted successfully"})
}

func bindAsset(c *gin.Context) (services.AssetInput, bool) {
	var req requests.AssetRequest
	if !bindJSON(c, &req) {
		return services.AssetInput{}, false
	}
	date, err := parseDate(req.PurchaseDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid purchaseDate format. Use YYYY-MM-DD"})
		return services.AssetInput{}, false
	}
	return services.AssetInput{
		Name:         req.Name,
		CategoryID:   req.CategoryID,
		PurchaseDate: date,
		Value:        requests.Amount(req.Value),
		Description:  req.Description,
		Condition:    models.AssetCondition(req.Condition),
	}, true
}
