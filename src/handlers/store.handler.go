package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/requests"
	"manajemen-toko/src/services"
)

type StoreHandler struct {
	Service *services.StoreService
}

// ============ STORES ============

// ListStores - Get every store
func (h *StoreHandler) ListStores(c *gin.Context) {
	stores, err := h.Service.ListStores(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": stores})
}

// GetStore - Get one store with all of its data
func (h *StoreHandler) GetStore(c *gin.Context) {
	store, err := h.Service.GetStore(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": store})
}

// CreateStore - Create an empty store
func (h *StoreHandler) CreateStore(c *gin.Context) {
	var req requests.StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.Service.CreateStore(c.Request.Context(), services.StoreInput{
		ID:      req.ID,
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Store created successfully",
		"data":    store,
	})
}

// UpdateStore - Change name and address
func (h *StoreHandler) UpdateStore(c *gin.Context) {
	var req requests.StoreRequest
	if !bindJSON(c, &req) {
		return
	}

	store, err := h.Service.UpdateStore(c.Request.Context(), c.Param("storeID"), services.StoreInput{
		Name:    req.Name,
		Address: req.Address,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Store updated successfully",
		"data":    store,
	})
}

// DeleteStore - Delete a store and its opname history
func (h *StoreHandler) DeleteStore(c *gin.Context) {
	if err := h.Service.DeleteStore(c.Request.Context(), c.Param("storeID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Store deleted successfully"})
}

// ============ WORKBOOKS ============

// ExportWorkbook - Download store data as xlsx; ?sheets=items,assets,costs narrows it
func (h *StoreHandler) ExportWorkbook(c *gin.Context) {
	file, err := h.Service.ExportWorkbook(c.Request.Context(), c.Param("storeID"), parseEntities(c)...)
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, file)
}

// ImportWorkbook - Upload an xlsx in the "file" form field
func (h *StoreHandler) ImportWorkbook(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer f.Close()

	res, err := h.Service.ImportWorkbook(c.Request.Context(), c.Param("storeID"), f, parseEntities(c)...)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Workbook imported successfully",
		"data":    res,
	})
}
