package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

// GetSummary - Dashboard figures
func (h *ReportHandler) GetSummary(c *gin.Context) {
	summary, err := h.Service.Summary(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": summary})
}

// GetMonthlyReport - ?year=&month=, the current month when both are absent
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	year, month, ok, err := parseMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !ok {
		now := time.Now()
		year, month = now.Year(), now.Month()
	}

	report, err := h.Service.MonthlyCashReport(c.Request.Context(), c.Param("storeID"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (h *ReportHandler) GetAllocation(c *gin.Context) {
	allocation, err := h.Service.Allocation(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": allocation})
}

// GetItems - Items by SKU with names resolved and stock labels
func (h *ReportHandler) GetItems(c *gin.Context) {
	items, err := h.Service.Items(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": items})
}

func (h *ReportHandler) GetAssets(c *gin.Context) {
	assets, err := h.Service.Assets(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": assets})
}
