package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/models"
	"manajemen-toko/src/requests"
	"manajemen-toko/src/services"
)

// ============ OPERATIONAL COSTS ============

func (h *StoreHandler) AddCost(c *gin.Context) {
	var req requests.CostRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.Service.AddCost(c.Request.Context(), c.Param("storeID"), costInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Cost created successfully", "data": cost})
}

func (h *StoreHandler) UpdateCost(c *gin.Context) {
	var req requests.CostRequest
	if !bindJSON(c, &req) {
		return
	}
	cost, err := h.Service.UpdateCost(c.Request.Context(), c.Param("storeID"), c.Param("costID"), costInput(req))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cost updated successfully", "data": cost})
}

func (h *StoreHandler) DeleteCost(c *gin.Context) {
	if err := h.Service.DeleteCost(c.Request.Context(), c.Param("storeID"), c.Param("costID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cost deleted successfully"})
}

func costInput(req requests.CostRequest) services.CostInput {
	return services.CostInput{
		Name:        req.Name,
		Amount:      requests.Amount(req.Amount),
		Frequency:   models.CostFrequency(req.Frequency),
		Description: req.Description,
	}
}

// ============ INVESTORS ============

// AddInvestor - 409 when the shares would add up past 100%
func (h *StoreHandler) AddInvestor(c *gin.Context) {
	var req requests.InvestorRequest
	if !bindJSON(c, &req) {
		return
	}
	investor, err := h.Service.AddInvestor(c.Request.Context(), c.Param("storeID"), services.InvestorInput{
		Name:            req.Name,
		SharePercentage: requests.Amount(req.SharePercentage),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Investor created successfully", "data": investor})
}

func (h *StoreHandler) UpdateInvestor(c *gin.Context) {
	var req requests.InvestorRequest
	if !bindJSON(c, &req) {
		return
	}
	investor, err := h.Service.UpdateInvestor(c.Request.Context(), c.Param("storeID"), c.Param("investorID"), services.InvestorInput{
		Name:            req.Name,
		SharePercentage: requests.Amount(req.SharePercentage),
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investor updated successfully", "data": investor})
}

func (h *StoreHandler) DeleteInvestor(c *gin.Context) {
	if err := h.Service.DeleteInvestor(c.Request.Context(), c.Param("storeID"), c.Param("investorID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Investor deleted successfully"})
}

// ============ CASH FLOW ============

// ListCashFlow - Entries newest first; ?year=&month= limits them to one month
func (h *StoreHandler) ListCashFlow(c *gin.Context) {
	year, month, _, err := parseMonth(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries, err := h.Service.ListCashFlow(c.Request.Context(), c.Param("storeID"), year, month)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": entries})
}

// AddCashFlow - Record income; capital recovery is recomputed
func (h *StoreHandler) AddCashFlow(c *gin.Context) {
	var req requests.CashFlowRequest
	if !bindJSON(c, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	entry, err := h.Service.AddCashFlow(c.Request.Context(), c.Param("storeID"), services.CashFlowInput{
		Date:        date,
		Amount:      requests.Amount(req.Amount),
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Cash flow recorded successfully",
		"data":    entry,
	})
}

func (h *StoreHandler) DeleteCashFlow(c *gin.Context) {
	if err := h.Service.DeleteCashFlow(c.Request.Context(), c.Param("storeID"), c.Param("entryID")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cash flow deleted successfully"})
}
