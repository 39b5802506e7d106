package handlers

//go:generate mockgen -destination=mocks/mock_opname.go -package=mocks . OpnameService

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/engine"
	"manajemen-toko/src/models"
	"manajemen-toko/src/requests"
	"manajemen-toko/src/services"
	"manajemen-toko/src/spreadsheet"
)

// OpnameService is implemented by *services.OpnameService.
type OpnameService interface {
	StartOpname(ctx context.Context, storeID string) (*engine.Sheet, error)
	CompleteOpname(ctx context.Context, storeID string, sub engine.Submission) (*services.OpnameReport, error)
	History(ctx context.Context, storeID string) ([]models.OpnameSession, error)
	Report(ctx context.Context, storeID, sessionID string) (*services.OpnameReport, error)
	ExportForm(ctx context.Context, storeID string) (*spreadsheet.File, error)
	ExportReport(ctx context.Context, storeID, sessionID string) (*spreadsheet.File, error)
	CompleteFromForm(ctx context.Context, storeID string, r io.Reader) (*services.OpnameReport, error)
}

type OpnameHandler struct {
	Service OpnameService
}

// ============ GET ENDPOINTS ============

// GetSheet - Counting sheet with every item and asset. Nothing is saved.
func (h *OpnameHandler) GetSheet(c *gin.Context) {
	sheet, err := h.Service.StartOpname(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sheet})
}

// GetHistory - Completed sessions, newest first
func (h *OpnameHandler) GetHistory(c *gin.Context) {
	sessions, err := h.Service.History(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": sessions})
}

// GetReport - One session with its summaries
func (h *OpnameHandler) GetReport(c *gin.Context) {
	report, err := h.Service.Report(c.Request.Context(), c.Param("storeID"), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

func (h *OpnameHandler) ExportReport(c *gin.Context) {
	file, err := h.Service.ExportReport(c.Request.Context(), c.Param("storeID"), c.Param("sessionID"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, file)
}

// ExportForm - Offline counting form as xlsx
func (h *OpnameHandler) ExportForm(c *gin.Context) {
	file, err := h.Service.ExportForm(c.Request.Context(), c.Param("storeID"))
	if err != nil {
		respondError(c, err)
		return
	}
	sendFile(c, file)
}

// ============ POST ENDPOINTS ============

// CompleteOpname - Submit counts and conditions. 422 lists the items still uncounted.
func (h *OpnameHandler) CompleteOpname(c *gin.Context) {
	var req requests.OpnameRequest
	if !bindJSON(c, &req) {
		return
	}

	sub := engine.Submission{
		Counts:     req.Counts,
		Conditions: make(map[string]models.AssetCondition, len(req.Conditions)),
	}
	for id, cond := range req.Conditions {
		sub.Conditions[id] = models.AssetCondition(cond)
	}

	report, err := h.Service.CompleteOpname(c.Request.Context(), c.Param("storeID"), sub)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Opname completed successfully",
		"data":    report,
	})
}

// ImportForm - Complete an opname from a filled offline form in the "file" field
func (h *OpnameHandler) ImportForm(c *gin.Context) {
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

	report, err := h.Service.CompleteFromForm(c.Request.Context(), c.Param("storeID"), f)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Opname completed successfully",
		"data":    report,
	})
}
