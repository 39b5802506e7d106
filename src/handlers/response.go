package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"manajemen-toko/src/config"
	"manajemen-toko/src/engine"
	"manajemen-toko/src/requests"
	"manajemen-toko/src/services"
	"manajemen-toko/src/spreadsheet"
)

const dateLayout = "2006-01-02"

// respondError maps service errors to a status and the {"error": ...} envelope.
func respondError(c *gin.Context, err error) {
	var missing *engine.MissingCountError
	var rowErr *spreadsheet.RowError

	switch {
	case errors.As(err, &missing):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": err.Error(),
			"items": missing.Items,
		})
	case errors.As(err, &rowErr):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  err.Error(),
			"sheet":  rowErr.Sheet,
			"row":    rowErr.Row,
			"column": rowErr.Column,
		})
	case errors.Is(err, services.ErrStoreNotFound),
		errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrAssetNotFound),
		errors.Is(err, services.ErrCostNotFound),
		errors.Is(err, services.ErrInvestorNotFound),
		errors.Is(err, services.ErrCashFlowNotFound),
		errors.Is(err, services.ErrCategoryNotFound),
		errors.Is(err, services.ErrUnitNotFound),
		errors.Is(err, services.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInUse),
		errors.Is(err, services.ErrShareExceeded):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, spreadsheet.ErrNothingToExport),
		errors.Is(err, spreadsheet.ErrUnknownEntity),
		errors.Is(err, spreadsheet.ErrNoKnownSheet),
		errors.Is(err, spreadsheet.ErrUnreadableWorkbook):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		config.LogError(config.GetLogger(), "Handler", c.HandlerName(), c.FullPath(), c.Params, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// bindJSON writes the 400 response itself and reports whether the handler may go on.
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		if fields := requests.ProcessValidationErrors(err); fields != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": fields})
			return false
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return false
	}
	return true
}

func sendFile(c *gin.Context, file *spreadsheet.File) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	c.Data(http.StatusOK, spreadsheet.ContentType, file.Data)
}

// parseDate accepts YYYY-MM-DD or RFC3339.
func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
	}
	return t, err
}

// parseMonth reads ?year=&month=. ok is false when neither is given.
func parseMonth(c *gin.Context) (year int, month time.Month, ok bool, err error) {
	ys, ms := c.Query("year"), c.Query("month")
	if ys == "" && ms == "" {
		return 0, 0, false, nil
	}
	year, err = strconv.Atoi(ys)
	if err != nil || year < 1 {
		return 0, 0, false, fmt.Errorf("invalid year")
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 1 || m > 12 {
		return 0, 0, false, fmt.Errorf("invalid month")
	}
	return year, time.Month(m), true, nil
}

// parseEntities reads ?sheets=items,assets. Empty means every entity.
func parseEntities(c *gin.Context) []spreadsheet.Entity {
	raw := strings.TrimSpace(c.Query("sheets"))
	if raw == "" {
		return nil
	}
	var out []spreadsheet.Entity
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(strings.ToLower(part)); part != "" {
			out = append(out, spreadsheet.Entity(part))
		}
	}
	return out
}
