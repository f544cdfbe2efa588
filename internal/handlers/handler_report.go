package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportHandler serves the GA 31 PDF.
type reportHandler struct {
	reportingService portssvc.ReportingService
}

// newReportHandler creates a new reportHandler.
func newReportHandler(reportingService portssvc.ReportingService) *reportHandler {
	return &reportHandler{reportingService: reportingService}
}

// generatePDF godoc
// @Summary Download the TA journal PDF
// @Description Renders the month's journal as a GA 31 form. Limited per user.
// @Tags journal
// @Produce application/pdf
// @Security BearerAuth
// @Param monthYear path string true "Month key (YYYY-MM)"
// @Success 200 {file} file
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {string} string "User not found or Journal not found"
// @Failure 429 {object} map[string]interface{}
// @Failure 500 {string} string
// @Router /api/journal/generate-pdf/{monthYear} [get]
func (h *reportHandler) generatePDF(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var uri monthYearURI
	if err := c.ShouldBindUri(&uri); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "monthYear must be in YYYY-MM format"})
		return
	}
	month := uri.month()

	pdf, err := h.reportingService.GenerateJournalPDF(c.Request.Context(), userID, month)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUserNotFound):
			c.String(http.StatusNotFound, "User not found")
		case errors.Is(err, apperrors.ErrNotFound):
			c.String(http.StatusNotFound, "Journal not found")
		default:
			logger.Error("Failed to generate PDF", slog.String("error", err.Error()), slog.String("month_year", month.String()))
			c.String(http.StatusInternalServerError, "Error generating TA PDF")
		}
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=TA_Journal_%s.pdf", month))
	c.Data(http.StatusOK, "application/pdf", pdf)
}
