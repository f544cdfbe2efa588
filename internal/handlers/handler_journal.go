package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/apperrors"
	portssvc "github.com/abhiJunior/Travel-Allowance-for-Railways/internal/core/ports/services"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/dto"
	"github.com/abhiJunior/Travel-Allowance-for-Railways/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to monthly journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// addEntry godoc
// @Summary Add a journal entry
// @Description Appends a journey or stay to the journal of the entry's month, creating the journal on first write.
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param entry body dto.JournalEntryRequest true "Journal entry"
// @Success 200 {object} dto.AddEntryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Router /api/journal/add [post]
func (h *journalHandler) addEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for addEntry", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	journal, err := h.journalService.AddEntry(c.Request.Context(), userID, req)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			logger.Error("Failed to add journal entry", slog.String("error", err.Error()))
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.AddEntryResponse{
		Message: "Entry added successfully",
		Journal: dto.ToJournalResponse(journal),
	})
}

// getMonth godoc
// @Summary Get a month's journal
// @Description Returns the journal for a month with the working-day summary.
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param monthYear path string true "Month key (YYYY-MM)"
// @Success 200 {object} dto.JournalMonthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} dto.MessageResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/journal/{monthYear} [get]
func (h *journalHandler) getMonth(c *gin.Context) {
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

	journal, summary, err := h.journalService.GetMonth(c.Request.Context(), userID, uri.month())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.MessageResponse{Message: "No records found"})
			return
		}
		logger.Error("Failed to get journal", slog.String("error", err.Error()), slog.String("month_year", uri.MonthYear))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to retrieve journal"})
		return
	}

	c.JSON(http.StatusOK, dto.JournalMonthResponse{
		Journal: dto.ToJournalResponse(journal),
		Summary: dto.ToJournalSummaryResponse(summary),
	})
}

// updateEntry godoc
// @Summary Update a journal entry
// @Description Replaces an entry's fields in place. An omitted taRate keeps the stored rate.
// @Tags journal
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Entry ID"
// @Param entry body dto.JournalEntryRequest true "Replacement fields"
// @Success 200 {object} dto.EntryMutationResponse
// @Failure 400 {object} dto.EntryMutationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} dto.EntryMutationResponse
// @Failure 500 {object} dto.EntryMutationResponse
// @Router /api/journal/update-entry/{id} [patch]
func (h *journalHandler) updateEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	entryID := c.Param("id")

	var req dto.JournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.EntryMutationResponse{Status: false, Message: err.Error()})
		return
	}

	journal, err := h.journalService.UpdateEntry(c.Request.Context(), userID, entryID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, dto.EntryMutationResponse{Status: false, Message: "Entry not found or you are not authorized"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, dto.EntryMutationResponse{Status: false, Message: err.Error()})
		default:
			logger.Error("Failed to update entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
			c.JSON(http.StatusInternalServerError, dto.EntryMutationResponse{Status: false, Message: "Failed to update entry"})
		}
		return
	}

	resp := dto.ToJournalResponse(journal)
	c.JSON(http.StatusOK, dto.EntryMutationResponse{Status: true, Message: "Entry updated successfully", Data: &resp})
}

// deleteEntry godoc
// @Summary Delete a journal entry
// @Tags journal
// @Produce json
// @Security BearerAuth
// @Param entryId path string true "Entry ID"
// @Success 200 {object} dto.EntryMutationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} dto.EntryMutationResponse
// @Failure 500 {object} dto.EntryMutationResponse
// @Router /api/journal/{entryId} [delete]
func (h *journalHandler) deleteEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}
	entryID := c.Param("entryId")

	journal, err := h.journalService.DeleteEntry(c.Request.Context(), userID, entryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, dto.EntryMutationResponse{Status: false, Message: "Entry not found or you don't have permission to delete it"})
			return
		}
		logger.Error("Failed to delete entry", slog.String("error", err.Error()), slog.String("entry_id", entryID))
		c.JSON(http.StatusInternalServerError, dto.EntryMutationResponse{Status: false, Message: "Failed to delete entry"})
		return
	}

	resp := dto.ToJournalResponse(journal)
	c.JSON(http.StatusOK, dto.EntryMutationResponse{Status: true, Message: "Entry deleted successfully", Data: &resp})
}
