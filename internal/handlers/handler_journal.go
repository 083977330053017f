package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/fiscal_balance/internal/core/ports/services"
	"github.com/SscSPs/fiscal_balance/internal/dto"
	"github.com/SscSPs/fiscal_balance/internal/middleware"
	"github.com/gin-gonic/gin"
)

// journalHandler handles HTTP requests related to journals.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

// newJournalHandler creates a new journalHandler.
func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: journalService,
	}
}

// registerJournalRoutes registers journal routes under a workplace group.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.POST("", h.createJournal)
		journals.GET("", h.listJournals)
		journals.GET("/:journalID", h.getJournal)
		journals.PUT("/:journalID", h.updateJournal)
		journals.POST("/:journalID/post", h.postJournal)
		journals.POST("/:journalID/reverse", h.reverseJournal)
	}
}

// createJournal godoc
// @Summary Create a journal entry with its transactions
// @Description Validates the legs against the ledger rules and stores the journal. Status defaults to POSTED.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   journal body dto.CreateJournalRequest true "Journal and transactions"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} BindingErrorResponse "Malformed body"
// @Failure 403 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse "Ledger rule violated"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals [post]
func (h *journalHandler) createJournal(c *gin.Context) {
	workplaceID := c.Param("workplace_id")
	var req dto.CreateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.CreateJournal(c.Request.Context(), workplaceID, req, creatorUserID)
	if err != nil {
		respondError(c, err, "create journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal created",
		slog.String("journal_id", journal.JournalID),
		slog.String("status", string(journal.Status)))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(*journal))
}

// getJournal godoc
// @Summary Get a journal entry and its transactions
// @Tags journals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.GetJournalByID(c.Request.Context(), c.Param("workplace_id"), c.Param("journalID"), userID)
	if err != nil {
		respondError(c, err, "get journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(*journal))
}

// listJournals godoc
// @Summary List journals
// @Description Cursor-paginated journals, newest first. Reversal journals are hidden unless includeReversals is set.
// @Tags journals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Param   includeReversals query bool false "Include reversal journals"
// @Param   includeTransactions query bool false "Embed the legs of each journal"
// @Success 200 {object} dto.ListJournalsResponse
// @Failure 400 {object} ErrorResponse "Invalid token"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals [get]
func (h *journalHandler) listJournals(c *gin.Context) {
	var params dto.ListJournalsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	page, err := h.journalService.ListJournals(c.Request.Context(), c.Param("workplace_id"), userID, params)
	if err != nil {
		respondError(c, err, "list journals")
		return
	}
	c.JSON(http.StatusOK, page)
}

// updateJournal godoc
// @Summary Replace a draft journal
// @Description Replaces the header and legs of a DRAFT journal. Committed journals cannot be edited.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   journalID path string true "Journal ID"
// @Param   journal body dto.UpdateJournalRequest true "Journal and transactions"
// @Success 200 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Journal is not a draft"
// @Failure 422 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals/{journalID} [put]
func (h *journalHandler) updateJournal(c *gin.Context) {
	var req dto.UpdateJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.UpdateJournal(c.Request.Context(), c.Param("workplace_id"), c.Param("journalID"), req, userID)
	if err != nil {
		respondError(c, err, "update journal")
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalResponse(*journal))
}

// postJournal godoc
// @Summary Post a draft journal
// @Tags journals
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalResponse
// @Failure 409 {object} ErrorResponse "Journal is not a draft"
// @Failure 422 {object} ValidationErrorResponse
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals/{journalID}/post [post]
func (h *journalHandler) postJournal(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journal, err := h.journalService.PostJournal(c.Request.Context(), c.Param("workplace_id"), c.Param("journalID"), userID)
	if err != nil {
		respondError(c, err, "post journal")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal posted", slog.String("journal_id", journal.JournalID))
	c.JSON(http.StatusOK, dto.ToJournalResponse(*journal))
}

// reverseJournal godoc
// @Summary Reverse a journal
// @Description Creates a POSTED journal with every leg inverted and marks the original REVERSED. The body is optional.
// @Tags journals
// @Accept  json
// @Produce  json
// @Param   workplace_id path string true "Workplace ID"
// @Param   journalID path string true "Journal ID"
// @Param   overrides body dto.ReverseJournalRequest false "Date and description of the reversal"
// @Success 201 {object} dto.JournalResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "ALREADY_REVERSED, CANNOT_REVERSE_REVERSAL or CONCURRENCY_CONFLICT"
// @Security BearerAuth
// @Router /workplaces/{workplace_id}/journals/{journalID}/reverse [post]
func (h *journalHandler) reverseJournal(c *gin.Context) {
	var req dto.ReverseJournalRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		respondBindingError(c, err)
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	journalID := c.Param("journalID")
	reversal, err := h.journalService.ReverseJournal(c.Request.Context(), c.Param("workplace_id"), journalID, userID, req)
	if err != nil {
		respondError(c, err, "reverse journal")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Journal reversed",
		slog.String("journal_id", journalID),
		slog.String("reversing_journal_id", reversal.JournalID))
	c.JSON(http.StatusCreated, dto.ToJournalResponse(*reversal))
}
