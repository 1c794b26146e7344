package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"radarcontacts/internal/models"
	"radarcontacts/internal/services"
	"radarcontacts/internal/validators"
)

type LookupHandler struct {
	lookupService services.LookupService
	boardService  services.BoardService
	validator     validators.LookupValidator
}

func NewLookupHandler(lookupService services.LookupService, boardService services.BoardService, validator validators.LookupValidator) *LookupHandler {
	return &LookupHandler{
		lookupService: lookupService,
		boardService:  boardService,
		validator:     validator,
	}
}

// Lookup godoc
// @Summary Look up owner phone numbers for addresses
// @Description Resolve each address to a property, its owners, and their phone numbers. Addresses are processed in order; a failure on one address is reported on its result and does not stop the batch.
// @Tags Lookups
// @Accept json
// @Produce json
// @Param request body models.LookupRequest true "Addresses to look up"
// @Security BearerAuth
// @Success 200 {object} models.LookupBatch
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /lookups [post]
func (h *LookupHandler) Lookup(c *gin.Context) {
	var req models.LookupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.ValidateLookup(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := h.lookupService.LookupAddresses(c.Request.Context(), req.Addresses, requester(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// ImportBoard godoc
// @Summary Look up phone numbers for a Monday.com board
// @Description Pull address rows from a Monday.com board and run them through the phone lookup flow.
// @Tags Lookups
// @Accept json
// @Produce json
// @Param request body models.BoardImportRequest true "Board to import; empty board_id uses the configured default"
// @Security BearerAuth
// @Success 200 {object} models.LookupBatch
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 502 {object} map[string]string
// @Router /lookups/board [post]
func (h *LookupHandler) ImportBoard(c *gin.Context) {
	var req models.BoardImportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.validator.ValidateBoardImport(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	batch, err := h.boardService.ImportBoard(c.Request.Context(), &req, requester(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, batch)
}

// History godoc
// @Summary List recent lookup batches
// @Description Return recent lookup batches, newest first.
// @Tags Lookups
// @Accept json
// @Produce json
// @Param limit query int false "Maximum batches to return" default(20)
// @Security BearerAuth
// @Success 200 {array} models.LookupBatch
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /lookups/history [get]
func (h *LookupHandler) History(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	batches, err := h.lookupService.History(c.Request.Context(), limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, batches)
}

// requester pulls the authenticated user's email off the context.
func requester(c *gin.Context) string {
	if email, exists := c.Get("email"); exists {
		if s, ok := email.(string); ok {
			return s
		}
	}
	return "anonymous"
}
