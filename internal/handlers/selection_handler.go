package handlers

import (
	"errors"
	"net/http"

	"sportsbook/internal/models"
	"sportsbook/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type SelectionHandler struct {
	selections *repository.SelectionRepository
}

func NewSelectionHandler(selections *repository.SelectionRepository) *SelectionHandler {
	return &SelectionHandler{selections: selections}
}

type createSelectionRequest struct {
	Name    string                  `json:"name" binding:"required,min=1,max=100"`
	EventID *uint                   `json:"event_id" binding:"required"`
	Price   *decimal.Decimal        `json:"price" binding:"required"`
	Active  *bool                   `json:"active"`
	Outcome models.SelectionOutcome `json:"outcome" binding:"required,oneof=Unsettled Void Lose Win"`
}

type updateSelectionRequest struct {
	Name    *string                  `json:"name" binding:"omitempty,min=1,max=100"`
	EventID *uint                    `json:"event_id"`
	Price   *decimal.Decimal         `json:"price"`
	Active  *bool                    `json:"active"`
	Outcome *models.SelectionOutcome `json:"outcome" binding:"omitempty,oneof=Unsettled Void Lose Win"`
}

// GetSelections returns all selections matching the optional name filter
func (h *SelectionHandler) GetSelections(c *gin.Context) {
	filters := repository.SelectionFilters{Name: c.Query("name")}

	selections, err := h.selections.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch selections"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    selections,
		"count":   len(selections),
	})
}

// GetSelectionByID returns a specific selection
func (h *SelectionHandler) GetSelectionByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	selection, err := h.selections.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Selection not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch selection"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    selection,
	})
}

// CreateSelection creates a new selection. A missing event maps to 404 on the
// parent, not a validation error on the selection.
func (h *SelectionHandler) CreateSelection(c *gin.Context) {
	var req createSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	selection := models.Selection{
		Name:    req.Name,
		EventID: req.EventID,
		Price:   *req.Price,
		Active:  true,
		Outcome: req.Outcome,
	}
	if req.Active != nil {
		selection.Active = *req.Active
	}

	if err := h.selections.Create(c.Request.Context(), &selection); err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create selection"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    selection,
	})
}

// UpdateSelection applies a partial update to a selection
func (h *SelectionHandler) UpdateSelection(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	patch := models.SelectionPatch{
		Name:    req.Name,
		Active:  req.Active,
		EventID: req.EventID,
		Price:   req.Price,
		Outcome: req.Outcome,
	}

	selection, err := h.selections.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrParentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Selection not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update selection"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    selection,
	})
}
