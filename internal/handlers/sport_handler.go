package handlers

import (
	"net/http"

	"sportsbook/internal/models"
	"sportsbook/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SportHandler struct {
	sports *repository.SportRepository
}

func NewSportHandler(sports *repository.SportRepository) *SportHandler {
	return &SportHandler{sports: sports}
}

type createSportRequest struct {
	Name   string `json:"name" binding:"required,min=1,max=100"`
	Slug   string `json:"slug" binding:"required,max=150,slug"`
	Active *bool  `json:"active"`
}

type updateSportRequest struct {
	Name   *string `json:"name" binding:"omitempty,min=1,max=100"`
	Slug   *string `json:"slug" binding:"omitempty,max=150,slug"`
	Active *bool   `json:"active"`
}

// GetSports returns all sports matching the optional query filters
func (h *SportHandler) GetSports(c *gin.Context) {
	filters := repository.SportFilters{Name: c.Query("name")}

	count, ok := parseCountFilter(c, "active_events_count")
	if !ok {
		return
	}
	filters.ActiveEventsCount = count

	sports, err := h.sports.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sports,
		"count":   len(sports),
	})
}

// GetSportByID returns a specific sport
func (h *SportHandler) GetSportByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	sport, err := h.sports.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sport not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch sport"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sport,
	})
}

// CreateSport creates a new sport
func (h *SportHandler) CreateSport(c *gin.Context) {
	var req createSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	sport := models.Sport{
		Name:   req.Name,
		Slug:   req.Slug,
		Active: true,
	}
	if req.Active != nil {
		sport.Active = *req.Active
	}

	if err := h.sports.Create(c.Request.Context(), &sport); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create sport"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    sport,
	})
}

// UpdateSport applies a partial update to a sport
func (h *SportHandler) UpdateSport(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateSportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	patch := models.SportPatch{
		Name:   req.Name,
		Slug:   req.Slug,
		Active: req.Active,
	}

	sport, err := h.sports.Update(c.Request.Context(), id, patch)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sport not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update sport"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    sport,
	})
}
