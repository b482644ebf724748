package handlers

import (
	"errors"
	"net/http"
	"time"

	"sportsbook/internal/models"
	"sportsbook/internal/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type EventHandler struct {
	events *repository.EventRepository
}

func NewEventHandler(events *repository.EventRepository) *EventHandler {
	return &EventHandler{events: events}
}

type createEventRequest struct {
	Name           string             `json:"name" binding:"required,min=1,max=100"`
	Slug           string             `json:"slug" binding:"required,max=150,slug"`
	Active         *bool              `json:"active"`
	Type           models.EventType   `json:"type" binding:"required,oneof=preplay inplay"`
	SportID        *uint              `json:"sport_id" binding:"required"`
	Status         models.EventStatus `json:"status" binding:"required,oneof=Pending Started Ended Cancelled"`
	ScheduledStart *time.Time         `json:"scheduled_start" binding:"required"`
	ActualStart    *time.Time         `json:"actual_start"`
}

type updateEventRequest struct {
	Name           *string             `json:"name" binding:"omitempty,min=1,max=100"`
	Slug           *string             `json:"slug" binding:"omitempty,max=150,slug"`
	Active         *bool               `json:"active"`
	Type           *models.EventType   `json:"type" binding:"omitempty,oneof=preplay inplay"`
	SportID        *uint               `json:"sport_id"`
	Status         *models.EventStatus `json:"status" binding:"omitempty,oneof=Pending Started Ended Cancelled"`
	ScheduledStart *time.Time          `json:"scheduled_start"`
	ActualStart    *time.Time          `json:"actual_start"`
}

// GetEvents returns all events matching the optional query filters
func (h *EventHandler) GetEvents(c *gin.Context) {
	filters := repository.EventFilters{Name: c.Query("name")}

	count, ok := parseCountFilter(c, "active_selections_count")
	if !ok {
		return
	}
	filters.ActiveSelectionsCount = count

	events, err := h.events.Search(c.Request.Context(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch events"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    events,
		"count":   len(events),
	})
}

// GetEventByID returns a specific event
func (h *EventHandler) GetEventByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	event, err := h.events.GetByID(c.Request.Context(), id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch event"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    event,
	})
}

// CreateEvent creates a new event. A missing sport maps to 404 on the parent,
// not a validation error on the event.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	event := models.Event{
		Name:           req.Name,
		Slug:           req.Slug,
		Active:         true,
		Type:           req.Type,
		SportID:        req.SportID,
		Status:         req.Status,
		ScheduledStart: *req.ScheduledStart,
		ActualStart:    req.ActualStart,
	}
	if req.Active != nil {
		event.Active = *req.Active
	}

	if err := h.events.Create(c.Request.Context(), &event); err != nil {
		if errors.Is(err, repository.ErrParentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Sport not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create event"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"data":    event,
	})
}

// UpdateEvent applies a partial update to an event
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req updateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		validationError(c, err)
		return
	}

	patch := models.EventPatch{
		Name:           req.Name,
		Slug:           req.Slug,
		Active:         req.Active,
		Type:           req.Type,
		SportID:        req.SportID,
		Status:         req.Status,
		ScheduledStart: req.ScheduledStart,
		ActualStart:    req.ActualStart,
	}

	event, err := h.events.Update(c.Request.Context(), id, patch)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrParentNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Sport not found"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update event"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    event,
	})
}
