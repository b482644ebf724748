package handlers

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the API under /api.
func RegisterRoutes(router *gin.Engine, sports *SportHandler, events *EventHandler, selections *SelectionHandler) {
	api := router.Group("/api")

	sportRoutes := api.Group("/sports")
	{
		sportRoutes.GET("", sports.GetSports)
		sportRoutes.POST("", sports.CreateSport)
		sportRoutes.GET("/:id", sports.GetSportByID)
		sportRoutes.PUT("/:id", sports.UpdateSport)
	}

	eventRoutes := api.Group("/events")
	{
		eventRoutes.GET("", events.GetEvents)
		eventRoutes.POST("", events.CreateEvent)
		eventRoutes.GET("/:id", events.GetEventByID)
		eventRoutes.PUT("/:id", events.UpdateEvent)
	}

	selectionRoutes := api.Group("/selections")
	{
		selectionRoutes.GET("", selections.GetSelections)
		selectionRoutes.POST("", selections.CreateSelection)
		selectionRoutes.GET("/:id", selections.GetSelectionByID)
		selectionRoutes.PUT("/:id", selections.UpdateSelection)
	}
}
