package models

import (
	"time"
)

type EventType string

const (
	EventTypePreplay EventType = "preplay"
	EventTypeInplay  EventType = "inplay"
)

type EventStatus string

const (
	EventStatusPending   EventStatus = "Pending"
	EventStatusStarted   EventStatus = "Started"
	EventStatusEnded     EventStatus = "Ended"
	EventStatusCancelled EventStatus = "Cancelled"
)

// Event belongs to a Sport through a weak reference: deleting the sport nulls
// sport_id instead of removing the event.
type Event struct {
	ID             uint        `gorm:"primaryKey" json:"id"`
	Name           string      `gorm:"size:100;not null;index;check:length(name) >= 1" json:"name"`
	Slug           string      `gorm:"size:150;not null;check:length(slug) >= 1" json:"slug"`
	Active         bool        `gorm:"not null;default:true" json:"active"`
	Type           EventType   `gorm:"size:50;not null" json:"type"` // preplay, inplay
	SportID        *uint       `gorm:"index" json:"sport_id"`
	Sport          *Sport      `gorm:"foreignKey:SportID;constraint:OnDelete:SET NULL" json:"sport,omitempty"`
	Status         EventStatus `gorm:"size:50;not null" json:"status"` // Pending, Started, Ended, Cancelled
	ScheduledStart time.Time   `gorm:"not null" json:"scheduled_start"`
	ActualStart    *time.Time  `json:"actual_start"`
}

// TableName specifies the table name for the Event model
func (Event) TableName() string {
	return "event"
}

// EventPatch is a partial update over Event. Nil fields are left unchanged.
type EventPatch struct {
	Name           *string
	Slug           *string
	Active         *bool
	Type           *EventType
	SportID        *uint
	Status         *EventStatus
	ScheduledStart *time.Time
	ActualStart    *time.Time
}

// Apply overwrites the fields of e that the patch sets.
func (p EventPatch) Apply(e *Event) {
	if p.Name != nil {
		e.Name = *p.Name
	}
	if p.Slug != nil {
		e.Slug = *p.Slug
	}
	if p.Active != nil {
		e.Active = *p.Active
	}
	if p.Type != nil {
		e.Type = *p.Type
	}
	if p.SportID != nil {
		e.SportID = p.SportID
	}
	if p.Status != nil {
		e.Status = *p.Status
	}
	if p.ScheduledStart != nil {
		e.ScheduledStart = *p.ScheduledStart
	}
	if p.ActualStart != nil {
		e.ActualStart = p.ActualStart
	}
}
