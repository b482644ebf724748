package repository

import (
	"context"
	"time"

	"sportsbook/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// EventFilters are the supported search conditions for events, combined
// with AND.
type EventFilters struct {
	// Name is a case-insensitive regular expression matched against names.
	Name string
	// ActiveSelectionsCount keeps only events with at least N active
	// selections. A threshold of zero is always satisfied.
	ActiveSelectionsCount *int
}

func (f EventFilters) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = regexMatch(db, "name", f.Name)
	}
	if f.ActiveSelectionsCount != nil && *f.ActiveSelectionsCount > 0 {
		db = db.Where(
			"id IN (SELECT event_id FROM selection WHERE active = ? GROUP BY event_id HAVING count(*) >= ?)",
			true, *f.ActiveSelectionsCount,
		)
	}
	return db
}

type EventRepository struct {
	db     *gorm.DB
	sports *SportRepository
}

// NewEventRepository wires the parent store the cascade writes through.
// Calls only ever go upward (event -> sport), never back down.
func NewEventRepository(db *gorm.DB, sports *SportRepository) *EventRepository {
	return &EventRepository{db: db, sports: sports}
}

// Create inserts a new event. An event arriving with status Started gets its
// actual start stamped with the current time, and an event arriving inactive
// immediately cascades to its sport.
func (r *EventRepository) Create(ctx context.Context, event *models.Event) error {
	if event.Status == models.EventStatusStarted {
		now := time.Now().UTC()
		event.ActualStart = &now
	}

	if err := r.db.WithContext(ctx).Create(event).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrParentNotFound
		}
		return err
	}

	return r.cascadeToSport(ctx, event)
}

// GetByID retrieves an event by id.
func (r *EventRepository) GetByID(ctx context.Context, id uint) (*models.Event, error) {
	var event models.Event
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		return nil, err
	}
	return &event, nil
}

// Search returns all events matching the filters, in storage order.
func (r *EventRepository) Search(ctx context.Context, filters EventFilters) ([]models.Event, error) {
	var events []models.Event
	err := filters.apply(r.db.WithContext(ctx)).Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Update merges the supplied fields onto the stored record and writes the
// whole row back. A request that moves status to Started has its actual start
// forced to the current time, overriding any actual_start supplied alongside
// it; a request that leaves status alone may set actual_start freely.
// Returns gorm.ErrRecordNotFound when the id does not exist.
func (r *EventRepository) Update(ctx context.Context, id uint, patch models.EventPatch) (*models.Event, error) {
	event, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(event)

	if patch.Status != nil && *patch.Status == models.EventStatusStarted {
		now := time.Now().UTC()
		event.ActualStart = &now
	}

	if err := r.db.WithContext(ctx).Save(event).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	if err := r.cascadeToSport(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

// SetInactive is invoked by the selection cascade. It goes through Update so
// a newly inactive event can in turn deactivate its sport.
func (r *EventRepository) SetInactive(ctx context.Context, id uint) error {
	inactive := false
	_, err := r.Update(ctx, id, models.EventPatch{Active: &inactive})
	return err
}

// cascadeToSport deactivates the parent sport when a write has left the event
// inactive and no active sibling remains. Reactivating an event never fires
// here. The sibling check and the sport write are separate statements with no
// transaction around them, so two concurrent deactivations can both observe
// an empty sibling set; the second sport write is a no-op either way.
func (r *EventRepository) cascadeToSport(ctx context.Context, event *models.Event) error {
	if event.Active || event.SportID == nil {
		return nil
	}

	var activeSibling bool
	err := r.db.WithContext(ctx).Model(&models.Event{}).
		Select("count(*) > 0").
		Where("sport_id = ? AND active = ?", *event.SportID, true).
		Find(&activeSibling).Error
	if err != nil {
		return err
	}
	if activeSibling {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"event_id": event.ID,
		"sport_id": *event.SportID,
	}).Info("no active events left, deactivating sport")

	return r.sports.SetInactive(ctx, *event.SportID)
}
