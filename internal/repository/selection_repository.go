package repository

import (
	"context"

	"sportsbook/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// SelectionFilters are the supported search conditions for selections.
type SelectionFilters struct {
	// Name is a case-insensitive regular expression matched against names.
	Name string
}

func (f SelectionFilters) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = regexMatch(db, "name", f.Name)
	}
	return db
}

type SelectionRepository struct {
	db     *gorm.DB
	events *EventRepository
}

// NewSelectionRepository wires the parent store the cascade writes through.
func NewSelectionRepository(db *gorm.DB, events *EventRepository) *SelectionRepository {
	return &SelectionRepository{db: db, events: events}
}

// Create inserts a new selection. The price is rounded to two decimal places
// before it is stored, and a selection arriving inactive immediately cascades
// to its event (and possibly further up to the sport).
func (r *SelectionRepository) Create(ctx context.Context, selection *models.Selection) error {
	selection.Price = selection.Price.Round(2)

	if err := r.db.WithContext(ctx).Create(selection).Error; err != nil {
		if isForeignKeyViolation(err) {
			return ErrParentNotFound
		}
		return err
	}

	return r.cascadeToEvent(ctx, selection)
}

// GetByID retrieves a selection by id.
func (r *SelectionRepository) GetByID(ctx context.Context, id uint) (*models.Selection, error) {
	var selection models.Selection
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&selection).Error
	if err != nil {
		return nil, err
	}
	return &selection, nil
}

// Search returns all selections matching the filters, in storage order.
func (r *SelectionRepository) Search(ctx context.Context, filters SelectionFilters) ([]models.Selection, error) {
	var selections []models.Selection
	err := filters.apply(r.db.WithContext(ctx)).Find(&selections).Error
	if err != nil {
		return nil, err
	}
	return selections, nil
}

// Update merges the supplied fields onto the stored record and writes the
// whole row back, rounding the merged price to two decimal places. Returns
// gorm.ErrRecordNotFound when the id does not exist.
func (r *SelectionRepository) Update(ctx context.Context, id uint, patch models.SelectionPatch) (*models.Selection, error) {
	selection, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(selection)
	selection.Price = selection.Price.Round(2)

	if err := r.db.WithContext(ctx).Save(selection).Error; err != nil {
		if isForeignKeyViolation(err) {
			return nil, ErrParentNotFound
		}
		return nil, err
	}

	if err := r.cascadeToEvent(ctx, selection); err != nil {
		return nil, err
	}
	return selection, nil
}

// cascadeToEvent deactivates the parent event when a write has left the
// selection inactive and no active sibling remains. The event deactivation
// runs through EventRepository.Update, so it can recurse one more level up to
// the sport. Same check-then-set race as the event cascade: the sibling check
// is not serialized against concurrent writes.
func (r *SelectionRepository) cascadeToEvent(ctx context.Context, selection *models.Selection) error {
	if selection.Active || selection.EventID == nil {
		return nil
	}

	var activeSibling bool
	err := r.db.WithContext(ctx).Model(&models.Selection{}).
		Select("count(*) > 0").
		Where("event_id = ? AND active = ?", *selection.EventID, true).
		Find(&activeSibling).Error
	if err != nil {
		return err
	}
	if activeSibling {
		return nil
	}

	logrus.WithFields(logrus.Fields{
		"selection_id": selection.ID,
		"event_id":     *selection.EventID,
	}).Info("no active selections left, deactivating event")

	return r.events.SetInactive(ctx, *selection.EventID)
}
