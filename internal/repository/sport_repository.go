package repository

import (
	"context"

	"sportsbook/internal/models"

	"gorm.io/gorm"
)

// SportFilters are the supported search conditions for sports, combined
// with AND. The zero value matches everything.
type SportFilters struct {
	// Name is a case-insensitive regular expression matched against names.
	Name string
	// ActiveEventsCount keeps only sports with at least N active events.
	// A threshold of zero is always satisfied, so no condition is emitted.
	ActiveEventsCount *int
}

func (f SportFilters) apply(db *gorm.DB) *gorm.DB {
	if f.Name != "" {
		db = regexMatch(db, "name", f.Name)
	}
	if f.ActiveEventsCount != nil && *f.ActiveEventsCount > 0 {
		db = db.Where(
			"id IN (SELECT sport_id FROM event WHERE active = ? GROUP BY sport_id HAVING count(*) >= ?)",
			true, *f.ActiveEventsCount,
		)
	}
	return db
}

type SportRepository struct {
	db *gorm.DB
}

func NewSportRepository(db *gorm.DB) *SportRepository {
	return &SportRepository{db: db}
}

// Create inserts a new sport and fills in its assigned id. Sports are the
// root of the taxonomy, so no cascade can follow.
func (r *SportRepository) Create(ctx context.Context, sport *models.Sport) error {
	return r.db.WithContext(ctx).Create(sport).Error
}

// GetByID retrieves a sport by id.
func (r *SportRepository) GetByID(ctx context.Context, id uint) (*models.Sport, error) {
	var sport models.Sport
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&sport).Error
	if err != nil {
		return nil, err
	}
	return &sport, nil
}

// Search returns all sports matching the filters, in storage order.
func (r *SportRepository) Search(ctx context.Context, filters SportFilters) ([]models.Sport, error) {
	var sports []models.Sport
	err := filters.apply(r.db.WithContext(ctx)).Find(&sports).Error
	if err != nil {
		return nil, err
	}
	return sports, nil
}

// Update merges the supplied fields onto the stored record and writes the
// whole row back. Returns gorm.ErrRecordNotFound when the id does not exist;
// no write is attempted in that case.
func (r *SportRepository) Update(ctx context.Context, id uint, patch models.SportPatch) (*models.Sport, error) {
	sport, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	patch.Apply(sport)

	if err := r.db.WithContext(ctx).Save(sport).Error; err != nil {
		return nil, err
	}
	return sport, nil
}

// SetInactive is invoked by the event cascade. Writing an already-inactive
// sport again is a harmless no-op.
func (r *SportRepository) SetInactive(ctx context.Context, id uint) error {
	inactive := false
	_, err := r.Update(ctx, id, models.SportPatch{Active: &inactive})
	return err
}
