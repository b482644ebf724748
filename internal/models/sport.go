package models

// Sport is the root of the taxonomy. Sports are never deleted; they go
// inactive, either explicitly or through the event cascade.
type Sport struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Name   string `gorm:"size:100;not null;uniqueIndex;check:length(name) >= 1" json:"name"`
	Slug   string `gorm:"size:150;not null;check:length(slug) >= 1" json:"slug"`
	Active bool   `gorm:"not null;default:true" json:"active"`
}

// TableName specifies the table name for the Sport model
func (Sport) TableName() string {
	return "sport"
}

// SportPatch is a partial update. A nil field leaves the persisted value
// unchanged; there is no way to clear a field back to absent.
type SportPatch struct {
	Name   *string
	Slug   *string
	Active *bool
}

// Apply overwrites the fields of s that the patch sets.
func (p SportPatch) Apply(s *Sport) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Slug != nil {
		s.Slug = *p.Slug
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
}
