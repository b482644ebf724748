package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// price rides the wire as a JSON number, not a quoted string
	decimal.MarshalJSONWithoutQuotes = true
}

type SelectionOutcome string

const (
	SelectionOutcomeUnsettled SelectionOutcome = "Unsettled"
	SelectionOutcomeVoid      SelectionOutcome = "Void"
	SelectionOutcomeLose      SelectionOutcome = "Lose"
	SelectionOutcomeWin       SelectionOutcome = "Win"
)

// Selection is a priced outcome under an Event. Prices carry exactly two
// fractional digits; inputs are rounded before they are stored.
type Selection struct {
	ID      uint             `gorm:"primaryKey" json:"id"`
	Name    string           `gorm:"size:100;not null;index;check:length(name) >= 1" json:"name"`
	EventID *uint            `gorm:"index" json:"event_id"`
	Event   *Event           `gorm:"foreignKey:EventID;constraint:OnDelete:SET NULL" json:"event,omitempty"`
	Price   decimal.Decimal  `gorm:"type:decimal(10,2);not null" json:"price"`
	Active  bool             `gorm:"not null;default:true" json:"active"`
	Outcome SelectionOutcome `gorm:"size:50;not null" json:"outcome"` // Unsettled, Void, Lose, Win
}

// TableName specifies the table name for the Selection model
func (Selection) TableName() string {
	return "selection"
}

// SelectionPatch is a partial update over Selection. Nil fields are left
// unchanged.
type SelectionPatch struct {
	Name    *string
	Active  *bool
	EventID *uint
	Price   *decimal.Decimal
	Outcome *SelectionOutcome
}

// Apply overwrites the fields of s that the patch sets.
func (p SelectionPatch) Apply(s *Selection) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Active != nil {
		s.Active = *p.Active
	}
	if p.EventID != nil {
		s.EventID = p.EventID
	}
	if p.Price != nil {
		s.Price = *p.Price
	}
	if p.Outcome != nil {
		s.Outcome = *p.Outcome
	}
}
