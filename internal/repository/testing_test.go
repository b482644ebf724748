package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"sportsbook/internal/models"
)

func init() {
	// Postgres matches with ~*; the test database needs an equivalent
	// regexp() function so the same filters run under sqlite.
	sql.Register("sqlite3_with_regexp", &sqlite3.SQLiteDriver{
		ConnectHook: func(conn *sqlite3.SQLiteConn) error {
			return conn.RegisterFunc("regexp", func(pattern, value string) (bool, error) {
				re, err := regexp.Compile(pattern)
				if err != nil {
					return false, err
				}
				return re.MatchString(value), nil
			}, true)
		},
	})
}

func setupTestDB(t *testing.T) *gorm.DB {
	// :memory: is unique per connection unless using cache=shared; _fk=1
	// turns on foreign key enforcement.
	db, err := gorm.Open(sqlite.Dialector{
		DriverName: "sqlite3_with_regexp",
		DSN:        "file::memory:?cache=shared&_fk=1",
	}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}

	err = db.AutoMigrate(
		&models.Sport{},
		&models.Event{},
		&models.Selection{},
	)
	if err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	// cache=shared keeps one database for the whole test binary; start clean.
	db.Exec("DELETE FROM selection")
	db.Exec("DELETE FROM event")
	db.Exec("DELETE FROM sport")
	db.Exec("DELETE FROM sqlite_sequence")

	return db
}

func newRepositories(db *gorm.DB) (*SportRepository, *EventRepository, *SelectionRepository) {
	sports := NewSportRepository(db)
	events := NewEventRepository(db, sports)
	selections := NewSelectionRepository(db, events)
	return sports, events, selections
}

func ptr[T any](v T) *T {
	return &v
}

func newSport(t *testing.T, sports *SportRepository, name string, active bool) *models.Sport {
	t.Helper()
	sport := &models.Sport{Name: name, Slug: "test-sport", Active: active}
	if err := sports.Create(context.Background(), sport); err != nil {
		t.Fatalf("failed to create sport %q: %v", name, err)
	}
	return sport
}

func newEvent(t *testing.T, events *EventRepository, name string, sportID uint, active bool) *models.Event {
	t.Helper()
	event := &models.Event{
		Name:           name,
		Slug:           "e",
		Active:         active,
		Type:           models.EventTypePreplay,
		SportID:        &sportID,
		Status:         models.EventStatusPending,
		ScheduledStart: time.Now().UTC().Add(time.Hour),
	}
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("failed to create event %q: %v", name, err)
	}
	return event
}

func newSelection(t *testing.T, selections *SelectionRepository, name string, eventID uint, active bool) *models.Selection {
	t.Helper()
	selection := &models.Selection{
		Name:    name,
		EventID: &eventID,
		Price:   decimal.NewFromFloat(1.50),
		Active:  active,
		Outcome: models.SelectionOutcomeUnsettled,
	}
	if err := selections.Create(context.Background(), selection); err != nil {
		t.Fatalf("failed to create selection %q: %v", name, err)
	}
	return selection
}
