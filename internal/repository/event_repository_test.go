package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"sportsbook/internal/models"
)

func TestDeactivateLastEventDeactivatesSport(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	_, err := events.Update(context.Background(), event.ID, models.EventPatch{Active: ptr(false)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := sports.GetByID(context.Background(), sport.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Active {
		t.Error("sport should have been deactivated with its last active event")
	}
}

func TestDeactivateEventWithActiveSiblingKeepsSportActive(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)
	newEvent(t, events, "Cup Final", sport.ID, true)

	_, err := events.Update(context.Background(), event.ID, models.EventPatch{Active: ptr(false)})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	got, err := sports.GetByID(context.Background(), sport.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if !got.Active {
		t.Error("sport should stay active while a sibling event is active")
	}
}

func TestCreateInactiveEventCascades(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	newEvent(t, events, "Derby", sport.ID, false)

	got, err := sports.GetByID(context.Background(), sport.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Active {
		t.Error("creating the only event inactive should deactivate the sport")
	}
}

func TestReactivateEventDoesNotReactivateSport(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	if _, err := events.Update(context.Background(), event.ID, models.EventPatch{Active: ptr(false)}); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if _, err := events.Update(context.Background(), event.ID, models.EventPatch{Active: ptr(true)}); err != nil {
		t.Fatalf("reactivate failed: %v", err)
	}

	got, err := sports.GetByID(context.Background(), sport.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Active {
		t.Error("reactivating an event must not reactivate its sport")
	}
}

func TestActualStartForcedOnCreate(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	suppliedStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	event := &models.Event{
		Name:           "Derby",
		Slug:           "derby",
		Active:         true,
		Type:           models.EventTypeInplay,
		SportID:        &sport.ID,
		Status:         models.EventStatusStarted,
		ScheduledStart: time.Now().UTC(),
		ActualStart:    &suppliedStart,
	}
	before := time.Now().UTC()
	if err := events.Create(context.Background(), event); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if event.ActualStart == nil {
		t.Fatal("actual_start should be set when status is Started")
	}
	if event.ActualStart.Equal(suppliedStart) {
		t.Error("caller-supplied actual_start should have been overridden")
	}
	if event.ActualStart.Before(before) || event.ActualStart.After(time.Now().UTC()) {
		t.Errorf("actual_start %v not within the create window", event.ActualStart)
	}
}

func TestActualStartForcedOnStatusUpdate(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	suppliedStart := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	updated, err := events.Update(context.Background(), event.ID, models.EventPatch{
		Status:      ptr(models.EventStatusStarted),
		ActualStart: &suppliedStart,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ActualStart == nil || updated.ActualStart.Equal(suppliedStart) {
		t.Error("moving status to Started should force actual_start to now")
	}
}

func TestActualStartSettableWithoutStatusChange(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	if _, err := events.Update(context.Background(), event.ID, models.EventPatch{
		Status: ptr(models.EventStatusStarted),
	}); err != nil {
		t.Fatalf("start failed: %v", err)
	}

	suppliedStart := time.Date(2021, 6, 1, 12, 0, 0, 0, time.UTC)
	updated, err := events.Update(context.Background(), event.ID, models.EventPatch{
		ActualStart: &suppliedStart,
	})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.ActualStart == nil || !updated.ActualStart.Equal(suppliedStart) {
		t.Errorf("actual_start alone should be applied as supplied, got %v", updated.ActualStart)
	}
}

func TestPartialUpdateEventPreservesUntouchedFields(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	updated, err := events.Update(context.Background(), event.ID, models.EventPatch{Name: ptr("X")})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Name != "X" {
		t.Errorf("expected name X, got %q", updated.Name)
	}
	if updated.Slug != event.Slug {
		t.Errorf("slug changed: %q", updated.Slug)
	}
	if updated.Type != event.Type {
		t.Errorf("type changed: %q", updated.Type)
	}
	if updated.SportID == nil || *updated.SportID != sport.ID {
		t.Errorf("sport_id changed: %v", updated.SportID)
	}
	if updated.Status != event.Status {
		t.Errorf("status changed: %q", updated.Status)
	}
	if !updated.ScheduledStart.Equal(event.ScheduledStart) {
		t.Errorf("scheduled_start changed: %v", updated.ScheduledStart)
	}
	if updated.Active != event.Active {
		t.Errorf("active changed: %v", updated.Active)
	}
}

func TestUpdateEventNotFound(t *testing.T) {
	db := setupTestDB(t)
	_, events, _ := newRepositories(db)

	_, err := events.Update(context.Background(), 9999, models.EventPatch{Name: ptr("X")})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestUpdateEventUnknownSportReturnsParentNotFound(t *testing.T) {
	db := setupTestDB(t)
	sports, events, _ := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	_, err := events.Update(context.Background(), event.ID, models.EventPatch{SportID: ptr(uint(9999))})
	if !errors.Is(err, ErrParentNotFound) {
		t.Errorf("expected ErrParentNotFound, got %v", err)
	}
}

func TestSearchEventsByActiveSelectionsCount(t *testing.T) {
	db := setupTestDB(t)
	sports, events, selections := newRepositories(db)

	sport := newSport(t, sports, "Football", true)
	event := newEvent(t, events, "Derby", sport.ID, true)

	// zero active selections: a threshold of zero still matches
	found, err := events.Search(context.Background(), EventFilters{Name: "Derby", ActiveSelectionsCount: ptr(0)})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 1 {
		t.Fatalf("count filter 0 should match the event, got %d results", len(found))
	}

	found, err = events.Search(context.Background(), EventFilters{ActiveSelectionsCount: ptr(1)})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 0 {
		t.Fatalf("count filter 1 should not match before any selection is active, got %d", len(found))
	}

	newSelection(t, selections, "Home Win", event.ID, true)

	found, err = events.Search(context.Background(), EventFilters{ActiveSelectionsCount: ptr(1)})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("count filter 1 should match after activation, got %d", len(found))
	}

	found, err = events.Search(context.Background(), EventFilters{Name: "Derby", ActiveSelectionsCount: ptr(0)})
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if len(found) != 1 {
		t.Errorf("count filter 0 should still match, got %d", len(found))
	}
}
