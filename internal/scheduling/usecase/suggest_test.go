package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"calendar-booking-agent/internal/model"
	"calendar-booking-agent/internal/scheduling"
)

func TestSuggestSlots(t *testing.T) {
	loc := testLocation()
	now := time.Date(2025, 7, 7, 8, 0, 0, 0, loc) // Monday
	day := time.Date(2025, 7, 8, 0, 0, 0, 0, loc) // Tuesday
	sc := model.Scope{SessionID: "s1", CalendarID: "primary"}

	t.Run("Fully Free Day Yields Five Slots At Half Hour Cadence", func(t *testing.T) {
		uc := newTestUseCase(&mockProvider{}, now)

		out, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{
			Day:             day,
			DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Slots) != 5 {
			t.Fatalf("expected 5 slots, got %d", len(out.Slots))
		}

		wantDisplays := []string{
			"09:00 AM - 10:00 AM",
			"09:30 AM - 10:30 AM",
			"10:00 AM - 11:00 AM",
			"10:30 AM - 11:30 AM",
			"11:00 AM - 12:00 PM",
		}
		for i, want := range wantDisplays {
			if out.Slots[i].Display != want {
				t.Errorf("slot %d: expected %q, got %q", i, want, out.Slots[i].Display)
			}
		}
	})

	t.Run("Slots Never Overlap Seeded Busy Interval", func(t *testing.T) {
		busyStart := time.Date(2025, 7, 8, 9, 0, 0, 0, loc).UTC()
		busyEnd := time.Date(2025, 7, 8, 11, 0, 0, 0, loc).UTC()
		uc := newTestUseCase(&mockProvider{listFunc: busyDuring(busyStart, busyEnd)}, now)

		out, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{
			Day:             day,
			DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Slots) == 0 {
			t.Fatalf("expected suggestions after the busy block")
		}
		windowStart := time.Date(2025, 7, 8, 9, 0, 0, 0, loc)
		windowEnd := time.Date(2025, 7, 8, 17, 0, 0, 0, loc)
		for _, slot := range out.Slots {
			if slot.Range.Start.Before(busyEnd) && slot.Range.End.After(busyStart) {
				t.Errorf("slot %s overlaps busy interval", slot.Display)
			}
			if slot.StartLocal.Before(windowStart) || slot.Range.End.After(windowEnd.UTC()) {
				t.Errorf("slot %s escapes working hours", slot.Display)
			}
		}
		if out.Slots[0].Display != "11:00 AM - 12:00 PM" {
			t.Errorf("expected first free slot after busy block, got %q", out.Slots[0].Display)
		}
	})

	t.Run("Never More Than Five Slots", func(t *testing.T) {
		uc := newTestUseCase(&mockProvider{}, now)

		out, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{
			Day:             day,
			DurationMinutes: 30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Slots) > 5 {
			t.Errorf("expected at most 5 slots, got %d", len(out.Slots))
		}
	})

	t.Run("Duration Filling Whole Window Yields One Slot", func(t *testing.T) {
		uc := newTestUseCase(&mockProvider{}, now)

		out, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{
			Day:             day,
			DurationMinutes: 480,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Slots) != 1 {
			t.Fatalf("expected exactly 1 slot, got %d", len(out.Slots))
		}
		if out.Slots[0].Display != "09:00 AM - 05:00 PM" {
			t.Errorf("unexpected display: %q", out.Slots[0].Display)
		}
	})

	t.Run("No Availability Returns Empty Sequence Not Error", func(t *testing.T) {
		busyAll := busyDuring(
			time.Date(2025, 7, 8, 0, 0, 0, 0, loc).UTC(),
			time.Date(2025, 7, 9, 0, 0, 0, 0, loc).UTC(),
		)
		uc := newTestUseCase(&mockProvider{listFunc: busyAll}, now)

		out, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{
			Day:             day,
			DurationMinutes: 60,
		})
		if err != nil {
			t.Fatalf("expected no error for fully booked day, got %v", err)
		}
		if len(out.Slots) != 0 {
			t.Errorf("expected empty slot list, got %d", len(out.Slots))
		}
	})

	t.Run("Invalid Duration", func(t *testing.T) {
		uc := newTestUseCase(&mockProvider{}, now)

		_, err := uc.SuggestSlots(context.Background(), sc, scheduling.SuggestSlotsInput{Day: day})
		if !errors.Is(err, scheduling.ErrInvalidDuration) {
			t.Errorf("expected ErrInvalidDuration, got %v", err)
		}
	})
}
