package agent_test

import (
	"errors"
	"testing"

	"calendar-booking-agent/internal/agent"
)

func TestDecodeRequest(t *testing.T) {
	t.Run("Find Next With Default Duration", func(t *testing.T) {
		req, err := agent.DecodeRequest(agent.OpFindNextSlot, map[string]interface{}{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		found, ok := req.(agent.FindNextRequest)
		if !ok {
			t.Fatalf("expected FindNextRequest, got %T", req)
		}
		if found.DurationMinutes != 60 {
			t.Errorf("expected default 60 minutes, got %d", found.DurationMinutes)
		}
	})

	t.Run("Find Next With Explicit Duration", func(t *testing.T) {
		// Gemini delivers numbers as float64.
		req, err := agent.DecodeRequest(agent.OpFindNextSlot, map[string]interface{}{
			"duration_minutes": float64(90),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.(agent.FindNextRequest).DurationMinutes != 90 {
			t.Errorf("expected 90 minutes, got %d", req.(agent.FindNextRequest).DurationMinutes)
		}
	})

	t.Run("Suggest Slots", func(t *testing.T) {
		req, err := agent.DecodeRequest(agent.OpSuggestSlots, map[string]interface{}{
			"date": "tomorrow",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		suggest, ok := req.(agent.SuggestSlotsRequest)
		if !ok {
			t.Fatalf("expected SuggestSlotsRequest, got %T", req)
		}
		if suggest.Date != "tomorrow" || suggest.DurationMinutes != 60 {
			t.Errorf("unexpected decode: %+v", suggest)
		}
	})

	t.Run("Book Appointment", func(t *testing.T) {
		req, err := agent.DecodeRequest(agent.OpBookOnce, map[string]interface{}{
			"title":            "Team sync",
			"start_time":       "tomorrow at 3 pm",
			"duration_minutes": float64(30),
			"description":      "weekly",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		book, ok := req.(agent.BookOnceRequest)
		if !ok {
			t.Fatalf("expected BookOnceRequest, got %T", req)
		}
		if book.Title != "Team sync" || book.StartTime != "tomorrow at 3 pm" || book.DurationMinutes != 30 {
			t.Errorf("unexpected decode: %+v", book)
		}
	})

	t.Run("Book Recurring", func(t *testing.T) {
		req, err := agent.DecodeRequest(agent.OpBookRecurring, map[string]interface{}{
			"title":      "Gym",
			"weekdays":   "mon,wed,fri",
			"start_time": "16:15",
			"end_time":   "18:00",
			"end_date":   "july 11th",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		rec, ok := req.(agent.BookRecurringRequest)
		if !ok {
			t.Fatalf("expected BookRecurringRequest, got %T", req)
		}
		if rec.Weekdays != "mon,wed,fri" || rec.EndDate != "july 11th" {
			t.Errorf("unexpected decode: %+v", rec)
		}
	})

	t.Run("Validate Setup", func(t *testing.T) {
		req, err := agent.DecodeRequest(agent.OpValidateSetup, map[string]interface{}{
			"calendar_id": "someone@example.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if req.(agent.ValidateAccessRequest).CalendarID != "someone@example.com" {
			t.Errorf("unexpected decode: %+v", req)
		}
	})

	t.Run("Unknown Operation", func(t *testing.T) {
		_, err := agent.DecodeRequest("drop_all_events", map[string]interface{}{})
		if !errors.Is(err, agent.ErrUnknownOperation) {
			t.Errorf("expected ErrUnknownOperation, got %v", err)
		}
	})
}

func TestDefinitions(t *testing.T) {
	defs := agent.Definitions()
	if len(defs) != 5 {
		t.Fatalf("expected 5 function declarations, got %d", len(defs))
	}

	names := make(map[string]bool)
	for _, def := range defs {
		names[def.Name] = true
		if def.Description == "" {
			t.Errorf("declaration %s has no description", def.Name)
		}
		if def.Parameters["type"] != "object" {
			t.Errorf("declaration %s parameters are not an object schema", def.Name)
		}
	}
	for _, want := range []string{
		agent.OpFindNextSlot, agent.OpSuggestSlots, agent.OpBookOnce,
		agent.OpBookRecurring, agent.OpValidateSetup,
	} {
		if !names[want] {
			t.Errorf("missing declaration for %s", want)
		}
	}
}
