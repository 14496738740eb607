package state

import (
	"strings"
	"testing"
)

func TestNotificationState_Cap(t *testing.T) {
	s := NewNotificationState()
	for _, msg := range []string{"one", "two", "three", "four"} {
		s.Info(msg)
	}

	all := s.All()
	if len(all) != maxNotifications {
		t.Fatalf("len(All()) = %d, want %d", len(all), maxNotifications)
	}
	if all[0].Message != "two" {
		t.Errorf("oldest kept = %q, want two", all[0].Message)
	}

	latest, ok := s.Latest()
	if !ok || latest.Message != "four" {
		t.Errorf("Latest() = %q, %v; want four, true", latest.Message, ok)
	}
}

func TestNotificationState_ClearAndLevels(t *testing.T) {
	s := NewNotificationState()
	s.Error("boom")

	latest, _ := s.Latest()
	if latest.Level != LevelError {
		t.Errorf("Level = %v, want LevelError", latest.Level)
	}

	s.Clear()
	if s.HasAny() {
		t.Error("HasAny() after Clear() = true")
	}
	if _, ok := s.Latest(); ok {
		t.Error("Latest() after Clear() should report false")
	}
}

// TestNotificationState_Layers ensures layers stack from the top-right and stop at the screen edge.
func TestNotificationState_Layers(t *testing.T) {
	s := NewNotificationState()
	s.Info("a")
	s.Info("b")

	render := func(n Notification) string { return strings.Repeat("x", 5) + "\n" + n.Message }

	if got := s.Layers(0, 20, render); len(got) != 0 {
		t.Errorf("Layers with zero width = %d, want 0", len(got))
	}
	if got := s.Layers(40, 20, render); len(got) != 2 {
		t.Errorf("Layers = %d, want 2", len(got))
	}
	// Second notification starts at row 3 and needs 2 rows
	if got := s.Layers(40, 4, render); len(got) != 1 {
		t.Errorf("Layers on short screen = %d, want 1", len(got))
	}
}
