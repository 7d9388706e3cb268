package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

// TestHoldWindow verifies a press counts as held inside the window and
// expires after it
func TestHoldWindow(t *testing.T) {
	s := NewState(150 * time.Millisecond)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Press(KeyW, t0)

	if !s.Snapshot(t0).Held(KeyW) {
		t.Error("Expected key held at press time")
	}
	if !s.Snapshot(t0.Add(100 * time.Millisecond)).Held(KeyW) {
		t.Error("Expected key held inside the window")
	}
	if s.Snapshot(t0.Add(200 * time.Millisecond)).Held(KeyW) {
		t.Error("Expected key released after the window")
	}
}

// TestRepeatRefreshesWindow verifies autorepeat presses keep a key held
func TestRepeatRefreshesWindow(t *testing.T) {
	s := NewState(150 * time.Millisecond)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Press(KeyArrowUp, t0)
	s.Press(KeyArrowUp, t0.Add(100*time.Millisecond))

	if !s.Snapshot(t0.Add(200 * time.Millisecond)).Held(KeyArrowUp) {
		t.Error("Expected refreshed press to extend the hold")
	}
}

// TestSnapshotIndependence verifies unheld keys stay clear
func TestSnapshotIndependence(t *testing.T) {
	s := NewState(150 * time.Millisecond)
	t0 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	s.Press(KeyW, t0)
	p := s.Snapshot(t0)

	if p.Held(KeyS) || p.Held(KeyArrowUp) || p.Held(KeyArrowDown) {
		t.Error("Expected only the pressed key to be held")
	}
}

// TestKeysHelper verifies direct snapshot construction
func TestKeysHelper(t *testing.T) {
	p := Keys(KeyW, KeyArrowDown)
	if !p.Held(KeyW) || !p.Held(KeyArrowDown) {
		t.Error("Expected listed keys held")
	}
	if p.Held(KeyS) || p.Held(KeyArrowUp) {
		t.Error("Expected unlisted keys clear")
	}
	if Keys().Held(KeyW) {
		t.Error("Expected empty snapshot to hold nothing")
	}
}

// TestTranslate verifies terminal key events map to paddle controls
func TestTranslate(t *testing.T) {
	cases := []struct {
		name string
		ev   *tcell.EventKey
		want Key
		ok   bool
	}{
		{"arrow up", tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone), KeyArrowUp, true},
		{"arrow down", tcell.NewEventKey(tcell.KeyDown, 0, tcell.ModNone), KeyArrowDown, true},
		{"lower w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), KeyW, true},
		{"upper S", tcell.NewEventKey(tcell.KeyRune, 'S', tcell.ModNone), KeyS, true},
		{"unmapped rune", tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), KeyNone, false},
		{"unmapped special", tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), KeyNone, false},
	}

	for _, c := range cases {
		got, ok := Translate(c.ev)
		if got != c.want || ok != c.ok {
			t.Errorf("%s: expected (%v, %v), got (%v, %v)", c.name, c.want, c.ok, got, ok)
		}
	}
}
