package input

import "time"

// Pressed is a per-frame snapshot of held keys, one bit per Key
type Pressed uint8

// Held reports whether key is down in this snapshot
func (p Pressed) Held(k Key) bool {
	return p&(1<<k) != 0
}

// State tracks key-held status from press events. Terminals deliver
// presses only (no key-up), so a key counts as held while autorepeat
// keeps refreshing it within the hold window.
type State struct {
	window   time.Duration
	lastSeen [keyCount]time.Time
}

func NewState(window time.Duration) *State {
	return &State{window: window}
}

// Press records a key press at the given time
func (s *State) Press(k Key, now time.Time) {
	if k == KeyNone || k >= keyCount {
		return
	}
	s.lastSeen[k] = now
}

// Keys builds a snapshot directly from a key list
func Keys(ks ...Key) Pressed {
	var p Pressed
	for _, k := range ks {
		if k != KeyNone && k < keyCount {
			p |= 1 << k
		}
	}
	return p
}

// Snapshot captures the held set at frame-sample time
func (s *State) Snapshot(now time.Time) Pressed {
	var p Pressed
	for k := Key(1); k < keyCount; k++ {
		if t := s.lastSeen[k]; !t.IsZero() && now.Sub(t) < s.window {
			p |= 1 << k
		}
	}
	return p
}
