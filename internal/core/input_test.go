package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionLeft) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("frame should report actions that were set")
	}
	if f.Has(ActionRight) {
		t.Error("frame should not report actions that were not set")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear should remove all actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone should be independent of the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionPause) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionPause)
	if !f.Has(ActionPause) {
		t.Error("Set on zero frame should allocate and record the action")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		action   Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionConfirm, "Confirm"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.action.String(); got != tc.expected {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.action, got, tc.expected)
		}
	}
}

func TestFrameMillis(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameMillis(); got < 16.66 || got > 16.67 {
		t.Errorf("FrameMillis() at 60fps = %f, expected ~16.67", got)
	}
	cfg.TickRate = 0
	if got := cfg.FrameMillis(); got < 16.66 || got > 16.67 {
		t.Errorf("FrameMillis() with zero tick rate = %f, expected 60fps fallback", got)
	}
}
