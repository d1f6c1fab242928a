package core

import "testing"

func TestInputFrameSequence(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionRotate)
	f.Set(ActionLeft)
	f.Set(ActionLeft)

	seq := f.Sequence()
	expected := []Action{ActionRotate, ActionLeft, ActionLeft}
	if len(seq) != len(expected) {
		t.Fatalf("Sequence() length = %d, expected %d", len(seq), len(expected))
	}
	for i := range expected {
		if seq[i] != expected[i] {
			t.Errorf("Sequence()[%d] = %v, expected %v", i, seq[i], expected[i])
		}
	}

	if !f.Has(ActionLeft) || f.Has(ActionRight) {
		t.Error("Has() does not reflect recorded actions")
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)
	f.Clear()

	if !f.Empty() {
		t.Error("frame should be empty after Clear")
	}
	if f.Has(ActionSoftDrop) {
		t.Error("Has() should be false after Clear")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionPause)

	clone := f.Clone()
	f.Clear()

	if !clone.Has(ActionPause) || clone.Empty() {
		t.Error("clone should not be affected by clearing the original")
	}
}

func TestZeroValueFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRotate) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionRotate)
	if !f.Has(ActionRotate) {
		t.Error("Set on zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDrop.String() != "SoftDrop" {
		t.Errorf("ActionSoftDrop.String() = %q", ActionSoftDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}

func TestTickInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.TickInterval().Milliseconds(); got != 16 {
		t.Errorf("TickInterval() at 60fps = %dms, expected 16ms", got)
	}
	cfg.TickRate = 0
	if cfg.TickInterval() != DefaultConfig().TickInterval() {
		t.Error("non-positive tick rate should fall back to 60fps")
	}
}
