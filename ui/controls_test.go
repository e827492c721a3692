package ui

import "testing"

func TestKeyboardSourceResetIsEdgeTriggered(t *testing.T) {
	k := &KeyboardSource{}
	k.resetRequested = true

	first := k.Snapshot()
	if !first.ResetRequested {
		t.Fatalf("expected first snapshot to report the pending reset")
	}

	second := k.Snapshot()
	if second.ResetRequested {
		t.Fatalf("expected reset flag to clear after being read once")
	}
}

func TestKeyboardSourceLoadSceneUpdatesSnapshot(t *testing.T) {
	k := &KeyboardSource{scene: "old.json"}
	k.LoadScene("new.json")

	if got := k.Snapshot().Scene; got != "new.json" {
		t.Fatalf("expected scene %q, got %q", "new.json", got)
	}
}

func TestKeyboardSourceSnapshotReflectsFields(t *testing.T) {
	k := &KeyboardSource{
		scene:           "s.json",
		samplesPerPixel: 4,
		enableDebug:     true,
		bvhDepth:        3,
	}

	c := k.Snapshot()
	if c.Scene != "s.json" || c.SamplesPerPixel != 4 || !c.EnableDebug || c.BVHDepth != 3 {
		t.Fatalf("unexpected snapshot: %+v", c)
	}
}
