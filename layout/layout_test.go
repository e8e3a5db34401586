package layout

import (
	"testing"

	"github.com/gokeyb/gokeyb/debounce"
	"github.com/gokeyb/gokeyb/keycode"
)

// twoKeyBoard: a 1x2 board. (0,0) = LShift, (0,1) = A.
func twoKeyBoard() *Board {
	layer0 := [][]Action{{KC(keycode.LShift), KC(keycode.A)}}
	return NewBoard(1, 2, [][][]Action{layer0})
}

func press(r, c int) debounce.Event   { return debounce.Event{Press: true, Row: r, Col: c} }
func release(r, c int) debounce.Event { return debounce.Event{Press: false, Row: r, Col: c} }

func lastFlush(t *testing.T, flushes [][]keycode.KeyCode) []keycode.KeyCode {
	t.Helper()
	if len(flushes) == 0 {
		t.Fatal("expected at least one flush")
	}
	return flushes[len(flushes)-1]
}

func reportOf(codes []keycode.KeyCode) keycode.Report {
	return keycode.FromIter(codes)
}

func TestShiftA(t *testing.T) {
	// S1 from spec.md §8.
	s := NewState(twoKeyBoard(), DefaultTapHoldTimeout)

	r1 := reportOf(lastFlush(t, s.HandleEvent(press(0, 0))))
	if r1 != (keycode.Report{0x02, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("after LShift press: %x", r1)
	}

	r2 := reportOf(lastFlush(t, s.HandleEvent(press(0, 1))))
	if r2 != (keycode.Report{0x02, 0, 0x04, 0, 0, 0, 0, 0}) {
		t.Fatalf("after A press: %x", r2)
	}

	r3 := reportOf(lastFlush(t, s.HandleEvent(release(0, 1))))
	if r3 != (keycode.Report{0x02, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("after A release: %x", r3)
	}

	r4 := reportOf(lastFlush(t, s.HandleEvent(release(0, 0))))
	if r4 != (keycode.Report{}) {
		t.Fatalf("after LShift release: %x", r4)
	}
}

func holdTapBoard() *Board {
	layer0 := [][]Action{{HoldTap(KC(keycode.LCtrl), KC(keycode.Space)), KC(keycode.A)}}
	return NewBoard(1, 2, [][][]Action{layer0})
}

func TestHoldTapHold(t *testing.T) {
	// S2 from spec.md §8.
	s := NewState(holdTapBoard(), DefaultTapHoldTimeout)

	flushes := s.HandleEvent(press(0, 0))
	if r := reportOf(lastFlush(t, flushes)); r != (keycode.Report{}) {
		t.Fatalf("press should emit nothing yet, got %x", r)
	}

	var last []keycode.KeyCode
	for i := 0; i < 200; i++ {
		last = s.Tick()
	}
	if r := reportOf(last); r[0] != keycode.AsModifierBit(keycode.LCtrl) {
		t.Fatalf("after 200 ticks modifier bit should be set, got %x", r)
	}

	r := reportOf(lastFlush(t, s.HandleEvent(press(0, 1))))
	if r != (keycode.Report{0x01, 0, 0x04, 0, 0, 0, 0, 0}) {
		t.Fatalf("during A press: %x", r)
	}

	reportOf(lastFlush(t, s.HandleEvent(release(0, 1))))
	final := reportOf(lastFlush(t, s.HandleEvent(release(0, 0))))
	if final != (keycode.Report{}) {
		t.Fatalf("after all release: %x", final)
	}
}

func TestHoldTapTap(t *testing.T) {
	// S3 from spec.md §8.
	s := NewState(holdTapBoard(), DefaultTapHoldTimeout)

	flushes := s.HandleEvent(press(0, 0))
	if r := reportOf(lastFlush(t, flushes)); r != (keycode.Report{}) {
		t.Fatalf("press should emit nothing yet, got %x", r)
	}

	for i := 0; i < 50; i++ {
		s.Tick()
	}

	r := reportOf(lastFlush(t, s.HandleEvent(release(0, 0))))
	if r != (keycode.Report{0, 0, 0x2C, 0, 0, 0, 0, 0}) {
		t.Fatalf("tap release report: %x", r)
	}

	next := reportOf(s.Tick())
	if next != (keycode.Report{}) {
		t.Fatalf("next tick should be zero, got %x", next)
	}
}

func layerTapBoard() *Board {
	layer0 := [][]Action{{LayerTapAction(1, KC(keycode.Enter)), KC(keycode.A)}}
	layer1 := [][]Action{{Trans, Trans}}
	return NewBoard(1, 2, [][][]Action{layer0, layer1})
}

func TestLayerTapInterruption(t *testing.T) {
	// S4 from spec.md §8.
	s := NewState(layerTapBoard(), DefaultTapHoldTimeout)

	s.HandleEvent(press(0, 0)) // installs waiting

	flushes := s.HandleEvent(press(0, 1)) // A, before timeout
	if len(flushes) != 2 {
		t.Fatalf("expected 2 flushes (forced tap + new press), got %d: %+v", len(flushes), flushes)
	}
	forced := reportOf(flushes[0])
	if forced != (keycode.Report{0, 0, byte(keycode.Enter), 0, 0, 0, 0, 0}) {
		t.Fatalf("forced tap flush should be Enter alone, got %x", forced)
	}
	final := reportOf(flushes[1])
	if final != (keycode.Report{0, 0, byte(keycode.A), 0, 0, 0, 0, 0}) {
		t.Fatalf("final flush should be A alone, got %x", final)
	}
}

func sevenLetterBoard() *Board {
	codes := []keycode.KeyCode{keycode.A, keycode.B, keycode.C, keycode.D, keycode.E, keycode.F, keycode.G}
	row := make([]Action, len(codes))
	for i, c := range codes {
		row[i] = KC(c)
	}
	return NewBoard(1, len(codes), [][][]Action{{row}})
}

func TestRollover(t *testing.T) {
	// S5 from spec.md §8.
	board := sevenLetterBoard()
	s := NewState(board, DefaultTapHoldTimeout)

	var last keycode.Report
	for c := 0; c < 6; c++ {
		last = reportOf(lastFlush(t, s.HandleEvent(press(0, c))))
	}
	for _, b := range last[2:] {
		if b == byte(keycode.ErrorRollOver) {
			t.Fatalf("rollover too early at 6 keys: %x", last)
		}
	}

	seventh := reportOf(lastFlush(t, s.HandleEvent(press(0, 6))))
	want := keycode.Report{0, 0, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}
	if seventh != want {
		t.Fatalf("7th key report = %x, want %x", seventh, want)
	}
}

func TestLayerResolutionPicksHighestNonTransLayer(t *testing.T) {
	// Property 6 from spec.md §8.
	layer0 := [][]Action{{Trans}}
	layer1 := [][]Action{{Trans}}
	layer2 := [][]Action{{KC(keycode.Z)}}
	board := NewBoard(1, 1, [][][]Action{layer0, layer1, layer2})

	s := NewState(board, DefaultTapHoldTimeout)
	s.overlays[1] = 1
	s.overlays[2] = 1

	action := board.resolve(s.effectiveLayer(), 0, 0)
	if action.Kind != KindKeyCode || action.Code != keycode.Z {
		t.Fatalf("expected Z from layer 2, got %+v", action)
	}
}

func TestTransOnBaseLayerResolvesToNoOp(t *testing.T) {
	board := NewBoard(1, 1, [][][]Action{{{Trans}}})
	s := NewState(board, DefaultTapHoldTimeout)
	flushes := s.HandleEvent(press(0, 0))
	if r := reportOf(lastFlush(t, flushes)); r != (keycode.Report{}) {
		t.Fatalf("Trans on layer 0 should resolve to NoOp, got %x", r)
	}
}

func TestPressReleaseRestoresState(t *testing.T) {
	// Property 7 from spec.md §8: press/release round-trips restore
	// stack and overlay state (DefaultLayer is sticky and excluded).
	board := NewBoard(1, 1, [][][]Action{{{LayerAction(1)}}, {{KC(keycode.A)}}})
	s := NewState(board, DefaultTapHoldTimeout)

	before := len(s.stack)
	s.HandleEvent(press(0, 0))
	if s.overlays[1] != 1 {
		t.Fatalf("expected overlay 1 active, got %v", s.overlays)
	}
	s.HandleEvent(release(0, 0))
	if s.overlays[1] != 0 {
		t.Fatalf("expected overlay 1 cleared, got %v", s.overlays)
	}
	if len(s.stack) != before {
		t.Fatalf("stack not restored: %+v", s.stack)
	}
}

func TestSpuriousReleaseIsDropped(t *testing.T) {
	board := NewBoard(1, 1, [][][]Action{{{KC(keycode.A)}}})
	s := NewState(board, DefaultTapHoldTimeout)

	flushes := s.HandleEvent(release(0, 0))
	if r := reportOf(lastFlush(t, flushes)); r != (keycode.Report{}) {
		t.Fatalf("spurious release should be a no-op, got %x", r)
	}
}

func TestMultipleKeyCodes(t *testing.T) {
	board := NewBoard(1, 1, [][][]Action{{{Multi(keycode.LCtrl, keycode.Insert)}}})
	s := NewState(board, DefaultTapHoldTimeout)

	r := reportOf(lastFlush(t, s.HandleEvent(press(0, 0))))
	want := keycode.Report{keycode.AsModifierBit(keycode.LCtrl), 0, byte(keycode.Insert), 0, 0, 0, 0, 0}
	if r != want {
		t.Fatalf("got %x, want %x", r, want)
	}
}

func TestDefaultLayerIsSticky(t *testing.T) {
	board := NewBoard(1, 1, [][][]Action{
		{{DefaultLayerAction(1)}},
		{{KC(keycode.B)}},
	})
	s := NewState(board, DefaultTapHoldTimeout)

	s.HandleEvent(press(0, 0))
	s.HandleEvent(release(0, 0))
	if s.DefaultLayer() != 1 {
		t.Fatalf("default layer should now be 1, got %d", s.DefaultLayer())
	}

	r := reportOf(lastFlush(t, s.HandleEvent(press(0, 0))))
	if r[2] != byte(keycode.B) {
		t.Fatalf("expected layer-1 action B, got %x", r)
	}
}
