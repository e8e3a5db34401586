package firmware

import (
	"testing"

	"github.com/gokeyb/gokeyb/bench"
	"github.com/gokeyb/gokeyb/debounce"
	"github.com/gokeyb/gokeyb/keycode"
	"github.com/gokeyb/gokeyb/layout"
	"github.com/gokeyb/gokeyb/matrix"
)

type fakeSink struct {
	reports []keycode.Report
}

func (f *fakeSink) Send(r keycode.Report) error {
	f.reports = append(f.reports, r)
	return nil
}

func newController(sink Sink) (*Controller, *bench.Matrix) {
	m := bench.New()
	scanner := matrix.New(m, 1, 1, nil)
	d := debounce.New(1, 1, 1)
	board := layout.NewBoard(1, 1, [][][]layout.Action{{{layout.KC(keycode.A)}}})
	state := layout.NewState(board, layout.DefaultTapHoldTimeout)
	return New(scanner, d, state, sink), m
}

func TestControllerSendsReportOnPress(t *testing.T) {
	sink := &fakeSink{}
	c, m := newController(sink)

	m.Press(0, 0)
	c.Tick() // first stable sample latched by the debouncer

	if len(sink.reports) == 0 {
		t.Fatal("expected at least one report")
	}
	last := sink.reports[len(sink.reports)-1]
	if last[2] != byte(keycode.A) {
		t.Fatalf("expected A pressed, got %x", last)
	}
	if c.LastReport() != last {
		t.Fatalf("LastReport mismatch: %x vs %x", c.LastReport(), last)
	}
}

func TestControllerNilSinkDoesNotPanic(t *testing.T) {
	c, m := newController(nil)
	m.Press(0, 0)
	c.Tick()
	if c.LastReport()[2] != byte(keycode.A) {
		t.Fatalf("expected A in last report even with no sink, got %x", c.LastReport())
	}
}

type capsRecorder struct {
	on bool
}

func (c *capsRecorder) SetCapsLock(on bool) { c.on = on }

func TestHandleLEDReportForwardsCapsLock(t *testing.T) {
	c, _ := newController(nil)
	rec := &capsRecorder{}
	c.SetCapsLockSetter(rec)

	c.HandleLEDReport(keycode.CapsLockBit)
	if !rec.on {
		t.Fatal("expected caps lock on")
	}
	c.HandleLEDReport(0)
	if rec.on {
		t.Fatal("expected caps lock off")
	}
}
