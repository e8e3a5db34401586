// Package firmware ties the matrix, debounce and layout packages together
// into the tick-driven pipeline of spec.md §2: Matrix -> Debouncer ->
// Layout -> Report -> sink, under the single-lock concurrency model of
// spec.md §5.
package firmware

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/gokeyb/gokeyb/debounce"
	"github.com/gokeyb/gokeyb/keycode"
	"github.com/gokeyb/gokeyb/layout"
	"github.com/gokeyb/gokeyb/matrix"
)

// Sink ships an assembled HID report upstream. A real board's sink is the
// USB class driver; cmd/benchtop's is hidsink.Manager speaking AOA2 HID.
type Sink interface {
	Send(report keycode.Report) error
}

// CapsLockSetter implements the LED capability of spec.md §6:
// set_caps_lock(bool), invoked when the host writes the 1-byte LED
// output report.
type CapsLockSetter interface {
	SetCapsLock(on bool)
}

// Controller owns one tick's worth of state: it scans, debounces,
// advances the layout, and ships reports. A single mutex guards the
// whole sequence, playing the role spec.md §5 assigns to "a critical
// section that masks the high priority" around the shared USB class
// object.
type Controller struct {
	mu sync.Mutex

	scanner   *matrix.Scanner
	debouncer *debounce.Debouncer
	state     *layout.State
	sink      Sink
	capsLock  CapsLockSetter

	reportsSent uint64
	lastReport  keycode.Report
}

// New returns a Controller wiring together a board's scanner, debouncer
// and layout state. sink may be nil — Tick then logs the report instead
// of shipping it, the same tolerance shown when no device is plugged in
// yet.
func New(scanner *matrix.Scanner, debouncer *debounce.Debouncer, state *layout.State, sink Sink) *Controller {
	return &Controller{scanner: scanner, debouncer: debouncer, state: state, sink: sink}
}

// SetSink replaces the report sink (e.g. once a USB HID host connects).
func (c *Controller) SetSink(sink Sink) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.sink = sink
}

// SetCapsLockSetter wires the LED capability callback.
func (c *Controller) SetCapsLockSetter(setter CapsLockSetter) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.capsLock = setter
}

// LastReport returns the most recently assembled report, whether or not a
// sink accepted it, for status introspection (cmd/benchtop's status endpoint, tray tooltip).
func (c *Controller) LastReport() keycode.Report {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastReport
}

// EffectiveLayer returns the layer currently resolving key presses.
func (c *Controller) EffectiveLayer() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.EffectiveLayer()
}

// ReportsSent returns the running count of reports assembled since start,
// including ones dropped for want of a sink or rejected by it.
func (c *Controller) ReportsSent() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.reportsSent
}

// Tick performs one full scan -> debounce -> layout -> report cycle,
// per spec.md §5's ordering guarantee: tick() is applied before any
// same-tick debounced events, and events are applied in deterministic
// row-major order.
func (c *Controller) Tick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	codes := c.state.Tick()
	c.send(codes)

	sample := c.scanner.Scan()
	if changed := c.debouncer.Update(sample); changed {
		for _, ev := range c.debouncer.Events() {
			for _, flush := range c.state.HandleEvent(ev) {
				c.send(flush)
			}
		}
	}
}

// send assembles a Report from codes and ships it to the sink. Per
// spec.md §5, a full USB endpoint buffer may make the send spin; that
// bound (~1ms, the host's polling interval) lives inside the concrete
// Sink implementation, not here — the core never blocks indefinitely.
func (c *Controller) send(codes []keycode.KeyCode) {
	report := keycode.FromIter(codes)
	c.lastReport = report
	c.reportsSent++

	if c.sink == nil {
		log.Printf("[firmware] no sink attached, report dropped: %x", report.Bytes())
		return
	}
	if err := c.sink.Send(report); err != nil {
		log.Printf("[firmware] send report: %v", err)
	}
}

// HandleLEDReport decodes the 1-byte LED output report the host writes
// (spec.md §6) and forwards CapsLock state to the registered
// CapsLockSetter, if any.
func (c *Controller) HandleLEDReport(b byte) {
	c.mu.Lock()
	setter := c.capsLock
	c.mu.Unlock()

	if setter != nil {
		setter.SetCapsLock(b&keycode.CapsLockBit != 0)
	}
}

// Run drives Tick at the given rate until ctx is cancelled, the hosted
// analog of spec.md §6's "Tick contract" (recommended 1 kHz).
func (c *Controller) Run(ctx context.Context, rate time.Duration) {
	ticker := time.NewTicker(rate)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Tick()
		}
	}
}
