// Package layout turns debounced (row, column, pressed?) events into the
// set of USB HID key codes currently active, per spec.md §4.4: a layer
// stack, action interpretation, and a tick-counted hold-tap
// disambiguation state machine.
package layout

import (
	"sort"

	"github.com/gokeyb/gokeyb/debounce"
	"github.com/gokeyb/gokeyb/keycode"
)

// DefaultTapHoldTimeout is spec.md §4.4's default: 200 ticks (200 ms at
// the recommended 1 kHz tick rate).
const DefaultTapHoldTimeout = 200

type pos = [2]int

type stackEntry struct {
	pos      pos
	resolved Action
}

type waitingEntry struct {
	pos       pos
	action    Action
	remaining int
}

// State holds all of a board's runtime layer/hold-tap state: the current
// base layer, the active overlay multiset, the per-position stack of
// resolved actions for every currently-pressed key, and at most one
// pending hold-tap disambiguation.
type State struct {
	board        *Board
	defaultLayer int
	overlays     map[int]int
	stack        []stackEntry
	waiting      *waitingEntry
	tapFlash     []keycode.KeyCode
	timeout      int
}

// NewState returns a State for board, starting on layer 0, with the
// given hold-tap timeout in ticks.
func NewState(board *Board, tapHoldTimeoutTicks int) *State {
	return &State{
		board:    board,
		overlays: make(map[int]int),
		timeout:  tapHoldTimeoutTicks,
	}
}

// DefaultLayer returns the current base layer index.
func (s *State) DefaultLayer() int { return s.defaultLayer }

// EffectiveLayer returns the layer currently resolving key presses: the
// highest-indexed layer among the base layer and any held overlays.
func (s *State) EffectiveLayer() int { return s.effectiveLayer() }

func (s *State) effectiveLayer() int {
	eff := s.defaultLayer
	for layer, count := range s.overlays {
		if count > 0 && layer > eff {
			eff = layer
		}
	}
	return eff
}

// HandleEvent applies one debounced Press/Release and returns, in order,
// every snapshot of active key codes that should be shipped as a
// separate HID report. Ordinarily this is a single snapshot; forcing a
// stale hold-tap to its tap resolution (spec.md §7's "stale hold-tap"
// rule) yields the forced tap's snapshot first and the new press's
// snapshot second, so the host sees the tap as a distinct transition
// (spec.md §8 S4) rather than merged into the interrupting key's report.
func (s *State) HandleEvent(ev debounce.Event) [][]keycode.KeyCode {
	var flushes [][]keycode.KeyCode
	p := pos{ev.Row, ev.Col}

	if ev.Press {
		if s.waiting != nil {
			s.forceWaitingToTap()
			flushes = append(flushes, s.activeCodes())
		}
		s.handlePress(p)
	} else {
		s.handleRelease(p)
	}
	flushes = append(flushes, s.activeCodes())
	return flushes
}

func (s *State) handlePress(p pos) {
	action := s.board.resolve(s.effectiveLayer(), p[0], p[1])
	switch action.Kind {
	case KindNoOp:
		s.stack = append(s.stack, stackEntry{pos: p, resolved: NoOp})
	case KindKeyCode, KindMultipleKeyCodes:
		s.stack = append(s.stack, stackEntry{pos: p, resolved: action})
	case KindLayer:
		s.stack = append(s.stack, stackEntry{pos: p, resolved: action})
		s.overlays[action.Layer]++
	case KindDefaultLayer:
		s.defaultLayer = action.Layer
		s.stack = append(s.stack, stackEntry{pos: p, resolved: NoOp})
	case KindHoldTap, KindLayerTap:
		s.waiting = &waitingEntry{pos: p, action: action, remaining: s.timeout}
	}
}

func (s *State) handleRelease(p pos) {
	if s.waiting != nil && s.waiting.pos == p {
		s.tapFlash = codesOf(s.waiting.action.resolvedTap())
		s.waiting = nil
		return
	}

	for i := len(s.stack) - 1; i >= 0; i-- {
		if s.stack[i].pos != p {
			continue
		}
		entry := s.stack[i]
		s.stack = append(s.stack[:i], s.stack[i+1:]...)
		if entry.resolved.Kind == KindLayer {
			s.overlays[entry.resolved.Layer]--
		}
		return
	}
	// No matching entry: a spurious release, silently dropped (spec.md §7).
}

func (s *State) forceWaitingToTap() {
	s.tapFlash = codesOf(s.waiting.action.resolvedTap())
	s.waiting = nil
}

// Tick advances the hold-tap timeout (if one is pending) and returns the
// set of active key codes, per spec.md §4.4's tick() operation. Called
// once per system tick, before any same-tick debounced events.
func (s *State) Tick() []keycode.KeyCode {
	if s.waiting != nil {
		s.waiting.remaining--
		if s.waiting.remaining <= 0 {
			resolved := s.waiting.action.resolvedHold()
			s.stack = append(s.stack, stackEntry{pos: s.waiting.pos, resolved: resolved})
			if resolved.Kind == KindLayer {
				s.overlays[resolved.Layer]++
			}
			s.waiting = nil
		}
	}
	return s.activeCodes()
}

// activeCodes returns the union of codes contributed by the stack plus
// any pending tap flash, then consumes the flash so it is reported
// exactly once (spec.md §4.4 step 3).
func (s *State) activeCodes() []keycode.KeyCode {
	seen := make(map[keycode.KeyCode]bool)
	var out []keycode.KeyCode
	add := func(k keycode.KeyCode) {
		if k == keycode.No || seen[k] {
			return
		}
		seen[k] = true
		out = append(out, k)
	}

	for _, e := range s.stack {
		for _, k := range codesOf(e.resolved) {
			add(k)
		}
	}
	for _, k := range s.tapFlash {
		add(k)
	}
	s.tapFlash = nil

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

func codesOf(a Action) []keycode.KeyCode {
	switch a.Kind {
	case KindKeyCode:
		return []keycode.KeyCode{a.Code}
	case KindMultipleKeyCodes:
		return a.Codes
	default:
		return nil
	}
}
