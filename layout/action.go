package layout

import "github.com/gokeyb/gokeyb/keycode"

// Kind tags which variant an Action holds. Actions form a closed sum
// type (spec.md §9); every consumer switches on Kind exhaustively.
type Kind int

const (
	KindNoOp Kind = iota
	KindTrans
	KindKeyCode
	KindMultipleKeyCodes
	KindLayer
	KindDefaultLayer
	KindHoldTap
	KindLayerTap
)

// Action describes what a single layer cell does. Exactly one set of
// fields is meaningful per Kind; see the constructors below.
type Action struct {
	Kind Kind

	Code  keycode.KeyCode   // KindKeyCode
	Codes []keycode.KeyCode // KindMultipleKeyCodes
	Layer int               // KindLayer, KindDefaultLayer, KindLayerTap

	Hold *Action // KindHoldTap
	Tap  *Action // KindHoldTap, KindLayerTap
}

// NoOp emits nothing.
var NoOp = Action{Kind: KindNoOp}

// Trans defers to the next layer below.
var Trans = Action{Kind: KindTrans}

// KC is a plain key code, active while held.
func KC(k keycode.KeyCode) Action {
	return Action{Kind: KindKeyCode, Code: k}
}

// Multi activates every code in ks while held (e.g. Ctrl+Insert).
func Multi(ks ...keycode.KeyCode) Action {
	return Action{Kind: KindMultipleKeyCodes, Codes: ks}
}

// LayerAction activates overlay layer n while held.
func LayerAction(n int) Action {
	return Action{Kind: KindLayer, Layer: n}
}

// DefaultLayerAction makes layer n the base layer, sticky from the press
// onward.
func DefaultLayerAction(n int) Action {
	return Action{Kind: KindDefaultLayer, Layer: n}
}

// HoldTap resolves to hold if still held at the timeout, or to tap if
// released first.
func HoldTap(hold, tap Action) Action {
	h, t := hold, tap
	return Action{Kind: KindHoldTap, Hold: &h, Tap: &t}
}

// LayerTapAction is a HoldTap whose hold action is LayerAction(n).
func LayerTapAction(n int, tap Action) Action {
	t := tap
	return Action{Kind: KindLayerTap, Layer: n, Tap: &t}
}

// resolvedHold returns the action this entry behaves as while held past
// the timeout — LayerAction(n) for LayerTap, or the explicit Hold field
// for HoldTap.
func (a Action) resolvedHold() Action {
	switch a.Kind {
	case KindLayerTap:
		return LayerAction(a.Layer)
	case KindHoldTap:
		return *a.Hold
	default:
		return a
	}
}

// resolvedTap returns the action this entry behaves as when released
// before the timeout.
func (a Action) resolvedTap() Action {
	switch a.Kind {
	case KindLayerTap, KindHoldTap:
		return *a.Tap
	default:
		return a
	}
}
