package keycode

import "testing"

func TestIsModifier(t *testing.T) {
	for k := 0; k <= 0xFF; k++ {
		kc := KeyCode(k)
		want := kc >= LCtrl && kc <= RGui
		if got := IsModifier(kc); got != want {
			t.Errorf("IsModifier(0x%02X) = %v, want %v", k, got, want)
		}
	}
}

func TestAsModifierBit(t *testing.T) {
	mods := []KeyCode{LCtrl, LShift, LAlt, LGui, RCtrl, RShift, RAlt, RGui}
	for i, m := range mods {
		if got, want := AsModifierBit(m), uint8(1<<i); got != want {
			t.Errorf("AsModifierBit(%v) = %#x, want %#x", m, got, want)
		}
	}
	if got := AsModifierBit(A); got != 0 {
		t.Errorf("AsModifierBit(A) = %#x, want 0", got)
	}
}

func TestReportPressedModifiersAndKeys(t *testing.T) {
	r := Default()
	r.Pressed(LShift)
	r.Pressed(A)

	if r[0] != AsModifierBit(LShift) {
		t.Errorf("modifier byte = %#x, want %#x", r[0], AsModifierBit(LShift))
	}
	if r[1] != 0 {
		t.Errorf("reserved byte = %#x, want 0", r[1])
	}
	if r[2] != byte(A) {
		t.Errorf("key slot = %#x, want %#x", r[2], byte(A))
	}
	for _, b := range r[2:] {
		if KeyCode(b) != No && IsModifier(KeyCode(b)) {
			t.Fatalf("byte 2..8 contains a modifier code: %#x", b)
		}
	}
}

func TestReportRollover(t *testing.T) {
	keys := []KeyCode{A, B, C, D, E, F, G} // seven distinct, non-modifier
	r := FromIter(keys)
	for _, b := range r[2:] {
		if b != byte(ErrorRollOver) {
			t.Fatalf("expected all-rollover bytes, got %x", r[2:])
		}
	}

	// Further insertions after rollover stay idempotent.
	r.Pressed(H)
	for _, b := range r[2:] {
		if b != byte(ErrorRollOver) {
			t.Fatalf("rollover not idempotent, got %x", r[2:])
		}
	}
}

func TestReportShiftA(t *testing.T) {
	// Scenario S1 from spec.md §8.
	r := Default()
	r.Pressed(LShift)
	if r != (Report{0x02, 0, 0, 0, 0, 0, 0, 0}) {
		t.Fatalf("after LShift: %x", r)
	}

	r.Pressed(A)
	if r != (Report{0x02, 0, 0x04, 0, 0, 0, 0, 0}) {
		t.Fatalf("after LShift+A: %x", r)
	}
}

func TestReportNoOpKey(t *testing.T) {
	r := Default()
	r.Pressed(No)
	if r != (Report{}) {
		t.Fatalf("No should have no effect, got %x", r)
	}
}
