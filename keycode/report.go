package keycode

// Report is the 8-byte USB HID boot-protocol keyboard report:
// [modifiers, reserved, k1, k2, k3, k4, k5, k6].
type Report [8]byte

// Default returns an all-zero report.
func Default() Report {
	return Report{}
}

// Pressed adds k to the report, following spec.md §4.1:
//   - No has no effect;
//   - ErrorRollOver/PostFail/ErrorUndefined overwrite all six key slots;
//   - a modifier ORs its bit into byte 0;
//   - anything else fills the lowest-indexed free slot in bytes 2..8, or
//     overwrites all six slots with ErrorRollOver if none is free.
func (r *Report) Pressed(k KeyCode) {
	switch {
	case k == No:
		return
	case k == ErrorRollOver || k == PostFail || k == ErrorUndefined:
		r.setAll(k)
	case IsModifier(k):
		r[0] |= AsModifierBit(k)
	default:
		for i := 2; i < len(r); i++ {
			if r[i] == byte(No) {
				r[i] = byte(k)
				return
			}
		}
		r.setAll(ErrorRollOver)
	}
}

func (r *Report) setAll(k KeyCode) {
	for i := 2; i < len(r); i++ {
		r[i] = byte(k)
	}
}

// FromIter folds Pressed over ks starting from a default report.
func FromIter(ks []KeyCode) Report {
	r := Default()
	for _, k := range ks {
		r.Pressed(k)
	}
	return r
}

// Bytes returns the report's wire bytes.
func (r Report) Bytes() []byte {
	b := make([]byte, len(r))
	copy(b, r[:])
	return b
}

// MarshalBinary satisfies encoding.BinaryMarshaler, grounded on
// sanjay900-VIIPER's InputState.BuildReport — it lets a Report be handed
// straight to hidsink or logged with %x without the caller reaching into
// the array directly.
func (r Report) MarshalBinary() ([]byte, error) {
	return r.Bytes(), nil
}
