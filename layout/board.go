package layout

// Board is the compile-time layer table described by spec.md §3/§6:
// Layers[layer][row][col] -> Action. Layer 0 is the initial base layer.
// Board geometry never changes after construction (no dynamic
// reconfiguration, per spec.md's Non-goals).
type Board struct {
	Rows, Cols int
	Layers     [][][]Action
}

// NewBoard returns a Board for the given geometry and layer tables. Each
// entry of layers must be rows x cols; a malformed table is a build-time
// authoring error in the firmware image, not a runtime condition this
// repo defends against (spec.md §7 scopes "impossible" failures to the
// excluded hardware layer; a mis-shaped compile-time layout table is the
// Go-native equivalent of a C array-bounds mistake the author catches in
// review, not something the core recovers from at runtime).
func NewBoard(rows, cols int, layers [][][]Action) *Board {
	return &Board{Rows: rows, Cols: cols, Layers: layers}
}

// resolve walks from the effective layer downward and returns the first
// action that is not Trans, or NoOp if every layer down to 0 is Trans at
// (r, c) — the Open Question in spec.md §9 is resolved in favor of NoOp.
func (b *Board) resolve(effectiveLayer, r, c int) Action {
	for l := effectiveLayer; l >= 0; l-- {
		a := b.Layers[l][r][c]
		if a.Kind != KindTrans {
			return a
		}
	}
	return NoOp
}
