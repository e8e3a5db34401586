// Package bench provides an in-memory GPIO capability, standing in for
// the excluded electrical matrix layer (spec.md §1) so the pipeline can
// be driven, tested, and demonstrated without soldered hardware — the
// same role a test double plays for any embedded driver.
package bench

import "sync"

// Matrix implements matrix.ColumnReader and matrix.RowDriver purely in
// memory. Press/Release flip bits that ReadColumn reports back during
// the next row the caller drives low, mirroring a real switch matrix's
// electrical behavior closely enough to exercise Scanner.Scan unchanged.
type Matrix struct {
	mu        sync.Mutex
	pressed   map[[2]int]bool
	activeRow int
	rowLow    bool
}

// New returns an empty bench matrix (no switches pressed).
func New() *Matrix {
	return &Matrix{pressed: make(map[[2]int]bool)}
}

// DriveRow implements matrix.RowDriver.
func (m *Matrix) DriveRow(r int, level bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.activeRow = r
	m.rowLow = level
}

// ReadColumn implements matrix.ColumnReader.
func (m *Matrix) ReadColumn(c int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.rowLow {
		return false
	}
	return m.pressed[[2]int{m.activeRow, c}]
}

// Press marks (r, c) as held down.
func (m *Matrix) Press(r, c int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pressed[[2]int{r, c}] = true
}

// Release marks (r, c) as no longer held.
func (m *Matrix) Release(r, c int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.pressed, [2]int{r, c})
}

// IsPressed reports the current held state of (r, c), for test assertions
// and status reporting.
func (m *Matrix) IsPressed(r, c int) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pressed[[2]int{r, c}]
}
