// Package matrix drives a row/column switch matrix and samples it into a
// dense pressed-set, per spec.md §4.2. It never retries and never returns
// an error: the GPIO capability is declared infallible by contract — any
// failure is a hardware fault outside the firmware's recovery domain.
package matrix

// ColumnReader reads a single column line. It reports true when the line
// reads low, the convention spec.md §4.2 assumes for a pressed switch.
type ColumnReader interface {
	ReadColumn(c int) bool
}

// RowDriver drives a single row line. level true drives the row low
// (selecting it for the scan); false releases it to high/high-impedance.
type RowDriver interface {
	DriveRow(r int, level bool)
}

// GPIO is the combined capability a board supplies to a Scanner.
type GPIO interface {
	ColumnReader
	RowDriver
}

// PressedKeys is a dense R x C bitmap of which matrix positions read
// pressed on the most recent scan.
type PressedKeys struct {
	rows, cols int
	bits       []bool // row-major, len == rows*cols
}

// NewPressedKeys allocates a zeroed bitmap for an R x C board. Go has no
// type-level integers (spec.md §9); rows/cols are ordinary constructor
// parameters fixed once at init and never resized afterward, which is
// the runtime equivalent of a compile-time array bound for a board whose
// geometry never changes after New.
func NewPressedKeys(rows, cols int) PressedKeys {
	return PressedKeys{rows: rows, cols: cols, bits: make([]bool, rows*cols)}
}

// Rows and Cols return the board geometry this bitmap was built for.
func (p PressedKeys) Rows() int { return p.rows }
func (p PressedKeys) Cols() int { return p.cols }

// Get reports whether (r, c) is set.
func (p PressedKeys) Get(r, c int) bool {
	return p.bits[r*p.cols+c]
}

// Set assigns the bit at (r, c). Scanner.Scan is the only production
// caller; tests use it directly to build fixture bitmaps without driving
// a real scan cycle.
func (p *PressedKeys) Set(r, c int, v bool) {
	p.bits[r*p.cols+c] = v
}

// Equal reports whether two bitmaps of the same shape agree on every bit.
func (p PressedKeys) Equal(o PressedKeys) bool {
	if p.rows != o.rows || p.cols != o.cols {
		return false
	}
	for i, v := range p.bits {
		if v != o.bits[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (p PressedKeys) Clone() PressedKeys {
	out := PressedKeys{rows: p.rows, cols: p.cols, bits: make([]bool, len(p.bits))}
	copy(out.bits, p.bits)
	return out
}

// Scanner drives the rows of a board one at a time and samples the
// columns, per spec.md §4.2's scan() operation.
type Scanner struct {
	gpio       GPIO
	rows, cols int
	settle     func() // RC settle wait between DriveRow and ReadColumn; implementation-defined
}

// New returns a Scanner for a board with the given row/column counts.
// settle, if non-nil, is called after driving a row and before sampling
// its columns, to let the column lines' RC network stabilize (spec.md
// §4.2 step 2). A nil settle is appropriate for the in-memory bench GPIO,
// which has no RC delay to wait out.
func New(gpio GPIO, rows, cols int, settle func()) *Scanner {
	return &Scanner{gpio: gpio, rows: rows, cols: cols, settle: settle}
}

// Scan samples every switch position once, driving each row low in turn,
// and returns the resulting pressed bitmap.
func (s *Scanner) Scan() PressedKeys {
	out := NewPressedKeys(s.rows, s.cols)
	for r := 0; r < s.rows; r++ {
		s.gpio.DriveRow(r, true)
		if s.settle != nil {
			s.settle()
		}
		for c := 0; c < s.cols; c++ {
			out.Set(r, c, s.gpio.ReadColumn(c))
		}
		s.gpio.DriveRow(r, false)
	}
	return out
}
