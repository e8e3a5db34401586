package bench

import (
	"testing"

	"github.com/gokeyb/gokeyb/matrix"
)

func TestBenchMatrixAsGPIO(t *testing.T) {
	m := New()
	m.Press(1, 2)

	s := matrix.New(m, 3, 4, nil)
	out := s.Scan()

	if !out.Get(1, 2) {
		t.Fatal("expected (1,2) pressed")
	}
	if out.Get(0, 0) {
		t.Fatal("expected (0,0) not pressed")
	}

	m.Release(1, 2)
	out2 := s.Scan()
	if out2.Get(1, 2) {
		t.Fatal("expected (1,2) released")
	}
}

func TestIsPressed(t *testing.T) {
	m := New()
	if m.IsPressed(0, 0) {
		t.Fatal("nothing pressed yet")
	}
	m.Press(0, 0)
	if !m.IsPressed(0, 0) {
		t.Fatal("expected pressed")
	}
}
