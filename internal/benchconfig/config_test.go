package benchconfig

import "testing"

func TestKeyBindingString(t *testing.T) {
	b := KeyBinding{Modifiers: []string{"ctrl", "alt"}, Key: "a", Row: 1, Col: 2}
	if got, want := b.String(), "Ctrl+Alt+A -> (1,2)"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestDefaultConfigHasOneBinding(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Bindings) != 1 {
		t.Fatalf("expected 1 default binding, got %d", len(cfg.Bindings))
	}
}

func TestGetBindingsCopiesOnRead(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Bindings = []KeyBinding{{Key: "a", Row: 0, Col: 0}}
	got := cfg.GetBindings()
	got[0].Row = 99
	if cfg.Bindings[0].Row == 99 {
		t.Fatal("GetBindings should return a copy, not alias internal state")
	}
}
