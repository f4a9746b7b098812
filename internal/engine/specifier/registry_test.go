package specifier

import "testing"

func TestRegistry(t *testing.T) {
	r := NewRegistry("fs", "  ", "", " path ")
	if r.Len() != 2 {
		t.Fatalf("expected 2 names, got %d: %v", r.Len(), r.Names())
	}
	if !r.Contains("path") {
		t.Error("expected trimmed name to be registered")
	}

	ext := r.With("electron")
	if r.Contains("electron") {
		t.Error("With must not mutate the receiver")
	}
	if got := ext.Names(); len(got) != 3 || got[0] != "electron" {
		t.Errorf("unexpected names %v", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	for _, name := range []string{"fs", "fs/promises", "worker_threads", "stream/web"} {
		if !DefaultRegistry().Contains(name) {
			t.Errorf("expected %s in default registry", name)
		}
	}
	if DefaultRegistry().Contains("lodash") {
		t.Error("lodash is not a built-in")
	}
}

func TestKind(t *testing.T) {
	installable := map[Kind]bool{KindBare: true, KindNamespaced: true, KindDeepBare: true}
	for _, k := range AllKinds() {
		if k.Installable() != installable[k] {
			t.Errorf("%s.Installable() = %v", k, k.Installable())
		}
	}
	if Kind(99).String() != "unknown" {
		t.Error("expected unknown for out-of-range kind")
	}
}
