package category

import (
	"sync"
	"testing"
)

func TestClassify_KnownPositions(t *testing.T) {
	cases := map[string]string{
		"GERENTE DE VENTAS":        "Gerencia",
		"gerente de ventas":        "Gerencia",
		"  DIRECTOR GENERAL  ":     "Gerencia",
		"ASESOR COMERCIAL":         "Ventas",
		"TECNICO DE TALLER":        "Técnico y Taller",
		"ALMACENISTA REFACCIONES":  "Refacciones y Almacén",
		"AUXILIAR ADMINISTRATIVO":  "Administrativo",
		"RECEPCIONISTA DE CLIENTE": "Servicio",
	}
	for puesto, want := range cases {
		if got := Classify(puesto); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", puesto, got, want)
		}
	}
}

func TestClassify_Unmatched(t *testing.T) {
	if got := Classify(""); got != Uncategorized {
		t.Fatalf("empty position should be %q, got %q", Uncategorized, got)
	}
	if got := Classify("ASTRONAUTA"); got != Uncategorized {
		t.Fatalf("unmatched position should be %q, got %q", Uncategorized, got)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	first := Classify("GERENTE DE VENTAS")
	for i := 0; i < 100; i++ {
		if got := Classify("GERENTE DE VENTAS"); got != first {
			t.Fatalf("classification changed between calls: %q vs %q", got, first)
		}
	}
}

func TestClassify_ConcurrentCallsDoNotRace(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if got := Classify("JEFE DE TALLER"); got != "Gerencia" {
					t.Errorf("concurrent Classify = %q", got)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLabels_OrderAndIsKnown(t *testing.T) {
	labels := Labels()
	if len(labels) != 9 {
		t.Fatalf("expected 9 categories, got %d", len(labels))
	}
	if labels[0] != "Gerencia" {
		t.Fatalf("Gerencia must be matched first, got %q", labels[0])
	}
	for _, l := range labels {
		if !IsKnown(l) {
			t.Fatalf("label %q should be known", l)
		}
	}
	if !IsKnown(Uncategorized) {
		t.Fatalf("Uncategorized should be known")
	}
	if IsKnown("Astronáutica") {
		t.Fatalf("made-up label should be unknown")
	}
}
