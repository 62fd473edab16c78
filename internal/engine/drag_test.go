package engine_test

import (
	"testing"

	"ballistics_calculator/internal/engine"
)

func TestDragModelFromString(t *testing.T) {
	cases := []struct {
		name string
		want engine.DragModel
	}{
		{"G1", engine.DragG1},
		{"G7", engine.DragG7},
		{"", engine.DragG1},
		{"G2", engine.DragG1},
	}
	for _, c := range cases {
		if got := engine.DragModelFromString(c.name); got != c.want {
			t.Errorf("DragModelFromString(%q) = %v, want %v", c.name, got, c.want)
		}
	}
}

func TestDragModelNames(t *testing.T) {
	names := engine.DragModelNames()
	if len(names) != 2 || names[0] != "G1" || names[1] != "G7" {
		t.Errorf("unexpected drag model names: %v", names)
	}
}

func TestCreateBallisticCoefficientRejectsNonPositive(t *testing.T) {
	if _, err := engine.CreateBallisticCoefficient(0, engine.DragG1); err == nil {
		t.Error("expected an error for zero BC")
	}
	if _, err := engine.CreateBallisticCoefficient(-0.5, engine.DragG7); err == nil {
		t.Error("expected an error for negative BC")
	}
}

func TestDragIsPositiveAndScalesWithBC(t *testing.T) {
	low, err := engine.CreateBallisticCoefficient(0.2, engine.DragG1)
	if err != nil {
		t.Fatal(err)
	}
	high, err := engine.CreateBallisticCoefficient(0.4, engine.DragG1)
	if err != nil {
		t.Fatal(err)
	}
	for _, mach := range []float64{0.5, 0.9, 1.1, 1.8, 2.5} {
		dl, dh := low.Drag(mach), high.Drag(mach)
		if dl <= 0 || dh <= 0 {
			t.Fatalf("drag must be positive at mach %g", mach)
		}
		// Doubling the BC halves the scaled drag.
		if ratio := dl / dh; ratio < 1.99 || ratio > 2.01 {
			t.Errorf("drag ratio at mach %g = %g, want 2", mach, ratio)
		}
	}
}
